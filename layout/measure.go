package layout

import "github.com/xiaoxigua1/takumi-go/style"

// measureLeaf resolves a leaf node's (text or image) border-box size:
// known width/height come from the node's own style when definite,
// otherwise the node's MeasureFunc is consulted with the remaining
// available space. aspect-ratio participates per SPEC_FULL §12: when
// exactly one axis is unknown and aspect-ratio is set, the unknown axis
// is derived from the known one before falling through to MeasureFunc.
func measureLeaf(n *Node, available [2]AvailableSpace) Size {
	s := n.Style
	paddingBorder := paddingBorderSize(n)

	knownWidth, hasWidth := resolveAxis(s.Width, available[0])
	knownHeight, hasHeight := resolveAxis(s.Height, available[1])

	if hasWidth {
		knownWidth = toContentWidth(s, knownWidth, paddingBorder)
	}
	if hasHeight {
		knownHeight = toContentHeight(s, knownHeight, paddingBorder)
	}

	if s.AspectRatio != nil {
		ratio := *s.AspectRatio
		if hasWidth && !hasHeight && ratio > 0 {
			knownHeight = knownWidth / ratio
			hasHeight = true
		} else if hasHeight && !hasWidth && ratio > 0 {
			knownWidth = knownHeight * ratio
			hasWidth = true
		}
	}

	var known KnownDimensions
	if hasWidth {
		v := knownWidth
		known.Width = &v
	}
	if hasHeight {
		v := knownHeight
		known.Height = &v
	}

	contentAvailable := [2]AvailableSpace{
		shrinkAvailable(available[0], paddingBorder.Width),
		shrinkAvailable(available[1], paddingBorder.Height),
	}

	content := Size{Width: knownWidth, Height: knownHeight}
	if !hasWidth || !hasHeight {
		measured := n.Measure(known, contentAvailable)
		if !hasWidth {
			content.Width = measured.Width
		}
		if !hasHeight {
			content.Height = measured.Height
		}
	}

	_, hasMaxWidth := resolveAxis(s.MaxWidth, available[0])
	_, hasMaxHeight := resolveAxis(s.MaxHeight, available[1])
	content.Width = clampSize(content.Width, minAxis(s.MinWidth, available[0], paddingBorder.Width, s), maxAxis(s.MaxWidth, available[0], paddingBorder.Width, s),
		s.MinWidth.Kind != style.LoweredAuto, hasMaxWidth)
	content.Height = clampSize(content.Height, minAxis(s.MinHeight, available[1], paddingBorder.Height, s), maxAxis(s.MaxHeight, available[1], paddingBorder.Height, s),
		s.MinHeight.Kind != style.LoweredAuto, hasMaxHeight)
	if content.Width < 0 {
		content.Width = 0
	}
	if content.Height < 0 {
		content.Height = 0
	}

	return content
}

// minAxis/maxAxis resolve a min-/max-width|height against available
// space, returning 0 when indefinite. For min that is a no-op bound;
// for max, measureLeaf passes hasMax=false whenever the max does not
// resolve to a definite value, so an indefinite max is skipped.
func minAxis(l style.LoweredLength, avail AvailableSpace, paddingBorder float32, s style.LayoutStyle) float32 {
	v, ok := resolveAxis(l, avail)
	if !ok {
		return 0
	}
	return toContentAxis(s, v, paddingBorder)
}

func maxAxis(l style.LoweredLength, avail AvailableSpace, paddingBorder float32, s style.LayoutStyle) float32 {
	v, ok := resolveAxis(l, avail)
	if !ok {
		return 0
	}
	return toContentAxis(s, v, paddingBorder)
}

func toContentAxis(s style.LayoutStyle, v, paddingBorder float32) float32 {
	if s.BoxSizing == style.BoxSizingBorderBox {
		v -= paddingBorder
	}
	if v < 0 {
		return 0
	}
	return v
}

func toContentWidth(s style.LayoutStyle, v float32, pb Size) float32 {
	return toContentAxis(s, v, pb.Width)
}

func toContentHeight(s style.LayoutStyle, v float32, pb Size) float32 {
	return toContentAxis(s, v, pb.Height)
}

// paddingBorderSize sums a node's resolved padding and border widths on
// each axis; percentage padding resolves against 0 here (consistent
// with taffy/CSS treating indefinite percentage padding as 0 during
// measurement rather than recursing into the parent's own resolution).
func paddingBorderSize(n *Node) Size {
	s := n.Style
	paddingW, _ := resolveAxis(s.Padding.Left, AvailableSpace{Kind: Definite})
	paddingW2, _ := resolveAxis(s.Padding.Right, AvailableSpace{Kind: Definite})
	paddingH, _ := resolveAxis(s.Padding.Top, AvailableSpace{Kind: Definite})
	paddingH2, _ := resolveAxis(s.Padding.Bottom, AvailableSpace{Kind: Definite})
	return Size{
		Width:  paddingW + paddingW2 + s.BorderWidth.Left + s.BorderWidth.Right,
		Height: paddingH + paddingH2 + s.BorderWidth.Top + s.BorderWidth.Bottom,
	}
}

func shrinkAvailable(avail AvailableSpace, by float32) AvailableSpace {
	if avail.Kind == Definite {
		v := avail.Value - by
		if v < 0 {
			v = 0
		}
		return DefiniteSpace(v)
	}
	return avail
}

// boxFromContentSize turns a leaf's resolved content size into a full
// Layout, adding padding/border to get the border box per spec.md
// §3.5's "size includes border and padding when box_sizing = border_box"
// contract (here content size is already content-box, so border box is
// always content + padding + border regardless of box-sizing — the
// box-sizing switch only affects how width/height style values are
// interpreted, handled above in toContentAxis).
func boxFromContentSize(n *Node, content Size, available [2]AvailableSpace) Layout {
	return layoutFromBorderBox(n, Size{Width: content.Width + paddingBorderSize(n).Width, Height: content.Height + paddingBorderSize(n).Height}, available)
}

// layoutFromBorderBox fills in the border/padding/margin rects of a
// Layout given the node's resolved border-box size, spec.md §3.5: each
// rect is relative to the node's own Location (set later by the
// renderer as it accumulates offsets).
func layoutFromBorderBox(n *Node, borderBox Size, available [2]AvailableSpace) Layout {
	s := n.Style

	padLeft, _ := resolveAxis(s.Padding.Left, available[0])
	padRight, _ := resolveAxis(s.Padding.Right, available[0])
	padTop, _ := resolveAxis(s.Padding.Top, available[1])
	padBottom, _ := resolveAxis(s.Padding.Bottom, available[1])

	marginLeft, _ := resolveAxis(s.Margin.Left, available[0])
	marginRight, _ := resolveAxis(s.Margin.Right, available[0])
	marginTop, _ := resolveAxis(s.Margin.Top, available[1])
	marginBottom, _ := resolveAxis(s.Margin.Bottom, available[1])

	contentW := borderBox.Width - s.BorderWidth.Left - s.BorderWidth.Right - padLeft - padRight
	contentH := borderBox.Height - s.BorderWidth.Top - s.BorderWidth.Bottom - padTop - padBottom
	if contentW < 0 {
		contentW = 0
	}
	if contentH < 0 {
		contentH = 0
	}

	return Layout{
		Size:        borderBox,
		ContentSize: Size{Width: contentW, Height: contentH},
		BorderRect:  Rect{Width: borderBox.Width, Height: borderBox.Height},
		PaddingRect: Rect{
			X: s.BorderWidth.Left, Y: s.BorderWidth.Top,
			Width: borderBox.Width - s.BorderWidth.Left - s.BorderWidth.Right,
			Height: borderBox.Height - s.BorderWidth.Top - s.BorderWidth.Bottom,
		},
		MarginRect: Rect{
			X: -marginLeft, Y: -marginTop,
			Width: borderBox.Width + marginLeft + marginRight, Height: borderBox.Height + marginTop + marginBottom,
		},
	}
}
