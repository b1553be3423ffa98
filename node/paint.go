package node

import (
	"math"

	"github.com/xiaoxigua1/takumi-go/canvas"
	"github.com/xiaoxigua1/takumi-go/core"
	"github.com/xiaoxigua1/takumi-go/imagestore"
	"github.com/xiaoxigua1/takumi-go/layout"
	"github.com/xiaoxigua1/takumi-go/paint"
	"github.com/xiaoxigua1/takumi-go/radius"
	"github.com/xiaoxigua1/takumi-go/style"
)

// PaintContext bundles the per-node paint-time state the renderer
// orchestrator accumulates while walking the tree, spec.md §4.9a/b: the
// node's absolute border-box origin and the affine transform composed
// from every ancestor (and this node's own `transform`, already folded
// in by the time DrawOnCanvas is called).
type PaintContext struct {
	RenderCtx core.RenderContext
	Canvas    canvas.Canvas
	Transform style.Affine
	OriginX   float32
	OriginY   float32
}

// DrawOnCanvas runs one node's fixed paint sequence, spec.md §4.9c:
// outset box shadows, background color, background image, inset box
// shadows, border, then the variant's own content. Grounded on
// takumi's node/mod.rs draw_on_canvas dispatch.
func (n *Node) DrawOnCanvas(pc PaintContext, resolved style.Style, lay layout.Layout) {
	br := radius.FromLayout(pc.RenderCtx, lay.Size.Width, lay.Size.Height, resolved.BorderRadius.Value)
	offset := canvas.Offset{X: int(math.Round(float64(pc.OriginX))), Y: int(math.Round(float64(pc.OriginY)))}

	outset, inset := splitBoxShadows(resolved.BoxShadow.Value)
	for _, shadow := range outset {
		n.drawBoxShadow(pc, resolved, shadow, lay, br, offset)
	}
	n.drawBackgroundColor(pc, resolved, lay, br, offset)
	n.drawBackgroundImage(pc, resolved, lay, br, offset)
	for _, shadow := range inset {
		n.drawBoxShadow(pc, resolved, shadow, lay, br, offset)
	}
	n.drawBorder(pc, resolved, lay, br, offset)
	n.drawContent(pc, resolved, lay, offset)
}

func splitBoxShadows(shadows []style.BoxShadow) (outset, inset []style.BoxShadow) {
	// Drawn back to front: reverse order within each group, mirroring
	// takumi's box_shadow.rs draw_box_shadow iterating shadows.rev().
	for i := len(shadows) - 1; i >= 0; i-- {
		if shadows[i].Inset {
			inset = append(inset, shadows[i])
		} else {
			outset = append(outset, shadows[i])
		}
	}
	return outset, inset
}

func (n *Node) drawBoxShadow(pc PaintContext, resolved style.Style, shadow style.BoxShadow, lay layout.Layout, br radius.BorderRadius, offset canvas.Offset) {
	if shadow.Inset {
		cx, cy := contentBoxOrigin(pc.RenderCtx, resolved, lay)
		img, _, _ := paint.RasterizeBoxShadow(pc.RenderCtx, lay.ContentSize.Width, lay.ContentSize.Height, shadow, br)
		if img == nil {
			return
		}
		pc.Canvas.OverlayImage(img, canvas.Offset{X: offset.X + int(math.Round(float64(cx))), Y: offset.Y + int(math.Round(float64(cy)))}, nil, pc.Transform, canvas.ScalingBilinear)
		return
	}
	img, ox, oy := paint.RasterizeBoxShadow(pc.RenderCtx, lay.Size.Width, lay.Size.Height, shadow, br)
	if img == nil {
		return
	}
	pc.Canvas.OverlayImage(img, canvas.Offset{X: offset.X + ox, Y: offset.Y + oy}, nil, pc.Transform, canvas.ScalingBilinear)
}

// contentBoxOrigin returns the content box's top-left corner relative
// to the node's own border-box origin: the padding box's own origin
// (inset by the border widths) plus the resolved padding on the
// top/left sides.
func contentBoxOrigin(ctx core.RenderContext, resolved style.Style, lay layout.Layout) (float32, float32) {
	pad := resolved.Padding.Value
	left := pad.Left.ResolveToPx(ctx, lay.PaddingRect.Width)
	top := pad.Top.ResolveToPx(ctx, lay.PaddingRect.Height)
	return lay.PaddingRect.X + left, lay.PaddingRect.Y + top
}

func (n *Node) drawBackgroundColor(pc PaintContext, resolved style.Style, lay layout.Layout, br radius.BorderRadius, offset canvas.Offset) {
	c := resolved.BackgroundColor.Value
	if c.IsTransparent() {
		return
	}
	pc.Canvas.FillColor(offset, canvas.Size{Width: uint32(math.Round(float64(lay.Size.Width))), Height: uint32(math.Round(float64(lay.Size.Height)))}, c, br, pc.Transform)
}

func (n *Node) drawBackgroundImage(pc PaintContext, resolved style.Style, lay layout.Layout, br radius.BorderRadius, offset canvas.Offset) {
	w, h := int(math.Round(float64(lay.Size.Width))), int(math.Round(float64(lay.Size.Height)))
	if w <= 0 || h <= 0 {
		return
	}
	clip := insetBorderRadius(pc.RenderCtx, resolved, lay, br)
	for _, layer := range resolved.BackgroundImage.Value {
		lowered := style.LowerBackgroundLayer(pc.RenderCtx, layer)
		tile := paint.TileLayer(w, h, lowered)
		pc.Canvas.OverlayImage(tile, offset, clip, pc.Transform, canvas.ScalingBilinear)
	}
}

// insetBorderRadius inset br by each side's resolved border width, the
// same corner math drawBorder uses for its inner ring: background-image
// tiles clip to inside the border, not to the outer border-box radius.
func insetBorderRadius(ctx core.RenderContext, resolved style.Style, lay layout.Layout, br radius.BorderRadius) radius.BorderRadius {
	bw := resolved.BorderWidth.Value
	left := bw.Left.ResolveToPx(ctx, lay.Size.Width)
	right := bw.Right.ResolveToPx(ctx, lay.Size.Width)
	top := bw.Top.ResolveToPx(ctx, lay.Size.Height)
	bottom := bw.Bottom.ResolveToPx(ctx, lay.Size.Height)
	if left == 0 && right == 0 && top == 0 && bottom == 0 {
		return br
	}
	return radius.BorderRadius{
		TopLeft:     clampNonNeg(br.TopLeft - maxOf(left, top)),
		TopRight:    clampNonNeg(br.TopRight - maxOf(right, top)),
		BottomRight: clampNonNeg(br.BottomRight - maxOf(right, bottom)),
		BottomLeft:  clampNonNeg(br.BottomLeft - maxOf(left, bottom)),
	}
}

// drawBorder rasterizes a ring mask (outer rounded rect minus an inner
// rounded rect inset by each side's border width) and tints it with the
// border color in a single DrawMask. Grounded on the teacher's
// drawBorder uniform-rounded-border stroke path, generalized from a
// single gg.Stroke (which only supports one radius/width) to a
// subtractive mask so independent per-corner radii and per-side widths
// both fall out of the same radius.WriteMaskCommands primitive.
func (n *Node) drawBorder(pc PaintContext, resolved style.Style, lay layout.Layout, br radius.BorderRadius, offset canvas.Offset) {
	bw := resolved.BorderWidth.Value
	left := bw.Left.ResolveToPx(pc.RenderCtx, lay.Size.Width)
	right := bw.Right.ResolveToPx(pc.RenderCtx, lay.Size.Width)
	top := bw.Top.ResolveToPx(pc.RenderCtx, lay.Size.Height)
	bottom := bw.Bottom.ResolveToPx(pc.RenderCtx, lay.Size.Height)
	if left == 0 && right == 0 && top == 0 && bottom == 0 {
		return
	}
	color := resolved.BorderColor.Value
	if color.IsTransparent() {
		return
	}

	w, h := int(math.Ceil(float64(lay.Size.Width))), int(math.Ceil(float64(lay.Size.Height)))
	if w <= 0 || h <= 0 {
		return
	}

	mask := make([]uint8, w*h)
	radius.WriteMaskCommands(lay.Size.Width, lay.Size.Height, br, func(x, y int, coverage uint8) {
		if x >= 0 && x < w && y >= 0 && y < h {
			mask[y*w+x] = coverage
		}
	})

	innerW := lay.Size.Width - left - right
	innerH := lay.Size.Height - top - bottom
	if innerW > 0 && innerH > 0 {
		innerRadius := insetBorderRadius(pc.RenderCtx, resolved, lay, br)
		radius.WriteMaskCommands(innerW, innerH, innerRadius, func(x, y int, coverage uint8) {
			gx, gy := x+int(left), y+int(top)
			if gx < 0 || gx >= w || gy < 0 || gy >= h {
				return
			}
			idx := gy*w + gx
			mask[idx] = uint8((uint16(mask[idx]) * uint16(255-coverage)) / 255)
		})
	}

	placement := canvas.Placement{Left: offset.X, Top: offset.Y, Width: w, Height: h}
	pc.Canvas.DrawMask(mask, placement, color, nil, pc.Transform)
}

func clampNonNeg(v float32) float32 {
	if v < 0 {
		return 0
	}
	return v
}

func maxOf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// drawContent dispatches the variant-specific content paint, spec.md
// §4.10: Container contributes nothing (children are visited by the
// orchestrator, not by this node), Text paints its laid-out glyph runs,
// Image performs object-fit processing and enqueues a single
// OverlayImage.
func (n *Node) drawContent(pc PaintContext, resolved style.Style, lay layout.Layout, offset canvas.Offset) {
	switch n.Kind {
	case KindText:
		n.drawText(pc, resolved, lay, offset)
	case KindImage:
		n.drawImage(pc, resolved, lay, offset)
	}
}
