package style

import "github.com/xiaoxigua1/takumi-go/core"

// LayoutStyle is the input the layout engine consumes for one node,
// spec.md §4.2's resolve_to_layout_style output. Lengths are lowered to
// their three-valued (length|percentage|auto) form; longhand sides
// already override shorthand channels by construction (the Style
// decoder writes directly into the per-side fields).
type LayoutStyle struct {
	BoxSizing BoxSizing
	Display   Display

	Width, Height             LoweredLength
	MinWidth, MinHeight       LoweredLength
	MaxWidth, MaxHeight       LoweredLength
	AspectRatio               *float32

	Padding Sides[LoweredLength]
	Margin  Sides[LoweredLength]
	Inset   Sides[LoweredLength]

	FlexDirection FlexDirection
	FlexWrap      FlexWrap
	FlexBasis     LoweredLength
	FlexGrow      float32
	FlexShrink    float32

	GridTemplateColumns []GridTemplateComponent
	GridTemplateRows    []GridTemplateComponent
	GridTemplateAreas   map[string]GridAreaRect
	GridAutoColumns     []TrackSize
	GridAutoRows        []TrackSize
	GridAutoFlow        GridAutoFlow
	GridColumnStart     GridPlacement
	GridColumnEnd       GridPlacement
	GridRowStart        GridPlacement
	GridRowEnd          GridPlacement

	JustifyItems   AlignItems
	AlignItems     AlignItems
	JustifySelf    AlignSelf
	AlignSelf      AlignSelf
	JustifyContent JustifyContent
	AlignContent   AlignContent
	RowGap         LoweredLength
	ColumnGap      LoweredLength

	BorderWidth Sides[float32]
}

// ResolveToLayoutStyle lowers the style into the layout engine's input
// form. ctx carries the parent font size needed to resolve em lengths
// in padding/margin/etc; percentage lengths are left unresolved (the
// layout engine resolves them against its own computed reference boxes).
func (s Style) ResolveToLayoutStyle(ctx core.RenderContext) LayoutStyle {
	lowerSides := func(v Sides[Length]) Sides[LoweredLength] {
		return Sides[LoweredLength]{
			Top:    v.Top.Lower(ctx),
			Right:  v.Right.Lower(ctx),
			Bottom: v.Bottom.Lower(ctx),
			Left:   v.Left.Lower(ctx),
		}
	}

	var aspectRatio *float32
	if s.AspectRatio.Value != nil {
		v := *s.AspectRatio.Value
		aspectRatio = &v
	}

	return LayoutStyle{
		BoxSizing:   s.BoxSizing.Value,
		Display:     s.Display.Value,
		Width:       s.Width.Value.Lower(ctx),
		Height:      s.Height.Value.Lower(ctx),
		MinWidth:    s.MinWidth.Value.Lower(ctx),
		MinHeight:   s.MinHeight.Value.Lower(ctx),
		MaxWidth:    s.MaxWidth.Value.Lower(ctx),
		MaxHeight:   s.MaxHeight.Value.Lower(ctx),
		AspectRatio: aspectRatio,

		Padding: lowerSides(s.Padding.Value),
		Margin:  lowerSides(s.Margin.Value),
		Inset:   lowerSides(s.Inset.Value),

		FlexDirection: s.FlexDirection.Value,
		FlexWrap:      s.FlexWrap.Value,
		FlexBasis:     s.FlexBasis.Value.Lower(ctx),
		FlexGrow:      s.FlexGrow.Value,
		FlexShrink:    s.FlexShrink.Value,

		GridTemplateColumns: LowerGridTemplateComponents(ctx, s.GridTemplateColumns.Value),
		GridTemplateRows:    LowerGridTemplateComponents(ctx, s.GridTemplateRows.Value),
		GridTemplateAreas:   s.GridTemplateAreas.Value,
		GridAutoColumns:     LowerTrackSizeList(ctx, s.GridAutoColumns.Value),
		GridAutoRows:        LowerTrackSizeList(ctx, s.GridAutoRows.Value),
		GridAutoFlow:        s.GridAutoFlow.Value,
		GridColumnStart:     s.GridColumnStart.Value,
		GridColumnEnd:       s.GridColumnEnd.Value,
		GridRowStart:        s.GridRowStart.Value,
		GridRowEnd:          s.GridRowEnd.Value,

		JustifyItems:   s.JustifyItems.Value,
		AlignItems:     s.AlignItems.Value,
		JustifySelf:    s.JustifySelf.Value,
		AlignSelf:      s.AlignSelf.Value,
		JustifyContent: s.JustifyContent.Value,
		AlignContent:   s.AlignContent.Value,
		RowGap:         s.RowGap.Value.Lower(ctx),
		ColumnGap:      s.ColumnGap.Value.Lower(ctx),

		BorderWidth: Sides[float32]{
			Top:    s.BorderWidth.Value.Top.ResolveToPx(ctx, 0),
			Right:  s.BorderWidth.Value.Right.ResolveToPx(ctx, 0),
			Bottom: s.BorderWidth.Value.Bottom.ResolveToPx(ctx, 0),
			Left:   s.BorderWidth.Value.Left.ResolveToPx(ctx, 0),
		},
	}
}

// FontStyle is the input the text/font service consumes for one run,
// spec.md §4.8 and §6.2's load_font/layout_text parameters. Lengths that
// are naturally resolved against the node's own font size (letter/word
// spacing, line-height) are resolved to pixels here; percentage
// line-height, if ever supplied, resolves against the font size too.
type FontStyle struct {
	Color                 Color
	FontFamily            []string
	FontSizePx            float32
	FontWeight            int
	FontStyle             FontStyleKeyword
	LineHeightPx          float32
	LetterSpacingPx       float32
	WordSpacingPx         float32
	TextAlign             TextAlign
	TextOverflow          TextOverflow
	TextTransform         TextTransform
	LineClamp             int
	WordBreak             WordBreak
	OverflowWrap          OverflowWrap
	FontVariationSettings map[string]float32
	FontFeatureSettings   map[string]int
	ImageRendering        ImageRendering
	TextShadow            []TextShadow
}

// ResolveToFontStyle lowers the text-inherited properties to the
// font service's input form, spec.md §4.2's resolve_to_font_style.
func (s Style) ResolveToFontStyle(ctx core.RenderContext) FontStyle {
	fontSize := s.FontSize.Value.ResolveToPx(ctx, 0)
	lineHeight := s.LineHeight.Value
	var lineHeightPx float32
	if lineHeight.IsAuto() {
		lineHeightPx = fontSize * 1.2
	} else if lineHeight.Unit == UnitPercentage {
		lineHeightPx = fontSize * lineHeight.Value / 100.0
	} else {
		lineHeightPx = lineHeight.ResolveToPx(ctx, fontSize)
	}

	return FontStyle{
		Color:                 s.Color.Value,
		FontFamily:            s.FontFamily.Value,
		FontSizePx:            fontSize,
		FontWeight:            s.FontWeight.Value,
		FontStyle:             s.FontStyle.Value,
		LineHeightPx:          lineHeightPx,
		LetterSpacingPx:       s.LetterSpacing.Value.ResolveToPx(ctx, fontSize),
		WordSpacingPx:         s.WordSpacing.Value.ResolveToPx(ctx, fontSize),
		TextAlign:             s.TextAlign.Value,
		TextOverflow:          s.TextOverflow.Value,
		TextTransform:         s.TextTransform.Value,
		LineClamp:             s.LineClamp.Value,
		WordBreak:             s.WordBreak.Value,
		OverflowWrap:          s.OverflowWrap.Value,
		FontVariationSettings: s.FontVariationSettings.Value,
		FontFeatureSettings:   s.FontFeatureSettings.Value,
		ImageRendering:        s.ImageRendering.Value,
		TextShadow:            s.TextShadow.Value,
	}
}
