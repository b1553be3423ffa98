package style

// Style is the flat, longhand-field CSS-subset record spec.md §3.3
// describes. Every field is wrapped in Property[T] so the
// value/inherit/unset lifecycle applies uniformly; InheritFrom folds a
// parent's resolved style into a child's unset/inherit fields before
// lowering. Grounded on the teacher's pkg/css/style.go flat
// map[string]string model, generalized to typed fields, and on
// takumi's node/mod.rs inherit_style merge of "inheritable_style".
type Style struct {
	// Box sizing
	BoxSizing   Property[BoxSizing]
	Width       Property[Length]
	Height      Property[Length]
	MinWidth    Property[Length]
	MinHeight   Property[Length]
	MaxWidth    Property[Length]
	MaxHeight   Property[Length]
	AspectRatio Property[*float32] // nil = auto

	// Spacing
	Padding Property[Sides[Length]]
	Margin  Property[Sides[Length]]
	Inset   Property[Sides[Length]]

	// Layout algorithm
	Display       Property[Display]
	FlexDirection Property[FlexDirection]
	FlexWrap      Property[FlexWrap]
	FlexBasis     Property[Length]
	FlexGrow      Property[float32]
	FlexShrink    Property[float32]

	GridTemplateColumns Property[[]GridTemplateComponent]
	GridTemplateRows    Property[[]GridTemplateComponent]
	GridTemplateAreas   Property[map[string]GridAreaRect]
	GridAutoColumns     Property[[]TrackSize]
	GridAutoRows        Property[[]TrackSize]
	GridAutoFlow        Property[GridAutoFlow]
	GridColumnStart     Property[GridPlacement]
	GridColumnEnd       Property[GridPlacement]
	GridRowStart        Property[GridPlacement]
	GridRowEnd          Property[GridPlacement]

	JustifyItems   Property[AlignItems]
	AlignItems     Property[AlignItems]
	JustifySelf    Property[AlignSelf]
	AlignSelf      Property[AlignSelf]
	JustifyContent Property[JustifyContent]
	AlignContent   Property[AlignContent]
	RowGap         Property[Length]
	ColumnGap      Property[Length]

	// Borders
	BorderWidth  Property[Sides[Length]]
	BorderRadius Property[Sides[Length]] // corners reuse Sides' 4 slots: Top=TL, Right=TR, Bottom=BR, Left=BL
	BorderColor  Property[Color]

	// Backgrounds
	BackgroundColor Property[Color]
	BackgroundImage Property[[]BackgroundLayer]

	// Effects
	BoxShadow       Property[[]BoxShadow]
	Transform       Property[Transforms]
	TransformOrigin Property[BackgroundPosition]
	MaskImage       Property[string] // image src; resolved via the image store like an image node's src
	MaskSize        Property[BackgroundSize]
	MaskPosition    Property[BackgroundPosition]
	MaskRepeat      Property[BackgroundRepeat]

	// Text inherited
	Color                  Property[Color]
	FontFamily             Property[[]string]
	FontSize               Property[Length]
	FontWeight             Property[int]
	FontStyle              Property[FontStyleKeyword]
	LineHeight             Property[Length]
	LetterSpacing          Property[Length]
	WordSpacing            Property[Length]
	TextAlign              Property[TextAlign]
	TextOverflow           Property[TextOverflow]
	TextTransform          Property[TextTransform]
	LineClamp              Property[int] // 0 = none
	WordBreak              Property[WordBreak]
	OverflowWrap           Property[OverflowWrap]
	FontVariationSettings  Property[map[string]float32]
	FontFeatureSettings    Property[map[string]int]
	ImageRendering         Property[ImageRendering]
	TextShadow             Property[[]TextShadow]

	// Image-only (not inherited, but a longhand field like everything
	// else here; only consulted by node.Image)
	ObjectFit      Property[ObjectFit]
	ObjectPosition Property[BackgroundPosition]
}

// Initial returns the style with every property at its CSS initial
// value, used as the root node's effective parent.
func Initial() Style {
	var s Style
	s.BoxSizing = Set(BoxSizingContentBox)
	s.Width = Set(Auto)
	s.Height = Set(Auto)
	s.MinWidth = Set(Auto)
	s.MinHeight = Set(Auto)
	s.MaxWidth = Set(Auto)
	s.MaxHeight = Set(Auto)
	s.Padding = Set(NewSides(Px(0)))
	s.Margin = Set(NewSides(Px(0)))
	s.Inset = Set(NewSides(Auto))
	s.Display = Set(DisplayFlex)
	s.FlexDirection = Set(FlexRow)
	s.FlexWrap = Set(FlexNoWrap)
	s.FlexBasis = Set(Auto)
	s.FlexGrow = Set(float32(0))
	s.FlexShrink = Set(float32(1))
	s.GridAutoFlow = Set(GridFlowRow)
	s.JustifyItems = Set(AlignStretch)
	s.AlignItems = Set(AlignStretch)
	s.JustifySelf = Set(AlignSelfAuto)
	s.AlignSelf = Set(AlignSelfAuto)
	s.JustifyContent = Set(JustifyStart)
	s.AlignContent = Set(AlignContentStretch)
	s.RowGap = Set(Px(0))
	s.ColumnGap = Set(Px(0))
	s.BorderWidth = Set(NewSides(Px(0)))
	s.BorderRadius = Set(NewSides(Px(0)))
	s.BorderColor = Set(Black)
	s.BackgroundColor = Set(Transparent)
	s.TransformOrigin = Set(BackgroundPositionCenter)
	s.MaskSize = Set(BackgroundSize{Mode: BackgroundSizeAuto})
	s.MaskPosition = Set(BackgroundPositionCenter)
	s.MaskRepeat = Set(BackgroundRepeatValue)
	s.Color = Set(Black)
	s.FontFamily = Set([]string{"sans-serif"})
	s.FontSize = Set(Px(16))
	s.FontWeight = Set(400)
	s.FontStyle = Set(FontStyleNormal)
	s.LineHeight = Set(Auto) // auto -> 1.2 * font-size, resolved during lowering
	s.LetterSpacing = Set(Px(0))
	s.WordSpacing = Set(Px(0))
	s.TextAlign = Set(TextAlignStart)
	s.TextOverflow = Set(TextOverflowClip)
	s.TextTransform = Set(TextTransformNone)
	s.LineClamp = Set(0)
	s.WordBreak = Set(WordBreakNormal)
	s.OverflowWrap = Set(OverflowWrapNormal)
	s.ImageRendering = Set(ImageRenderingAuto)
	s.ObjectFit = Set(ObjectFitFill)
	s.ObjectPosition = Set(BackgroundPositionCenter)
	return s
}

// inheritableProp resolves one property given the parent's already
// resolved value for it, folding unset/inherit per the inheritable flag.
func inheritableProp[T any](p Property[T], parentResolved T, initial T, inheritable bool) T {
	return p.Resolve(parentResolved, initial, inheritable)
}

// InheritFrom folds s's unset/inherit properties against the parent's
// already-resolved style, returning a new Style with every field
// resolved to an explicit value. Spec.md §4.2's inherit_from. Only the
// text-inherited category (plus color) is inheritable; everything else
// falls back to its initial value when unset, matching CSS's default
// non-inherited behavior.
func (s Style) InheritFrom(parent Style) Style {
	init := Initial()
	out := s

	out.Color = Set(inheritableProp(s.Color, parent.Color.Value, init.Color.Value, true))
	out.FontFamily = Set(inheritableProp(s.FontFamily, parent.FontFamily.Value, init.FontFamily.Value, true))
	out.FontSize = Set(inheritableProp(s.FontSize, parent.FontSize.Value, init.FontSize.Value, true))
	out.FontWeight = Set(inheritableProp(s.FontWeight, parent.FontWeight.Value, init.FontWeight.Value, true))
	out.FontStyle = Set(inheritableProp(s.FontStyle, parent.FontStyle.Value, init.FontStyle.Value, true))
	out.LineHeight = Set(inheritableProp(s.LineHeight, parent.LineHeight.Value, init.LineHeight.Value, true))
	out.LetterSpacing = Set(inheritableProp(s.LetterSpacing, parent.LetterSpacing.Value, init.LetterSpacing.Value, true))
	out.WordSpacing = Set(inheritableProp(s.WordSpacing, parent.WordSpacing.Value, init.WordSpacing.Value, true))
	out.TextAlign = Set(inheritableProp(s.TextAlign, parent.TextAlign.Value, init.TextAlign.Value, true))
	out.TextOverflow = Set(inheritableProp(s.TextOverflow, parent.TextOverflow.Value, init.TextOverflow.Value, true))
	out.TextTransform = Set(inheritableProp(s.TextTransform, parent.TextTransform.Value, init.TextTransform.Value, true))
	out.LineClamp = Set(inheritableProp(s.LineClamp, parent.LineClamp.Value, init.LineClamp.Value, true))
	out.WordBreak = Set(inheritableProp(s.WordBreak, parent.WordBreak.Value, init.WordBreak.Value, true))
	out.OverflowWrap = Set(inheritableProp(s.OverflowWrap, parent.OverflowWrap.Value, init.OverflowWrap.Value, true))
	out.FontVariationSettings = Set(inheritableProp(s.FontVariationSettings, parent.FontVariationSettings.Value, init.FontVariationSettings.Value, true))
	out.FontFeatureSettings = Set(inheritableProp(s.FontFeatureSettings, parent.FontFeatureSettings.Value, init.FontFeatureSettings.Value, true))
	out.ImageRendering = Set(inheritableProp(s.ImageRendering, parent.ImageRendering.Value, init.ImageRendering.Value, true))
	out.TextShadow = Set(inheritableProp(s.TextShadow, parent.TextShadow.Value, init.TextShadow.Value, true))

	resolveNonInherited(&out.BoxSizing, init.BoxSizing)
	resolveNonInherited(&out.Width, init.Width)
	resolveNonInherited(&out.Height, init.Height)
	resolveNonInherited(&out.MinWidth, init.MinWidth)
	resolveNonInherited(&out.MinHeight, init.MinHeight)
	resolveNonInherited(&out.MaxWidth, init.MaxWidth)
	resolveNonInherited(&out.MaxHeight, init.MaxHeight)
	resolveNonInherited(&out.Padding, init.Padding)
	resolveNonInherited(&out.Margin, init.Margin)
	resolveNonInherited(&out.Inset, init.Inset)
	resolveNonInherited(&out.Display, init.Display)
	resolveNonInherited(&out.FlexDirection, init.FlexDirection)
	resolveNonInherited(&out.FlexWrap, init.FlexWrap)
	resolveNonInherited(&out.FlexBasis, init.FlexBasis)
	resolveNonInherited(&out.FlexGrow, init.FlexGrow)
	resolveNonInherited(&out.FlexShrink, init.FlexShrink)
	resolveNonInherited(&out.GridAutoFlow, init.GridAutoFlow)
	resolveNonInherited(&out.JustifyItems, init.JustifyItems)
	resolveNonInherited(&out.AlignItems, init.AlignItems)
	resolveNonInherited(&out.JustifySelf, init.JustifySelf)
	resolveNonInherited(&out.AlignSelf, init.AlignSelf)
	resolveNonInherited(&out.JustifyContent, init.JustifyContent)
	resolveNonInherited(&out.AlignContent, init.AlignContent)
	resolveNonInherited(&out.RowGap, init.RowGap)
	resolveNonInherited(&out.ColumnGap, init.ColumnGap)
	resolveNonInherited(&out.BorderWidth, init.BorderWidth)
	resolveNonInherited(&out.BorderRadius, init.BorderRadius)
	resolveNonInherited(&out.BorderColor, init.BorderColor)
	resolveNonInherited(&out.BackgroundColor, init.BackgroundColor)
	resolveNonInherited(&out.BackgroundImage, init.BackgroundImage)
	resolveNonInherited(&out.BoxShadow, init.BoxShadow)
	resolveNonInherited(&out.Transform, init.Transform)
	resolveNonInherited(&out.TransformOrigin, init.TransformOrigin)
	resolveNonInherited(&out.MaskImage, init.MaskImage)
	resolveNonInherited(&out.MaskSize, init.MaskSize)
	resolveNonInherited(&out.MaskPosition, init.MaskPosition)
	resolveNonInherited(&out.MaskRepeat, init.MaskRepeat)
	resolveNonInherited(&out.ObjectFit, init.ObjectFit)
	resolveNonInherited(&out.ObjectPosition, init.ObjectPosition)
	resolveNonInherited(&out.AspectRatio, init.AspectRatio)
	resolveNonInherited(&out.GridTemplateColumns, init.GridTemplateColumns)
	resolveNonInherited(&out.GridTemplateRows, init.GridTemplateRows)
	resolveNonInherited(&out.GridTemplateAreas, init.GridTemplateAreas)
	resolveNonInherited(&out.GridAutoColumns, init.GridAutoColumns)
	resolveNonInherited(&out.GridAutoRows, init.GridAutoRows)
	resolveNonInherited(&out.GridColumnStart, init.GridColumnStart)
	resolveNonInherited(&out.GridColumnEnd, init.GridColumnEnd)
	resolveNonInherited(&out.GridRowStart, init.GridRowStart)
	resolveNonInherited(&out.GridRowEnd, init.GridRowEnd)

	return out
}

// resolveNonInherited folds a non-inheritable property's unset state to
// its initial value in place (non-inherited properties never look at
// the parent, per CSS: unset on a non-inherited property means initial).
// An explicit inherit on such a property also resolves to initial; the
// parent's value is not consulted.
func resolveNonInherited[T any](p *Property[T], initial Property[T]) {
	if p.Kind != PropertyValue {
		*p = initial
	}
}
