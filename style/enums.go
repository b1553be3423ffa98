package style

// BoxSizing selects whether width/height include border+padding.
type BoxSizing uint8

const (
	BoxSizingContentBox BoxSizing = iota
	BoxSizingBorderBox
)

// Display is the layout algorithm selector. Spec.md §3.3 restricts this
// to flex/grid (no block/inline DOM layout in this engine).
type Display uint8

const (
	DisplayFlex Display = iota
	DisplayGrid
	DisplayNone
)

type FlexDirection uint8

const (
	FlexRow FlexDirection = iota
	FlexRowReverse
	FlexColumn
	FlexColumnReverse
)

type FlexWrap uint8

const (
	FlexNoWrap FlexWrap = iota
	FlexWrapWrap
	FlexWrapReverse
)

type JustifyContent uint8

const (
	JustifyStart JustifyContent = iota
	JustifyEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

type AlignItems uint8

const (
	AlignStretch AlignItems = iota
	AlignStart
	AlignEnd
	AlignCenter
	AlignBaseline
)

// AlignContent reuses JustifyContent's keyword set plus stretch, so it
// gets its own type to keep the stretch option distinct from AlignItems'
// use in content-distribution contexts.
type AlignContent uint8

const (
	AlignContentStretch AlignContent = iota
	AlignContentStart
	AlignContentEnd
	AlignContentCenter
	AlignContentSpaceBetween
	AlignContentSpaceAround
	AlignContentSpaceEvenly
)

// JustifySelf/AlignSelf add "auto" (defer to the container's *-items
// value) on top of AlignItems' keywords.
type AlignSelf uint8

const (
	AlignSelfAuto AlignSelf = iota
	AlignSelfStretch
	AlignSelfStart
	AlignSelfEnd
	AlignSelfCenter
	AlignSelfBaseline
)

type GridAutoFlow uint8

const (
	GridFlowRow GridAutoFlow = iota
	GridFlowColumn
	GridFlowRowDense
	GridFlowColumnDense
)

type TextAlign uint8

const (
	TextAlignStart TextAlign = iota
	TextAlignEnd
	TextAlignLeft
	TextAlignRight
	TextAlignCenter
	TextAlignJustify
)

type TextOverflow uint8

const (
	TextOverflowClip TextOverflow = iota
	TextOverflowEllipsis
)

type TextTransform uint8

const (
	TextTransformNone TextTransform = iota
	TextTransformUppercase
	TextTransformLowercase
	TextTransformCapitalize
)

type WordBreak uint8

const (
	WordBreakNormal WordBreak = iota
	WordBreakBreakAll
	WordBreakKeepAll
)

type OverflowWrap uint8

const (
	OverflowWrapNormal OverflowWrap = iota
	OverflowWrapAnywhere
	OverflowWrapBreakWord
)

type FontStyleKeyword uint8

const (
	FontStyleNormal FontStyleKeyword = iota
	FontStyleItalic
	FontStyleOblique
)

// ImageRendering selects the sampling algorithm for image overlays under
// transform, spec.md §4.6.
type ImageRendering uint8

const (
	ImageRenderingAuto ImageRendering = iota // bilinear
	ImageRenderingPixelated
)
