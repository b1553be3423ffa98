package style

// PositionComponent is one axis of a `background-position`/`object-position`
// value: a keyword or an explicit length. Grounded on takumi's
// background_position.rs PositionComponent enum.
type PositionComponent struct {
	Keyword PositionKeyword
	Length  Length // used when Keyword == PositionKeywordNone
}

// PositionKeyword enumerates the CSS position keywords, folded across
// both axes since "center" is shared.
type PositionKeyword uint8

const (
	PositionKeywordNone PositionKeyword = iota
	PositionLeft
	PositionRight
	PositionTop
	PositionBottom
	PositionCenter
)

// ToLength resolves a keyword to its equivalent percentage length, or
// returns the explicit length unchanged.
func (p PositionComponent) ToLength() Length {
	switch p.Keyword {
	case PositionLeft, PositionTop:
		return Percent(0)
	case PositionCenter:
		return Percent(50)
	case PositionRight, PositionBottom:
		return Percent(100)
	default:
		return p.Length
	}
}

// BackgroundPosition is a resolved `background-position`/`object-position`
// pair, spec.md §4.4/§4.10.
type BackgroundPosition struct {
	X, Y PositionComponent
}

// BackgroundPositionCenter is the "center center" default.
var BackgroundPositionCenter = BackgroundPosition{
	X: PositionComponent{Keyword: PositionCenter},
	Y: PositionComponent{Keyword: PositionCenter},
}

// BackgroundSizeMode names the background-size keyword form.
type BackgroundSizeMode uint8

const (
	BackgroundSizeAuto BackgroundSizeMode = iota
	BackgroundSizeCover
	BackgroundSizeContain
	BackgroundSizeExplicit
)

// BackgroundSize is a resolved `background-size` value for one layer.
type BackgroundSize struct {
	Mode          BackgroundSizeMode
	Width, Height Length // used when Mode == BackgroundSizeExplicit; Height may be Auto
}

// RepeatStyle is the per-axis `background-repeat` keyword.
type RepeatStyle uint8

const (
	RepeatRepeat RepeatStyle = iota
	RepeatNoRepeat
	RepeatSpace
	RepeatRound
)

// BackgroundRepeat is the resolved `background-repeat` value for one
// layer, one keyword per axis (CSS allows e.g. "repeat-x" as shorthand
// for "repeat no-repeat").
type BackgroundRepeat struct {
	X, Y RepeatStyle
}

// BackgroundRepeatValue is the "repeat repeat" default.
var BackgroundRepeatValue = BackgroundRepeat{X: RepeatRepeat, Y: RepeatRepeat}

// BackgroundLayerKind distinguishes the three background-image layer
// forms spec.md §3.3 lists.
type BackgroundLayerKind uint8

const (
	BackgroundLayerGradient BackgroundLayerKind = iota
	BackgroundLayerNoise
	BackgroundLayerNone
)

// NoiseBackground parameterizes the supplemented noise layer (SPEC_FULL
// §12): a deterministic value-noise field seeded from the node's style so
// repeated renders of the same node are byte-identical.
type NoiseBackground struct {
	Seed      uint64
	Scale     float32 // lattice cell size in pixels
	BaseColor Color
}

// BackgroundLayer is one entry of the `background-image` layer list,
// paired with its own position/size/repeat (each independently
// defaulted per-layer per spec.md §4.4).
type BackgroundLayer struct {
	Kind     BackgroundLayerKind
	Gradient Gradient
	Noise    NoiseBackground

	Position BackgroundPosition
	Size     BackgroundSize
	Repeat   BackgroundRepeat
}

// BoxShadow is one entry of the `box-shadow` list, spec.md §4.7.
type BoxShadow struct {
	OffsetX, OffsetY Length
	BlurRadius       Length
	Spread           Length
	Color            Color
	Inset            bool
}

// TextShadow is one entry of the `text-shadow` list: the same model as
// BoxShadow with spread fixed at 0 and never inset, per spec.md §4.7.
type TextShadow struct {
	OffsetX, OffsetY Length
	BlurRadius       Length
	Color            Color
}

// ObjectFit is the `object-fit` keyword controlling how a replaced
// element's intrinsic image is fit into its box, spec.md §4.10.
type ObjectFit uint8

const (
	ObjectFitFill ObjectFit = iota
	ObjectFitContain
	ObjectFitCover
	ObjectFitNone
	ObjectFitScaleDown
)
