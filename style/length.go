package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xiaoxigua1/takumi-go/core"
)

// Unit names the kind of a Length value.
type Unit uint8

const (
	UnitAuto Unit = iota
	UnitPx
	UnitPercentage
	UnitRem
	UnitEm
	UnitVh
	UnitVw
	UnitCm
	UnitMm
	UnitIn
	UnitQ
	UnitPt
	UnitPc
)

// Length is a CSS length-or-percentage-or-auto value, resolved to pixels
// against a core.RenderContext and an axis reference length. See
// spec.md §3.1.
type Length struct {
	Unit  Unit
	Value float32 // meaningless when Unit == UnitAuto
}

// Auto is the zero-value auto length.
var Auto = Length{Unit: UnitAuto}

// Px constructs a pixel length.
func Px(v float32) Length { return Length{Unit: UnitPx, Value: v} }

// Percent constructs a percentage length (0-100 scale, matching the CSS
// percentage() function and spec.md §3.1).
func Percent(v float32) Length { return Length{Unit: UnitPercentage, Value: v} }

// IsAuto reports whether the length is the auto keyword.
func (l Length) IsAuto() bool { return l.Unit == UnitAuto }

// Physical unit conversion constants, 96 px/in per spec.md §3.1.
const (
	pxPerIn = 96.0
	pxPerCm = pxPerIn / 2.54
	pxPerMm = pxPerCm / 10.0
	pxPerQ  = pxPerCm / 40.0
	pxPerPt = pxPerIn / 72.0
	pxPerPc = pxPerIn / 6.0
)

// ResolveToPx resolves the length to a pixel value against the given
// render context. percentageBasis is the axis reference length used for
// percentage resolution; it is ignored for every other unit. Auto
// resolves to 0 when a px value is demanded, per spec.md §4.1.
func (l Length) ResolveToPx(ctx core.RenderContext, percentageBasis float32) float32 {
	switch l.Unit {
	case UnitAuto:
		return 0
	case UnitPx:
		return l.Value
	case UnitPercentage:
		return (l.Value / 100.0) * percentageBasis
	case UnitRem:
		return l.Value * ctx.Viewport.RootFontSize
	case UnitEm:
		return l.Value * ctx.ParentFontSize
	case UnitVh:
		return l.Value * float32(ctx.Viewport.Height) / 100.0
	case UnitVw:
		return l.Value * float32(ctx.Viewport.Width) / 100.0
	case UnitCm:
		return l.Value * pxPerCm
	case UnitMm:
		return l.Value * pxPerMm
	case UnitIn:
		return l.Value * pxPerIn
	case UnitQ:
		return l.Value * pxPerQ
	case UnitPt:
		return l.Value * pxPerPt
	case UnitPc:
		return l.Value * pxPerPc
	default:
		return 0
	}
}

// LoweredLength is the three-valued form the layout engine consumes:
// a definite length in pixels, a percentage (0-1), or auto.
type LoweredLength struct {
	Kind       LoweredKind
	PxValue    float32
	Percentage float32 // 0-1 scale
}

type LoweredKind uint8

const (
	LoweredAuto LoweredKind = iota
	LoweredLength_
	LoweredPercentage
)

// Lower converts the length into the layout engine's three-valued form.
// Units that aren't already percentages or auto are resolved eagerly to
// pixels using ctx (em/rem/vw/vh/physical units have no layout-engine
// native representation).
func (l Length) Lower(ctx core.RenderContext) LoweredLength {
	switch l.Unit {
	case UnitAuto:
		return LoweredLength{Kind: LoweredAuto}
	case UnitPercentage:
		return LoweredLength{Kind: LoweredPercentage, Percentage: l.Value / 100.0}
	default:
		return LoweredLength{Kind: LoweredLength_, PxValue: l.ResolveToPx(ctx, 0)}
	}
}

// ParseLength parses a CSS length token such as "10px", "1.5em", "50%",
// or "auto". Grounded on the teacher's pkg/css/style.go ParseLength,
// extended to the full unit set from takumi's length_unit.rs.
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Length{}, fmt.Errorf("style: empty length")
	}
	if strings.EqualFold(s, "auto") {
		return Auto, nil
	}
	if strings.HasSuffix(s, "%") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 32)
		if err != nil {
			return Length{}, fmt.Errorf("style: bad percentage %q: %w", s, err)
		}
		return Percent(float32(v)), nil
	}

	unitTable := []struct {
		suffix string
		unit   Unit
	}{
		{"px", UnitPx}, {"rem", UnitRem}, {"em", UnitEm},
		{"vh", UnitVh}, {"vw", UnitVw}, {"cm", UnitCm}, {"mm", UnitMm},
		{"in", UnitIn}, {"q", UnitQ}, {"pt", UnitPt}, {"pc", UnitPc},
	}
	lower := strings.ToLower(s)
	for _, u := range unitTable {
		if strings.HasSuffix(lower, u.suffix) {
			numPart := s[:len(s)-len(u.suffix)]
			v, err := strconv.ParseFloat(strings.TrimSpace(numPart), 32)
			if err != nil {
				continue
			}
			return Length{Unit: u.unit, Value: float32(v)}, nil
		}
	}
	// Bare number: treated as px, matching takumi's Token::Number arm.
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return Length{}, fmt.Errorf("style: bad length %q", s)
	}
	return Px(float32(v)), nil
}
