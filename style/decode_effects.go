package style

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// backgroundImageDecoder accepts either a raw CSS `background-image`
// string (one or more comma-separated `linear-gradient(...)`/
// `radial-gradient(...)` functions) or a structured array of layer
// objects each describing a gradient/noise layer plus its own
// position/size/repeat. Grounded on the teacher's pkg/css/gradient.go
// string-splitting approach (splitGradientParts respecting parens) for
// the CSS-string path.
func backgroundImageDecoder(dst *Property[[]BackgroundLayer]) fieldDecoder {
	return func(raw json.RawMessage) error {
		if k, ok := unmarshalPropertyKeyword(raw); ok {
			*dst = Property[[]BackgroundLayer]{Kind: k}
			return nil
		}
		var css string
		if err := json.Unmarshal(raw, &css); err == nil {
			layers, err := parseBackgroundImageCSS(css)
			if err != nil {
				return err
			}
			*dst = Set(layers)
			return nil
		}

		var items []struct {
			Type     string          `json:"type"`
			Gradient json.RawMessage `json:"gradient"`
			Noise    json.RawMessage `json:"noise"`
			Position json.RawMessage `json:"position"`
			Size     json.RawMessage `json:"size"`
			Repeat   json.RawMessage `json:"repeat"`
		}
		if err := json.Unmarshal(raw, &items); err != nil {
			return err
		}
		var layers []BackgroundLayer
		for _, item := range items {
			layer := BackgroundLayer{
				Position: BackgroundPositionCenter,
				Size:     BackgroundSize{Mode: BackgroundSizeAuto},
				Repeat:   BackgroundRepeatValue,
			}
			switch item.Type {
			case "noise":
				layer.Kind = BackgroundLayerNoise
				if item.Noise != nil {
					if err := json.Unmarshal(item.Noise, &layer.Noise); err != nil {
						return err
					}
				}
			default:
				layer.Kind = BackgroundLayerGradient
				if item.Gradient != nil {
					var g struct {
						Angle float32 `json:"angle"`
						Stops []struct {
							Color    string  `json:"color"`
							Position *float32 `json:"position"`
						} `json:"stops"`
					}
					if err := json.Unmarshal(item.Gradient, &g); err != nil {
						return err
					}
					layer.Gradient.Kind = GradientLinear
					layer.Gradient.AngleDegrees = g.Angle
					for _, st := range g.Stops {
						c, err := ParseColor(st.Color)
						if err != nil {
							return err
						}
						gs := GradientStop{Color: c}
						if st.Position != nil {
							gs.HasPosition = true
							gs.Position = *st.Position
						}
						layer.Gradient.Stops = append(layer.Gradient.Stops, gs)
					}
				}
			}
			if item.Position != nil {
				var p Property[BackgroundPosition]
				if err := positionDecoder(&p)(item.Position); err != nil {
					return err
				}
				layer.Position = p.Value
			}
			if item.Size != nil {
				sz, err := decodeBackgroundSizeRaw(item.Size)
				if err != nil {
					return err
				}
				layer.Size = sz
			}
			if item.Repeat != nil {
				var repStr string
				if err := json.Unmarshal(item.Repeat, &repStr); err != nil {
					return err
				}
				layer.Repeat = parseBackgroundRepeatString(repStr)
			}
			layers = append(layers, layer)
		}
		*dst = Set(layers)
		return nil
	}
}

func decodeBackgroundSizeRaw(raw json.RawMessage) (BackgroundSize, error) {
	var kw string
	if err := json.Unmarshal(raw, &kw); err == nil {
		switch kw {
		case "cover":
			return BackgroundSize{Mode: BackgroundSizeCover}, nil
		case "contain":
			return BackgroundSize{Mode: BackgroundSizeContain}, nil
		case "auto":
			return BackgroundSize{Mode: BackgroundSizeAuto}, nil
		default:
			parts := strings.Fields(kw)
			w, err := ParseLength(parts[0])
			if err != nil {
				return BackgroundSize{}, err
			}
			h := Auto
			if len(parts) > 1 {
				h, err = ParseLength(parts[1])
				if err != nil {
					return BackgroundSize{}, err
				}
			}
			return BackgroundSize{Mode: BackgroundSizeExplicit, Width: w, Height: h}, nil
		}
	}
	var obj struct {
		Width, Height string
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return BackgroundSize{}, err
	}
	w, err := ParseLength(obj.Width)
	if err != nil {
		return BackgroundSize{}, err
	}
	h := Auto
	if obj.Height != "" {
		h, err = ParseLength(obj.Height)
		if err != nil {
			return BackgroundSize{}, err
		}
	}
	return BackgroundSize{Mode: BackgroundSizeExplicit, Width: w, Height: h}, nil
}

func parseBackgroundRepeatString(s string) BackgroundRepeat {
	parts := strings.Fields(strings.ToLower(s))
	one := func(tok string) RepeatStyle {
		switch tok {
		case "no-repeat":
			return RepeatNoRepeat
		case "space":
			return RepeatSpace
		case "round":
			return RepeatRound
		default:
			return RepeatRepeat
		}
	}
	switch {
	case len(parts) == 0:
		return BackgroundRepeatValue
	case parts[0] == "repeat-x":
		return BackgroundRepeat{X: RepeatRepeat, Y: RepeatNoRepeat}
	case parts[0] == "repeat-y":
		return BackgroundRepeat{X: RepeatNoRepeat, Y: RepeatRepeat}
	case len(parts) == 1:
		v := one(parts[0])
		return BackgroundRepeat{X: v, Y: v}
	default:
		return BackgroundRepeat{X: one(parts[0]), Y: one(parts[1])}
	}
}

// parseBackgroundImageCSS splits a comma-separated list of gradient
// functions (respecting nested parens) and parses each one. Ported from
// the teacher's pkg/css/gradient.go splitGradientParts/parseColorStop.
func parseBackgroundImageCSS(css string) ([]BackgroundLayer, error) {
	funcs := splitTopLevelComma(css)
	var layers []BackgroundLayer
	for _, fn := range funcs {
		fn = strings.TrimSpace(fn)
		if fn == "" || strings.EqualFold(fn, "none") {
			continue
		}
		g, err := parseGradientFunction(fn)
		if err != nil {
			return nil, err
		}
		layers = append(layers, BackgroundLayer{
			Kind:     BackgroundLayerGradient,
			Gradient: g,
			Position: BackgroundPositionCenter,
			Size:     BackgroundSize{Mode: BackgroundSizeAuto},
			Repeat:   BackgroundRepeatValue,
		})
	}
	return layers, nil
}

func parseGradientFunction(fn string) (Gradient, error) {
	lower := strings.ToLower(fn)
	var kind GradientKind
	switch {
	case strings.HasPrefix(lower, "linear-gradient("):
		kind = GradientLinear
	case strings.HasPrefix(lower, "radial-gradient("):
		kind = GradientRadial
	default:
		return Gradient{}, fmt.Errorf("style: unrecognized gradient function %q", fn)
	}
	open := strings.Index(fn, "(")
	body := fn[open+1 : len(fn)-1]
	parts := splitTopLevelComma(body)
	if len(parts) == 0 {
		return Gradient{}, fmt.Errorf("style: empty gradient %q", fn)
	}

	g := Gradient{Kind: kind, Center: BackgroundPositionCenter}
	startIdx := 0
	first := strings.TrimSpace(parts[0])
	switch kind {
	case GradientLinear:
		if angle, ok := parseAngleToken(first); ok {
			g.AngleDegrees = angle
			startIdx = 1
		} else if strings.HasPrefix(strings.ToLower(first), "to ") {
			g.AngleDegrees = parseToSideKeyword(first)
			startIdx = 1
		} else {
			g.AngleDegrees = 180 // CSS default: "to bottom"
		}
	case GradientRadial:
		lf := strings.ToLower(first)
		if strings.Contains(lf, "circle") || strings.Contains(lf, "ellipse") || strings.Contains(lf, "at ") {
			if strings.Contains(lf, "circle") {
				g.Shape = RadialCircle
			}
			if idx := strings.Index(lf, "at "); idx >= 0 {
				pos, err := parsePositionString(first[idx+3:])
				if err == nil {
					g.Center = pos
				}
			}
			startIdx = 1
		}
	}

	for _, stop := range parts[startIdx:] {
		s, err := parseColorStopToken(strings.TrimSpace(stop))
		if err != nil {
			return Gradient{}, err
		}
		g.Stops = append(g.Stops, s)
	}
	return g, nil
}

func parseAngleToken(tok string) (float32, bool) {
	lower := strings.ToLower(tok)
	for _, unit := range []string{"deg", "grad", "turn", "rad"} {
		if strings.HasSuffix(lower, unit) {
			numStr := strings.TrimSuffix(lower, unit)
			v, err := strconv.ParseFloat(strings.TrimSpace(numStr), 64)
			if err != nil {
				return 0, false
			}
			switch unit {
			case "grad":
				return float32(v * 0.9), true
			case "turn":
				return float32(v * 360), true
			case "rad":
				return float32(v * 180 / 3.14159265358979), true
			default:
				return float32(v), true
			}
		}
	}
	return 0, false
}

func parseToSideKeyword(tok string) float32 {
	lower := strings.ToLower(strings.TrimPrefix(strings.ToLower(tok), "to "))
	switch strings.TrimSpace(lower) {
	case "top":
		return 0
	case "right":
		return 90
	case "bottom":
		return 180
	case "left":
		return 270
	case "top right", "right top":
		return 45
	case "bottom right", "right bottom":
		return 135
	case "bottom left", "left bottom":
		return 225
	case "top left", "left top":
		return 315
	default:
		return 180
	}
}

// parseColorStopToken parses one gradient stop token: a color optionally
// followed by one or two position hints ("red 10%", "red 10% 20%"), or a
// bare percentage standing alone as a midpoint hint. Only the first
// position is read; a second one is ignored.
func parseColorStopToken(tok string) (GradientStop, error) {
	fields := strings.Fields(tok)
	if len(fields) == 1 {
		if l, err := ParseLength(fields[0]); err == nil && l.Unit == UnitPercentage {
			return GradientStop{IsMidpointHint: true, MidpointHint: l.Value / 100.0}, nil
		}
	}
	if len(fields) == 0 {
		return GradientStop{}, fmt.Errorf("style: empty gradient stop")
	}
	c, err := ParseColor(fields[0])
	if err != nil {
		return GradientStop{}, err
	}
	stop := GradientStop{Color: c}
	if len(fields) > 1 {
		l, err := ParseLength(fields[1])
		if err != nil {
			return GradientStop{}, err
		}
		stop.HasPosition = true
		stop.Position = l.Value / 100.0
		if l.Unit != UnitPercentage {
			stop.Position = l.Value
		}
	}
	return stop, nil
}

// boxShadowDecoder accepts a raw CSS `box-shadow` string (comma
// separated, each `[inset] offsetX offsetY [blur] [spread] color`) or a
// structured array of shadow objects.
func boxShadowDecoder(dst *Property[[]BoxShadow]) fieldDecoder {
	return func(raw json.RawMessage) error {
		if k, ok := unmarshalPropertyKeyword(raw); ok {
			*dst = Property[[]BoxShadow]{Kind: k}
			return nil
		}
		var css string
		if err := json.Unmarshal(raw, &css); err == nil {
			shadows, err := parseShadowListCSS(css, true)
			if err != nil {
				return err
			}
			var out []BoxShadow
			for _, s := range shadows {
				out = append(out, BoxShadow{
					OffsetX: s.offsetX, OffsetY: s.offsetY,
					BlurRadius: s.blur, Spread: s.spread, Color: s.color, Inset: s.inset,
				})
			}
			*dst = Set(out)
			return nil
		}
		var items []struct {
			OffsetX string `json:"offsetX"`
			OffsetY string `json:"offsetY"`
			Blur    string `json:"blurRadius"`
			Spread  string `json:"spread"`
			Color   string `json:"color"`
			Inset   bool   `json:"inset"`
		}
		if err := json.Unmarshal(raw, &items); err != nil {
			return err
		}
		var out []BoxShadow
		for _, item := range items {
			bs, err := decodeBoxShadowFields(item.OffsetX, item.OffsetY, item.Blur, item.Spread, item.Color, item.Inset)
			if err != nil {
				return err
			}
			out = append(out, bs)
		}
		*dst = Set(out)
		return nil
	}
}

func decodeBoxShadowFields(ox, oy, blur, spread, color string, inset bool) (BoxShadow, error) {
	var bs BoxShadow
	bs.Inset = inset
	var err error
	if bs.OffsetX, err = lengthOrZero(ox); err != nil {
		return BoxShadow{}, err
	}
	if bs.OffsetY, err = lengthOrZero(oy); err != nil {
		return BoxShadow{}, err
	}
	if bs.BlurRadius, err = lengthOrZero(blur); err != nil {
		return BoxShadow{}, err
	}
	if bs.Spread, err = lengthOrZero(spread); err != nil {
		return BoxShadow{}, err
	}
	if color == "" {
		bs.Color = Black
	} else {
		if bs.Color, err = ParseColor(color); err != nil {
			return BoxShadow{}, err
		}
	}
	return bs, nil
}

func lengthOrZero(s string) (Length, error) {
	if s == "" {
		return Px(0), nil
	}
	return ParseLength(s)
}

// textShadowDecoder accepts a raw CSS `text-shadow` string (comma
// separated `offsetX offsetY [blur] color`, no inset/spread per
// spec.md §4.7) or a structured array of shadow objects.
func textShadowDecoder(dst *Property[[]TextShadow]) fieldDecoder {
	return func(raw json.RawMessage) error {
		if k, ok := unmarshalPropertyKeyword(raw); ok {
			*dst = Property[[]TextShadow]{Kind: k}
			return nil
		}
		var css string
		if err := json.Unmarshal(raw, &css); err == nil {
			shadows, err := parseShadowListCSS(css, false)
			if err != nil {
				return err
			}
			var out []TextShadow
			for _, s := range shadows {
				out = append(out, TextShadow{
					OffsetX: s.offsetX, OffsetY: s.offsetY,
					BlurRadius: s.blur, Color: s.color,
				})
			}
			*dst = Set(out)
			return nil
		}
		var items []struct {
			OffsetX string `json:"offsetX"`
			OffsetY string `json:"offsetY"`
			Blur    string `json:"blurRadius"`
			Color   string `json:"color"`
		}
		if err := json.Unmarshal(raw, &items); err != nil {
			return err
		}
		var out []TextShadow
		for _, item := range items {
			bs, err := decodeBoxShadowFields(item.OffsetX, item.OffsetY, item.Blur, "", item.Color, false)
			if err != nil {
				return err
			}
			out = append(out, TextShadow{
				OffsetX: bs.OffsetX, OffsetY: bs.OffsetY, BlurRadius: bs.BlurRadius, Color: bs.Color,
			})
		}
		*dst = Set(out)
		return nil
	}
}

type parsedShadow struct {
	offsetX, offsetY, blur, spread Length
	color                          Color
	inset                          bool
}

// parseShadowListCSS parses a comma-separated box-shadow/text-shadow
// list. allowInsetAndSpread disables the 4th length (spread) and the
// "inset" keyword for text-shadow, per spec.md §4.7.
func parseShadowListCSS(css string, allowInsetAndSpread bool) ([]parsedShadow, error) {
	entries := splitTopLevelComma(css)
	var out []parsedShadow
	for _, entry := range entries {
		fields := strings.Fields(entry)
		var shadow parsedShadow
		var lengths []Length
		for _, f := range fields {
			if allowInsetAndSpread && strings.EqualFold(f, "inset") {
				shadow.inset = true
				continue
			}
			if l, err := ParseLength(f); err == nil {
				lengths = append(lengths, l)
				continue
			}
			c, err := ParseColor(f)
			if err != nil {
				return nil, fmt.Errorf("style: bad shadow token %q: %w", f, err)
			}
			shadow.color = c
		}
		if shadow.color == (Color{}) {
			shadow.color = Black
		}
		if len(lengths) > 0 {
			shadow.offsetX = lengths[0]
		}
		if len(lengths) > 1 {
			shadow.offsetY = lengths[1]
		}
		if len(lengths) > 2 {
			shadow.blur = lengths[2]
		}
		if allowInsetAndSpread && len(lengths) > 3 {
			shadow.spread = lengths[3]
		}
		out = append(out, shadow)
	}
	return out, nil
}

// transformDecoder accepts a raw CSS `transform` string
// ("translate(10px, 20px) rotate(45deg)") or a structured array of
// transform-op objects.
func transformDecoder(dst *Property[Transforms]) fieldDecoder {
	return func(raw json.RawMessage) error {
		if k, ok := unmarshalPropertyKeyword(raw); ok {
			*dst = Property[Transforms]{Kind: k}
			return nil
		}
		var css string
		if err := json.Unmarshal(raw, &css); err == nil {
			ops, err := parseTransformCSS(css)
			if err != nil {
				return err
			}
			*dst = Set(ops)
			return nil
		}
		var items []struct {
			Op     string    `json:"op"`
			X      *float64  `json:"x"`
			Y      *float64  `json:"y"`
			Y2     *float64  `json:"y2"`
			Angle  *float64  `json:"angle"`
			Matrix []float32 `json:"matrix"`
		}
		if err := json.Unmarshal(raw, &items); err != nil {
			return err
		}
		var ops Transforms
		for _, item := range items {
			op, err := transformOpFromFields(item.Op, item.X, item.Y, item.Angle, item.Matrix)
			if err != nil {
				return err
			}
			ops = append(ops, op)
		}
		*dst = Set(ops)
		return nil
	}
}

func transformOpFromFields(kind string, x, y, angle *float64, matrix []float32) (TransformOp, error) {
	f32 := func(p *float64) float32 {
		if p == nil {
			return 0
		}
		return float32(*p)
	}
	switch kind {
	case "translate":
		return TransformOp{Kind: TransformTranslate, TranslateX: Px(f32(x)), TranslateY: Px(f32(y))}, nil
	case "scale":
		return TransformOp{Kind: TransformScale, ScaleX: f32(x), ScaleY: f32(y)}, nil
	case "rotate":
		return TransformOp{Kind: TransformRotate, RotateDeg: f32(angle)}, nil
	case "skew":
		return TransformOp{Kind: TransformSkew, SkewXDeg: f32(x), SkewYDeg: f32(y)}, nil
	case "matrix":
		if len(matrix) != 6 {
			return TransformOp{}, fmt.Errorf("style: matrix() needs 6 values")
		}
		return TransformOp{Kind: TransformMatrix, Matrix: Affine{
			A: matrix[0], B: matrix[1], C: matrix[2], D: matrix[3], X: matrix[4], Y: matrix[5],
		}}, nil
	default:
		return TransformOp{}, fmt.Errorf("style: unrecognized transform op %q", kind)
	}
}

// parseTransformCSS parses a space-separated list of transform
// functions. Ported in spirit from takumi's Transform::from_css
// function-name dispatch (translate/translateX/translateY/scale/
// scaleX/scaleY/skew/skewX/skewY/rotate/matrix).
func parseTransformCSS(css string) (Transforms, error) {
	var ops Transforms
	for _, fn := range splitTransformFunctions(css) {
		fn = strings.TrimSpace(fn)
		if fn == "" {
			continue
		}
		open := strings.Index(fn, "(")
		if open < 0 || !strings.HasSuffix(fn, ")") {
			return nil, fmt.Errorf("style: bad transform function %q", fn)
		}
		name := strings.ToLower(strings.TrimSpace(fn[:open]))
		args := splitTopLevelComma(fn[open+1 : len(fn)-1])
		for i := range args {
			args[i] = strings.TrimSpace(args[i])
		}

		switch name {
		case "translate":
			x, err := ParseLength(args[0])
			if err != nil {
				return nil, err
			}
			y := Px(0)
			if len(args) > 1 {
				if y, err = ParseLength(args[1]); err != nil {
					return nil, err
				}
			}
			ops = append(ops, TransformOp{Kind: TransformTranslate, TranslateX: x, TranslateY: y})
		case "translatex":
			x, err := ParseLength(args[0])
			if err != nil {
				return nil, err
			}
			ops = append(ops, TransformOp{Kind: TransformTranslate, TranslateX: x, TranslateY: Px(0)})
		case "translatey":
			y, err := ParseLength(args[0])
			if err != nil {
				return nil, err
			}
			ops = append(ops, TransformOp{Kind: TransformTranslate, TranslateX: Px(0), TranslateY: y})
		case "scale":
			sx, err := strconv.ParseFloat(args[0], 32)
			if err != nil {
				return nil, err
			}
			sy := sx
			if len(args) > 1 {
				if sy, err = strconv.ParseFloat(args[1], 32); err != nil {
					return nil, err
				}
			}
			ops = append(ops, TransformOp{Kind: TransformScale, ScaleX: float32(sx), ScaleY: float32(sy)})
		case "scalex":
			sx, err := strconv.ParseFloat(args[0], 32)
			if err != nil {
				return nil, err
			}
			ops = append(ops, TransformOp{Kind: TransformScale, ScaleX: float32(sx), ScaleY: 1})
		case "scaley":
			sy, err := strconv.ParseFloat(args[0], 32)
			if err != nil {
				return nil, err
			}
			ops = append(ops, TransformOp{Kind: TransformScale, ScaleX: 1, ScaleY: float32(sy)})
		case "rotate":
			deg, ok := parseAngleToken(args[0])
			if !ok {
				return nil, fmt.Errorf("style: bad angle %q", args[0])
			}
			ops = append(ops, TransformOp{Kind: TransformRotate, RotateDeg: deg})
		case "skew":
			x, _ := parseAngleToken(args[0])
			var y float32
			if len(args) > 1 {
				y, _ = parseAngleToken(args[1])
			}
			ops = append(ops, TransformOp{Kind: TransformSkew, SkewXDeg: x, SkewYDeg: y})
		case "skewx":
			x, _ := parseAngleToken(args[0])
			ops = append(ops, TransformOp{Kind: TransformSkew, SkewXDeg: x})
		case "skewy":
			y, _ := parseAngleToken(args[0])
			ops = append(ops, TransformOp{Kind: TransformSkew, SkewYDeg: y})
		case "matrix":
			if len(args) != 6 {
				return nil, fmt.Errorf("style: matrix() needs 6 values")
			}
			var vals [6]float32
			for i, a := range args {
				v, err := strconv.ParseFloat(a, 32)
				if err != nil {
					return nil, err
				}
				vals[i] = float32(v)
			}
			ops = append(ops, TransformOp{Kind: TransformMatrix, Matrix: Affine{
				A: vals[0], B: vals[1], C: vals[2], D: vals[3], X: vals[4], Y: vals[5],
			}})
		default:
			return nil, fmt.Errorf("style: unrecognized transform function %q", name)
		}
	}
	return ops, nil
}

// splitTransformFunctions splits "translate(1px, 2px) rotate(45deg)"
// into ["translate(1px, 2px)", "rotate(45deg)"] by tracking paren depth.
func splitTransformFunctions(s string) []string {
	var out []string
	depth := 0
	start := -1
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 && start >= 0 {
				out = append(out, s[start:i+1])
				start = -1
			}
		default:
			if depth == 0 && r != ' ' && start < 0 {
				start = i
			}
		}
	}
	return out
}
