package style

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// UnmarshalJSON decodes a node's style object. Per spec.md §6.4, each
// field may be given as a raw CSS string (e.g. `"padding": "10px 20px"`)
// or as a structured JSON value; unknown keys are ignored and
// out-of-range enum strings fail decoding. Grounded on takumi's
// `*Value` proxy-type `try_from` pattern (accept either form, normalize
// to the structured type) and the teacher's pkg/css/style.go shorthand
// expansion (ParseInlineStyle/expandShorthand), reimplemented here at
// the JSON-field level instead of a CSS-text level since the wire
// format is JSON, not a stylesheet.
func (s *Style) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("style: %w", err)
	}
	*s = Style{}

	decoders := s.fieldDecoders()
	// Decode shorter keys first so a shorthand ("padding") is applied
	// before its longhands ("paddingTop"), which then override it.
	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) < len(keys[j])
		}
		return keys[i] < keys[j]
	})
	for _, key := range keys {
		val := raw[key]
		dec, ok := decoders[key]
		if !ok {
			continue // unknown fields ignored, spec.md §6.4
		}
		if err := dec(val); err != nil {
			return fmt.Errorf("style: field %q: %w", key, err)
		}
	}
	return nil
}

type fieldDecoder func(json.RawMessage) error

// fieldDecoders builds the key->decoder table. camelCase keys match the
// JSON wire convention; Go field names stay PascalCase.
func (s *Style) fieldDecoders() map[string]fieldDecoder {
	d := map[string]fieldDecoder{}

	d["boxSizing"] = enumDecoder(&s.BoxSizing, map[string]BoxSizing{
		"content-box": BoxSizingContentBox, "border-box": BoxSizingBorderBox,
	})
	d["width"] = lengthDecoder(&s.Width)
	d["height"] = lengthDecoder(&s.Height)
	d["minWidth"] = lengthDecoder(&s.MinWidth)
	d["minHeight"] = lengthDecoder(&s.MinHeight)
	d["maxWidth"] = lengthDecoder(&s.MaxWidth)
	d["maxHeight"] = lengthDecoder(&s.MaxHeight)
	d["aspectRatio"] = func(raw json.RawMessage) error {
		if k, ok := unmarshalPropertyKeyword(raw); ok {
			s.AspectRatio = Property[*float32]{Kind: k}
			return nil
		}
		var v float32
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		s.AspectRatio = Set(&v)
		return nil
	}

	d["padding"] = sidesDecoder(&s.Padding)
	d["margin"] = sidesDecoder(&s.Margin)
	d["inset"] = sidesDecoder(&s.Inset)
	for _, side := range []string{"Top", "Right", "Bottom", "Left"} {
		side := side
		d["padding"+side] = sideFieldDecoder(&s.Padding, side)
		d["margin"+side] = sideFieldDecoder(&s.Margin, side)
		d["inset"+side] = sideFieldDecoder(&s.Inset, side)
		d["border"+side+"Width"] = sideFieldDecoder(&s.BorderWidth, side)
	}

	d["display"] = enumDecoder(&s.Display, map[string]Display{
		"flex": DisplayFlex, "grid": DisplayGrid, "none": DisplayNone,
	})
	d["flexDirection"] = enumDecoder(&s.FlexDirection, map[string]FlexDirection{
		"row": FlexRow, "row-reverse": FlexRowReverse,
		"column": FlexColumn, "column-reverse": FlexColumnReverse,
	})
	d["flexWrap"] = enumDecoder(&s.FlexWrap, map[string]FlexWrap{
		"nowrap": FlexNoWrap, "wrap": FlexWrapWrap, "wrap-reverse": FlexWrapReverse,
	})
	d["flexBasis"] = lengthDecoder(&s.FlexBasis)
	d["flexGrow"] = float32Decoder(&s.FlexGrow)
	d["flexShrink"] = float32Decoder(&s.FlexShrink)

	d["gridTemplateColumns"] = gridTemplateDecoder(&s.GridTemplateColumns)
	d["gridTemplateRows"] = gridTemplateDecoder(&s.GridTemplateRows)
	d["gridTemplateAreas"] = func(raw json.RawMessage) error {
		if k, ok := unmarshalPropertyKeyword(raw); ok {
			s.GridTemplateAreas = Property[map[string]GridAreaRect]{Kind: k}
			return nil
		}
		var rows []string
		if err := json.Unmarshal(raw, &rows); err != nil {
			var single string
			if err2 := json.Unmarshal(raw, &single); err2 != nil {
				return err
			}
			rows = strings.Split(strings.TrimSpace(single), "\n")
		}
		areas, err := ParseGridTemplateAreas(rows)
		if err != nil {
			return err
		}
		s.GridTemplateAreas = Set(areas)
		return nil
	}
	d["gridAutoFlow"] = enumDecoder(&s.GridAutoFlow, map[string]GridAutoFlow{
		"row": GridFlowRow, "column": GridFlowColumn,
		"row-dense": GridFlowRowDense, "column-dense": GridFlowColumnDense,
	})
	d["gridColumnStart"] = gridPlacementDecoder(&s.GridColumnStart)
	d["gridColumnEnd"] = gridPlacementDecoder(&s.GridColumnEnd)
	d["gridRowStart"] = gridPlacementDecoder(&s.GridRowStart)
	d["gridRowEnd"] = gridPlacementDecoder(&s.GridRowEnd)

	d["justifyItems"] = enumDecoder(&s.JustifyItems, alignItemsKeywords)
	d["alignItems"] = enumDecoder(&s.AlignItems, alignItemsKeywords)
	d["justifySelf"] = enumDecoder(&s.JustifySelf, alignSelfKeywords)
	d["alignSelf"] = enumDecoder(&s.AlignSelf, alignSelfKeywords)
	d["justifyContent"] = enumDecoder(&s.JustifyContent, map[string]JustifyContent{
		"start": JustifyStart, "flex-start": JustifyStart, "end": JustifyEnd, "flex-end": JustifyEnd,
		"center": JustifyCenter, "space-between": JustifySpaceBetween,
		"space-around": JustifySpaceAround, "space-evenly": JustifySpaceEvenly,
	})
	d["alignContent"] = enumDecoder(&s.AlignContent, map[string]AlignContent{
		"stretch": AlignContentStretch, "start": AlignContentStart, "flex-start": AlignContentStart,
		"end": AlignContentEnd, "flex-end": AlignContentEnd, "center": AlignContentCenter,
		"space-between": AlignContentSpaceBetween, "space-around": AlignContentSpaceAround,
		"space-evenly": AlignContentSpaceEvenly,
	})
	d["rowGap"] = lengthDecoder(&s.RowGap)
	d["columnGap"] = lengthDecoder(&s.ColumnGap)
	d["gap"] = func(raw json.RawMessage) error {
		if err := lengthDecoder(&s.RowGap)(raw); err != nil {
			return err
		}
		return lengthDecoder(&s.ColumnGap)(raw)
	}

	d["borderWidth"] = sidesDecoder(&s.BorderWidth)
	d["borderRadius"] = sidesDecoder(&s.BorderRadius)
	d["borderColor"] = colorDecoder(&s.BorderColor)
	d["border"] = func(raw json.RawMessage) error {
		var css string
		if err := json.Unmarshal(raw, &css); err != nil {
			return err
		}
		sh, err := ParseBorderShorthand(css)
		if err != nil {
			return err
		}
		s.BorderWidth = Set(NewSides(sh.Width))
		s.BorderColor = Set(sh.Color)
		return nil
	}

	d["backgroundColor"] = colorDecoder(&s.BackgroundColor)
	d["backgroundImage"] = backgroundImageDecoder(&s.BackgroundImage)
	d["boxShadow"] = boxShadowDecoder(&s.BoxShadow)
	d["textShadow"] = textShadowDecoder(&s.TextShadow)
	d["transform"] = transformDecoder(&s.Transform)
	d["transformOrigin"] = positionDecoder(&s.TransformOrigin)
	d["maskImage"] = func(raw json.RawMessage) error {
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		s.MaskImage = Set(v)
		return nil
	}
	d["objectFit"] = enumDecoder(&s.ObjectFit, map[string]ObjectFit{
		"fill": ObjectFitFill, "contain": ObjectFitContain, "cover": ObjectFitCover,
		"none": ObjectFitNone, "scale-down": ObjectFitScaleDown,
	})
	d["objectPosition"] = positionDecoder(&s.ObjectPosition)

	d["color"] = colorDecoder(&s.Color)
	d["fontFamily"] = func(raw json.RawMessage) error {
		var list []string
		if err := json.Unmarshal(raw, &list); err == nil {
			s.FontFamily = Set(list)
			return nil
		}
		var one string
		if err := json.Unmarshal(raw, &one); err != nil {
			return err
		}
		parts := strings.Split(one, ",")
		for i := range parts {
			parts[i] = strings.Trim(strings.TrimSpace(parts[i]), `"'`)
		}
		s.FontFamily = Set(parts)
		return nil
	}
	d["fontSize"] = lengthDecoder(&s.FontSize)
	d["fontWeight"] = func(raw json.RawMessage) error {
		var v int
		if err := json.Unmarshal(raw, &v); err == nil {
			s.FontWeight = Set(v)
			return nil
		}
		var kw string
		if err := json.Unmarshal(raw, &kw); err != nil {
			return err
		}
		switch kw {
		case "normal":
			s.FontWeight = Set(400)
		case "bold":
			s.FontWeight = Set(700)
		default:
			return fmt.Errorf("bad font-weight %q", kw)
		}
		return nil
	}
	d["fontStyle"] = enumDecoder(&s.FontStyle, map[string]FontStyleKeyword{
		"normal": FontStyleNormal, "italic": FontStyleItalic, "oblique": FontStyleOblique,
	})
	d["lineHeight"] = lengthDecoder(&s.LineHeight)
	d["letterSpacing"] = lengthDecoder(&s.LetterSpacing)
	d["wordSpacing"] = lengthDecoder(&s.WordSpacing)
	d["textAlign"] = enumDecoder(&s.TextAlign, map[string]TextAlign{
		"start": TextAlignStart, "end": TextAlignEnd, "left": TextAlignLeft,
		"right": TextAlignRight, "center": TextAlignCenter, "justify": TextAlignJustify,
	})
	d["textOverflow"] = enumDecoder(&s.TextOverflow, map[string]TextOverflow{
		"clip": TextOverflowClip, "ellipsis": TextOverflowEllipsis,
	})
	d["textTransform"] = enumDecoder(&s.TextTransform, map[string]TextTransform{
		"none": TextTransformNone, "uppercase": TextTransformUppercase,
		"lowercase": TextTransformLowercase, "capitalize": TextTransformCapitalize,
	})
	d["lineClamp"] = func(raw json.RawMessage) error {
		if k, ok := unmarshalPropertyKeyword(raw); ok {
			s.LineClamp = Property[int]{Kind: k}
			return nil
		}
		var v int
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		s.LineClamp = Set(v)
		return nil
	}
	d["wordBreak"] = enumDecoder(&s.WordBreak, map[string]WordBreak{
		"normal": WordBreakNormal, "break-all": WordBreakBreakAll, "keep-all": WordBreakKeepAll,
	})
	d["overflowWrap"] = enumDecoder(&s.OverflowWrap, map[string]OverflowWrap{
		"normal": OverflowWrapNormal, "anywhere": OverflowWrapAnywhere, "break-word": OverflowWrapBreakWord,
	})
	d["fontVariationSettings"] = func(raw json.RawMessage) error {
		m := map[string]float32{}
		if err := json.Unmarshal(raw, &m); err != nil {
			return err
		}
		s.FontVariationSettings = Set(m)
		return nil
	}
	d["fontFeatureSettings"] = func(raw json.RawMessage) error {
		m := map[string]int{}
		if err := json.Unmarshal(raw, &m); err != nil {
			return err
		}
		s.FontFeatureSettings = Set(m)
		return nil
	}
	d["imageRendering"] = enumDecoder(&s.ImageRendering, map[string]ImageRendering{
		"auto": ImageRenderingAuto, "pixelated": ImageRenderingPixelated,
	})

	return d
}

var alignItemsKeywords = map[string]AlignItems{
	"stretch": AlignStretch, "start": AlignStart, "flex-start": AlignStart,
	"end": AlignEnd, "flex-end": AlignEnd, "center": AlignCenter, "baseline": AlignBaseline,
}

var alignSelfKeywords = map[string]AlignSelf{
	"auto": AlignSelfAuto, "stretch": AlignSelfStretch, "start": AlignSelfStart,
	"flex-start": AlignSelfStart, "end": AlignSelfEnd, "flex-end": AlignSelfEnd,
	"center": AlignSelfCenter, "baseline": AlignSelfBaseline,
}

func enumDecoder[T ~uint8](dst *Property[T], table map[string]T) fieldDecoder {
	return func(raw json.RawMessage) error {
		if k, ok := unmarshalPropertyKeyword(raw); ok {
			*dst = Property[T]{Kind: k}
			return nil
		}
		var kw string
		if err := json.Unmarshal(raw, &kw); err != nil {
			return err
		}
		v, ok := table[kw]
		if !ok {
			return fmt.Errorf("unrecognized keyword %q", kw)
		}
		*dst = Set(v)
		return nil
	}
}

func lengthDecoder(dst *Property[Length]) fieldDecoder {
	return func(raw json.RawMessage) error {
		if k, ok := unmarshalPropertyKeyword(raw); ok {
			*dst = Property[Length]{Kind: k}
			return nil
		}
		var f float64
		if err := json.Unmarshal(raw, &f); err == nil {
			*dst = Set(Px(float32(f)))
			return nil
		}
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return err
		}
		l, err := ParseLength(str)
		if err != nil {
			return err
		}
		*dst = Set(l)
		return nil
	}
}

func float32Decoder(dst *Property[float32]) fieldDecoder {
	return func(raw json.RawMessage) error {
		if k, ok := unmarshalPropertyKeyword(raw); ok {
			*dst = Property[float32]{Kind: k}
			return nil
		}
		var f float64
		if err := json.Unmarshal(raw, &f); err != nil {
			return err
		}
		*dst = Set(float32(f))
		return nil
	}
}

func colorDecoder(dst *Property[Color]) fieldDecoder {
	return func(raw json.RawMessage) error {
		if k, ok := unmarshalPropertyKeyword(raw); ok {
			*dst = Property[Color]{Kind: k}
			return nil
		}
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return err
		}
		c, err := ParseColor(str)
		if err != nil {
			return err
		}
		*dst = Set(c)
		return nil
	}
}

// sidesDecoder accepts either a CSS shorthand string ("10px 20px") or a
// structured object {"top":..,"right":..,"bottom":..,"left":..} with any
// subset of edges (missing edges keep the zero length).
func sidesDecoder(dst *Property[Sides[Length]]) fieldDecoder {
	return func(raw json.RawMessage) error {
		if k, ok := unmarshalPropertyKeyword(raw); ok {
			*dst = Property[Sides[Length]]{Kind: k}
			return nil
		}
		var str string
		if err := json.Unmarshal(raw, &str); err == nil {
			sides, err := ParseLengthSidesShorthand(str)
			if err != nil {
				return err
			}
			*dst = Set(sides)
			return nil
		}
		var obj struct {
			Top, Right, Bottom, Left json.RawMessage
		}
		if err := json.Unmarshal(raw, &obj); err != nil {
			return err
		}
		var sides Sides[Length]
		for _, pair := range []struct {
			raw json.RawMessage
			dst *Length
		}{{obj.Top, &sides.Top}, {obj.Right, &sides.Right}, {obj.Bottom, &sides.Bottom}, {obj.Left, &sides.Left}} {
			if pair.raw == nil {
				continue
			}
			var p Property[Length]
			if err := lengthDecoder(&p)(pair.raw); err != nil {
				return err
			}
			*pair.dst = p.Value
		}
		*dst = Set(sides)
		return nil
	}
}

// sideFieldDecoder decodes a single longhand side (e.g. paddingTop) into
// the named field of an already-declared Sides property, overriding
// whatever the shorthand set per spec.md §4.2 ("longhand sides override
// the corresponding shorthand channel").
func sideFieldDecoder(dst *Property[Sides[Length]], side string) fieldDecoder {
	return func(raw json.RawMessage) error {
		var p Property[Length]
		if err := lengthDecoder(&p)(raw); err != nil {
			return err
		}
		if dst.Kind != PropertyValue {
			dst.Kind = PropertyValue
		}
		switch side {
		case "Top":
			dst.Value.Top = p.Value
		case "Right":
			dst.Value.Right = p.Value
		case "Bottom":
			dst.Value.Bottom = p.Value
		case "Left":
			dst.Value.Left = p.Value
		}
		return nil
	}
}

func positionDecoder(dst *Property[BackgroundPosition]) fieldDecoder {
	return func(raw json.RawMessage) error {
		if k, ok := unmarshalPropertyKeyword(raw); ok {
			*dst = Property[BackgroundPosition]{Kind: k}
			return nil
		}
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return err
		}
		pos, err := parsePositionString(str)
		if err != nil {
			return err
		}
		*dst = Set(pos)
		return nil
	}
}

func parsePositionString(s string) (BackgroundPosition, error) {
	parts := strings.Fields(s)
	parseComponent := func(tok string, isX bool) (PositionComponent, error) {
		switch strings.ToLower(tok) {
		case "left":
			return PositionComponent{Keyword: PositionLeft}, nil
		case "right":
			return PositionComponent{Keyword: PositionRight}, nil
		case "top":
			return PositionComponent{Keyword: PositionTop}, nil
		case "bottom":
			return PositionComponent{Keyword: PositionBottom}, nil
		case "center":
			return PositionComponent{Keyword: PositionCenter}, nil
		default:
			l, err := ParseLength(tok)
			if err != nil {
				return PositionComponent{}, err
			}
			return PositionComponent{Length: l}, nil
		}
	}
	switch len(parts) {
	case 0:
		return BackgroundPositionCenter, nil
	case 1:
		x, err := parseComponent(parts[0], true)
		if err != nil {
			return BackgroundPosition{}, err
		}
		return BackgroundPosition{X: x, Y: PositionComponent{Keyword: PositionCenter}}, nil
	default:
		x, err := parseComponent(parts[0], true)
		if err != nil {
			return BackgroundPosition{}, err
		}
		y, err := parseComponent(parts[1], false)
		if err != nil {
			return BackgroundPosition{}, err
		}
		return BackgroundPosition{X: x, Y: y}, nil
	}
}

func gridPlacementDecoder(dst *Property[GridPlacement]) fieldDecoder {
	return func(raw json.RawMessage) error {
		if k, ok := unmarshalPropertyKeyword(raw); ok {
			*dst = Property[GridPlacement]{Kind: k}
			return nil
		}
		var n int
		if err := json.Unmarshal(raw, &n); err == nil {
			*dst = Set(GridPlacement{Kind: GridPlacementLine, Line: n})
			return nil
		}
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return err
		}
		placement, err := parseGridPlacement(str)
		if err != nil {
			return err
		}
		*dst = Set(placement)
		return nil
	}
}

func parseGridPlacement(s string) (GridPlacement, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "auto") {
		return GridPlacement{Kind: GridPlacementAuto}, nil
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "span ") {
		n, err := strconv.Atoi(strings.TrimSpace(s[5:]))
		if err != nil {
			return GridPlacement{}, err
		}
		return GridPlacement{Kind: GridPlacementSpan, Span: n}, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return GridPlacement{Kind: GridPlacementLine, Line: n}, nil
	}
	return GridPlacement{Kind: GridPlacementNamed, Name: s}, nil
}

func gridTemplateDecoder(dst *Property[[]GridTemplateComponent]) fieldDecoder {
	return func(raw json.RawMessage) error {
		if k, ok := unmarshalPropertyKeyword(raw); ok {
			*dst = Property[[]GridTemplateComponent]{Kind: k}
			return nil
		}
		var str string
		if err := json.Unmarshal(raw, &str); err == nil {
			comps, err := parseGridTemplateString(str)
			if err != nil {
				return err
			}
			*dst = Set(comps)
			return nil
		}
		// Structured array form: each entry is a track-size string
		// ("1fr", "100px", "minmax(100px, 1fr)") or a line-names array.
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return err
		}
		var comps []GridTemplateComponent
		for _, item := range items {
			var tokStr string
			if err := json.Unmarshal(item, &tokStr); err == nil {
				track, err := parseTrackSize(tokStr)
				if err != nil {
					return err
				}
				comps = append(comps, GridTemplateComponent{Kind: GridComponentSingleTrack, Track: track})
				continue
			}
			var names []string
			if err := json.Unmarshal(item, &names); err != nil {
				return err
			}
			comps = append(comps, GridTemplateComponent{Kind: GridComponentLineNames, LineNames: names})
		}
		*dst = Set(comps)
		return nil
	}
}

// parseGridTemplateString parses a raw `grid-template-columns`/`-rows`
// CSS string ("[full] 1fr repeat(3, minmax(0, 1fr)) [end]") into
// components. This is original code (not line-level ported — the
// teacher's grid.go never parsed repeat()/line names) built from the
// component grammar spec.md §4.2 specifies.
func parseGridTemplateString(s string) ([]GridTemplateComponent, error) {
	tokens := tokenizeGridTemplate(s)
	var comps []GridTemplateComponent
	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		switch {
		case strings.HasPrefix(tok, "[") && strings.HasSuffix(tok, "]"):
			names := strings.Fields(strings.TrimSuffix(strings.TrimPrefix(tok, "["), "]"))
			comps = append(comps, GridTemplateComponent{Kind: GridComponentLineNames, LineNames: names})
			i++
		case strings.HasPrefix(strings.ToLower(tok), "repeat("):
			inner := tok[len("repeat(") : len(tok)-1]
			parts := splitTopLevelComma(inner)
			if len(parts) < 2 {
				return nil, fmt.Errorf("style: bad repeat() %q", tok)
			}
			count := RepeatCount{}
			switch strings.ToLower(strings.TrimSpace(parts[0])) {
			case "auto-fill":
				count.IsAutoFill = true
			case "auto-fit":
				count.IsAutoFit = true
			default:
				n, err := strconv.Atoi(strings.TrimSpace(parts[0]))
				if err != nil {
					return nil, err
				}
				count.Count = n
			}
			innerComps, err := parseGridTemplateString(strings.Join(parts[1:], " "))
			if err != nil {
				return nil, err
			}
			comps = append(comps, GridTemplateComponent{
				Kind: GridComponentRepeat, RepeatCount: count, RepeatTracks: innerComps,
			})
			i++
		default:
			track, err := parseTrackSize(tok)
			if err != nil {
				return nil, err
			}
			comps = append(comps, GridTemplateComponent{Kind: GridComponentSingleTrack, Track: track})
			i++
		}
	}
	return comps, nil
}

func parseTrackSize(tok string) (TrackSize, error) {
	lower := strings.ToLower(tok)
	switch lower {
	case "auto":
		return TrackSize{Kind: TrackAuto}, nil
	case "min-content":
		return TrackSize{Kind: TrackMinContent}, nil
	case "max-content":
		return TrackSize{Kind: TrackMaxContent}, nil
	}
	if strings.HasPrefix(lower, "minmax(") {
		inner := tok[len("minmax(") : len(tok)-1]
		parts := splitTopLevelComma(inner)
		if len(parts) != 2 {
			return TrackSize{}, fmt.Errorf("style: bad minmax() %q", tok)
		}
		min, err := parseTrackSize(strings.TrimSpace(parts[0]))
		if err != nil {
			return TrackSize{}, err
		}
		max, err := parseTrackSize(strings.TrimSpace(parts[1]))
		if err != nil {
			return TrackSize{}, err
		}
		return TrackSize{Kind: TrackMinMax, Min: &min, Max: &max}, nil
	}
	if strings.HasSuffix(lower, "fr") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(lower, "fr"), 32)
		if err != nil {
			return TrackSize{}, err
		}
		return TrackSize{Kind: TrackFlex, Flex: float32(v)}, nil
	}
	l, err := ParseLength(tok)
	if err != nil {
		return TrackSize{}, err
	}
	return TrackSize{Kind: TrackLength, Length: l}, nil
}

// tokenizeGridTemplate splits on whitespace while keeping bracketed
// line-name groups and parenthesized function calls intact.
func tokenizeGridTemplate(s string) []string {
	var tokens []string
	var cur strings.Builder
	depthParen, depthBracket := 0, 0
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for _, r := range s {
		switch r {
		case '(':
			depthParen++
			cur.WriteRune(r)
		case ')':
			depthParen--
			cur.WriteRune(r)
		case '[':
			depthBracket++
			cur.WriteRune(r)
		case ']':
			depthBracket--
			cur.WriteRune(r)
		case ' ', '\t', '\n':
			if depthParen > 0 || depthBracket > 0 {
				cur.WriteRune(r)
			} else {
				flush()
			}
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return tokens
}

func splitTopLevelComma(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}
