package style

import "strings"

// Sides holds one value per edge, used for margin/padding/border-width/
// inset and border-radius corners. Grounded on the teacher's
// pkg/css/style.go BoxEdge, generalized to a generic over the value type
// so it serves lengths (margin/padding) and radii (border-radius) alike.
type Sides[T any] struct {
	Top, Right, Bottom, Left T
}

// NewSides builds a Sides with the same value on every edge.
func NewSides[T any](v T) Sides[T] {
	return Sides[T]{Top: v, Right: v, Bottom: v, Left: v}
}

// expandSidesShorthand splits a CSS 1/2/3/4-value shorthand into the
// four-edge (top, right, bottom, left) order. Ported from the teacher's
// expandBoxProperty.
func expandSidesShorthand(value string) [4]string {
	parts := strings.Fields(value)
	switch len(parts) {
	case 1:
		return [4]string{parts[0], parts[0], parts[0], parts[0]}
	case 2:
		return [4]string{parts[0], parts[1], parts[0], parts[1]}
	case 3:
		return [4]string{parts[0], parts[1], parts[2], parts[1]}
	case 4:
		return [4]string{parts[0], parts[1], parts[2], parts[3]}
	default:
		return [4]string{}
	}
}

// ParseLengthSidesShorthand parses a margin/padding/inset shorthand string
// into per-edge lengths.
func ParseLengthSidesShorthand(value string) (Sides[Length], error) {
	edges := expandSidesShorthand(value)
	var out Sides[Length]
	fields := []*Length{&out.Top, &out.Right, &out.Bottom, &out.Left}
	for i, tok := range edges {
		if tok == "" {
			continue
		}
		l, err := ParseLength(tok)
		if err != nil {
			return Sides[Length]{}, err
		}
		*fields[i] = l
	}
	return out, nil
}

// BorderShorthand is the parsed form of a `border: <width> <style> <color>`
// declaration, in any token order, ported from the teacher's
// expandBorderProperty.
type BorderShorthand struct {
	Width Length
	Style BorderStyle
	Color Color
}

// ParseBorderShorthand parses a border/border-top/... shorthand value.
// Tokens are identified by shape (length suffix, known style keyword,
// else color), not by position, matching the teacher's token classifier.
func ParseBorderShorthand(value string) (BorderShorthand, error) {
	var out BorderShorthand
	for _, tok := range strings.Fields(value) {
		switch {
		case isBorderStyleKeyword(tok):
			out.Style = BorderStyle(tok)
		case looksLikeLength(tok):
			l, err := ParseLength(tok)
			if err != nil {
				return BorderShorthand{}, err
			}
			out.Width = l
		default:
			c, err := ParseColor(tok)
			if err != nil {
				return BorderShorthand{}, err
			}
			out.Color = c
		}
	}
	return out, nil
}

// BorderStyle is the border-style keyword (solid/dashed/dotted/double/none).
type BorderStyle string

const (
	BorderStyleNone   BorderStyle = "none"
	BorderStyleSolid  BorderStyle = "solid"
	BorderStyleDashed BorderStyle = "dashed"
	BorderStyleDotted BorderStyle = "dotted"
	BorderStyleDouble BorderStyle = "double"
)

func isBorderStyleKeyword(tok string) bool {
	switch BorderStyle(tok) {
	case BorderStyleNone, BorderStyleSolid, BorderStyleDashed, BorderStyleDotted, BorderStyleDouble:
		return true
	}
	return false
}

func looksLikeLength(tok string) bool {
	if tok == "" {
		return false
	}
	if strings.EqualFold(tok, "auto") {
		return true
	}
	c := tok[0]
	return (c >= '0' && c <= '9') || c == '-' || c == '.'
}
