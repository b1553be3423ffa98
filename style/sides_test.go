package style

import "testing"

func TestNewSidesUniform(t *testing.T) {
	s := NewSides(Px(4))
	if s.Top != Px(4) || s.Right != Px(4) || s.Bottom != Px(4) || s.Left != Px(4) {
		t.Fatalf("expected all edges to be 4px, got %+v", s)
	}
}

func TestParseLengthSidesShorthandOneValue(t *testing.T) {
	s, err := ParseLengthSidesShorthand("10px")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Top != Px(10) || s.Right != Px(10) || s.Bottom != Px(10) || s.Left != Px(10) {
		t.Fatalf("expected all edges to be 10px, got %+v", s)
	}
}

func TestParseLengthSidesShorthandTwoValues(t *testing.T) {
	s, err := ParseLengthSidesShorthand("10px 20px")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Top != Px(10) || s.Bottom != Px(10) || s.Left != Px(20) || s.Right != Px(20) {
		t.Fatalf("got %+v, want top/bottom=10px right/left=20px", s)
	}
}

func TestParseLengthSidesShorthandFourValues(t *testing.T) {
	s, err := ParseLengthSidesShorthand("1px 2px 3px 4px")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Top != Px(1) || s.Right != Px(2) || s.Bottom != Px(3) || s.Left != Px(4) {
		t.Fatalf("got %+v, want top/right/bottom/left order", s)
	}
}

func TestParseBorderShorthandAnyTokenOrder(t *testing.T) {
	got, err := ParseBorderShorthand("solid red 2px")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Style != BorderStyleSolid || got.Width != Px(2) || got.Color != (Color{255, 0, 0, 255}) {
		t.Fatalf("got %+v, want solid/2px/red regardless of token order", got)
	}
}

func TestParseBorderShorthandRejectsBadColor(t *testing.T) {
	if _, err := ParseBorderShorthand("solid 2px not-a-color"); err == nil {
		t.Fatal("expected an error for an unparseable color token")
	}
}
