package style

import (
	"testing"

	"github.com/xiaoxigua1/takumi-go/core"
)

func testCtx() core.RenderContext {
	return core.RenderContext{
		Viewport:       core.Viewport{Width: 800, Height: 400, RootFontSize: 16},
		ParentFontSize: 20,
	}
}

func TestResolveToPxUnits(t *testing.T) {
	ctx := testCtx()
	cases := []struct {
		name string
		l    Length
		base float32
		want float32
	}{
		{"px", Px(10), 0, 10},
		{"auto", Auto, 100, 0},
		{"percentage", Percent(50), 200, 100},
		{"rem", Length{Unit: UnitRem, Value: 2}, 0, 32},
		{"em", Length{Unit: UnitEm, Value: 2}, 0, 40},
		{"vh", Length{Unit: UnitVh, Value: 50}, 0, 200},
		{"vw", Length{Unit: UnitVw, Value: 50}, 0, 400},
		{"in", Length{Unit: UnitIn, Value: 1}, 0, 96},
		{"cm", Length{Unit: UnitCm, Value: 2.54}, 0, 96},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.l.ResolveToPx(ctx, c.base)
			if diff := got - c.want; diff > 0.01 || diff < -0.01 {
				t.Fatalf("got %v, want %v", got, c.want)
			}
		})
	}
}

func TestLengthLower(t *testing.T) {
	ctx := testCtx()
	if l := Auto.Lower(ctx); l.Kind != LoweredAuto {
		t.Fatalf("expected LoweredAuto, got %v", l.Kind)
	}
	if l := Percent(25).Lower(ctx); l.Kind != LoweredPercentage || l.Percentage != 0.25 {
		t.Fatalf("got %+v, want percentage 0.25", l)
	}
	if l := Px(10).Lower(ctx); l.Kind != LoweredLength_ || l.PxValue != 10 {
		t.Fatalf("got %+v, want px 10", l)
	}
	if l := (Length{Unit: UnitEm, Value: 1}).Lower(ctx); l.Kind != LoweredLength_ || l.PxValue != 20 {
		t.Fatalf("em should eagerly resolve to px using ParentFontSize, got %+v", l)
	}
}

func TestParseLength(t *testing.T) {
	cases := []struct {
		in   string
		want Length
	}{
		{"10px", Px(10)},
		{"auto", Auto},
		{"AUTO", Auto},
		{"50%", Percent(50)},
		{"1.5em", Length{Unit: UnitEm, Value: 1.5}},
		{"2rem", Length{Unit: UnitRem, Value: 2}},
		{"3", Px(3)},
	}
	for _, c := range cases {
		got, err := ParseLength(c.in)
		if err != nil {
			t.Fatalf("ParseLength(%q) unexpected error: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseLength(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestParseLengthRejectsGarbage(t *testing.T) {
	if _, err := ParseLength(""); err == nil {
		t.Fatal("expected an error for an empty length")
	}
	if _, err := ParseLength("not-a-length"); err == nil {
		t.Fatal("expected an error for an unparseable length")
	}
}
