package style

import "testing"

func TestParseColorHexForms(t *testing.T) {
	cases := []struct {
		in   string
		want Color
	}{
		{"#f00", Color{255, 0, 0, 255}},
		{"#f00f", Color{255, 0, 0, 255}},
		{"#ff0000", Color{255, 0, 0, 255}},
		{"#ff000080", Color{255, 0, 0, 128}},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if err != nil {
			t.Fatalf("ParseColor(%q) unexpected error: %v", c.in, err)
		}
		if got.R != c.want.R || got.G != c.want.G || got.B != c.want.B {
			t.Fatalf("ParseColor(%q) = %+v, want rgb %+v", c.in, got, c.want)
		}
		if c.in == "#ff000080" && got.A != 128 {
			t.Fatalf("ParseColor(%q) alpha = %d, want 128", c.in, got.A)
		}
	}
}

func TestParseColorNamedAndTransparent(t *testing.T) {
	got, err := ParseColor("red")
	if err != nil || got != (Color{255, 0, 0, 255}) {
		t.Fatalf("ParseColor(red) = %+v, err=%v", got, err)
	}
	got, err = ParseColor("transparent")
	if err != nil || got != Transparent {
		t.Fatalf("ParseColor(transparent) = %+v, err=%v", got, err)
	}
}

func TestParseColorRGBFunctionLegacy(t *testing.T) {
	got, err := ParseColor("rgba(255, 0, 0, 0.5)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.R != 255 || got.G != 0 || got.B != 0 || got.A != 128 {
		t.Fatalf("got %+v, want ~(255,0,0,128)", got)
	}
}

func TestParseColorRGBFunctionModernSlash(t *testing.T) {
	got, err := ParseColor("rgb(0 128 255 / 50%)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.R != 0 || got.G != 128 || got.B != 255 || got.A != 128 {
		t.Fatalf("got %+v, want ~(0,128,255,128)", got)
	}
}

func TestParseColorRejectsUnknown(t *testing.T) {
	if _, err := ParseColor("not-a-color"); err == nil {
		t.Fatal("expected an error for an unrecognized color")
	}
}

func TestInterpolateClampsAndBlends(t *testing.T) {
	a := Color{0, 0, 0, 255}
	b := Color{255, 255, 255, 255}
	if got := Interpolate(a, b, 0); got != a {
		t.Fatalf("t=0 should equal a, got %+v", got)
	}
	if got := Interpolate(a, b, 1); got != b {
		t.Fatalf("t=1 should equal b, got %+v", got)
	}
	mid := Interpolate(a, b, 0.5)
	if mid.R < 120 || mid.R > 135 {
		t.Fatalf("t=0.5 should be roughly mid-grey, got %+v", mid)
	}
	if got := Interpolate(a, b, -1); got != a {
		t.Fatalf("negative t should clamp to 0, got %+v", got)
	}
	if got := Interpolate(a, b, 2); got != b {
		t.Fatalf("t>1 should clamp to 1, got %+v", got)
	}
}

func TestColorIsTransparent(t *testing.T) {
	if !(Color{A: 0}).IsTransparent() {
		t.Fatal("zero-alpha color should be transparent")
	}
	if (Color{A: 1}).IsTransparent() {
		t.Fatal("non-zero-alpha color should not be transparent")
	}
}
