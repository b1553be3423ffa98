package style

import "testing"

func TestResolveGradientStopsExplicitPositions(t *testing.T) {
	stops := []GradientStop{
		{Color: Black, HasPosition: true, Position: 0},
		{Color: Color{255, 255, 255, 255}, HasPosition: true, Position: 1},
	}
	resolved := ResolveGradientStops(stops)
	if len(resolved) != 2 || resolved[0].Position != 0 || resolved[1].Position != 1 {
		t.Fatalf("got %+v, want endpoints at 0 and 1", resolved)
	}
}

func TestResolveGradientStopsDefaultsFirstAndLast(t *testing.T) {
	stops := []GradientStop{
		{Color: Black},
		{Color: Color{255, 255, 255, 255}},
	}
	resolved := ResolveGradientStops(stops)
	if resolved[0].Position != 0 {
		t.Fatalf("first stop position = %v, want 0", resolved[0].Position)
	}
	if resolved[len(resolved)-1].Position != 1 {
		t.Fatalf("last stop position = %v, want 1", resolved[len(resolved)-1].Position)
	}
}

func TestResolveGradientStopsDistributesUnpositionedMiddleStops(t *testing.T) {
	stops := []GradientStop{
		{Color: Black, HasPosition: true, Position: 0},
		{Color: Color{128, 0, 0, 255}},
		{Color: Color{255, 255, 255, 255}, HasPosition: true, Position: 1},
	}
	resolved := ResolveGradientStops(stops)
	if len(resolved) != 3 {
		t.Fatalf("expected 3 resolved stops, got %d", len(resolved))
	}
	if resolved[1].Position < 0.4 || resolved[1].Position > 0.6 {
		t.Fatalf("middle stop position = %v, want roughly 0.5", resolved[1].Position)
	}
}

func TestResolveGradientStopsSingleStop(t *testing.T) {
	resolved := ResolveGradientStops([]GradientStop{{Color: Black}})
	if len(resolved) != 1 || resolved[0].Position != 0 {
		t.Fatalf("got %+v, want a single stop pinned to position 0", resolved)
	}
}

func TestStopSamplerEndpointsAndMidpoint(t *testing.T) {
	resolved := ResolveGradientStops([]GradientStop{
		{Color: Color{0, 0, 0, 255}, HasPosition: true, Position: 0},
		{Color: Color{255, 255, 255, 255}, HasPosition: true, Position: 1},
	})
	sampler := NewStopSampler(resolved, PixelEpsilonForAxis(100))

	if c := sampler.At(0); c != (Color{0, 0, 0, 255}) {
		t.Fatalf("At(0) = %+v, want black", c)
	}
	if c := sampler.At(1); c != (Color{255, 255, 255, 255}) {
		t.Fatalf("At(1) = %+v, want white", c)
	}
	mid := sampler.At(0.5)
	if mid.R < 120 || mid.R > 135 {
		t.Fatalf("At(0.5) = %+v, want roughly mid-grey", mid)
	}
}

func TestStopSamplerEmptyStopsReturnsTransparent(t *testing.T) {
	sampler := NewStopSampler(nil, pixelEpsilon)
	if c := sampler.At(0.5); c != Transparent {
		t.Fatalf("got %+v, want Transparent for an empty stop list", c)
	}
}

func TestPixelEpsilonForAxis(t *testing.T) {
	if got := PixelEpsilonForAxis(0); got != pixelEpsilon {
		t.Fatalf("got %v, want the fallback epsilon for a non-positive axis", got)
	}
	if got := PixelEpsilonForAxis(100); got != 0.01 {
		t.Fatalf("got %v, want 1/100", got)
	}
}
