package paint

import (
	"testing"

	"github.com/xiaoxigua1/takumi-go/style"
)

func redBlueStops() []style.GradientStop {
	return []style.GradientStop{
		{Color: style.Color{R: 255, A: 255}, HasPosition: true, Position: 0},
		{Color: style.Color{B: 255, A: 255}, HasPosition: true, Position: 1},
	}
}

func TestRasterizeGradientLinearLeftToRight(t *testing.T) {
	g := style.Gradient{Kind: style.GradientLinear, AngleDegrees: 90, Stops: redBlueStops()}
	img := RasterizeGradient(100, 1, g)

	r0, _, b0, _ := img.At(0, 0).RGBA()
	if uint8(r0>>8) < 240 || uint8(b0>>8) > 15 {
		t.Fatalf("leftmost pixel = (r=%d,b=%d), want near-pure red", r0>>8, b0>>8)
	}
	r99, _, b99, _ := img.At(99, 0).RGBA()
	if uint8(b99>>8) < 240 || uint8(r99>>8) > 15 {
		t.Fatalf("rightmost pixel = (r=%d,b=%d), want near-pure blue", r99>>8, b99>>8)
	}
}

func TestRasterizeGradientDegenerateSizeReturnsEmptyImage(t *testing.T) {
	g := style.Gradient{Kind: style.GradientLinear, Stops: redBlueStops()}
	img := RasterizeGradient(0, 0, g)
	if img.Bounds().Dx() != 0 || img.Bounds().Dy() != 0 {
		t.Fatalf("expected an empty image for a zero-size gradient, got %v", img.Bounds())
	}
}

func TestRasterizeGradientRadialCenterIsFirstStop(t *testing.T) {
	g := style.Gradient{
		Kind:   style.GradientRadial,
		Shape:  style.RadialCircle,
		Center: style.BackgroundPositionCenter,
		Stops:  redBlueStops(),
	}
	img := RasterizeGradient(100, 100, g)
	r, _, b, _ := img.At(50, 50).RGBA()
	if uint8(r>>8) < 200 || uint8(b>>8) > 40 {
		t.Fatalf("center pixel = (r=%d,b=%d), want close to the first stop's red", r>>8, b>>8)
	}
}

func TestResolvePositionPxPercentageAndPixel(t *testing.T) {
	if got := resolvePositionPx(style.Percent(50), 200); got != 100 {
		t.Fatalf("got %v, want 100", got)
	}
	if got := resolvePositionPx(style.Px(30), 200); got != 30 {
		t.Fatalf("got %v, want 30", got)
	}
}
