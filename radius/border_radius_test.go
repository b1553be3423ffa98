package radius

import (
	"image"
	"image/color"
	"testing"

	"github.com/xiaoxigua1/takumi-go/core"
	"github.com/xiaoxigua1/takumi-go/style"
)

func testCtx() core.RenderContext {
	return core.RenderContext{
		Global:         &core.GlobalContext{},
		Viewport:       core.Viewport{Width: 800, Height: 600, RootFontSize: 16},
		ParentFontSize: 16,
	}
}

func TestFromLayoutPercentageUsesSmallerDimension(t *testing.T) {
	ctx := testCtx()
	sides := style.NewSides(style.Percent(50))
	r := FromLayout(ctx, 200, 100, sides)
	if r.TopLeft != 50 || r.TopRight != 50 || r.BottomLeft != 50 || r.BottomRight != 50 {
		t.Fatalf("expected 50px corners from 50%% of min(200,100)=100, got %+v", r)
	}
}

func TestFromLayoutPixelPassthrough(t *testing.T) {
	ctx := testCtx()
	sides := style.Sides[style.Length]{
		Top: style.Px(4), Right: style.Px(8), Bottom: style.Px(12), Left: style.Px(16),
	}
	r := FromLayout(ctx, 300, 300, sides)
	if r.TopLeft != 4 || r.TopRight != 8 || r.BottomRight != 12 || r.BottomLeft != 16 {
		t.Fatalf("unexpected radii: %+v", r)
	}
}

func TestClampCapsToHalfMinDimension(t *testing.T) {
	r := BorderRadius{TopLeft: 1000, TopRight: 1000, BottomRight: 1000, BottomLeft: 1000}
	clamped := r.Clamp(40, 20)
	if clamped.TopLeft != 10 {
		t.Fatalf("expected clamp to half(min(40,20))=10, got %v", clamped.TopLeft)
	}
}

func TestIsZero(t *testing.T) {
	if !(BorderRadius{}).IsZero() {
		t.Fatal("zero-value BorderRadius should report IsZero")
	}
	if (BorderRadius{TopLeft: 1}).IsZero() {
		t.Fatal("non-zero corner should not report IsZero")
	}
}

func TestWriteMaskCommandsZeroRadiusIsFullyOpaque(t *testing.T) {
	var coverages []uint8
	WriteMaskCommands(4, 4, BorderRadius{}, func(x, y int, c uint8) {
		coverages = append(coverages, c)
	})
	if len(coverages) != 16 {
		t.Fatalf("expected 16 samples for a 4x4 box, got %d", len(coverages))
	}
	for _, c := range coverages {
		if c != 255 {
			t.Fatalf("expected full coverage with zero radius, got %d", c)
		}
	}
}

func TestWriteMaskCommandsRoundedCornerIsTransparentAtCorner(t *testing.T) {
	var topLeft uint8
	WriteMaskCommands(20, 20, BorderRadius{TopLeft: 8, TopRight: 8, BottomLeft: 8, BottomRight: 8},
		func(x, y int, c uint8) {
			if x == 0 && y == 0 {
				topLeft = c
			}
		})
	if topLeft > 10 {
		t.Fatalf("expected near-zero coverage at rounded corner pixel, got %d", topLeft)
	}
}

func TestApplyAntialiasedClearsCornerAlpha(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			img.Set(x, y, color.RGBA{R: 10, G: 20, B: 30, A: 255})
		}
	}
	ApplyAntialiased(img, BorderRadius{TopLeft: 6, TopRight: 6, BottomLeft: 6, BottomRight: 6})
	_, _, _, a := img.At(0, 0).RGBA()
	if a>>8 != 0 {
		t.Fatalf("expected corner pixel fully transparent after rounding, got alpha %d", a>>8)
	}
	_, _, _, centerA := img.At(10, 10).RGBA()
	if centerA>>8 != 255 {
		t.Fatalf("expected center pixel unaffected, got alpha %d", centerA>>8)
	}
}
