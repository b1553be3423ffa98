package imagestore

import (
	"image"
	"image/color"
	"testing"
)

func checkerboard(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 0, A: 255})
		}
	}
	return img
}

func TestApplyFitFillStretchesIgnoringAspectRatio(t *testing.T) {
	out := ApplyFit(checkerboard(10, 20), 40, 40, FitFill, Position{})
	if out.Bounds().Dx() != 40 || out.Bounds().Dy() != 40 {
		t.Fatalf("got bounds %v, want 40x40", out.Bounds())
	}
}

func TestApplyFitCoverCropsToCenterByDefault(t *testing.T) {
	out := ApplyFit(checkerboard(200, 100), 100, 100, FitCover, Position{X: 0.5, Y: 0.5})
	if out.Bounds().Dx() != 100 || out.Bounds().Dy() != 100 {
		t.Fatalf("got bounds %v, want 100x100", out.Bounds())
	}
	r, _, _, _ := out.At(0, 0).RGBA()
	if uint8(r>>8) != 50 {
		t.Fatalf("got red channel %d, want 50 (cropped from source column 50)", r>>8)
	}
}

func TestApplyFitContainNeverUpscalesPastBox(t *testing.T) {
	out := ApplyFit(checkerboard(50, 200), 100, 100, FitContain, Position{X: 0.5, Y: 0.5})
	if out.Bounds().Dx() != 100 || out.Bounds().Dy() != 100 {
		t.Fatalf("got bounds %v, want a 100x100 padded canvas", out.Bounds())
	}
	// 50x200 scaled by min(100/50, 100/200)=0.5 -> 25x100, padded to
	// 100x100, so the left/right 37px strips stay transparent.
	_, _, _, a := out.At(5, 50).RGBA()
	if a != 0 {
		t.Fatalf("expected transparent padding at (5,50), got alpha %d", a>>8)
	}
}

func TestApplyFitScaleDownNeverUpscalesPastSource(t *testing.T) {
	out := ApplyFit(checkerboard(20, 20), 200, 200, FitScaleDown, Position{X: 0.5, Y: 0.5})
	if out.Bounds().Dx() != 200 || out.Bounds().Dy() != 200 {
		t.Fatalf("got bounds %v, want a 200x200 padded canvas", out.Bounds())
	}
	_, _, _, a := out.At(0, 0).RGBA()
	if a != 0 {
		t.Fatal("expected the unscaled 20x20 source to leave most of the 200x200 canvas transparent")
	}
}

func TestApplyFitNoneKeepsIntrinsicSizeAndCrops(t *testing.T) {
	out := ApplyFit(checkerboard(300, 300), 50, 50, FitNone, Position{X: 0, Y: 0})
	if out.Bounds().Dx() != 50 || out.Bounds().Dy() != 50 {
		t.Fatalf("got bounds %v, want 50x50", out.Bounds())
	}
	r, g, _, _ := out.At(0, 0).RGBA()
	if uint8(r>>8) != 0 || uint8(g>>8) != 0 {
		t.Fatalf("expected the top-left anchor to show source (0,0), got (%d,%d)", r>>8, g>>8)
	}
}

func TestApplyFitDegenerateInputsReturnSourceUnchanged(t *testing.T) {
	src := checkerboard(10, 10)
	if out := ApplyFit(src, 0, 0, FitCover, Position{}); out != src {
		t.Fatal("expected a zero-size box to return the source unchanged")
	}
}
