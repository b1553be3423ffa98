package imgtest

import (
	"image"
	"image/color"
	"testing"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestCompareIdenticalImagesMatch(t *testing.T) {
	a := solid(4, 4, color.RGBA{10, 20, 30, 255})
	b := solid(4, 4, color.RGBA{10, 20, 30, 255})
	result, err := Compare(a, b, CompareOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Match || result.DifferentPixels != 0 {
		t.Fatalf("expected an exact match, got %+v", result)
	}
}

func TestCompareDimensionMismatchErrors(t *testing.T) {
	a := solid(4, 4, color.RGBA{})
	b := solid(5, 5, color.RGBA{})
	if _, err := Compare(a, b, CompareOptions{}); err == nil {
		t.Fatal("expected a dimension mismatch error")
	}
}

func TestCompareToleranceAllowsSmallDifference(t *testing.T) {
	a := solid(2, 2, color.RGBA{100, 100, 100, 255})
	b := solid(2, 2, color.RGBA{101, 100, 100, 255})
	result, err := Compare(a, b, CompareOptions{Tolerance: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Match {
		t.Fatalf("expected tolerance 2 to absorb a 1-channel difference, got %+v", result)
	}
}

func TestCompareExceedsToleranceFails(t *testing.T) {
	a := solid(2, 2, color.RGBA{0, 0, 0, 255})
	b := solid(2, 2, color.RGBA{50, 0, 0, 255})
	result, err := Compare(a, b, CompareOptions{Tolerance: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Match || result.DifferentPixels != 4 {
		t.Fatalf("expected all 4 pixels to differ, got %+v", result)
	}
}

func TestCompareMaxDifferentPercentRecoversMatch(t *testing.T) {
	a := image.NewRGBA(image.Rect(0, 0, 10, 10))
	b := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			a.Set(x, y, color.RGBA{0, 0, 0, 255})
			b.Set(x, y, color.RGBA{0, 0, 0, 255})
		}
	}
	b.Set(0, 0, color.RGBA{255, 255, 255, 255}) // 1 of 100 pixels differs

	result, err := Compare(a, b, CompareOptions{MaxDifferentPercent: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Match {
		t.Fatalf("expected a 1%% difference to pass a 5%% threshold, got %+v", result)
	}
}

func TestCompareFuzzyRadiusMatchesShiftedPixel(t *testing.T) {
	a := image.NewRGBA(image.Rect(0, 0, 3, 1))
	b := image.NewRGBA(image.Rect(0, 0, 3, 1))
	a.Set(1, 0, color.RGBA{255, 0, 0, 255})
	b.Set(2, 0, color.RGBA{255, 0, 0, 255})

	result, err := Compare(a, b, CompareOptions{FuzzyRadius: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Match {
		t.Fatalf("expected fuzzy radius 1 to absorb a 1px shift, got %+v", result)
	}
}
