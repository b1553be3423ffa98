// Package imgtest compares two in-memory images for the pixel-exact
// scenario tests spec.md §8.3 calls for. Adapted from the teacher's
// pkg/visualtest/compare.go, trimmed from file-based PNG comparison
// (CompareImages opening paths, the SaveDiffImage/DiffImagePath PNG
// writer) to a pure image.Image comparison, since render output here
// never leaves the process during tests.
package imgtest

import "image"

// CompareResult reports how two images differ.
type CompareResult struct {
	Match           bool
	DifferentPixels int
	TotalPixels     int
	MaxDifference   int
}

// CompareOptions configures Compare's tolerance. The zero value performs
// an exact comparison.
type CompareOptions struct {
	// Tolerance is the maximum allowed per-channel 8-bit difference
	// before a pixel counts as different.
	Tolerance int
	// FuzzyRadius, if > 0, also accepts a match against any pixel within
	// this many pixels in either axis — useful for off-by-a-pixel
	// antialiasing differences at shape edges.
	FuzzyRadius int
	// MaxDifferentPercent, if > 0, still reports Match=true when the
	// fraction of differing pixels is at or below this percentage.
	MaxDifferentPercent float64
}

// Compare compares two images pixel-by-pixel under opts. Returns an
// error only when the two images have different bounds (a dimension
// mismatch always fails outright; opts.Tolerance never papers over it).
func Compare(actual, expected image.Image, opts CompareOptions) (*CompareResult, error) {
	ab, eb := actual.Bounds(), expected.Bounds()
	if ab.Dx() != eb.Dx() || ab.Dy() != eb.Dy() {
		return &CompareResult{}, &dimensionMismatchError{actual: ab, expected: eb}
	}

	result := &CompareResult{Match: true, TotalPixels: ab.Dx() * ab.Dy()}

	for y := 0; y < ab.Dy(); y++ {
		for x := 0; x < ab.Dx(); x++ {
			ax, ay := ab.Min.X+x, ab.Min.Y+y
			ex, ey := eb.Min.X+x, eb.Min.Y+y

			diff := pixelDiff(actual, ax, ay, expected, ex, ey)
			if diff > result.MaxDifference {
				result.MaxDifference = diff
			}
			if diff <= opts.Tolerance {
				continue
			}

			if opts.FuzzyRadius > 0 && fuzzyMatch(actual, ax, ay, expected, eb, opts.FuzzyRadius, opts.Tolerance) {
				continue
			}
			result.Match = false
			result.DifferentPixels++
		}
	}

	if !result.Match && opts.MaxDifferentPercent > 0 {
		pct := float64(result.DifferentPixels) / float64(result.TotalPixels) * 100
		if pct <= opts.MaxDifferentPercent {
			result.Match = true
		}
	}
	return result, nil
}

func pixelDiff(a image.Image, ax, ay int, b image.Image, bx, by int) int {
	ar, ag, ab, aa := a.At(ax, ay).RGBA()
	br, bg, bb, ba := b.At(bx, by).RGBA()
	return maxInt(
		absInt(int(ar>>8)-int(br>>8)),
		absInt(int(ag>>8)-int(bg>>8)),
		absInt(int(ab>>8)-int(bb>>8)),
		absInt(int(aa>>8)-int(ba>>8)),
	)
}

func fuzzyMatch(actual image.Image, x, y int, expected image.Image, bounds image.Rectangle, radius, tolerance int) bool {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			nx, ny := x+dx, y+dy
			if nx < bounds.Min.X || nx >= bounds.Max.X || ny < bounds.Min.Y || ny >= bounds.Max.Y {
				continue
			}
			if pixelDiff(actual, x, y, expected, nx, ny) <= tolerance {
				return true
			}
		}
	}
	return false
}

type dimensionMismatchError struct {
	actual, expected image.Rectangle
}

func (e *dimensionMismatchError) Error() string {
	return "imgtest: dimension mismatch: actual=" + e.actual.Size().String() + " expected=" + e.expected.Size().String()
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(vals ...int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
