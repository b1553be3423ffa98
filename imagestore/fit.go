package imagestore

import (
	"image"

	"github.com/nfnt/resize"
)

// Fit names the object-fit keyword, a package-local copy of
// style.ObjectFit so this package stays decoupled from style (the same
// boundary layout/ keeps from style's render-context-dependent units).
type Fit uint8

const (
	FitFill Fit = iota
	FitContain
	FitCover
	FitNone
	FitScaleDown
)

// Position is an object-position anchor as a 0..1 fraction of slack
// space on each axis (0=start, 0.5=center, 1=end), already resolved
// from style.PositionComponent by the caller.
type Position struct {
	X, Y float32
}

// ApplyFit resizes and crops src to exactly fit a box of the given
// size under the given object-fit/object-position, spec.md §4.10: fill
// stretches to the box ignoring aspect ratio, contain/cover/scale-down
// preserve aspect ratio (contain never upscales past the box,
// scale-down never upscales past the source), none keeps intrinsic
// size. Uses nfnt/resize for the scaling step, the same library this
// module uses for background-repeat:round tiling, since both are
// "resample a source bitmap to a target pixel size" operations.
func ApplyFit(src image.Image, boxW, boxH int, fit Fit, pos Position) image.Image {
	sb := src.Bounds()
	srcW, srcH := sb.Dx(), sb.Dy()
	if srcW == 0 || srcH == 0 || boxW <= 0 || boxH <= 0 {
		return src
	}

	switch fit {
	case FitFill:
		return resize.Resize(uint(boxW), uint(boxH), src, resize.Bilinear)
	case FitNone:
		return cropToBox(src, boxW, boxH, pos)
	case FitContain, FitScaleDown:
		scale := minFloat(float64(boxW)/float64(srcW), float64(boxH)/float64(srcH))
		if fit == FitScaleDown && scale > 1 {
			scale = 1
		}
		w, h := uint(float64(srcW)*scale), uint(float64(srcH)*scale)
		scaled := resize.Resize(w, h, src, resize.Bilinear)
		return padToBox(scaled, boxW, boxH, pos)
	default: // cover
		scale := maxFloat(float64(boxW)/float64(srcW), float64(boxH)/float64(srcH))
		w, h := uint(float64(srcW)*scale), uint(float64(srcH)*scale)
		scaled := resize.Resize(w, h, src, resize.Bilinear)
		return cropToBox(scaled, boxW, boxH, pos)
	}
}

// cropToBox crops (or, if smaller, pads transparently around) src to
// exactly boxW x boxH, anchored per pos.
func cropToBox(src image.Image, boxW, boxH int, pos Position) image.Image {
	sb := src.Bounds()
	sw, sh := sb.Dx(), sb.Dy()
	ox := anchorOffset(sw-boxW, pos.X)
	oy := anchorOffset(sh-boxH, pos.Y)

	out := image.NewRGBA(image.Rect(0, 0, boxW, boxH))
	for y := 0; y < boxH; y++ {
		for x := 0; x < boxW; x++ {
			sx, sy := sb.Min.X+x+ox, sb.Min.Y+y+oy
			if sx < sb.Min.X || sx >= sb.Max.X || sy < sb.Min.Y || sy >= sb.Max.Y {
				continue
			}
			out.Set(x, y, src.At(sx, sy))
		}
	}
	return out
}

// padToBox centers (per pos) a smaller src within a transparent boxW x
// boxH canvas, used for object-fit: contain/scale-down.
func padToBox(src image.Image, boxW, boxH int, pos Position) image.Image {
	sb := src.Bounds()
	sw, sh := sb.Dx(), sb.Dy()
	ox := anchorOffset(boxW-sw, pos.X)
	oy := anchorOffset(boxH-sh, pos.Y)

	out := image.NewRGBA(image.Rect(0, 0, boxW, boxH))
	for y := 0; y < sh; y++ {
		for x := 0; x < sw; x++ {
			out.Set(x+ox, y+oy, src.At(sb.Min.X+x, sb.Min.Y+y))
		}
	}
	return out
}

// anchorOffset maps an object-position fraction (0=start, 0.5=center,
// 1=end) to a pixel offset within the given slack (positive means src
// is larger than the box, so the offset is a crop origin; negative
// means src is smaller, so it's a paste origin — both computed the
// same way since both are "where does 0 map to in slack pixels").
func anchorOffset(slack int, fraction float32) int {
	return int(float32(slack) * fraction)
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
