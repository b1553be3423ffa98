package paint

import (
	"image"
	"image/draw"

	"github.com/nfnt/resize"

	"github.com/xiaoxigua1/takumi-go/style"
)

// TileLayer composites one background-image layer (gradient or noise)
// into a boxW x boxH RGBA buffer, resolving background-size/position/
// repeat the way spec.md §4.4 describes: the layer's own tile is
// rendered once at its resolved size, then stamped across the box per
// its repeat mode. Grounded on takumi's rendering/background_drawing.rs
// draw_background_image, generalized across BackgroundLayerKind.
func TileLayer(boxW, boxH int, layer style.BackgroundLayer) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, boxW, boxH))
	if boxW <= 0 || boxH <= 0 {
		return out
	}

	tileW, tileH := resolveSize(boxW, boxH, layer.Size, layer)
	if tileW <= 0 || tileH <= 0 {
		return out
	}

	tile := renderTile(tileW, tileH, layer)

	roundX := layer.Repeat.X == style.RepeatRound
	roundY := layer.Repeat.Y == style.RepeatRound
	if roundX || roundY {
		tile = RoundTileSize(tile, boxW, boxH, roundX, roundY)
		b := tile.Bounds()
		tileW, tileH = b.Dx(), b.Dy()
	}

	repeatX := layer.Repeat.X != style.RepeatNoRepeat
	repeatY := layer.Repeat.Y != style.RepeatNoRepeat

	originX := resolveOrigin(boxW, tileW, layer.Position.X.ToLength())
	originY := resolveOrigin(boxH, tileH, layer.Position.Y.ToLength())

	stepX, startX := tileStep(boxW, tileW, originX, layer.Repeat.X)
	stepY, startY := tileStep(boxH, tileH, originY, layer.Repeat.Y)

	for ty := startY; ty < boxH; ty += stepY {
		for tx := startX; tx < boxW; tx += stepX {
			draw.Draw(out, image.Rect(tx, ty, tx+tileW, ty+tileH), tile, image.Point{}, draw.Over)
			if !repeatX {
				break
			}
		}
		if !repeatY {
			break
		}
	}
	return out
}

func renderTile(w, h int, layer style.BackgroundLayer) *image.RGBA {
	switch layer.Kind {
	case style.BackgroundLayerGradient:
		return RasterizeGradient(w, h, layer.Gradient)
	case style.BackgroundLayerNoise:
		return RasterizeNoise(w, h, layer.Noise)
	default:
		return image.NewRGBA(image.Rect(0, 0, w, h))
	}
}

// resolveSize resolves a background-size for one layer against the box
// dimensions: cover/contain scale the layer's own natural size
// (assumed equal to the box for generated layers, since gradients/noise
// have no intrinsic size of their own) — both degenerate to "fill the
// box" for generated content, matching takumi's treatment of gradient
// layers as always covering their background-size box.
func resolveSize(boxW, boxH int, size style.BackgroundSize, layer style.BackgroundLayer) (int, int) {
	switch size.Mode {
	case style.BackgroundSizeExplicit:
		w := boxW
		if size.Width.Unit != style.UnitAuto {
			w = int(resolvePositionPx(size.Width, float32(boxW)))
		}
		h := boxH
		if size.Height.Unit != style.UnitAuto {
			h = int(resolvePositionPx(size.Height, float32(boxH)))
		}
		return w, h
	default:
		return boxW, boxH
	}
}

func resolveOrigin(boxDim, tileDim int, pos style.Length) int {
	slack := boxDim - tileDim
	return int(resolvePositionPx(pos, float32(slack)))
}

// tileStep resolves repeat-space/round spacing: round's tile has
// already been rescaled by TileLayer (via RoundTileSize) to fit an
// integer number of copies, so it steps edge-to-edge exactly like
// repeat; space distributes leftover gaps between whole tiles;
// repeat tiles edge-to-edge from the resolved origin backward to cover
// negative offsets; no-repeat places a single tile at the origin.
func tileStep(boxDim, tileDim, origin int, repeat style.RepeatStyle) (step, start int) {
	if tileDim <= 0 {
		return boxDim + 1, 0
	}
	switch repeat {
	case style.RepeatNoRepeat:
		return boxDim + 1, origin
	case style.RepeatSpace:
		count := boxDim / tileDim
		if count < 1 {
			return boxDim + 1, origin
		}
		gap := 0
		if count > 1 {
			gap = (boxDim - count*tileDim) / (count - 1)
		}
		return tileDim + gap, 0
	default: // repeat, round (round's tile is pre-resized by the caller)
		start = origin % tileDim
		if start > 0 {
			start -= tileDim
		}
		return tileDim, start
	}
}

// RoundTileSize rescales a tile so an integer number of copies exactly
// fills boxDim, spec.md §4.4's `background-repeat: round` contract: each
// rounded axis is resized to the divisor of the box dimension nearest
// the tile's own size (the smaller one on a tie).
// Uses nfnt/resize, the library this module also uses for object-fit
// image scaling.
func RoundTileSize(tile *image.RGBA, boxW, boxH int, roundX, roundY bool) *image.RGBA {
	b := tile.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return tile
	}
	nearestDivisor := func(box, size int) int {
		best := box
		for d := 1; d <= box; d++ {
			if box%d == 0 && (d-size)*(d-size) < (best-size)*(best-size) {
				best = d
			}
		}
		return best
	}
	newW, newH := w, h
	if roundX {
		newW = nearestDivisor(boxW, w)
	}
	if roundY {
		newH = nearestDivisor(boxH, h)
	}
	if newW == w && newH == h {
		return tile
	}
	resized := resize.Resize(uint(newW), uint(newH), tile, resize.Bilinear)
	out := image.NewRGBA(resized.Bounds())
	draw.Draw(out, out.Bounds(), resized, image.Point{}, draw.Src)
	return out
}

func roundDiv(a, b int) int {
	if b == 0 {
		return 1
	}
	return (a + b/2) / b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
