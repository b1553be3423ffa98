package paint

import (
	"image"
	"image/color"
	"math"

	"github.com/xiaoxigua1/takumi-go/core"
	"github.com/xiaoxigua1/takumi-go/radius"
	"github.com/xiaoxigua1/takumi-go/style"
)

// RasterizeBoxShadow renders one box-shadow entry against the box size
// passed in (node painting passes the border box for outset shadows and
// the content box for inset ones), spec.md §4.7. Outset shadows return
// a buffer positioned by (offsetX, offsetY) relative to that box's own
// origin (the blur extent pushes the buffer's top-left into negative
// territory); inset shadows are already clipped to the box, so
// offsetX/Y are always 0. Grounded on takumi's box_shadow.rs
// draw_outset_shadow/draw_inset_shadow, adapted to return a buffer for
// the canvas package's OverlayImage command instead of blending
// directly into a shared destination.
func RasterizeBoxShadow(ctx core.RenderContext, contentW, contentH float32, shadow style.BoxShadow, br radius.BorderRadius) (img *image.RGBA, offsetX, offsetY int) {
	if shadow.Inset {
		return rasterizeInsetShadow(ctx, contentW, contentH, shadow, br), 0, 0
	}
	return rasterizeOutsetShadow(ctx, contentW, contentH, shadow, br)
}

func rasterizeOutsetShadow(ctx core.RenderContext, contentW, contentH float32, shadow style.BoxShadow, br radius.BorderRadius) (*image.RGBA, int, int) {
	offsetX := shadow.OffsetX.ResolveToPx(ctx, 0)
	offsetY := shadow.OffsetY.ResolveToPx(ctx, 0)
	blur := shadow.BlurRadius.ResolveToPx(ctx, 0)
	spread := shadow.Spread.ResolveToPx(ctx, 0)

	baseW := maxFloat32(contentW+spread*2, 0)
	baseH := maxFloat32(contentH+spread*2, 0)
	base := image.NewRGBA(image.Rect(0, 0, int(math.Ceil(float64(baseW))), int(math.Ceil(float64(baseH)))))
	fillSolid(base, shadow.Color)

	adjusted := radius.BorderRadius{
		TopLeft:     br.TopLeft + spread,
		TopRight:    br.TopRight + spread,
		BottomRight: br.BottomRight + spread,
		BottomLeft:  br.BottomLeft + spread,
	}
	applyRoundedMask(base, baseW, baseH, adjusted)

	shadowImg := base
	blurExtent := blur * 2

	if blur > 0 {
		padW := base.Bounds().Dx() + int(blurExtent*2)
		padH := base.Bounds().Dy() + int(blurExtent*2)
		padded := image.NewRGBA(image.Rect(0, 0, padW, padH))
		drawAt(padded, base, int(blurExtent), int(blurExtent))
		applyFastBlur(padded, blur/3.0)
		shadowImg = padded
		return shadowImg, int(math.Round(float64(offsetX - spread - blurExtent))), int(math.Round(float64(offsetY - spread - blurExtent)))
	}

	return shadowImg, int(math.Round(float64(offsetX - spread))), int(math.Round(float64(offsetY - spread)))
}

func rasterizeInsetShadow(ctx core.RenderContext, contentW, contentH float32, shadow style.BoxShadow, br radius.BorderRadius) *image.RGBA {
	offsetX := shadow.OffsetX.ResolveToPx(ctx, 0)
	offsetY := shadow.OffsetY.ResolveToPx(ctx, 0)
	blur := shadow.BlurRadius.ResolveToPx(ctx, 0)
	spread := shadow.Spread.ResolveToPx(ctx, 0)

	w, h := int(math.Ceil(float64(contentW))), int(math.Ceil(float64(contentH)))
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, maxInt(w, 0), maxInt(h, 0)))
	}

	elementMask := image.NewAlpha(image.Rect(0, 0, w, h))
	radius.WriteMaskCommands(contentW, contentH, br, func(x, y int, coverage uint8) {
		if x >= 0 && x < w && y >= 0 && y < h {
			elementMask.SetAlpha(x, y, color.Alpha{A: coverage})
		}
	})

	blurExtent := blur * 2
	shadowW := w + int(blurExtent*2)
	shadowH := h + int(blurExtent*2)
	shadowImg := image.NewRGBA(image.Rect(0, 0, shadowW, shadowH))

	for y := 0; y < shadowH; y++ {
		relY := float32(y) - blurExtent
		if relY < -offsetY-spread || relY >= contentH-offsetY+spread {
			continue
		}
		maskY := int(relY + offsetY + spread)
		if maskY < 0 || maskY >= h {
			continue
		}
		for x := 0; x < shadowW; x++ {
			relX := float32(x) - blurExtent
			if relX < -offsetX-spread || relX >= contentW-offsetX+spread {
				continue
			}
			maskX := int(relX + offsetX + spread)
			if maskX < 0 || maskX >= w {
				continue
			}
			if elementMask.AlphaAt(maskX, maskY).A == 0 {
				setRGBA(shadowImg, x, y, shadow.Color)
			}
		}
	}

	if blur > 0 {
		applyFastBlur(shadowImg, blur/3.0)
	}

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if elementMask.AlphaAt(x, y).A == 0 {
				continue
			}
			sx, sy := x+int(blurExtent), y+int(blurExtent)
			if sx < 0 || sx >= shadowW || sy < 0 || sy >= shadowH {
				continue
			}
			if _, _, _, a := shadowImg.At(sx, sy).RGBA(); a == 0 {
				continue
			}
			out.Set(x, y, shadowImg.At(sx, sy))
		}
	}
	return out
}

func fillSolid(img *image.RGBA, c style.Color) {
	col := c.NRGBA()
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Set(x, y, col)
		}
	}
}

func setRGBA(img *image.RGBA, x, y int, c style.Color) {
	b := img.Bounds()
	if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
		return
	}
	img.Set(x, y, c.NRGBA())
}

func drawAt(dst, src *image.RGBA, offX, offY int) {
	sb := src.Bounds()
	for y := sb.Min.Y; y < sb.Max.Y; y++ {
		for x := sb.Min.X; x < sb.Max.X; x++ {
			dst.Set(x+offX, y+offY, src.At(x, y))
		}
	}
}

func applyRoundedMask(img *image.RGBA, w, h float32, r radius.BorderRadius) {
	if r.IsZero() {
		return
	}
	radius.WriteMaskCommands(w, h, r, func(x, y int, coverage uint8) {
		b := img.Bounds()
		if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
			return
		}
		i := img.PixOffset(x, y)
		if coverage == 255 {
			return
		}
		a := img.Pix[i+3]
		img.Pix[i+3] = uint8((uint16(a) * uint16(coverage)) / 255)
	})
}

// applyFastBlur approximates a Gaussian blur with a three-pass
// separable box blur (horizontal then vertical, three times), the same
// box-blur-approximates-Gaussian trick image-rs's fast_blur uses
// internally. sigma is the already-converted standard deviation
// (CSS blur-radius / 3, per takumi's apply_fast_blur).
func applyFastBlur(img *image.RGBA, sigma float32) {
	if sigma <= 0 {
		return
	}
	r := int(math.Round(float64(sigma) * 1.5))
	if r < 1 {
		r = 1
	}
	for pass := 0; pass < 3; pass++ {
		boxBlurHorizontal(img, r)
		boxBlurVertical(img, r)
	}
}

func boxBlurHorizontal(img *image.RGBA, r int) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	src := make([]uint8, len(img.Pix))
	copy(src, img.Pix)
	window := 2*r + 1

	for y := 0; y < h; y++ {
		rowOff := y * img.Stride
		var sumR, sumG, sumB, sumA int
		for x := -r; x <= r; x++ {
			cx := clampInt(x, 0, w-1)
			i := rowOff + cx*4
			sumR += int(src[i])
			sumG += int(src[i+1])
			sumB += int(src[i+2])
			sumA += int(src[i+3])
		}
		for x := 0; x < w; x++ {
			i := rowOff + x*4
			img.Pix[i] = uint8(sumR / window)
			img.Pix[i+1] = uint8(sumG / window)
			img.Pix[i+2] = uint8(sumB / window)
			img.Pix[i+3] = uint8(sumA / window)

			outIdx := clampInt(x-r, 0, w-1)
			inIdx := clampInt(x+r+1, 0, w-1)
			oi := rowOff + outIdx*4
			ii := rowOff + inIdx*4
			sumR += int(src[ii]) - int(src[oi])
			sumG += int(src[ii+1]) - int(src[oi+1])
			sumB += int(src[ii+2]) - int(src[oi+2])
			sumA += int(src[ii+3]) - int(src[oi+3])
		}
	}
}

func boxBlurVertical(img *image.RGBA, r int) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	src := make([]uint8, len(img.Pix))
	copy(src, img.Pix)
	window := 2*r + 1

	for x := 0; x < w; x++ {
		colOff := x * 4
		var sumR, sumG, sumB, sumA int
		for y := -r; y <= r; y++ {
			cy := clampInt(y, 0, h-1)
			i := cy*img.Stride + colOff
			sumR += int(src[i])
			sumG += int(src[i+1])
			sumB += int(src[i+2])
			sumA += int(src[i+3])
		}
		for y := 0; y < h; y++ {
			i := y*img.Stride + colOff
			img.Pix[i] = uint8(sumR / window)
			img.Pix[i+1] = uint8(sumG / window)
			img.Pix[i+2] = uint8(sumB / window)
			img.Pix[i+3] = uint8(sumA / window)

			outIdx := clampInt(y-r, 0, h-1)
			inIdx := clampInt(y+r+1, 0, h-1)
			oi := outIdx*img.Stride + colOff
			ii := inIdx*img.Stride + colOff
			sumR += int(src[ii]) - int(src[oi])
			sumG += int(src[ii+1]) - int(src[oi+1])
			sumB += int(src[ii+2]) - int(src[oi+2])
			sumA += int(src[ii+3]) - int(src[oi+3])
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
