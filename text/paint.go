package text

import (
	"image"
	"image/draw"

	"github.com/xiaoxigua1/takumi-go/canvas"
	"github.com/xiaoxigua1/takumi-go/core"
	"github.com/xiaoxigua1/takumi-go/style"
)

// Paint enqueues one draw command per glyph of laid, tinted by fs.Color
// (outline glyphs) or composited as-is (color bitmap/outline glyphs),
// offset by (originX, originY), spec.md §5's "each glyph's draw is a
// single enqueue" contract. Text-shadow layers (spec.md §4.7) are
// painted first, offset and recolored, so they sit beneath the main
// glyphs in paint order; shadows always use the flat shadow color and
// never sample maskImage. maskImage, when non-nil, is spec.md §4.8 step
// 4's mask_image: it is already fitted to the content box at
// (originX, originY), and each glyph samples its own slice of it as a
// per-pixel color source instead of fs.Color. Glyphs are painted at the
// identity transform; a node with both `transform` and text content
// only transforms its background/border, a simplification noted in
// DESIGN.md.
func Paint(ctx core.RenderContext, cv canvas.Canvas, svc FontService, laid *LaidOutLayout, fs style.FontStyle, originX, originY float32, maskImage image.Image) {
	for _, shadow := range fs.TextShadow {
		dx := shadow.OffsetX.ResolveToPx(ctx, 0)
		dy := shadow.OffsetY.ResolveToPx(ctx, 0)
		paintLines(cv, svc, laid.Lines(), fs.FontSizePx, originX+dx, originY+dy, shadow.Color, nil, originX, originY)
	}
	paintLines(cv, svc, laid.Lines(), fs.FontSizePx, originX, originY, fs.Color, maskImage, originX, originY)
}

// paintLines draws lines at (originX, originY), tinted by color unless
// maskImage is set, in which case each glyph samples its own crop of
// maskImage anchored at (maskOriginX, maskOriginY) — the content box's
// own origin, which stays fixed across the shadow/main passes even
// though originX/originY shift for shadows.
func paintLines(cv canvas.Canvas, svc FontService, lines []Line, sizePx, originX, originY float32, color style.Color, maskImage image.Image, maskOriginX, maskOriginY float32) {
	if color.IsTransparent() {
		return
	}
	maskLeft, maskTop := int(maskOriginX), int(maskOriginY)
	var penY float32
	for _, line := range lines {
		for _, g := range line.Glyphs {
			img := svc.ScaleGlyph(g.Font, sizePx, nil, g.GlyphID)
			x := int(originX+g.X) + img.OffsetX
			y := int(originY+penY) + img.OffsetY
			switch img.Kind {
			case GlyphOutline:
				if len(img.Mask) == 0 {
					continue
				}
				placement := canvas.Placement{Left: x, Top: y, Width: img.Width, Height: img.Height}
				var src image.Image
				if maskImage != nil {
					src = cropMaskImage(maskImage, x-maskLeft, y-maskTop, img.Width, img.Height)
				}
				cv.DrawMask(img.Mask, placement, color, src, style.Identity)
			case GlyphColorBitmap, GlyphColorOutline:
				if len(img.Bitmap) == 0 {
					continue
				}
				bmp := &image.RGBA{Pix: img.Bitmap, Stride: img.Width * 4, Rect: image.Rect(0, 0, img.Width, img.Height)}
				var overlay image.Image = bmp
				if maskImage != nil {
					crop := cropMaskImage(maskImage, x-maskLeft, y-maskTop, img.Width, img.Height)
					overlay = applyMaskImageToBitmap(bmp, crop)
				}
				cv.OverlayImage(overlay, canvas.Offset{X: x, Y: y}, nil, style.Identity, canvas.ScalingBilinear)
			}
		}
		penY += line.Height
	}
}

// cropMaskImage copies the (left, top)-(left+width, top+height) slice
// of mask into a fresh width x height RGBA image at origin (0,0), for
// use as a glyph's own DrawMask/OverlayImage source. Pixels outside
// mask's bounds are left fully transparent.
func cropMaskImage(mask image.Image, left, top, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), mask, image.Pt(left, top), draw.Src)
	return dst
}

// applyMaskImageToBitmap replaces a color glyph bitmap's own RGB with
// maskCrop's per-pixel color, keeping the bitmap's alpha as the shape,
// spec.md §4.8 step 4's "mask_image composited inside the glyph's own
// alpha" rule for color bitmap/outline glyphs.
func applyMaskImageToBitmap(bmp *image.RGBA, maskCrop image.Image) *image.RGBA {
	out := image.NewRGBA(bmp.Rect)
	b := bmp.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := bmp.At(x, y).RGBA()
			mr, mg, mb, _ := maskCrop.At(x, y).RGBA()
			i := out.PixOffset(x, y)
			out.Pix[i+0] = uint8(mr >> 8)
			out.Pix[i+1] = uint8(mg >> 8)
			out.Pix[i+2] = uint8(mb >> 8)
			out.Pix[i+3] = uint8(a >> 8)
		}
	}
	return out
}
