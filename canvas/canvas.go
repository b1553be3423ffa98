// Package canvas rasterizes drawing commands onto an in-memory RGBA
// image: solid fills, alpha masks, and transformed image overlays,
// grounded on takumi's rendering/canvas.rs.
package canvas

import (
	"fmt"
	"image"
	"math"

	"github.com/xiaoxigua1/takumi-go/style"
)

// Offset is an integer pixel position, the Go stand-in for taffy's
// Point<i32> used as a draw offset.
type Offset struct {
	X, Y int
}

// Size is an unsigned pixel extent.
type Size struct {
	Width, Height uint32
}

// RadiusMasker is anything that can rasterize a rounded-rectangle
// coverage mask for a box of the given size — satisfied by
// radius.BorderRadius through its own IsZero/WriteMask methods (WriteMask
// wraps the WriteMaskCommands top-level function), keeping this package from
// importing radius directly (radius already imports canvas-adjacent
// gg/style, and border-radius resolution is a style-layer concern, not
// a canvas one).
type RadiusMasker interface {
	IsZero() bool
	WriteMask(width, height float32, set func(x, y int, coverage uint8))
}

// ScalingAlgorithm selects the resampling filter used when overlaying a
// transformed image, mirroring style.ImageRendering.
type ScalingAlgorithm uint8

const (
	ScalingBilinear ScalingAlgorithm = iota
	ScalingPixelated
)

// DrawCommand is one entry of the canvas's work queue. Exactly one of
// the Kind-selected fields is meaningful, mirroring takumi's
// DrawCommand enum.
type DrawCommand struct {
	Kind DrawCommandKind

	// OverlayImage
	Image     image.Image
	Offset    Offset
	Radius    RadiusMasker
	Transform style.Affine
	Algorithm ScalingAlgorithm

	// FillColor
	Size  Size
	Color style.Color

	// DrawMask. Image, when set, is sampled per-pixel as the mask's
	// color source instead of Color (spec.md §4.8 step 4's
	// mask_image-as-glyph-fill path); it must already be cropped to
	// Placement's width/height with its own origin at (0,0).
	// Transform is reused for DrawMask too: a non-identity transform
	// here rotates/scales the rasterized mask along with the rest of
	// the node's paint, matching the FillColor/OverlayImage variants.
	Mask      []uint8
	Placement Placement
}

// DrawCommandKind discriminates DrawCommand's variant.
type DrawCommandKind uint8

const (
	CommandOverlayImage DrawCommandKind = iota
	CommandFillColor
	CommandDrawMask
)

// Placement positions a rasterized mask's bounding box on the canvas,
// the Go analogue of zeno::Placement.
type Placement struct {
	Left, Top     int
	Width, Height int
}

func (c DrawCommand) String() string {
	switch c.Kind {
	case CommandOverlayImage:
		b := c.Image.Bounds()
		return fmt.Sprintf("OverlayImage(width=%d, height=%d, offset=%+v)", b.Dx(), b.Dy(), c.Offset)
	case CommandFillColor:
		return fmt.Sprintf("FillColor(size=%+v, color=%+v)", c.Size, c.Color)
	case CommandDrawMask:
		return fmt.Sprintf("DrawMask(placement=%+v, color=%+v, hasImage=%v)", c.Placement, c.Color, c.Image != nil)
	default:
		return "DrawCommand(unknown)"
	}
}

// Canvas is a channel-backed handle for queuing draw commands; a send
// blocks the caller only while the channel's buffer is full. It mirrors
// takumi's mpsc-backed Canvas/DrawCommand
// split so node painting can run ahead of actual rasterization.
type Canvas struct {
	commands chan<- DrawCommand
}

// NewCanvas wraps a command channel.
func NewCanvas(commands chan<- DrawCommand) Canvas {
	return Canvas{commands: commands}
}

// OverlayImage queues an image overlay with optional border radius and
// transform.
func (c Canvas) OverlayImage(img image.Image, offset Offset, radius RadiusMasker, transform style.Affine, algorithm ScalingAlgorithm) {
	c.commands <- DrawCommand{
		Kind: CommandOverlayImage, Image: img, Offset: offset,
		Radius: radius, Transform: transform, Algorithm: algorithm,
	}
}

// FillColor queues a solid-color rectangle fill with optional border
// radius and transform.
func (c Canvas) FillColor(offset Offset, size Size, color style.Color, radius RadiusMasker, transform style.Affine) {
	c.commands <- DrawCommand{
		Kind: CommandFillColor, Offset: offset, Size: size, Color: color, Radius: radius, Transform: transform,
	}
}

// DrawMask queues a precomputed alpha mask tinted with a solid color
// (or, when src is non-nil, with src's own per-pixel colors), transformed
// by transform the same way FillColor/OverlayImage are.
func (c Canvas) DrawMask(mask []uint8, placement Placement, color style.Color, src image.Image, transform style.Affine) {
	c.commands <- DrawCommand{Kind: CommandDrawMask, Mask: mask, Placement: placement, Color: color, Image: src, Transform: transform}
}

// RunBlockingLoop drains commands from receiver and draws each onto a
// fresh viewport-sized RGBA image, returning it once the channel
// closes. Mirrors create_blocking_canvas_loop.
func RunBlockingLoop(width, height uint32, receiver <-chan DrawCommand, debug bool) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	for cmd := range receiver {
		cmd.Draw(canvas)
		if debug {
			fmt.Println(cmd.String())
		}
	}
	return canvas
}

// Draw executes one command against the destination image.
func (c DrawCommand) Draw(dst *image.RGBA) {
	switch c.Kind {
	case CommandOverlayImage:
		overlayImage(dst, c.Image, c.Offset, c.Radius, c.Transform, c.Algorithm)
	case CommandFillColor:
		drawFilledRectColor(dst, c.Size, c.Offset, c.Color, c.Radius, c.Transform)
	case CommandDrawMask:
		drawMaskWithTransform(dst, c.Mask, c.Placement, c.Color, c.Image, c.Transform)
	}
}

// DrawPixel alpha-blends a single straight-alpha color onto dst, a
// no-op when color is fully transparent. Grounded on draw_pixel.
func DrawPixel(dst *image.RGBA, x, y int, c style.Color) {
	if c.A == 0 {
		return
	}
	b := dst.Bounds()
	if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
		return
	}
	if c.A == 255 {
		i := dst.PixOffset(x, y)
		dst.Pix[i+0], dst.Pix[i+1], dst.Pix[i+2], dst.Pix[i+3] = c.R, c.G, c.B, c.A
		return
	}
	i := dst.PixOffset(x, y)
	srcA := float64(c.A) / 255.0
	dstA := float64(dst.Pix[i+3]) / 255.0
	outA := srcA + dstA*(1-srcA)
	blend := func(srcC, dstC uint8) uint8 {
		if outA == 0 {
			return 0
		}
		v := (float64(srcC)*srcA + float64(dstC)*dstA*(1-srcA)) / outA
		return uint8(math.Round(v))
	}
	dst.Pix[i+0] = blend(c.R, dst.Pix[i+0])
	dst.Pix[i+1] = blend(c.G, dst.Pix[i+1])
	dst.Pix[i+2] = blend(c.B, dst.Pix[i+2])
	dst.Pix[i+3] = uint8(math.Round(outA * 255))
}

func applyMaskAlpha(c style.Color, alpha uint8) style.Color {
	if alpha == 255 {
		return c
	}
	return style.Color{R: c.R, G: c.G, B: c.B, A: uint8(float32(c.A) * (float32(alpha) / 255.0))}
}

// drawFilledRectColor fills an offset/size rectangle with color, taking
// the full-canvas fast path when possible and otherwise rasterizing a
// rounded-rect mask via radius. Grounded on draw_filled_rect_color.
func drawFilledRectColor(dst *image.RGBA, size Size, offset Offset, color style.Color, radius RadiusMasker, transform style.Affine) {
	hasRadius := radius != nil && !radius.IsZero()
	canDirect := transform.IsIdentity() && !hasRadius
	bounds := dst.Bounds()

	if canDirect && color.A == 255 && offset.X == 0 && offset.Y == 0 &&
		int(size.Width) == bounds.Dx() && int(size.Height) == bounds.Dy() {
		for i := 0; i < len(dst.Pix); i += 4 {
			dst.Pix[i+0], dst.Pix[i+1], dst.Pix[i+2], dst.Pix[i+3] = color.R, color.G, color.B, color.A
		}
		return
	}

	if canDirect {
		for y := 0; y < int(size.Height); y++ {
			for x := 0; x < int(size.Width); x++ {
				DrawPixel(dst, x+offset.X, y+offset.Y, color)
			}
		}
		return
	}

	if hasRadius && transform.IsIdentity() {
		mask, placement := rasterizeMask(size, radius)
		placement.Left += offset.X
		placement.Top += offset.Y
		drawMask(dst, mask, placement, color, nil)
		return
	}

	// A transform is present: build one solid-color path, apply the
	// radius mask to it first if present, then rasterize the combined
	// path through the transformed-image path so radius and transform
	// always compose instead of one silently overriding the other.
	solid := image.NewRGBA(image.Rect(0, 0, int(size.Width), int(size.Height)))
	for i := 0; i < len(solid.Pix); i += 4 {
		solid.Pix[i+0], solid.Pix[i+1], solid.Pix[i+2], solid.Pix[i+3] = color.R, color.G, color.B, color.A
	}
	if hasRadius {
		mask, placement := rasterizeMask(size, radius)
		masked := image.NewRGBA(image.Rect(0, 0, int(size.Width), int(size.Height)))
		drawMask(masked, mask, placement, style.Transparent, solid)
		solid = masked
	}
	drawImageWithTransform(dst, solid, transform, offset, ScalingBilinear)
}

// drawMask tints a rasterized coverage mask with color (or samples an
// optional source image per pixel) and composites it at placement.
// Grounded on draw_mask.
func drawMask(dst *image.RGBA, mask []uint8, placement Placement, color style.Color, src image.Image) {
	i := 0
	for y := 0; y < placement.Height; y++ {
		for x := 0; x < placement.Width; x++ {
			alpha := mask[i]
			i++
			if alpha == 0 {
				continue
			}
			destX := x + placement.Left
			destY := y + placement.Top
			if destX < 0 || destY < 0 {
				continue
			}
			var pixel style.Color
			if src != nil {
				r, g, b, a := src.At(x, y).RGBA()
				pixel = applyMaskAlpha(style.Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}, alpha)
			} else {
				pixel = applyMaskAlpha(color, alpha)
			}
			DrawPixel(dst, destX, destY, pixel)
		}
	}
}

// drawMaskWithTransform composites a rasterized mask at placement,
// tinted by src's own pixels when given instead of a flat color, routing
// through the transformed-image path when transform isn't the identity
// so rotated/scaled nodes (e.g. a bordered, transformed box, or a
// mask-image-filled glyph) carry their mask along with the rest of the
// node's paint.
func drawMaskWithTransform(dst *image.RGBA, mask []uint8, placement Placement, color style.Color, src image.Image, transform style.Affine) {
	if transform.IsIdentity() {
		drawMask(dst, mask, placement, color, src)
		return
	}
	tinted := image.NewRGBA(image.Rect(0, 0, placement.Width, placement.Height))
	drawMask(tinted, mask, Placement{Width: placement.Width, Height: placement.Height}, color, src)
	drawImageWithTransform(dst, tinted, transform, Offset{X: placement.Left, Y: placement.Top}, ScalingBilinear)
}

// rasterizeMask runs a RadiusMasker over a size.Width x size.Height box
// and returns a dense row-major coverage buffer plus its placement at
// the origin (offset applied by the caller).
func rasterizeMask(size Size, radius RadiusMasker) ([]uint8, Placement) {
	w, h := int(size.Width), int(size.Height)
	mask := make([]uint8, w*h)
	radius.WriteMask(float32(w), float32(h), func(x, y int, coverage uint8) {
		if x < 0 || y < 0 || x >= w || y >= h {
			return
		}
		mask[y*w+x] = coverage
	})
	return mask, Placement{Width: w, Height: h}
}

// overlayImage composites img at offset, applying transform and/or
// border radius as needed. Grounded on overlay_image.
func overlayImage(dst *image.RGBA, img image.Image, offset Offset, radius RadiusMasker, transform style.Affine, algorithm ScalingAlgorithm) {
	if transform.IsIdentity() && (radius == nil || radius.IsZero()) {
		b := img.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				destX := offset.X + (x - b.Min.X)
				destY := offset.Y + (y - b.Min.Y)
				if destX < 0 || destY < 0 {
					continue
				}
				r, g, bl, a := img.At(x, y).RGBA()
				DrawPixel(dst, destX, destY, style.Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8), A: uint8(a >> 8)})
			}
		}
		return
	}

	if radius != nil && !radius.IsZero() {
		b := img.Bounds()
		size := Size{Width: uint32(b.Dx()), Height: uint32(b.Dy())}
		mask, placement := rasterizeMask(size, radius)
		masked := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		drawMask(masked, mask, placement, style.Transparent, img)
		overlayImage(dst, masked, offset, nil, transform, algorithm)
		return
	}

	drawImageWithTransform(dst, img, transform, offset, algorithm)
}

// drawImageWithTransform inverse-maps every destination pixel in the
// transformed bounding box back into source space and samples it,
// bilinear or nearest depending on algorithm. Grounded on
// draw_image_with_transform.
func drawImageWithTransform(dst *image.RGBA, img image.Image, transform style.Affine, offset Offset, algorithm ScalingAlgorithm) {
	inverse, ok := transform.Invert()
	if !ok {
		return
	}
	b := img.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())

	corners := [4][2]float32{{0, 0}, {w, 0}, {w, h}, {0, h}}
	minX, minY := float32(math.MaxFloat32), float32(math.MaxFloat32)
	maxX, maxY := -float32(math.MaxFloat32), -float32(math.MaxFloat32)
	for _, c := range corners {
		x, y := transform.Apply(c[0], c[1])
		if x < minX {
			minX = x
		}
		if y < minY {
			minY = y
		}
		if x > maxX {
			maxX = x
		}
		if y > maxY {
			maxY = y
		}
	}

	startX, startY := int(math.Floor(float64(minX))), int(math.Floor(float64(minY)))
	endX, endY := int(math.Ceil(float64(maxX))), int(math.Ceil(float64(maxY)))

	for y := startY; y < endY; y++ {
		for x := startX; x < endX; x++ {
			srcX, srcY := inverse.Apply(float32(x), float32(y))
			canvasX, canvasY := x+offset.X, y+offset.Y
			if canvasX < 0 || canvasY < 0 {
				continue
			}
			var pixel style.Color
			var ok bool
			switch algorithm {
			case ScalingPixelated:
				pixel, ok = sampleNearest(img, srcX, srcY)
			default:
				pixel, ok = sampleBilinear(img, srcX, srcY)
			}
			if ok {
				DrawPixel(dst, canvasX, canvasY, pixel)
			}
		}
	}
}

func sampleNearest(img image.Image, x, y float32) (style.Color, bool) {
	b := img.Bounds()
	ix, iy := int(math.Round(float64(x))), int(math.Round(float64(y)))
	if ix < 0 || iy < 0 || ix < b.Min.X || iy < b.Min.Y || ix >= b.Max.X || iy >= b.Max.Y {
		return style.Color{}, false
	}
	r, g, bl, a := img.At(ix, iy).RGBA()
	return style.Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8), A: uint8(a >> 8)}, true
}

func sampleBilinear(img image.Image, x, y float32) (style.Color, bool) {
	b := img.Bounds()
	if x < float32(b.Min.X)-1 || y < float32(b.Min.Y)-1 || x > float32(b.Max.X) || y > float32(b.Max.Y) {
		return style.Color{}, false
	}
	x0 := int(math.Floor(float64(x)))
	y0 := int(math.Floor(float64(y)))
	x1, y1 := x0+1, y0+1
	fx, fy := x-float32(x0), y-float32(y0)

	get := func(px, py int) (float32, float32, float32, float32) {
		if px < b.Min.X || py < b.Min.Y || px >= b.Max.X || py >= b.Max.Y {
			return 0, 0, 0, 0
		}
		r, g, bl, a := img.At(px, py).RGBA()
		return float32(r >> 8), float32(g >> 8), float32(bl >> 8), float32(a >> 8)
	}
	r00, g00, b00, a00 := get(x0, y0)
	r10, g10, b10, a10 := get(x1, y0)
	r01, g01, b01, a01 := get(x0, y1)
	r11, g11, b11, a11 := get(x1, y1)

	lerp := func(a, b, t float32) float32 { return a + (b-a)*t }
	top := func(a00, a10 float32) float32 { return lerp(a00, a10, fx) }
	bottom := func(a01, a11 float32) float32 { return lerp(a01, a11, fx) }
	mix := func(a00, a10, a01, a11 float32) uint8 {
		return uint8(math.Round(float64(lerp(top(a00, a10), bottom(a01, a11), fy))))
	}
	return style.Color{
		R: mix(r00, r10, r01, r11),
		G: mix(g00, g10, g01, g11),
		B: mix(b00, b10, b01, b11),
		A: mix(a00, a10, a01, a11),
	}, true
}
