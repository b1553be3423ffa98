// Package radius resolves CSS border-radius percentages against a
// node's layout box and applies the resulting rounded-corner mask to
// rasterized content, grounded on takumi's border_radius.rs.
package radius

import (
	"math"

	"github.com/fogleman/gg"

	"github.com/xiaoxigua1/takumi-go/core"
	"github.com/xiaoxigua1/takumi-go/style"
)

// BorderRadius holds the four resolved per-corner pixel radii, ordered
// to match style.Sides[Length] on the border-radius property (Top=TL,
// Right=TR, Bottom=BR, Left=BL).
type BorderRadius struct {
	TopLeft, TopRight, BottomRight, BottomLeft float32
}

// IsZero reports whether every corner is unrounded.
func (r BorderRadius) IsZero() bool {
	return r.TopLeft == 0 && r.TopRight == 0 && r.BottomRight == 0 && r.BottomLeft == 0
}

// FromLayout resolves a border-radius property against the box size the
// caller passes (node painting passes the border box), line-for-line ported from from_layout/
// resolve_border_radius_from_percentage_css: CSS border-radius
// percentages resolve against the smaller of width/height so that
// circular corners stay circular.
func FromLayout(ctx core.RenderContext, width, height float32, radius style.Sides[style.Length]) BorderRadius {
	reference := width
	if height < reference {
		reference = height
	}
	resolve := func(l style.Length) float32 {
		switch l.Unit {
		case style.UnitPx:
			return l.Value
		case style.UnitPercentage:
			return l.Value / 100.0 * reference
		case style.UnitAuto:
			return 0
		default:
			return l.ResolveToPx(ctx, reference)
		}
	}
	return BorderRadius{
		TopLeft:     resolve(radius.Top),
		TopRight:    resolve(radius.Right),
		BottomRight: resolve(radius.Bottom),
		BottomLeft:  resolve(radius.Left),
	}
}

// Clamp caps every corner radius to half the smaller of width/height,
// the same clamp apply_border_radius_antialiased performs against the
// image dimensions before banding.
func (r BorderRadius) Clamp(width, height float32) BorderRadius {
	max := width
	if height < max {
		max = height
	}
	max /= 2.0
	clampOne := func(v float32) float32 {
		if v > max {
			return max
		}
		return v
	}
	return BorderRadius{
		TopLeft:     clampOne(r.TopLeft),
		TopRight:    clampOne(r.TopRight),
		BottomRight: clampOne(r.BottomRight),
		BottomLeft:  clampOne(r.BottomLeft),
	}
}

// AppendMaskPath traces a rounded-rectangle outline with the four
// independent corner radii onto a gg context's current path, at the
// given origin and size. Callers use gg.Clip()/gg.Fill() on the
// resulting path to mask or fill rounded content; grounded on the
// per-corner radius contract of apply_border_radius_antialiased,
// adapted to gg's vector path primitives since this package rasterizes
// its masks through gg rather than taffy/imageproc.
func AppendMaskPath(dc *gg.Context, x, y, width, height float32, radius BorderRadius) {
	r := radius.Clamp(width, height)
	x0, y0 := float64(x), float64(y)
	w, h := float64(width), float64(height)

	dc.NewSubPath()
	dc.MoveTo(x0+float64(r.TopLeft), y0)
	dc.LineTo(x0+w-float64(r.TopRight), y0)
	if r.TopRight > 0 {
		dc.DrawArc(x0+w-float64(r.TopRight), y0+float64(r.TopRight), float64(r.TopRight), -math.Pi/2, 0)
	}
	dc.LineTo(x0+w, y0+h-float64(r.BottomRight))
	if r.BottomRight > 0 {
		dc.DrawArc(x0+w-float64(r.BottomRight), y0+h-float64(r.BottomRight), float64(r.BottomRight), 0, math.Pi/2)
	}
	dc.LineTo(x0+float64(r.BottomLeft), y0+h)
	if r.BottomLeft > 0 {
		dc.DrawArc(x0+float64(r.BottomLeft), y0+h-float64(r.BottomLeft), float64(r.BottomLeft), math.Pi/2, math.Pi)
	}
	dc.LineTo(x0, y0+float64(r.TopLeft))
	if r.TopLeft > 0 {
		dc.DrawArc(x0+float64(r.TopLeft), y0+float64(r.TopLeft), float64(r.TopLeft), math.Pi, 3*math.Pi/2)
	}
	dc.ClosePath()
}

// WriteMask implements canvas.RadiusMasker, letting the canvas package
// rasterize a coverage mask for this radius without either package
// importing the other.
func (r BorderRadius) WriteMask(width, height float32, set func(x, y int, coverage uint8)) {
	WriteMaskCommands(width, height, r, set)
}

// WriteMaskCommands rasterizes the rounded-rectangle mask described by
// AppendMaskPath into an alpha-only callback, one coverage sample per
// pixel in [0, ceil(width)) x [0, ceil(height)); a zero radius reports
// full coverage everywhere. It renders the path through an offscreen gg
// context at 1x and reads back the alpha channel rather than
// reimplementing analytic antialiasing, since gg's own scanline
// rasterizer already produces the soft edge
// apply_border_radius_antialiased hand-rolls in the original.
func WriteMaskCommands(width, height float32, radius BorderRadius, set func(x, y int, coverage uint8)) {
	if radius.IsZero() {
		w, h := int(math.Ceil(float64(width))), int(math.Ceil(float64(height)))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				set(x, y, 255)
			}
		}
		return
	}
	w, h := int(math.Ceil(float64(width))), int(math.Ceil(float64(height)))
	if w <= 0 || h <= 0 {
		return
	}
	dc := gg.NewContext(w, h)
	dc.SetRGBA(1, 1, 1, 1)
	AppendMaskPath(dc, 0, 0, width, height, radius)
	dc.Fill()
	img := dc.Image()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			set(x, y, uint8(a>>8))
		}
	}
}
