// Package paint rasterizes the non-trivial visual layers a box can
// have — gradients, the noise background, box/text shadows — into
// pixel buffers the canvas package can overlay. Grounded on takumi's
// rendering/{background_drawing,box_shadow}.rs, adapted to a Go
// package that returns *image.RGBA rather than mutating a shared
// buffer in place.
package paint

import (
	"image"
	"math"

	"github.com/xiaoxigua1/takumi-go/style"
)

// RasterizeGradient renders a gradient into a w x h RGBA image,
// spec.md §3.4/§4.5: linear gradients project each pixel onto the
// angle direction vector, radial gradients use normalized distance
// from the center along the shape's axes.
func RasterizeGradient(w, h int, g style.Gradient) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return img
	}
	resolved := style.ResolveGradientStops(g.Stops)
	sampler := style.NewStopSampler(resolved, style.PixelEpsilonForAxis(float32(max(w, h))))

	switch g.Kind {
	case style.GradientRadial:
		rasterizeRadial(img, w, h, g, sampler)
	default:
		rasterizeLinear(img, w, h, g, sampler)
	}
	return img
}

// rasterizeLinear projects each pixel center onto the gradient's
// direction vector (angle measured clockwise from "up", CSS
// convention) and samples the stop list at the normalized projection,
// ported from takumi's linear_gradient pixel loop.
func rasterizeLinear(img *image.RGBA, w, h int, g style.Gradient, sampler *style.StopSampler) {
	theta := float64(g.AngleDegrees) * math.Pi / 180.0
	dx := math.Sin(theta)
	dy := -math.Cos(theta)

	fw, fh := float64(w), float64(h)
	// Project the four corners to find the gradient line's extent so the
	// 0..1 stop range spans exactly the box along the gradient direction,
	// matching CSS's "gradient line" construction.
	corners := [4][2]float64{{0, 0}, {fw, 0}, {0, fh}, {fw, fh}}
	minP, maxP := math.Inf(1), math.Inf(-1)
	for _, c := range corners {
		p := c[0]*dx + c[1]*dy
		if p < minP {
			minP = p
		}
		if p > maxP {
			maxP = p
		}
	}
	span := maxP - minP
	if span == 0 {
		span = 1
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := float64(x) + 0.5
			py := float64(y) + 0.5
			proj := px*dx + py*dy
			t := (proj - minP) / span
			c := sampler.At(float32(t))
			img.Set(x, y, c.NRGBA())
		}
	}
}

// rasterizeRadial samples each pixel's distance from the gradient's
// center, normalized by the shape's radius along that direction (an
// ellipse scales x/y independently to the box's aspect ratio; a circle
// uses the same radius on both axes), ported from takumi's
// radial_gradient pixel loop.
func rasterizeRadial(img *image.RGBA, w, h int, g style.Gradient, sampler *style.StopSampler) {
	fw, fh := float32(w), float32(h)
	cx := resolvePositionPx(g.Center.X.ToLength(), fw)
	cy := resolvePositionPx(g.Center.Y.ToLength(), fh)

	farX := maxFloat32(cx, fw-cx)
	farY := maxFloat32(cy, fh-cy)

	var rx, ry float32
	switch g.Shape {
	case style.RadialCircle:
		r := float32(math.Hypot(float64(farX), float64(farY)))
		rx, ry = r, r
	default:
		rx, ry = farX, farY
	}
	if rx <= 0 {
		rx = 1
	}
	if ry <= 0 {
		ry = 1
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := (float32(x) + 0.5 - cx) / rx
			dy := (float32(y) + 0.5 - cy) / ry
			dist := float32(math.Sqrt(float64(dx*dx + dy*dy)))
			c := sampler.At(dist)
			img.Set(x, y, c.NRGBA())
		}
	}
}

// resolvePositionPx resolves a gradient-center/background-position
// length against a pixel basis without a render context: percentages
// scale by basis, px passes through, and any other unit (em/rem/vw/vh,
// rare for a position value) resolves as 0 — paint stays decoupled
// from core.RenderContext the same way layout does, so ctx-dependent
// units must already be lowered to px by the caller before reaching
// here.
func resolvePositionPx(l style.Length, basis float32) float32 {
	switch l.Unit {
	case style.UnitPercentage:
		return l.Value / 100.0 * basis
	case style.UnitPx:
		return l.Value
	default:
		return 0
	}
}

func maxFloat32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
