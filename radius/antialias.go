package radius

import (
	"image"
	"math"
)

type corner uint8

const (
	cornerTopLeft corner = iota
	cornerTopRight
	cornerBottomLeft
	cornerBottomRight
)

// ApplyAntialiased rounds the corners of an already-rasterized RGBA
// image in place by attenuating alpha in a one-pixel transition band
// around each corner, line-for-line ported from
// apply_border_radius_antialiased/process_corner_aa. Unlike
// WriteMaskCommands (which rasterizes a fresh rounded-rect path), this
// works directly on pixels already drawn onto img — the path the
// teacher takes for image content where redrawing from a vector path
// would lose already-composited detail.
func ApplyAntialiased(img *image.RGBA, radius BorderRadius) {
	width, height := img.Bounds().Dx(), img.Bounds().Dy()
	maxRadius := float32(width)
	if float32(height) < maxRadius {
		maxRadius = float32(height)
	}
	maxRadius /= 2.0

	clamp := BorderRadius{
		TopLeft:     minf(radius.TopLeft, maxRadius),
		TopRight:    minf(radius.TopRight, maxRadius),
		BottomRight: minf(radius.BottomRight, maxRadius),
		BottomLeft:  minf(radius.BottomLeft, maxRadius),
	}

	const transitionWidth = 1.0

	type job struct {
		c      corner
		radius float32
	}
	jobs := []job{
		{cornerTopLeft, clamp.TopLeft},
		{cornerTopRight, clamp.TopRight},
		{cornerBottomLeft, clamp.BottomLeft},
		{cornerBottomRight, clamp.BottomRight},
	}

	for _, j := range jobs {
		if j.radius <= 0 {
			continue
		}
		outerRadius := j.radius + transitionWidth
		outerRadiusSq := outerRadius * outerRadius
		radiusSq := j.radius * j.radius

		bandSize := int(math.Ceil(float64(outerRadius)))
		if alt := int(j.radius) + int(math.Ceil(transitionWidth*2.0)); alt > bandSize {
			bandSize = alt
		}

		var startX, startY, endX, endY int
		switch j.c {
		case cornerTopLeft:
			startX, startY = 0, 0
			endX, endY = bandSize, bandSize
		case cornerTopRight:
			startX = width - bandSize
			if startX < 0 {
				startX = 0
			}
			startY = 0
			endX, endY = width, bandSize
		case cornerBottomLeft:
			startX, endX = 0, bandSize
			startY = height - bandSize
			if startY < 0 {
				startY = 0
			}
			endY = height
		case cornerBottomRight:
			startX = width - bandSize
			if startX < 0 {
				startX = 0
			}
			startY = height - bandSize
			if startY < 0 {
				startY = 0
			}
			endX, endY = width, height
		}

		processCornerAA(img, startX, startY, endX, endY, j.c, j.radius, radiusSq, outerRadiusSq)
	}
}

func processCornerAA(img *image.RGBA, startX, startY, endX, endY int, c corner, radius, radiusSq, outerRadiusSq float32) {
	var cornerX, cornerY float32
	switch c {
	case cornerTopLeft:
		cornerX, cornerY = radius, radius
	case cornerTopRight:
		cornerX, cornerY = float32(startX), radius
	case cornerBottomLeft:
		cornerX, cornerY = radius, float32(startY)
	case cornerBottomRight:
		cornerX, cornerY = float32(startX), float32(startY)
	}

	outerRadius := float32(math.Sqrt(float64(outerRadiusSq)))
	innerRadius := float32(math.Sqrt(float64(radiusSq)))

	for y := startY; y < endY; y++ {
		fy := float32(y)
		dy := absf(fy - cornerY)
		dySq := dy * dy

		if dySq > outerRadiusSq {
			setRowAlpha(img, startX, endX, y, 0)
			continue
		}
		if dySq < radiusSq && absf(float32(startX)-cornerX) < radius && absf(float32(endX)-cornerX) < radius {
			continue
		}

		for x := startX; x < endX; x++ {
			fx := float32(x)
			dx := absf(fx - cornerX)
			distSq := dx*dx + dySq

			var alpha uint8
			switch {
			case distSq <= radiusSq:
				alpha = 255
			case distSq >= outerRadiusSq:
				alpha = 0
			default:
				dist := float32(math.Sqrt(float64(distSq)))
				factor := (outerRadius - dist) / (outerRadius - innerRadius)
				if factor < 0 {
					factor = 0
				}
				if factor > 1 {
					factor = 1
				}
				alpha = uint8(factor * 255.0)
			}

			if alpha < 255 {
				idx := img.PixOffset(x, y) + 3
				if alpha == 0 {
					img.Pix[idx] = 0
				} else {
					existing := uint32(img.Pix[idx])
					img.Pix[idx] = uint8((existing * uint32(alpha)) / 255)
				}
			}
		}
	}
}

func setRowAlpha(img *image.RGBA, startX, endX, y int, alpha uint8) {
	for x := startX; x < endX; x++ {
		img.Pix[img.PixOffset(x, y)+3] = alpha
	}
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
