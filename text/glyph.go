package text

import (
	"image"

	"github.com/golang/freetype/raster"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ScaleGlyph rasterizes one glyph at sizePx into a single-channel
// coverage mask, walking the glyph's contour the way freetype's own
// rasterizer does (freetype is already wired in as gg's TrueType
// parser for the radius package's mask rendering; this package reuses
// it directly rather than going through gg's higher-level
// LoadFontFace/DrawString path, since individual glyphs need their own
// masks for the per-glyph draw-command enqueue the concurrency model
// requires). Color bitmap glyphs (emoji) are not supported by the
// plain truetype outline format, so every glyph here is GlyphOutline
// or GlyphNone.
func (s *DefaultFontService) ScaleGlyph(h FontHandle, sizePx float32, variations map[string]float32, glyphID uint32) GlyphImage {
	f := s.ttFontFor(h)
	if f == nil {
		return GlyphImage{Kind: GlyphNone}
	}

	scale := fixed.Int26_6(sizePx * 64)
	var buf truetype.GlyphBuf
	if err := buf.Load(f, scale, truetype.Index(glyphID), font.HintingNone); err != nil {
		return GlyphImage{Kind: GlyphNone}
	}
	if len(buf.Points) == 0 {
		return GlyphImage{Kind: GlyphNone}
	}

	minX, minY := buf.Bounds.Min.X, buf.Bounds.Min.Y
	maxX, maxY := buf.Bounds.Max.X, buf.Bounds.Max.Y
	w := int((maxX-minX)>>6) + 1
	h2 := int((maxY-minY)>>6) + 1
	if w <= 0 || h2 <= 0 {
		return GlyphImage{Kind: GlyphNone}
	}

	rz := raster.NewRasterizer(w, h2)
	rz.UseNonZeroWinding = true

	origin := fixed.Point26_6{X: minX, Y: minY}
	start := 0
	for _, end := range buf.Ends {
		addContour(rz, buf.Points[start:end], origin, h2)
		start = end
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h2))
	rz.Rasterize(raster.NewAlphaSrcPainter(mask))

	return GlyphImage{
		Kind:    GlyphOutline,
		Mask:    mask.Pix,
		Width:   w,
		Height:  h2,
		OffsetX: int(minX >> 6),
		// glyph contour Y grows upward; image rows grow downward, so the
		// top of the mask corresponds to the glyph's max Y.
		OffsetY: -int(maxY >> 6),
	}
}

// addContour walks one closed contour of a truetype glyph (a mix of
// on-curve and off-curve quadratic control points, TrueType's implied
// on-curve midpoint convention) and adds it to the rasterizer as
// straight/quadratic segments, translated so origin maps to (0,h).
func addContour(rz *raster.Rasterizer, points []truetype.Point, origin fixed.Point26_6, h int) {
	if len(points) == 0 {
		return
	}
	toFix := func(p truetype.Point) fixed.Point26_6 {
		return fixed.Point26_6{
			X: p.X - origin.X,
			Y: fixed.Int26_6(h<<6) - (p.Y - origin.Y),
		}
	}
	onCurve := func(p truetype.Point) bool { return p.Flags&1 != 0 }

	if !onCurve(points[0]) && !onCurve(points[len(points)-1]) {
		mid := truetype.Point{
			X:     (points[0].X + points[len(points)-1].X) / 2,
			Y:     (points[0].Y + points[len(points)-1].Y) / 2,
			Flags: 1,
		}
		points = append([]truetype.Point{mid}, points...)
	} else if !onCurve(points[0]) {
		points = append(points[len(points)-1:], points[:len(points)-1]...)
	}

	rz.Start(toFix(points[0]))
	i := 1
	n := len(points)
	for i <= n {
		cur := points[i%n]
		if onCurve(cur) {
			rz.Add1(toFix(cur))
			i++
			continue
		}
		next := points[(i+1)%n]
		var end fixed.Point26_6
		if onCurve(next) {
			end = toFix(next)
			i += 2
		} else {
			mid := truetype.Point{X: (cur.X + next.X) / 2, Y: (cur.Y + next.Y) / 2}
			end = toFix(mid)
			i++
		}
		rz.Add2(toFix(cur), end)
	}
}
