// Package text shapes and measures runs of styled text and rasterizes
// their glyphs, the "font service" spec.md §6.2 treats as an external
// collaborator. The default implementation is grounded on
// go-text/typesetting, the shaping library the teacher pulls in
// transitively through gg/go-text/render and that boergens-gotypst uses
// directly for the same job.
package text

import "github.com/xiaoxigua1/takumi-go/style"

// FontHandle identifies a previously loaded font face. The zero value
// never refers to a loaded font.
type FontHandle uint32

// FontInfo overrides the family/weight/style a loaded font is filed
// under, when the caller doesn't want to trust the font's own name
// table (spec.md §6.2's "optional info override").
type FontInfo struct {
	Family string
	Weight int
	Style  style.FontStyleKeyword
}

// FontService is the font database and shaper the renderer consumes.
// Implementations must be safe for concurrent use: the renderer may
// shape several text nodes from different goroutines, and spec.md §5
// requires the service hold its font database and shaping cache behind
// interior locks.
type FontService interface {
	// LoadFont registers a font from raw bytes (TTF/OTF, or WOFF/WOFF2
	// detected by magic). info, when non-nil, overrides the family name
	// the font is filed under.
	LoadFont(data []byte, info *FontInfo) error

	// LayoutText shapes text under the given font style and wraps it to
	// maxWidth (MaxContent-available when maxWidth is nil), returning an
	// iterator-like layout the caller pulls lines from via BreakNext.
	LayoutText(text string, fs style.FontStyle, maxWidth *float32) (LaidOutLayout, error)

	// ScaleGlyph rasterizes one glyph of font at the given pixel size,
	// returning whichever representation the glyph naturally has.
	ScaleGlyph(font FontHandle, sizePx float32, variations map[string]float32, glyphID uint32) GlyphImage
}

// Line is one wrapped line's byte range into the original text plus its
// resolved line box height (spec.md §6.2's break_next contract).
type Line struct {
	Start, End int
	Width      float32
	Height     float32
	Glyphs     []PositionedGlyph
}

// PositionedGlyph is one shaped glyph placed within its line's local
// coordinate space (baseline-relative y=0 at the line's ascent).
type PositionedGlyph struct {
	Font    FontHandle
	GlyphID uint32
	X, Y    float32 // pen position, in pixels, relative to line start
	Advance float32
}

// LaidOutLayout is the shaped-and-wrapped result of one LayoutText call.
// BreakNext pulls successive lines; Revert rewinds to re-pull the last
// line (used by Measure's height budget to give back a line that does
// not fit), matching spec.md §6.2's iterator contract.
type LaidOutLayout struct {
	lines   []Line
	pos     int
	lastPos int
}

// BreakNext returns the next line and true, or a zero Line and false
// once every line has been consumed.
func (l *LaidOutLayout) BreakNext(maxWidth float32) (Line, bool) {
	if l.pos >= len(l.lines) {
		return Line{}, false
	}
	l.lastPos = l.pos
	line := l.lines[l.pos]
	l.pos++
	return line, true
}

// Revert rewinds the iterator by one line, so the next BreakNext call
// re-yields the line just consumed.
func (l *LaidOutLayout) Revert() {
	l.pos = l.lastPos
}

// Lines returns every wrapped line without consuming the iterator,
// convenience for callers that want the whole layout at once (the
// common case: text painting wants all lines, with BreakNext/Revert
// only mattering when Measure trims lines to a height budget).
func (l *LaidOutLayout) Lines() []Line { return l.lines }

// LineCount reports how many lines BreakNext will yield in total.
func (l *LaidOutLayout) LineCount() int { return len(l.lines) }

// GlyphImageKind discriminates the representation ScaleGlyph returns.
type GlyphImageKind uint8

const (
	GlyphNone GlyphImageKind = iota
	GlyphColorBitmap
	GlyphColorOutline
	GlyphOutline
)

// GlyphImage is one rasterized glyph, spec.md §6.2's
// ColorBitmap|ColorOutline|Outline|None sum type. Bitmap is an RGBA
// color image (emoji), Mask is a single-channel coverage mask (a glyph
// outline rasterized without color, tinted by the caller's text color).
// OffsetX/OffsetY position the top-left of the image relative to the
// glyph's pen origin.
type GlyphImage struct {
	Kind             GlyphImageKind
	Bitmap           []byte // RGBA8, len == Width*Height*4, set for ColorBitmap/ColorOutline
	Mask             []byte // single-channel coverage, set for Outline
	Width, Height    int
	OffsetX, OffsetY int
}
