package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/math/fixed"

	"github.com/xiaoxigua1/takumi-go/style"
)

// loadedFont is one registered face plus the family/weight/style it is
// filed under, grounded on boergens-gotypst's font.Font wrapper
// (font/loader.go) trimmed to the fields this service needs. Two
// parses of the same bytes are kept side by side: the go-text face
// drives shaping (HarfBuzz advances/clusters), the freetype font
// drives per-glyph contour rasterization in glyph.go — the same split
// the teacher makes between gg (rasterization, backed by freetype) and
// nothing-for-shaping, since the teacher never shapes text at all.
type loadedFont struct {
	handle  FontHandle
	face    *gotext.Face
	ttFont  *truetype.Font
	family  string
	weight  int
	italic  bool
}

// DefaultFontService is the go-text/typesetting-backed FontService
// shipped with this package. Safe for concurrent use: every method
// takes mu, matching spec.md §5's "font service holds internal mutable
// state ... behind interior locks".
type DefaultFontService struct {
	mu     sync.Mutex
	fonts  []*loadedFont
	nextID FontHandle
	shaper shaping.HarfbuzzShaper
}

// NewDefaultFontService constructs an empty font database; callers
// register fonts with LoadFont before shaping any text.
func NewDefaultFontService() *DefaultFontService {
	return &DefaultFontService{nextID: 1}
}

// LoadFont parses data with both go-text's ParseTTF and freetype's
// truetype.Parse. freetype accepts only TrueType-outline fonts, so
// CFF-based OTF and WOFF/WOFF2 input is rejected with an error; no
// format detection or decompression is done.
func (s *DefaultFontService) LoadFont(data []byte, info *FontInfo) error {
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("text: parse font: %w", err)
	}
	ttFont, err := truetype.Parse(data)
	if err != nil {
		return fmt.Errorf("text: parse font outline: %w", err)
	}

	lf := &loadedFont{face: face, ttFont: ttFont}
	if info != nil && info.Family != "" {
		lf.family = info.Family
		lf.weight = info.Weight
		lf.italic = info.Style == style.FontStyleItalic || info.Style == style.FontStyleOblique
	} else if face.Font != nil {
		desc := face.Font.Describe()
		lf.family = desc.Family
		lf.weight = int(desc.Aspect.Weight)
		lf.italic = desc.Aspect.Style != gotext.StyleNormal
	}

	s.mu.Lock()
	lf.handle = s.nextID
	s.nextID++
	s.fonts = append(s.fonts, lf)
	s.mu.Unlock()
	return nil
}

// matchFaces returns the faces whose family appears in the requested
// family list, in request order, falling back to every loaded face when
// none match (spec.md §7's "fallback chain is consulted").
func (s *DefaultFontService) matchFaces(families []string, weight int, italic bool) []*loadedFont {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []*loadedFont
	for _, fam := range families {
		for _, f := range s.fonts {
			if f.family == fam {
				matched = append(matched, f)
			}
		}
	}
	if len(matched) == 0 {
		matched = append(matched, s.fonts...)
	}
	return matched
}

func (s *DefaultFontService) faceFor(h FontHandle) *gotext.Face {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.fonts {
		if f.handle == h {
			return f.face
		}
	}
	return nil
}

func (s *DefaultFontService) ttFontFor(h FontHandle) *truetype.Font {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.fonts {
		if f.handle == h {
			return f.ttFont
		}
	}
	return nil
}

func toFixed(v float32) fixed.Int26_6 { return fixed.Int26_6(v * 64) }
func fromFixed(v fixed.Int26_6) float32 { return float32(v) / 64 }

// LayoutText shapes text with the first matching loaded font (falling
// back through the family list) and greedily wraps it to maxWidth,
// grounded on boergens-gotypst's Shape (layout/inline/shaping.go) for
// the shaping call and a from-scratch greedy-wrap line breaker — the
// teacher repo has no text layout at all, so the wrap algorithm follows
// spec.md §4.8 directly: break at the last space before exceeding
// maxWidth. Words are never split: a single word wider than maxWidth
// stays whole on its own line.
func (s *DefaultFontService) LayoutText(text string, fs style.FontStyle, maxWidth *float32) (LaidOutLayout, error) {
	faces := s.matchFaces(fs.FontFamily, fs.FontWeight, fs.FontStyle != style.FontStyleNormal)
	if len(faces) == 0 {
		return LaidOutLayout{}, fmt.Errorf("text: no font loaded for families %v", fs.FontFamily)
	}
	face := faces[0]

	runes := []rune(applyTextTransform(text, fs.TextTransform))
	if len(runes) == 0 {
		return LaidOutLayout{}, nil
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Face:      face.face,
		Size:      toFixed(fs.FontSizePx),
		Direction: di.DirectionLTR,
	}
	out := s.shaper.Shape(input)

	type word struct {
		start, end int // rune indices, end exclusive
		width      float32
		glyphs     []PositionedGlyph
	}
	var words []word
	cur := word{start: 0}
	var pen float32
	runeOfGlyph := func(g shaping.Glyph) int { return g.ClusterIndex }

	flush := func(end int) {
		if cur.start < end {
			cur.end = end
			words = append(words, cur)
		}
		cur = word{start: end}
		pen = 0
	}

	for i, g := range out.Glyphs {
		r := runeOfGlyph(g)
		adv := fromFixed(g.XAdvance) + fs.LetterSpacingPx
		if r < len(runes) && runes[r] == ' ' {
			adv += fs.WordSpacingPx
		}
		cur.glyphs = append(cur.glyphs, PositionedGlyph{
			Font:    face.handle,
			GlyphID: uint32(g.GlyphID),
			X:       pen + fromFixed(g.XOffset),
			Y:       -fromFixed(g.YOffset),
			Advance: adv,
		})
		pen += adv
		cur.width = pen

		isBreak := r < len(runes) && (runes[r] == ' ' || runes[r] == '\n' || runes[r] == '\t')
		last := i == len(out.Glyphs)-1
		if isBreak {
			flush(r + 1)
		} else if last {
			flush(len(runes))
		}
	}

	lineHeight := fs.LineHeightPx
	var lines []Line
	var lineStart int
	var lineWidth float32
	var lineGlyphs []PositionedGlyph
	var linePen float32

	pushLine := func(end int) {
		lines = append(lines, Line{Start: lineStart, End: end, Width: lineWidth, Height: lineHeight, Glyphs: lineGlyphs})
		lineStart = end
		lineWidth = 0
		lineGlyphs = nil
		linePen = 0
	}

	for _, w := range words {
		if maxWidth != nil && lineWidth > 0 && linePen+w.width > *maxWidth {
			pushLine(w.start)
		}
		for _, g := range w.glyphs {
			g.X += linePen
			lineGlyphs = append(lineGlyphs, g)
		}
		linePen += w.width
		lineWidth = linePen
	}
	if lineGlyphs != nil || len(lines) == 0 {
		pushLine(len(runes))
	}

	if fs.LineClamp > 0 && len(lines) > fs.LineClamp {
		lines = lines[:fs.LineClamp]
	}

	return LaidOutLayout{lines: lines}, nil
}

func applyTextTransform(s string, t style.TextTransform) string {
	switch t {
	case style.TextTransformUppercase:
		return toUpper(s)
	case style.TextTransformLowercase:
		return toLower(s)
	case style.TextTransformCapitalize:
		return capitalizeWords(s)
	default:
		return s
	}
}
