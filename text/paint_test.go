package text

import (
	"image"
	"testing"

	"github.com/xiaoxigua1/takumi-go/canvas"
	"github.com/xiaoxigua1/takumi-go/core"
	"github.com/xiaoxigua1/takumi-go/style"
)

// outlineGlyphFontService always hands back a single outline glyph with
// a fully-covered mask, exercising Paint's mask_image sampling branch.
type outlineGlyphFontService struct{}

func (outlineGlyphFontService) LoadFont(data []byte, info *FontInfo) error { return nil }
func (outlineGlyphFontService) LayoutText(content string, fs style.FontStyle, maxWidth *float32) (LaidOutLayout, error) {
	return LaidOutLayout{}, nil
}
func (outlineGlyphFontService) ScaleGlyph(font FontHandle, sizePx float32, variations map[string]float32, glyphID uint32) GlyphImage {
	mask := make([]byte, 2*2)
	for i := range mask {
		mask[i] = 255
	}
	return GlyphImage{Kind: GlyphOutline, Mask: mask, Width: 2, Height: 2}
}

// colorGlyphFontService always hands back a single color bitmap glyph,
// exercising Paint's non-outline branch (emoji-style glyphs).
type colorGlyphFontService struct{}

func (colorGlyphFontService) LoadFont(data []byte, info *FontInfo) error { return nil }
func (colorGlyphFontService) LayoutText(content string, fs style.FontStyle, maxWidth *float32) (LaidOutLayout, error) {
	return LaidOutLayout{}, nil
}
func (colorGlyphFontService) ScaleGlyph(font FontHandle, sizePx float32, variations map[string]float32, glyphID uint32) GlyphImage {
	return GlyphImage{
		Kind:   GlyphColorBitmap,
		Bitmap: make([]byte, 4*4*4),
		Width:  4, Height: 4,
	}
}

func drainPaintCommands(ch chan canvas.DrawCommand) []canvas.DrawCommand {
	close(ch)
	var out []canvas.DrawCommand
	for c := range ch {
		out = append(out, c)
	}
	return out
}

func TestPaintOverlaysColorBitmapGlyphs(t *testing.T) {
	laid := &LaidOutLayout{lines: []Line{{Height: 10, Glyphs: []PositionedGlyph{{GlyphID: 1}}}}}
	ch := make(chan canvas.DrawCommand, 4)
	Paint(core.RenderContext{}, canvas.NewCanvas(ch), colorGlyphFontService{}, laid, style.FontStyle{Color: style.Color{A: 255}}, 0, 0, nil)

	cmds := drainPaintCommands(ch)
	if len(cmds) != 1 || cmds[0].Kind != canvas.CommandOverlayImage {
		t.Fatalf("expected a single OverlayImage command for a color bitmap glyph, got %+v", cmds)
	}
}

func TestPaintSamplesMaskImageForOutlineGlyphs(t *testing.T) {
	laid := &LaidOutLayout{lines: []Line{{Height: 10, Glyphs: []PositionedGlyph{{GlyphID: 1}}}}}
	ch := make(chan canvas.DrawCommand, 4)
	maskImage := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for i := range maskImage.Pix {
		maskImage.Pix[i] = 0x40
	}
	Paint(core.RenderContext{}, canvas.NewCanvas(ch), outlineGlyphFontService{}, laid, style.FontStyle{Color: style.Color{A: 255}}, 0, 0, maskImage)

	cmds := drainPaintCommands(ch)
	if len(cmds) != 1 || cmds[0].Kind != canvas.CommandDrawMask {
		t.Fatalf("expected a single DrawMask command for an outline glyph, got %+v", cmds)
	}
	if cmds[0].Image == nil {
		t.Fatal("expected the DrawMask command to carry a cropped mask_image source, got nil")
	}
}

func TestPaintSkipsGlyphsWithNoRepresentation(t *testing.T) {
	laid := &LaidOutLayout{lines: []Line{{Height: 10, Glyphs: []PositionedGlyph{{GlyphID: 1}}}}}
	ch := make(chan canvas.DrawCommand, 4)
	svc := &fakeFontService{} // ScaleGlyph returns the zero GlyphImage (GlyphNone)
	Paint(core.RenderContext{}, canvas.NewCanvas(ch), svc, laid, style.FontStyle{Color: style.Color{A: 255}}, 0, 0, nil)

	if cmds := drainPaintCommands(ch); len(cmds) != 0 {
		t.Fatalf("expected no draws for a glyph with neither mask nor bitmap, got %+v", cmds)
	}
}
