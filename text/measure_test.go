package text

import (
	"errors"
	"testing"

	"github.com/xiaoxigua1/takumi-go/style"
)

// fakeFontService lets these tests construct exact LaidOutLayout values
// (via the unexported lines field, available since this file lives in
// package text) without needing a real loaded font.
type fakeFontService struct {
	layout   LaidOutLayout
	err      error
	calls    []string
	maxWidth *float32
}

func (f *fakeFontService) LoadFont(data []byte, info *FontInfo) error { return nil }

func (f *fakeFontService) LayoutText(content string, fs style.FontStyle, maxWidth *float32) (LaidOutLayout, error) {
	f.calls = append(f.calls, content)
	f.maxWidth = maxWidth
	return f.layout, f.err
}

func (f *fakeFontService) ScaleGlyph(font FontHandle, sizePx float32, variations map[string]float32, glyphID uint32) GlyphImage {
	return GlyphImage{}
}

func TestMeasureEmptyContentIsZero(t *testing.T) {
	svc := &fakeFontService{}
	w, h, laid, err := Measure(svc, "   ", style.FontStyle{}, nil, nil, nil, nil)
	if err != nil || w != 0 || h != 0 {
		t.Fatalf("got (%v,%v,%v,%v), want zero measurement with no error", w, h, laid, err)
	}
	if len(svc.calls) != 0 {
		t.Fatal("expected whitespace-only content to skip shaping entirely")
	}
}

func TestMeasureSumsLineHeightsAndTakesMaxWidth(t *testing.T) {
	svc := &fakeFontService{
		layout: LaidOutLayout{lines: []Line{
			{Width: 40, Height: 10},
			{Width: 70, Height: 12},
		}},
	}
	w, h, laid, err := Measure(svc, "hello world", style.FontStyle{}, nil, nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != 70 {
		t.Fatalf("width = %v, want the widest line (70)", w)
	}
	if h != 22 {
		t.Fatalf("height = %v, want summed line heights (22)", h)
	}
	if laid.LineCount() != 2 {
		t.Fatalf("LineCount() = %d, want 2", laid.LineCount())
	}
}

func TestMeasureKnownWidthOverridesMeasuredWidth(t *testing.T) {
	svc := &fakeFontService{
		layout: LaidOutLayout{lines: []Line{{Width: 40, Height: 10}}},
	}
	known := float32(200)
	w, _, _, err := Measure(svc, "hi", style.FontStyle{}, &known, nil, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != 200 {
		t.Fatalf("width = %v, want the caller-supplied known width (200)", w)
	}
}

func TestMeasurePrefersKnownWidthOverAvailableWidthAsMaxWidth(t *testing.T) {
	svc := &fakeFontService{}
	known := float32(50)
	available := float32(500)
	if _, _, _, err := Measure(svc, "hi", style.FontStyle{}, &known, &available, nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.maxWidth == nil || *svc.maxWidth != 50 {
		t.Fatalf("LayoutText maxWidth = %v, want the known width (50)", svc.maxWidth)
	}
}

func TestMeasurePropagatesShapingError(t *testing.T) {
	wantErr := errors.New("boom")
	svc := &fakeFontService{err: wantErr}
	_, _, _, err := Measure(svc, "hi", style.FontStyle{}, nil, nil, nil, nil)
	if !errors.Is(err, wantErr) {
		t.Fatalf("got %v, want %v", err, wantErr)
	}
}

func TestMeasureDropsLinesPastAHeightBudget(t *testing.T) {
	svc := &fakeFontService{
		layout: LaidOutLayout{lines: []Line{
			{Width: 10, Height: 10},
			{Width: 10, Height: 10},
			{Width: 10, Height: 10},
		}},
	}
	knownHeight := float32(25) // fits 2 lines (20px) but not a 3rd (30px)
	w, h, laid, err := Measure(svc, "a b c", style.FontStyle{}, nil, nil, &knownHeight, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != 10 {
		t.Fatalf("width = %v, want 10", w)
	}
	if h != 20 {
		t.Fatalf("height = %v, want the 2 lines that fit the budget (20)", h)
	}
	if laid.LineCount() != 2 {
		t.Fatalf("LineCount() = %d, want 2", laid.LineCount())
	}
}

func TestMeasureHeightBudgetAlwaysKeepsFirstLine(t *testing.T) {
	svc := &fakeFontService{
		layout: LaidOutLayout{lines: []Line{{Width: 10, Height: 50}}},
	}
	tiny := float32(5)
	_, h, laid, err := Measure(svc, "a", style.FontStyle{}, nil, nil, &tiny, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if laid.LineCount() != 1 || h != 50 {
		t.Fatalf("got (lineCount=%d, h=%v), want the single oversized line kept rather than dropped to zero lines", laid.LineCount(), h)
	}
}

func TestEllipsizeReturnsOriginalWhenItFits(t *testing.T) {
	svc := &fakeFontService{layout: LaidOutLayout{lines: []Line{{Width: 10}}}}
	got, _, err := Ellipsize(svc, "hi", style.FontStyle{}, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hi…" {
		t.Fatalf("got %q, want the full text with an ellipsis appended", got)
	}
}

func TestEllipsizeTruncatesUntilItFits(t *testing.T) {
	calls := 0
	svc := &fakeWidthFontService{widthOf: func(s string) float32 {
		calls++
		return float32(len([]rune(s))) * 10
	}}
	got, _, err := Ellipsize(svc, "hello world", style.FontStyle{}, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) >= len("hello world…") {
		t.Fatalf("got %q, expected truncation to make it shorter than the original+ellipsis", got)
	}
	if calls == 0 {
		t.Fatal("expected at least one retry call")
	}
}

// fakeWidthFontService derives each LayoutText call's single line width
// from the candidate text itself, to exercise Ellipsize's retry loop
// converging on a real width function instead of a fixed canned value.
type fakeWidthFontService struct {
	widthOf func(string) float32
}

func (f *fakeWidthFontService) LoadFont(data []byte, info *FontInfo) error { return nil }

func (f *fakeWidthFontService) LayoutText(content string, fs style.FontStyle, maxWidth *float32) (LaidOutLayout, error) {
	return LaidOutLayout{lines: []Line{{Width: f.widthOf(content)}}}, nil
}

func (f *fakeWidthFontService) ScaleGlyph(font FontHandle, sizePx float32, variations map[string]float32, glyphID uint32) GlyphImage {
	return GlyphImage{}
}
