package text

import (
	"strings"

	"github.com/xiaoxigua1/takumi-go/style"
)

// Measure computes the content size of a text run given whichever
// dimension layout already knows and the space available, spec.md
// §4.8: trim-empty text measures to zero, otherwise shape/wrap against
// the known width (or MaxContent) and sum wrapped line heights. The
// font service's own line_clamp handling already caps the line count;
// when a height budget is also known (knownHeight, else a definite
// availableHeight), lines beyond what fits that budget are dropped too,
// combining line_clamp and an absolute height into spec.md §4.8 step
// 3's `both(h, n)` constraint form.
func Measure(svc FontService, content string, fs style.FontStyle, knownWidth, availableWidth, knownHeight, availableHeight *float32) (width, height float32, layout LaidOutLayout, err error) {
	if strings.TrimSpace(content) == "" {
		return 0, 0, LaidOutLayout{}, nil
	}

	maxWidth := knownWidth
	if maxWidth == nil {
		maxWidth = availableWidth
	}

	laid, err := svc.LayoutText(content, fs, maxWidth)
	if err != nil {
		return 0, 0, LaidOutLayout{}, err
	}

	maxHeight := knownHeight
	if maxHeight == nil {
		maxHeight = availableHeight
	}
	if maxHeight != nil {
		var breakWidth float32
		if maxWidth != nil {
			breakWidth = *maxWidth
		}
		laid = breakToHeight(laid, breakWidth, *maxHeight)
	}

	var maxLineWidth float32
	var totalHeight float32
	for _, line := range laid.Lines() {
		if line.Width > maxLineWidth {
			maxLineWidth = line.Width
		}
		totalHeight += line.Height
	}

	if knownWidth != nil {
		maxLineWidth = *knownWidth
	}
	return maxLineWidth, totalHeight, laid, nil
}

// breakToHeight consumes laid's lines via BreakNext, accepting each as
// long as the running total still fits maxHeight and reverting once one
// doesn't, spec.md §4.8 step 6's "break next line if it fits the
// height, else revert" contract. The first line is always kept even if
// it alone exceeds maxHeight, matching line_clamp's own "never yield
// zero lines" behavior.
func breakToHeight(laid LaidOutLayout, maxWidth, maxHeight float32) LaidOutLayout {
	var accepted []Line
	var total float32
	for {
		line, ok := laid.BreakNext(maxWidth)
		if !ok {
			break
		}
		if len(accepted) > 0 && total+line.Height > maxHeight {
			laid.Revert()
			break
		}
		accepted = append(accepted, line)
		total += line.Height
	}
	return LaidOutLayout{lines: accepted}
}

// Ellipsize re-lays-out a single line at a narrower width with an
// ellipsis appended, truncating characters one at a time until the
// result (including the ellipsis glyph) fits maxWidth — the
// truncate-and-retry strategy spec.md §4.8 calls for when
// text-overflow is ellipsis and a line's natural width exceeds its box.
// Each retry re-shapes the shortened candidate from scratch (unlike
// breakToHeight's single-layout scan, a different candidate string
// needs a different shape, not just a different break point).
func Ellipsize(svc FontService, line string, fs style.FontStyle, maxWidth float32) (string, LaidOutLayout, error) {
	const ellipsis = "…"
	runes := []rune(line)
	for n := len(runes); n >= 0; n-- {
		candidate := strings.TrimRight(string(runes[:n]), " ") + ellipsis
		laid, err := svc.LayoutText(candidate, fs, nil)
		if err != nil {
			return "", LaidOutLayout{}, err
		}
		lines := laid.Lines()
		if len(lines) == 0 || lines[0].Width <= maxWidth {
			return candidate, laid, nil
		}
	}
	return ellipsis, LaidOutLayout{}, nil
}
