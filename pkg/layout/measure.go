package layout

import (
	"math"

	"github.com/kiln-ui/kiln/pkg/tree"
)

// Fonts measures the pixel box a run of text occupies under a font face,
// optionally wrapped to maxWidth. The layout driver borrows a Fonts
// implementation for the duration of one layout call only (spec.md §5);
// it never owns or caches one.
type Fonts interface {
	Measure(text string, face tree.Font, maxWidth float64, hasMaxWidth bool) (width, height float64)
}

// FallbackFonts approximates glyph metrics without a real text shaper:
// 0.75 of the font size per character, naive character-count wrapping.
// Grounded directly on original_source/src/fonts.rs's DummyFonts, which
// the original itself documents as "incorrect... approximately
// calculates the text size" — kept here for hosts that haven't wired a
// real Fonts implementation yet.
type FallbackFonts struct{}

func (FallbackFonts) Measure(text string, face tree.Font, maxWidth float64, hasMaxWidth bool) (float64, float64) {
	width := float64(len([]rune(text))) * face.Size * 0.75
	if !hasMaxWidth {
		return width, face.Size
	}
	if maxWidth == 0 {
		return 0, 0
	}
	lines := 1 + math.Floor(width/maxWidth)
	return maxWidth, lines * face.Size
}
