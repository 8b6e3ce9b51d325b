package text

import (
	"strings"

	"github.com/larsonjj/mvn"
	"github.com/larsonjj/mvn/list"
)

// Font is a FontSource at a specific pixel size. Fonts are lightweight;
// create one per size you need and keep the FontSource shared.
//
// A Font is not safe for concurrent use.
type Font struct {
	source *FontSource
	size   float64

	// lineSpacing overrides the vertical advance between lines when
	// positive. Zero means metrics-derived.
	lineSpacing float64
}

// Source returns the FontSource this font was created from.
func (f *Font) Source() *FontSource {
	return f.source
}

// Size returns the pixel size of the font.
func (f *Font) Size() float64 {
	return f.size
}

// Name returns the font family name.
func (f *Font) Name() string {
	return f.source.Name()
}

// SetLineSpacing sets the vertical advance in pixels between lines for
// Measure. Zero or negative restores the metrics-derived default.
func (f *Font) SetLineSpacing(px float64) {
	f.lineSpacing = px
}

// LineSpacing returns the configured line spacing, or 0 when the
// metrics-derived default is in effect.
func (f *Font) LineSpacing() float64 {
	if f.lineSpacing <= 0 {
		return 0
	}
	return f.lineSpacing
}

// HasGlyph reports whether the font covers the given rune.
func (f *Font) HasGlyph(r rune) bool {
	return f.source.Parsed().HasGlyph(r)
}

// Advance returns the total horizontal advance of s in pixels. Newlines
// are not treated specially; use Measure for multi-line text.
func (f *Font) Advance(s string) float64 {
	return f.source.Parsed().Advance(s, f.size)
}

// Metrics returns the font metrics at this font's size.
func (f *Font) Metrics() FontMetrics {
	return f.source.Parsed().Metrics(f.size)
}

// Measure returns the width and height in pixels of s. The width is the
// widest line's advance. Each line after the first advances vertically
// by the configured line spacing (the metrics line height when unset);
// the final line contributes a full line height. An empty string
// measures zero.
func (f *Font) Measure(s string) (w, h float64) {
	if s == "" {
		return 0, 0
	}

	lineHeight := f.Metrics().Height()
	advance := lineHeight
	if f.lineSpacing > 0 {
		advance = f.lineSpacing
	}

	lines := strings.Split(s, "\n")
	for _, line := range lines {
		if lw := f.Advance(line); lw > w {
			w = lw
		}
	}
	h = float64(len(lines)-1)*advance + lineHeight
	return w, h
}

// Preload verifies glyph coverage for every codepoint in cps and
// returns how many the font covers. Each miss is logged as a warning.
func (f *Font) Preload(cps *list.List[rune]) int {
	if cps == nil {
		return 0
	}
	found := 0
	for r := range cps.Values() {
		if !f.HasGlyph(r) {
			mvn.Logger().Warn("codepoint not available in font",
				"codepoint", r, "font", f.Name())
			continue
		}
		found++
	}
	return found
}
