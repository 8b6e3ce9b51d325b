package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// gotextParser implements FontParser using go-text/typesetting. Unlike
// the ximage backend it measures through HarfBuzz shaping, so advances
// include kerning pairs (AV, To), ligatures (fi, ffi), and contextual
// alternates.
type gotextParser struct{}

// Parse implements FontParser.Parse.
func (p *gotextParser) Parse(data []byte) (ParsedFont, error) {
	// ParseTTF returns a *Face which embeds the thread-safe *Font.
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return newGotextParsedFont(face.Font), nil
}

// gotextParsedFont implements ParsedFont by shaping text runs with
// go-text/typesetting's HarfBuzz port.
type gotextParsedFont struct {
	// font is read-only and safe for concurrent use, unlike font.Face.
	font *font.Font

	// shaperPool pools HarfbuzzShaper instances. HarfbuzzShaper has
	// internal mutable state (buffer) and is NOT safe for concurrent
	// use, but reusing across sequential calls is efficient.
	shaperPool sync.Pool
}

func newGotextParsedFont(f *font.Font) *gotextParsedFont {
	return &gotextParsedFont{
		font: f,
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// coverageSize is the size used for shaping calls where only glyph
// coverage matters, not geometry.
const coverageSize = 16.0

// Name implements ParsedFont.Name. The shaping backend does not expose
// name tables.
func (f *gotextParsedFont) Name() string {
	return ""
}

// FullName implements ParsedFont.FullName. The shaping backend does not
// expose name tables.
func (f *gotextParsedFont) FullName() string {
	return ""
}

// HasGlyph implements ParsedFont.HasGlyph. A rune outside the font's
// coverage shapes to glyph 0 (.notdef).
func (f *gotextParsedFont) HasGlyph(r rune) bool {
	out := f.shape(string(r), coverageSize)
	if len(out.Glyphs) == 0 {
		return false
	}
	return out.Glyphs[0].GlyphID != 0
}

// Advance implements ParsedFont.Advance by summing shaped glyph
// advances, so kerning and ligature substitutions are reflected.
func (f *gotextParsedFont) Advance(s string, size float64) float64 {
	if s == "" {
		return 0
	}
	out := f.shape(s, size)
	total := 0.0
	for _, g := range out.Glyphs {
		total += fixedToFloat(g.Advance)
	}
	return total
}

// Metrics implements ParsedFont.Metrics using the shaped line bounds.
func (f *gotextParsedFont) Metrics(size float64) FontMetrics {
	out := f.shape(" ", size)
	lb := out.LineBounds

	// LineBounds follows the hhea convention where descent is negative.
	descent := fixedToFloat(lb.Descent)
	if descent < 0 {
		descent = -descent
	}
	return FontMetrics{
		Ascent:  fixedToFloat(lb.Ascent),
		Descent: descent,
		LineGap: fixedToFloat(lb.Gap),
	}
}

// shape runs HarfBuzz shaping over s at the given pixel size.
func (f *gotextParsedFont) shape(s string, size float64) shaping.Output {
	runes := []rune(s)

	// font.Face is NOT safe for concurrent use, so each call gets its
	// own instance. font.NewFace is cheap; it wraps the thread-safe
	// *Font and initializes glyph caches.
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(f.font),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	shaper := f.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := shaper.Shape(input)
	f.shaperPool.Put(shaper)
	return out
}

// detectScript inspects the runes and returns the script of the first
// non-space character. This is a simple heuristic; for mixed-script
// text, callers should split runs by script before measuring.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
