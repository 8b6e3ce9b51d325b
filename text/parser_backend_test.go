package text

import (
	"os"
	"path/filepath"
	"testing"
)

// testFontPath returns the path to a real TTF font, skipping the test
// when none is installed. TTC font collections are not supported by
// either backend, so macOS system fonts need TTF alternatives.
func testFontPath(t *testing.T) string {
	t.Helper()

	candidates := []string{
		// Windows
		"C:\\Windows\\Fonts\\arial.ttf",
		"C:\\Windows\\Fonts\\calibri.ttf",
		// macOS - Supplemental fonts are TTF
		"/Library/Fonts/Arial.ttf",
		"/System/Library/Fonts/Supplemental/Arial.ttf",
		"/System/Library/Fonts/Supplemental/Courier New.ttf",
		"/System/Library/Fonts/Supplemental/Times New Roman.ttf",
		"/System/Library/Fonts/Supplemental/Verdana.ttf",
		"/System/Library/Fonts/Monaco.ttf",
		// Linux
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/TTF/DejaVuSans.ttf",
		"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	testdataFont := filepath.Join("testdata", "test.ttf")
	if _, err := os.Stat(testdataFont); err == nil {
		return testdataFont
	}

	t.Skip("No TTF font available (TTC collections not supported)")
	return ""
}

func TestXimageBackend(t *testing.T) {
	source, err := LoadFontSource(testFontPath(t))
	if err != nil {
		t.Fatalf("LoadFontSource() error: %v", err)
	}

	if source.Name() == "" {
		t.Error("Name() is empty for a real font")
	}

	f := source.Font(16)
	if !f.HasGlyph('A') {
		t.Error("HasGlyph('A') = false for a latin font")
	}
	if f.HasGlyph('\U0010FFF0') {
		t.Error("HasGlyph(plane-16 private use) = true")
	}

	if adv := f.Advance("AB"); adv <= 0 {
		t.Errorf("Advance(\"AB\") = %v, want > 0", adv)
	}
	if one, two := f.Advance("A"), f.Advance("AA"); two <= one {
		t.Errorf("Advance(\"AA\") = %v, not larger than Advance(\"A\") = %v", two, one)
	}

	m := f.Metrics()
	if m.Ascent <= 0 {
		t.Errorf("Metrics().Ascent = %v, want > 0", m.Ascent)
	}
	if m.Descent <= 0 {
		t.Errorf("Metrics().Descent = %v, want > 0", m.Descent)
	}
	if m.Height() < m.Ascent+m.Descent {
		t.Errorf("Height() = %v, smaller than ascent+descent", m.Height())
	}
}

func TestGotextBackend(t *testing.T) {
	source, err := LoadFontSource(testFontPath(t), WithParser("gotext"))
	if err != nil {
		t.Fatalf("LoadFontSource() error: %v", err)
	}

	f := source.Font(16)
	if !f.HasGlyph('A') {
		t.Error("HasGlyph('A') = false for a latin font")
	}
	if f.HasGlyph('\U0010FFF0') {
		t.Error("HasGlyph(plane-16 private use) = true")
	}

	if adv := f.Advance("AB"); adv <= 0 {
		t.Errorf("Advance(\"AB\") = %v, want > 0", adv)
	}

	m := f.Metrics()
	if m.Ascent <= 0 {
		t.Errorf("Metrics().Ascent = %v, want > 0", m.Ascent)
	}
	if m.Descent <= 0 {
		t.Errorf("Metrics().Descent = %v, want > 0", m.Descent)
	}
}

func TestBackendMeasureMultiline(t *testing.T) {
	source, err := LoadFontSource(testFontPath(t))
	if err != nil {
		t.Fatalf("LoadFontSource() error: %v", err)
	}

	f := source.Font(16)
	w1, h1 := f.Measure("Hello")
	w2, h2 := f.Measure("Hello\nHello")
	if w1 != w2 {
		t.Errorf("two identical lines widened the measure: %v vs %v", w1, w2)
	}
	if h2 <= h1 {
		t.Errorf("second line did not grow the height: %v vs %v", h1, h2)
	}
}

func BenchmarkAdvanceXimage(b *testing.B) {
	path := benchFontPath(b)
	source, err := LoadFontSource(path)
	if err != nil {
		b.Fatalf("LoadFontSource() error: %v", err)
	}
	f := source.Font(16)

	b.ReportAllocs()
	for b.Loop() {
		f.Advance("The quick brown fox jumps over the lazy dog")
	}
}

func BenchmarkAdvanceGotext(b *testing.B) {
	path := benchFontPath(b)
	source, err := LoadFontSource(path, WithParser("gotext"))
	if err != nil {
		b.Fatalf("LoadFontSource() error: %v", err)
	}
	f := source.Font(16)

	b.ReportAllocs()
	for b.Loop() {
		f.Advance("The quick brown fox jumps over the lazy dog")
	}
}

// benchFontPath mirrors testFontPath for benchmarks.
func benchFontPath(b *testing.B) string {
	b.Helper()
	candidates := []string{
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/TTF/DejaVuSans.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	b.Skip("No TTF font available")
	return ""
}
