package text

import (
	"errors"
	"os"
	"strings"
	"testing"
)

// fakeParser builds deterministic fonts for tests: the input data bytes
// define the coverage set, every covered rune advances by half the
// size, and metrics are fixed fractions of the size.
type fakeParser struct{}

func (fakeParser) Parse(data []byte) (ParsedFont, error) {
	coverage := make(map[rune]bool)
	for _, r := range string(data) {
		coverage[r] = true
	}
	return &fakeParsedFont{family: "Fake Sans", coverage: coverage}, nil
}

type fakeParsedFont struct {
	family   string
	coverage map[rune]bool
}

func (f *fakeParsedFont) Name() string     { return f.family }
func (f *fakeParsedFont) FullName() string { return f.family + " Regular" }

func (f *fakeParsedFont) HasGlyph(r rune) bool { return f.coverage[r] }

func (f *fakeParsedFont) Advance(s string, size float64) float64 {
	n := 0
	for range s {
		n++
	}
	return float64(n) * 0.5 * size
}

func (f *fakeParsedFont) Metrics(size float64) FontMetrics {
	return FontMetrics{
		Ascent:  0.8 * size,
		Descent: 0.2 * size,
		LineGap: 0.1 * size,
	}
}

// namelessParser produces fonts that report no name at all.
type namelessParser struct{}

func (namelessParser) Parse(data []byte) (ParsedFont, error) {
	return &namelessFont{}, nil
}

type namelessFont struct{ fakeParsedFont }

func (f *namelessFont) Name() string     { return "" }
func (f *namelessFont) FullName() string { return "" }

func init() {
	RegisterParser("fake", fakeParser{})
	RegisterParser("nameless", namelessParser{})
}

// fakeSource builds a FontSource whose coverage is the runes of chars.
func fakeSource(t *testing.T, chars string) *FontSource {
	t.Helper()
	s, err := NewFontSource([]byte(chars), WithParser("fake"))
	if err != nil {
		t.Fatalf("NewFontSource() error: %v", err)
	}
	return s
}

func TestNewFontSourceEmptyData(t *testing.T) {
	if _, err := NewFontSource(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewFontSource([]byte{}); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFontSource(empty) error = %v, want ErrEmptyFontData", err)
	}
}

func TestNewFontSourceInvalidData(t *testing.T) {
	if _, err := NewFontSource([]byte("definitely not a font")); err == nil {
		t.Error("NewFontSource(garbage) succeeded, want parse error")
	}
}

func TestNewFontSourceCopiesData(t *testing.T) {
	data := []byte("abc")
	s := fakeSourceFromData(t, data)
	data[0] = 'z'
	if s.data[0] != 'a' {
		t.Error("FontSource shares the caller's data slice")
	}
}

func fakeSourceFromData(t *testing.T, data []byte) *FontSource {
	t.Helper()
	s, err := NewFontSource(data, WithParser("fake"))
	if err != nil {
		t.Fatalf("NewFontSource() error: %v", err)
	}
	return s
}

func TestFontSourceName(t *testing.T) {
	s := fakeSource(t, "abc")
	if got := s.Name(); got != "Fake Sans" {
		t.Errorf("Name() = %q, want %q", got, "Fake Sans")
	}
}

func TestFontSourceNameFallback(t *testing.T) {
	s, err := NewFontSource([]byte("x"), WithParser("nameless"))
	if err != nil {
		t.Fatalf("NewFontSource() error: %v", err)
	}
	if got := s.Name(); got != "Unknown Font" {
		t.Errorf("Name() = %q, want %q", got, "Unknown Font")
	}
}

func TestUnknownParserFallsBackToDefault(t *testing.T) {
	if got := getParser("no-such-backend"); got != parserRegistry[defaultParserName] {
		t.Error("getParser(unknown) did not return the default parser")
	}
}

func TestLoadFontSourceMissingFile(t *testing.T) {
	_, err := LoadFontSource("/no/such/dir/font.ttf")
	if err == nil {
		t.Fatal("LoadFontSource(missing) succeeded, want error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want wrapped os.ErrNotExist", err)
	}
	if !strings.Contains(err.Error(), "failed to read font file") {
		t.Errorf("error = %v, want read-failure context", err)
	}
}

func TestFontFromNilSourcePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Font() on a nil FontSource did not panic")
		}
	}()
	var s *FontSource
	s.Font(12)
}

func TestParsedAccessor(t *testing.T) {
	s := fakeSource(t, "a")
	if s.Parsed() == nil {
		t.Error("Parsed() = nil, want the backend font")
	}
}
