package text

import (
	"fmt"
	"os"

	"github.com/larsonjj/mvn"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Fonts at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// A FontSource is immutable after creation and safe for concurrent
// reads.
type FontSource struct {
	data   []byte
	parsed ParsedFont

	name string

	config sourceConfig
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parser := getParser(config.parserName)
	parsed, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &FontSource{
		data:   dataCopy,
		parsed: parsed,
		config: config,
	}
	s.name = extractFontName(parsed)

	return s, nil
}

// LoadFontSource loads a FontSource from a font file path.
func LoadFontSource(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	s, err := NewFontSource(data, opts...)
	if err != nil {
		return nil, err
	}
	mvn.Logger().Info("font loaded", "name", s.Name(), "path", path)
	return s, nil
}

// Font creates a Font at the specified pixel size.
// Multiple fonts can be created from the same FontSource.
//
// Panics if s is nil (e.g. when a LoadFontSource error was ignored).
func (s *FontSource) Font(size float64) *Font {
	if s == nil {
		panic("text: FontSource is nil; check the error from LoadFontSource")
	}
	return &Font{
		source: s,
		size:   size,
	}
}

// Name returns the font family name, or "Unknown Font" when the backend
// does not report one.
func (s *FontSource) Name() string {
	return s.name
}

// Parsed returns the parsed font for advanced operations.
func (s *FontSource) Parsed() ParsedFont {
	return s.parsed
}

// extractFontName extracts the font family name from the parsed font.
func extractFontName(parsed ParsedFont) string {
	if name := parsed.Name(); name != "" {
		return name
	}
	if fullName := parsed.FullName(); fullName != "" {
		return fullName
	}
	return "Unknown Font"
}
