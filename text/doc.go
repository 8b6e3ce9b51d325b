// Package text provides font loading, measurement, and codepoint
// management for mvn.
//
// The font pipeline separates heavyweight and lightweight objects:
//
//   - FontSource: shared font resource (parses TTF/OTF bytes once)
//   - Font: a FontSource at a specific pixel size
//   - FontParser: pluggable parsing backend (default: golang.org/x/image)
//
// # Example usage
//
//	// Load the font once and share it across the application.
//	source, err := text.LoadFontSource("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Derive fonts at the sizes you need (lightweight).
//	body := source.Font(16)
//	title := source.Font(32)
//
//	w, h := title.Measure("Hello, MVN!")
//
// # Pluggable parser backend
//
// Font parsing is abstracted through the FontParser interface. The
// default "ximage" backend uses golang.org/x/image/font/opentype and
// sums nominal glyph advances. The "gotext" backend shapes text with
// go-text/typesetting's HarfBuzz port, so its measurements include
// kerning and ligatures:
//
//	source, err := text.NewFontSource(data, text.WithParser("gotext"))
//
// Custom backends can be registered with RegisterParser.
package text
