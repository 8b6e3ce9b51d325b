// Package mvn provides the shared foundation for the MVN 2D game toolkit.
//
// # Overview
//
// mvn is a small toolkit for 2D games written in pure Go. The heart of the
// module is a pair of generic containers used throughout the higher layers:
//
//   - [github.com/larsonjj/mvn/list]: a growable contiguous array with
//     explicit capacity control and amortized O(1) appends.
//   - [github.com/larsonjj/mvn/hmap]: a separate-chaining hash map keyed by
//     strings, with predictable growth behavior.
//
// Around the containers sit the utility layers a game loop needs:
//
//   - [github.com/larsonjj/mvn/text]: font parsing, codepoint collection,
//     and glyph coverage checks.
//   - [github.com/larsonjj/mvn/texture]: image decoding, pixel access, and
//     a keyed texture store.
//   - [github.com/larsonjj/mvn/strutil]: string splitting and padding.
//   - [github.com/larsonjj/mvn/random]: seeded values and unique sequences.
//   - [github.com/larsonjj/mvn/fileutil]: path and file metadata helpers.
//   - [github.com/larsonjj/mvn/clock]: frame pacing and delta timing.
//
// The root package carries the pieces every layer shares: the logger
// facade, the Color type with the standard palette, and integer/float
// geometry.
//
// # Quick Start
//
//	import (
//	    "github.com/larsonjj/mvn/hmap"
//	    "github.com/larsonjj/mvn/list"
//	)
//
//	scores := list.New[int](0)
//	scores.Push(120)
//	scores.Push(95)
//
//	players := hmap.New[string](0)
//	players.Set("p1", "Ayla")
//
// # Concurrency
//
// Containers are single-owner: no internal locking, no atomics. Concurrent
// access to one instance requires external synchronization. Pointers
// obtained from At or Ref are valid only until the next mutation of the
// owning container.
//
// # Logging
//
// The toolkit is silent by default. Call [SetLogger] with any slog.Logger
// to see diagnostics from the asset layers.
package mvn

import "fmt"

// Toolkit version.
const (
	VersionMajor = 0
	VersionMinor = 1
	VersionPatch = 0
)

// VersionString reports the toolkit version as "major.minor.patch".
func VersionString() string {
	return fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
}
