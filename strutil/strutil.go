// Package strutil provides string helpers that interoperate with the
// toolkit's list container.
//
// Only the helpers with behavior beyond the standard strings package live
// here: splitting into a list, joining a list, and rune-count padding.
package strutil

import (
	"strings"

	"github.com/larsonjj/mvn/list"
)

// Split slices s around each occurrence of sep and returns the parts as
// a new list. An empty sep or an empty s yields a one-element list
// containing s verbatim. A separator at the end of s produces a trailing
// empty part, so Split("a,", ",") yields ["a", ""].
func Split(s, sep string) *list.List[string] {
	out := list.New[string](0)
	if sep == "" || s == "" {
		out.Push(s)
		return out
	}
	out.PushBatch(strings.Split(s, sep))
	return out
}

// Join concatenates the elements of parts with sep between them.
// A nil or empty list yields the empty string.
func Join(parts *list.List[string], sep string) string {
	if parts.Len() == 0 {
		return ""
	}

	var b strings.Builder
	first := true
	for s := range parts.Values() {
		if !first {
			b.WriteString(sep)
		}
		b.WriteString(s)
		first = false
	}
	return b.String()
}

// PadStart prepends the pad rune until s reaches targetLen runes.
// A string already at or beyond the target is returned unchanged.
func PadStart(s string, targetLen int, pad rune) string {
	n := targetLen - len([]rune(s))
	if n <= 0 {
		return s
	}
	return strings.Repeat(string(pad), n) + s
}

// PadEnd appends the pad rune until s reaches targetLen runes.
// A string already at or beyond the target is returned unchanged.
func PadEnd(s string, targetLen int, pad rune) string {
	n := targetLen - len([]rune(s))
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(string(pad), n)
}
