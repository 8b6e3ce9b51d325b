package text

import (
	"golang.org/x/text/unicode/norm"

	"github.com/larsonjj/mvn/list"
)

// Codepoints returns the distinct codepoints of s in first-seen order,
// ready to hand to Font.Preload. The string is NFC-normalized first, so
// decomposed sequences collapse to their composed forms before
// deduplication.
func Codepoints(s string) *list.List[rune] {
	out := list.New[rune](0)
	if s == "" {
		return out
	}

	seen := make(map[rune]bool)
	for _, r := range norm.NFC.String(s) {
		if seen[r] {
			continue
		}
		seen[r] = true
		out.Push(r)
	}
	return out
}
