package strutil

import (
	"slices"
	"testing"

	"github.com/larsonjj/mvn/list"
)

func parts(l *list.List[string]) []string {
	out := make([]string, 0, l.Len())
	for s := range l.Values() {
		out = append(out, s)
	}
	return out
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		s    string
		sep  string
		want []string
	}{
		{"simple", "a,b,c", ",", []string{"a", "b", "c"}},
		{"adjacent separators", "a,b,,c", ",", []string{"a", "b", "", "c"}},
		{"trailing separator", "a,", ",", []string{"a", ""}},
		{"leading separator", ",a", ",", []string{"", "a"}},
		{"no separator present", "abc", ",", []string{"abc"}},
		{"multi-byte separator", "a::b::c", "::", []string{"a", "b", "c"}},
		{"empty separator", "abc", "", []string{"abc"}},
		{"empty string", "", ",", []string{""}},
		{"path segments", "assets/fonts/mono.ttf", "/", []string{"assets", "fonts", "mono.ttf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.s, tt.sep)
			if got == nil {
				t.Fatal("Split returned nil")
			}
			if !slices.Equal(parts(got), tt.want) {
				t.Errorf("Split(%q, %q) = %v, want %v", tt.s, tt.sep, parts(got), tt.want)
			}
		})
	}
}

func TestJoinInvertsSplit(t *testing.T) {
	const s = "one,two,three"
	if got := Join(Split(s, ","), ","); got != s {
		t.Errorf("Join(Split(%q)) = %q", s, got)
	}
}

func TestJoin(t *testing.T) {
	l := list.New[string](0)
	l.PushBatch([]string{"x", "y", "z"})

	if got := Join(l, "-"); got != "x-y-z" {
		t.Errorf("Join = %q, want %q", got, "x-y-z")
	}
	if got := Join(l, ""); got != "xyz" {
		t.Errorf("Join with empty sep = %q, want %q", got, "xyz")
	}
	if got := Join(list.New[string](0), ","); got != "" {
		t.Errorf("Join of empty list = %q, want empty", got)
	}
	if got := Join(nil, ","); got != "" {
		t.Errorf("Join of nil list = %q, want empty", got)
	}
}

func TestPadStart(t *testing.T) {
	tests := []struct {
		name      string
		s         string
		targetLen int
		pad       rune
		want      string
	}{
		{"score digits", "7", 3, '0', "007"},
		{"already long enough", "1234", 3, '0', "1234"},
		{"exact length", "abc", 3, ' ', "abc"},
		{"spaces", "hi", 5, ' ', "   hi"},
		{"rune counted", "héllo", 7, '.', "..héllo"},
		{"zero target", "a", 0, '0', "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PadStart(tt.s, tt.targetLen, tt.pad); got != tt.want {
				t.Errorf("PadStart(%q, %d, %q) = %q, want %q", tt.s, tt.targetLen, tt.pad, got, tt.want)
			}
		})
	}
}

func TestPadEnd(t *testing.T) {
	tests := []struct {
		name      string
		s         string
		targetLen int
		pad       rune
		want      string
	}{
		{"dots", "menu", 8, '.', "menu...."},
		{"already long enough", "toolbar", 4, '.', "toolbar"},
		{"rune counted", "héllo", 6, '!', "héllo!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PadEnd(tt.s, tt.targetLen, tt.pad); got != tt.want {
				t.Errorf("PadEnd(%q, %d, %q) = %q, want %q", tt.s, tt.targetLen, tt.pad, got, tt.want)
			}
		})
	}
}
