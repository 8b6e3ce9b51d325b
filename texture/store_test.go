package texture

import (
	"path/filepath"
	"testing"
)

func TestStoreAddGet(t *testing.T) {
	s := NewStore()
	tex, err := New(2, 2)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if !s.Add("player", tex) {
		t.Fatal("Add() = false")
	}
	if got, ok := s.Get("player"); !ok || got != tex {
		t.Errorf("Get(player) = %v, %v", got, ok)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestStoreGetMissing(t *testing.T) {
	s := NewStore()
	if got, ok := s.Get("ghost"); ok || got != nil {
		t.Errorf("Get(ghost) = %v, %v, want nil, false", got, ok)
	}
}

func TestStoreAddNil(t *testing.T) {
	s := NewStore()
	if s.Add("empty", nil) {
		t.Error("Add(nil) = true")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestStoreReplace(t *testing.T) {
	s := NewStore()
	first, _ := New(1, 1)
	second, _ := New(2, 2)

	s.Add("tile", first)
	s.Add("tile", second)

	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
	if got, _ := s.Get("tile"); got != second {
		t.Error("Get(tile) returned the replaced texture")
	}
}

func TestStoreRemove(t *testing.T) {
	s := NewStore()
	tex, _ := New(1, 1)
	s.Add("tile", tex)

	if !s.Remove("tile") {
		t.Error("Remove(tile) = false")
	}
	if s.Remove("tile") {
		t.Error("second Remove(tile) = true")
	}
	if _, ok := s.Get("tile"); ok {
		t.Error("Get(tile) found a removed texture")
	}
}

func TestStoreLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hero.png")

	src := FromImage(testImage())
	if err := src.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error: %v", err)
	}

	s := NewStore()
	tex, err := s.Load("hero", path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	wantTestPixels(t, tex)

	if got, ok := s.Get("hero"); !ok || got != tex {
		t.Error("loaded texture was not registered")
	}
}

func TestStoreLoadBadPath(t *testing.T) {
	s := NewStore()
	if _, err := s.Load("hero", "/no/such/hero.png"); err == nil {
		t.Fatal("Load(bad path) succeeded, want error")
	}
	if s.Len() != 0 {
		t.Error("failed Load registered an entry")
	}
}

func TestStoreNames(t *testing.T) {
	s := NewStore()
	a, _ := New(1, 1)
	b, _ := New(1, 1)
	s.Add("a", a)
	s.Add("b", b)

	names := s.Names()
	if names.Len() != 2 {
		t.Fatalf("Names().Len() = %d, want 2", names.Len())
	}
	seen := map[string]bool{}
	for name := range names.Values() {
		seen[name] = true
	}
	if !seen["a"] || !seen["b"] {
		t.Errorf("Names() = %v, want a and b", seen)
	}
}
