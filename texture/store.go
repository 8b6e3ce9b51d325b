package texture

import (
	"github.com/larsonjj/mvn"
	"github.com/larsonjj/mvn/hmap"
	"github.com/larsonjj/mvn/list"
)

// Store is a name-keyed collection of textures. Games typically load
// their sprites once at startup and fetch them by name per frame.
type Store struct {
	textures *hmap.Map[*Texture]
}

// NewStore returns an empty texture store.
func NewStore() *Store {
	return &Store{textures: hmap.New[*Texture](0)}
}

// Add registers t under name, replacing any previous entry. Adding a
// nil texture fails.
func (s *Store) Add(name string, t *Texture) bool {
	if t == nil {
		return false
	}
	return s.textures.Set(name, t)
}

// Load reads the image file at path and registers it under name.
func (s *Store) Load(name, path string) (*Texture, error) {
	t, err := Load(path)
	if err != nil {
		return nil, err
	}
	s.textures.Set(name, t)
	mvn.Logger().Info("texture stored",
		"name", name,
		"width", t.Width(),
		"height", t.Height())
	return t, nil
}

// Get returns the texture registered under name.
func (s *Store) Get(name string) (*Texture, bool) {
	return s.textures.Get(name)
}

// Remove drops the texture registered under name and reports whether an
// entry was removed.
func (s *Store) Remove(name string) bool {
	return s.textures.Delete(name)
}

// Len returns the number of stored textures.
func (s *Store) Len() int {
	return s.textures.Len()
}

// Names returns the stored texture names in no particular order.
func (s *Store) Names() *list.List[string] {
	return s.textures.Keys()
}
