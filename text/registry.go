package text

import (
	"github.com/larsonjj/mvn/hmap"
	"github.com/larsonjj/mvn/list"
)

// Registry is a name-keyed collection of fonts. Games typically load
// fonts once at startup and look them up by name per frame.
type Registry struct {
	fonts *hmap.Map[*Font]
}

// NewRegistry returns an empty font registry.
func NewRegistry() *Registry {
	return &Registry{fonts: hmap.New[*Font](0)}
}

// Add registers f under name, replacing any previous entry. Adding a
// nil font fails.
func (r *Registry) Add(name string, f *Font) bool {
	if f == nil {
		return false
	}
	return r.fonts.Set(name, f)
}

// Get returns the font registered under name.
func (r *Registry) Get(name string) (*Font, bool) {
	return r.fonts.Get(name)
}

// Remove drops the font registered under name and reports whether an
// entry was removed.
func (r *Registry) Remove(name string) bool {
	return r.fonts.Delete(name)
}

// Len returns the number of registered fonts.
func (r *Registry) Len() int {
	return r.fonts.Len()
}

// Names returns the registered font names in no particular order.
func (r *Registry) Names() *list.List[string] {
	return r.fonts.Keys()
}
