package scene

import (
	"fmt"
	"sort"
)

// Registry looks scenes up by name so scenes can switch to each other
// without importing each other
type Registry struct {
	scenes map[string]Scene
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{scenes: make(map[string]Scene)}
}

// Register adds s under name, replacing any earlier scene
func (r *Registry) Register(name string, s Scene) {
	r.scenes[name] = s
}

// Get returns the scene registered under name
func (r *Registry) Get(name string) (Scene, error) {
	s, ok := r.scenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", name)
	}
	return s, nil
}

// Names returns the registered scene names, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.scenes))
	for name := range r.scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
