// Package registry maps stable human-readable names to implementation
// factories, decoupling configuration from code. The registries are built
// once at process initialization and are immutable afterwards; looking an
// entry up never instantiates anything — construction and its validation stay
// with the caller.
package registry

import (
	"fmt"
)

// NotFoundError reports a name absent from a registry family
type NotFoundError struct {
	// Name is the requested entry name
	Name string
	// Family is the registry family that was searched
	Family string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("the item with the name %q could not be found in the %s registry", e.Name, e.Family)
}

// family is one name-indexed registry. Registration order is preserved for
// listing; duplicate names are a startup configuration error.
type family[T any] struct {
	name    string
	order   []string
	entries map[string]T
}

func newFamily[T any](name string) *family[T] {
	return &family[T]{
		name:    name,
		entries: make(map[string]T),
	}
}

func (f *family[T]) register(name string, entry T) {
	if _, exists := f.entries[name]; exists {
		panic(fmt.Sprintf("duplicate %s registration: %s", f.name, name))
	}
	f.entries[name] = entry
	f.order = append(f.order, name)
}

func (f *family[T]) get(name string) (T, error) {
	entry, exists := f.entries[name]
	if !exists {
		var zero T
		return zero, &NotFoundError{Name: name, Family: f.name}
	}
	return entry, nil
}

func (f *family[T]) names() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}
