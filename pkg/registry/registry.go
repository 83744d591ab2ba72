package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/arthur-debert/docrender/pkg/errors"
)

// Registry is a generic, thread-safe registry for storing and retrieving items by name
type Registry[T any] interface {
	// Register adds an item to the registry
	Register(name string, item T) error

	// Set adds or replaces an item
	Set(name string, item T) error

	// Get retrieves an item from the registry
	Get(name string) (T, error)

	// Lookup retrieves an item, reporting whether it exists
	Lookup(name string) (T, bool)

	// Remove removes an item from the registry
	Remove(name string) error

	// List returns all registered names
	List() []string

	// Has checks if an item is registered
	Has(name string) bool

	// Clear removes all items from the registry
	Clear()

	// Count returns the number of registered items
	Count() int

	// Clone returns an unfrozen copy of the registry
	Clone() Registry[T]

	// Freeze makes the registry read-only
	Freeze()

	// Frozen reports whether Freeze was called
	Frozen() bool
}

// registry is the internal implementation of Registry
type registry[T any] struct {
	mu     sync.RWMutex
	items  map[string]T
	frozen bool
}

// New creates a new Registry instance
func New[T any]() Registry[T] {
	return &registry[T]{
		items: make(map[string]T),
	}
}

// Register adds an item to the registry
func (r *registry[T]) Register(name string, item T) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return errors.Newf(errors.ErrFrozen, "cannot register '%s' in a frozen registry", name)
	}
	if _, exists := r.items[name]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "item '%s' is already registered", name)
	}

	r.items[name] = item
	return nil
}

// Set adds an item, replacing any item already registered under name
func (r *registry[T]) Set(name string, item T) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return errors.Newf(errors.ErrFrozen, "cannot set '%s' in a frozen registry", name)
	}

	r.items[name] = item
	return nil
}

// Get retrieves an item from the registry
func (r *registry[T]) Get(name string) (T, error) {
	item, exists := r.Lookup(name)
	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", name)
	}

	return item, nil
}

// Lookup retrieves an item without allocating an error on a miss
func (r *registry[T]) Lookup(name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[name]
	return item, exists
}

// Remove removes an item from the registry
func (r *registry[T]) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return errors.Newf(errors.ErrFrozen, "cannot remove '%s' from a frozen registry", name)
	}
	if _, exists := r.items[name]; !exists {
		return errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", name)
	}

	delete(r.items, name)
	return nil
}

// List returns all registered names in sorted order
func (r *registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Has checks if an item is registered
func (r *registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.items[name]
	return exists
}

// Clear removes all items from the registry. A frozen registry is left untouched.
func (r *registry[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return
	}
	r.items = make(map[string]T)
}

// Count returns the number of registered items
func (r *registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// Clone returns an unfrozen copy holding the same items
func (r *registry[T]) Clone() Registry[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make(map[string]T, len(r.items))
	for name, item := range r.items {
		items[name] = item
	}
	return &registry[T]{items: items}
}

// Freeze makes the registry read-only
func (r *registry[T]) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.frozen = true
}

// Frozen reports whether the registry is read-only
func (r *registry[T]) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.frozen
}

// Layer is a named set of entries applied on top of the layers before it.
type Layer[T any] struct {
	Name    string
	Entries map[string]T
}

// Build copies each layer into a fresh registry in order, later layers
// replacing earlier entries of the same name, and freezes the result.
func Build[T any](layers ...Layer[T]) (Registry[T], error) {
	return Extend(New[T](), layers...)
}

// Extend clones base, applies layers on top and freezes the result. base
// itself is never modified.
func Extend[T any](base Registry[T], layers ...Layer[T]) (Registry[T], error) {
	reg := base.Clone()
	for _, layer := range layers {
		for name, item := range layer.Entries {
			if err := reg.Set(name, item); err != nil {
				return nil, errors.Wrapf(err, errors.ErrInvalidInput, "layer '%s'", layer.Name)
			}
		}
	}
	reg.Freeze()
	return reg, nil
}

// MustRegister registers an item and panics if registration fails
// This is useful for init() functions where registration errors are programming errors
func MustRegister[T any](reg Registry[T], name string, item T) {
	if err := reg.Register(name, item); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", name, err))
	}
}

// MustGet retrieves an item and panics if not found
// This is useful when the item must exist
func MustGet[T any](reg Registry[T], name string) T {
	item, err := reg.Get(name)
	if err != nil {
		panic(fmt.Sprintf("failed to get %s: %v", name, err))
	}
	return item
}

// MustBuild is Build for static tables that cannot fail at runtime
func MustBuild[T any](layers ...Layer[T]) Registry[T] {
	reg, err := Build(layers...)
	if err != nil {
		panic(fmt.Sprintf("failed to build registry: %v", err))
	}
	return reg
}
