package registry

import (
	"fmt"
	"reflect"
	"sync"
)

// Registry owns values of type T and addresses them by Handle.
//
// It is safe for concurrent use. Handles() reports registration order.
type Registry[T any] struct {
	mu    sync.RWMutex
	items map[Handle]T
	order []Handle
}

// New returns an empty Registry.
func New[T any]() *Registry[T] {
	return &Registry[T]{items: map[Handle]T{}}
}

// Register takes ownership of v and returns a fresh Handle for it.
func (r *Registry[T]) Register(v T) (Handle, error) {
	if r == nil {
		return NilHandle, ErrNilRegistry
	}
	if isNil(v) {
		return NilHandle, ErrNilValue
	}

	h := NewHandle()
	r.mu.Lock()
	r.store(h, v)
	r.mu.Unlock()
	return h, nil
}

// Provide stores v under a caller-chosen Handle and returns the registry for chaining.
// An existing value under h is replaced in place; its position in Handles() is kept.
// NilHandle and nil values are ignored, matching what Register accepts.
func (r *Registry[T]) Provide(h Handle, v T) *Registry[T] {
	if h.IsZero() || isNil(v) {
		return r
	}
	r.mu.Lock()
	r.store(h, v)
	r.mu.Unlock()
	return r
}

func (r *Registry[T]) store(h Handle, v T) {
	if r.items == nil {
		r.items = map[Handle]T{}
	}
	if _, exists := r.items[h]; !exists {
		r.order = append(r.order, h)
	}
	r.items[h] = v
}

// Resolve looks up h and converts internal panics into errors.
//
// A missing handle is not an error: it returns (zero, false, nil).
func (r *Registry[T]) Resolve(h Handle) (val T, ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			var zero T
			val = zero
			ok = false
			err = fmt.Errorf("%w: %v", ErrRegistryPanic, rec)
		}
	}()

	r.mu.RLock()
	defer r.mu.RUnlock()
	val, ok = r.items[h]
	return val, ok, nil
}

// Get returns the value if present (no panic on a non-nil registry).
func (r *Registry[T]) Get(h Handle) (T, bool) {
	if r == nil {
		var zero T
		return zero, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.items[h]
	return v, ok
}

// Lookup returns the value or a MissingHandleError.
func (r *Registry[T]) Lookup(h Handle) (T, error) {
	if r == nil {
		var zero T
		return zero, ErrNilRegistry
	}
	v, ok := r.Get(h)
	if !ok {
		return v, MissingHandleError{Handle: h}
	}
	return v, nil
}

// MustGet returns the value or panics with a MissingHandleError.
func (r *Registry[T]) MustGet(h Handle) T {
	v, ok := r.Get(h)
	if !ok {
		panic(MissingHandleError{Handle: h})
	}
	return v
}

// Has reports whether h currently addresses a live value.
func (r *Registry[T]) Has(h Handle) bool {
	_, ok := r.Get(h)
	return ok
}

// Retire ends the lifetime of the value addressed by h.
//
// Handles held elsewhere are not touched; they simply stop resolving.
func (r *Registry[T]) Retire(h Handle) error {
	if r == nil {
		return ErrNilRegistry
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[h]; !ok {
		return MissingHandleError{Handle: h}
	}
	delete(r.items, h)
	for i, cur := range r.order {
		if cur == h {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of live values.
func (r *Registry[T]) Len() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Handles returns the live handles in registration order.
func (r *Registry[T]) Handles() []Handle {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Handle, len(r.order))
	copy(out, r.order)
	return out
}

// Clone returns a shallow copy of the Registry.
//
// Values are shared. The bookkeeping (handle map and order) is copied, so
// retiring in the clone does not affect the original.
func (r *Registry[T]) Clone() *Registry[T] {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	cp := &Registry[T]{
		items: make(map[Handle]T, len(r.items)),
		order: make([]Handle, len(r.order)),
	}
	for k, v := range r.items {
		cp.items[k] = v
	}
	copy(cp.order, r.order)
	return cp
}

// isNil reports whether v is nil, including typed nils stored in an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
