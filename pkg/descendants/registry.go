// Package descendants provides ordered registration of sibling elements
// and the keyboard-navigation helpers that operate over that order.
//
// A Registry assigns each registered entry a contiguous, zero-based
// ordinal reflecting registration (document) order. Ordinals are
// recomputed synchronously on every structural change, so navigation
// never observes stale positions.
package descendants

// Registry is an ordered collection keyed by stable identity. It is not
// safe for concurrent use; per the view layer's model all mutations happen
// on one event-loop goroutine.
type Registry[T any] struct {
	keys   []string
	byKey  map[string]int
	values map[string]T
}

// NewRegistry creates an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		byKey:  make(map[string]int),
		values: make(map[string]T),
	}
}

// Register appends key with its value and returns the assigned ordinal.
// Re-registering an existing key updates its value and keeps its position.
func (r *Registry[T]) Register(key string, value T) int {
	if i, ok := r.byKey[key]; ok {
		r.values[key] = value
		return i
	}
	i := len(r.keys)
	r.keys = append(r.keys, key)
	r.byKey[key] = i
	r.values[key] = value
	return i
}

// Unregister removes key and recomputes the ordinals of every later entry.
// Unknown keys are ignored.
func (r *Registry[T]) Unregister(key string) {
	i, ok := r.byKey[key]
	if !ok {
		return
	}
	r.keys = append(r.keys[:i], r.keys[i+1:]...)
	delete(r.byKey, key)
	delete(r.values, key)
	for j := i; j < len(r.keys); j++ {
		r.byKey[r.keys[j]] = j
	}
}

// Clear removes every entry.
func (r *Registry[T]) Clear() {
	r.keys = r.keys[:0]
	clear(r.byKey)
	clear(r.values)
}

// Len returns the number of registered entries.
func (r *Registry[T]) Len() int {
	return len(r.keys)
}

// IndexOf returns the ordinal for key, or -1 when not registered.
func (r *Registry[T]) IndexOf(key string) int {
	if i, ok := r.byKey[key]; ok {
		return i
	}
	return -1
}

// At returns the value at ordinal i.
func (r *Registry[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(r.keys) {
		var zero T
		return zero, false
	}
	return r.values[r.keys[i]], true
}

// Keys returns the keys in registration order. The slice is a copy.
func (r *Registry[T]) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Values returns the values in registration order.
func (r *Registry[T]) Values() []T {
	out := make([]T, 0, len(r.keys))
	for _, k := range r.keys {
		out = append(out, r.values[k])
	}
	return out
}
