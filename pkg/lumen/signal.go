package lumen

import (
	"reflect"
	"sync"
)

// Signal is a reactive value container. Reading a Signal inside a tracked
// scope (WithListener) subscribes the current listener; Set notifies every
// subscriber whose value actually changed.
type Signal[T any] struct {
	id    uint64
	value T
	mu    sync.RWMutex

	subs   []Listener
	subsMu sync.Mutex

	// equal overrides the change check. Nil means default equality.
	equal func(T, T) bool
}

// NewSignal creates a signal with the given initial value.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{
		id:    nextID(),
		value: initial,
	}
}

// WithEquals configures a custom equality function and returns the signal.
func (s *Signal[T]) WithEquals(fn func(T, T) bool) *Signal[T] {
	s.equal = fn
	return s
}

// ID returns the signal's unique identifier.
func (s *Signal[T]) ID() uint64 {
	return s.id
}

// Get returns the current value and subscribes the current listener, if any.
func (s *Signal[T]) Get() T {
	s.mu.RLock()
	value := s.value
	s.mu.RUnlock()

	if l := currentListener(); l != nil {
		s.subscribe(l)
	}
	return value
}

// Peek returns the current value without creating a subscription.
func (s *Signal[T]) Peek() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set stores a new value and notifies subscribers when it differs from the
// current one.
func (s *Signal[T]) Set(value T) {
	s.mu.Lock()
	changed := !s.equals(s.value, value)
	if changed {
		s.value = value
	}
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

// Update atomically derives a new value from the current one.
func (s *Signal[T]) Update(fn func(T) T) {
	s.mu.Lock()
	next := fn(s.value)
	changed := !s.equals(s.value, next)
	if changed {
		s.value = next
	}
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

func (s *Signal[T]) subscribe(l Listener) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	lid := l.ID()
	for _, existing := range s.subs {
		if existing.ID() == lid {
			return
		}
	}
	s.subs = append(s.subs, l)
}

// Unsubscribe removes a listener from this signal.
func (s *Signal[T]) Unsubscribe(l Listener) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	lid := l.ID()
	for i, existing := range s.subs {
		if existing.ID() == lid {
			s.subs[i] = s.subs[len(s.subs)-1]
			s.subs = s.subs[:len(s.subs)-1]
			return
		}
	}
}

// notify copies the subscriber list before calling out so a MarkDirty that
// re-subscribes cannot deadlock.
func (s *Signal[T]) notify() {
	s.subsMu.Lock()
	subs := make([]Listener, len(s.subs))
	copy(subs, s.subs)
	s.subsMu.Unlock()

	for _, sub := range subs {
		sub.MarkDirty()
	}
}

func (s *Signal[T]) equals(a, b T) bool {
	if s.equal != nil {
		return s.equal(a, b)
	}
	return defaultEquals(a, b)
}

// defaultEquals uses == for comparable values and reflect.DeepEqual for
// the rest (slices, maps, funcs).
func defaultEquals[T any](a, b T) bool {
	ta := reflect.TypeOf(a)
	if ta != nil && ta.Comparable() {
		return any(a) == any(b)
	}
	return reflect.DeepEqual(a, b)
}
