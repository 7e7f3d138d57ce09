package lumen

import (
	"sync"
	"sync/atomic"
)

// Owner is a component scope. It carries context values for descendants
// and cleanup functions that run on disposal. Owners form a hierarchy
// mirroring the component tree; disposing an owner disposes its children
// first.
type Owner struct {
	id     uint64
	parent *Owner

	children   []*Owner
	childrenMu sync.Mutex

	cleanups   []Cleanup
	cleanupsMu sync.Mutex

	values   map[any]any
	valuesMu sync.RWMutex

	disposed atomic.Bool
}

// NewOwner creates an owner under parent. A nil parent creates a root.
func NewOwner(parent *Owner) *Owner {
	o := &Owner{
		id:     nextID(),
		parent: parent,
	}
	if parent != nil {
		parent.addChild(o)
	}
	return o
}

// ID returns the owner's unique identifier.
func (o *Owner) ID() uint64 {
	return o.id
}

// Parent returns the parent owner, or nil for a root.
func (o *Owner) Parent() *Owner {
	return o.parent
}

// IsDisposed reports whether Dispose has been called.
func (o *Owner) IsDisposed() bool {
	return o.disposed.Load()
}

func (o *Owner) addChild(child *Owner) {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()
	o.children = append(o.children, child)
}

func (o *Owner) removeChild(child *Owner) {
	o.childrenMu.Lock()
	defer o.childrenMu.Unlock()
	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			return
		}
	}
}

// OnCleanup registers fn to run when this owner is disposed. If the owner
// is already disposed, fn runs immediately.
func (o *Owner) OnCleanup(fn Cleanup) {
	if o.disposed.Load() {
		fn()
		return
	}
	o.cleanupsMu.Lock()
	defer o.cleanupsMu.Unlock()
	o.cleanups = append(o.cleanups, fn)
}

// SetValue stores a context value on this owner, visible to descendants.
func (o *Owner) SetValue(key, value any) {
	o.valuesMu.Lock()
	defer o.valuesMu.Unlock()
	if o.values == nil {
		o.values = make(map[any]any)
	}
	o.values[key] = value
}

// GetValue looks up a context value on this owner or the nearest ancestor.
// Returns nil when no owner in the chain holds the key.
func (o *Owner) GetValue(key any) any {
	o.valuesMu.RLock()
	if o.values != nil {
		if val, ok := o.values[key]; ok {
			o.valuesMu.RUnlock()
			return val
		}
	}
	o.valuesMu.RUnlock()

	if o.parent != nil {
		return o.parent.GetValue(key)
	}
	return nil
}

// Dispose disposes this owner, its children (in reverse creation order),
// and runs cleanups in reverse registration order.
func (o *Owner) Dispose() {
	if o.disposed.Swap(true) {
		return
	}

	if o.parent != nil {
		o.parent.removeChild(o)
	}

	o.childrenMu.Lock()
	children := make([]*Owner, len(o.children))
	copy(children, o.children)
	o.children = nil
	o.childrenMu.Unlock()

	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}

	o.cleanupsMu.Lock()
	cleanups := o.cleanups
	o.cleanups = nil
	o.cleanupsMu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}
