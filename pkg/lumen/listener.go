package lumen

// Listener is anything that reacts to a dependency change. The hosting
// runtime implements it to schedule re-renders.
type Listener interface {
	// MarkDirty notifies the listener that a dependency changed.
	MarkDirty()

	// ID returns a unique identifier, used to deduplicate subscriptions.
	ID() uint64
}

// Cleanup is a function registered with Owner.OnCleanup.
type Cleanup func()
