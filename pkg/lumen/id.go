package lumen

import "sync/atomic"

// idCounter is the source of unique IDs for owners, signals, and listeners.
var idCounter atomic.Uint64

// nextID returns a process-unique, monotonically increasing ID.
func nextID() uint64 {
	return idCounter.Add(1)
}
