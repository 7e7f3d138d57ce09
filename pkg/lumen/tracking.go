package lumen

import (
	"runtime"
	"sync"
)

// trackingContext holds the reactive scope for one goroutine. Each session
// runs its renders and event handlers on a single goroutine, so a
// per-goroutine scope gives every session an isolated owner and listener
// without cross-session locking.
type trackingContext struct {
	owner    *Owner
	listener Listener
}

var trackingContexts sync.Map // goroutine ID -> *trackingContext

// goroutineID extracts the current goroutine's ID from the runtime stack.
// Implementation detail; never exposed.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)

	// Stack header is "goroutine <id> [...]".
	var id uint64
	for i := len("goroutine "); i < n; i++ {
		if buf[i] < '0' || buf[i] > '9' {
			break
		}
		id = id*10 + uint64(buf[i]-'0')
	}
	return id
}

func currentTracking() *trackingContext {
	gid := goroutineID()
	if tc, ok := trackingContexts.Load(gid); ok {
		return tc.(*trackingContext)
	}
	tc := &trackingContext{}
	trackingContexts.Store(gid, tc)
	return tc
}

// WithOwner runs fn with o as the current owner scope. Component renders
// and event handlers run inside such a scope so Context.Use and OnCleanup
// resolve against the right owner. Scopes nest.
func WithOwner(o *Owner, fn func()) {
	tc := currentTracking()
	prev := tc.owner
	tc.owner = o
	defer func() { tc.owner = prev }()
	fn()
}

// WithListener runs fn with l as the current dependency listener. Signal
// reads inside fn subscribe l.
func WithListener(l Listener, fn func()) {
	tc := currentTracking()
	prev := tc.listener
	tc.listener = l
	defer func() { tc.listener = prev }()
	fn()
}

// CurrentOwner returns the owner for the active scope, or nil when called
// outside WithOwner.
func CurrentOwner() *Owner {
	return currentTracking().owner
}

func currentListener() Listener {
	return currentTracking().listener
}
