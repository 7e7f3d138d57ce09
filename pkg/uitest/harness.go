package uitest

import (
	"fmt"

	"github.com/lumen-ui/lumen/pkg/lumen"
	"github.com/lumen-ui/lumen/pkg/render"
	"github.com/lumen-ui/lumen/pkg/vdom"
)

// Harness mounts a component and drives it the way a session runtime
// would: it renders under an owner scope, tracks signal dependencies,
// re-renders when they change, dispatches events into rendered handlers,
// and records focus requests.
//
// A Harness is single-goroutine, mirroring the one-event-loop-per-session
// model of the live server.
type Harness struct {
	id    uint64
	owner *lumen.Owner
	root  vdom.Component

	tree    *vdom.VNode
	dirty   bool
	focused string

	// rendering guards against re-entrant renders from MarkDirty.
	rendering bool
}

// Mount renders the component and returns a harness around it.
func Mount(root vdom.Component) *Harness {
	h := &Harness{
		id:    nextHarnessID(),
		owner: lumen.NewOwner(nil),
		root:  root,
	}
	h.render()
	return h
}

// MountFunc mounts a bare render function.
func MountFunc(renderFn func() *vdom.VNode) *Harness {
	return Mount(vdom.Func(renderFn))
}

// Unmount disposes the harness owner, running registered cleanups.
func (h *Harness) Unmount() {
	h.owner.Dispose()
}

// MarkDirty implements lumen.Listener. State changes during an event
// dispatch coalesce into a single re-render at the end of the dispatch.
func (h *Harness) MarkDirty() {
	h.dirty = true
	if !h.rendering {
		h.flush()
	}
}

// ID implements lumen.Listener.
func (h *Harness) ID() uint64 { return h.id }

// RequestFocus implements lumen.Focuser.
func (h *Harness) RequestFocus(id string) {
	h.focused = id
}

// Focused returns the id of the element the component last requested
// focus for, or "".
func (h *Harness) Focused() string {
	return h.focused
}

// Tree returns the current expanded tree.
func (h *Harness) Tree() *vdom.VNode {
	return h.tree
}

// HTML renders the current tree to a string.
func (h *Harness) HTML() string {
	out, err := render.ToString(h.tree)
	if err != nil {
		return ""
	}
	return out
}

// Node returns the element with the given id attribute, or nil.
func (h *Harness) Node(id string) *vdom.VNode {
	return vdom.FindByID(h.tree, id)
}

// Attr returns the named attribute of the element with the given id.
func (h *Harness) Attr(id, name string) (any, bool) {
	node := h.Node(id)
	if node == nil {
		return nil, false
	}
	v, ok := node.Props[name]
	return v, ok
}

// Click dispatches a click event to the element with the given id.
// Returns an error when the element or its handler does not exist.
func (h *Harness) Click(id string) error {
	return h.dispatch(id, "onclick", lumen.MouseEvent{})
}

// KeyDown dispatches a keydown with the given key to the element.
func (h *Harness) KeyDown(id, key string) error {
	return h.dispatch(id, "onkeydown", lumen.KeyboardEvent{Key: key})
}

func (h *Harness) dispatch(id, event string, payload any) error {
	node := vdom.FindByID(h.tree, id)
	if node == nil {
		return fmt.Errorf("uitest: no element with id %q", id)
	}
	handler, ok := node.Props[event]
	if !ok {
		return fmt.Errorf("uitest: element %q has no %s handler", id, event)
	}

	h.rendering = true
	lumen.WithOwner(h.owner, func() {
		lumen.CallHandler(handler, payload)
	})
	h.rendering = false

	h.flush()
	return nil
}

// flush re-renders if any dependency changed.
func (h *Harness) flush() {
	if h.dirty {
		h.render()
	}
}

func (h *Harness) render() {
	h.dirty = false
	h.rendering = true
	defer func() { h.rendering = false }()

	lumen.WithOwner(h.owner, func() {
		lumen.WithListener(h, func() {
			wrapped := lumen.FocusContext.Provider(lumen.Focuser(h),
				&vdom.VNode{Kind: vdom.KindComponent, Comp: h.root},
			)
			h.tree = vdom.Expand(wrapped)
		})
	})
}
