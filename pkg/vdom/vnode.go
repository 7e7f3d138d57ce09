package vdom

import "strings"

// Kind discriminates the node variants of the view tree.
type Kind uint8

const (
	KindElement   Kind = iota // <div>, <span>, etc.
	KindText                  // plain text
	KindFragment              // grouping without a wrapper element
	KindComponent             // nested component
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// VNode is a node of the retained view tree.
type VNode struct {
	Kind     Kind
	Tag      string    // element tag name, e.g. "div"
	Props    Props     // attributes and event handlers
	Children []*VNode  // child nodes
	Key      string    // reconciliation key
	Text     string    // for KindText
	Comp     Component // for KindComponent

	// NID is the node ID assigned during render. Interactive elements get
	// one so events and focus requests can be routed back to them.
	NID string
}

// Props holds attributes and event handlers keyed by attribute name.
// Event handler keys start with "on".
type Props map[string]any

// IsInteractive reports whether this node carries event handlers and
// therefore needs a NID.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement {
		return false
	}
	for key := range v.Props {
		if strings.HasPrefix(key, "on") {
			return true
		}
	}
	return false
}

// Attr is a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty reports whether this is an empty attribute, such as one produced
// by a false AttrIf condition.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// EventHandler binds a handler function to an event name.
type EventHandler struct {
	Event   string // "onclick", "onkeydown", ...
	Handler any
}

// Component is anything that can render itself to a VNode.
type Component interface {
	Render() *VNode
}

// FuncComponent wraps a plain render function.
type FuncComponent struct {
	render func() *VNode
}

// Render implements Component.
func (f *FuncComponent) Render() *VNode {
	return f.render()
}

// Func creates a component from a render function.
func Func(render func() *VNode) Component {
	return &FuncComponent{render: render}
}
