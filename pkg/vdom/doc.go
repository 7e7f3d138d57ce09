// Package vdom provides the retained-mode virtual view tree.
//
// A tree of VNodes is built with element constructors (Div, Span, Button,
// ...), typed attributes (Role, AriaChecked, TabIndex, ...) and event
// handlers (OnClick, OnKeyDown, ...). Components render to VNodes and the
// render package turns the tree into HTML.
//
// Example:
//
//	vdom.Div(
//	    vdom.Role("radiogroup"),
//	    vdom.AriaLabel("Pizza crust"),
//	    vdom.Span(vdom.Role("radio"), vdom.AriaChecked(true), "Deep dish"),
//	)
package vdom
