package vdom

// event creates an EventHandler, prefixing the name with "on".
func event(name string, handler any) EventHandler {
	return EventHandler{Event: "on" + name, Handler: handler}
}

// Mouse events

// OnClick handles click events.
func OnClick(handler any) EventHandler { return event("click", handler) }

// OnDblClick handles double-click events.
func OnDblClick(handler any) EventHandler { return event("dblclick", handler) }

// OnMouseDown handles mousedown events.
func OnMouseDown(handler any) EventHandler { return event("mousedown", handler) }

// OnMouseUp handles mouseup events.
func OnMouseUp(handler any) EventHandler { return event("mouseup", handler) }

// Pointer events

// OnPointerDown handles pointerdown events.
func OnPointerDown(handler any) EventHandler { return event("pointerdown", handler) }

// OnPointerUp handles pointerup events.
func OnPointerUp(handler any) EventHandler { return event("pointerup", handler) }

// Keyboard events

// OnKeyDown handles keydown events.
func OnKeyDown(handler any) EventHandler { return event("keydown", handler) }

// OnKeyUp handles keyup events.
func OnKeyUp(handler any) EventHandler { return event("keyup", handler) }

// Focus events

// OnFocus handles focus events.
func OnFocus(handler any) EventHandler { return event("focus", handler) }

// OnBlur handles blur events.
func OnBlur(handler any) EventHandler { return event("blur", handler) }

// Form events

// OnInput handles input events.
func OnInput(handler any) EventHandler { return event("input", handler) }

// OnChange handles change events.
func OnChange(handler any) EventHandler { return event("change", handler) }

// OnSubmit handles form submit events.
func OnSubmit(handler any) EventHandler { return event("submit", handler) }
