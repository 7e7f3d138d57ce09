package lumen

// CallHandler invokes a vdom event handler with the given event payload.
// Handlers may take the typed event or nothing at all; unknown handler
// shapes are ignored. Returns true when a handler was invoked.
func CallHandler(handler, event any) bool {
	switch h := handler.(type) {
	case nil:
		return false
	case func():
		h()
		return true
	case func(MouseEvent):
		if ev, ok := event.(MouseEvent); ok {
			h(ev)
			return true
		}
		h(MouseEvent{})
		return true
	case func(KeyboardEvent):
		if ev, ok := event.(KeyboardEvent); ok {
			h(ev)
			return true
		}
		h(KeyboardEvent{})
		return true
	case func(FocusEvent):
		if ev, ok := event.(FocusEvent); ok {
			h(ev)
			return true
		}
		h(FocusEvent{})
		return true
	default:
		return false
	}
}
