package lumen

// Focuser moves input focus to an element, identified by its id attribute.
// The live server implements it by sending a focus control frame to the
// client; the test harness records the request.
type Focuser interface {
	RequestFocus(id string)
}

// FocusContext delivers the runtime's Focuser to widgets. Widgets call
// RequestFocus from their event handlers after moving selection.
var FocusContext = CreateContext[Focuser](nil)

// RequestFocus asks the runtime in scope to focus the element with the
// given id. A no-op when no Focuser is provided (static rendering).
func RequestFocus(id string) {
	if f := FocusContext.Use(); f != nil {
		f.RequestFocus(id)
	}
}
