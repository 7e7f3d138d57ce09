package lumen

// MouseEvent carries the payload of a click or pointer event.
type MouseEvent struct {
	// Position relative to viewport
	ClientX int
	ClientY int

	// Button that triggered the event (0=left, 1=middle, 2=right)
	Button int

	// Modifier keys
	CtrlKey  bool
	ShiftKey bool
	AltKey   bool
	MetaKey  bool
}

// KeyboardEvent carries the payload of a keydown or keyup event.
type KeyboardEvent struct {
	// Key is the logical key value (e.g. "Enter", "a", " ").
	Key string

	// Code is the physical key code (e.g. "KeyA", "Space").
	Code string

	// Modifier keys
	CtrlKey  bool
	ShiftKey bool
	AltKey   bool
	MetaKey  bool

	// Repeat is true while the key is held down.
	Repeat bool
}

// FocusEvent carries the payload of a focus or blur event.
type FocusEvent struct {
	// RelatedNID is the node losing (focus) or gaining (blur) focus,
	// empty when unknown.
	RelatedNID string
}
