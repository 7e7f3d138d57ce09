package lumen

import "github.com/lumen-ui/lumen/pkg/vdom"

// Context passes a shared value down the component tree. Create one with
// CreateContext, provide a value with Provider during render, and read it
// with Use from any descendant render or event handler running inside the
// same owner scope.
//
// Example:
//
//	var theme = lumen.CreateContext("light")
//
//	func App() *vdom.VNode {
//	    return theme.Provider("dark",
//	        Toolbar(),
//	    )
//	}
type Context[T any] struct {
	key          any
	defaultValue T
}

// contextKey makes each context its own unique lookup key.
type contextKey[T any] struct {
	ctx *Context[T]
}

// CreateContext creates a context with a default value, returned by Use
// whenever no Provider is in scope.
func CreateContext[T any](defaultValue T) *Context[T] {
	ctx := &Context[T]{defaultValue: defaultValue}
	ctx.key = contextKey[T]{ctx: ctx}
	return ctx
}

// Provider stores value on the current owner and groups children in a
// fragment. Descendants rendered under the same owner (or a child owner)
// observe the value through Use.
func (c *Context[T]) Provider(value T, children ...any) *vdom.VNode {
	if owner := CurrentOwner(); owner != nil {
		owner.SetValue(c.key, value)
	}
	return vdom.Fragment(children...)
}

// Provide stores value on the current owner without emitting a node.
// Components that place their children inside their own markup use it
// where Provider's fragment shape does not fit.
func (c *Context[T]) Provide(value T) {
	if owner := CurrentOwner(); owner != nil {
		owner.SetValue(c.key, value)
	}
}

// Use returns the nearest provided value, or the default when no Provider
// is in scope.
func (c *Context[T]) Use() T {
	if owner := CurrentOwner(); owner != nil {
		if value := owner.GetValue(c.key); value != nil {
			if typed, ok := value.(T); ok {
				return typed
			}
		}
	}
	return c.defaultValue
}

// Default returns the context's default value.
func (c *Context[T]) Default() T {
	return c.defaultValue
}
