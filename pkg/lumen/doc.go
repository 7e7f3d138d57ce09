// Package lumen is the reactive core of the toolkit.
//
// It provides Signal[T] for reactive state, Owner for component scopes and
// cleanup, Context[T] for passing shared state down the view tree, and the
// event structs delivered to vdom event handlers.
//
// Reads of a Signal during a tracked scope (see WithListener) subscribe the
// current listener; writing the signal marks every subscriber dirty. The
// hosting runtime (the live server session or the uitest harness) is the
// listener and re-renders in response.
package lumen
