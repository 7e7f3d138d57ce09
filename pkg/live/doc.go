// Package live serves components over HTTP and keeps them interactive
// through a WebSocket connection.
//
// Each connection gets a Session with its own event loop goroutine. The
// client sends event frames (clicks, key presses) addressed by the
// node ids the renderer stamped into the markup; the session dispatches
// them into the component's handlers, re-renders when reactive state
// changed, and answers with swap frames carrying the new HTML plus focus
// frames when a component requested focus.
//
// The HTTP surface is a chi router: the page shell, the WebSocket
// endpoint, a Prometheus metrics endpoint, and a health check. Event
// handling is measured with Prometheus metrics and traced with
// OpenTelemetry spans.
package live
