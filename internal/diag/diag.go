// Package diag emits coded development-time diagnostics for widget usage
// errors. Diagnostics are warnings, never failures: they describe a
// misuse the widget has already recovered from.
package diag

import (
	"fmt"
	"log"
	"sync"
)

// Warning is a single emitted diagnostic.
type Warning struct {
	// Code is the unique diagnostic identifier (e.g. "W101").
	Code string

	// Message is the registered short description.
	Message string

	// Detail is the call-site specific explanation.
	Detail string
}

// String formats the warning the way it appears in logs.
func (w Warning) String() string {
	if w.Detail != "" {
		return fmt.Sprintf("[LUMEN %s] %s: %s", w.Code, w.Message, w.Detail)
	}
	return fmt.Sprintf("[LUMEN %s] %s", w.Code, w.Message)
}

// Sink receives emitted warnings. The default sink writes to the standard
// logger; tests install their own to assert on emissions.
type Sink interface {
	Emit(Warning)
}

type logSink struct{}

func (logSink) Emit(w Warning) {
	log.Print(w.String())
}

var (
	sinkMu sync.RWMutex
	sink   Sink = logSink{}
)

// SetSink replaces the global sink and returns the previous one.
func SetSink(s Sink) Sink {
	sinkMu.Lock()
	defer sinkMu.Unlock()
	prev := sink
	if s == nil {
		s = logSink{}
	}
	sink = s
	return prev
}

// Warnf emits the registered diagnostic for code with a formatted detail.
// Unregistered codes still emit, with an empty message.
func Warnf(code, format string, args ...any) {
	w := Warning{
		Code:    code,
		Message: registry[code],
		Detail:  fmt.Sprintf(format, args...),
	}

	sinkMu.RLock()
	s := sink
	sinkMu.RUnlock()
	s.Emit(w)
}
