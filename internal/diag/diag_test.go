package diag

import (
	"strings"
	"testing"
)

// captureSink collects warnings for assertions.
type captureSink struct {
	warnings []Warning
}

func (c *captureSink) Emit(w Warning) {
	c.warnings = append(c.warnings, w)
}

func TestWarnfEmitsToSink(t *testing.T) {
	capture := &captureSink{}
	prev := SetSink(capture)
	defer SetSink(prev)

	Warnf("W101", "group %q flipped modes", "crust")

	if len(capture.warnings) != 1 {
		t.Fatalf("warnings = %d, want 1", len(capture.warnings))
	}
	w := capture.warnings[0]
	if w.Code != "W101" {
		t.Errorf("Code = %q", w.Code)
	}
	if w.Message == "" {
		t.Error("registered code should resolve a message")
	}
	if !strings.Contains(w.Detail, `"crust"`) {
		t.Errorf("Detail = %q", w.Detail)
	}
}

func TestWarningString(t *testing.T) {
	w := Warning{Code: "W102", Message: "msg", Detail: "detail"}
	got := w.String()
	if !strings.HasPrefix(got, "[LUMEN W102]") {
		t.Errorf("String() = %q", got)
	}
	if !strings.Contains(got, "detail") {
		t.Errorf("String() = %q", got)
	}
}

func TestUnregisteredCodeStillEmits(t *testing.T) {
	capture := &captureSink{}
	prev := SetSink(capture)
	defer SetSink(prev)

	Warnf("W999", "something")
	if len(capture.warnings) != 1 {
		t.Fatalf("warnings = %d, want 1", len(capture.warnings))
	}
	if capture.warnings[0].Message != "" {
		t.Errorf("Message = %q, want empty for unregistered code", capture.warnings[0].Message)
	}
}

func TestSetSinkNilRestoresDefault(t *testing.T) {
	prev := SetSink(nil)
	defer SetSink(prev)
	// Emitting through the default sink must not panic.
	Warnf("W104", "no label")
}
