package live

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsObservations(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg), WithNamespace("t"), WithSubsystem("live"))

	m.sessionStarted()
	m.observeEvent("onclick", 5*time.Millisecond)
	m.observeEvent("onclick", 5*time.Millisecond)
	m.observeSwap()
	m.observeFocus()
	m.observeError(ErrNoHandler)
	m.sessionEnded()

	if got := testutil.ToFloat64(m.eventsTotal.WithLabelValues("onclick")); got != 2 {
		t.Errorf("events_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.swapsSent); got != 1 {
		t.Errorf("swaps_sent_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.focusSent); got != 1 {
		t.Errorf("focus_sent_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.eventErrors.WithLabelValues(ErrNoHandler)); got != 1 {
		t.Errorf("event_errors_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.activeSessions); got != 0 {
		t.Errorf("active_sessions = %v, want 0", got)
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	m.sessionStarted()
	m.observeEvent("onclick", time.Millisecond)
	m.observeSwap()
	m.observeFocus()
	m.observeError(ErrBadFrame)
	m.sessionEnded()
}
