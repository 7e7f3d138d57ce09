// Package uitest provides an in-memory harness for mounting components,
// firing events against them, and asserting on their rendered output.
package uitest

import (
	"strings"
	"sync/atomic"
	"testing"

	"github.com/lumen-ui/lumen/pkg/render"
	"github.com/lumen-ui/lumen/pkg/vdom"
)

var harnessIDs atomic.Uint64

func nextHarnessID() uint64 {
	return harnessIDs.Add(1)
}

// RenderToString renders a node to HTML, returning "" on error. Useful
// for one-shot assertions without a harness.
func RenderToString(node *vdom.VNode) string {
	html, err := render.ToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that the rendered output contains the substring.
func ExpectContains(t *testing.T, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that the rendered output lacks the substring.
func ExpectNotContains(t *testing.T, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectAttribute asserts that the rendered output contains attr="value".
func ExpectAttribute(t *testing.T, node *vdom.VNode, attr, value string) {
	t.Helper()
	html := RenderToString(node)
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
