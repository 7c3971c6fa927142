package morphtest

import (
	"strings"
	"testing"

	"github.com/vango-dev/morphed/pkg/render"
	"github.com/vango-dev/morphed/pkg/vdom"
)

// RenderToString renders a node and returns the HTML string, or "" if
// rendering fails.
//
// Example:
//
//	html := morphtest.RenderToString(view.Node())
func RenderToString(node *vdom.VNode) string {
	html, err := render.RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectHTML asserts that node renders to exactly want.
func ExpectHTML(t testing.TB, node *vdom.VNode, want string) {
	t.Helper()
	if got := RenderToString(node); got != want {
		t.Errorf("rendered output mismatch\n got: %s\nwant: %s", truncate(got, 500), want)
	}
}

// ExpectContains asserts that rendered output contains expected substring.
//
// Example:
//
//	morphtest.ExpectContains(t, view.Node(), "Welcome Admin")
func ExpectContains(t testing.TB, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t testing.TB, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectText asserts the text content of node.
//
// Example:
//
//	morphtest.ExpectText(t, view.Node(), "New Text")
func ExpectText(t testing.TB, node *vdom.VNode, want string) {
	t.Helper()
	if got := node.TextContent(); got != want {
		t.Errorf("text content = %q, want %q", got, want)
	}
}

// ExpectAttribute asserts that node itself carries attr with value.
func ExpectAttribute(t testing.TB, node *vdom.VNode, attr, value string) {
	t.Helper()
	got, ok := node.Attr(attr)
	if !ok {
		t.Errorf("expected attribute %s=%q, attribute missing", attr, value)
		return
	}
	if got != value {
		t.Errorf("attribute %s = %q, want %q", attr, got, value)
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
