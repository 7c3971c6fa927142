package morphed

import "github.com/vango-dev/morphed/pkg/vdom"

// DefaultIgnoredAttribute marks subtrees the view never reconciles.
const DefaultIgnoredAttribute = "morphed-ignore"

// DefaultIDPrefix prefixes the ids given to ignored elements.
const DefaultIDPrefix = "morphed-"

// ShouldReconcile reports whether the live node from may be reconciled. It
// is false exactly when from carries the ignored attribute.
func ShouldReconcile(from *vdom.VNode, ignoredAttribute string) bool {
	return !from.HasAttr(ignoredAttribute)
}

// composeBeforeElUpdated wraps a caller hook with the ignore check. The
// check runs first; the caller hook only runs for pairs the check lets
// through, and can still refuse them.
func composeBeforeElUpdated(ignoredAttribute string, next func(from, to *vdom.VNode) bool) func(from, to *vdom.VNode) bool {
	return func(from, to *vdom.VNode) bool {
		if !ShouldReconcile(from, ignoredAttribute) {
			return false
		}
		if next != nil {
			return next(from, to)
		}
		return true
	}
}

// composeBeforeNodeDiscarded wraps a caller hook so ignored live nodes are
// never removed or replaced, even when the candidate has nothing in their
// place or a node of another tag.
func composeBeforeNodeDiscarded(ignoredAttribute string, next func(node *vdom.VNode) bool) func(node *vdom.VNode) bool {
	return func(node *vdom.VNode) bool {
		if node.IsElement() && !ShouldReconcile(node, ignoredAttribute) {
			return false
		}
		if next != nil {
			return next(node)
		}
		return true
	}
}
