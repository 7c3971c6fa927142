package morph

import "github.com/vango-dev/morphed/pkg/vdom"

// Options configures a morph pass. Every hook is optional; the zero value
// morphs the whole tree with id-based keys.
type Options struct {
	// ChildrenOnly morphs only the children of the root, leaving the root
	// element's own attributes alone.
	ChildrenOnly bool

	// GetNodeKey returns the matching key of a node. Siblings with equal
	// keys are paired regardless of position. Default: the id attribute,
	// falling back to VNode.Key.
	GetNodeKey func(node *vdom.VNode) string

	// OnBeforeElUpdated is called for each matched element pair before it
	// is morphed. Returning false leaves the live element and its whole
	// subtree untouched.
	OnBeforeElUpdated func(from, to *vdom.VNode) bool

	// OnElUpdated is called after an element has been morphed.
	OnElUpdated func(el *vdom.VNode)

	// OnBeforeElChildrenUpdated is called after attributes were morphed and
	// before children are. Returning false skips only the children.
	OnBeforeElChildrenUpdated func(from, to *vdom.VNode) bool

	// OnBeforeNodeAdded is called before a candidate node is inserted into
	// the live tree. Returning false drops it.
	OnBeforeNodeAdded func(node *vdom.VNode) bool

	// OnNodeAdded is called after a node was inserted.
	OnNodeAdded func(node *vdom.VNode)

	// OnBeforeNodeDiscarded is called before a live node is removed, either
	// because no candidate pairs with it or because the candidate in its
	// place has a different kind or tag. Returning false keeps it.
	OnBeforeNodeDiscarded func(node *vdom.VNode) bool

	// OnNodeDiscarded is called after a node was removed.
	OnNodeDiscarded func(node *vdom.VNode)
}

// DefaultNodeKey is the key function used when Options.GetNodeKey is nil.
func DefaultNodeKey(node *vdom.VNode) string {
	if !node.IsElement() {
		return ""
	}
	if id := node.ID(); id != "" {
		return id
	}
	return node.Key
}

func (o Options) withDefaults() Options {
	if o.GetNodeKey == nil {
		o.GetNodeKey = DefaultNodeKey
	}
	return o
}
