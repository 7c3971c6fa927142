package morphed

import "github.com/vango-dev/morphed/pkg/vdom"

// UpdateFunc produces the candidate tree for a state.
//
// In clone mode node is a fresh copy of the template tree; the function
// mutates it in place and its returned node is ignored. In pure mode node
// is nil and the returned node is the candidate. A returned error aborts
// the pass and is handed back to the caller unchanged.
type UpdateFunc func(node *vdom.VNode, state State) (*vdom.VNode, error)

// Mutate adapts an in-place mutation for clone mode.
//
//	view, err := morphed.New(root, morphed.Mutate(func(n *vdom.VNode, s morphed.State) {
//	    n.SetText(s.String("title"))
//	}))
func Mutate(fn func(node *vdom.VNode, state State)) UpdateFunc {
	if fn == nil {
		return nil
	}
	return func(node *vdom.VNode, state State) (*vdom.VNode, error) {
		fn(node, state)
		return node, nil
	}
}

// Render adapts a tree-returning function for pure mode.
//
//	view, err := morphed.New(root, morphed.Render(func(s morphed.State) *vdom.VNode {
//	    return vdom.Div(vdom.Text(s.String("title")))
//	}), morphed.WithClone(false))
func Render(fn func(state State) *vdom.VNode) UpdateFunc {
	if fn == nil {
		return nil
	}
	return func(_ *vdom.VNode, state State) (*vdom.VNode, error) {
		return fn(state), nil
	}
}
