package vdom

import (
	"fmt"
	"strings"
)

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// Comment creates a comment node.
func Comment(content string) *VNode {
	return &VNode{
		Kind: KindComment,
		Text: content,
	}
}

// Raw creates an unescaped HTML node.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(html string) *VNode {
	return &VNode{
		Kind: KindRaw,
		Text: html,
	}
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *VNode {
	node := &VNode{
		Kind:     KindFragment,
		Children: make([]*VNode, 0),
	}

	for _, child := range children {
		switch v := child.(type) {
		case nil:
			continue
		case *VNode:
			node.AppendChild(v)
		case []*VNode:
			node.AppendChild(v...)
		case string:
			node.Children = append(node.Children, Text(v))
		}
	}

	return node
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *VNode) *VNode {
	if condition {
		return node
	}
	return nil
}

// Range maps a slice to VNodes.
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	result := make([]*VNode, 0, len(items))
	for i, item := range items {
		node := fn(item, i)
		if node != nil {
			result = append(result, node)
		}
	}
	return result
}

// Clone returns a deep copy of the tree rooted at v.
func (v *VNode) Clone() *VNode {
	if v == nil {
		return nil
	}
	out := &VNode{
		Kind: v.Kind,
		Tag:  v.Tag,
		Key:  v.Key,
		Text: v.Text,
	}
	if v.Attrs != nil {
		out.Attrs = make(Attrs, len(v.Attrs))
		for k, val := range v.Attrs {
			out.Attrs[k] = val
		}
	}
	if v.Children != nil {
		out.Children = make([]*VNode, len(v.Children))
		for i, c := range v.Children {
			out.Children[i] = c.Clone()
		}
	}
	return out
}

// Walk visits v and its descendants in document order. Returning false from
// fn stops descent into that node's children.
func Walk(v *VNode, fn func(*VNode) bool) {
	if v == nil {
		return
	}
	if !fn(v) {
		return
	}
	for _, c := range v.Children {
		Walk(c, fn)
	}
}

// Matcher selects nodes in QueryAll.
type Matcher func(*VNode) bool

// HasAttribute matches elements carrying the named attribute, the
// equivalent of the CSS selector [name].
func HasAttribute(name string) Matcher {
	return func(n *VNode) bool {
		return n.IsElement() && n.HasAttr(name)
	}
}

// TagIs matches elements by tag name.
func TagIs(tag string) Matcher {
	tag = strings.ToLower(tag)
	return func(n *VNode) bool {
		return n.IsElement() && n.Tag == tag
	}
}

// QueryAll returns every descendant of v (v itself excluded) matching m,
// in document order.
func (v *VNode) QueryAll(m Matcher) []*VNode {
	var out []*VNode
	if v == nil {
		return out
	}
	for _, c := range v.Children {
		Walk(c, func(n *VNode) bool {
			if m(n) {
				out = append(out, n)
			}
			return true
		})
	}
	return out
}

// Query returns the first descendant matching m, or nil.
func (v *VNode) Query(m Matcher) *VNode {
	if v == nil {
		return nil
	}
	var found *VNode
	for _, c := range v.Children {
		Walk(c, func(n *VNode) bool {
			if found != nil {
				return false
			}
			if m(n) {
				found = n
				return false
			}
			return true
		})
		if found != nil {
			break
		}
	}
	return found
}

// TextContent returns the concatenated text of v and its descendants.
func (v *VNode) TextContent() string {
	if v == nil {
		return ""
	}
	switch v.Kind {
	case KindText:
		return v.Text
	case KindComment, KindRaw:
		return ""
	}
	var b strings.Builder
	for _, c := range v.Children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}

// SetText replaces all children of v with a single text node, like
// assigning textContent in the DOM. For text nodes it sets the text.
func (v *VNode) SetText(s string) {
	if v.Kind == KindText || v.Kind == KindComment || v.Kind == KindRaw {
		v.Text = s
		return
	}
	if s == "" {
		v.Children = nil
		return
	}
	v.Children = []*VNode{Text(s)}
}

// Equal reports whether a and b describe the same tree. Identity is not
// compared, only kind, tag, key, text, attributes and children.
func Equal(a, b *VNode) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Tag != b.Tag || a.Key != b.Key || a.Text != b.Text {
		return false
	}
	if len(a.Attrs) != len(b.Attrs) {
		return false
	}
	for k, av := range a.Attrs {
		if bv, ok := b.Attrs[k]; !ok || bv != av {
			return false
		}
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

func toString(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", v)
}
