package vdom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse reads an HTML fragment and returns its single root element. Leading
// and trailing whitespace text is dropped; more than one top-level element
// is an error, use ParseFragment for those.
func Parse(r io.Reader) (*VNode, error) {
	frag, err := ParseFragment(r)
	if err != nil {
		return nil, err
	}
	var root *VNode
	for _, c := range frag.Children {
		if c.Kind == KindText && strings.TrimSpace(c.Text) == "" {
			continue
		}
		if root != nil {
			return nil, fmt.Errorf("parse: more than one top-level node")
		}
		root = c
	}
	if root == nil {
		return nil, fmt.Errorf("parse: no top-level node")
	}
	return root, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*VNode, error) {
	return Parse(strings.NewReader(s))
}

// MustParse is ParseString that panics on error. Intended for tests and
// static templates.
func MustParse(s string) *VNode {
	n, err := ParseString(s)
	if err != nil {
		panic(err)
	}
	return n
}

// ParseFragment parses HTML in a <body> context and returns the nodes as
// the children of a fragment.
func ParseFragment(r io.Reader) (*VNode, error) {
	return parseFragmentIn(r, &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
}

func parseFragmentIn(r io.Reader, context *html.Node) (*VNode, error) {
	nodes, err := html.ParseFragment(r, context)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	frag := &VNode{Kind: KindFragment, Children: make([]*VNode, 0, len(nodes))}
	for _, n := range nodes {
		if v := fromHTML(n); v != nil {
			frag.Children = append(frag.Children, v)
		}
	}
	return frag, nil
}

// SetInnerHTML replaces the children of an element with the parsed markup,
// like assigning innerHTML in the DOM.
func (v *VNode) SetInnerHTML(markup string) error {
	if !v.IsElement() {
		return fmt.Errorf("set inner html: %s is not an element", v.Kind)
	}
	ctx := &html.Node{Type: html.ElementNode, Data: v.Tag, DataAtom: atom.Lookup([]byte(v.Tag))}
	frag, err := parseFragmentIn(strings.NewReader(markup), ctx)
	if err != nil {
		return err
	}
	v.Children = frag.Children
	return nil
}

// FromHTML converts an x/net/html node tree into a VNode tree.
func FromHTML(n *html.Node) *VNode {
	return fromHTML(n)
}

func fromHTML(n *html.Node) *VNode {
	switch n.Type {
	case html.ElementNode:
		v := &VNode{
			Kind:     KindElement,
			Tag:      n.Data,
			Attrs:    make(Attrs, len(n.Attr)),
			Children: make([]*VNode, 0),
		}
		for _, a := range n.Attr {
			name := a.Key
			if a.Namespace != "" {
				name = a.Namespace + ":" + a.Key
			}
			v.Attrs[name] = a.Val
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := fromHTML(c); child != nil {
				v.Children = append(v.Children, child)
			}
		}
		return v
	case html.TextNode:
		return Text(n.Data)
	case html.CommentNode:
		return Comment(n.Data)
	case html.DocumentNode:
		frag := &VNode{Kind: KindFragment, Children: make([]*VNode, 0)}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := fromHTML(c); child != nil {
				frag.Children = append(frag.Children, child)
			}
		}
		return frag
	default:
		// Doctype and raw nodes carry nothing reconcilable.
		return nil
	}
}
