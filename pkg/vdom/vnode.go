package vdom

import "strings"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindInvalid  VKind = iota // Zero value, never a valid node
	KindElement               // <div>, <button>, etc.
	KindText                  // Plain text node
	KindComment               // <!-- comment -->
	KindFragment              // Grouping without wrapper
	KindRaw                   // Raw HTML (dangerous)
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindComment:
		return "Comment"
	case KindFragment:
		return "Fragment"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is a mutable tree node.
//
// Unlike a render-only virtual node, a VNode tree may be the live tree that
// reconciliation rewrites in place, so pointer identity is meaningful.
type VNode struct {
	Kind     VKind    // Node type
	Tag      string   // Element tag name (e.g., "div"), lower case
	Attrs    Attrs    // Element attributes
	Children []*VNode // Child nodes
	Key      string   // Reconciliation key, not rendered
	Text     string   // For KindText, KindComment and KindRaw
}

// Attrs holds element attributes. A valueless attribute such as
// <div hidden> is stored with an empty string value.
type Attrs map[string]string

// NodeName mirrors the DOM nodeName property: the upper-cased tag for
// elements and a "#" name for other kinds. It returns "" for nodes that are
// not recognisable tree nodes (nil, unknown kind or an element without tag).
func (v *VNode) NodeName() string {
	if v == nil {
		return ""
	}
	switch v.Kind {
	case KindElement:
		return strings.ToUpper(v.Tag)
	case KindText:
		return "#text"
	case KindComment:
		return "#comment"
	case KindFragment:
		return "#document-fragment"
	case KindRaw:
		return "#raw"
	default:
		return ""
	}
}

// IsElement reports whether v is an element node.
func (v *VNode) IsElement() bool {
	return v != nil && v.Kind == KindElement
}

// Attr returns the value of the named attribute and whether it is present.
func (v *VNode) Attr(name string) (string, bool) {
	if v == nil || v.Attrs == nil {
		return "", false
	}
	val, ok := v.Attrs[name]
	return val, ok
}

// HasAttr reports whether the named attribute is present, regardless of value.
func (v *VNode) HasAttr(name string) bool {
	_, ok := v.Attr(name)
	return ok
}

// SetAttr sets an attribute, allocating the map on first use.
func (v *VNode) SetAttr(name, value string) {
	if v.Attrs == nil {
		v.Attrs = make(Attrs)
	}
	v.Attrs[name] = value
}

// RemoveAttr deletes an attribute.
func (v *VNode) RemoveAttr(name string) {
	delete(v.Attrs, name)
}

// ID returns the id attribute or "".
func (v *VNode) ID() string {
	id, _ := v.Attr("id")
	return id
}

// SetID sets the id attribute.
func (v *VNode) SetID(id string) {
	v.SetAttr("id", id)
}

// AppendChild adds children to the end of v's child list.
func (v *VNode) AppendChild(children ...*VNode) {
	for _, c := range children {
		if c != nil {
			v.Children = append(v.Children, c)
		}
	}
}

// Attr represents a single attribute passed to an element factory.
type Attr struct {
	Key   string
	Value string
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}
