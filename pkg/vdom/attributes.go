package vdom

import (
	"strconv"
	"strings"
)

// Attribute creates an arbitrary attribute.
func Attribute(key, value string) Attr { return Attr{Key: key, Value: value} }

// Flag creates a valueless attribute, e.g. Flag("morphed-ignore") renders
// as <div morphed-ignore>.
func Flag(key string) Attr { return Attr{Key: key} }

// ID sets the id attribute.
func ID(id string) Attr { return Attribute("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return Attribute("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute (named to avoid conflict with Style element).
func StyleAttr(style string) Attr { return Attribute("style", style) }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return Attribute("data-"+key, value) }

// Role sets the role attribute.
func Role(role string) Attr { return Attribute("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return Attribute("aria-label", label) }

// Href sets the href attribute.
func Href(url string) Attr { return Attribute("href", url) }

// Name sets the name attribute.
func Name(name string) Attr { return Attribute("name", name) }

// Value sets the value attribute.
func Value(value string) Attr { return Attribute("value", value) }

// Type sets the type attribute.
func Type(t string) Attr { return Attribute("type", t) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) Attr { return Attribute("placeholder", text) }

// Disabled sets the disabled boolean attribute.
func Disabled() Attr { return Flag("disabled") }

// Checked sets the checked boolean attribute.
func Checked() Attr { return Flag("checked") }

// Hidden sets the hidden boolean attribute.
func Hidden() Attr { return Flag("hidden") }

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attr { return Attribute("tabindex", strconv.Itoa(index)) }

// ClassIf returns a class attribute if the condition is true.
func ClassIf(condition bool, class string) Attr {
	if condition {
		return Class(class)
	}
	return Attr{}
}

// AttrIf returns the attribute if the condition is true.
func AttrIf(condition bool, a Attr) Attr {
	if condition {
		return a
	}
	return Attr{}
}

// Key creates a reconciliation key. It is stored on VNode.Key and never
// rendered.
func Key(key any) Attr {
	switch k := key.(type) {
	case string:
		return Attr{Key: "key", Value: k}
	case int:
		return Attr{Key: "key", Value: strconv.Itoa(k)}
	default:
		return Attr{Key: "key", Value: toString(k)}
	}
}
