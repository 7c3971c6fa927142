// Package vdom provides the mutable node tree that morphed views own and
// reconcile.
//
// # Core Types
//
// VNode is the fundamental building block representing elements, text,
// comments, fragments and raw HTML. Attrs holds element attributes; a
// valueless attribute (<div morphed-ignore>) is stored with an empty value
// and is still reported by HasAttr.
//
// # Building Trees
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Flag("morphed-ignore"), Text("Left alone")),
//	)
//
// or parsed from HTML with Parse, ParseString and ParseFragment, which use
// golang.org/x/net/html.
//
// # Tree Operations
//
// Clone deep-copies a tree, QueryAll finds descendants (HasAttribute is the
// [name] selector), TextContent and SetText read and replace text,
// SetInnerHTML replaces children from markup. AssignIDs gives ids to marked
// elements using an IDSource.
//
// # Patches
//
// Patch records a change made to a live tree. The morph package produces
// them while reconciling.
package vdom
