// Package morph reconciles a live vdom tree with a candidate tree in place.
//
// Morph walks both trees together and mutates the live tree as little as
// possible: matching elements keep their identity and only have attributes
// and text rewritten, children are paired by key (the id attribute by
// default) and otherwise by position, and only incompatible nodes are
// replaced. The hook set follows morphdom, so callers can veto updates,
// additions and removals per node:
//
//	res := morph.Morph(live, candidate, morph.Options{
//	    OnBeforeElUpdated: func(from, to *vdom.VNode) bool {
//	        return !from.HasAttr("data-frozen")
//	    },
//	})
//	live = res.Node
//
// Every change is recorded in Result.Patches.
package morph
