package morph

import (
	"slices"
	"sort"
	"strconv"

	"github.com/vango-dev/morphed/pkg/vdom"
)

// Result is the outcome of a morph pass.
type Result struct {
	// Node is the live root after morphing. It is the original root unless
	// the root itself had to be replaced.
	Node *vdom.VNode

	// Patches lists every change applied, in application order.
	Patches []vdom.Patch

	// Skipped counts element pairs that OnBeforeElUpdated refused.
	Skipped int
}

// Morph rewrites the live tree from in place until it matches to.
//
// Nodes of the candidate tree that have no live counterpart are adopted
// into the live tree as they are, so to must not be reused after the call.
func Morph(from, to *vdom.VNode, opts Options) Result {
	if from == nil {
		return Result{Node: to}
	}
	if to == nil || from == to {
		return Result{Node: from}
	}

	m := &morpher{opts: opts.withDefaults()}
	var node *vdom.VNode
	if m.opts.ChildrenOnly {
		m.morphChildren(from, to, "")
		node = from
	} else {
		node = m.morphNode(from, to, "")
	}

	return Result{
		Node:    node,
		Patches: m.patches,
		Skipped: m.skipped,
	}
}

// morpher carries the state of one pass.
type morpher struct {
	opts    Options
	patches []vdom.Patch
	skipped int
}

func (m *morpher) record(p vdom.Patch) {
	m.patches = append(m.patches, p)
}

// compatible reports whether from can be morphed into to rather than
// replaced by it.
func compatible(from, to *vdom.VNode) bool {
	if from.Kind != to.Kind {
		return false
	}
	if from.Kind == vdom.KindElement {
		return from.Tag == to.Tag
	}
	return true
}

// morphNode morphs from into to and returns the node that takes from's
// place in the live tree.
func (m *morpher) morphNode(from, to *vdom.VNode, path string) *vdom.VNode {
	if !compatible(from, to) {
		if m.opts.OnBeforeNodeDiscarded != nil && !m.opts.OnBeforeNodeDiscarded(from) {
			m.skipped++
			return from
		}
		m.record(vdom.Patch{
			Op:   vdom.PatchReplaceNode,
			Path: path,
			Node: to,
		})
		if m.opts.OnNodeDiscarded != nil {
			m.opts.OnNodeDiscarded(from)
		}
		if m.opts.OnNodeAdded != nil {
			m.opts.OnNodeAdded(to)
		}
		return to
	}

	switch from.Kind {
	case vdom.KindElement:
		m.morphElement(from, to, path)
	case vdom.KindText, vdom.KindComment, vdom.KindRaw:
		if from.Text != to.Text {
			from.Text = to.Text
			m.record(vdom.Patch{
				Op:    vdom.PatchSetText,
				Path:  path,
				Value: to.Text,
			})
		}
	case vdom.KindFragment:
		m.morphChildren(from, to, path)
	}
	return from
}

// morphElement morphs two elements with the same tag.
func (m *morpher) morphElement(from, to *vdom.VNode, path string) {
	if m.opts.OnBeforeElUpdated != nil && !m.opts.OnBeforeElUpdated(from, to) {
		m.skipped++
		return
	}

	m.morphAttrs(from, to, path)
	from.Key = to.Key

	if m.opts.OnBeforeElChildrenUpdated == nil || m.opts.OnBeforeElChildrenUpdated(from, to) {
		m.morphChildren(from, to, path)
	}

	if m.opts.OnElUpdated != nil {
		m.opts.OnElUpdated(from)
	}
}

// morphAttrs copies added and changed attributes from to onto from and
// removes the ones to no longer has.
func (m *morpher) morphAttrs(from, to *vdom.VNode, path string) {
	for _, key := range sortedKeys(to.Attrs) {
		val := to.Attrs[key]
		if cur, ok := from.Attrs[key]; ok && cur == val {
			continue
		}
		from.SetAttr(key, val)
		m.record(vdom.Patch{
			Op:    vdom.PatchSetAttr,
			Path:  path,
			Key:   key,
			Value: val,
		})
	}

	for _, key := range sortedKeys(from.Attrs) {
		if _, ok := to.Attrs[key]; ok {
			continue
		}
		from.RemoveAttr(key)
		m.record(vdom.Patch{
			Op:   vdom.PatchRemoveAttr,
			Path: path,
			Key:  key,
		})
	}
}

// morphChildren reconciles the child lists of from and to.
//
// Keyed candidates pair only with the live sibling carrying the same key.
// Unkeyed candidates pair with the next unused, unkeyed, compatible live
// sibling in order. Unpaired candidates are inserted and unpaired live
// nodes are discarded. A live node OnBeforeNodeDiscarded keeps stays at
// its old index, or last when fewer children remain. Patch indexes count
// candidate positions only.
func (m *morpher) morphChildren(from, to *vdom.VNode, path string) {
	live := from.Children
	keyed := make(map[string]int)
	for i, c := range live {
		if k := m.opts.GetNodeKey(c); k != "" {
			if _, dup := keyed[k]; !dup {
				keyed[k] = i
			}
		}
	}

	used := make([]bool, len(live))
	next := make([]*vdom.VNode, 0, len(to.Children))
	cursor := 0

	for _, cand := range to.Children {
		match := -1
		if k := m.opts.GetNodeKey(cand); k != "" {
			if j, ok := keyed[k]; ok && !used[j] && compatible(live[j], cand) {
				match = j
			}
		} else {
			for j := cursor; j < len(live); j++ {
				if used[j] || m.opts.GetNodeKey(live[j]) != "" {
					continue
				}
				if compatible(live[j], cand) {
					match = j
					cursor = j + 1
					break
				}
			}
		}

		pos := len(next)
		if match < 0 {
			if m.opts.OnBeforeNodeAdded != nil && !m.opts.OnBeforeNodeAdded(cand) {
				continue
			}
			next = append(next, cand)
			m.record(vdom.Patch{
				Op:    vdom.PatchInsertNode,
				Path:  path,
				Index: pos,
				Node:  cand,
			})
			if m.opts.OnNodeAdded != nil {
				m.opts.OnNodeAdded(cand)
			}
			continue
		}

		used[match] = true
		if match != pos {
			m.record(vdom.Patch{
				Op:    vdom.PatchMoveNode,
				Path:  childPath(path, match),
				Index: pos,
			})
		}
		next = append(next, m.morphNode(live[match], cand, childPath(path, pos)))
	}

	for j, c := range live {
		if used[j] {
			continue
		}
		if m.opts.OnBeforeNodeDiscarded != nil && !m.opts.OnBeforeNodeDiscarded(c) {
			next = slices.Insert(next, min(j, len(next)), c)
			continue
		}
		m.record(vdom.Patch{
			Op:   vdom.PatchRemoveNode,
			Path: childPath(path, j),
		})
		if m.opts.OnNodeDiscarded != nil {
			m.opts.OnNodeDiscarded(c)
		}
	}

	from.Children = next
}

func childPath(parent string, index int) string {
	if parent == "" {
		return strconv.Itoa(index)
	}
	return parent + "/" + strconv.Itoa(index)
}

func sortedKeys(attrs vdom.Attrs) []string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
