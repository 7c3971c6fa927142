package vdom

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// IDSource produces element identifiers.
type IDSource interface {
	Next() string
}

// IDGenerator generates sequential identifiers such as "morphed-1".
type IDGenerator struct {
	prefix  string
	counter uint32
	mu      sync.Mutex
}

// NewIDGenerator creates a new IDGenerator with the given prefix.
func NewIDGenerator(prefix string) *IDGenerator {
	return &IDGenerator{prefix: prefix}
}

// Next returns the next identifier (e.g., "morphed-1", "morphed-2", ...).
func (g *IDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	return fmt.Sprintf("%s%d", g.prefix, g.counter)
}

// Reset resets the counter to 0.
func (g *IDGenerator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter = 0
}

// Current returns the current counter value without incrementing.
func (g *IDGenerator) Current() uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.counter
}

// UUIDGenerator produces random UUID-based identifiers.
type UUIDGenerator struct {
	Prefix string
}

// Next returns Prefix followed by a random version 4 UUID.
func (g UUIDGenerator) Next() string {
	return g.Prefix + uuid.NewString()
}

// CollectIDs returns a map of id to VNode for all elements with an id.
func CollectIDs(node *VNode) map[string]*VNode {
	result := make(map[string]*VNode)
	Walk(node, func(n *VNode) bool {
		if id := n.ID(); id != "" {
			result[id] = n
		}
		return true
	})
	return result
}

// FindByID finds an element by its id in the tree.
func FindByID(node *VNode, id string) *VNode {
	var found *VNode
	Walk(node, func(n *VNode) bool {
		if found != nil {
			return false
		}
		if n.IsElement() && n.ID() == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// AssignIDs gives every descendant of root that carries attr and has no id
// an identifier from gen. Existing ids are left untouched, and generated ids
// already used elsewhere in the tree are skipped. It returns the elements
// that received a new id.
func AssignIDs(root *VNode, attr string, gen IDSource) []*VNode {
	if root == nil {
		return nil
	}
	used := CollectIDs(root)
	var assigned []*VNode
	for _, el := range root.QueryAll(HasAttribute(attr)) {
		if el.ID() != "" {
			continue
		}
		id := gen.Next()
		// Bounded: a source that repeats itself keeps its last id.
		for tries := 0; used[id] != nil && tries <= len(used); tries++ {
			id = gen.Next()
		}
		el.SetID(id)
		used[id] = el
		assigned = append(assigned, el)
	}
	return assigned
}
