package vdom

import "encoding/json"

// PatchOp is the type of a recorded tree change.
type PatchOp uint8

const (
	PatchSetText     PatchOp = 0x01 // Update text content
	PatchSetAttr     PatchOp = 0x02 // Set/update attribute
	PatchRemoveAttr  PatchOp = 0x03 // Remove attribute
	PatchInsertNode  PatchOp = 0x04 // Insert new node
	PatchRemoveNode  PatchOp = 0x05 // Remove node
	PatchMoveNode    PatchOp = 0x06 // Move node to new position
	PatchReplaceNode PatchOp = 0x07 // Replace node entirely
)

// String returns the string representation of the PatchOp.
func (op PatchOp) String() string {
	switch op {
	case PatchSetText:
		return "SetText"
	case PatchSetAttr:
		return "SetAttr"
	case PatchRemoveAttr:
		return "RemoveAttr"
	case PatchInsertNode:
		return "InsertNode"
	case PatchRemoveNode:
		return "RemoveNode"
	case PatchMoveNode:
		return "MoveNode"
	case PatchReplaceNode:
		return "ReplaceNode"
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (op PatchOp) MarshalText() ([]byte, error) {
	return []byte(op.String()), nil
}

// Patch records a single change applied to a live tree.
//
// Path addresses the target as slash-separated child indexes from the root
// ("" is the root, "0/2" the third child of the first child), measured in
// the tree as it was being rewritten.
type Patch struct {
	Op    PatchOp `json:"op"`
	Path  string  `json:"path"`
	Key   string  `json:"key,omitempty"`   // Attribute name (SetAttr/RemoveAttr)
	Value string  `json:"value,omitempty"` // New text or attribute value
	Index int     `json:"index,omitempty"` // Position for InsertNode/MoveNode
	Node  *VNode  `json:"-"`               // For InsertNode/ReplaceNode
}

// CountByOp tallies patches per operation.
func CountByOp(patches []Patch) map[PatchOp]int {
	out := make(map[PatchOp]int)
	for _, p := range patches {
		out[p.Op]++
	}
	return out
}

// MarshalPatches encodes patches as indented JSON.
func MarshalPatches(patches []Patch) ([]byte, error) {
	if patches == nil {
		patches = []Patch{}
	}
	return json.MarshalIndent(patches, "", "  ")
}
