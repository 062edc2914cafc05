// Package entity contains domain entities representing core business concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import (
	"errors"
	"fmt"
	"strings"
)

// PaneNodeID uniquely identifies a node within a pane tree.
type PaneNodeID string

// RootPaneID is the id given to the single leaf a layout starts with.
const RootPaneID PaneNodeID = "root"

// ContentType is the kind of editor view a leaf pane hosts.
type ContentType int

const (
	ContentTimeline ContentType = iota
	ContentGraphEditor
	ContentNodeInspector
	ContentPianoRoll
)

var contentTypeNames = map[ContentType]string{
	ContentTimeline:      "Timeline",
	ContentGraphEditor:   "Graph Editor",
	ContentNodeInspector: "Node Inspector",
	ContentPianoRoll:     "Piano Roll",
}

// AllContentTypes returns every content type in selector order.
func AllContentTypes() []ContentType {
	return []ContentType{ContentTimeline, ContentGraphEditor, ContentNodeInspector, ContentPianoRoll}
}

func (c ContentType) String() string {
	if name, ok := contentTypeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ContentType(%d)", int(c))
}

// Valid reports whether c is one of the known content types.
func (c ContentType) Valid() bool {
	_, ok := contentTypeNames[c]
	return ok
}

// Next returns the content type following c in selector order, wrapping around.
func (c ContentType) Next() ContentType {
	all := AllContentTypes()
	for i, ct := range all {
		if ct == c {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

// ParseContentType accepts display names ("Graph Editor") as well as
// config-style keys ("graph_editor", "grapheditor").
func ParseContentType(s string) (ContentType, error) {
	key := normalizeContentKey(s)
	for ct, name := range contentTypeNames {
		if normalizeContentKey(name) == key {
			return ct, nil
		}
	}
	return 0, fmt.Errorf("unknown content type %q", s)
}

func normalizeContentKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(s)
}

// Axis indicates how a split node divides its box.
type Axis int

const (
	AxisHorizontal Axis = iota // Divides width, children sit left/right
	AxisVertical               // Divides height, children sit top/bottom
)

func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// PaneNode is a node in the pane tree. It is either:
//   - Leaf node: hosts one content view, no children
//   - Split node: exactly two ordered children, an axis and a size fraction
//
// Nodes are treated as immutable once they are reachable from a committed
// root. All changes go through UpdateNode, which copies the path to the
// target and shares every other subtree.
type PaneNode struct {
	ID PaneNodeID

	// Leaf
	ContentType ContentType

	// Split
	Axis     Axis
	Children []*PaneNode
	Size     float64 // Fraction of the main-axis extent given to Children[0]
}

// NewLeaf creates a leaf node.
func NewLeaf(id PaneNodeID, ct ContentType) *PaneNode {
	return &PaneNode{ID: id, ContentType: ct}
}

// NewSplit creates a split node with two children.
func NewSplit(id PaneNodeID, axis Axis, size float64, first, second *PaneNode) *PaneNode {
	return &PaneNode{
		ID:       id,
		Axis:     axis,
		Children: []*PaneNode{first, second},
		Size:     size,
	}
}

// NewRootLayout returns the single-leaf tree an editor session starts with.
func NewRootLayout(ct ContentType) *PaneNode {
	return NewLeaf(RootPaneID, ct)
}

// IsLeaf returns true if this node has no children.
func (n *PaneNode) IsLeaf() bool {
	return n != nil && len(n.Children) == 0
}

// IsSplit returns true if this node splits into two children.
func (n *PaneNode) IsSplit() bool {
	return n != nil && len(n.Children) == 2
}

// First returns the left/top child of a split node.
func (n *PaneNode) First() *PaneNode {
	if n.IsSplit() {
		return n.Children[0]
	}
	return nil
}

// Second returns the right/bottom child of a split node.
func (n *PaneNode) Second() *PaneNode {
	if n.IsSplit() {
		return n.Children[1]
	}
	return nil
}

// shallowCopy returns a copy of n whose Children slice is fresh but whose
// children are shared.
func (n *PaneNode) shallowCopy() *PaneNode {
	cp := *n
	if n.Children != nil {
		cp.Children = append([]*PaneNode(nil), n.Children...)
	}
	return &cp
}

// Walk traverses the tree depth-first calling fn for each node. Returns early if fn returns false.
func (n *PaneNode) Walk(fn func(*PaneNode) bool) {
	n.walk(fn)
}

func (n *PaneNode) walk(fn func(*PaneNode) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.walk(fn) {
			return false
		}
	}
	return true
}

// Find searches the tree for the node with the given id.
func (n *PaneNode) Find(id PaneNodeID) *PaneNode {
	var found *PaneNode
	n.Walk(func(node *PaneNode) bool {
		if node.ID == id {
			found = node
			return false
		}
		return true
	})
	return found
}

// Parent returns the split whose direct child has the given id.
func (n *PaneNode) Parent(id PaneNodeID) *PaneNode {
	var parent *PaneNode
	n.Walk(func(node *PaneNode) bool {
		for _, child := range node.Children {
			if child.ID == id {
				parent = node
				return false
			}
		}
		return true
	})
	return parent
}

// LeafCount returns the number of leaf nodes in the tree.
func (n *PaneNode) LeafCount() int {
	count := 0
	n.Walk(func(node *PaneNode) bool {
		if node.IsLeaf() {
			count++
		}
		return true
	})
	return count
}

// Leaves returns the leaf nodes in left-to-right, top-to-bottom order.
func (n *PaneNode) Leaves() []*PaneNode {
	var leaves []*PaneNode
	n.Walk(func(node *PaneNode) bool {
		if node.IsLeaf() {
			leaves = append(leaves, node)
		}
		return true
	})
	return leaves
}

// IDs returns every node id in depth-first order, duplicates included.
func (n *PaneNode) IDs() []PaneNodeID {
	var ids []PaneNodeID
	n.Walk(func(node *PaneNode) bool {
		ids = append(ids, node.ID)
		return true
	})
	return ids
}

// Equal reports whether two trees have the same ids, variants, content
// types, axes, sizes and shape.
func (n *PaneNode) Equal(other *PaneNode) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.ID != other.ID || len(n.Children) != len(other.Children) {
		return false
	}
	if n.IsLeaf() {
		return n.ContentType == other.ContentType
	}
	if n.Axis != other.Axis || n.Size != other.Size {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// ErrDuplicateID is returned by Validate when an id appears twice.
var ErrDuplicateID = errors.New("duplicate pane node id")

// ErrMalformedNode is returned by Validate for nodes that are neither a leaf nor a two-child split.
var ErrMalformedNode = errors.New("malformed pane node")

// Validate checks the structural invariants: ids are unique and every node
// is either a leaf or a split with exactly two non-nil children.
func (n *PaneNode) Validate() error {
	if n == nil {
		return fmt.Errorf("%w: nil root", ErrMalformedNode)
	}
	seen := make(map[PaneNodeID]struct{})
	var err error
	n.Walk(func(node *PaneNode) bool {
		if _, dup := seen[node.ID]; dup {
			err = fmt.Errorf("%w: %q", ErrDuplicateID, node.ID)
			return false
		}
		seen[node.ID] = struct{}{}

		switch len(node.Children) {
		case 0:
		case 2:
			if node.Children[0] == nil || node.Children[1] == nil {
				err = fmt.Errorf("%w: split %q has a nil child", ErrMalformedNode, node.ID)
				return false
			}
		default:
			err = fmt.Errorf("%w: %q has %d children", ErrMalformedNode, node.ID, len(node.Children))
			return false
		}
		return true
	})
	return err
}
