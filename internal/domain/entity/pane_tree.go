package entity

// IDGenerator mints fresh pane node ids.
type IDGenerator func() string

// UpdateNode applies transform to the node whose id equals targetID and
// returns the new root. Ancestors of the target are shallow-copied to point
// at the new subtree; every other node is shared with the original tree.
// When targetID is absent the original root is returned as is.
func UpdateNode(root *PaneNode, targetID PaneNodeID, transform func(*PaneNode) *PaneNode) *PaneNode {
	if root == nil {
		return nil
	}
	if root.ID == targetID {
		return transform(root)
	}
	if !root.IsSplit() {
		return root
	}

	first := UpdateNode(root.Children[0], targetID, transform)
	second := UpdateNode(root.Children[1], targetID, transform)
	if first == root.Children[0] && second == root.Children[1] {
		return root
	}

	cp := root.shallowCopy()
	cp.Children[0] = first
	cp.Children[1] = second
	return cp
}

// SplitNode replaces the leaf at id with a split that keeps the leaf's id and
// holds two fresh leaves carrying the original content type. Splitting a
// split is a no-op.
func SplitNode(root *PaneNode, id PaneNodeID, axis Axis, size float64, newID IDGenerator) *PaneNode {
	return UpdateNode(root, id, func(node *PaneNode) *PaneNode {
		if !node.IsLeaf() {
			return node
		}
		return NewSplit(node.ID, axis, size,
			NewLeaf(PaneNodeID(newID()), node.ContentType),
			NewLeaf(PaneNodeID(newID()), node.ContentType),
		)
	})
}

// ResizeNode sets the size fraction of the split at id. No clamping happens
// here. Resizing a leaf is a no-op.
func ResizeNode(root *PaneNode, id PaneNodeID, size float64) *PaneNode {
	return UpdateNode(root, id, func(node *PaneNode) *PaneNode {
		if !node.IsSplit() || node.Size == size {
			return node
		}
		cp := node.shallowCopy()
		cp.Size = size
		return cp
	})
}

// MergeNode replaces the split at parentID with the subtree of its direct
// child remainingID, re-labelled with parentID. The other child's subtree is
// dropped. A remainingID that is not a direct child makes this a no-op.
func MergeNode(root *PaneNode, parentID, remainingID PaneNodeID) *PaneNode {
	return UpdateNode(root, parentID, func(node *PaneNode) *PaneNode {
		if !node.IsSplit() {
			return node
		}
		for _, child := range node.Children {
			if child.ID == remainingID {
				survivor := child.shallowCopy()
				survivor.ID = parentID
				return survivor
			}
		}
		return node
	})
}

// SetContentType changes the content type of the leaf at id without
// touching structure. Called on a split it is a no-op.
func SetContentType(root *PaneNode, id PaneNodeID, ct ContentType) *PaneNode {
	return UpdateNode(root, id, func(node *PaneNode) *PaneNode {
		if !node.IsLeaf() || node.ContentType == ct {
			return node
		}
		cp := node.shallowCopy()
		cp.ContentType = ct
		return cp
	})
}
