package entity

import "time"

// WorkspaceID uniquely identifies an editor session's layout.
type WorkspaceID string

// Workspace holds the committed pane tree of one editor session together
// with the pane the user last selected. The selection is referenced by id
// only, which is why merges keep the parent id at the merged position.
type Workspace struct {
	ID           WorkspaceID
	Root         *PaneNode
	ActivePaneID PaneNodeID
	CreatedAt    time.Time
}

// NewWorkspace creates a workspace whose tree is a single root leaf.
func NewWorkspace(id WorkspaceID, initial ContentType) *Workspace {
	return &Workspace{
		ID:           id,
		Root:         NewRootLayout(initial),
		ActivePaneID: RootPaneID,
		CreatedAt:    time.Now(),
	}
}

// PaneCount returns the number of leaf panes in the workspace.
func (w *Workspace) PaneCount() int {
	if w.Root == nil {
		return 0
	}
	return w.Root.LeafCount()
}

// FindPane searches for a node by id in the workspace.
func (w *Workspace) FindPane(id PaneNodeID) *PaneNode {
	if w.Root == nil {
		return nil
	}
	return w.Root.Find(id)
}

// ActivePane returns the currently selected node, or nil if the id no longer resolves.
func (w *Workspace) ActivePane() *PaneNode {
	return w.FindPane(w.ActivePaneID)
}
