package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/bnema/panekit/internal/application/port"
	"github.com/bnema/panekit/internal/domain/entity"
	"github.com/bnema/panekit/internal/logging"
)

var _ port.PaneMutator = (*ManagePanesUseCase)(nil)

// NewUUIDGenerator returns an id generator backed by random UUIDs.
func NewUUIDGenerator() entity.IDGenerator {
	return uuid.NewString
}

// ManagePanesUseCase owns the committed pane tree of one editor session.
// It is the only writer of the tree; callers hold it explicitly instead of
// reaching for shared state. All calls happen on the UI goroutine.
type ManagePanesUseCase struct {
	workspace   *entity.Workspace
	idGenerator entity.IDGenerator
	listeners   []func(root *entity.PaneNode)
}

// NewManagePanesUseCase creates a pane management use case over ws.
func NewManagePanesUseCase(ws *entity.Workspace, idGenerator entity.IDGenerator) *ManagePanesUseCase {
	if idGenerator == nil {
		idGenerator = NewUUIDGenerator()
	}
	return &ManagePanesUseCase{
		workspace:   ws,
		idGenerator: idGenerator,
	}
}

// Workspace returns the workspace the use case mutates.
func (uc *ManagePanesUseCase) Workspace() *entity.Workspace {
	return uc.workspace
}

// Root returns the committed tree.
func (uc *ManagePanesUseCase) Root() *entity.PaneNode {
	return uc.workspace.Root
}

// OnChange registers fn to be called with the new root after every commit
// that changed the tree.
func (uc *ManagePanesUseCase) OnChange(fn func(root *entity.PaneNode)) {
	uc.listeners = append(uc.listeners, fn)
}

// Split replaces the leaf at id with a split holding two copies of its content.
func (uc *ManagePanesUseCase) Split(ctx context.Context, id entity.PaneNodeID, axis entity.Axis, size float64) bool {
	log := logging.FromContext(ctx)

	next := entity.SplitNode(uc.workspace.Root, id, axis, size, uc.idGenerator)
	if !uc.commit(next) {
		log.Debug().Str("pane_id", string(id)).Msg("split ignored: not a leaf")
		return false
	}

	split := next.Find(id)
	if uc.workspace.ActivePaneID == id {
		uc.workspace.ActivePaneID = split.First().ID
	}

	log.Info().
		Str("pane_id", string(id)).
		Str("axis", axis.String()).
		Float64("size", size).
		Str("first_id", string(split.First().ID)).
		Str("second_id", string(split.Second().ID)).
		Msg("pane split completed")

	uc.notify()
	return true
}

// Resize sets the size fraction of the split at id.
func (uc *ManagePanesUseCase) Resize(ctx context.Context, id entity.PaneNodeID, size float64) bool {
	log := logging.FromContext(ctx)

	if !uc.commit(entity.ResizeNode(uc.workspace.Root, id, size)) {
		log.Debug().Str("pane_id", string(id)).Float64("size", size).Msg("resize ignored")
		return false
	}

	log.Debug().Str("pane_id", string(id)).Float64("size", size).Msg("split resized")
	uc.notify()
	return true
}

// Merge collapses the split at parentID onto its direct child remainingID.
// The merged position keeps parentID. If the active pane was discarded the
// selection moves to the merged position.
func (uc *ManagePanesUseCase) Merge(ctx context.Context, parentID, remainingID entity.PaneNodeID) bool {
	log := logging.FromContext(ctx)

	if !uc.commit(entity.MergeNode(uc.workspace.Root, parentID, remainingID)) {
		log.Debug().
			Str("parent_id", string(parentID)).
			Str("remaining_id", string(remainingID)).
			Msg("merge ignored")
		return false
	}

	if uc.workspace.ActivePane() == nil {
		uc.workspace.ActivePaneID = firstLeaf(uc.workspace.FindPane(parentID)).ID
	}

	log.Info().
		Str("parent_id", string(parentID)).
		Str("remaining_id", string(remainingID)).
		Int("pane_count", uc.workspace.PaneCount()).
		Msg("panes merged")

	uc.notify()
	return true
}

// SetContentType changes the view hosted by the leaf at id.
func (uc *ManagePanesUseCase) SetContentType(ctx context.Context, id entity.PaneNodeID, ct entity.ContentType) bool {
	log := logging.FromContext(ctx)

	if !ct.Valid() || !uc.commit(entity.SetContentType(uc.workspace.Root, id, ct)) {
		log.Debug().Str("pane_id", string(id)).Str("content", ct.String()).Msg("content change ignored")
		return false
	}

	log.Debug().Str("pane_id", string(id)).Str("content", ct.String()).Msg("pane content changed")
	uc.notify()
	return true
}

// Focus selects the leaf at id. Returns false when id does not address a leaf.
func (uc *ManagePanesUseCase) Focus(id entity.PaneNodeID) bool {
	node := uc.workspace.FindPane(id)
	if !node.IsLeaf() {
		return false
	}
	uc.workspace.ActivePaneID = id
	return true
}

// FocusNext moves the selection to the next leaf in reading order, wrapping around.
func (uc *ManagePanesUseCase) FocusNext() entity.PaneNodeID {
	leaves := uc.workspace.Root.Leaves()
	if len(leaves) == 0 {
		return uc.workspace.ActivePaneID
	}
	next := leaves[0]
	for i, leaf := range leaves {
		if leaf.ID == uc.workspace.ActivePaneID {
			next = leaves[(i+1)%len(leaves)]
			break
		}
	}
	uc.workspace.ActivePaneID = next.ID
	return next.ID
}

// CloseActive merges the active leaf's parent toward the active leaf's
// sibling, removing the active pane. The root leaf cannot be closed.
func (uc *ManagePanesUseCase) CloseActive(ctx context.Context) bool {
	active := uc.workspace.ActivePaneID
	parent := uc.workspace.Root.Parent(active)
	if parent == nil {
		return false
	}
	sibling := parent.First()
	if sibling.ID == active {
		sibling = parent.Second()
	}
	return uc.Merge(ctx, parent.ID, sibling.ID)
}

// commit installs next as the committed root. Returns false when nothing changed.
func (uc *ManagePanesUseCase) commit(next *entity.PaneNode) bool {
	if next == uc.workspace.Root {
		return false
	}
	uc.workspace.Root = next
	return true
}

func (uc *ManagePanesUseCase) notify() {
	root := uc.workspace.Root
	for _, fn := range uc.listeners {
		fn(root)
	}
}

func firstLeaf(node *entity.PaneNode) *entity.PaneNode {
	for node.IsSplit() {
		node = node.First()
	}
	return node
}
