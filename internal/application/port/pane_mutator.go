package port

import (
	"context"

	"github.com/bnema/panekit/internal/domain/entity"
)

//go:generate mockgen -source=pane_mutator.go -destination=mocks/mock_pane_mutator.go -package=mocks

// PaneMutator is the mutation surface of one editor session's pane tree.
// Every method reports whether the committed tree changed; an unknown id or
// a call on the wrong node variant returns false without error.
type PaneMutator interface {
	// Root returns the committed tree.
	Root() *entity.PaneNode
	// Split turns the leaf at id into a split with two fresh leaves.
	Split(ctx context.Context, id entity.PaneNodeID, axis entity.Axis, size float64) bool
	// Resize sets the size fraction of the split at id.
	Resize(ctx context.Context, id entity.PaneNodeID, size float64) bool
	// Merge collapses the split at parentID onto its direct child remainingID.
	Merge(ctx context.Context, parentID, remainingID entity.PaneNodeID) bool
	// SetContentType changes what the leaf at id displays.
	SetContentType(ctx context.Context, id entity.PaneNodeID, ct entity.ContentType) bool
}
