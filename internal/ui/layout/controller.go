package layout

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/panekit/internal/application/port"
	"github.com/bnema/panekit/internal/domain/entity"
	"github.com/bnema/panekit/internal/logging"
)

// State is the controller's interaction state.
type State int

const (
	StateIdle State = iota
	StatePreviewing
)

func (s State) String() string {
	if s == StatePreviewing {
		return "previewing"
	}
	return "idle"
}

// PreviewKind distinguishes the two gestures a preview can belong to.
type PreviewKind int

const (
	PreviewSplitting PreviewKind = iota
	PreviewResizing
)

func (k PreviewKind) String() string {
	if k == PreviewResizing {
		return "resizing"
	}
	return "splitting"
}

// Preview is the transient state of an in-flight gesture. It never touches
// the committed tree.
type Preview struct {
	Kind PreviewKind
	// PaneID is the leaf being split or the split being resized.
	PaneID entity.PaneNodeID
	Edge   Edge
	Press  entity.Point
	// Extent is the pane's measured extent along the gesture axis at the last move.
	Extent float64

	// Splitting.
	Amount     float64
	MainAmount float64
	Residual   float64
	Accepted   bool

	// Resizing.
	Size     float64
	HasSize  bool
	Survivor entity.PaneNodeID
	Vanish   entity.PaneNodeID
}

// CommitKind describes what a released gesture did.
type CommitKind int

const (
	CommitNone CommitKind = iota
	CommitSplit
	CommitResize
	CommitMerge
)

func (k CommitKind) String() string {
	switch k {
	case CommitSplit:
		return "split"
	case CommitResize:
		return "resize"
	case CommitMerge:
		return "merge"
	default:
		return "none"
	}
}

// DeferredMerge is a merge the host applies one tick after release.
type DeferredMerge struct {
	ParentID   entity.PaneNodeID
	SurvivorID entity.PaneNodeID
}

// Commit is the result of a released gesture. For CommitMerge the tree is
// unchanged until the host calls ApplyDeferred with Deferred.
type Commit struct {
	Kind     CommitKind
	PaneID   entity.PaneNodeID
	Size     float64
	Deferred *DeferredMerge
}

// Controller turns pointer gestures into split, resize and merge commits.
// It holds at most one preview; the committed tree is only changed through
// the mutator, once per completed gesture.
type Controller struct {
	mutator    port.PaneMutator
	measurer   port.PaneMeasurer
	thresholds Thresholds
	preview    *Preview
	logger     zerolog.Logger
}

// NewController creates a controller over a session's mutation surface.
// It panics when mutator or measurer is nil: a controller without a tree
// to mutate is a wiring bug.
func NewController(ctx context.Context, mutator port.PaneMutator, measurer port.PaneMeasurer, thresholds Thresholds) *Controller {
	if mutator == nil {
		panic("layout: NewController called without a pane mutator")
	}
	if measurer == nil {
		panic("layout: NewController called without a pane measurer")
	}
	return &Controller{
		mutator:    mutator,
		measurer:   measurer,
		thresholds: thresholds,
		logger:     logging.FromContext(ctx).With().Str("component", "layout-controller").Logger(),
	}
}

// Thresholds returns the active pixel thresholds.
func (c *Controller) Thresholds() Thresholds {
	return c.thresholds
}

// SetThresholds replaces the pixel thresholds. An in-flight gesture uses the
// new values from its next move.
func (c *Controller) SetThresholds(t Thresholds) {
	c.thresholds = t
}

// State returns Idle or Previewing.
func (c *Controller) State() State {
	if c.preview == nil {
		return StateIdle
	}
	return StatePreviewing
}

// Preview returns a copy of the in-flight preview.
func (c *Controller) Preview() (Preview, bool) {
	if c.preview == nil {
		return Preview{}, false
	}
	return *c.preview, true
}

// PreviewSize returns the live size of split id while its handle is dragged.
// A pending merge keeps the last live size in place under the overlay.
func (c *Controller) PreviewSize(id entity.PaneNodeID) (float64, bool) {
	p := c.preview
	if p == nil || p.Kind != PreviewResizing || p.PaneID != id || !p.HasSize {
		return 0, false
	}
	return p.Size, true
}

// BeginEdgeDrag starts a split gesture on a leaf's edge zone.
func (c *Controller) BeginEdgeDrag(leafID entity.PaneNodeID, edge Edge, press entity.Point) bool {
	if c.preview != nil {
		return false
	}
	if !c.mutator.Root().Find(leafID).IsLeaf() {
		return false
	}
	c.preview = &Preview{Kind: PreviewSplitting, PaneID: leafID, Edge: edge, Press: press}
	c.logger.Debug().Str("pane_id", string(leafID)).Str("edge", edge.String()).Msg("edge drag started")
	return true
}

// BeginHandleDrag starts a resize gesture on a split's handle.
func (c *Controller) BeginHandleDrag(splitID entity.PaneNodeID, press entity.Point) bool {
	if c.preview != nil {
		return false
	}
	if !c.mutator.Root().Find(splitID).IsSplit() {
		return false
	}
	c.preview = &Preview{Kind: PreviewResizing, PaneID: splitID, Press: press}
	c.logger.Debug().Str("pane_id", string(splitID)).Msg("handle drag started")
	return true
}

// Move updates the preview with the pointer position. Moves while idle are ignored.
func (c *Controller) Move(p entity.Point) {
	if c.preview == nil {
		return
	}
	box, ok := c.measurer.Measure(c.preview.PaneID)
	if !ok {
		return
	}
	switch c.preview.Kind {
	case PreviewSplitting:
		c.moveSplit(box, p)
	case PreviewResizing:
		c.moveResize(box, p)
	}
}

func (c *Controller) moveSplit(box entity.Rect, p entity.Point) {
	pv := c.preview
	pv.Extent = box.Extent(pv.Edge.Axis())
	pv.Amount = DragAmount(pv.Edge, pv.Press, p)
	pv.MainAmount, pv.Residual = SplitCandidate(pv.Edge, pv.Amount, pv.Extent)
	pv.Accepted = c.thresholds.AcceptSplit(pv.MainAmount, pv.Residual)
}

func (c *Controller) moveResize(box entity.Rect, p entity.Point) {
	pv := c.preview
	node := c.mutator.Root().Find(pv.PaneID)
	if !node.IsSplit() {
		return
	}
	pv.Extent = box.Extent(node.Axis)
	candidate := p.Along(node.Axis) - box.Origin(node.Axis)

	decision := c.thresholds.ClassifyResize(candidate, pv.Extent)
	switch decision.Action {
	case ResizeApply:
		pv.Size, pv.HasSize = decision.Size, true
		pv.Survivor, pv.Vanish = "", ""
	case ResizeMergeFirst, ResizeMergeSecond:
		i := decision.Survivor()
		pv.Survivor = node.Children[i].ID
		pv.Vanish = node.Children[1-i].ID
	}
}

// Release ends the gesture and performs its single commit. A pending merge is
// returned as Deferred and not applied here.
func (c *Controller) Release(ctx context.Context) Commit {
	pv := c.preview
	c.preview = nil
	if pv == nil {
		return Commit{}
	}
	log := logging.FromContext(ctx)

	switch pv.Kind {
	case PreviewSplitting:
		if !pv.Accepted || pv.Extent <= 0 {
			log.Debug().
				Str("pane_id", string(pv.PaneID)).
				Float64("main", pv.MainAmount).
				Float64("residual", pv.Residual).
				Msg("split discarded below threshold")
			return Commit{}
		}
		size := pv.MainAmount / pv.Extent
		if !c.mutator.Split(ctx, pv.PaneID, pv.Edge.Axis(), size) {
			return Commit{}
		}
		return Commit{Kind: CommitSplit, PaneID: pv.PaneID, Size: size}

	case PreviewResizing:
		if pv.Survivor != "" {
			return Commit{
				Kind:     CommitMerge,
				PaneID:   pv.PaneID,
				Deferred: &DeferredMerge{ParentID: pv.PaneID, SurvivorID: pv.Survivor},
			}
		}
		if !pv.HasSize || !c.mutator.Resize(ctx, pv.PaneID, pv.Size) {
			return Commit{}
		}
		return Commit{Kind: CommitResize, PaneID: pv.PaneID, Size: pv.Size}
	}
	return Commit{}
}

// ApplyDeferred commits a merge returned by Release.
func (c *Controller) ApplyDeferred(ctx context.Context, d DeferredMerge) bool {
	return c.mutator.Merge(ctx, d.ParentID, d.SurvivorID)
}

// Cancel drops the in-flight gesture without committing.
func (c *Controller) Cancel() {
	if c.preview != nil {
		c.logger.Debug().Str("pane_id", string(c.preview.PaneID)).Msg("gesture cancelled")
	}
	c.preview = nil
}
