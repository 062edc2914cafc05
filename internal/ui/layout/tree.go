package layout

import (
	"context"
	"errors"
	"math"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/panekit/internal/application/port"
	"github.com/bnema/panekit/internal/domain/entity"
	"github.com/bnema/panekit/internal/logging"
)

// ErrNilRoot is returned when attempting to lay out a nil root node.
var ErrNilRoot = errors.New("root node is nil")

var _ port.PaneMeasurer = (*TreeRenderer)(nil)

// SizeOverride supplies live split sizes that take precedence over the
// committed ones while a handle is being dragged.
type SizeOverride interface {
	PreviewSize(id entity.PaneNodeID) (float64, bool)
}

// Box is the laid out geometry of one node.
type Box struct {
	ID          entity.PaneNodeID
	Rect        entity.Rect
	Leaf        bool
	ContentType entity.ContentType
	Depth       int

	// Splits only.
	Axis   entity.Axis
	Size   float64
	Handle entity.Rect
	First  entity.PaneNodeID
	Second entity.PaneNodeID
}

// HitKind classifies what lies under a point.
type HitKind int

const (
	HitNone HitKind = iota
	HitEdge
	HitHandle
	HitHeader
	HitBody
)

func (k HitKind) String() string {
	switch k {
	case HitEdge:
		return "edge"
	case HitHandle:
		return "handle"
	case HitHeader:
		return "header"
	case HitBody:
		return "body"
	default:
		return "none"
	}
}

// Hit is the result of a hit test.
type Hit struct {
	Kind   HitKind
	PaneID entity.PaneNodeID
	Edge   Edge
}

// TreeRenderer lays out a pane tree in pixel space, measures panes for the
// controller and hit-tests pointer positions. Geometry is snapped to a cell
// grid of Cell pixels.
type TreeRenderer struct {
	cell      entity.Size
	zoneCells int
	logger    zerolog.Logger

	boxes  map[entity.PaneNodeID]Box
	leaves []entity.PaneNodeID
	splits []entity.PaneNodeID
	bounds entity.Rect

	mu sync.RWMutex
}

// NewTreeRenderer creates a renderer for the given cell size and drag zone
// thickness in cells.
func NewTreeRenderer(ctx context.Context, cell entity.Size, zoneCells int) *TreeRenderer {
	log := logging.FromContext(ctx)
	log.Debug().Float64("cell_w", cell.W).Float64("cell_h", cell.H).Msg("creating tree renderer")

	if zoneCells < 1 {
		zoneCells = 1
	}
	return &TreeRenderer{
		cell:      cell,
		zoneCells: zoneCells,
		logger:    log.With().Str("component", "tree-renderer").Logger(),
		boxes:     make(map[entity.PaneNodeID]Box),
	}
}

// SetGrid changes the cell size and drag zone thickness. Takes effect on the next Layout.
func (tr *TreeRenderer) SetGrid(cell entity.Size, zoneCells int) {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	if zoneCells < 1 {
		zoneCells = 1
	}
	tr.cell = cell
	tr.zoneCells = zoneCells
}

// Cell returns the pixel size of one cell.
func (tr *TreeRenderer) Cell() entity.Size {
	tr.mu.RLock()
	defer tr.mu.RUnlock()

	return tr.cell
}

// Layout computes boxes for every node of root inside bounds. override may be nil.
func (tr *TreeRenderer) Layout(root *entity.PaneNode, bounds entity.Rect, override SizeOverride) error {
	if root == nil {
		return ErrNilRoot
	}

	tr.mu.Lock()
	defer tr.mu.Unlock()

	tr.boxes = make(map[entity.PaneNodeID]Box, len(tr.boxes))
	tr.leaves = tr.leaves[:0]
	tr.splits = tr.splits[:0]
	tr.bounds = bounds

	tr.layoutNode(root, bounds, override, 0)
	return nil
}

// layoutNode recursively places node and its children.
// Must be called with lock held.
func (tr *TreeRenderer) layoutNode(node *entity.PaneNode, rect entity.Rect, override SizeOverride, depth int) {
	if node == nil {
		return
	}
	box := Box{ID: node.ID, Rect: rect, Depth: depth}

	if node.IsLeaf() {
		box.Leaf = true
		box.ContentType = node.ContentType
		tr.boxes[node.ID] = box
		tr.leaves = append(tr.leaves, node.ID)
		return
	}

	size := node.Size
	if override != nil {
		if live, ok := override.PreviewSize(node.ID); ok {
			size = live
		}
	}
	first, handle, second := NewSplitView(rect, node.Axis, size, tr.cell).Layout()

	box.Axis = node.Axis
	box.Size = size
	box.Handle = handle
	box.First = node.First().ID
	box.Second = node.Second().ID
	tr.boxes[node.ID] = box
	tr.splits = append(tr.splits, node.ID)

	tr.layoutNode(node.First(), first, override, depth+1)
	tr.layoutNode(node.Second(), second, override, depth+1)
}

// Measure returns the pixel box of the node at id.
func (tr *TreeRenderer) Measure(id entity.PaneNodeID) (entity.Rect, bool) {
	tr.mu.RLock()
	defer tr.mu.RUnlock()

	box, ok := tr.boxes[id]
	if !ok {
		return entity.Rect{}, false
	}
	return box.Rect, true
}

// Box returns the laid out geometry of the node at id.
func (tr *TreeRenderer) Box(id entity.PaneNodeID) (Box, bool) {
	tr.mu.RLock()
	defer tr.mu.RUnlock()

	box, ok := tr.boxes[id]
	return box, ok
}

// Leaves returns leaf boxes in reading order.
func (tr *TreeRenderer) Leaves() []Box {
	tr.mu.RLock()
	defer tr.mu.RUnlock()

	return tr.collect(tr.leaves)
}

// Splits returns split boxes, parents before children.
func (tr *TreeRenderer) Splits() []Box {
	tr.mu.RLock()
	defer tr.mu.RUnlock()

	return tr.collect(tr.splits)
}

func (tr *TreeRenderer) collect(ids []entity.PaneNodeID) []Box {
	out := make([]Box, 0, len(ids))
	for _, id := range ids {
		out = append(out, tr.boxes[id])
	}
	return out
}

// ZoneCells returns the drag zone thickness in cells.
func (tr *TreeRenderer) ZoneCells() int {
	tr.mu.RLock()
	defer tr.mu.RUnlock()

	return tr.zoneCells
}

// ZoneThickness returns the drag zone size in pixels.
func (tr *TreeRenderer) ZoneThickness() entity.Size {
	tr.mu.RLock()
	defer tr.mu.RUnlock()

	return tr.zoneThickness()
}

func (tr *TreeRenderer) zoneThickness() entity.Size {
	return entity.Size{W: tr.cell.W * float64(tr.zoneCells), H: tr.cell.H * float64(tr.zoneCells)}
}

// HeaderRect returns the header strip of a leaf box: the first row inside its
// top drag zone.
func (tr *TreeRenderer) HeaderRect(box Box) entity.Rect {
	tr.mu.RLock()
	defer tr.mu.RUnlock()

	return tr.headerRect(box.Rect)
}

func (tr *TreeRenderer) headerRect(r entity.Rect) entity.Rect {
	t := tr.zoneThickness()
	return entity.Rect{X: r.X + t.W, Y: r.Y + t.H, W: math.Max(0, r.W-2*t.W), H: tr.cell.H}
}

// HitTest resolves the element under p. Handles win over leaves; within a
// leaf, edge zones win over the header and body.
func (tr *TreeRenderer) HitTest(p entity.Point) Hit {
	tr.mu.RLock()
	defer tr.mu.RUnlock()

	if tr.bounds.Empty() || !tr.bounds.Contains(p) {
		return Hit{}
	}
	for _, id := range tr.splits {
		if tr.boxes[id].Handle.Contains(p) {
			return Hit{Kind: HitHandle, PaneID: id}
		}
	}
	for _, id := range tr.leaves {
		box := tr.boxes[id]
		if !box.Rect.Contains(p) {
			continue
		}
		if edge, ok := EdgeAt(box.Rect, tr.zoneThickness(), p); ok {
			return Hit{Kind: HitEdge, PaneID: id, Edge: edge}
		}
		if tr.headerRect(box.Rect).Contains(p) {
			return Hit{Kind: HitHeader, PaneID: id}
		}
		return Hit{Kind: HitBody, PaneID: id}
	}
	return Hit{}
}

// CellToPoint returns the pixel point at the center of a terminal cell.
func (tr *TreeRenderer) CellToPoint(col, row int) entity.Point {
	tr.mu.RLock()
	defer tr.mu.RUnlock()

	return entity.Point{
		X: (float64(col) + 0.5) * tr.cell.W,
		Y: (float64(row) + 0.5) * tr.cell.H,
	}
}

// CellRect converts a pixel rectangle to cell coordinates.
func (tr *TreeRenderer) CellRect(r entity.Rect) (col, row, w, h int) {
	tr.mu.RLock()
	defer tr.mu.RUnlock()

	if tr.cell.W <= 0 || tr.cell.H <= 0 {
		return 0, 0, 0, 0
	}
	col = int(math.Round(r.X / tr.cell.W))
	row = int(math.Round(r.Y / tr.cell.H))
	w = int(math.Round(r.W / tr.cell.W))
	h = int(math.Round(r.H / tr.cell.H))
	return col, row, w, h
}
