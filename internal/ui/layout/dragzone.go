package layout

import (
	"math"

	"github.com/bnema/panekit/internal/domain/entity"
)

// Edge names one of the four drag zones of a leaf pane.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// AllEdges lists the edges in hit-test priority order.
var AllEdges = []Edge{EdgeTop, EdgeBottom, EdgeLeft, EdgeRight}

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	default:
		return "unknown"
	}
}

// Axis returns the split axis produced by dragging this edge:
// left/right divide the width, top/bottom divide the height.
func (e Edge) Axis() entity.Axis {
	if e == EdgeLeft || e == EdgeRight {
		return entity.AxisHorizontal
	}
	return entity.AxisVertical
}

// Leading reports whether the edge is on the top or left side.
func (e Edge) Leading() bool {
	return e == EdgeTop || e == EdgeLeft
}

// EdgeZones returns the four drag zone rectangles of box. Top and bottom zones
// are thick.H tall, left and right zones are thick.W wide.
func EdgeZones(box entity.Rect, thick entity.Size) map[Edge]entity.Rect {
	return map[Edge]entity.Rect{
		EdgeTop:    {X: box.X, Y: box.Y, W: box.W, H: thick.H},
		EdgeBottom: {X: box.X, Y: box.Y + box.H - thick.H, W: box.W, H: thick.H},
		EdgeLeft:   {X: box.X, Y: box.Y, W: thick.W, H: box.H},
		EdgeRight:  {X: box.X + box.W - thick.W, Y: box.Y, W: thick.W, H: box.H},
	}
}

// EdgeAt returns the drag zone of box containing p. In corners the edge whose
// border is closer, relative to its zone thickness, wins.
func EdgeAt(box entity.Rect, thick entity.Size, p entity.Point) (Edge, bool) {
	if !box.Contains(p) || thick.W <= 0 || thick.H <= 0 {
		return 0, false
	}
	zones := EdgeZones(box, thick)
	best, found := Edge(0), false
	bestDist := math.Inf(1)
	for _, e := range AllEdges {
		if !zones[e].Contains(p) {
			continue
		}
		d := edgeDistance(box, e, p) / zoneThickness(e, thick)
		if d < bestDist {
			best, bestDist, found = e, d, true
		}
	}
	return best, found
}

func edgeDistance(box entity.Rect, e Edge, p entity.Point) float64 {
	switch e {
	case EdgeTop:
		return p.Y - box.Y
	case EdgeBottom:
		return box.Y + box.H - p.Y
	case EdgeLeft:
		return p.X - box.X
	default:
		return box.X + box.W - p.X
	}
}

func zoneThickness(e Edge, thick entity.Size) float64 {
	if e.Axis() == entity.AxisHorizontal {
		return thick.W
	}
	return thick.H
}

// DragAmount is the signed distance from press to current along the edge's axis.
func DragAmount(edge Edge, press, current entity.Point) float64 {
	axis := edge.Axis()
	return current.Along(axis) - press.Along(axis)
}

// SplitCandidate converts a drag amount into the pixel size of the first child
// and the residual left for the second. Dragging a trailing edge measures the
// first child from the far side.
func SplitCandidate(edge Edge, amount, extent float64) (mainAmount, residual float64) {
	mainAmount = amount
	if !edge.Leading() {
		mainAmount = extent + amount
	}
	return mainAmount, extent - mainAmount
}
