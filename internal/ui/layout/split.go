package layout

import (
	"math"

	"github.com/bnema/panekit/internal/domain/entity"
)

// SplitView is the geometry of one split: two child boxes separated by a
// draggable handle. Boxes are snapped to the cell grid so that a terminal
// can draw them exactly.
type SplitView struct {
	Bounds entity.Rect
	Axis   entity.Axis
	Ratio  float64
	Cell   entity.Size
}

// NewSplitView creates split geometry. The ratio is clamped to [0.0, 1.0].
func NewSplitView(bounds entity.Rect, axis entity.Axis, ratio float64, cell entity.Size) SplitView {
	return SplitView{Bounds: bounds, Axis: axis, Ratio: clampRatio(ratio), Cell: cell}
}

// Layout returns the first child's box, the handle strip and the second
// child's box. The handle is one cell thick and starts where ratio×extent
// ends. The second box may be empty when the split is too small.
func (sv SplitView) Layout() (first, handle, second entity.Rect) {
	b := sv.Bounds
	extent := b.Extent(sv.Axis)
	step := sv.cellAlong()

	if extent < step {
		return b, entity.Rect{}, entity.Rect{}
	}

	pos := snap(extent*sv.Ratio, step)
	if pos > extent-step {
		pos = snap(extent-step, step)
	}

	first, handle, second = b, b, b
	if sv.Axis == entity.AxisHorizontal {
		first.W = pos
		handle.X, handle.W = b.X+pos, step
		second.X, second.W = b.X+pos+step, math.Max(0, b.W-pos-step)
		return first, handle, second
	}
	first.H = pos
	handle.Y, handle.H = b.Y+pos, step
	second.Y, second.H = b.Y+pos+step, math.Max(0, b.H-pos-step)
	return first, handle, second
}

func (sv SplitView) cellAlong() float64 {
	step := sv.Cell.H
	if sv.Axis == entity.AxisHorizontal {
		step = sv.Cell.W
	}
	if step <= 0 {
		return 1
	}
	return step
}

// snap rounds v down to a multiple of step, tolerating float noise.
func snap(v, step float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Floor(v/step+1e-9) * step
}

// clampRatio ensures the ratio is within [0.0, 1.0].
func clampRatio(ratio float64) float64 {
	if ratio < 0.0 {
		return 0.0
	}
	if ratio > 1.0 {
		return 1.0
	}
	return ratio
}
