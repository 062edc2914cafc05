package layout

// Default pixel thresholds for split and resize gestures.
const (
	DefaultMinSize   = 150.0
	DefaultMergeSize = 50.0
)

// Thresholds holds the pixel limits applied to drag gestures. The same
// values apply to width and height.
type Thresholds struct {
	// MinSize is the smallest extent a pane may have after a split or resize.
	MinSize float64
	// MergeSize is the extent below which a handle drag becomes a pending merge.
	MergeSize float64
}

// DefaultThresholds returns the 150/50 pixel policy.
func DefaultThresholds() Thresholds {
	return Thresholds{MinSize: DefaultMinSize, MergeSize: DefaultMergeSize}
}

// AcceptSplit reports whether both halves of a split candidate exceed MinSize.
// The boundary is exclusive.
func (t Thresholds) AcceptSplit(mainAmount, residual float64) bool {
	return mainAmount > t.MinSize && residual > t.MinSize
}

// ResizeAction is the outcome of classifying a handle drag position.
type ResizeAction int

const (
	// ResizeIgnore means the pane has no measurable extent.
	ResizeIgnore ResizeAction = iota
	// ResizeApply means the split should take Size.
	ResizeApply
	// ResizeMergeFirst means the first child survives; the second is about to vanish.
	ResizeMergeFirst
	// ResizeMergeSecond means the second child survives; the first is about to vanish.
	ResizeMergeSecond
)

func (a ResizeAction) String() string {
	switch a {
	case ResizeApply:
		return "resize"
	case ResizeMergeFirst:
		return "merge-first"
	case ResizeMergeSecond:
		return "merge-second"
	default:
		return "ignore"
	}
}

// ResizeDecision is the classified handle drag.
type ResizeDecision struct {
	Action ResizeAction
	// Size is the clamped fraction for ResizeApply.
	Size float64
}

// Survivor returns the index of the surviving child for merge actions, or -1.
func (d ResizeDecision) Survivor() int {
	switch d.Action {
	case ResizeMergeFirst:
		return 0
	case ResizeMergeSecond:
		return 1
	default:
		return -1
	}
}

// ClassifyResize maps a candidate pixel size of the first child to a resize
// or a pending merge. candidate is measured from the split's origin along its
// axis and extent is the split's measured extent on that axis.
func (t Thresholds) ClassifyResize(candidate, extent float64) ResizeDecision {
	if extent <= 0 {
		return ResizeDecision{Action: ResizeIgnore}
	}
	if candidate < t.MergeSize {
		return ResizeDecision{Action: ResizeMergeSecond}
	}
	if extent-candidate < t.MergeSize {
		return ResizeDecision{Action: ResizeMergeFirst}
	}
	return ResizeDecision{
		Action: ResizeApply,
		Size:   clampPixels(candidate, t.MinSize, extent-t.MinSize) / extent,
	}
}

// clampPixels bounds v to [lo, hi]. When the pane is too small to honor both
// bounds the divider is centered.
func clampPixels(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
