package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/panekit/internal/ui/layout"
)

func TestAcceptSplit_BoundaryIsExclusive(t *testing.T) {
	th := layout.DefaultThresholds()
	const extent = 400.0

	tests := []struct {
		name   string
		edge   layout.Edge
		amount float64
		want   bool
	}{
		{name: "left at min size", edge: layout.EdgeLeft, amount: 150, want: false},
		{name: "left just above min size", edge: layout.EdgeLeft, amount: 151, want: true},
		{name: "left leaves too little residual", edge: layout.EdgeLeft, amount: 250, want: false},
		{name: "left negative drag", edge: layout.EdgeLeft, amount: -20, want: false},
		{name: "right shrinks first child", edge: layout.EdgeRight, amount: -151, want: true},
		{name: "right at min size", edge: layout.EdgeRight, amount: -150, want: false},
		{name: "bottom both sides fit", edge: layout.EdgeBottom, amount: -200, want: true},
		{name: "top residual at min size", edge: layout.EdgeTop, amount: 250, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			main, residual := layout.SplitCandidate(tt.edge, tt.amount, extent)
			assert.Equal(t, tt.want, th.AcceptSplit(main, residual))
		})
	}
}

func TestSplitCandidate_SizeFraction(t *testing.T) {
	main, residual := layout.SplitCandidate(layout.EdgeLeft, 151, 400)

	assert.Equal(t, 151.0, main)
	assert.Equal(t, 249.0, residual)
	assert.InDelta(t, 151.0/400.0, main/400, 1e-12)
}

func TestClassifyResize(t *testing.T) {
	th := layout.DefaultThresholds()

	tests := []struct {
		name      string
		candidate float64
		extent    float64
		action    layout.ResizeAction
		survivor  int
		size      float64
	}{
		{name: "below merge size marks second survivor", candidate: 49, extent: 400, action: layout.ResizeMergeSecond, survivor: 1},
		{name: "at merge size resizes clamped", candidate: 50, extent: 400, action: layout.ResizeApply, survivor: -1, size: 150.0 / 400},
		{name: "near far edge marks first survivor", candidate: 351, extent: 400, action: layout.ResizeMergeFirst, survivor: 0},
		{name: "at far merge boundary resizes clamped", candidate: 350, extent: 400, action: layout.ResizeApply, survivor: -1, size: 250.0 / 400},
		{name: "inside band", candidate: 200, extent: 400, action: layout.ResizeApply, survivor: -1, size: 0.5},
		{name: "negative candidate", candidate: -10, extent: 400, action: layout.ResizeMergeSecond, survivor: 1},
		{name: "unmeasured pane", candidate: 10, extent: 0, action: layout.ResizeIgnore, survivor: -1},
		{name: "too small to honor min size centers", candidate: 120, extent: 250, action: layout.ResizeApply, survivor: -1, size: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := th.ClassifyResize(tt.candidate, tt.extent)
			assert.Equal(t, tt.action, d.Action)
			assert.Equal(t, tt.survivor, d.Survivor())
			if tt.action == layout.ResizeApply {
				assert.InDelta(t, tt.size, d.Size, 1e-12)
			}
		})
	}
}

func TestClassifyResize_SameThresholdsOnBothAxes(t *testing.T) {
	th := layout.Thresholds{MinSize: 100, MergeSize: 20}

	assert.Equal(t, layout.ResizeMergeSecond, th.ClassifyResize(19, 300).Action)
	assert.Equal(t, layout.ResizeApply, th.ClassifyResize(20, 300).Action)
	assert.Equal(t, "merge-first", th.ClassifyResize(281, 300).Action.String())
}
