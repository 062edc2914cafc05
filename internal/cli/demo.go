package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"sync/atomic"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/bnema/panekit/internal/application/usecase"
	"github.com/bnema/panekit/internal/domain/entity"
	"github.com/bnema/panekit/internal/infrastructure/config"
	"github.com/bnema/panekit/internal/logging"
	"github.com/bnema/panekit/internal/ui/layout"
)

// DemoBounds is the pixel area the scripted layout demo runs in.
var DemoBounds = entity.Rect{W: 640, H: 480}

// DemoStep is the committed layout after one scripted gesture.
type DemoStep struct {
	Title  string
	Commit layout.Commit
	Root   *entity.PaneNode
	Boxes  []layout.Box
}

// SequentialIDs returns a generator producing prefix1, prefix2, ...
func SequentialIDs(prefix string) entity.IDGenerator {
	var n atomic.Int64
	return func() string {
		return prefix + strconv.FormatInt(n.Add(1), 10)
	}
}

type demoRunner struct {
	ctx      context.Context
	panes    *usecase.ManagePanesUseCase
	renderer *layout.TreeRenderer
	ctrl     *layout.Controller
	steps    []DemoStep
}

// ReplayScenario drives the layout controller headlessly through a split,
// a content change, a resize and a merge, recording the tree after each step.
func ReplayScenario(ctx context.Context, cfg *config.Config, idGen entity.IDGenerator) ([]DemoStep, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	initial, err := entity.ParseContentType(cfg.Layout.InitialContent)
	if err != nil {
		initial = entity.ContentTimeline
	}
	ctx = logging.WithComponent(ctx, "layout-demo")

	panes := usecase.NewManagePanesUseCase(entity.NewWorkspace("demo", initial), idGen)
	renderer := layout.NewTreeRenderer(ctx, entity.Size{
		W: cfg.Appearance.CellWidthPx,
		H: cfg.Appearance.CellHeightPx,
	}, cfg.Layout.DragZoneCells)
	thresholds := layout.Thresholds{MinSize: cfg.Layout.MinSize, MergeSize: cfg.Layout.MergeSize}
	if thresholds.MinSize <= 0 || thresholds.MergeSize <= 0 {
		thresholds = layout.DefaultThresholds()
	}

	r := &demoRunner{
		ctx:      ctx,
		panes:    panes,
		renderer: renderer,
		ctrl:     layout.NewController(ctx, panes, renderer, thresholds),
	}
	if err := r.record("initial layout", layout.Commit{}); err != nil {
		return nil, err
	}

	mid := DemoBounds.H / 2
	commit, err := r.edgeDrag(entity.RootPaneID, layout.EdgeLeft, entity.Point{X: 0, Y: mid}, entity.Point{X: DemoBounds.W / 2, Y: mid})
	if err != nil {
		return nil, err
	}
	if err := r.record("drag left edge to the middle", commit); err != nil {
		return nil, err
	}

	second := panes.Root().Second()
	if second == nil {
		return nil, fmt.Errorf("split did not produce two panes")
	}
	panes.SetContentType(ctx, second.ID, entity.ContentGraphEditor)
	if err := r.record("switch right pane to "+entity.ContentGraphEditor.String(), layout.Commit{}); err != nil {
		return nil, err
	}

	commit, err = r.handleDrag(entity.RootPaneID, DemoBounds.W*0.625)
	if err != nil {
		return nil, err
	}
	if err := r.record("drag divider right", commit); err != nil {
		return nil, err
	}

	commit, err = r.handleDrag(entity.RootPaneID, DemoBounds.W-10)
	if err != nil {
		return nil, err
	}
	if commit.Deferred != nil {
		r.ctrl.ApplyDeferred(ctx, *commit.Deferred)
	}
	if err := r.record("drag divider to border", commit); err != nil {
		return nil, err
	}

	return r.steps, nil
}

func (r *demoRunner) layout() error {
	return r.renderer.Layout(r.panes.Root(), DemoBounds, r.ctrl)
}

func (r *demoRunner) edgeDrag(id entity.PaneNodeID, edge layout.Edge, from, to entity.Point) (layout.Commit, error) {
	if err := r.layout(); err != nil {
		return layout.Commit{}, err
	}
	if !r.ctrl.BeginEdgeDrag(id, edge, from) {
		return layout.Commit{}, fmt.Errorf("edge drag on %s rejected", id)
	}
	r.ctrl.Move(to)
	return r.ctrl.Release(r.ctx), nil
}

// handleDrag presses the handle of split id and releases it at x.
func (r *demoRunner) handleDrag(id entity.PaneNodeID, x float64) (layout.Commit, error) {
	if err := r.layout(); err != nil {
		return layout.Commit{}, err
	}
	box, ok := r.renderer.Box(id)
	if !ok || box.Leaf {
		return layout.Commit{}, fmt.Errorf("no split at %s", id)
	}
	press := box.Handle.Center()
	if !r.ctrl.BeginHandleDrag(id, press) {
		return layout.Commit{}, fmt.Errorf("handle drag on %s rejected", id)
	}
	r.ctrl.Move(entity.Point{X: x, Y: press.Y})
	if err := r.layout(); err != nil {
		return layout.Commit{}, err
	}
	return r.ctrl.Release(r.ctx), nil
}

func (r *demoRunner) record(title string, commit layout.Commit) error {
	if err := r.layout(); err != nil {
		return err
	}
	root := r.panes.Root()
	step := DemoStep{Title: title, Commit: commit, Root: root}
	root.Walk(func(n *entity.PaneNode) bool {
		if box, ok := r.renderer.Box(n.ID); ok {
			step.Boxes = append(step.Boxes, box)
		}
		return true
	})
	r.steps = append(r.steps, step)
	return nil
}

// RenderSteps writes one table per demo step.
func RenderSteps(w io.Writer, steps []DemoStep) {
	for i, step := range steps {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		title := fmt.Sprintf("%d. %s", i+1, step.Title)
		if step.Commit.Kind != layout.CommitNone {
			title += fmt.Sprintf(" (%s)", step.Commit.Kind)
		}
		t.SetTitle(title)
		t.AppendHeader(table.Row{"ID", "Node", "Detail", "Origin", "Size"})
		for _, box := range step.Boxes {
			t.AppendRow(table.Row{
				string(box.ID),
				nodeKind(box),
				nodeDetail(box),
				fmt.Sprintf("%g,%g", box.Rect.X, box.Rect.Y),
				fmt.Sprintf("%gx%g", box.Rect.W, box.Rect.H),
			})
		}
		t.Render()
		if i < len(steps)-1 {
			_, _ = fmt.Fprintln(w)
		}
	}
}

func nodeKind(box layout.Box) string {
	if box.Leaf {
		return "leaf"
	}
	return "split"
}

func nodeDetail(box layout.Box) string {
	if box.Leaf {
		return box.ContentType.String()
	}
	return fmt.Sprintf("%s %.3f", box.Axis, box.Size)
}
