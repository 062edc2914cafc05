package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/panekit/internal/application/usecase"
	"github.com/bnema/panekit/internal/domain/entity"
	"github.com/bnema/panekit/internal/infrastructure/config"
	"github.com/bnema/panekit/internal/logging"
	"github.com/bnema/panekit/internal/ui/component"
	"github.com/bnema/panekit/internal/ui/layout"
	"github.com/bnema/panekit/internal/ui/theme"
)

const (
	statusBarHeight  = 1
	playheadInterval = 100 * time.Millisecond
	defaultBPM       = 120.0
)

// ConfigChangedMsg carries a reloaded configuration into the model.
type ConfigChangedMsg struct {
	Config *config.Config
}

// EngineChangedMsg asks the model to redraw after the audio engine changed.
type EngineChangedMsg struct{}

// mergeTickMsg applies a merge deferred by the controller at release.
type mergeTickMsg struct {
	merge layout.DeferredMerge
}

// playheadTickMsg advances the playhead while playing.
type playheadTickMsg time.Time

// Model is the Bubble Tea model of the pane workspace.
type Model struct {
	// Dependencies
	ctx    context.Context
	cfg    *config.Config
	panes  *usecase.ManagePanesUseCase
	editor *usecase.EditorCommandsUseCase

	// Layout engine
	renderer   *layout.TreeRenderer
	controller *layout.Controller
	view       *component.WorkspaceView
	theme      *theme.Theme

	// UI components
	keys     KeyMap
	help     help.Model
	showHelp bool

	// State
	hover  layout.Hit
	width  int
	height int
}

// NewModel creates the workspace model.
func NewModel(deps *Dependencies) (Model, error) {
	if err := deps.Validate(); err != nil {
		return Model{}, err
	}
	ctx := logging.WithComponent(deps.Ctx, "workspace")
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating workspace model")

	th := deps.Theme
	if th == nil {
		th = theme.New(deps.Config.Appearance.Palette)
	}
	renderer := layout.NewTreeRenderer(ctx, cellSize(deps.Config.Appearance), deps.Config.Layout.DragZoneCells)
	controller := layout.NewController(ctx, deps.Panes, renderer, thresholds(deps.Config.Layout))

	h := help.New()
	h.Styles = helpStyles(th)

	return Model{
		ctx:        ctx,
		cfg:        deps.Config,
		panes:      deps.Panes,
		editor:     deps.Editor,
		renderer:   renderer,
		controller: controller,
		view:       component.NewWorkspaceView(th, component.DefaultRegistry(th), renderer),
		theme:      th,
		keys:       DefaultKeyMap(),
		help:       h,
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("panekit")
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.relayout()
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.BlurMsg:
		// The release may never reach us once the terminal loses focus, so
		// the gesture ends here with its last previewed state.
		return m.handleRelease()

	case mergeTickMsg:
		if m.controller.ApplyDeferred(m.ctx, msg.merge) {
			m.relayout()
		}
		return m, nil

	case playheadTickMsg:
		return m.handlePlayhead()

	case ConfigChangedMsg:
		m.applyConfig(msg.Config)
		return m, nil

	case EngineChangedMsg:
		return m, nil
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p := m.renderer.CellToPoint(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.handlePress(p)
		}
		return m, nil

	case tea.MouseActionMotion:
		if m.controller.State() == layout.StatePreviewing {
			m.controller.Move(p)
			m.relayout()
		} else {
			m.hover = m.renderer.HitTest(p)
		}
		return m, nil

	case tea.MouseActionRelease:
		return m.handleRelease()
	}
	return m, nil
}

func (m Model) handlePress(p entity.Point) {
	hit := m.renderer.HitTest(p)
	switch hit.Kind {
	case layout.HitHandle:
		m.controller.BeginHandleDrag(hit.PaneID, p)
	case layout.HitEdge:
		m.panes.Focus(hit.PaneID)
		m.controller.BeginEdgeDrag(hit.PaneID, hit.Edge, p)
	case layout.HitHeader:
		m.panes.Focus(hit.PaneID)
		m.cycleContent(hit.PaneID)
	case layout.HitBody:
		m.panes.Focus(hit.PaneID)
	}
}

func (m Model) handleRelease() (tea.Model, tea.Cmd) {
	commit := m.controller.Release(m.ctx)
	m.hover = layout.Hit{}
	m.relayout()

	if commit.Kind != layout.CommitNone {
		logging.FromContext(m.ctx).Debug().
			Str("commit", commit.Kind.String()).
			Str("pane_id", string(commit.PaneID)).
			Float64("size", commit.Size).
			Msg("gesture committed")
	}
	if commit.Kind == layout.CommitMerge && commit.Deferred != nil {
		d := *commit.Deferred
		return m, func() tea.Msg { return mergeTickMsg{merge: d} }
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ws := m.panes.Workspace()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.CancelDrag):
		m.controller.Cancel()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keys.FocusNext):
		m.panes.FocusNext()
	case key.Matches(msg, m.keys.CycleView):
		m.cycleContent(ws.ActivePaneID)
	case key.Matches(msg, m.keys.SplitRight):
		m.splitActive(entity.AxisHorizontal)
	case key.Matches(msg, m.keys.SplitDown):
		m.splitActive(entity.AxisVertical)
	case key.Matches(msg, m.keys.Close):
		m.panes.CloseActive(m.ctx)
	case key.Matches(msg, m.keys.PlayPause):
		return m.togglePlayback()
	case key.Matches(msg, m.keys.SeekStart):
		m.editor.Seek(m.ctx, 0)
	case key.Matches(msg, m.keys.NextTrack):
		m.selectNextTrack()
	default:
		return m, nil
	}
	m.relayout()
	return m, nil
}

func (m Model) cycleContent(id entity.PaneNodeID) {
	node := m.panes.Root().Find(id)
	if !node.IsLeaf() {
		return
	}
	m.panes.SetContentType(m.ctx, id, node.ContentType.Next())
}

// splitActive halves the active leaf when both halves stay above the minimum size.
func (m Model) splitActive(axis entity.Axis) {
	active := m.panes.Workspace().ActivePaneID
	box, ok := m.renderer.Measure(active)
	if !ok {
		return
	}
	half := box.Extent(axis) / 2
	if !m.controller.Thresholds().AcceptSplit(half, half) {
		logging.FromContext(m.ctx).Debug().
			Str("pane_id", string(active)).
			Float64("half", half).
			Msg("keyboard split refused: pane too small")
		return
	}
	m.panes.Split(m.ctx, active, axis, 0.5)
}

func (m Model) togglePlayback() (tea.Model, tea.Cmd) {
	if m.editor.EditorData(m.ctx).IsPlaying {
		m.editor.Pause(m.ctx)
		return m, nil
	}
	m.editor.Play(m.ctx)
	return m, tickPlayhead()
}

func (m Model) handlePlayhead() (tea.Model, tea.Cmd) {
	data := m.editor.EditorData(m.ctx)
	if !data.IsPlaying {
		return m, nil
	}
	bpm := defaultBPM
	if data.Mixer != nil && data.Mixer.BPM > 0 {
		bpm = data.Mixer.BPM
	}
	m.editor.Advance(m.ctx, bpm/60*playheadInterval.Seconds())
	return m, tickPlayhead()
}

func tickPlayhead() tea.Cmd {
	return tea.Tick(playheadInterval, func(t time.Time) tea.Msg {
		return playheadTickMsg(t)
	})
}

func (m Model) selectNextTrack() {
	data := m.editor.EditorData(m.ctx)
	if data.Mixer == nil || len(data.Mixer.Tracks) == 0 {
		return
	}
	tracks := data.Mixer.Tracks
	next := tracks[0].ID
	if sel := data.Selection.TrackID; sel != nil {
		for i, tr := range tracks {
			if tr.ID == *sel {
				next = tracks[(i+1)%len(tracks)].ID
				break
			}
		}
	}
	m.editor.SelectTrack(next)
}

func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	log := logging.FromContext(m.ctx)

	m.cfg = cfg
	m.controller.SetThresholds(thresholds(cfg.Layout))
	m.renderer.SetGrid(cellSize(cfg.Appearance), cfg.Layout.DragZoneCells)
	m.theme = theme.New(cfg.Appearance.Palette)
	m.view = component.NewWorkspaceView(m.theme, component.DefaultRegistry(m.theme), m.renderer)
	m.help.Styles = helpStyles(m.theme)
	m.relayout()

	log.Info().
		Float64("min_size", cfg.Layout.MinSize).
		Float64("merge_size", cfg.Layout.MergeSize).
		Msg("applied configuration change")
}

// relayout recomputes pane boxes for the current terminal size, honoring the
// live size of a handle being dragged.
func (m Model) relayout() {
	rows := m.workspaceRows()
	if m.width <= 0 || rows <= 0 {
		return
	}
	cell := m.renderer.Cell()
	bounds := entity.Rect{W: float64(m.width) * cell.W, H: float64(rows) * cell.H}
	if err := m.renderer.Layout(m.panes.Root(), bounds, m.controller); err != nil {
		logging.FromContext(m.ctx).Error().Err(err).Msg("layout failed")
	}
}

func (m Model) workspaceRows() int {
	rows := m.height - statusBarHeight
	if m.showHelp {
		rows -= lipgloss.Height(m.helpView())
	}
	return rows
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width <= 0 || m.workspaceRows() <= 0 {
		return ""
	}
	m.relayout()

	data := m.editor.EditorData(m.ctx)
	var preview *layout.Preview
	if pv, ok := m.controller.Preview(); ok {
		preview = &pv
	}

	parts := []string{
		m.view.Render(m.panes.Root(), component.RenderState{
			ActivePaneID: m.panes.Workspace().ActivePaneID,
			Hover:        m.hover,
			Preview:      preview,
			Data:         data,
		}),
		m.statusBar(data, preview),
	}
	if m.showHelp {
		parts = append(parts, m.helpView())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) helpView() string {
	return m.help.FullHelpView(m.keys.FullHelp())
}

func cellSize(a config.AppearanceConfig) entity.Size {
	return entity.Size{W: a.CellWidthPx, H: a.CellHeightPx}
}

func thresholds(l config.LayoutConfig) layout.Thresholds {
	t := layout.DefaultThresholds()
	if l.MinSize > 0 {
		t.MinSize = l.MinSize
	}
	if l.MergeSize > 0 {
		t.MergeSize = l.MergeSize
	}
	return t
}

func helpStyles(th *theme.Theme) help.Styles {
	s := help.New().Styles
	s.ShortKey = th.HelpKey
	s.ShortDesc = th.HelpDesc
	s.FullKey = th.HelpKey
	s.FullDesc = th.HelpDesc
	return s
}
