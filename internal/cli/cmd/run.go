package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/panekit/internal/application/usecase"
	"github.com/bnema/panekit/internal/domain/entity"
	"github.com/bnema/panekit/internal/infrastructure/config"
	"github.com/bnema/panekit/internal/infrastructure/engine"
	"github.com/bnema/panekit/internal/logging"
	"github.com/bnema/panekit/internal/ui"
	"github.com/bnema/panekit/internal/ui/mainloop"
)

// redrawDelay batches engine and config notifications into one redraw.
const redrawDelay = 16 * time.Millisecond

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the pane workspace (default command)",
	RunE:  runWorkspace,
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, runCmd} {
		c.Flags().Bool("no-seed", false, "start with an empty session")
		c.Flags().String("content", "", "content of the initial pane (overrides layout.initial_content)")
	}
	rootCmd.AddCommand(runCmd)
}

func runWorkspace(cmd *cobra.Command, _ []string) error {
	a := GetApp()
	if a == nil {
		return errors.New("app not initialized")
	}
	ctx, stop := signal.NotifyContext(a.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := logging.FromContext(ctx)

	initial := a.Config.Layout.InitialContent
	if flag, _ := cmd.Flags().GetString("content"); flag != "" {
		initial = flag
	}
	ct, err := entity.ParseContentType(initial)
	if err != nil {
		return err
	}

	ws := entity.NewWorkspace(entity.WorkspaceID(a.SessionID), ct)
	panes := usecase.NewManagePanesUseCase(ws, usecase.NewUUIDGenerator())
	eng := engine.New()
	editor := usecase.NewEditorCommandsUseCase(eng)

	if noSeed, _ := cmd.Flags().GetBool("no-seed"); !noSeed {
		if err := engine.Seed(ctx, eng, editor); err != nil {
			return fmt.Errorf("seed session: %w", err)
		}
	}

	model, err := ui.NewModel(&ui.Dependencies{
		Ctx:    ctx,
		Config: a.Config,
		Panes:  panes,
		Editor: editor,
		Theme:  a.Theme,
	})
	if err != nil {
		return err
	}

	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)

	coalescer := mainloop.NewCoalescer(mainloop.DelayedSend(program.Send, redrawDelay))
	defer coalescer.Destroy()

	eng.OnChange(func() {
		editor.Invalidate()
		coalescer.Post("engine", ui.EngineChangedMsg{})
	})
	a.Manager.OnConfigChange(func(cfg *config.Config) {
		coalescer.Post("config", ui.ConfigChangedMsg{Config: cfg})
	})
	if err := a.Manager.Watch(ctx); err != nil {
		log.Warn().Err(err).Msg("config hot reload disabled")
	}

	log.Info().
		Str("initial_content", ct.String()).
		Str("version", a.BuildInfo.Version).
		Msg("starting workspace")

	g, gctx := errgroup.WithContext(ctx)
	done := make(chan struct{})
	g.Go(func() error {
		defer close(done)
		_, err := program.Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	})
	g.Go(func() error {
		select {
		case <-gctx.Done():
			program.Quit()
		case <-done:
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("run workspace: %w", err)
	}
	log.Info().Int("panes", ws.PaneCount()).Msg("workspace closed")
	return nil
}
