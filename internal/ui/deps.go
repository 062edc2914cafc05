// Package ui hosts the terminal workspace: a Bubble Tea model that lays out
// the pane tree, routes pointer gestures to the layout controller and draws
// every leaf through the content registry.
package ui

import (
	"context"

	"github.com/bnema/panekit/internal/application/usecase"
	"github.com/bnema/panekit/internal/infrastructure/config"
	"github.com/bnema/panekit/internal/ui/theme"
)

// Dependencies holds everything the workspace model needs.
type Dependencies struct {
	Ctx    context.Context
	Config *config.Config
	Panes  *usecase.ManagePanesUseCase
	Editor *usecase.EditorCommandsUseCase
	// Theme may be nil; it is then built from Config.Appearance.Palette.
	Theme *theme.Theme
}

// Validate checks that required dependencies are present.
func (d *Dependencies) Validate() error {
	if d.Ctx == nil {
		return errMissingDependency("Ctx")
	}
	if d.Config == nil {
		return errMissingDependency("Config")
	}
	if d.Panes == nil {
		return errMissingDependency("Panes")
	}
	if d.Editor == nil {
		return errMissingDependency("Editor")
	}
	return nil
}

type dependencyError string

func (e dependencyError) Error() string {
	return "missing required dependency: " + string(e)
}

func errMissingDependency(name string) error {
	return dependencyError(name)
}
