package config

import (
	"fmt"
	"strings"

	"github.com/bnema/panekit/internal/domain/entity"
	"github.com/bnema/panekit/internal/domain/validation"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	// If there are validation errors, return them
	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLayout(config *Config) []string {
	var validationErrors []string
	l := config.Layout
	if l.MinSize <= 0 {
		validationErrors = append(validationErrors, "layout.min_size must be positive")
	}
	if l.MergeSize <= 0 {
		validationErrors = append(validationErrors, "layout.merge_size must be positive")
	}
	if l.MergeSize >= l.MinSize {
		validationErrors = append(validationErrors, "layout.merge_size must be smaller than layout.min_size")
	}
	if l.DragZoneCells < 1 || l.DragZoneCells > 4 {
		validationErrors = append(validationErrors, "layout.drag_zone_cells must be between 1 and 4")
	}
	if _, err := entity.ParseContentType(l.InitialContent); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("layout.initial_content: %v", err))
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	var validationErrors []string
	a := config.Appearance
	if a.CellWidthPx <= 0 {
		validationErrors = append(validationErrors, "appearance.cell_width_px must be positive")
	}
	if a.CellHeightPx <= 0 {
		validationErrors = append(validationErrors, "appearance.cell_height_px must be positive")
	}

	colors := map[string]string{
		"background":      a.Palette.Background,
		"surface":         a.Palette.Surface,
		"surface_variant": a.Palette.SurfaceVariant,
		"text":            a.Palette.Text,
		"muted":           a.Palette.Muted,
		"accent":          a.Palette.Accent,
		"border":          a.Palette.Border,
		"merge":           a.Palette.Merge,
		"preview":         a.Palette.Preview,
	}
	return append(validationErrors, validation.ValidatePaletteHex("appearance.palette", colors)...)
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors, "logging.level must be one of trace, debug, info, warn, error")
	}
	if config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be at least 1")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_age_days must be non-negative")
	}
	return validationErrors
}
