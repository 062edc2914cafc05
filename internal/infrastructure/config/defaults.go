package config

// Default configuration constants
const (
	// Layout defaults
	defaultMinSize        = 150.0 // pixels
	defaultMergeSize      = 50.0  // pixels
	defaultDragZoneCells  = 1
	defaultInitialContent = "timeline"

	// Appearance defaults
	defaultCellWidthPx  = 8.0
	defaultCellHeightPx = 16.0

	// Logging defaults
	defaultMaxLogSizeMB  = 10
	defaultMaxLogBackups = 5
	defaultMaxLogAgeDays = 7 // days
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultPalette returns the dark palette used when none is configured.
func DefaultPalette() ColorPalette {
	return ColorPalette{
		Background:     "#0a0a0b",
		Surface:        "#18181b",
		SurfaceVariant: "#27272a",
		Text:           "#fafafa",
		Muted:          "#a1a1aa",
		Accent:         "#4ade80",
		Border:         "#3f3f46",
		Merge:          "#ef4444",
		Preview:        "#38bdf8",
	}
}

// DefaultConfig returns the default configuration values for panekit.
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			MinSize:        defaultMinSize,
			MergeSize:      defaultMergeSize,
			DragZoneCells:  defaultDragZoneCells,
			InitialContent: defaultInitialContent,
		},
		Appearance: AppearanceConfig{
			CellWidthPx:  defaultCellWidthPx,
			CellHeightPx: defaultCellHeightPx,
			Palette:      DefaultPalette(),
		},
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "json",
			LogDir:        getDefaultLogDir(),
			EnableFileLog: true,
			MaxSizeMB:     defaultMaxLogSizeMB,
			MaxBackups:    defaultMaxLogBackups,
			MaxAgeDays:    defaultMaxLogAgeDays,
			Compress:      true,
		},
	}
}
