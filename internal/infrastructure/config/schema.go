package config

// Config represents the complete configuration for panekit.
type Config struct {
	// Layout holds the pane gesture thresholds and initial layout.
	Layout LayoutConfig `mapstructure:"layout" toml:"layout" json:"layout"`
	// Appearance controls the terminal cell scale and colors.
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging" json:"logging"`
}

// LayoutConfig holds split, resize and merge gesture settings.
type LayoutConfig struct {
	// MinSize is the smallest pane extent in pixels a split or resize may leave (default: 150)
	MinSize float64 `mapstructure:"min_size" toml:"min_size" json:"min_size" jsonschema:"exclusiveMinimum=0"`
	// MergeSize is the extent in pixels below which a handle drag merges (default: 50)
	MergeSize float64 `mapstructure:"merge_size" toml:"merge_size" json:"merge_size" jsonschema:"exclusiveMinimum=0"`
	// DragZoneCells is the thickness of each pane's edge drag zone in cells (default: 1)
	DragZoneCells int `mapstructure:"drag_zone_cells" toml:"drag_zone_cells" json:"drag_zone_cells" jsonschema:"minimum=1,maximum=4"`
	// InitialContent is what the root pane shows at startup.
	InitialContent string `mapstructure:"initial_content" toml:"initial_content" json:"initial_content" jsonschema:"enum=timeline,enum=graph_editor,enum=node_inspector,enum=piano_roll"`
}

// AppearanceConfig holds terminal rendering preferences.
type AppearanceConfig struct {
	// CellWidthPx is the width of one terminal cell in layout pixels (default: 8)
	CellWidthPx float64 `mapstructure:"cell_width_px" toml:"cell_width_px" json:"cell_width_px" jsonschema:"exclusiveMinimum=0"`
	// CellHeightPx is the height of one terminal cell in layout pixels (default: 16)
	CellHeightPx float64      `mapstructure:"cell_height_px" toml:"cell_height_px" json:"cell_height_px" jsonschema:"exclusiveMinimum=0"`
	Palette      ColorPalette `mapstructure:"palette" toml:"palette" json:"palette"`
}

// ColorPalette holds hex colors used by the TUI.
type ColorPalette struct {
	Background     string `mapstructure:"background" toml:"background" json:"background"`
	Surface        string `mapstructure:"surface" toml:"surface" json:"surface"`
	SurfaceVariant string `mapstructure:"surface_variant" toml:"surface_variant" json:"surface_variant"`
	Text           string `mapstructure:"text" toml:"text" json:"text"`
	Muted          string `mapstructure:"muted" toml:"muted" json:"muted"`
	Accent         string `mapstructure:"accent" toml:"accent" json:"accent"`
	Border         string `mapstructure:"border" toml:"border" json:"border"`
	// Merge tints the pane about to vanish during a merge gesture.
	Merge string `mapstructure:"merge" toml:"merge" json:"merge"`
	// Preview draws the split preview line during an edge drag.
	Preview string `mapstructure:"preview" toml:"preview" json:"preview"`
}

// LoggingConfig holds logging preferences.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// LogDir defaults to $XDG_STATE_HOME/panekit/logs.
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups"`
	MaxAgeDays    int    `mapstructure:"max_age_days" toml:"max_age_days" json:"max_age_days"`
	Compress      bool   `mapstructure:"compress" toml:"compress" json:"compress"`
}
