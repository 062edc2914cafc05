package cmd

import (
	"errors"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/bnema/panekit/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := GetApp()
		if a == nil {
			return errors.New("app not initialized")
		}
		fmt.Fprintln(cmd.OutOrStdout(), a.Manager.GetConfigFile())
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Long: `Print the JSON schema of the config file.

With --write the schema is saved next to config.toml so editors with
TOML language servers can validate it.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if write, _ := cmd.Flags().GetBool("write"); write {
			path, err := config.GenerateSchemaFile()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema written to %s\n", path)
			return nil
		}
		data, err := config.MarshalSchema()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective layout and appearance settings",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := GetApp()
		if a == nil {
			return errors.New("app not initialized")
		}
		cfg := a.Config

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Key", "Value"})
		t.AppendRows([]table.Row{
			{"layout.min_size", fmt.Sprintf("%gpx", cfg.Layout.MinSize)},
			{"layout.merge_size", fmt.Sprintf("%gpx", cfg.Layout.MergeSize)},
			{"layout.drag_zone_cells", cfg.Layout.DragZoneCells},
			{"layout.initial_content", cfg.Layout.InitialContent},
			{"appearance.cell_width_px", cfg.Appearance.CellWidthPx},
			{"appearance.cell_height_px", cfg.Appearance.CellHeightPx},
			{"logging.level", cfg.Logging.Level},
			{"logging.enable_file_log", cfg.Logging.EnableFileLog},
			{"logging.log_dir", cfg.Logging.LogDir},
		})
		t.AppendFooter(table.Row{"file", a.Manager.GetConfigFile()})
		t.Render()
		return nil
	},
}

func init() {
	configSchemaCmd.Flags().Bool("write", false, "write the schema next to the config file")

	configCmd.AddCommand(configPathCmd, configSchemaCmd, configShowCmd)
	rootCmd.AddCommand(configCmd)
}
