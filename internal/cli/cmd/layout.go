package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/bnema/panekit/internal/cli"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Layout engine tools",
}

var layoutDemoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Replay a split, resize and merge gesture and print each layout",
	Long: `Replay a scripted gesture sequence on a 640x480 workspace without a
terminal UI: split the root pane by dragging its left edge, switch the new
pane to the Graph Editor, drag the divider, then drag it onto the border
to merge. The committed tree is printed after every step.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := GetApp()
		if a == nil {
			return errors.New("app not initialized")
		}
		steps, err := cli.ReplayScenario(a.Ctx(), a.Config, cli.SequentialIDs("c"))
		if err != nil {
			return err
		}
		cli.RenderSteps(cmd.OutOrStdout(), steps)
		return nil
	},
}

func init() {
	layoutCmd.AddCommand(layoutDemoCmd)
	rootCmd.AddCommand(layoutCmd)
}
