package cmd

import (
	"vahedctl/pkg/tui"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive TUI",
	Long:  `Launch the Text User Interface to build the course data file, export exam dates, or change settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.RunTUI(log)
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
