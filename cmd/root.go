package cmd

import (
	"fmt"
	"os"

	"vahedctl/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// log receives row and document diagnostics; it is set up before any command runs.
var log = zerolog.Nop()

var rootCmd = &cobra.Command{
	Use:   "vahedctl",
	Short: "Turn saved course registration tables into course browser data",
	Long: `vahedctl reads the HTML pages of a university course registration table,
normalizes the Persian text in them, removes duplicate course sections and
writes a data file for the course browser. It can also export final exam
dates to an .ics calendar.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, _ := cmd.Flags().GetString("log-level")
		format, _ := cmd.Flags().GetString("log-format")
		log = logger.Setup(level, format, os.Stderr)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "Diagnostic log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "pretty", "Diagnostic log format (pretty or json)")
}
