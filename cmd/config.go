package cmd

import (
	"fmt"

	"vahedctl/pkg/config"
	"vahedctl/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage vahedctl configuration",
	Long:  "View or edit your local configuration settings (input folder, output file, workers, theme).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if show, _ := cmd.Flags().GetBool("show"); show {
			tui.PrintConfig(cfg)
			return nil
		}

		changed := false
		if cmd.Flags().Changed("input-dir") {
			cfg.InputDir, _ = cmd.Flags().GetString("input-dir")
			changed = true
		}
		if cmd.Flags().Changed("output-file") {
			cfg.OutputFile, _ = cmd.Flags().GetString("output-file")
			changed = true
		}
		if cmd.Flags().Changed("var-name") {
			cfg.VarName, _ = cmd.Flags().GetString("var-name")
			changed = true
		}
		if cmd.Flags().Changed("extensions") {
			v, _ := cmd.Flags().GetString("extensions")
			cfg.Extensions = tui.SplitList(v)
			changed = true
		}
		if cmd.Flags().Changed("workers") {
			cfg.Workers, _ = cmd.Flags().GetInt("workers")
			changed = true
		}
		if cmd.Flags().Changed("cache") {
			enabled, _ := cmd.Flags().GetBool("cache")
			cfg.DisableCache = !enabled
			changed = true
		}

		if changed {
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Println("✅ Configuration saved.")
			return nil
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().Bool("show", false, "Print the current configuration")
	configCmd.Flags().String("input-dir", "", "Directory scanned for HTML exports")
	configCmd.Flags().String("output-file", "", "Data file written by build")
	configCmd.Flags().String("var-name", "", "JavaScript variable name in the data file")
	configCmd.Flags().String("extensions", "", "Comma separated file extensions to scan")
	configCmd.Flags().Int("workers", 0, "Pages parsed at once")
	configCmd.Flags().Bool("cache", true, "Reuse results of unchanged pages")
}
