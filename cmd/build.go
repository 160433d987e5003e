package cmd

import (
	"fmt"
	"io"

	"vahedctl/pkg/exporter"
	"vahedctl/pkg/tui"

	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Extract courses from saved HTML exports into the data file",
	Long: `Scan the input directory for saved registration table pages, extract one
record per course section, drop repeated sections (the first page that lists
a section wins) and write the result for the course browser.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = cfg.OutputFile
		}
		varName, _ := cmd.Flags().GetString("var")
		if varName == "" {
			varName = cfg.VarName
		}
		format, _ := cmd.Flags().GetString("format")
		if format != "js" && format != "json" {
			return fmt.Errorf("unknown format %q, expected js or json", format)
		}
		if format == "js" && !exporter.ValidVarName(varName) {
			return fmt.Errorf("invalid variable name %q", varName)
		}

		res, ok, err := collect(cmd.Context(), cmd, cfg)
		if err != nil || !ok {
			return err
		}

		err = exporter.WriteFile(output, func(w io.Writer) error {
			if format == "json" {
				return exporter.WriteJSON(w, res.Records)
			}
			return exporter.WriteJS(w, varName, res.Records)
		})
		if err != nil {
			return err
		}

		tui.PrintSummary(res.Stats)
		fmt.Printf("Done! %d courses saved to %s\n", len(res.Records), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)

	addInputFlags(buildCmd)
	buildCmd.Flags().StringP("output", "o", "", "Output file path (default from config, then assets/js/data.js)")
	buildCmd.Flags().String("var", "", "JavaScript variable name (default UNIVERSITY_DATA)")
	buildCmd.Flags().StringP("format", "f", "js", "Output format: js or json")
}
