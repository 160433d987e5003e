package cmd

import (
	"fmt"
	"io"

	"vahedctl/pkg/exporter"

	"github.com/spf13/cobra"
)

var examsCmd = &cobra.Command{
	Use:   "exams",
	Short: "Export final exam dates to an ICS file",
	Long: `Read the same exports as build and write one calendar event per course
section whose schedule names an exam date and time.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = cfg.ExamCalendarFile
		}

		res, ok, err := collect(cmd.Context(), cmd, cfg)
		if err != nil || !ok {
			return err
		}

		exams := exporter.CountExams(res.Records)
		if exams == 0 {
			return fmt.Errorf("no exam dates found in %d courses", len(res.Records))
		}

		err = exporter.WriteFile(output, func(w io.Writer) error {
			return exporter.GenerateExamICS(res.Records, w)
		})
		if err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Printf("Successfully exported %d exams to %s\n", exams, output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(examsCmd)

	addInputFlags(examsCmd)
	examsCmd.Flags().StringP("output", "o", "", "Output file path (default from config, then exams.ics)")
}
