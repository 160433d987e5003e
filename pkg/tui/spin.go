package tui

import (
	"fmt"
	"os"

	"vahedctl/pkg/pipeline"

	"github.com/charmbracelet/huh/spinner"
	"golang.org/x/term"
)

// Spin runs action behind a spinner. Without a terminal the action runs
// directly so piped and scheduled runs still do their work.
func Spin(title string, action func()) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		action()
		return
	}

	_ = spinner.New().
		Title(title).
		Action(action).
		Run()
}

// PrintSummary prints the outcome of a pipeline run.
func PrintSummary(stats pipeline.Stats) {
	fmt.Println(accentStyle.Bold(true).Render(fmt.Sprintf("%d unique courses", stats.Unique)))

	lines := []struct {
		label string
		value int
	}{
		{"Documents", stats.Documents},
		{"Failed documents", stats.FailedDocuments},
		{"From cache", stats.CacheHits},
		{"Rows extracted", stats.Extracted},
		{"Rows skipped", stats.RowsSkipped},
		{"Broken rows", stats.RowFaults},
	}
	for _, l := range lines {
		if l.value == 0 && l.label != "Documents" {
			continue
		}
		fmt.Printf("  %s %d\n", mutedStyle.Render(fmt.Sprintf("%-17s", l.label)), l.value)
	}
}

// ReportMissingInputDir creates the input directory and tells the user to
// fill it, mirroring what happens on a first run.
func ReportMissingInputDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create input directory: %w", err)
	}
	fmt.Println(errorStyle.Render(fmt.Sprintf("Created '%s'. Put the saved HTML exports in it and run again.", dir)))
	return nil
}
