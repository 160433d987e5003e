package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"vahedctl/pkg/config"
	"vahedctl/pkg/exporter"
	"vahedctl/pkg/pipeline"
	"vahedctl/pkg/source"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog"
)

// runForm asks for the input directory and an output path, prefilled from the saved config.
func runForm(cfg *config.AppConfig, outputTitle string, output *string) error {
	useCache := !cfg.DisableCache

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Input directory").
				Description("Folder with the saved registration table pages (.html / .htm)").
				Value(&cfg.InputDir),

			huh.NewInput().
				Title(outputTitle).
				Value(output).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("file name cannot be empty")
					}
					return nil
				}),

			huh.NewConfirm().
				Title("Reuse results of unchanged pages?").
				Affirmative("Yes").
				Negative("No").
				Value(&useCache),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}
	cfg.DisableCache = !useCache
	return nil
}

// collect runs the pipeline over the configured input directory behind a spinner.
func collect(cfg config.AppConfig, log zerolog.Logger) (*pipeline.Result, error) {
	var res *pipeline.Result
	var err error

	Spin(fmt.Sprintf("Reading exports from %s...", cfg.InputDir), func() {
		res, err = pipeline.Collect(context.Background(),
			pipeline.Input{Dir: cfg.InputDir, Extensions: cfg.Extensions},
			pipeline.Options{Workers: cfg.Workers, Cache: !cfg.DisableCache, Logger: log},
		)
	})
	return res, err
}

// RunBuildTUI runs the interactive flow that writes the course data file
func RunBuildTUI(log zerolog.Logger) error {
	fmt.Println(accentStyle.Render("Build the course browser data file"))

	saved, _ := config.Load()
	if saved == nil {
		saved = &config.AppConfig{}
	}
	cfg := saved.WithDefaults()

	output := cfg.OutputFile
	if err := runForm(&cfg, "Output file", &output); err != nil {
		return err
	}

	res, err := collect(cfg, log)
	if errors.Is(err, source.ErrNoInputDir) {
		return ReportMissingInputDir(cfg.InputDir)
	}
	if err != nil {
		return err
	}

	err = exporter.WriteFile(output, func(w io.Writer) error {
		return exporter.WriteJS(w, cfg.VarName, res.Records)
	})
	if err != nil {
		return err
	}

	PrintSummary(res.Stats)
	fmt.Println(accentStyle.Render(fmt.Sprintf("\nSuccess! %d courses saved to %s", len(res.Records), output)))
	return nil
}

// RunExamsTUI runs the interactive flow that exports an exam calendar
func RunExamsTUI(log zerolog.Logger) error {
	fmt.Println(accentStyle.Render("Export final exams to a calendar"))

	saved, _ := config.Load()
	if saved == nil {
		saved = &config.AppConfig{}
	}
	cfg := saved.WithDefaults()

	output := cfg.ExamCalendarFile
	if err := runForm(&cfg, "Calendar file (.ics)", &output); err != nil {
		return err
	}

	res, err := collect(cfg, log)
	if errors.Is(err, source.ErrNoInputDir) {
		return ReportMissingInputDir(cfg.InputDir)
	}
	if err != nil {
		return err
	}

	exams := exporter.CountExams(res.Records)
	if exams == 0 {
		fmt.Println(errorStyle.Render("No exam dates found in the exports!"))
		return nil
	}

	err = exporter.WriteFile(output, func(w io.Writer) error {
		return exporter.GenerateExamICS(res.Records, w)
	})
	if err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nSuccess! Exported %d exams to %s", exams, output)))
	return nil
}
