package tui

import (
	"fmt"
	"strconv"
	"strings"

	"vahedctl/pkg/config"
	"vahedctl/pkg/exporter"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Input and Output Paths", "paths"),
						huh.NewOption("Set Parallel Workers", "workers"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "theme":
			err = runSetThemeTUI(cfg)
		case "paths":
			err = runSetPathsTUI(cfg)
		case "workers":
			err = runSetWorkersTUI(cfg)
		case "view":
			PrintConfig(cfg)
		}

		if err != nil {
			return err
		}
	}
}

// PrintConfig shows the effective settings, marking values that fall back to defaults.
func PrintConfig(cfg *config.AppConfig) {
	eff := cfg.WithDefaults()
	mark := func(set bool) string {
		if set {
			return ""
		}
		return mutedStyle.Render(" (default)")
	}

	fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.vahedctl.json) ---"))
	fmt.Printf("Input Directory: %s%s\n", eff.InputDir, mark(cfg.InputDir != ""))
	fmt.Printf("Extensions: %s%s\n", strings.Join(eff.Extensions, ", "), mark(len(cfg.Extensions) > 0))
	fmt.Printf("Output File: %s%s\n", eff.OutputFile, mark(cfg.OutputFile != ""))
	fmt.Printf("Variable Name: %s%s\n", eff.VarName, mark(cfg.VarName != ""))
	fmt.Printf("Exam Calendar: %s%s\n", eff.ExamCalendarFile, mark(cfg.ExamCalendarFile != ""))
	fmt.Printf("Workers: %d%s\n", eff.Workers, mark(cfg.Workers > 0))
	fmt.Printf("Cache: %t\n", !eff.DisableCache)
	fmt.Printf("Accent Color: %s %s%s\n", colorBlock(accentColor()), accentColor(), mark(cfg.AccentColor != ""))
	fmt.Println()
}

func runSetPathsTUI(cfg *config.AppConfig) error {
	eff := cfg.WithDefaults()
	inputDir, outputFile, varName, calendar := eff.InputDir, eff.OutputFile, eff.VarName, eff.ExamCalendarFile
	extensions := strings.Join(eff.Extensions, ",")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Input directory").Value(&inputDir),
			huh.NewInput().
				Title("File extensions").
				Description("Comma separated, e.g. .html,.htm").
				Value(&extensions),
			huh.NewInput().Title("Data file").Value(&outputFile),
			huh.NewInput().
				Title("JavaScript variable name").
				Value(&varName).
				Validate(func(s string) error {
					if !exporter.ValidVarName(s) {
						return fmt.Errorf("must be a valid JavaScript identifier")
					}
					return nil
				}),
			huh.NewInput().Title("Exam calendar file").Value(&calendar),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.InputDir = inputDir
	cfg.OutputFile = outputFile
	cfg.VarName = varName
	cfg.ExamCalendarFile = calendar
	cfg.Extensions = SplitList(extensions)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Paths saved.\n"))
	return nil
}

func runSetWorkersTUI(cfg *config.AppConfig) error {
	workers := strconv.Itoa(cfg.WithDefaults().Workers)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("How many pages should be parsed at once?").
				Value(&workers).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 1 {
						return fmt.Errorf("enter a whole number of at least 1")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Workers, _ = strconv.Atoi(workers)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Workers set to %d\n", cfg.Workers)))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

// validHex accepts #RRGGBB.
func validHex(s string) error {
	if len(s) != 7 || s[0] != '#' {
		return fmt.Errorf("use the form #RRGGBB")
	}
	if _, err := strconv.ParseUint(s[1:], 16, 32); err != nil {
		return fmt.Errorf("use the form #RRGGBB")
	}
	return nil
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	choice := accentColor()

	options := []huh.Option[string]{}
	for _, c := range []struct{ name, code string }{
		{"Turquoise", defaultAccent},
		{"Saffron", "214"},
		{"Pomegranate", "161"},
		{"Lapis", "27"},
	} {
		options = append(options, huh.NewOption(fmt.Sprintf("%s %s", colorBlock(c.code), c.name), c.code))
	}
	options = append(options, huh.NewOption("Custom hex code", "custom"))

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Accent color").
				Options(options...).
				Value(&choice),
		),
	).WithTheme(GetTheme()).Run()
	if err != nil {
		return err
	}

	if choice == "custom" {
		choice = "#"
		err := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Hex color").
					Description("For example #1E90FF").
					Value(&choice).
					Validate(validHex),
			),
		).WithTheme(GetTheme()).Run()
		if err != nil {
			return err
		}
	}

	cfg.AccentColor = choice
	if cfg.AccentColor == defaultAccent {
		cfg.AccentColor = ""
	}
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(lipgloss.NewStyle().Foreground(lipgloss.Color(choice)).Render("\n✅ Accent color saved.\n"))
	return nil
}

// SplitList splits a comma separated flag or form value, dropping blanks.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
