package tui

import (
	"vahedctl/pkg/config"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

const defaultAccent = "36" // turquoise

var (
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// accentColor returns the saved accent, or the default when none is saved.
func accentColor() string {
	if cfg, err := config.Load(); err == nil && cfg.AccentColor != "" {
		return cfg.AccentColor
	}
	return defaultAccent
}

// GetTheme builds the form theme from the saved accent color. Plain output
// printed afterwards uses the same accent.
func GetTheme() *huh.Theme {
	c := accentColor()
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	return GetCustomTheme(c)
}

// GetCustomTheme returns the form theme tinted with color, which may be an
// ANSI code or a #RRGGBB hex value.
func GetCustomTheme(color string) *huh.Theme {
	t := huh.ThemeCharm()
	accent := lipgloss.Color(color)

	f := &t.Focused
	f.Title = f.Title.Foreground(accent).Bold(true)
	f.Base = f.Base.Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1)
	f.SelectSelector = f.SelectSelector.Foreground(accent)
	f.SelectedOption = f.SelectedOption.Foreground(accent)
	f.TextInput.Cursor = f.TextInput.Cursor.Foreground(accent)
	f.TextInput.Prompt = f.TextInput.Prompt.Foreground(accent)
	f.FocusedButton = f.FocusedButton.Foreground(lipgloss.Color("0")).Background(accent)

	t.Blurred.Base = t.Blurred.Base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)
	return t
}

// RunTUI launches the main menu interactive form experience
func RunTUI(log zerolog.Logger) error {
	var action string

	initialForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What would you like to do?").
				Options(
					huh.NewOption("📚 Build Course Data", "build"),
					huh.NewOption("📝 Export Exam Calendar", "exams"),
					huh.NewOption("⚙️ Settings", "config"),
				).
				Value(&action),
		),
	).WithTheme(GetTheme())

	if err := initialForm.Run(); err != nil {
		return err
	}

	switch action {
	case "exams":
		return RunExamsTUI(log)
	case "config":
		return RunConfigTUI()
	}

	return RunBuildTUI(log)
}
