package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"vahedctl/pkg/exporter"
)

// Defaults used when neither a flag nor the config file sets a value.
const (
	DefaultInputDir     = "raw_data"
	DefaultOutputFile   = "assets/js/data.js"
	DefaultVarName      = exporter.DefaultVarName
	DefaultExamCalendar = "exams.ics"
)

// DefaultExtensions are the file types scanned in the input directory.
var DefaultExtensions = []string{".html", ".htm"}

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	InputDir         string   `json:"input_dir,omitempty"`
	OutputFile       string   `json:"output_file,omitempty"`
	VarName          string   `json:"var_name,omitempty"`
	Extensions       []string `json:"extensions,omitempty"`
	Workers          int      `json:"workers,omitempty"`
	DisableCache     bool     `json:"disable_cache,omitempty"`
	ExamCalendarFile string   `json:"exam_calendar_file,omitempty"`
	AccentColor      string   `json:"accent_color,omitempty"`
}

// WithDefaults returns a copy with every unset field filled in.
func (c AppConfig) WithDefaults() AppConfig {
	if c.InputDir == "" {
		c.InputDir = DefaultInputDir
	}
	if c.OutputFile == "" {
		c.OutputFile = DefaultOutputFile
	}
	if c.VarName == "" {
		c.VarName = DefaultVarName
	}
	if len(c.Extensions) == 0 {
		c.Extensions = append([]string(nil), DefaultExtensions...)
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.ExamCalendarFile == "" {
		c.ExamCalendarFile = DefaultExamCalendar
	}
	return c
}

// Validate reports settings that would make a run fail later.
func (c AppConfig) Validate() error {
	if c.VarName != "" && !exporter.ValidVarName(c.VarName) {
		return fmt.Errorf("invalid variable name %q", c.VarName)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	for _, ext := range c.Extensions {
		if strings.ContainsAny(ext, `/\`) {
			return fmt.Errorf("invalid extension %q", ext)
		}
	}
	return nil
}

// path returns ~/.vahedctl.json
func path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(home, ".vahedctl.json"), nil
}

// Load reads the saved settings. A missing file yields an empty config.
func Load() (*AppConfig, error) {
	p, err := path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return &AppConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &AppConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", p, err)
	}
	return cfg, nil
}

// Save validates cfg and replaces the settings file with it.
func Save(cfg *AppConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	p, err := path()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	// replace atomically
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Rename(tmp, p); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
