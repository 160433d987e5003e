package cmd

import (
	"context"
	"errors"

	"vahedctl/pkg/config"
	"vahedctl/pkg/pipeline"
	"vahedctl/pkg/source"
	"vahedctl/pkg/tui"

	"github.com/spf13/cobra"
)

// addInputFlags registers the flags shared by commands that read exports.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", "", "Directory with saved HTML exports (default from config, then raw_data)")
	cmd.Flags().StringSlice("ext", nil, "File extensions to scan (default .html,.htm)")
	cmd.Flags().StringArray("url", nil, "Also fetch an export from this URL (repeatable)")
	cmd.Flags().IntP("workers", "w", 0, "Pages parsed at once (default from config, then 1)")
	cmd.Flags().Bool("no-cache", false, "Parse every page even if it was seen before")
}

// loadSettings merges flags over the saved config over defaults.
func loadSettings(cmd *cobra.Command) (config.AppConfig, error) {
	saved, err := config.Load()
	if err != nil {
		return config.AppConfig{}, err
	}
	cfg := *saved

	if v, _ := cmd.Flags().GetString("input"); v != "" {
		cfg.InputDir = v
	}
	if v, _ := cmd.Flags().GetStringSlice("ext"); len(v) > 0 {
		cfg.Extensions = v
	}
	if v, _ := cmd.Flags().GetInt("workers"); v > 0 {
		cfg.Workers = v
	}
	if v, _ := cmd.Flags().GetBool("no-cache"); v {
		cfg.DisableCache = true
	}

	return cfg.WithDefaults(), nil
}

// collect runs the pipeline over everything the flags and config point at.
// ok is false when the input directory had to be created first.
func collect(ctx context.Context, cmd *cobra.Command, cfg config.AppConfig) (res *pipeline.Result, ok bool, err error) {
	urls, _ := cmd.Flags().GetStringArray("url")

	tui.Spin("Extracting courses...", func() {
		res, err = pipeline.Collect(ctx,
			pipeline.Input{Dir: cfg.InputDir, Extensions: cfg.Extensions, URLs: urls},
			pipeline.Options{Workers: cfg.Workers, Cache: !cfg.DisableCache, Logger: log},
		)
	})

	if errors.Is(err, source.ErrNoInputDir) {
		return nil, false, tui.ReportMissingInputDir(cfg.InputDir)
	}
	if err != nil {
		return nil, false, err
	}
	return res, true, nil
}
