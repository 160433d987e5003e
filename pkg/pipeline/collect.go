package pipeline

import (
	"context"
	"errors"

	"vahedctl/pkg/scraper"
	"vahedctl/pkg/source"
)

// Input names where the exports of a run come from: a directory scanned
// for files with one of Extensions, and URLs fetched after it.
type Input struct {
	Dir        string
	Extensions []string
	URLs       []string
}

// Collect gathers the documents named by in and runs the pipeline over them.
// Directory documents come first in file name order, then URLs in the
// order given. A missing directory is an error unless URLs were given.
func Collect(ctx context.Context, in Input, opts Options) (*Result, error) {
	var docs []source.Document

	if in.Dir != "" {
		found, err := source.ScanDir(in.Dir, in.Extensions, opts.Logger)
		switch {
		case errors.Is(err, source.ErrNoInputDir) && len(in.URLs) > 0:
			opts.Logger.Warn().Str("dir", in.Dir).Msg("input directory missing, using URLs only")
		case err != nil:
			return nil, err
		}
		docs = append(docs, found...)
	}

	if len(in.URLs) > 0 {
		fetched, err := source.Fetch(ctx, scraper.NewClient(), in.URLs, opts.Logger)
		if err != nil {
			return nil, err
		}
		docs = append(docs, fetched...)
	}

	opts.Logger.Debug().Int("documents", len(docs)).Msg("collected documents")
	return Run(ctx, docs, opts)
}
