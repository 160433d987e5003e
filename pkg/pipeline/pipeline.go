// Package pipeline turns a set of registration exports into one
// deduplicated course list.
//
// Documents may be extracted in parallel, but the records are always folded
// in document order, so the first document that mentions an id decides its
// record no matter how many workers ran.
package pipeline

import (
	"context"

	"vahedctl/pkg/scraper"
	"vahedctl/pkg/source"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Options controls a pipeline run.
type Options struct {
	Workers   int                  // documents extracted at once, at least 1
	Cache     bool                 // reuse records of documents seen before; ignored with a custom IsDataRow
	Logger    zerolog.Logger       // receives row and document diagnostics
	IsDataRow scraper.RowPredicate // nil means scraper.IsDataRow
}

// Stats summarizes a run.
type Stats struct {
	Documents       int `json:"documents"`
	FailedDocuments int `json:"failed_documents"`
	CacheHits       int `json:"cache_hits"`
	RowsSkipped     int `json:"rows_skipped"`
	RowFaults       int `json:"row_faults"`
	Extracted       int `json:"extracted"`
	Unique          int `json:"unique"`
}

// Result is the outcome of Run.
type Result struct {
	Records []scraper.CourseRecord
	Stats   Stats
}

type docResult struct {
	records []scraper.CourseRecord
	skipped int
	faults  int
	failed  bool
	cached  bool
}

// Run extracts every document and deduplicates the union of their records.
// Broken rows and documents are logged and skipped; the only error returned
// is the cancellation of ctx.
func Run(ctx context.Context, docs []source.Document, opts Options) (*Result, error) {
	results := make([]docResult, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))
	for i, doc := range docs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = extractDocument(doc, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := Stats{Documents: len(docs)}
	dedup := scraper.NewDeduplicator()
	for _, r := range results {
		if r.failed {
			stats.FailedDocuments++
			continue
		}
		if r.cached {
			stats.CacheHits++
		}
		stats.RowsSkipped += r.skipped
		stats.RowFaults += r.faults
		stats.Extracted += len(r.records)
		dedup.Add(r.records...)
	}
	stats.Unique = dedup.Len()

	return &Result{Records: dedup.Records(), Stats: stats}, nil
}

func extractDocument(doc source.Document, opts Options) docResult {
	log := opts.Logger.With().Str("document", doc.Name).Logger()

	// cached records were classified by the default predicate
	useCache := opts.Cache && opts.IsDataRow == nil

	if useCache {
		if records, ok := scraper.ReadCache(doc.Body); ok {
			log.Debug().Int("records", len(records)).Msg("cache hit")
			return docResult{records: records, cached: true}
		}
	}

	var res docResult
	ext := scraper.NewExtractor(
		scraper.WithRowPredicate(opts.IsDataRow),
		scraper.WithSkipHandler(func(int) { res.skipped++ }),
		scraper.WithFaultHandler(func(err *scraper.RowError) {
			res.faults++
			log.Warn().Int("row", err.Row).Err(err.Err).Msg("skipping row")
		}),
	)

	r, encoding := source.Decode(doc)
	records, err := ext.ParseDocument(r)
	if err != nil {
		source.Report(opts.Logger, &source.DocumentError{Name: doc.Name, Err: err})
		return docResult{failed: true}
	}

	log.Debug().
		Str("encoding", encoding).
		Int("records", len(records)).
		Int("skipped", res.skipped).
		Msg("parsed document")

	if useCache {
		scraper.WriteCache(doc.Name, doc.Body, records)
	}
	res.records = records
	return res
}
