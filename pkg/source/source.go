// Package source supplies registration export documents to the pipeline.
// It scans a directory or fetches URLs, and reports documents that cannot
// be read without stopping the others.
package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"vahedctl/pkg/scraper"

	"github.com/rs/zerolog"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// ErrNoInputDir is returned by ScanDir when the input directory does not exist.
var ErrNoInputDir = errors.New("input directory does not exist")

// Document is one HTML export, identified by file name or URL.
type Document struct {
	Name        string
	Body        []byte
	ContentType string // optional, from an HTTP response
}

// DocumentError reports a document that could not be read or parsed.
type DocumentError struct {
	Name string
	Err  error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("document %s: %v", e.Name, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// Report logs a document fault.
func Report(log zerolog.Logger, err error) {
	var de *DocumentError
	if errors.As(err, &de) {
		log.Warn().Str("document", de.Name).Err(de.Err).Msg("skipping document")
		return
	}
	log.Warn().Err(err).Msg("skipping document")
}

// ScanDir reads every regular file directly inside dir whose extension is
// one of exts, in lexicographic file name order. Unreadable files are
// reported and left out.
func ScanDir(dir string, exts []string, log zerolog.Logger) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoInputDir, dir)
		}
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !hasExt(e.Name(), exts) {
			continue
		}
		names = append(names, e.Name())
	}
	slices.Sort(names)

	docs := make([]Document, 0, len(names))
	for _, name := range names {
		body, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			Report(log, &DocumentError{Name: name, Err: err})
			continue
		}
		log.Debug().Str("document", name).Int("bytes", len(body)).Msg("found document")
		docs = append(docs, Document{Name: name, Body: body})
	}
	return docs, nil
}

// Fetch downloads each URL in order. Failed downloads are reported and left
// out; only cancellation of ctx is returned as an error.
func Fetch(ctx context.Context, client *scraper.Client, urls []string, log zerolog.Logger) ([]Document, error) {
	docs := make([]Document, 0, len(urls))
	for _, u := range urls {
		if err := ctx.Err(); err != nil {
			return docs, err
		}
		body, contentType, err := client.FetchDocument(ctx, u)
		if err != nil {
			Report(log, &DocumentError{Name: u, Err: err})
			continue
		}
		docs = append(docs, Document{Name: u, Body: body, ContentType: contentType})
	}
	return docs, nil
}

// Decode returns a UTF-8 reader over the document body and the name of the
// encoding it was read as. The encoding comes from a byte order mark, the
// content type or a <meta> charset declaration; exports saved from older
// registration portals are often windows-1256. Bodies without a declaration
// are read as UTF-8 when they are valid UTF-8.
func Decode(doc Document) (io.Reader, string) {
	enc, name, certain := charset.DetermineEncoding(doc.Body, doc.ContentType)
	if name == "utf-8" || (!certain && utf8.Valid(doc.Body)) {
		return bytes.NewReader(doc.Body), "utf-8"
	}
	return transform.NewReader(bytes.NewReader(doc.Body), enc.NewDecoder()), name
}

func hasExt(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return false
	}
	for _, e := range exts {
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}
