package scraper

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"
	"unicode"

	"vahedctl/pkg/normalize"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Column layout of a registration table data row.
const (
	minCells = 13

	colIndex    = 0
	colFaculty  = 1
	colGroup    = 3
	colID       = 4
	colName     = 5
	colGender   = 11
	colProf     = 12
	colSchedule = 13
)

// RowPredicate decides whether the <td> cells of a row form a course section.
type RowPredicate func(cells *goquery.Selection) bool

// IsDataRow is the default RowPredicate. Header and separator rows use fewer
// columns, and only genuine data rows carry a numeric row index in the first
// cell.
func IsDataRow(cells *goquery.Selection) bool {
	if cells.Length() < minCells {
		return false
	}
	return isDigits(strippedText(cells.Eq(colIndex)))
}

// Extractor turns registration table rows into course records.
type Extractor struct {
	isDataRow RowPredicate
	onFault   func(*RowError)
	onSkip    func(row int)
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithRowPredicate replaces the data row classification.
func WithRowPredicate(p RowPredicate) Option {
	return func(e *Extractor) {
		if p != nil {
			e.isDataRow = p
		}
	}
}

// WithFaultHandler is called for every data row that fails extraction.
func WithFaultHandler(fn func(*RowError)) Option {
	return func(e *Extractor) { e.onFault = fn }
}

// WithSkipHandler is called for every row that is not a data row.
func WithSkipHandler(fn func(row int)) Option {
	return func(e *Extractor) { e.onSkip = fn }
}

// NewExtractor creates an extractor using IsDataRow unless overridden.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{isDataRow: IsDataRow}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rows yields the records of doc in document row order. Rows that are not
// data rows are skipped silently, rows that fail extraction are reported to
// the fault handler and skipped.
func (e *Extractor) Rows(doc *goquery.Document) iter.Seq[CourseRecord] {
	return func(yield func(CourseRecord) bool) {
		rows := doc.Find("tr")
		for i := range rows.Length() {
			cells := rows.Eq(i).Find("td")
			if !e.isDataRow(cells) {
				if e.onSkip != nil {
					e.onSkip(i)
				}
				continue
			}

			rec, err := extractRecord(cells)
			if err != nil {
				if e.onFault != nil {
					e.onFault(&RowError{Row: i, Err: err})
				}
				continue
			}

			if !yield(rec) {
				return
			}
		}
	}
}

// ExtractRows collects every record of doc.
func (e *Extractor) ExtractRows(doc *goquery.Document) []CourseRecord {
	return slices.Collect(e.Rows(doc))
}

// ParseDocument parses an HTML registration export and extracts its records.
// The reader must yield UTF-8.
func (e *Extractor) ParseDocument(r io.Reader) ([]CourseRecord, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse failed: %w", err)
	}
	return e.ExtractRows(doc), nil
}

func extractRecord(cells *goquery.Selection) (rec CourseRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extract failed: %v", r)
		}
	}()

	if n := cells.Length(); n <= colSchedule {
		return CourseRecord{}, fmt.Errorf("%w: column %d of %d", ErrMissingCell, colSchedule, n)
	}

	text := func(col int) string {
		return normalize.Normalize(cells.Eq(col).Text())
	}

	schedule := cells.Eq(colSchedule)
	markup, err := goquery.OuterHtml(schedule)
	if err != nil {
		return CourseRecord{}, fmt.Errorf("render schedule cell: %w", err)
	}

	rec = CourseRecord{
		ID:       text(colID),
		Name:     text(colName),
		Faculty:  text(colFaculty),
		Group:    text(colGroup),
		Gender:   text(colGender),
		Prof:     text(colProf),
		TimeHTML: normalize.FixLetterforms(markup),
		ExamText: normalize.Normalize(joinedText(schedule, " ")),
	}
	if rec.ID == "" {
		return CourseRecord{}, ErrEmptyID
	}
	return rec, nil
}

// strippedText concatenates the trimmed text nodes of sel without a separator.
func strippedText(sel *goquery.Selection) string {
	return joinedText(sel, "")
}

// joinedText joins the trimmed, non-empty text nodes under sel with sep, so
// lines split by <br> or block children end up as separate words.
func joinedText(sel *goquery.Selection, sep string) string {
	var pieces []string
	for _, n := range sel.Nodes {
		pieces = textPieces(n, pieces)
	}
	return strings.Join(pieces, sep)
}

func textPieces(n *html.Node, pieces []string) []string {
	if n.Type == html.TextNode {
		if s := strings.TrimSpace(n.Data); s != "" {
			pieces = append(pieces, s)
		}
		return pieces
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		pieces = textPieces(c, pieces)
	}
	return pieces
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
