package exporter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"vahedctl/pkg/scraper"
)

// DefaultVarName is the global the course browser reads its data from.
const DefaultVarName = "UNIVERSITY_DATA"

// WriteJS writes records as a script that declares them in a const, e.g.
// `const UNIVERSITY_DATA = [...];`. Persian text and markup are written as-is.
func WriteJS(w io.Writer, varName string, records []scraper.CourseRecord) error {
	if varName == "" {
		varName = DefaultVarName
	}
	if !ValidVarName(varName) {
		return fmt.Errorf("invalid variable name %q", varName)
	}

	data, err := encode(records, "")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "const %s = %s;", varName, data)
	return err
}

// WriteJSON writes records as an indented JSON array.
func WriteJSON(w io.Writer, records []scraper.CourseRecord) error {
	data, err := encode(records, "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func encode(records []scraper.CourseRecord, indent string) ([]byte, error) {
	if records == nil {
		records = []scraper.CourseRecord{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("failed to encode records: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// ValidVarName reports whether s can be used as a JavaScript const name.
func ValidVarName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
