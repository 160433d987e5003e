package exporter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"vahedctl/pkg/scraper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJS(t *testing.T) {
	records := []scraper.CourseRecord{{
		ID:       "1214012_01",
		Name:     "برنامه سازی",
		Faculty:  "مهندسی",
		Group:    "01",
		Gender:   "مختلط",
		Prof:     "علی رضایی",
		TimeHTML: "<td>شنبه<br/>10:00 & 12:00</td>",
		ExamText: "شنبه 10:00 & 12:00",
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteJS(&buf, "", records))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "const UNIVERSITY_DATA = ["), out)
	require.True(t, strings.HasSuffix(out, "];"), out)
	assert.Contains(t, out, `"name":"برنامه سازی"`)
	assert.Contains(t, out, `"time_html":"<td>شنبه<br/>10:00 & 12:00</td>"`)

	payload := strings.TrimSuffix(strings.TrimPrefix(out, "const UNIVERSITY_DATA = "), ";")
	var decoded []scraper.CourseRecord
	require.NoError(t, json.Unmarshal([]byte(payload), &decoded))
	assert.Equal(t, records, decoded)
}

func TestWriteJS_FieldNames(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJS(&buf, "DATA", []scraper.CourseRecord{{ID: "A"}}))

	payload := strings.TrimSuffix(strings.TrimPrefix(buf.String(), "const DATA = "), ";")
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(payload), &decoded))
	require.Len(t, decoded, 1)

	keys := make([]string, 0, len(decoded[0]))
	for k := range decoded[0] {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{"id", "name", "faculty", "group", "gender", "prof", "time_html", "exam_text"}, keys)
}

func TestWriteJS_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJS(&buf, "UNIVERSITY_DATA", nil))
	assert.Equal(t, "const UNIVERSITY_DATA = [];", buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, []scraper.CourseRecord{{ID: "A", Name: "ریاضی"}}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "[\n  {"), out)
	assert.Contains(t, out, `"name": "ریاضی"`)
	assert.True(t, strings.HasSuffix(out, "]\n"))
}

func TestWriteJS_InvalidVarName(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteJS(&buf, "1DATA", nil))
	assert.Empty(t, buf.String())
}

func TestValidVarName(t *testing.T) {
	for _, ok := range []string{"UNIVERSITY_DATA", "$data", "_x1"} {
		assert.True(t, ValidVarName(ok), ok)
	}
	for _, bad := range []string{"", "1x", "a-b", "a b", "داده"} {
		assert.False(t, ValidVarName(bad), bad)
	}
}
