package exporter

import (
	"bytes"
	"strings"
	"testing"

	"vahedctl/pkg/scraper"
)

func TestGenerateExamICS(t *testing.T) {
	records := []scraper.CourseRecord{
		{
			ID:       "1214012_01",
			Name:     "ریاضی 1",
			Group:    "01",
			Prof:     "رضایی",
			ExamText: "درس(ت): شنبه 10:00-12:00 امتحان(1403/10/15) ساعت : 08:00-10:00",
		},
		{
			ID:       "1214013_01",
			Name:     "بدون امتحان",
			ExamText: "درس(ت): شنبه 10:00-12:00",
		},
	}

	var buf bytes.Buffer
	err := GenerateExamICS(records, &buf)
	if err != nil {
		t.Fatalf("GenerateExamICS failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "SUMMARY:ریاضی 1") {
		t.Errorf("Expected ICS to contain course summary, got: \n%s", output)
	}

	if strings.Contains(output, "بدون امتحان") {
		t.Errorf("Expected course without an exam slot to be skipped")
	}

	// 15 Dey 1403 is 4 Jan 2025; 08:00 Tehran time is 04:30 UTC.
	if !strings.Contains(output, "DTSTART:20250104T043000Z") {
		t.Errorf("Expected start time string in ICS (should be UTC), got: \n%s", output)
	}
	if !strings.Contains(output, "DTEND:20250104T063000Z") {
		t.Errorf("Expected end time string in ICS (should be UTC), got: \n%s", output)
	}

	if got := strings.Count(output, "BEGIN:VEVENT"); got != 1 {
		t.Errorf("Expected 1 event, got %d", got)
	}
}

func TestGenerateExamICS_SkipsImpossibleDates(t *testing.T) {
	records := []scraper.CourseRecord{
		{ID: "x", Name: "bad", ExamText: "امتحان(1403/07/31) ساعت : 08:00-10:00"},
		{ID: "y", Name: "reversed", ExamText: "امتحان(1403/07/01) ساعت : 10:00-08:00"},
	}

	var buf bytes.Buffer
	if err := GenerateExamICS(records, &buf); err != nil {
		t.Fatalf("GenerateExamICS failed: %v", err)
	}
	if strings.Contains(buf.String(), "BEGIN:VEVENT") {
		t.Errorf("Expected no events, got: \n%s", buf.String())
	}
	if CountExams(records) != 0 {
		t.Errorf("Expected CountExams to agree with the calendar")
	}
}
