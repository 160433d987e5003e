package exporter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Exam is the final exam slot printed in a schedule cell.
type Exam struct {
	Year, Month, Day int // Solar Hijri
	Start, End       string
}

// Date returns the exam date as printed, e.g. "1403/10/15".
func (e Exam) Date() string {
	return fmt.Sprintf("%04d/%02d/%02d", e.Year, e.Month, e.Day)
}

var (
	examDate = regexp.MustCompile(`امتحان.*?\((\d{4})[/.](\d{1,2})[/.](\d{1,2})\)`)
	examTime = regexp.MustCompile(`امتحان.*?ساعت\s*:\s*(\d{1,2}:\d{2})\s*-\s*(\d{1,2}:\d{2})`)
)

// ParseExam finds the exam date and time in normalized schedule text.
// The date is the first parenthesized date after the word «امتحان», the
// time is the range after «ساعت :». Both must be present.
func ParseExam(examText string) (Exam, bool) {
	d := examDate.FindStringSubmatch(examText)
	if d == nil {
		return Exam{}, false
	}
	t := examTime.FindStringSubmatch(examText)
	if t == nil {
		return Exam{}, false
	}

	var e Exam
	e.Year, _ = strconv.Atoi(d[1])
	e.Month, _ = strconv.Atoi(d[2])
	e.Day, _ = strconv.Atoi(d[3])
	if e.Month < 1 || e.Month > 12 || e.Day < 1 || e.Day > 31 {
		return Exam{}, false
	}

	e.Start = strings.TrimSpace(t[1])
	e.End = strings.TrimSpace(t[2])
	return e, true
}
