package exporter

import (
	"fmt"
	"io"
	"time"

	"vahedctl/pkg/scraper"

	ics "github.com/arran4/golang-ical"
)

// examDuration is used when a schedule prints only a start time.
const examDuration = 2 * time.Hour

// tehran returns the timezone exam times are printed in.
func tehran() *time.Location {
	if loc, err := time.LoadLocation("Asia/Tehran"); err == nil {
		return loc
	}
	return time.FixedZone("IRST", 3*60*60+30*60)
}

// Interval returns the exam start and end in loc.
func (e Exam) Interval(loc *time.Location) (time.Time, time.Time, error) {
	gy, gm, gd, err := jalaliToGregorian(e.Year, e.Month, e.Day)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	start, err := time.Parse("15:04", e.Start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid exam start %q: %w", e.Start, err)
	}
	startAt := time.Date(gy, gm, gd, start.Hour(), start.Minute(), 0, 0, loc)

	endAt := startAt.Add(examDuration)
	if e.End != "" {
		end, err := time.Parse("15:04", e.End)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid exam end %q: %w", e.End, err)
		}
		endAt = time.Date(gy, gm, gd, end.Hour(), end.Minute(), 0, 0, loc)
	}
	if !endAt.After(startAt) {
		return time.Time{}, time.Time{}, fmt.Errorf("exam ends before it starts: %s-%s", e.Start, e.End)
	}

	return startAt, endAt, nil
}

// GenerateExamICS creates a calendar with one event per course exam and writes it to the provided writer.
// Records without a readable exam date and time are left out.
func GenerateExamICS(records []scraper.CourseRecord, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	loc := tehran()
	now := time.Now()

	for _, r := range records {
		exam, ok := ParseExam(r.ExamText)
		if !ok {
			continue
		}

		startAt, endAt, err := exam.Interval(loc)
		if err != nil {
			continue // Skip impossible dates
		}

		event := cal.AddEvent(fmt.Sprintf("exam-%s", r.ID))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetModifiedAt(now)
		event.SetStartAt(startAt)
		event.SetEndAt(endAt)
		event.SetSummary(r.Name)

		description := fmt.Sprintf("Course: %s\nGroup: %s\nProfessor: %s", r.ID, r.Group, r.Prof)
		event.SetDescription(description)
	}

	return cal.SerializeTo(w)
}

// CountExams returns how many records carry a usable exam slot.
func CountExams(records []scraper.CourseRecord) int {
	loc := tehran()
	n := 0
	for _, r := range records {
		if exam, ok := ParseExam(r.ExamText); ok {
			if _, _, err := exam.Interval(loc); err == nil {
				n++
			}
		}
	}
	return n
}
