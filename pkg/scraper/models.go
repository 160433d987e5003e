package scraper

// CourseRecord represents one offered course section from a registration table
type CourseRecord struct {
	ID       string `json:"id"`        // course code and group token, e.g. "1214012_01"
	Name     string `json:"name"`      // course title
	Faculty  string `json:"faculty"`   // offering faculty or department
	Group    string `json:"group"`     // section label
	Gender   string `json:"gender"`    // gender restriction as printed
	Prof     string `json:"prof"`      // instructor
	TimeHTML string `json:"time_html"` // raw schedule cell markup, letterforms fixed
	ExamText string `json:"exam_text"` // schedule cell text, fully normalized
}
