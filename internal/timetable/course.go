package timetable

import "time"

// Course is one course entry from the timetable export. A course owns the
// classes parsed from its own row and any continuation rows that follow,
// plus at most one exam.
type Course struct {
	Code       string
	Title      string
	AU         string
	CourseType string
	Index      string
	Status     string

	Classes []Class
	Exam    *Exam
}

// Class is a weekly-recurring slot of a course. Weeks are sorted ascending,
// deduplicated, and already recess-adjusted.
type Class struct {
	Weekday   time.Weekday
	Period    Period
	Venue     string
	Group     string
	Weeks     []uint32
	ClassType string
}

// Exam carries the absolute date of a course's final exam.
type Exam struct {
	Date   time.Time // midnight UTC, date part only
	Period Period
}

// Period is a start/end time-of-day pair. Start preceding End is expected of
// well-formed input but not enforced here.
type Period struct {
	Start TimeOfDay
	End   TimeOfDay
}

// TimeOfDay is a wall-clock time with minute precision.
type TimeOfDay struct {
	Hour   int // 0..23
	Minute int // 0..59
}

// At anchors the time of day onto a calendar date in the given location.
func (t TimeOfDay) At(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour, t.Minute, 0, 0, loc)
}

// newCourse validates the six header fields. An empty field means the row is
// a continuation of the previous course rather than a new header.
func newCourse(code, title, au, courseType, index, status string) (Course, bool) {
	if code == "" || title == "" || au == "" || courseType == "" || index == "" || status == "" {
		return Course{}, false
	}
	return Course{
		Code:       code,
		Title:      title,
		AU:         au,
		CourseType: courseType,
		Index:      index,
		Status:     status,
	}, true
}
