package timetable

import "fmt"

// TableStructureError reports a logical record that does not fill the fixed
// 16-column width. Row is the 0-based chunk index, not a raw line number.
type TableStructureError struct {
	Row      int
	Expected int
	Actual   int
}

func (e *TableStructureError) Error() string {
	return fmt.Sprintf("timetable: missing columns in row %d: expected %d, found %d",
		e.Row, e.Expected, e.Actual)
}

// UnknownCourseError reports a class row encountered before any course
// header established a current course.
type UnknownCourseError struct {
	Row   int
	Class Class
}

func (e *UnknownCourseError) Error() string {
	return fmt.Sprintf("timetable: row %d has class %q (%s %s at %s) but no course to attach it to",
		e.Row, e.Class.ClassType, e.Class.Weekday, e.Class.Group, e.Class.Venue)
}

// FieldFormatError reports a single token that fails its expected pattern or
// does not resolve to a valid calendar or clock value.
type FieldFormatError struct {
	Field  string
	Token  string
	Reason string
}

func (e *FieldFormatError) Error() string {
	return fmt.Sprintf("timetable: invalid %s %q: %s", e.Field, e.Token, e.Reason)
}

// DateResolutionError reports an ISO (year, week, weekday) triple with no
// corresponding calendar date.
type DateResolutionError struct {
	Year    int
	Week    int
	Weekday string
}

func (e *DateResolutionError) Error() string {
	return fmt.Sprintf("timetable: no date for ISO year %d, week %d, weekday %s",
		e.Year, e.Week, e.Weekday)
}
