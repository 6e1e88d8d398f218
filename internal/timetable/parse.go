package timetable

import (
	"slices"
	"strings"
)

// numColumns is the fixed width of one logical record in the export.
const numColumns = 16

// Column roles within a 16-token record. Columns 4, 5 and 8 are present in
// the export but carry nothing the converter needs.
const (
	colCode       = 0
	colTitle      = 1
	colAU         = 2
	colCourseType = 3
	colIndex      = 6
	colStatus     = 7
	colClassType  = 9
	colGroup      = 10
	colWeekday    = 11
	colPeriod     = 12
	colVenue      = 13
	colWeeks      = 14
	colExam       = 15
)

// noExamMarker is what the export prints for courses without a final exam.
const noExamMarker = "Not Applicable"

// accumulator folds records into courses. Courses before the last one are
// finished; the last element is the current course that classes and exams
// attach to. A record whose header cells are incomplete starts no new course
// and is treated as a continuation of the current one.
type accumulator struct {
	courses []Course
}

func (a *accumulator) startCourse(c Course) {
	a.courses = append(a.courses, c)
}

func (a *accumulator) current() *Course {
	if len(a.courses) == 0 {
		return nil
	}
	return &a.courses[len(a.courses)-1]
}

// ParseTable converts the raw timetable export into courses. Newlines are
// stripped before framing, so cells wrapped across physical lines are joined
// back together; the remaining text is split on tabs and chunked into
// 16-column records. The first malformed record or cell aborts the parse.
func ParseTable(text string, recessWeek uint32) ([]Course, error) {
	tokens := strings.Split(strings.ReplaceAll(text, "\n", ""), "\t")
	for i, tok := range tokens {
		tokens[i] = strings.TrimSpace(tok)
	}

	var acc accumulator
	for row := 0; row*numColumns < len(tokens); row++ {
		record := tokens[row*numColumns:]
		if len(record) < numColumns {
			return nil, &TableStructureError{Row: row, Expected: numColumns, Actual: len(record)}
		}
		record = record[:numColumns]

		if err := parseRecord(&acc, row, record, recessWeek); err != nil {
			return nil, err
		}
	}
	return acc.courses, nil
}

func parseRecord(acc *accumulator, row int, record []string, recessWeek uint32) error {
	if c, ok := newCourse(
		record[colCode],
		record[colTitle],
		record[colAU],
		record[colCourseType],
		record[colIndex],
		record[colStatus],
	); ok {
		acc.startCourse(c)
	}

	if cell := record[colExam]; cell != "" && cell != noExamMarker {
		exam, err := ParseExam(cell)
		if err != nil {
			return err
		}
		if cur := acc.current(); cur != nil {
			cur.Exam = &exam
		}
	}

	// No class on this record.
	if record[colClassType] == "" {
		return nil
	}

	weekday, err := ParseWeekday(record[colWeekday])
	if err != nil {
		return err
	}
	period, err := ParsePeriod(record[colPeriod])
	if err != nil {
		return err
	}
	weeks, err := ParseWeeks(record[colWeeks], recessWeek)
	if err != nil {
		return err
	}
	slices.Sort(weeks)
	weeks = slices.Compact(weeks)

	class := Class{
		Weekday:   weekday,
		Period:    period,
		Venue:     record[colVenue],
		Group:     record[colGroup],
		Weeks:     weeks,
		ClassType: record[colClassType],
	}

	cur := acc.current()
	if cur == nil {
		return &UnknownCourseError{Row: row, Class: class}
	}
	cur.Classes = append(cur.Classes, class)
	return nil
}
