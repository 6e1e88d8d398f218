package timetable

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"ntucal/internal/model"
)

// GenerateEvents expands parsed courses into concrete calendar events, one
// per class occurrence plus one per exam. Class periods are wall-clock times
// at the given UTC offset (in minutes, may be negative) and come out as UTC
// instants.
//
// Output order follows the table: courses in parse order, each course's
// class events in class order then week-ascending order, exam event last.
func GenerateEvents(courses []Course, semesterStart time.Time, offsetMinutes int) ([]model.EventRecord, error) {
	loc := time.FixedZone("", offsetMinutes*60)

	var events []model.EventRecord
	for _, course := range courses {
		for _, class := range course.Classes {
			classEvents, err := generateClassEvents(course, class, semesterStart, loc)
			if err != nil {
				return nil, err
			}
			events = append(events, classEvents...)
		}
		if course.Exam != nil {
			events = append(events, generateExamEvent(course, *course.Exam, loc))
		}
	}
	return events, nil
}

func generateClassEvents(course Course, class Class, semesterStart time.Time, loc *time.Location) ([]model.EventRecord, error) {
	summary := fmt.Sprintf("%s - %s %s", course.Code, course.Title, class.ClassType)

	// Anchor on the class's weekday within the semester's starting ISO week.
	year, week := semesterStart.ISOWeek()
	first, err := isoWeekDate(year, week, class.Weekday)
	if err != nil {
		return nil, err
	}

	events := make([]model.EventRecord, 0, len(class.Weeks))
	for _, w := range class.Weeks {
		date := first.AddDate(0, 0, 7*(int(w)-1))
		events = append(events, model.EventRecord{
			UID:       newEventUID(course.Code),
			CreatedAt: time.Now().UTC(),
			Summary:   summary,
			Category:  class.ClassType,
			Location:  class.Venue,
			Start:     class.Period.Start.At(date, loc).UTC(),
			End:       class.Period.End.At(date, loc).UTC(),
		})
	}
	return events, nil
}

func generateExamEvent(course Course, exam Exam, loc *time.Location) model.EventRecord {
	return model.EventRecord{
		UID:       newEventUID(course.Code),
		CreatedAt: time.Now().UTC(),
		Summary:   fmt.Sprintf("%s - %s Exam", course.Code, course.Title),
		Category:  "Exam",
		Start:     exam.Period.Start.At(exam.Date, loc).UTC(),
		End:       exam.Period.End.At(exam.Date, loc).UTC(),
	}
}

func newEventUID(courseCode string) string {
	return fmt.Sprintf("%s-%s", courseCode, uuid.New())
}

// isoWeekDate resolves an ISO (year, week, weekday) triple to a calendar
// date at midnight UTC. Triples that do not exist (week 53 in a 52-week
// year, week 0) fail; the result is never clamped into range.
func isoWeekDate(year, week int, weekday time.Weekday) (time.Time, error) {
	// January 4 is always inside ISO week 1 of its year.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	week1Monday := jan4.AddDate(0, 0, 1-isoWeekdayNumber(jan4.Weekday()))
	date := week1Monday.AddDate(0, 0, 7*(week-1)+isoWeekdayNumber(weekday)-1)

	if y, w := date.ISOWeek(); y != year || w != week {
		return time.Time{}, &DateResolutionError{Year: year, Week: week, Weekday: weekday.String()}
	}
	return date, nil
}

// isoWeekdayNumber maps to ISO-8601 numbering: Monday=1 .. Sunday=7.
func isoWeekdayNumber(wd time.Weekday) int {
	if wd == time.Sunday {
		return 7
	}
	return int(wd)
}
