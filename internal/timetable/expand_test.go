package timetable

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCourse(code, title string, classes []Class, exam *Exam) Course {
	return Course{
		Code:       code,
		Title:      title,
		AU:         "3.0",
		CourseType: "CORE",
		Index:      "10139",
		Status:     "REGISTERED",
		Classes:    classes,
		Exam:       exam,
	}
}

func mondayClass(weeks ...uint32) Class {
	return Class{
		Weekday:   time.Monday,
		Period:    Period{Start: TimeOfDay{Hour: 9, Minute: 30}, End: TimeOfDay{Hour: 11, Minute: 30}},
		Venue:     "LT19A",
		Group:     "CS3",
		Weeks:     weeks,
		ClassType: "LEC/STUDIO",
	}
}

func TestGenerateEventsOccurrencesFortnightApart(t *testing.T) {
	courses := []Course{testCourse("SC1003", "INTRO", []Class{mondayClass(1, 3)}, nil)}

	// 2024-01-08 is a Monday in ISO week 2 of 2024.
	semesterStart := time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)
	events, err := GenerateEvents(courses, semesterStart, 0)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, time.Date(2024, time.January, 8, 9, 30, 0, 0, time.UTC), events[0].Start)
	assert.Equal(t, time.Date(2024, time.January, 8, 11, 30, 0, 0, time.UTC), events[0].End)
	assert.Equal(t, 14*24*time.Hour, events[1].Start.Sub(events[0].Start))
}

func TestGenerateEventsAppliesUTCOffset(t *testing.T) {
	courses := []Course{testCourse("SC1003", "INTRO", []Class{mondayClass(1)}, nil)}
	semesterStart := time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)

	// 09:30 at +08:00 is 01:30 UTC.
	events, err := GenerateEvents(courses, semesterStart, 8*60)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, time.Date(2024, time.January, 8, 1, 30, 0, 0, time.UTC), events[0].Start)

	// Negative offsets shift the other way: 09:30 at -05:00 is 14:30 UTC.
	events, err = GenerateEvents(courses, semesterStart, -5*60)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 8, 14, 30, 0, 0, time.UTC), events[0].Start)
}

func TestGenerateEventsStartsOnClassWeekday(t *testing.T) {
	class := mondayClass(1)
	class.Weekday = time.Thursday
	courses := []Course{testCourse("SC1003", "INTRO", []Class{class}, nil)}

	// Semester start mid-week still anchors on the class weekday of that
	// same ISO week.
	semesterStart := time.Date(2024, time.January, 9, 0, 0, 0, 0, time.UTC) // Tuesday
	events, err := GenerateEvents(courses, semesterStart, 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, time.Date(2024, time.January, 11, 9, 30, 0, 0, time.UTC), events[0].Start)
}

func TestGenerateEventsOrderAndShape(t *testing.T) {
	exam := &Exam{
		Date:   time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC),
		Period: Period{Start: TimeOfDay{Hour: 9}, End: TimeOfDay{Hour: 11}},
	}
	tut := mondayClass(2)
	tut.ClassType = "TUT"
	tut.Weekday = time.Friday
	courses := []Course{
		testCourse("SC1003", "INTRO", []Class{mondayClass(1, 2), tut}, exam),
		testCourse("MH1812", "DISCRETE MATHEMATICS", []Class{mondayClass(1)}, nil),
	}

	semesterStart := time.Date(2023, time.August, 14, 0, 0, 0, 0, time.UTC)
	events, err := GenerateEvents(courses, semesterStart, 8*60)
	require.NoError(t, err)

	// One event per class-week pair plus one per exam-bearing course.
	require.Len(t, events, 5)

	assert.Equal(t, "SC1003 - INTRO LEC/STUDIO", events[0].Summary)
	assert.Equal(t, "SC1003 - INTRO LEC/STUDIO", events[1].Summary)
	assert.True(t, events[0].Start.Before(events[1].Start))
	assert.Equal(t, "SC1003 - INTRO TUT", events[2].Summary)
	assert.Equal(t, "TUT", events[2].Category)

	// Exam comes after all of its course's class events.
	assert.Equal(t, "SC1003 - INTRO Exam", events[3].Summary)
	assert.Equal(t, "Exam", events[3].Category)
	assert.Empty(t, events[3].Location)
	assert.Equal(t, time.Date(2023, time.December, 1, 1, 0, 0, 0, time.UTC), events[3].Start)

	assert.Equal(t, "MH1812 - DISCRETE MATHEMATICS LEC/STUDIO", events[4].Summary)

	for _, ev := range events {
		assert.Equal(t, time.UTC, ev.Start.Location())
		assert.Equal(t, time.UTC, ev.End.Location())
		assert.False(t, ev.CreatedAt.IsZero())
	}
	assert.True(t, strings.HasPrefix(events[0].UID, "SC1003-"))
	assert.True(t, strings.HasPrefix(events[4].UID, "MH1812-"))
	assert.NotEqual(t, events[0].UID, events[1].UID)
}

func TestGenerateEventsClassEventsCarryVenue(t *testing.T) {
	courses := []Course{testCourse("SC1003", "INTRO", []Class{mondayClass(1)}, nil)}
	semesterStart := time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)

	events, err := GenerateEvents(courses, semesterStart, 0)
	require.NoError(t, err)
	assert.Equal(t, "LT19A", events[0].Location)
	assert.Equal(t, "LEC/STUDIO", events[0].Category)
}

func TestIsoWeekDate(t *testing.T) {
	d, err := isoWeekDate(2024, 2, time.Monday)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC), d)

	d, err = isoWeekDate(2021, 1, time.Friday)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2021, time.January, 8, 0, 0, 0, 0, time.UTC), d)

	// Sunday is day 7 of the ISO week, not day 0.
	d, err = isoWeekDate(2024, 2, time.Sunday)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 14, 0, 0, 0, 0, time.UTC), d)

	// 2020 is one of the years with 53 ISO weeks.
	d, err = isoWeekDate(2020, 53, time.Wednesday)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, time.December, 30, 0, 0, 0, 0, time.UTC), d)
}

func TestIsoWeekDateRejectsMissingWeeks(t *testing.T) {
	// 2023 has only 52 ISO weeks.
	_, err := isoWeekDate(2023, 53, time.Monday)
	var derr *DateResolutionError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, 2023, derr.Year)
	assert.Equal(t, 53, derr.Week)
	assert.Equal(t, "Monday", derr.Weekday)

	_, err = isoWeekDate(2023, 0, time.Monday)
	require.ErrorAs(t, err, &derr)
}
