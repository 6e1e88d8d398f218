package ics

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ntucal/internal/model"
)

func TestEncode(t *testing.T) {
	records := []model.EventRecord{
		{
			UID:       "SC1003-7f6f9a32",
			CreatedAt: time.Date(2023, time.August, 1, 12, 0, 0, 0, time.UTC),
			Summary:   "SC1003 - INTRO LEC/STUDIO",
			Category:  "LEC/STUDIO",
			Location:  "LT19A",
			Start:     time.Date(2023, time.August, 14, 1, 30, 0, 0, time.UTC),
			End:       time.Date(2023, time.August, 14, 3, 30, 0, 0, time.UTC),
		},
		{
			UID:       "SC1003-b2c1d4e5",
			CreatedAt: time.Date(2023, time.August, 1, 12, 0, 0, 0, time.UTC),
			Summary:   "SC1003 - INTRO Exam",
			Category:  "Exam",
			Start:     time.Date(2023, time.December, 1, 1, 0, 0, 0, time.UTC),
			End:       time.Date(2023, time.December, 1, 3, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	err := Encode(&buf, "Semester timetable", "-//ntucal//EN", records)
	require.NoError(t, err)
	out := buf.String()

	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
	assert.Contains(t, out, "UID:SC1003-7f6f9a32")
	assert.Contains(t, out, "SUMMARY:SC1003 - INTRO LEC/STUDIO")
	assert.Contains(t, out, "DTSTART:20230814T013000Z")
	assert.Contains(t, out, "DTEND:20230814T033000Z")
	assert.Contains(t, out, "LOCATION:LT19A")
	assert.Contains(t, out, "CATEGORIES:Exam")
	assert.Contains(t, out, "X-WR-CALNAME:Semester timetable")

	// Exam events carry no location.
	examBlock := out[strings.Index(out, "UID:SC1003-b2c1d4e5"):]
	examBlock = examBlock[:strings.Index(examBlock, "END:VEVENT")]
	assert.NotContains(t, examBlock, "LOCATION")
	assert.Contains(t, examBlock, "DTSTART:20231201T010000Z")
}

func TestEncodeEmptyRecordList(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, "", "", nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "BEGIN:VCALENDAR")
	assert.NotContains(t, buf.String(), "BEGIN:VEVENT")
}
