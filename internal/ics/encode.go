package ics

import (
	"io"
	"os"

	ical "github.com/arran4/golang-ical"

	"ntucal/internal/model"
)

// Encode writes the event records as an iCalendar stream. Every record
// becomes one VEVENT; instants are serialized in the basic UTC form
// (YYYYMMDDTHHMMSSZ) since all record times are already UTC.
func Encode(w io.Writer, name, prodID string, records []model.EventRecord) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	if prodID != "" {
		cal.SetProductId(prodID)
	}
	if name != "" {
		cal.SetXWRCalName(name)
	}

	for _, rec := range records {
		ev := cal.AddEvent(rec.UID)
		ev.SetCreatedTime(rec.CreatedAt)
		ev.SetDtStampTime(rec.CreatedAt)
		ev.SetStartAt(rec.Start)
		ev.SetEndAt(rec.End)
		ev.SetSummary(rec.Summary)
		if rec.Category != "" {
			ev.SetProperty(ical.ComponentPropertyCategories, rec.Category)
		}
		if rec.Location != "" {
			ev.SetLocation(rec.Location)
		}
	}

	return cal.SerializeTo(w)
}

// WriteFile encodes the records into path, truncating any existing file.
func WriteFile(path, name, prodID string, records []model.EventRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := Encode(f, name, prodID, records); err != nil {
		return err
	}
	return f.Sync()
}
