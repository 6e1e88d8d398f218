package model

import "time"

// EventRecord is a single concrete calendar entry: one class occurrence or
// one exam. It carries exactly what the ICS encoder needs and is not
// persisted anywhere.
type EventRecord struct {
	// UID uniquely identifies the event, scoped by course code.
	UID string

	// CreatedAt is the UTC instant the record was generated (DTSTAMP).
	CreatedAt time.Time

	Summary  string
	Category string

	// Location is empty for exam events.
	Location string

	// Start / End are UTC instants.
	Start time.Time
	End   time.Time
}
