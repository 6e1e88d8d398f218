package timetable

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Grammars for the individual timetable cells. Kept together as named
// constants so the accepted formats stay auditable in one place.
var (
	periodRE    = regexp.MustCompile(`^(\d{2})(\d{2})to(\d{2})(\d{2})$`)
	weekRangeRE = regexp.MustCompile(`^(\d+)-(\d+)$`)
	examRE      = regexp.MustCompile(`^(\d{2})-([A-Z][a-z]{2})-(\d{4}) (\d{2})(\d{2})to(\d{2})(\d{2})$`)
)

// teachingWeekMarker prefixes every week-list cell in the export.
const teachingWeekMarker = "Teaching Wk"

var weekdays = map[string]time.Weekday{
	"Sun": time.Sunday,
	"Mon": time.Monday,
	"Tue": time.Tuesday,
	"Wed": time.Wednesday,
	"Thu": time.Thursday,
	"Fri": time.Friday,
	"Sat": time.Saturday,
}

// ParseWeekday accepts exactly the case-sensitive three-letter abbreviations
// Sun..Sat as printed in the export.
func ParseWeekday(token string) (time.Weekday, error) {
	wd, ok := weekdays[token]
	if !ok {
		return 0, &FieldFormatError{
			Field:  "weekday",
			Token:  token,
			Reason: "must be one of Sun, Mon, Tue, Wed, Thu, Fri, Sat",
		}
	}
	return wd, nil
}

// ParsePeriod parses a "HHMMtoHHMM" cell into a start/end pair.
func ParsePeriod(token string) (Period, error) {
	m := periodRE.FindStringSubmatch(token)
	if m == nil {
		return Period{}, &FieldFormatError{
			Field:  "period",
			Token:  token,
			Reason: "must match HHMMtoHHMM",
		}
	}
	start, err := timeOfDay(m[1], m[2], "period", token)
	if err != nil {
		return Period{}, err
	}
	end, err := timeOfDay(m[3], m[4], "period", token)
	if err != nil {
		return Period{}, err
	}
	return Period{Start: start, End: end}, nil
}

// ParseWeeks parses a "Teaching Wk..." cell into the list of calendar week
// indices, in encounter order. Entries are single integers or inclusive
// ranges "a-b". Teaching weeks at or above recessWeek are shifted up by one
// to account for the recess week the export's numbering skips over.
func ParseWeeks(token string, recessWeek uint32) ([]uint32, error) {
	rest, found := strings.CutPrefix(token, teachingWeekMarker)
	if !found {
		return nil, &FieldFormatError{
			Field:  "weeks",
			Token:  token,
			Reason: fmt.Sprintf("missing %q marker", teachingWeekMarker),
		}
	}

	var weeks []uint32
	for _, entry := range strings.Split(rest, ",") {
		if m := weekRangeRE.FindStringSubmatch(entry); m != nil {
			a, errA := strconv.ParseUint(m[1], 10, 32)
			b, errB := strconv.ParseUint(m[2], 10, 32)
			if errA != nil || errB != nil || a > b {
				return nil, &FieldFormatError{
					Field:  "weeks",
					Token:  token,
					Reason: fmt.Sprintf("invalid week range %q", entry),
				}
			}
			for w := uint32(a); w <= uint32(b); w++ {
				weeks = append(weeks, w)
			}
			continue
		}
		w, err := strconv.ParseUint(entry, 10, 32)
		if err != nil {
			return nil, &FieldFormatError{
				Field:  "weeks",
				Token:  token,
				Reason: fmt.Sprintf("entry %q is not a week number or range", entry),
			}
		}
		weeks = append(weeks, uint32(w))
	}

	for i, w := range weeks {
		if w >= recessWeek {
			weeks[i] = w + 1
		}
	}
	return weeks, nil
}

// ParseExam parses a "DD-Mon-YYYY HHMMtoHHMM" cell into an exam date and
// period. The date part must resolve to a real calendar day.
func ParseExam(token string) (Exam, error) {
	m := examRE.FindStringSubmatch(token)
	if m == nil {
		return Exam{}, &FieldFormatError{
			Field:  "exam",
			Token:  token,
			Reason: "must match DD-Mon-YYYY HHMMtoHHMM",
		}
	}

	day, _ := strconv.Atoi(m[1])
	monthT, err := time.Parse("Jan", m[2])
	if err != nil {
		return Exam{}, &FieldFormatError{
			Field:  "exam",
			Token:  token,
			Reason: fmt.Sprintf("unknown month %q", m[2]),
		}
	}
	month := monthT.Month()
	year, _ := strconv.Atoi(m[3])

	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range days (e.g. 30-Feb), so check that
	// nothing moved.
	if date.Day() != day || date.Month() != month || date.Year() != year {
		return Exam{}, &FieldFormatError{
			Field:  "exam",
			Token:  token,
			Reason: fmt.Sprintf("no such date %02d-%s-%04d", day, m[2], year),
		}
	}

	start, err := timeOfDay(m[4], m[5], "exam", token)
	if err != nil {
		return Exam{}, err
	}
	end, err := timeOfDay(m[6], m[7], "exam", token)
	if err != nil {
		return Exam{}, err
	}
	return Exam{Date: date, Period: Period{Start: start, End: end}}, nil
}

// timeOfDay converts two already-matched digit pairs into a TimeOfDay,
// rejecting hours above 23 and minutes above 59.
func timeOfDay(hh, mm, field, token string) (TimeOfDay, error) {
	h, _ := strconv.Atoi(hh)
	m, _ := strconv.Atoi(mm)
	if h > 23 || m > 59 {
		return TimeOfDay{}, &FieldFormatError{
			Field:  field,
			Token:  token,
			Reason: fmt.Sprintf("invalid time of day %s%s", hh, mm),
		}
	}
	return TimeOfDay{Hour: h, Minute: m}, nil
}
