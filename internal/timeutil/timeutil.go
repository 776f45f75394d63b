// Package timeutil holds the pure time-of-day arithmetic behind the visit
// timer: 12-hour display strings, duration math with overnight rollover, and
// custom-slot validation. No I/O, no global clock.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"prison-visitor-backend/internal/apperror"
)

// Custom timer slots staff may stage must stay inside these bounds.
const (
	MinSlotMinutes = 15
	MaxSlotMinutes = 8 * 60
)

var displayTimePattern = regexp.MustCompile(`^(0?[1-9]|1[0-2]):([0-5][0-9])\s*([AaPp][Mm])$`)

type TimeOfDay struct {
	Hour   int // 0..23
	Minute int // 0..59
}

type Duration struct {
	Hours   int
	Minutes int
}

func (d Duration) TotalMinutes() int { return d.Hours*60 + d.Minutes }

// ParseDisplayTime parses "HH:MM AM/PM" (case-insensitive, 1-12 hour).
func ParseDisplayTime(s string) (TimeOfDay, error) {
	m := displayTimePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return TimeOfDay{}, apperror.Format(fmt.Sprintf("invalid time %q, expected HH:MM AM/PM", s))
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])

	meridiem := strings.ToUpper(m[3])
	if meridiem == "PM" && hour != 12 {
		hour += 12
	}
	if meridiem == "AM" && hour == 12 {
		hour = 0
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// FormatDisplayTime renders a TimeOfDay as "H:MM AM/PM" (no hour padding).
func FormatDisplayTime(t TimeOfDay) string {
	meridiem := "AM"
	if t.Hour >= 12 {
		meridiem = "PM"
	}
	hour := t.Hour % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, t.Minute, meridiem)
}

// FromTime extracts the wall-clock time-of-day of an instant.
func FromTime(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

// At anchors a time-of-day onto the calendar day of date, keeping its location.
func At(date time.Time, t TimeOfDay) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour, t.Minute, 0, 0, date.Location())
}

// DurationBetween treats end as the same day unless it is strictly earlier
// than start, in which case the visit ran past midnight and end rolls to the
// next day. start == end is a zero duration, never a full day.
func DurationBetween(start, end TimeOfDay) Duration {
	diff := (end.Hour*60 + end.Minute) - (start.Hour*60 + start.Minute)
	if diff < 0 {
		diff += 24 * 60
	}
	return Duration{Hours: diff / 60, Minutes: diff % 60}
}

func FormatDuration(d Duration) string {
	if d.Hours > 0 {
		return fmt.Sprintf("%dh %dm", d.Hours, d.Minutes)
	}
	return fmt.Sprintf("%dm", d.Minutes)
}

// To12Hour converts a 24-hour "HH:MM" string to "H:MM AM/PM".
func To12Hour(hhmm string) (string, error) {
	parts := strings.Split(strings.TrimSpace(hhmm), ":")
	if len(parts) != 2 {
		return "", apperror.Format(fmt.Sprintf("invalid time %q, expected HH:MM", hhmm))
	}
	hour, errH := strconv.Atoi(parts[0])
	minute, errM := strconv.Atoi(parts[1])
	if errH != nil || errM != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", apperror.Format(fmt.Sprintf("invalid time %q, expected HH:MM", hhmm))
	}
	return FormatDisplayTime(TimeOfDay{Hour: hour, Minute: minute}), nil
}

// To24Hour is the inverse of To12Hour, producing a zero-padded "HH:MM".
func To24Hour(display string) (string, error) {
	t, err := ParseDisplayTime(display)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute), nil
}

// ValidateTimeSlot checks a staged custom-timer window: both ends must parse
// and the resulting duration must be positive and within the slot bounds.
func ValidateTimeSlot(start, end string) error {
	s, err := ParseDisplayTime(start)
	if err != nil {
		return apperror.Validation(fmt.Sprintf("invalid start time %q, expected HH:MM AM/PM", start))
	}
	e, err := ParseDisplayTime(end)
	if err != nil {
		return apperror.Validation(fmt.Sprintf("invalid end time %q, expected HH:MM AM/PM", end))
	}
	minutes := DurationBetween(s, e).TotalMinutes()
	if minutes == 0 {
		return apperror.Validation("end time must be after start time")
	}
	if minutes < MinSlotMinutes {
		return apperror.Validation(fmt.Sprintf("custom timer must be at least %d minutes", MinSlotMinutes))
	}
	if minutes > MaxSlotMinutes {
		return apperror.Validation(fmt.Sprintf("custom timer must be at most %d hours", MaxSlotMinutes/60))
	}
	return nil
}
