package timeutil

import (
	"testing"
	"time"

	"prison-visitor-backend/internal/apperror"
)

func TestParseDisplayTime(t *testing.T) {
	cases := []struct {
		in     string
		hour   int
		minute int
	}{
		{"09:00 AM", 9, 0},
		{"9:00 AM", 9, 0},
		{"12:00 AM", 0, 0}, // midnight
		{"12:30 PM", 12, 30},
		{"1:05 pm", 13, 5},
		{"11:59 PM", 23, 59},
		{" 10:15 AM ", 10, 15},
	}
	for _, c := range cases {
		got, err := ParseDisplayTime(c.in)
		if err != nil {
			t.Errorf("ParseDisplayTime(%q): %v", c.in, err)
			continue
		}
		if got.Hour != c.hour || got.Minute != c.minute {
			t.Errorf("ParseDisplayTime(%q) = %d:%d, want %d:%d", c.in, got.Hour, got.Minute, c.hour, c.minute)
		}
	}
}

func TestParseDisplayTimeInvalid(t *testing.T) {
	bad := []string{"", "09:00", "13:00 PM", "0:30 AM", "09:60 AM", "9 AM", "9:5 AM", "09:00 XM"}
	for _, in := range bad {
		if _, err := ParseDisplayTime(in); err == nil {
			t.Errorf("ParseDisplayTime(%q): expected error", in)
		} else if apperror.CodeOf(err) != apperror.CodeInvalidFormat {
			t.Errorf("ParseDisplayTime(%q): code = %s, want INVALID_FORMAT", in, apperror.CodeOf(err))
		}
	}
}

func TestRoundTrip24To12(t *testing.T) {
	for _, in := range []string{"00:00", "00:01", "09:05", "11:59", "12:00", "12:01", "15:04", "23:59"} {
		display, err := To12Hour(in)
		if err != nil {
			t.Fatalf("To12Hour(%q): %v", in, err)
		}
		back, err := To24Hour(display)
		if err != nil {
			t.Fatalf("To24Hour(%q): %v", display, err)
		}
		if back != in {
			t.Errorf("round trip %q -> %q -> %q", in, display, back)
		}
	}
}

func TestRoundTrip12To24(t *testing.T) {
	for _, in := range []string{"12:00 AM", "9:05 AM", "11:59 AM", "12:00 PM", "3:04 PM", "11:59 PM"} {
		hhmm, err := To24Hour(in)
		if err != nil {
			t.Fatalf("To24Hour(%q): %v", in, err)
		}
		back, err := To12Hour(hhmm)
		if err != nil {
			t.Fatalf("To12Hour(%q): %v", hhmm, err)
		}
		if back != in {
			t.Errorf("round trip %q -> %q -> %q", in, hhmm, back)
		}
	}
}

func TestDurationBetween(t *testing.T) {
	cases := []struct {
		start, end string
		hours, min int
	}{
		{"09:00 AM", "11:00 AM", 2, 0},
		{"09:00 AM", "09:00 AM", 0, 0},  // same instant, not a full day
		{"09:00 AM", "08:59 AM", 23, 59}, // one minute earlier rolls overnight
		{"11:00 PM", "1:00 AM", 2, 0},    // overnight visit
		{"09:05 AM", "12:00 PM", 2, 55},
	}
	for _, c := range cases {
		start, _ := ParseDisplayTime(c.start)
		end, _ := ParseDisplayTime(c.end)
		got := DurationBetween(start, end)
		if got.Hours != c.hours || got.Minutes != c.min {
			t.Errorf("DurationBetween(%s, %s) = %dh %dm, want %dh %dm",
				c.start, c.end, got.Hours, got.Minutes, c.hours, c.min)
		}
		if got.TotalMinutes() < 0 {
			t.Errorf("DurationBetween(%s, %s) is negative", c.start, c.end)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	if got := FormatDuration(Duration{Hours: 2, Minutes: 5}); got != "2h 5m" {
		t.Errorf("FormatDuration = %q, want 2h 5m", got)
	}
	if got := FormatDuration(Duration{Minutes: 45}); got != "45m" {
		t.Errorf("FormatDuration = %q, want 45m", got)
	}
	if got := FormatDuration(Duration{}); got != "0m" {
		t.Errorf("FormatDuration = %q, want 0m", got)
	}
}

func TestValidateTimeSlot(t *testing.T) {
	if err := ValidateTimeSlot("09:00 AM", "11:00 AM"); err != nil {
		t.Errorf("valid slot rejected: %v", err)
	}
	if err := ValidateTimeSlot("11:00 PM", "1:00 AM"); err != nil {
		t.Errorf("overnight slot rejected: %v", err)
	}

	bad := []struct {
		start, end string
	}{
		{"09:00 AM", "09:00 AM"}, // zero duration
		{"09:00 AM", "09:10 AM"}, // under 15 minutes
		{"09:00 AM", "06:00 PM"}, // 9 hours, over the cap
		{"25:00 AM", "11:00 AM"}, // bad format
		{"09:00 AM", "11:00"},    // bad format
	}
	for _, c := range bad {
		err := ValidateTimeSlot(c.start, c.end)
		if err == nil {
			t.Errorf("ValidateTimeSlot(%s, %s): expected error", c.start, c.end)
			continue
		}
		if apperror.CodeOf(err) != apperror.CodeValidation {
			t.Errorf("ValidateTimeSlot(%s, %s): code = %s, want VALIDATION", c.start, c.end, apperror.CodeOf(err))
		}
	}
}

func TestAtAnchorsTimeOfDay(t *testing.T) {
	day := time.Date(2025, 3, 14, 9, 5, 33, 0, time.Local)
	got := At(day, TimeOfDay{Hour: 11, Minute: 0})
	want := time.Date(2025, 3, 14, 11, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("At = %v, want %v", got, want)
	}
}
