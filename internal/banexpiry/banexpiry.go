// Package banexpiry computes when a ban stops being effective. Bans are
// never swept eagerly; every "is this person banned" read goes through
// IsExpired so a stale IsBanned flag in storage can never extend a ban.
package banexpiry

import (
	"fmt"
	"time"

	"prison-visitor-backend/internal/model"
)

// ComputeEndDate returns the instant a ban ends, or nil when it never does
// (permanent, missing start date, or an unknown duration kind; the engine
// treats unanswerable input as "still banned" rather than failing).
func ComputeEndDate(durationKind string, startDate, endDate *time.Time) *time.Time {
	if durationKind == model.BanDurationCustom {
		return endDate
	}
	if startDate == nil {
		return nil
	}

	var end time.Time
	switch durationKind {
	case model.BanDurationOneWeek:
		end = startDate.AddDate(0, 0, 7)
	case model.BanDurationTwoWeeks:
		end = startDate.AddDate(0, 0, 14)
	case model.BanDurationOneMonth:
		end = startDate.AddDate(0, 1, 0)
	case model.BanDurationThreeMos:
		end = startDate.AddDate(0, 3, 0)
	case model.BanDurationSixMos:
		end = startDate.AddDate(0, 6, 0)
	case model.BanDurationOneYear:
		end = startDate.AddDate(1, 0, 0)
	default: // permanent or unrecognized
		return nil
	}
	return &end
}

// IsExpired never fails: a permanent ban or one with no computable end date
// is simply not expired.
func IsExpired(durationKind string, startDate, endDate *time.Time, now time.Time) bool {
	end := ComputeEndDate(durationKind, startDate, endDate)
	if end == nil {
		return false
	}
	return !now.Before(*end)
}

// DurationRemaining is the human-readable time left on a ban. Display only;
// the boolean gate everywhere is IsExpired.
func DurationRemaining(durationKind string, startDate, endDate *time.Time, now time.Time) string {
	end := ComputeEndDate(durationKind, startDate, endDate)
	if end == nil {
		return "Permanent"
	}
	if !now.Before(*end) {
		return "Expired"
	}

	remaining := end.Sub(now)
	days := int(remaining.Hours()) / 24
	hours := int(remaining.Hours()) % 24
	minutes := int(remaining.Minutes()) % 60

	if days > 0 {
		return fmt.Sprintf("%d day(s) %d hour(s)", days, hours)
	}
	if hours > 0 {
		return fmt.Sprintf("%d hour(s) %d minute(s)", hours, minutes)
	}
	return fmt.Sprintf("%d minute(s)", minutes)
}
