package usecase

import (
	"errors"
	"fmt"
	"time"

	"prison-visitor-backend/internal/apperror"
	"prison-visitor-backend/internal/banexpiry"
	"prison-visitor-backend/internal/model"
	"prison-visitor-backend/internal/repository"
	"prison-visitor-backend/internal/timeutil"

	"gorm.io/gorm"
)

// StandardVisitMinutes is the default visit window when no custom timer was
// staged: 3 hours from check-in.
const StandardVisitMinutes = 180

// Urgency buckets for an active timer, shared by the live feed and the sweep.
const (
	ClassNormal   = "normal"
	ClassWarning  = "warning"  // under 30 minutes left
	ClassCritical = "critical" // under 10 minutes left
	ClassExpired  = "expired"
)

// Remaining is the whole minutes left on a timer, floored at zero.
func Remaining(now, timerEnd time.Time) int {
	mins := int(timerEnd.Sub(now).Minutes())
	if mins < 0 {
		return 0
	}
	return mins
}

// Classify buckets minutes remaining. Boundaries: 30 itself is still normal,
// 10 itself is still warning, 0 is expired.
func Classify(remainingMinutes int) string {
	switch {
	case remainingMinutes <= 0:
		return ClassExpired
	case remainingMinutes < 10:
		return ClassCritical
	case remainingMinutes < 30:
		return ClassWarning
	default:
		return ClassNormal
	}
}

// ActiveTimerEntry is one row of the live dashboard feed.
type ActiveTimerEntry struct {
	model.VisitLog
	RemainingMinutes int    `json:"remaining_minutes"`
	Classification   string `json:"classification"`
}

// TimerUsecase drives the visit timer lifecycle: staging a custom window,
// check-in (which starts the timer), check-out, the live feed, and the
// expiry sweep. Every operation takes now explicitly so the lifecycle is
// deterministic under test.
type TimerUsecase struct {
	store repository.Store
}

func NewTimerUsecase(store repository.Store) *TimerUsecase {
	return &TimerUsecase{store: store}
}

// SetCustomTimer stages a visit window for a person ahead of check-in.
// Re-staging overwrites the previous slot.
func (u *TimerUsecase) SetCustomTimer(personID, personType, startTime, endTime, setBy string) (*model.CustomTimer, error) {
	person, err := u.store.Persons().Find(personID, personType)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, apperror.NotFound(fmt.Sprintf("%s %s not found", personType, personID))
	}

	if err := timeutil.ValidateTimeSlot(startTime, endTime); err != nil {
		return nil, err
	}
	start, _ := timeutil.ParseDisplayTime(startTime)
	end, _ := timeutil.ParseDisplayTime(endTime)

	timer := &model.CustomTimer{
		PersonID:   personID,
		PersonType: personType,
		StartTime:  timeutil.FormatDisplayTime(start),
		EndTime:    timeutil.FormatDisplayTime(end),
		Duration:   timeutil.FormatDuration(timeutil.DurationBetween(start, end)),
		SetBy:      setBy,
	}
	if err := u.store.CustomTimers().Stage(timer); err != nil {
		return nil, err
	}
	return timer, nil
}

// VerifyCustomTimer is the non-destructive read used by the scan/verify
// screen. Returns nil when nothing is staged.
func (u *TimerUsecase) VerifyCustomTimer(personID, personType string) (*model.CustomTimer, error) {
	return u.store.CustomTimers().Peek(personID, personType)
}

// CheckIn starts a visit timer. It consumes any staged custom slot (one-shot)
// and otherwise applies the standard 3-hour window. A custom slot's end time
// is anchored to the check-in calendar day, so checking in at 9:05 against a
// 9:00-11:00 slot still ends at 11:00; an end at or before check-in rolls to
// the next day (overnight slot).
func (u *TimerUsecase) CheckIn(personID, personType string, now time.Time) (*model.VisitLog, error) {
	var log *model.VisitLog
	err := u.store.Transaction(func(s repository.Store) error {
		person, err := s.Persons().Find(personID, personType)
		if err != nil {
			return err
		}
		if person == nil {
			return apperror.NotFound(fmt.Sprintf("%s %s not found", personType, personID))
		}

		// Banned people do not get a timer. The lazy expiry predicate
		// decides, never the raw flag.
		if person.IsBanned && !banexpiry.IsExpired(person.BanDuration, person.BanStartDate, person.BanEndDate, now) {
			return apperror.Conflict(fmt.Sprintf("%s is currently banned: %s", person.FullName, person.BanReason))
		}

		active, err := s.VisitLogs().FindActive(personID, personType)
		if err != nil {
			return err
		}
		if active != nil {
			return apperror.Conflict(fmt.Sprintf("%s already has an active visit timer", person.FullName))
		}

		staged, err := s.CustomTimers().Consume(personID, personType)
		if err != nil {
			return err
		}

		timerEnd := now.Add(StandardVisitMinutes * time.Minute)
		totalMinutes := StandardVisitMinutes
		isCustom := false
		if staged != nil {
			start, errS := timeutil.ParseDisplayTime(staged.StartTime)
			end, errE := timeutil.ParseDisplayTime(staged.EndTime)
			if errS == nil && errE == nil {
				timerEnd = timeutil.At(now, end)
				if !timerEnd.After(now) {
					timerEnd = timerEnd.AddDate(0, 0, 1)
				}
				totalMinutes = timeutil.DurationBetween(start, end).TotalMinutes()
				isCustom = true
			}
		}

		visitDate := now.Format("2006-01-02")
		activeKey := personType + ":" + personID
		log = &model.VisitLog{
			PersonID:             personID,
			PersonType:           personType,
			PersonName:           person.FullName,
			InmateID:             person.InmateID,
			VisitDate:            visitDate,
			TimeIn:               timeutil.FormatDisplayTime(timeutil.FromTime(now)),
			TimerStart:           now,
			TimerEnd:             timerEnd,
			Status:               model.VisitStatusInProgress,
			IsTimerActive:        true,
			IsCustomTimer:        isCustom,
			TotalDurationMinutes: totalMinutes,
			ActiveKey:            &activeKey,
		}
		if err := s.VisitLogs().Create(log); err != nil {
			// The unique active_key closes the race: two concurrent
			// check-ins cannot both commit.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperror.Conflict(fmt.Sprintf("%s already has an active visit timer", person.FullName))
			}
			return err
		}

		person.HasTimedIn = true
		person.HasTimedOut = false
		person.LastVisitDate = &visitDate
		return s.Persons().UpdateStatus(personID, personType, person.PersonStatus)
	})
	if err != nil {
		return nil, err
	}
	return log, nil
}

// CheckOut stops an active timer and seals the log as completed.
func (u *TimerUsecase) CheckOut(visitLogID uint, now time.Time) (*model.VisitLog, error) {
	var log *model.VisitLog
	err := u.store.Transaction(func(s repository.Store) error {
		found, err := s.VisitLogs().FindByID(visitLogID)
		if err != nil {
			return err
		}
		if found == nil || found.Status != model.VisitStatusInProgress || found.TimeOut != nil {
			return apperror.NotFound("no active timer for this visit log")
		}
		log = found

		timeOut := timeutil.FormatDisplayTime(timeutil.FromTime(now))
		log.TimeOut = &timeOut
		log.Status = model.VisitStatusCompleted
		log.IsTimerActive = false
		log.ActiveKey = nil
		if timeIn, err := timeutil.ParseDisplayTime(log.TimeIn); err == nil {
			log.VisitDuration = timeutil.FormatDuration(timeutil.DurationBetween(timeIn, timeutil.FromTime(now)))
		}
		if err := s.VisitLogs().Update(log); err != nil {
			return err
		}

		person, err := s.Persons().Find(log.PersonID, log.PersonType)
		if err != nil {
			return err
		}
		if person != nil {
			person.HasTimedOut = true
			return s.Persons().UpdateStatus(log.PersonID, log.PersonType, person.PersonStatus)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return log, nil
}

// ActiveTimers returns the in-progress logs still inside their window,
// enriched with remaining minutes and urgency for the polling dashboards.
func (u *TimerUsecase) ActiveTimers(now time.Time) ([]ActiveTimerEntry, error) {
	logs, err := u.store.VisitLogs().ListActiveTimers(now)
	if err != nil {
		return nil, err
	}
	entries := make([]ActiveTimerEntry, 0, len(logs))
	for _, log := range logs {
		mins := Remaining(now, log.TimerEnd)
		entries = append(entries, ActiveTimerEntry{
			VisitLog:         log,
			RemainingMinutes: mins,
			Classification:   Classify(mins),
		})
	}
	return entries, nil
}

// ExpireSweep persists expired status for overdue logs. Idempotent; the read
// paths do not depend on it.
func (u *TimerUsecase) ExpireSweep(now time.Time) (int64, error) {
	return u.store.VisitLogs().ExpireOverdue(now)
}

// History lists visit logs for one person, or by date range when no person
// is given.
func (u *TimerUsecase) History(personID, personType, startDate, endDate string) ([]model.VisitLog, error) {
	if personID != "" {
		return u.store.VisitLogs().ListByPerson(personID, personType)
	}
	return u.store.VisitLogs().ListByDateRange(startDate, endDate)
}
