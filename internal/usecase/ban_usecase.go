package usecase

import (
	"fmt"
	"time"

	"prison-visitor-backend/internal/apperror"
	"prison-visitor-backend/internal/banexpiry"
	"prison-visitor-backend/internal/model"
	"prison-visitor-backend/internal/repository"
)

var banDurationKinds = map[string]bool{
	model.BanDurationOneWeek:   true,
	model.BanDurationTwoWeeks:  true,
	model.BanDurationOneMonth:  true,
	model.BanDurationThreeMos:  true,
	model.BanDurationSixMos:    true,
	model.BanDurationOneYear:   true,
	model.BanDurationPermanent: true,
	model.BanDurationCustom:    true,
}

// BanPayload is what staff submit when banning a person. A zero StartDate
// defaults to now; EndDate is only meaningful for the custom duration.
type BanPayload struct {
	Reason       string
	DurationKind string
	StartDate    time.Time
	EndDate      *time.Time
	Notes        string
}

// ActiveBanEntry is one row of the "currently banned" listing.
type ActiveBanEntry struct {
	model.Person
	DurationRemaining string `json:"duration_remaining"`
}

// BanUsecase maintains the ban and violation ledgers plus the denormalized
// current-status mirror on the Person record. The ledger is authoritative
// history; the mirror exists for fast "is this person banned" checks and is
// only ever recomputed here.
type BanUsecase struct {
	store repository.Store
}

func NewBanUsecase(store repository.Store) *BanUsecase {
	return &BanUsecase{store: store}
}

// IsEffectivelyBanned is the single predicate every banned listing and badge
// must use. A set flag with an elapsed end date counts as not banned; the
// stored flag is never mutated on read.
func IsEffectivelyBanned(person *model.Person, now time.Time) bool {
	return person.IsBanned && !banexpiry.IsExpired(person.BanDuration, person.BanStartDate, person.BanEndDate, now)
}

// ApplyBan bans a person, or edits the current ban when one is already
// active: the Person mirror is overwritten and the active ledger record
// updated in place, so history is never silently closed.
func (u *BanUsecase) ApplyBan(personID, personType string, payload BanPayload, actor string, now time.Time) (*model.BanHistory, error) {
	if !banDurationKinds[payload.DurationKind] {
		return nil, apperror.Validation(fmt.Sprintf("unknown ban duration %q", payload.DurationKind))
	}
	if payload.StartDate.IsZero() {
		payload.StartDate = now
	}
	if payload.DurationKind == model.BanDurationCustom {
		if payload.EndDate == nil {
			return nil, apperror.Validation("custom ban requires an end date")
		}
		if !payload.EndDate.After(payload.StartDate) {
			return nil, apperror.Validation("ban end date must be after start date")
		}
	} else {
		payload.EndDate = nil
	}

	var record *model.BanHistory
	err := u.store.Transaction(func(s repository.Store) error {
		person, err := s.Persons().Find(personID, personType)
		if err != nil {
			return err
		}
		if person == nil {
			return apperror.NotFound(fmt.Sprintf("%s %s not found", personType, personID))
		}

		startDate := payload.StartDate
		person.IsBanned = true
		person.BanReason = payload.Reason
		person.BanDuration = payload.DurationKind
		person.BanStartDate = &startDate
		person.BanEndDate = payload.EndDate
		person.BanNotes = payload.Notes
		if err := s.Persons().UpdateStatus(personID, personType, person.PersonStatus); err != nil {
			return err
		}

		calculated := banexpiry.DurationRemaining(payload.DurationKind, &startDate, payload.EndDate, startDate)

		record, err = s.BanHistories().FindActive(personID, personType)
		if err != nil {
			return err
		}
		if record != nil {
			// Edit semantics: staff adjusting the current ban, not issuing
			// a new one.
			record.Reason = payload.Reason
			record.BanDuration = payload.DurationKind
			record.BanStartDate = &startDate
			record.BanEndDate = payload.EndDate
			record.CalculatedDuration = calculated
			record.Notes = payload.Notes
			record.BannedBy = actor
			return s.BanHistories().Update(record)
		}

		record = &model.BanHistory{
			PersonID:           personID,
			PersonType:         personType,
			PersonName:         person.FullName,
			Reason:             payload.Reason,
			BanDuration:        payload.DurationKind,
			BanStartDate:       &startDate,
			BanEndDate:         payload.EndDate,
			CalculatedDuration: calculated,
			Notes:              payload.Notes,
			Status:             model.LedgerStatusActive,
			BannedBy:           actor,
		}
		return s.BanHistories().Create(record)
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// RemoveBan lifts a ban: clears the Person mirror and marks the active
// ledger record removed. Idempotent: calling it on an unbanned person still
// clears the mirror and touches no history.
func (u *BanUsecase) RemoveBan(personID, personType, actor, reason string, now time.Time) error {
	return u.store.Transaction(func(s repository.Store) error {
		person, err := s.Persons().Find(personID, personType)
		if err != nil {
			return err
		}
		if person == nil {
			return apperror.NotFound(fmt.Sprintf("%s %s not found", personType, personID))
		}

		person.IsBanned = false
		person.BanReason = ""
		person.BanDuration = ""
		person.BanStartDate = nil
		person.BanEndDate = nil
		person.BanNotes = ""
		if err := s.Persons().UpdateStatus(personID, personType, person.PersonStatus); err != nil {
			return err
		}

		record, err := s.BanHistories().FindActive(personID, personType)
		if err != nil {
			return err
		}
		if record == nil {
			return nil
		}
		record.Status = model.LedgerStatusRemoved
		record.RemovedAt = &now
		record.RemovedBy = actor
		record.RemovalReason = reason
		return s.BanHistories().Update(record)
	})
}

// ApplyViolation records a violation against a person, mirroring it onto the
// Person record the same way ApplyBan does.
func (u *BanUsecase) ApplyViolation(personID, personType, violationType, details, actor string) (*model.ViolationHistory, error) {
	if violationType == "" {
		return nil, apperror.Validation("violation type is required")
	}

	var record *model.ViolationHistory
	err := u.store.Transaction(func(s repository.Store) error {
		person, err := s.Persons().Find(personID, personType)
		if err != nil {
			return err
		}
		if person == nil {
			return apperror.NotFound(fmt.Sprintf("%s %s not found", personType, personID))
		}

		person.ViolationType = violationType
		person.ViolationDetails = details
		if err := s.Persons().UpdateStatus(personID, personType, person.PersonStatus); err != nil {
			return err
		}

		record, err = s.ViolationHistories().FindActive(personID, personType)
		if err != nil {
			return err
		}
		if record != nil {
			record.ViolationType = violationType
			record.ViolationDetails = details
			record.RecordedBy = actor
			return s.ViolationHistories().Update(record)
		}

		record = &model.ViolationHistory{
			PersonID:         personID,
			PersonType:       personType,
			PersonName:       person.FullName,
			ViolationType:    violationType,
			ViolationDetails: details,
			Status:           model.LedgerStatusActive,
			RecordedBy:       actor,
		}
		return s.ViolationHistories().Create(record)
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// RemoveViolation clears the Person mirror and closes the active ledger
// record. Idempotent like RemoveBan.
func (u *BanUsecase) RemoveViolation(personID, personType, actor, reason string, now time.Time) error {
	return u.store.Transaction(func(s repository.Store) error {
		person, err := s.Persons().Find(personID, personType)
		if err != nil {
			return err
		}
		if person == nil {
			return apperror.NotFound(fmt.Sprintf("%s %s not found", personType, personID))
		}

		person.ViolationType = ""
		person.ViolationDetails = ""
		if err := s.Persons().UpdateStatus(personID, personType, person.PersonStatus); err != nil {
			return err
		}

		record, err := s.ViolationHistories().FindActive(personID, personType)
		if err != nil {
			return err
		}
		if record == nil {
			return nil
		}
		record.Status = model.LedgerStatusRemoved
		record.RemovedAt = &now
		record.RemovedBy = actor
		record.RemovalReason = reason
		return s.ViolationHistories().Update(record)
	})
}

// ActiveBans lists everyone effectively banned right now, with the remaining
// duration display. Expired flags are filtered out here, never swept.
func (u *BanUsecase) ActiveBans(now time.Time) ([]ActiveBanEntry, error) {
	persons, err := u.store.Persons().ListBanned()
	if err != nil {
		return nil, err
	}
	entries := make([]ActiveBanEntry, 0, len(persons))
	for i := range persons {
		p := persons[i]
		if !IsEffectivelyBanned(&p, now) {
			continue
		}
		entries = append(entries, ActiveBanEntry{
			Person:            p,
			DurationRemaining: banexpiry.DurationRemaining(p.BanDuration, p.BanStartDate, p.BanEndDate, now),
		})
	}
	return entries, nil
}

func (u *BanUsecase) BanHistory(filter repository.LedgerFilter) ([]model.BanHistory, error) {
	return u.store.BanHistories().List(filter)
}

func (u *BanUsecase) ViolationHistory(filter repository.LedgerFilter) ([]model.ViolationHistory, error) {
	return u.store.ViolationHistories().List(filter)
}
