package usecase

import (
	"time"

	"prison-visitor-backend/internal/model"
	"prison-visitor-backend/internal/repository"

	"gorm.io/gorm"
)

// fakeStore is an in-memory repository.Store so the lifecycle engines can be
// exercised without a database. Create enforces the active_key uniqueness
// the real schema provides.
type fakeStore struct {
	persons    map[string]*model.Person
	timers     map[string]*model.CustomTimer
	logs       []*model.VisitLog
	nextLogID  uint
	banRecords []*model.BanHistory
	vioRecords []*model.ViolationHistory
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		persons:   make(map[string]*model.Person),
		timers:    make(map[string]*model.CustomTimer),
		nextLogID: 1,
	}
}

func key(personID, personType string) string { return personType + ":" + personID }

func (s *fakeStore) addPerson(p model.Person) {
	s.persons[key(p.PersonID, p.PersonType)] = &p
}

func (s *fakeStore) VisitLogs() repository.VisitLogRepository       { return &fakeVisitLogs{s} }
func (s *fakeStore) CustomTimers() repository.CustomTimerRepository { return &fakeCustomTimers{s} }
func (s *fakeStore) Persons() repository.PersonRepository           { return &fakePersons{s} }
func (s *fakeStore) BanHistories() repository.BanHistoryRepository  { return &fakeBanHistories{s} }
func (s *fakeStore) ViolationHistories() repository.ViolationHistoryRepository {
	return &fakeViolationHistories{s}
}

func (s *fakeStore) Transaction(fn func(repository.Store) error) error {
	return fn(s)
}

type fakeVisitLogs struct{ s *fakeStore }

func (r *fakeVisitLogs) Create(log *model.VisitLog) error {
	if log.ActiveKey != nil {
		for _, existing := range r.s.logs {
			if existing.ActiveKey != nil && *existing.ActiveKey == *log.ActiveKey {
				return gorm.ErrDuplicatedKey
			}
		}
	}
	log.ID = r.s.nextLogID
	r.s.nextLogID++
	r.s.logs = append(r.s.logs, log)
	return nil
}

func (r *fakeVisitLogs) FindByID(id uint) (*model.VisitLog, error) {
	for _, log := range r.s.logs {
		if log.ID == id {
			return log, nil
		}
	}
	return nil, nil
}

func (r *fakeVisitLogs) FindActive(personID, personType string) (*model.VisitLog, error) {
	for _, log := range r.s.logs {
		if log.PersonID == personID && log.PersonType == personType && log.Status == model.VisitStatusInProgress {
			return log, nil
		}
	}
	return nil, nil
}

func (r *fakeVisitLogs) Update(log *model.VisitLog) error {
	for i, existing := range r.s.logs {
		if existing.ID == log.ID {
			r.s.logs[i] = log
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeVisitLogs) ListActiveTimers(now time.Time) ([]model.VisitLog, error) {
	var out []model.VisitLog
	for _, log := range r.s.logs {
		if log.Status == model.VisitStatusInProgress && log.TimerEnd.After(now) && log.TimeOut == nil {
			out = append(out, *log)
		}
	}
	return out, nil
}

func (r *fakeVisitLogs) ListByPerson(personID, personType string) ([]model.VisitLog, error) {
	var out []model.VisitLog
	for _, log := range r.s.logs {
		if log.PersonID == personID && log.PersonType == personType {
			out = append(out, *log)
		}
	}
	return out, nil
}

func (r *fakeVisitLogs) ListByDateRange(startDate, endDate string) ([]model.VisitLog, error) {
	var out []model.VisitLog
	for _, log := range r.s.logs {
		if log.VisitDate >= startDate && log.VisitDate <= endDate {
			out = append(out, *log)
		}
	}
	return out, nil
}

func (r *fakeVisitLogs) CountByDate(date string) (int64, error) {
	var count int64
	for _, log := range r.s.logs {
		if log.VisitDate == date {
			count++
		}
	}
	return count, nil
}

func (r *fakeVisitLogs) ExpireOverdue(now time.Time) (int64, error) {
	var swept int64
	for _, log := range r.s.logs {
		if log.Status == model.VisitStatusInProgress && !log.TimerEnd.After(now) {
			log.Status = model.VisitStatusExpired
			log.IsTimerActive = false
			log.ActiveKey = nil
			swept++
		}
	}
	return swept, nil
}

type fakeCustomTimers struct{ s *fakeStore }

func (r *fakeCustomTimers) Stage(timer *model.CustomTimer) error {
	r.s.timers[key(timer.PersonID, timer.PersonType)] = timer
	return nil
}

func (r *fakeCustomTimers) Peek(personID, personType string) (*model.CustomTimer, error) {
	timer, ok := r.s.timers[key(personID, personType)]
	if !ok {
		return nil, nil
	}
	copied := *timer
	return &copied, nil
}

func (r *fakeCustomTimers) Consume(personID, personType string) (*model.CustomTimer, error) {
	timer, ok := r.s.timers[key(personID, personType)]
	if !ok {
		return nil, nil
	}
	delete(r.s.timers, key(personID, personType))
	return timer, nil
}

type fakePersons struct{ s *fakeStore }

func (r *fakePersons) Find(personID, personType string) (*model.Person, error) {
	person, ok := r.s.persons[key(personID, personType)]
	if !ok {
		return nil, nil
	}
	copied := *person
	return &copied, nil
}

func (r *fakePersons) UpdateStatus(personID, personType string, status model.PersonStatus) error {
	person, ok := r.s.persons[key(personID, personType)]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	person.PersonStatus = status
	return nil
}

func (r *fakePersons) ListBanned() ([]model.Person, error) {
	var out []model.Person
	for _, person := range r.s.persons {
		if person.IsBanned {
			out = append(out, *person)
		}
	}
	return out, nil
}

type fakeBanHistories struct{ s *fakeStore }

func (r *fakeBanHistories) Create(record *model.BanHistory) error {
	record.ID = uint(len(r.s.banRecords) + 1)
	r.s.banRecords = append(r.s.banRecords, record)
	return nil
}

func (r *fakeBanHistories) FindActive(personID, personType string) (*model.BanHistory, error) {
	for i := len(r.s.banRecords) - 1; i >= 0; i-- {
		record := r.s.banRecords[i]
		if record.PersonID == personID && record.PersonType == personType && record.Status == model.LedgerStatusActive {
			return record, nil
		}
	}
	return nil, nil
}

func (r *fakeBanHistories) Update(record *model.BanHistory) error {
	for i, existing := range r.s.banRecords {
		if existing.ID == record.ID {
			r.s.banRecords[i] = record
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeBanHistories) List(filter repository.LedgerFilter) ([]model.BanHistory, error) {
	var out []model.BanHistory
	for _, record := range r.s.banRecords {
		if filter.PersonID != "" && record.PersonID != filter.PersonID {
			continue
		}
		if filter.PersonType != "" && record.PersonType != filter.PersonType {
			continue
		}
		if filter.Status != "" && record.Status != filter.Status {
			continue
		}
		out = append(out, *record)
	}
	return out, nil
}

type fakeViolationHistories struct{ s *fakeStore }

func (r *fakeViolationHistories) Create(record *model.ViolationHistory) error {
	record.ID = uint(len(r.s.vioRecords) + 1)
	r.s.vioRecords = append(r.s.vioRecords, record)
	return nil
}

func (r *fakeViolationHistories) FindActive(personID, personType string) (*model.ViolationHistory, error) {
	for i := len(r.s.vioRecords) - 1; i >= 0; i-- {
		record := r.s.vioRecords[i]
		if record.PersonID == personID && record.PersonType == personType && record.Status == model.LedgerStatusActive {
			return record, nil
		}
	}
	return nil, nil
}

func (r *fakeViolationHistories) Update(record *model.ViolationHistory) error {
	for i, existing := range r.s.vioRecords {
		if existing.ID == record.ID {
			r.s.vioRecords[i] = record
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeViolationHistories) List(filter repository.LedgerFilter) ([]model.ViolationHistory, error) {
	var out []model.ViolationHistory
	for _, record := range r.s.vioRecords {
		if filter.PersonID != "" && record.PersonID != filter.PersonID {
			continue
		}
		if filter.PersonType != "" && record.PersonType != filter.PersonType {
			continue
		}
		if filter.Status != "" && record.Status != filter.Status {
			continue
		}
		out = append(out, *record)
	}
	return out, nil
}
