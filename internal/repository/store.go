package repository

import "gorm.io/gorm"

// Store bundles the repositories the timer and ban engines mutate together,
// so a usecase can run them inside one database transaction.
type Store interface {
	VisitLogs() VisitLogRepository
	CustomTimers() CustomTimerRepository
	Persons() PersonRepository
	BanHistories() BanHistoryRepository
	ViolationHistories() ViolationHistoryRepository

	// Transaction runs fn against a Store bound to a single transaction.
	// Returning an error rolls everything back.
	Transaction(fn func(Store) error) error
}

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) VisitLogs() VisitLogRepository       { return NewVisitLogRepository(s.db) }
func (s *gormStore) CustomTimers() CustomTimerRepository { return NewCustomTimerRepository(s.db) }
func (s *gormStore) Persons() PersonRepository           { return NewPersonRepository(s.db) }
func (s *gormStore) BanHistories() BanHistoryRepository  { return NewBanHistoryRepository(s.db) }
func (s *gormStore) ViolationHistories() ViolationHistoryRepository {
	return NewViolationHistoryRepository(s.db)
}

func (s *gormStore) Transaction(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
