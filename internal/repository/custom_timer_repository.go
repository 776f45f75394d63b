package repository

import (
	"prison-visitor-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomTimerRepository interface {
	Stage(timer *model.CustomTimer) error
	Peek(personID, personType string) (*model.CustomTimer, error)
	Consume(personID, personType string) (*model.CustomTimer, error)
}

type customTimerRepository struct {
	db *gorm.DB
}

func NewCustomTimerRepository(db *gorm.DB) CustomTimerRepository {
	return &customTimerRepository{db}
}

// Stage is replace-on-write: one pending slot per person, last write wins.
// OnConflict also resets deleted_at so a previously consumed (soft deleted)
// row is restored instead of tripping the unique index.
func (r *customTimerRepository) Stage(timer *model.CustomTimer) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "person_id"}, {Name: "person_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"start_time", "end_time", "duration", "set_by", "updated_at", "deleted_at"}),
	}).Create(timer).Error
}

func (r *customTimerRepository) Peek(personID, personType string) (*model.CustomTimer, error) {
	var timer model.CustomTimer
	err := r.db.Where("person_id = ? AND person_type = ?", personID, personType).
		Limit(1).Find(&timer).Error
	if err != nil {
		return nil, err
	}
	if timer.ID == 0 {
		return nil, nil
	}
	return &timer, nil
}

// Consume reads the staged slot and clears it in one go. Run inside the
// check-in transaction; the row lock makes the read-and-clear atomic against
// a concurrent check-in for the same person.
func (r *customTimerRepository) Consume(personID, personType string) (*model.CustomTimer, error) {
	var timer model.CustomTimer
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("person_id = ? AND person_type = ?", personID, personType).
		Limit(1).Find(&timer).Error
	if err != nil {
		return nil, err
	}
	if timer.ID == 0 {
		return nil, nil
	}
	if err := r.db.Delete(&timer).Error; err != nil {
		return nil, err
	}
	return &timer, nil
}
