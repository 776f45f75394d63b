package repository

import (
	"prison-visitor-backend/internal/model"

	"gorm.io/gorm"
)

type ViolationHistoryRepository interface {
	Create(record *model.ViolationHistory) error
	FindActive(personID, personType string) (*model.ViolationHistory, error)
	Update(record *model.ViolationHistory) error
	List(filter LedgerFilter) ([]model.ViolationHistory, error)
}

type violationHistoryRepository struct {
	db *gorm.DB
}

func NewViolationHistoryRepository(db *gorm.DB) ViolationHistoryRepository {
	return &violationHistoryRepository{db}
}

func (r *violationHistoryRepository) Create(record *model.ViolationHistory) error {
	return r.db.Create(record).Error
}

func (r *violationHistoryRepository) FindActive(personID, personType string) (*model.ViolationHistory, error) {
	var record model.ViolationHistory
	err := r.db.Where("person_id = ? AND person_type = ? AND status = ?",
		personID, personType, model.LedgerStatusActive).
		Order("created_at desc").Limit(1).Find(&record).Error
	if err != nil {
		return nil, err
	}
	if record.ID == 0 {
		return nil, nil
	}
	return &record, nil
}

func (r *violationHistoryRepository) Update(record *model.ViolationHistory) error {
	return r.db.Save(record).Error
}

func (r *violationHistoryRepository) List(filter LedgerFilter) ([]model.ViolationHistory, error) {
	var records []model.ViolationHistory
	query := r.db.Model(&model.ViolationHistory{})
	if filter.PersonID != "" {
		query = query.Where("person_id = ?", filter.PersonID)
	}
	if filter.PersonType != "" {
		query = query.Where("person_type = ?", filter.PersonType)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.StartDate != "" {
		query = query.Where("DATE(created_at) >= ?", filter.StartDate)
	}
	if filter.EndDate != "" {
		query = query.Where("DATE(created_at) <= ?", filter.EndDate)
	}
	err := query.Order("created_at desc").Find(&records).Error
	return records, err
}
