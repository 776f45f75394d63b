package repository

import (
	"prison-visitor-backend/internal/model"

	"gorm.io/gorm"
)

// LedgerFilter narrows ban/violation history queries. Zero values mean "any".
type LedgerFilter struct {
	PersonID   string
	PersonType string
	Status     string
	StartDate  string // YYYY-MM-DD, inclusive, against the record's creation date
	EndDate    string
}

type BanHistoryRepository interface {
	Create(record *model.BanHistory) error
	FindActive(personID, personType string) (*model.BanHistory, error)
	Update(record *model.BanHistory) error
	List(filter LedgerFilter) ([]model.BanHistory, error)
}

type banHistoryRepository struct {
	db *gorm.DB
}

func NewBanHistoryRepository(db *gorm.DB) BanHistoryRepository {
	return &banHistoryRepository{db}
}

func (r *banHistoryRepository) Create(record *model.BanHistory) error {
	return r.db.Create(record).Error
}

func (r *banHistoryRepository) FindActive(personID, personType string) (*model.BanHistory, error) {
	var record model.BanHistory
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

func (r *banHistoryRepository) Update(record *model.BanHistory) error {
	return r.db.Save(record).Error
}

func (r *banHistoryRepository) List(filter LedgerFilter) ([]model.BanHistory, error) {
	var records []model.BanHistory
	query := r.db.Model(&model.BanHistory{})
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
