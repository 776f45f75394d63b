package repository

import (
	"prison-visitor-backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VisitLogRepository interface {
	Create(log *model.VisitLog) error
	FindByID(id uint) (*model.VisitLog, error)
	FindActive(personID, personType string) (*model.VisitLog, error)
	Update(log *model.VisitLog) error
	ListActiveTimers(now time.Time) ([]model.VisitLog, error)
	ListByPerson(personID, personType string) ([]model.VisitLog, error)
	ListByDateRange(startDate, endDate string) ([]model.VisitLog, error)
	CountByDate(date string) (int64, error)
	ExpireOverdue(now time.Time) (int64, error)
}

type visitLogRepository struct {
	db *gorm.DB
}

func NewVisitLogRepository(db *gorm.DB) VisitLogRepository {
	return &visitLogRepository{db}
}

func (r *visitLogRepository) Create(log *model.VisitLog) error {
	return r.db.Create(log).Error
}

func (r *visitLogRepository) FindByID(id uint) (*model.VisitLog, error) {
	var log model.VisitLog
	// Find + Limit(1) so GORM does not log "record not found"
	err := r.db.Limit(1).Find(&log, id).Error
	if err != nil {
		return nil, err
	}
	if log.ID == 0 {
		return nil, nil
	}
	return &log, nil
}

func (r *visitLogRepository) FindActive(personID, personType string) (*model.VisitLog, error) {
	var log model.VisitLog
	// Lock the row so a concurrent check-in for the same person waits here
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("person_id = ? AND person_type = ? AND status = ?", personID, personType, model.VisitStatusInProgress).
		Limit(1).Find(&log).Error
	if err != nil {
		return nil, err
	}
	if log.ID == 0 {
		return nil, nil
	}
	return &log, nil
}

func (r *visitLogRepository) Update(log *model.VisitLog) error {
	return r.db.Save(log).Error
}

// ListActiveTimers is the single predicate behind every live-timer view:
// in-progress, not yet past its end instant, and not checked out.
func (r *visitLogRepository) ListActiveTimers(now time.Time) ([]model.VisitLog, error) {
	var logs []model.VisitLog
	err := r.db.
		Where("status = ? AND timer_end > ? AND time_out IS NULL", model.VisitStatusInProgress, now).
		Order("timer_end asc").
		Find(&logs).Error
	return logs, err
}

func (r *visitLogRepository) ListByPerson(personID, personType string) ([]model.VisitLog, error) {
	var logs []model.VisitLog
	err := r.db.Where("person_id = ? AND person_type = ?", personID, personType).
		Order("created_at desc").
		Find(&logs).Error
	return logs, err
}

func (r *visitLogRepository) ListByDateRange(startDate, endDate string) ([]model.VisitLog, error) {
	var logs []model.VisitLog
	// Compare by calendar date string, not instant, so the range is
	// timezone-agnostic
	err := r.db.Where("visit_date >= ? AND visit_date <= ?", startDate, endDate).
		Order("visit_date desc, created_at desc").
		Find(&logs).Error
	return logs, err
}

func (r *visitLogRepository) CountByDate(date string) (int64, error) {
	var count int64
	err := r.db.Model(&model.VisitLog{}).Where("visit_date = ?", date).Count(&count).Error
	return count, err
}

// ExpireOverdue persists expired status for overdue in-progress logs. The
// read paths already classify them as expired, so this is idempotent
// housekeeping, safe to run on any schedule.
func (r *visitLogRepository) ExpireOverdue(now time.Time) (int64, error) {
	result := r.db.Model(&model.VisitLog{}).
		Where("status = ? AND timer_end <= ?", model.VisitStatusInProgress, now).
		Updates(map[string]interface{}{
			"status":          model.VisitStatusExpired,
			"is_timer_active": false,
			"active_key":      nil,
		})
	return result.RowsAffected, result.Error
}
