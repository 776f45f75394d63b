package repository

import (
	"prison-visitor-backend/internal/model"

	"gorm.io/gorm"
)

type InmateRepository interface {
	Create(inmate *model.Inmate) error
	FindByInmateID(inmateID string) (*model.Inmate, error)
	Update(inmate *model.Inmate) error
	Delete(id uint) error
	List(division, search string) ([]model.Inmate, error)
	NextID() (string, error)
}

type inmateRepository struct {
	db *gorm.DB
}

func NewInmateRepository(db *gorm.DB) InmateRepository {
	return &inmateRepository{db}
}

func (r *inmateRepository) Create(inmate *model.Inmate) error {
	return r.db.Create(inmate).Error
}

func (r *inmateRepository) FindByInmateID(inmateID string) (*model.Inmate, error) {
	var inmate model.Inmate
	err := r.db.Where("inmate_id = ?", inmateID).Limit(1).Find(&inmate).Error
	if err != nil {
		return nil, err
	}
	if inmate.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &inmate, nil
}

func (r *inmateRepository) Update(inmate *model.Inmate) error {
	return r.db.Save(inmate).Error
}

func (r *inmateRepository) Delete(id uint) error {
	return r.db.Delete(&model.Inmate{}, id).Error
}

func (r *inmateRepository) List(division, search string) ([]model.Inmate, error) {
	var inmates []model.Inmate
	query := r.db.Order("inmate_id asc")
	if division != "" {
		query = query.Where("division = ?", division)
	}
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("full_name LIKE ? OR inmate_id LIKE ?", pattern, pattern)
	}
	err := query.Find(&inmates).Error
	return inmates, err
}

func (r *inmateRepository) NextID() (string, error) {
	return nextSequentialID(r.db, &model.Inmate{}, "inmate_id", "INM")
}
