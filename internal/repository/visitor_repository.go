package repository

import (
	"prison-visitor-backend/internal/model"

	"gorm.io/gorm"
)

type VisitorRepository interface {
	Create(visitor *model.Visitor) error
	FindByVisitorID(visitorID string) (*model.Visitor, error)
	Update(visitor *model.Visitor) error
	Delete(id uint) error
	List(search string) ([]model.Visitor, error)
	NextID() (string, error)
}

type visitorRepository struct {
	db *gorm.DB
}

func NewVisitorRepository(db *gorm.DB) VisitorRepository {
	return &visitorRepository{db}
}

func (r *visitorRepository) Create(visitor *model.Visitor) error {
	return r.db.Create(visitor).Error
}

func (r *visitorRepository) FindByVisitorID(visitorID string) (*model.Visitor, error) {
	var visitor model.Visitor
	err := r.db.Where("visitor_id = ?", visitorID).Limit(1).Find(&visitor).Error
	if err != nil {
		return nil, err
	}
	if visitor.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &visitor, nil
}

func (r *visitorRepository) Update(visitor *model.Visitor) error {
	return r.db.Save(visitor).Error
}

func (r *visitorRepository) Delete(id uint) error {
	return r.db.Delete(&model.Visitor{}, id).Error
}

func (r *visitorRepository) List(search string) ([]model.Visitor, error) {
	var visitors []model.Visitor
	query := r.db.Order("visitor_id asc")
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("full_name LIKE ? OR visitor_id LIKE ?", pattern, pattern)
	}
	err := query.Find(&visitors).Error
	return visitors, err
}

func (r *visitorRepository) NextID() (string, error) {
	return nextSequentialID(r.db, &model.Visitor{}, "visitor_id", "VST")
}
