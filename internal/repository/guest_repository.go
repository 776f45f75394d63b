package repository

import (
	"prison-visitor-backend/internal/model"

	"gorm.io/gorm"
)

type GuestRepository interface {
	Create(guest *model.Guest) error
	FindByGuestID(guestID string) (*model.Guest, error)
	Update(guest *model.Guest) error
	Delete(id uint) error
	List(search string) ([]model.Guest, error)
	NextID() (string, error)
}

type guestRepository struct {
	db *gorm.DB
}

func NewGuestRepository(db *gorm.DB) GuestRepository {
	return &guestRepository{db}
}

func (r *guestRepository) Create(guest *model.Guest) error {
	return r.db.Create(guest).Error
}

func (r *guestRepository) FindByGuestID(guestID string) (*model.Guest, error) {
	var guest model.Guest
	err := r.db.Where("guest_id = ?", guestID).Limit(1).Find(&guest).Error
	if err != nil {
		return nil, err
	}
	if guest.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &guest, nil
}

func (r *guestRepository) Update(guest *model.Guest) error {
	return r.db.Save(guest).Error
}

func (r *guestRepository) Delete(id uint) error {
	return r.db.Delete(&model.Guest{}, id).Error
}

func (r *guestRepository) List(search string) ([]model.Guest, error) {
	var guests []model.Guest
	query := r.db.Order("guest_id asc")
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("full_name LIKE ? OR guest_id LIKE ?", pattern, pattern)
	}
	err := query.Find(&guests).Error
	return guests, err
}

func (r *guestRepository) NextID() (string, error) {
	return nextSequentialID(r.db, &model.Guest{}, "guest_id", "GST")
}
