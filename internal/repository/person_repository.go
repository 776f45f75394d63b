package repository

import (
	"prison-visitor-backend/internal/model"

	"gorm.io/gorm"
)

// PersonRepository is the type-independent view over visitors and guests the
// timer and ban engines work with. Status fields must only be written through
// UpdateStatus so the denormalized mirror stays consistent with the ledgers.
type PersonRepository interface {
	Find(personID, personType string) (*model.Person, error)
	UpdateStatus(personID, personType string, status model.PersonStatus) error
	ListBanned() ([]model.Person, error)
}

type personRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) PersonRepository {
	return &personRepository{db}
}

func (r *personRepository) Find(personID, personType string) (*model.Person, error) {
	switch personType {
	case model.PersonTypeVisitor:
		var v model.Visitor
		err := r.db.Where("visitor_id = ?", personID).Limit(1).Find(&v).Error
		if err != nil {
			return nil, err
		}
		if v.ID == 0 {
			return nil, nil
		}
		return visitorToPerson(v), nil
	case model.PersonTypeGuest:
		var g model.Guest
		err := r.db.Where("guest_id = ?", personID).Limit(1).Find(&g).Error
		if err != nil {
			return nil, err
		}
		if g.ID == 0 {
			return nil, nil
		}
		return guestToPerson(g), nil
	default:
		return nil, nil
	}
}

func (r *personRepository) UpdateStatus(personID, personType string, status model.PersonStatus) error {
	switch personType {
	case model.PersonTypeVisitor:
		var v model.Visitor
		if err := r.db.Where("visitor_id = ?", personID).First(&v).Error; err != nil {
			return err
		}
		v.PersonStatus = status
		return r.db.Save(&v).Error
	case model.PersonTypeGuest:
		var g model.Guest
		if err := r.db.Where("guest_id = ?", personID).First(&g).Error; err != nil {
			return err
		}
		g.PersonStatus = status
		return r.db.Save(&g).Error
	default:
		return gorm.ErrRecordNotFound
	}
}

// ListBanned returns everyone whose stored flag is set. Callers must still
// apply the read-time expiry predicate; the flag alone is not authoritative.
func (r *personRepository) ListBanned() ([]model.Person, error) {
	var persons []model.Person

	var visitors []model.Visitor
	if err := r.db.Where("is_banned = ?", true).Find(&visitors).Error; err != nil {
		return nil, err
	}
	for _, v := range visitors {
		persons = append(persons, *visitorToPerson(v))
	}

	var guests []model.Guest
	if err := r.db.Where("is_banned = ?", true).Find(&guests).Error; err != nil {
		return nil, err
	}
	for _, g := range guests {
		persons = append(persons, *guestToPerson(g))
	}
	return persons, nil
}

func visitorToPerson(v model.Visitor) *model.Person {
	return &model.Person{
		PersonID:     v.VisitorID,
		PersonType:   model.PersonTypeVisitor,
		FullName:     v.FullName,
		Gender:       v.Gender,
		InmateID:     v.InmateID,
		PersonStatus: v.PersonStatus,
	}
}

func guestToPerson(g model.Guest) *model.Person {
	return &model.Person{
		PersonID:     g.GuestID,
		PersonType:   model.PersonTypeGuest,
		FullName:     g.FullName,
		Gender:       g.Gender,
		PersonStatus: g.PersonStatus,
	}
}
