package model

import "gorm.io/gorm"

type Inmate struct {
	gorm.Model
	InmateID   string `json:"inmate_id" gorm:"uniqueIndex;not null"` // Format INM-0001
	FullName   string `json:"full_name" gorm:"not null"`
	Gender     string `json:"gender"`   // MALE / FEMALE
	Division   string `json:"division"` // MALE_DORM / FEMALE_DORM
	CellNumber string `json:"cell_number"`
	Status     string `json:"status" gorm:"default:DETAINED"` // DETAINED / RELEASED / TRANSFERRED
}
