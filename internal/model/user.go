package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

type User struct {
	gorm.Model
	FullName string `json:"full_name"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-"`
	Role     string `json:"role" gorm:"default:staff"`
	Division string `json:"division"` // MALE_DORM / FEMALE_DORM
	IsActive bool   `json:"is_active" gorm:"default:true"`

	OTPCode      string     `json:"-"`
	OTPExpiresAt *time.Time `json:"-"`
}
