package database

import (
	"log"

	"prison-visitor-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedAll(db *gorm.DB) {
	// 1. First admin account
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)

	admin := model.User{
		FullName: "System Administrator",
		Username: "admin",
		Email:    "admin@visitahanan.local",
		Password: string(hashedPassword),
		Role:     model.RoleAdmin,
		IsActive: true,
	}
	result := db.FirstOrCreate(&admin, model.User{Username: admin.Username})
	if result.Error == nil {
		// Force the password so "admin123" always works after reseeding
		db.Model(&admin).Update("password", string(hashedPassword))
		log.Println("Admin account seeded!")
	}

	// 2. Staff accounts, one per division
	staff := []model.User{
		{FullName: "Male Dorm Staff", Username: "staff.male", Email: "staff.male@visitahanan.local", Password: string(hashedPassword), Role: model.RoleStaff, Division: "MALE_DORM", IsActive: true},
		{FullName: "Female Dorm Staff", Username: "staff.female", Email: "staff.female@visitahanan.local", Password: string(hashedPassword), Role: model.RoleStaff, Division: "FEMALE_DORM", IsActive: true},
	}
	for _, s := range staff {
		db.FirstOrCreate(&s, model.User{Username: s.Username})
	}

	// 3. Sample inmates
	inmates := []model.Inmate{
		{InmateID: "INM-0001", FullName: "Juan Dela Cruz", Gender: "MALE", Division: "MALE_DORM", CellNumber: "A-101", Status: "DETAINED"},
		{InmateID: "INM-0002", FullName: "Maria Santos", Gender: "FEMALE", Division: "FEMALE_DORM", CellNumber: "B-201", Status: "DETAINED"},
	}
	for _, i := range inmates {
		db.FirstOrCreate(&i, model.Inmate{InmateID: i.InmateID})
	}
	log.Println("Sample inmates seeded!")
}
