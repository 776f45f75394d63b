package config

import (
	"fmt"
	"prison-visitor-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	// Format: user:password@tcp(host:port)/dbname?charset=utf8mb4&parseTime=True&loc=Local
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		GetEnv("DB_USER", "root"),
		GetEnv("DB_PASS", ""),
		GetEnv("DB_HOST", "127.0.0.1"),
		GetEnv("DB_PORT", "3306"),
		GetEnv("DB_NAME", "visitor_mgmt_db"),
	)

	// TranslateError is required so duplicate-key violations surface as
	// gorm.ErrDuplicatedKey (the check-in race guard depends on it).
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("Failed to connect to database!")
	}

	fmt.Println("Database connection established!")

	// Auto Migration: create tables from the structs in internal/model
	db.AutoMigrate(&model.User{})
	db.AutoMigrate(&model.Inmate{})
	db.AutoMigrate(&model.Visitor{})
	db.AutoMigrate(&model.Guest{})
	db.AutoMigrate(&model.CustomTimer{})
	db.AutoMigrate(&model.VisitLog{})
	db.AutoMigrate(&model.BanHistory{})
	db.AutoMigrate(&model.ViolationHistory{})

	DB = db
}
