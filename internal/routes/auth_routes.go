package routes

import (
	"prison-visitor-backend/internal/handler"
	"prison-visitor-backend/internal/middleware"
	"prison-visitor-backend/internal/model"
	"prison-visitor-backend/internal/repository"
	"prison-visitor-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	userRepo := repository.NewUserRepository(db)
	users := usecase.NewUserUsecase(userRepo, usecase.NewSMTPMailer())
	hdl := handler.NewUserHandler(users)

	api := app.Group("/api/auth")

	// Public endpoints
	api.Post("/login", hdl.Login)
	api.Post("/otp/request", hdl.RequestOTP)
	api.Post("/otp/verify", hdl.VerifyOTP)

	// Creating accounts is admin-only
	api.Post("/register", middleware.Auth, middleware.Role(model.RoleAdmin), hdl.Register)
	api.Put("/password", middleware.Auth, hdl.ChangePassword)
}
