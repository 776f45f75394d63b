package routes

import (
	"prison-visitor-backend/internal/handler"
	"prison-visitor-backend/internal/middleware"
	"prison-visitor-backend/internal/repository"
	"prison-visitor-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupVisitRoutes(app *fiber.App, db *gorm.DB) {
	store := repository.NewStore(db)
	timers := usecase.NewTimerUsecase(store)
	hdl := handler.NewVisitHandler(timers)

	api := app.Group("/api/visits", middleware.Auth)

	api.Post("/custom-timer", hdl.SetCustomTimer)
	api.Get("/custom-timer/verify", hdl.VerifyCustomTimer)
	api.Post("/checkin", hdl.CheckIn)
	api.Post("/checkout", hdl.CheckOut)
	api.Get("/active", hdl.ActiveTimers)
	api.Get("/history", hdl.History)
	api.Post("/expire-sweep", hdl.ExpireSweep)
}
