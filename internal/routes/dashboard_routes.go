package routes

import (
	"prison-visitor-backend/internal/handler"
	"prison-visitor-backend/internal/middleware"
	"prison-visitor-backend/internal/repository"
	"prison-visitor-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB) {
	store := repository.NewStore(db)
	timers := usecase.NewTimerUsecase(store)
	bans := usecase.NewBanUsecase(store)
	hdl := handler.NewDashboardHandler(repository.NewVisitLogRepository(db), timers, bans)

	api := app.Group("/api/dashboard", middleware.Auth)
	api.Get("/summary", hdl.Summary)
}
