package routes

import (
	"prison-visitor-backend/internal/handler"
	"prison-visitor-backend/internal/middleware"
	"prison-visitor-backend/internal/repository"
	"prison-visitor-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupBanRoutes(app *fiber.App, db *gorm.DB) {
	store := repository.NewStore(db)
	bans := usecase.NewBanUsecase(store)
	hdl := handler.NewBanHandler(bans)

	persons := app.Group("/api/persons", middleware.Auth)
	persons.Put("/:type/:id/ban", hdl.Ban)
	persons.Put("/:type/:id/remove-ban", hdl.RemoveBan)
	persons.Put("/:type/:id/violation", hdl.Violation)
	persons.Put("/:type/:id/remove-violation", hdl.RemoveViolation)

	api := app.Group("/api", middleware.Auth)
	api.Get("/bans/active", hdl.ActiveBans)
	api.Get("/bans/history", hdl.BanHistory)
	api.Get("/violations/history", hdl.ViolationHistory)
}
