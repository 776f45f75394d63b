package routes

import (
	"prison-visitor-backend/internal/handler"
	"prison-visitor-backend/internal/middleware"
	"prison-visitor-backend/internal/model"
	"prison-visitor-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupVisitorRoutes(app *fiber.App, db *gorm.DB) {
	visitorRepo := repository.NewVisitorRepository(db)
	inmateRepo := repository.NewInmateRepository(db)
	hdl := handler.NewVisitorHandler(visitorRepo, inmateRepo)

	api := app.Group("/api/visitors", middleware.Auth)
	api.Post("/", hdl.Create)
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)
	api.Put("/:id", hdl.Update)
	api.Put("/:id/approve", hdl.Approve)
	api.Delete("/:id", middleware.Role(model.RoleAdmin), hdl.Delete)
}

func SetupGuestRoutes(app *fiber.App, db *gorm.DB) {
	guestRepo := repository.NewGuestRepository(db)
	hdl := handler.NewGuestHandler(guestRepo)

	api := app.Group("/api/guests", middleware.Auth)
	api.Post("/", hdl.Create)
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", middleware.Role(model.RoleAdmin), hdl.Delete)
}

func SetupInmateRoutes(app *fiber.App, db *gorm.DB) {
	inmateRepo := repository.NewInmateRepository(db)
	hdl := handler.NewInmateHandler(inmateRepo)

	api := app.Group("/api/inmates", middleware.Auth)
	api.Post("/", hdl.Create)
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", middleware.Role(model.RoleAdmin), hdl.Delete)
}
