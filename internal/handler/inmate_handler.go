package handler

import (
	"prison-visitor-backend/internal/model"
	"prison-visitor-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type InmateHandler struct {
	repo repository.InmateRepository
}

func NewInmateHandler(repo repository.InmateRepository) *InmateHandler {
	return &InmateHandler{repo: repo}
}

type CreateInmateRequest struct {
	FullName   string `json:"full_name" validate:"required"`
	Gender     string `json:"gender" validate:"required,oneof=MALE FEMALE"`
	CellNumber string `json:"cell_number"`
}

func (h *InmateHandler) Create(c *fiber.Ctx) error {
	var req CreateInmateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	inmateID, err := h.repo.NextID()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to allocate inmate ID"})
	}

	// Divisions are gender-segregated
	division := "MALE_DORM"
	if req.Gender == "FEMALE" {
		division = "FEMALE_DORM"
	}

	inmate := model.Inmate{
		InmateID:   inmateID,
		FullName:   req.FullName,
		Gender:     req.Gender,
		Division:   division,
		CellNumber: req.CellNumber,
		Status:     "DETAINED",
	}
	if err := h.repo.Create(&inmate); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to register inmate"})
	}
	return c.JSON(fiber.Map{
		"message": "Inmate registered",
		"data":    inmate,
	})
}

func (h *InmateHandler) GetAll(c *fiber.Ctx) error {
	inmates, err := h.repo.List(c.Query("division"), c.Query("search"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch inmates"})
	}
	return c.JSON(fiber.Map{"data": inmates})
}

func (h *InmateHandler) GetByID(c *fiber.Ctx) error {
	inmate, err := h.repo.FindByInmateID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Inmate not found"})
	}
	return c.JSON(fiber.Map{"data": inmate})
}

type UpdateInmateRequest struct {
	FullName   string `json:"full_name"`
	CellNumber string `json:"cell_number"`
	Status     string `json:"status"`
}

func (h *InmateHandler) Update(c *fiber.Ctx) error {
	inmate, err := h.repo.FindByInmateID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Inmate not found"})
	}

	var req UpdateInmateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.FullName != "" {
		inmate.FullName = req.FullName
	}
	if req.CellNumber != "" {
		inmate.CellNumber = req.CellNumber
	}
	if req.Status != "" {
		inmate.Status = req.Status
	}

	if err := h.repo.Update(inmate); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update inmate"})
	}
	return c.JSON(fiber.Map{
		"message": "Inmate updated",
		"data":    inmate,
	})
}

func (h *InmateHandler) Delete(c *fiber.Ctx) error {
	inmate, err := h.repo.FindByInmateID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Inmate not found"})
	}
	if err := h.repo.Delete(inmate.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete inmate"})
	}
	return c.JSON(fiber.Map{"message": "Inmate deleted"})
}
