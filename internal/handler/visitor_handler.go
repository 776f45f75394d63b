package handler

import (
	"prison-visitor-backend/internal/model"
	"prison-visitor-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type VisitorHandler struct {
	repo       repository.VisitorRepository
	inmateRepo repository.InmateRepository
}

func NewVisitorHandler(repo repository.VisitorRepository, inmateRepo repository.InmateRepository) *VisitorHandler {
	return &VisitorHandler{repo: repo, inmateRepo: inmateRepo}
}

type CreateVisitorRequest struct {
	FullName      string `json:"full_name" validate:"required"`
	Gender        string `json:"gender" validate:"required,oneof=MALE FEMALE"`
	Address       string `json:"address"`
	ContactNumber string `json:"contact_number"`
	InmateID      string `json:"inmate_id" validate:"required"`
	Relationship  string `json:"relationship"`
}

func (h *VisitorHandler) Create(c *fiber.Ctx) error {
	var req CreateVisitorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// The registered inmate must exist
	if _, err := h.inmateRepo.FindByInmateID(req.InmateID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Inmate not found"})
	}

	visitorID, err := h.repo.NextID()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to allocate visitor ID"})
	}

	visitor := model.Visitor{
		VisitorID:     visitorID,
		FullName:      req.FullName,
		Gender:        req.Gender,
		Address:       req.Address,
		ContactNumber: req.ContactNumber,
		InmateID:      &req.InmateID,
		Relationship:  req.Relationship,
	}
	if err := h.repo.Create(&visitor); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to register visitor"})
	}
	return c.JSON(fiber.Map{
		"message": "Visitor registered",
		"data":    visitor,
	})
}

func (h *VisitorHandler) GetAll(c *fiber.Ctx) error {
	visitors, err := h.repo.List(c.Query("search"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch visitors"})
	}
	return c.JSON(fiber.Map{"data": visitors})
}

func (h *VisitorHandler) GetByID(c *fiber.Ctx) error {
	visitor, err := h.repo.FindByVisitorID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Visitor not found"})
	}
	return c.JSON(fiber.Map{"data": visitor})
}

func (h *VisitorHandler) Update(c *fiber.Ctx) error {
	visitor, err := h.repo.FindByVisitorID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Visitor not found"})
	}

	var req CreateVisitorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.FullName != "" {
		visitor.FullName = req.FullName
	}
	if req.Gender != "" {
		visitor.Gender = req.Gender
	}
	if req.Address != "" {
		visitor.Address = req.Address
	}
	if req.ContactNumber != "" {
		visitor.ContactNumber = req.ContactNumber
	}
	if req.InmateID != "" {
		if _, err := h.inmateRepo.FindByInmateID(req.InmateID); err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Inmate not found"})
		}
		visitor.InmateID = &req.InmateID
	}
	if req.Relationship != "" {
		visitor.Relationship = req.Relationship
	}

	if err := h.repo.Update(visitor); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update visitor"})
	}
	return c.JSON(fiber.Map{
		"message": "Visitor updated",
		"data":    visitor,
	})
}

func (h *VisitorHandler) Approve(c *fiber.Ctx) error {
	visitor, err := h.repo.FindByVisitorID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Visitor not found"})
	}

	visitor.IsApproved = true
	if err := h.repo.Update(visitor); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to approve visitor"})
	}
	return c.JSON(fiber.Map{
		"message": "Visitor approved",
		"data":    visitor,
	})
}

func (h *VisitorHandler) Delete(c *fiber.Ctx) error {
	visitor, err := h.repo.FindByVisitorID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Visitor not found"})
	}
	if err := h.repo.Delete(visitor.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete visitor"})
	}
	return c.JSON(fiber.Map{"message": "Visitor deleted"})
}
