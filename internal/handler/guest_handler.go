package handler

import (
	"prison-visitor-backend/internal/model"
	"prison-visitor-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type GuestHandler struct {
	repo repository.GuestRepository
}

func NewGuestHandler(repo repository.GuestRepository) *GuestHandler {
	return &GuestHandler{repo: repo}
}

type CreateGuestRequest struct {
	FullName      string `json:"full_name" validate:"required"`
	Gender        string `json:"gender" validate:"required,oneof=MALE FEMALE"`
	Address       string `json:"address"`
	ContactNumber string `json:"contact_number"`
	Purpose       string `json:"purpose" validate:"required"`
}

func (h *GuestHandler) Create(c *fiber.Ctx) error {
	var req CreateGuestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	guestID, err := h.repo.NextID()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to allocate guest ID"})
	}

	guest := model.Guest{
		GuestID:       guestID,
		FullName:      req.FullName,
		Gender:        req.Gender,
		Address:       req.Address,
		ContactNumber: req.ContactNumber,
		Purpose:       req.Purpose,
	}
	if err := h.repo.Create(&guest); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to register guest"})
	}
	return c.JSON(fiber.Map{
		"message": "Guest registered",
		"data":    guest,
	})
}

func (h *GuestHandler) GetAll(c *fiber.Ctx) error {
	guests, err := h.repo.List(c.Query("search"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch guests"})
	}
	return c.JSON(fiber.Map{"data": guests})
}

func (h *GuestHandler) GetByID(c *fiber.Ctx) error {
	guest, err := h.repo.FindByGuestID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Guest not found"})
	}
	return c.JSON(fiber.Map{"data": guest})
}

func (h *GuestHandler) Update(c *fiber.Ctx) error {
	guest, err := h.repo.FindByGuestID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Guest not found"})
	}

	var req CreateGuestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.FullName != "" {
		guest.FullName = req.FullName
	}
	if req.Gender != "" {
		guest.Gender = req.Gender
	}
	if req.Address != "" {
		guest.Address = req.Address
	}
	if req.ContactNumber != "" {
		guest.ContactNumber = req.ContactNumber
	}
	if req.Purpose != "" {
		guest.Purpose = req.Purpose
	}

	if err := h.repo.Update(guest); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update guest"})
	}
	return c.JSON(fiber.Map{
		"message": "Guest updated",
		"data":    guest,
	})
}

func (h *GuestHandler) Delete(c *fiber.Ctx) error {
	guest, err := h.repo.FindByGuestID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Guest not found"})
	}
	if err := h.repo.Delete(guest.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete guest"})
	}
	return c.JSON(fiber.Map{"message": "Guest deleted"})
}
