package handler

import (
	"time"

	"prison-visitor-backend/internal/repository"
	"prison-visitor-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type BanHandler struct {
	bans *usecase.BanUsecase
}

func NewBanHandler(bans *usecase.BanUsecase) *BanHandler {
	return &BanHandler{bans: bans}
}

type BanRequest struct {
	Reason       string `json:"reason" validate:"required"`
	BanDuration  string `json:"ban_duration" validate:"required"`
	BanStartDate string `json:"ban_start_date"` // YYYY-MM-DD, defaults to today
	BanEndDate   string `json:"ban_end_date"`   // Required for custom duration
	Notes        string `json:"notes"`
}

func (h *BanHandler) Ban(c *fiber.Ctx) error {
	personType := c.Params("type")
	personID := c.Params("id")

	var req BanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	payload := usecase.BanPayload{
		Reason:       req.Reason,
		DurationKind: req.BanDuration,
		Notes:        req.Notes,
	}
	if req.BanStartDate != "" {
		start, err := time.ParseInLocation("2006-01-02", req.BanStartDate, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ban_start_date must be YYYY-MM-DD"})
		}
		payload.StartDate = start
	}
	if req.BanEndDate != "" {
		end, err := time.ParseInLocation("2006-01-02", req.BanEndDate, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ban_end_date must be YYYY-MM-DD"})
		}
		payload.EndDate = &end
	}

	record, err := h.bans.ApplyBan(personID, personType, payload, actorName(c), time.Now())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Ban applied",
		"data":    record,
	})
}

type RemovalRequest struct {
	Reason string `json:"reason"`
}

func (h *BanHandler) RemoveBan(c *fiber.Ctx) error {
	var req RemovalRequest
	// Body is optional on removal
	c.BodyParser(&req)

	err := h.bans.RemoveBan(c.Params("id"), c.Params("type"), actorName(c), req.Reason, time.Now())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Ban removed"})
}

type ViolationRequest struct {
	ViolationType    string `json:"violation_type" validate:"required"`
	ViolationDetails string `json:"violation_details"`
}

func (h *BanHandler) Violation(c *fiber.Ctx) error {
	var req ViolationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	record, err := h.bans.ApplyViolation(c.Params("id"), c.Params("type"), req.ViolationType, req.ViolationDetails, actorName(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Violation recorded",
		"data":    record,
	})
}

func (h *BanHandler) RemoveViolation(c *fiber.Ctx) error {
	var req RemovalRequest
	c.BodyParser(&req)

	err := h.bans.RemoveViolation(c.Params("id"), c.Params("type"), actorName(c), req.Reason, time.Now())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Violation removed"})
}

// ActiveBans lists everyone currently banned, already filtered through the
// read-time expiry predicate.
func (h *BanHandler) ActiveBans(c *fiber.Ctx) error {
	entries, err := h.bans.ActiveBans(time.Now())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"count": len(entries),
		"data":  entries,
	})
}

func ledgerFilterFromQuery(c *fiber.Ctx) repository.LedgerFilter {
	return repository.LedgerFilter{
		PersonID:   c.Query("person_id"),
		PersonType: c.Query("person_type"),
		Status:     c.Query("status"),
		StartDate:  c.Query("start_date"),
		EndDate:    c.Query("end_date"),
	}
}

func (h *BanHandler) BanHistory(c *fiber.Ctx) error {
	records, err := h.bans.BanHistory(ledgerFilterFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"count": len(records),
		"data":  records,
	})
}

func (h *BanHandler) ViolationHistory(c *fiber.Ctx) error {
	records, err := h.bans.ViolationHistory(ledgerFilterFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"count": len(records),
		"data":  records,
	})
}
