package handler

import (
	"time"

	"prison-visitor-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type VisitHandler struct {
	timers *usecase.TimerUsecase
}

func NewVisitHandler(timers *usecase.TimerUsecase) *VisitHandler {
	return &VisitHandler{timers: timers}
}

type SetCustomTimerRequest struct {
	PersonID   string `json:"person_id" validate:"required"`
	PersonType string `json:"person_type" validate:"required,oneof=visitor guest"`
	StartTime  string `json:"start_time" validate:"required"`
	EndTime    string `json:"end_time" validate:"required"`
}

func (h *VisitHandler) SetCustomTimer(c *fiber.Ctx) error {
	var req SetCustomTimerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	timer, err := h.timers.SetCustomTimer(req.PersonID, req.PersonType, req.StartTime, req.EndTime, actorName(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Custom timer staged",
		"data":    timer,
	})
}

func (h *VisitHandler) VerifyCustomTimer(c *fiber.Ctx) error {
	personID := c.Query("person_id")
	personType := c.Query("person_type")
	if personID == "" || personType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "person_id and person_type are required"})
	}

	timer, err := h.timers.VerifyCustomTimer(personID, personType)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"has_custom_timer": timer != nil,
		"custom_timer":     timer,
	})
}

type CheckInRequest struct {
	PersonID   string `json:"person_id" validate:"required"`
	PersonType string `json:"person_type" validate:"required,oneof=visitor guest"`
}

func (h *VisitHandler) CheckIn(c *fiber.Ctx) error {
	var req CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	log, err := h.timers.CheckIn(req.PersonID, req.PersonType, time.Now())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Check-in successful",
		"data":    log,
	})
}

type CheckOutRequest struct {
	VisitLogID uint `json:"visit_log_id" validate:"required"`
}

func (h *VisitHandler) CheckOut(c *fiber.Ctx) error {
	var req CheckOutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	log, err := h.timers.CheckOut(req.VisitLogID, time.Now())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":        "Check-out successful",
		"visit_duration": log.VisitDuration,
		"data":           log,
	})
}

// ActiveTimers is the feed the dashboards poll every few seconds.
func (h *VisitHandler) ActiveTimers(c *fiber.Ctx) error {
	entries, err := h.timers.ActiveTimers(time.Now())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"count": len(entries),
		"data":  entries,
	})
}

func (h *VisitHandler) History(c *fiber.Ctx) error {
	personID := c.Query("person_id")
	personType := c.Query("person_type")
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	if personID == "" {
		// Date-range mode; default to today when no range given
		today := time.Now().Format("2006-01-02")
		if startDate == "" {
			startDate = today
		}
		if endDate == "" {
			endDate = today
		}
	}

	logs, err := h.timers.History(personID, personType, startDate, endDate)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"count": len(logs),
		"data":  logs,
	})
}

// ExpireSweep persists expired status for overdue logs. Safe to call
// repeatedly; reads never depend on it.
func (h *VisitHandler) ExpireSweep(c *fiber.Ctx) error {
	swept, err := h.timers.ExpireSweep(time.Now())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Sweep finished",
		"expired": swept,
	})
}
