package handler

import (
	"time"

	"prison-visitor-backend/internal/repository"
	"prison-visitor-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler is pure read-side: it aggregates state the timer and ban
// engines produced and never mutates anything.
type DashboardHandler struct {
	visitLogs repository.VisitLogRepository
	timers    *usecase.TimerUsecase
	bans      *usecase.BanUsecase
}

func NewDashboardHandler(visitLogs repository.VisitLogRepository, timers *usecase.TimerUsecase, bans *usecase.BanUsecase) *DashboardHandler {
	return &DashboardHandler{visitLogs: visitLogs, timers: timers, bans: bans}
}

func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	now := time.Now()
	today := now.Format("2006-01-02")

	visitsToday, err := h.visitLogs.CountByDate(today)
	if err != nil {
		return respondError(c, err)
	}

	active, err := h.timers.ActiveTimers(now)
	if err != nil {
		return respondError(c, err)
	}

	// Count urgency buckets for the badge row
	warning := 0
	critical := 0
	for _, entry := range active {
		switch entry.Classification {
		case usecase.ClassWarning:
			warning++
		case usecase.ClassCritical:
			critical++
		}
	}

	banned, err := h.bans.ActiveBans(now)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"visits_today":     visitsToday,
			"active_timers":    len(active),
			"timers_warning":   warning,
			"timers_critical":  critical,
			"currently_banned": len(banned),
		},
	})
}
