package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	VisitStatusInProgress = "in-progress"
	VisitStatusCompleted  = "completed"
	VisitStatusExpired    = "expired"
)

// VisitLog is one check-in event. TimeIn/TimeOut are 12-hour display strings
// ("9:05 AM"); TimerStart/TimerEnd are the absolute instants the timer math
// runs on. A completed log is never mutated again.
type VisitLog struct {
	gorm.Model
	PersonID   string  `json:"person_id" gorm:"index:idx_visit_person"`
	PersonType string  `json:"person_type" gorm:"index:idx_visit_person"`
	PersonName string  `json:"person_name"`
	InmateID   *string `json:"inmate_id"` // Nil for purpose-only guest visits

	VisitDate string  `json:"visit_date"` // Format YYYY-MM-DD, compared as calendar date
	TimeIn    string  `json:"time_in"`
	TimeOut   *string `json:"time_out"`

	TimerStart time.Time `json:"timer_start"`
	TimerEnd   time.Time `json:"timer_end"`

	Status               string `json:"status" gorm:"default:in-progress"`
	IsTimerActive        bool   `json:"is_timer_active" gorm:"default:true"`
	IsCustomTimer        bool   `json:"is_custom_timer" gorm:"default:false"`
	TotalDurationMinutes int    `json:"total_duration_minutes"`
	VisitDuration        string `json:"visit_duration"` // Display string, set at checkout

	// ActiveKey is "<person_type>:<person_id>" while the log is in-progress and
	// NULL once closed. The unique index is what makes two concurrent check-ins
	// for the same person impossible.
	ActiveKey *string `json:"-" gorm:"uniqueIndex"`
}
