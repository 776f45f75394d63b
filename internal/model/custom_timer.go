package model

import "gorm.io/gorm"

// CustomTimer is a staff-staged visit window for one person, keyed by
// (person_id, person_type). Staging replaces any prior slot; check-in
// consumes it exactly once.
type CustomTimer struct {
	gorm.Model
	PersonID   string `json:"person_id" gorm:"uniqueIndex:idx_custom_timer_person"`
	PersonType string `json:"person_type" gorm:"uniqueIndex:idx_custom_timer_person"`
	StartTime  string `json:"start_time"` // "9:00 AM"
	EndTime    string `json:"end_time"`   // "11:00 AM"
	Duration   string `json:"duration"`   // "2h 0m"
	SetBy      string `json:"set_by"`
}
