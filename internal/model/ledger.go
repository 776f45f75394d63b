package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	LedgerStatusActive  = "active"
	LedgerStatusRemoved = "removed"
)

// BanHistory is the append-only ban ledger. Records are marked removed when
// staff lift a ban, never deleted, so the history survives Person edits.
type BanHistory struct {
	gorm.Model
	PersonID   string `json:"person_id" gorm:"index"`
	PersonType string `json:"person_type"`
	PersonName string `json:"person_name"`

	Reason             string     `json:"reason"`
	BanDuration        string     `json:"ban_duration"`
	BanStartDate       *time.Time `json:"ban_start_date"`
	BanEndDate         *time.Time `json:"ban_end_date"`
	CalculatedDuration string     `json:"calculated_duration"` // Display string, e.g. "7 day(s) 0 hour(s)"
	Notes              string     `json:"notes"`

	Status        string     `json:"status" gorm:"default:active"`
	BannedBy      string     `json:"banned_by"`
	RemovedBy     string     `json:"removed_by"`
	RemovalReason string     `json:"removal_reason"`
	RemovedAt     *time.Time `json:"removed_at"`
}

// ViolationHistory mirrors BanHistory for violations.
type ViolationHistory struct {
	gorm.Model
	PersonID   string `json:"person_id" gorm:"index"`
	PersonType string `json:"person_type"`
	PersonName string `json:"person_name"`

	ViolationType    string `json:"violation_type"`
	ViolationDetails string `json:"violation_details"`

	Status        string     `json:"status" gorm:"default:active"`
	RecordedBy    string     `json:"recorded_by"`
	RemovedBy     string     `json:"removed_by"`
	RemovalReason string     `json:"removal_reason"`
	RemovedAt     *time.Time `json:"removed_at"`
}
