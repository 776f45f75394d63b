package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	PersonTypeVisitor = "visitor"
	PersonTypeGuest   = "guest"
)

// Ban duration options selectable by staff. CUSTOM requires an explicit end date.
const (
	BanDurationOneWeek   = "1_week"
	BanDurationTwoWeeks  = "2_weeks"
	BanDurationOneMonth  = "1_month"
	BanDurationThreeMos  = "3_months"
	BanDurationSixMos    = "6_months"
	BanDurationOneYear   = "1_year"
	BanDurationPermanent = "permanent"
	BanDurationCustom    = "custom"
)

// PersonStatus holds the timer/ban/violation fields shared by Visitor and Guest.
// These are the denormalized "current status" mirror of the history ledgers;
// they must only be written through the timer and ban usecases.
type PersonStatus struct {
	HasTimedIn    bool    `json:"has_timed_in" gorm:"default:false"`
	HasTimedOut   bool    `json:"has_timed_out" gorm:"default:false"`
	LastVisitDate *string `json:"last_visit_date"` // Format YYYY-MM-DD

	IsBanned     bool       `json:"is_banned" gorm:"default:false"`
	BanReason    string     `json:"ban_reason"`
	BanDuration  string     `json:"ban_duration"`
	BanStartDate *time.Time `json:"ban_start_date"`
	BanEndDate   *time.Time `json:"ban_end_date"` // Only set when ban_duration = custom
	BanNotes     string     `json:"ban_notes"`

	ViolationType    string `json:"violation_type"`
	ViolationDetails string `json:"violation_details"`
}

type Visitor struct {
	gorm.Model
	VisitorID     string  `json:"visitor_id" gorm:"uniqueIndex;not null"` // Format VST-0001
	FullName      string  `json:"full_name" gorm:"not null"`
	Gender        string  `json:"gender"` // MALE / FEMALE (division segmentation)
	Address       string  `json:"address"`
	ContactNumber string  `json:"contact_number"`
	InmateID      *string `json:"inmate_id"` // Inmate this visitor is registered to
	Relationship  string  `json:"relationship"`
	IsApproved    bool    `json:"is_approved" gorm:"default:false"`

	PersonStatus `gorm:"embedded"`
}

type Guest struct {
	gorm.Model
	GuestID       string `json:"guest_id" gorm:"uniqueIndex;not null"` // Format GST-0001
	FullName      string `json:"full_name" gorm:"not null"`
	Gender        string `json:"gender"`
	Address       string `json:"address"`
	ContactNumber string `json:"contact_number"`
	Purpose       string `json:"purpose"` // Guests visit for a purpose, not an inmate

	PersonStatus `gorm:"embedded"`
}

// Person is a type-independent snapshot of a Visitor or Guest, used by the
// timer and ban engines so they do not branch on the concrete table.
type Person struct {
	PersonID   string  `json:"person_id"`
	PersonType string  `json:"person_type"`
	FullName   string  `json:"full_name"`
	Gender     string  `json:"gender"`
	InmateID   *string `json:"inmate_id"`

	PersonStatus
}
