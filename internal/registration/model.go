package registration

import (
	"time"
)

// ============================
// 🔷 GORM Registration Model
//
// One submission tying a person to one event. Category and EventDate are
// denormalized copies taken from the chosen event at submission time.
// The composite unique index on (email, event_date) is the backstop for
// two concurrent submissions both passing the duplicate pre-check.
type Registration struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FullName    string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Email       string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_submission_email_event_date" json:"email"`
	CollegeName string    `gorm:"type:varchar(255);not null" json:"college_name"`
	Department  string    `gorm:"type:varchar(255);not null" json:"department"`
	Category    string    `gorm:"type:varchar(100);not null" json:"category"`
	EventDate   time.Time `gorm:"not null;index;uniqueIndex:idx_submission_email_event_date" json:"event_date"`
	EventID     uint      `gorm:"not null;index" json:"event_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created"`
}

func (Registration) TableName() string {
	return "event_registration_submissions"
}

// ============================
// 🟡 Registration Input
//
// Typed request for the public form. Category and event date mirror the
// form's cascading selects; the persisted values are always re-read from
// the chosen event so the client cannot submit a mismatched pair.
type RegistrationInput struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	CollegeName string `json:"college_name"`
	Department  string `json:"department"`
	Category    string `json:"category"`
	EventDate   string `json:"event_date"` // "2006-01-02"
	EventID     uint   `json:"event_id"`
}

// ListFilters narrows the admin listing and the CSV export. Both filters
// are optional and combine with logical AND.
type ListFilters struct {
	EventDate *time.Time
	EventID   *uint
}
