package event

import (
	"time"
)

// ============================
// 🔷 GORM Event Model
//
// Events are append-only: once an admin saves one it is never updated or
// deleted. "Active" means the registration window contains today's date,
// regardless of whether the event date itself has passed.
type Event struct {
	ID                    uint      `gorm:"primaryKey" json:"id"`
	EventName             string    `gorm:"type:varchar(255);not null" json:"event_name"`
	Category              string    `gorm:"type:varchar(100);not null;index" json:"category"`
	RegistrationStartDate time.Time `gorm:"not null" json:"registration_start_date"`
	RegistrationEndDate   time.Time `gorm:"not null" json:"registration_end_date"`
	EventDate             time.Time `gorm:"not null;index" json:"event_date"`
	CreatedAt             time.Time `gorm:"autoCreateTime" json:"created"`
}

func (Event) TableName() string {
	return "event_registration_events"
}

// ============================
// 🟡 Create Event Request
type CreateEventRequest struct {
	RegistrationStartDate string `json:"registration_start_date"` // "2006-01-02"
	RegistrationEndDate   string `json:"registration_end_date"`   // "2006-01-02"
	EventDate             string `json:"event_date"`              // "2006-01-02"
	EventName             string `json:"event_name"`
	Category              string `json:"category"`
}

// DateOnly strips the time component so calendar dates compare cleanly
// regardless of the zone the input was parsed in.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
