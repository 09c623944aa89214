package notification

import (
	"fmt"
	"time"
)

// Registrant carries the registration fields the email templates need.
// Declared here rather than importing the registration package so the
// gateway stays a leaf dependency of the submission workflow.
type Registrant struct {
	FullName    string
	Email       string
	CollegeName string
	Department  string
	Category    string
	EventDate   time.Time
}

// EventDetails is the slice of the event the templates reference.
type EventDetails struct {
	EventName string
	EventDate time.Time
}

// SettingsSource provides the admin notification configuration.
type SettingsSource interface {
	AdminEmail() (string, error)
	AdminNotificationsEnabled() (bool, error)
}

// Gateway sends the two registration emails. Sending happens after the
// registration is durably saved; a failed send never rolls it back.
type Gateway interface {
	SendConfirmation(reg Registrant, ev EventDetails) error
	SendAdminNotice(reg Registrant, ev EventDetails) error
}

type emailGateway struct {
	mailer   Mailer
	settings SettingsSource
	now      func() time.Time
}

func NewGateway(mailer Mailer, settings SettingsSource) Gateway {
	return &emailGateway{
		mailer:   mailer,
		settings: settings,
		now:      time.Now,
	}
}

// ===========================
// 📧 User Confirmation
func (g *emailGateway) SendConfirmation(reg Registrant, ev EventDetails) error {
	subject := "Event Registration Confirmation"
	return g.mailer.Send(reg.Email, subject, buildUserEmailBody(reg, ev))
}

// ===========================
// 📧 Admin Notice
//
// A disabled toggle or a missing admin address is a success no-op, matching
// the admin settings contract.
func (g *emailGateway) SendAdminNotice(reg Registrant, ev EventDetails) error {
	enabled, err := g.settings.AdminNotificationsEnabled()
	if err != nil {
		return fmt.Errorf("failed to read notification settings: %w", err)
	}
	if !enabled {
		return nil
	}

	adminEmail, err := g.settings.AdminEmail()
	if err != nil {
		return fmt.Errorf("failed to read admin email: %w", err)
	}
	if adminEmail == "" {
		return nil
	}

	subject := "New Event Registration Received"
	return g.mailer.Send(adminEmail, subject, buildAdminEmailBody(reg, ev, g.now()))
}

func buildUserEmailBody(reg Registrant, ev EventDetails) string {
	body := "Dear " + reg.FullName + ",\n\n"
	body += "Thank you for registering for our event. Here are your registration details:\n\n"
	body += "Event Name: " + ev.EventName + "\n"
	body += "Event Date: " + ev.EventDate.Format("2006-01-02") + "\n"
	body += "Category: " + reg.Category + "\n"
	body += "College: " + reg.CollegeName + "\n"
	body += "Department: " + reg.Department + "\n\n"
	body += "We look forward to seeing you at the event!\n\n"
	body += "Best regards,\n"
	body += "Event Management Team"
	return body
}

func buildAdminEmailBody(reg Registrant, ev EventDetails, sentAt time.Time) string {
	body := "A new event registration has been received.\n\n"
	body += "Registration Details:\n"
	body += "--------------------\n"
	body += "Name: " + reg.FullName + "\n"
	body += "Email: " + reg.Email + "\n"
	body += "College: " + reg.CollegeName + "\n"
	body += "Department: " + reg.Department + "\n\n"
	body += "Event Details:\n"
	body += "-------------\n"
	body += "Event Name: " + ev.EventName + "\n"
	body += "Event Date: " + ev.EventDate.Format("2006-01-02") + "\n"
	body += "Category: " + reg.Category + "\n\n"
	body += "Registration Time: " + sentAt.Format("2006-01-02 15:04:05") + "\n"
	return body
}
