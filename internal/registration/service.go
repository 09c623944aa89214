package registration

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/yug1204/event-registration/internal/auditlog"
	"github.com/yug1204/event-registration/internal/event"
	"github.com/yug1204/event-registration/internal/notification"
	"github.com/yug1204/event-registration/internal/validation"
)

const duplicateMessage = "you have already registered for an event on this date with this email address"

// Service runs the submission workflow: validate everything in one pass,
// persist, then notify. Notification failures are observed (logged and
// audited) but never undo the saved registration.
type Service struct {
	Repo      *Repository
	EventRepo *event.Repository
	Validator *Validator
	Gateway   notification.Gateway
	AuditSvc  auditlog.Service
}

func NewService(r *Repository, eventRepo *event.Repository, v *Validator, gw notification.Gateway, auditSvc auditlog.Service) *Service {
	return &Service{
		Repo:      r,
		EventRepo: eventRepo,
		Validator: v,
		Gateway:   gw,
		AuditSvc:  auditSvc,
	}
}

// ===========================
// 🎯 Submit Registration
func (s *Service) Submit(input *RegistrationInput, ip string) (*Registration, error) {
	fieldErrs := validation.FieldErrors{}

	s.validateTextInputs(input, fieldErrs)

	if input.Category == "" {
		fieldErrs.Add("category", "please select an event category")
	}
	if input.EventDate == "" {
		fieldErrs.Add("event_date", "please select an event date")
	}

	// Resolve the chosen event; its row is the authoritative source for the
	// denormalized category and event date.
	var chosen *event.Event
	if input.EventID == 0 {
		fieldErrs.Add("event_name", "please select an event")
	} else {
		ev, err := s.EventRepo.GetByID(input.EventID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up event: %w", err)
		}
		if ev == nil {
			fieldErrs.Add("event_name", "the selected event is no longer available")
		}
		chosen = ev
	}

	// Duplicate detection runs alongside the field rules so the form can
	// report everything in a single pass.
	if chosen != nil && input.Email != "" {
		dup, err := s.Validator.IsDuplicateRegistration(input.Email, chosen.EventDate)
		if err != nil {
			return nil, fmt.Errorf("duplicate check failed: %w", err)
		}
		if dup {
			fieldErrs.Add("email", duplicateMessage)
		}
	}

	if fieldErrs.HasErrors() {
		s.AuditSvc.LogAction(context.Background(), "REGISTRATION_CREATED", map[string]interface{}{
			"email":    input.Email,
			"event_id": input.EventID,
			"error":    fieldErrs.Error(),
		}, ip, "failure")
		return nil, fieldErrs
	}

	reg := &Registration{
		FullName:    input.FullName,
		Email:       input.Email,
		CollegeName: input.CollegeName,
		Department:  input.Department,
		Category:    chosen.Category,
		EventDate:   chosen.EventDate,
		EventID:     chosen.ID,
	}

	if err := s.Repo.Create(reg); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Race loser: another submission for the same (email, event date)
			// slipped in between the pre-check and this insert.
			fieldErrs.Add("email", duplicateMessage)
			s.AuditSvc.LogAction(context.Background(), "REGISTRATION_CREATED", map[string]interface{}{
				"email":    input.Email,
				"event_id": chosen.ID,
				"error":    "duplicate registration (unique index)",
			}, ip, "failure")
			return nil, fieldErrs
		}
		s.AuditSvc.LogAction(context.Background(), "REGISTRATION_CREATED", map[string]interface{}{
			"email":    input.Email,
			"event_id": chosen.ID,
			"error":    err.Error(),
		}, ip, "failure")
		return nil, err
	}

	s.sendNotifications(reg, chosen, ip)

	s.AuditSvc.LogAction(context.Background(), "REGISTRATION_CREATED", map[string]interface{}{
		"registration_id": reg.ID,
		"email":           reg.Email,
		"event_id":        reg.EventID,
		"event_date":      reg.EventDate.Format("2006-01-02"),
	}, ip, "success")

	return reg, nil
}

func (s *Service) validateTextInputs(input *RegistrationInput, fieldErrs validation.FieldErrors) {
	const badChars = " contains invalid special characters. Only letters, numbers, spaces, and basic punctuation are allowed"

	if input.FullName == "" {
		fieldErrs.Add("full_name", "full name is required")
	} else if !s.Validator.ValidateTextField(input.FullName) {
		fieldErrs.Add("full_name", "full name"+badChars)
	}

	if input.Email == "" {
		fieldErrs.Add("email", "email address is required")
	} else if !s.Validator.ValidateEmail(input.Email) {
		fieldErrs.Add("email", "please enter a valid email address")
	}

	if input.CollegeName == "" {
		fieldErrs.Add("college_name", "college name is required")
	} else if !s.Validator.ValidateTextField(input.CollegeName) {
		fieldErrs.Add("college_name", "college name"+badChars)
	}

	if input.Department == "" {
		fieldErrs.Add("department", "department is required")
	} else if !s.Validator.ValidateTextField(input.Department) {
		fieldErrs.Add("department", "department"+badChars)
	}
}

func (s *Service) sendNotifications(reg *Registration, chosen *event.Event, ip string) {
	registrant := notification.Registrant{
		FullName:    reg.FullName,
		Email:       reg.Email,
		CollegeName: reg.CollegeName,
		Department:  reg.Department,
		Category:    reg.Category,
		EventDate:   reg.EventDate,
	}
	details := notification.EventDetails{
		EventName: chosen.EventName,
		EventDate: chosen.EventDate,
	}

	if err := s.Gateway.SendConfirmation(registrant, details); err != nil {
		log.Printf("❌ Failed to send confirmation email to %s: %v", reg.Email, err)
		s.AuditSvc.LogAction(context.Background(), "NOTIFICATION_SEND", map[string]interface{}{
			"registration_id": reg.ID,
			"recipient":       reg.Email,
			"kind":            "confirmation",
			"error":           err.Error(),
		}, ip, "failure")
	}

	if err := s.Gateway.SendAdminNotice(registrant, details); err != nil {
		log.Printf("❌ Failed to send admin notification for registration %d: %v", reg.ID, err)
		s.AuditSvc.LogAction(context.Background(), "NOTIFICATION_SEND", map[string]interface{}{
			"registration_id": reg.ID,
			"kind":            "admin_notice",
			"error":           err.Error(),
		}, ip, "failure")
	}
}

// ===========================
// 📄 Admin Listing Surface
//
// Mirrors the original admin screen: a date selector, an event selector for
// the chosen date, a participant banner when an event is selected, the
// filtered rows, and an export link once results exist under a filter.

type EventOption struct {
	ID    uint   `json:"id"`
	Label string `json:"label"`
}

type SelectedEventInfo struct {
	EventName        string `json:"event_name"`
	EventDate        string `json:"event_date"`
	ParticipantCount int64  `json:"participant_count"`
}

type ListingResponse struct {
	DateOptions   []string           `json:"date_options"`
	EventOptions  []EventOption      `json:"event_options"`
	SelectedEvent *SelectedEventInfo `json:"selected_event,omitempty"`
	Registrations []Registration     `json:"registrations"`
	ExportURL     string             `json:"export_url,omitempty"`
}

func (s *Service) Listing(filters ListFilters) (*ListingResponse, error) {
	resp := &ListingResponse{
		DateOptions:  []string{},
		EventOptions: []EventOption{},
	}

	dates, err := s.EventRepo.AllDistinctDates()
	if err != nil {
		return nil, fmt.Errorf("failed to list event dates: %w", err)
	}
	for _, d := range dates {
		resp.DateOptions = append(resp.DateOptions, d.Format("2006-01-02"))
	}

	if filters.EventDate != nil {
		events, err := s.EventRepo.ListByDate(*filters.EventDate)
		if err != nil {
			return nil, fmt.Errorf("failed to list events for date: %w", err)
		}
		for _, ev := range events {
			resp.EventOptions = append(resp.EventOptions, EventOption{
				ID:    ev.ID,
				Label: ev.EventName + " (" + ev.Category + ")",
			})
		}
	}

	if filters.EventID != nil {
		ev, err := s.EventRepo.GetByID(*filters.EventID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up event: %w", err)
		}
		// A stale event id simply omits the banner instead of failing.
		if ev != nil {
			count, err := s.Repo.CountByEvent(ev.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to count participants: %w", err)
			}
			resp.SelectedEvent = &SelectedEventInfo{
				EventName:        ev.EventName,
				EventDate:        ev.EventDate.Format("2006-01-02"),
				ParticipantCount: count,
			}
		}
	}

	regs, err := s.Repo.List(filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	resp.Registrations = regs

	if len(regs) > 0 && (filters.EventDate != nil || filters.EventID != nil) {
		resp.ExportURL = buildExportURL(filters)
	}

	return resp, nil
}

func buildExportURL(filters ListFilters) string {
	params := url.Values{}
	if filters.EventDate != nil {
		params.Set("event_date", filters.EventDate.Format("2006-01-02"))
	}
	if filters.EventID != nil {
		params.Set("event_id", fmt.Sprintf("%d", *filters.EventID))
	}
	return "/api/v1/registrations/export?" + params.Encode()
}

// ParseListFilters converts the optional query parameters shared by the
// listing and export endpoints.
func ParseListFilters(eventDate, eventID string) (ListFilters, error) {
	filters := ListFilters{}

	if eventDate != "" {
		d, err := time.Parse("2006-01-02", eventDate)
		if err != nil {
			return filters, fmt.Errorf("invalid event_date. Use YYYY-MM-DD")
		}
		d = event.DateOnly(d)
		filters.EventDate = &d
	}
	if eventID != "" {
		parsed, err := strconv.ParseUint(eventID, 10, 32)
		if err != nil || parsed < 1 {
			return filters, fmt.Errorf("invalid event_id")
		}
		id := uint(parsed)
		filters.EventID = &id
	}

	return filters, nil
}
