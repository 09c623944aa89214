package event

import (
	"context"
	"time"

	"github.com/yug1204/event-registration/internal/auditlog"
	"github.com/yug1204/event-registration/internal/validation"
)

// Service wraps business logic for event configuration
type Service struct {
	Repo     *Repository
	AuditSvc auditlog.Service
}

func NewService(r *Repository, auditSvc auditlog.Service) *Service {
	return &Service{
		Repo:     r,
		AuditSvc: auditSvc,
	}
}

// ===========================
// 🎯 Create Event
//
// Every violated field is collected before returning, so the admin form can
// surface all problems in one round trip.
func (s *Service) CreateEvent(req *CreateEventRequest, ip string) (*Event, error) {
	fieldErrs := validation.FieldErrors{}

	if req.EventName == "" {
		fieldErrs.Add("event_name", "event name is required")
	} else if !validation.ValidateTextField(req.EventName) {
		fieldErrs.Add("event_name", "event name contains invalid special characters. Only letters, numbers, spaces, and basic punctuation are allowed")
	}

	if req.Category == "" {
		fieldErrs.Add("category", "category is required")
	}

	startDate, err := time.Parse("2006-01-02", req.RegistrationStartDate)
	if err != nil {
		fieldErrs.Add("registration_start_date", "invalid registration start date. Use YYYY-MM-DD")
	}
	endDate, err := time.Parse("2006-01-02", req.RegistrationEndDate)
	if err != nil {
		fieldErrs.Add("registration_end_date", "invalid registration end date. Use YYYY-MM-DD")
	}
	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		fieldErrs.Add("event_date", "invalid event date. Use YYYY-MM-DD")
	}

	// Date-range rule only applies once both dates parsed.
	if _, ok := fieldErrs["registration_start_date"]; !ok {
		if _, ok := fieldErrs["registration_end_date"]; !ok {
			if !validation.ValidateDateRange(req.RegistrationStartDate, req.RegistrationEndDate) {
				fieldErrs.Add("registration_end_date", "registration end date must be on or after the start date")
			}
		}
	}

	if fieldErrs.HasErrors() {
		s.AuditSvc.LogAction(context.Background(), "EVENT_CREATED", map[string]interface{}{
			"event_name": req.EventName,
			"category":   req.Category,
			"error":      fieldErrs.Error(),
		}, ip, "failure")
		return nil, fieldErrs
	}

	e := &Event{
		EventName:             req.EventName,
		Category:              req.Category,
		RegistrationStartDate: DateOnly(startDate),
		RegistrationEndDate:   DateOnly(endDate),
		EventDate:             DateOnly(eventDate),
	}

	if err := s.Repo.Create(e); err != nil {
		s.AuditSvc.LogAction(context.Background(), "EVENT_CREATED", map[string]interface{}{
			"event_name": req.EventName,
			"category":   req.Category,
			"error":      err.Error(),
		}, ip, "failure")
		return nil, err
	}

	s.AuditSvc.LogAction(context.Background(), "EVENT_CREATED", map[string]interface{}{
		"event_id":   e.ID,
		"event_name": e.EventName,
		"category":   e.Category,
		"event_date": e.EventDate.Format("2006-01-02"),
	}, ip, "success")

	return e, nil
}

// ===========================
// 🔍 Get Event by ID (nil when missing)
func (s *Service) GetEventByID(id uint) (*Event, error) {
	return s.Repo.GetByID(id)
}

// ===========================
// 📆 Events currently open for registration
func (s *Service) ActiveEvents(today time.Time) ([]Event, error) {
	return s.Repo.ListActive(DateOnly(today))
}

func (s *Service) ActiveEventsByCategory(category string, today time.Time) ([]Event, error) {
	return s.Repo.ListActiveByCategory(category, DateOnly(today))
}

func (s *Service) ActiveEventsByCategoryAndDate(category string, date, today time.Time) ([]Event, error) {
	return s.Repo.ListActiveByCategoryAndDate(category, DateOnly(date), DateOnly(today))
}

// ===========================
// 🔢 Dropdown feeders for the registration form
func (s *Service) DatesForCategory(category string, today time.Time) ([]time.Time, error) {
	return s.Repo.DistinctDatesForCategory(category, DateOnly(today))
}

func (s *Service) ActiveCategories(today time.Time) ([]string, error) {
	return s.Repo.DistinctCategories(DateOnly(today))
}

// ===========================
// 📄 Admin views (no active-window filter)
func (s *Service) AllEvents() ([]Event, error) {
	return s.Repo.ListAll()
}

func (s *Service) AllEventDates() ([]time.Time, error) {
	return s.Repo.AllDistinctDates()
}

func (s *Service) EventsByDate(date time.Time) ([]Event, error) {
	return s.Repo.ListByDate(DateOnly(date))
}
