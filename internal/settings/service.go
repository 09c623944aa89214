package settings

import (
	"context"
	"strconv"

	"github.com/yug1204/event-registration/internal/auditlog"
	"github.com/yug1204/event-registration/internal/validation"
)

// Service exposes typed accessors over the key-value settings table.
type Service struct {
	Repo     *Repository
	AuditSvc auditlog.Service
}

func NewService(r *Repository, auditSvc auditlog.Service) *Service {
	return &Service{Repo: r, AuditSvc: auditSvc}
}

// AdminEmail returns the configured admin notification address, empty when
// none has been saved.
func (s *Service) AdminEmail() (string, error) {
	value, _, err := s.Repo.Get(KeyAdminEmail)
	return value, err
}

// AdminNotificationsEnabled defaults to true until an admin turns it off.
func (s *Service) AdminNotificationsEnabled() (bool, error) {
	value, found, err := s.Repo.Get(KeyEnableAdminNotifications)
	if err != nil {
		return false, err
	}
	if !found {
		return true, nil
	}
	enabled, err := strconv.ParseBool(value)
	if err != nil {
		return true, nil
	}
	return enabled, nil
}

// GetSettings returns the current settings for the admin form.
func (s *Service) GetSettings() (*SettingsResponse, error) {
	email, err := s.AdminEmail()
	if err != nil {
		return nil, err
	}
	enabled, err := s.AdminNotificationsEnabled()
	if err != nil {
		return nil, err
	}
	return &SettingsResponse{
		AdminEmail:               email,
		EnableAdminNotifications: enabled,
	}, nil
}

// ===========================
// 🛠 Update Settings
//
// Admin email is required while notifications are enabled; a supplied
// address must also be syntactically valid.
func (s *Service) UpdateSettings(req *UpdateSettingsRequest, ip string) (*SettingsResponse, error) {
	enabled := true
	if req.EnableAdminNotifications != nil {
		enabled = *req.EnableAdminNotifications
	}

	fieldErrs := validation.FieldErrors{}
	if enabled && req.AdminEmail == "" {
		fieldErrs.Add("admin_email", "admin email address is required when notifications are enabled")
	}
	if req.AdminEmail != "" && !validation.ValidateEmail(req.AdminEmail) {
		fieldErrs.Add("admin_email", "please enter a valid email address")
	}
	if fieldErrs.HasErrors() {
		return nil, fieldErrs
	}

	if err := s.Repo.Set(KeyAdminEmail, req.AdminEmail); err != nil {
		return nil, err
	}
	if err := s.Repo.Set(KeyEnableAdminNotifications, strconv.FormatBool(enabled)); err != nil {
		return nil, err
	}

	s.AuditSvc.LogAction(context.Background(), "SETTINGS_UPDATED", map[string]interface{}{
		"admin_email":                req.AdminEmail,
		"enable_admin_notifications": enabled,
	}, ip, "success")

	return &SettingsResponse{
		AdminEmail:               req.AdminEmail,
		EnableAdminNotifications: enabled,
	}, nil
}
