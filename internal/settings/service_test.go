package settings

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yug1204/event-registration/internal/auditlog"
	"github.com/yug1204/event-registration/internal/validation"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// A pooled second connection would see a different :memory: database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&Setting{}, &auditlog.AuditLog{}))
	return NewService(NewRepository(db), auditlog.NewService(auditlog.NewRepository(db))), db
}

func boolPtr(b bool) *bool { return &b }

// Fresh install: no admin address, notifications on.
func TestDefaults(t *testing.T) {
	svc, _ := newTestService(t)

	email, err := svc.AdminEmail()
	require.NoError(t, err)
	require.Empty(t, email)

	enabled, err := svc.AdminNotificationsEnabled()
	require.NoError(t, err)
	require.True(t, enabled)

	resp, err := svc.GetSettings()
	require.NoError(t, err)
	require.Empty(t, resp.AdminEmail)
	require.True(t, resp.EnableAdminNotifications)
}

// A corrupted stored value falls back to the default rather than silently
// disabling notifications.
func TestEnabledFallsBackOnGarbageValue(t *testing.T) {
	svc, db := newTestService(t)

	require.NoError(t, db.Create(&Setting{Key: KeyEnableAdminNotifications, Value: "banana"}).Error)

	enabled, err := svc.AdminNotificationsEnabled()
	require.NoError(t, err)
	require.True(t, enabled)
}

func TestUpdateSettingsRoundTrip(t *testing.T) {
	svc, db := newTestService(t)

	resp, err := svc.UpdateSettings(&UpdateSettingsRequest{
		AdminEmail:               "admin@example.com",
		EnableAdminNotifications: boolPtr(true),
	}, "203.0.113.7")
	require.NoError(t, err)
	require.Equal(t, "admin@example.com", resp.AdminEmail)
	require.True(t, resp.EnableAdminNotifications)

	got, err := svc.GetSettings()
	require.NoError(t, err)
	require.Equal(t, resp, got)

	var logs []auditlog.AuditLog
	require.NoError(t, db.Where("action = ?", "SETTINGS_UPDATED").Find(&logs).Error)
	require.Len(t, logs, 1)
	require.Equal(t, "success", logs[0].Status)

	// Updating again overwrites, it does not duplicate rows.
	_, err = svc.UpdateSettings(&UpdateSettingsRequest{
		AdminEmail:               "other@example.com",
		EnableAdminNotifications: boolPtr(false),
	}, "203.0.113.7")
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&Setting{}).Count(&count).Error)
	require.Equal(t, int64(2), count)

	got, err = svc.GetSettings()
	require.NoError(t, err)
	require.Equal(t, "other@example.com", got.AdminEmail)
	require.False(t, got.EnableAdminNotifications)
}

func TestUpdateSettingsEmailRequiredWhenEnabled(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateSettings(&UpdateSettingsRequest{
		AdminEmail:               "",
		EnableAdminNotifications: boolPtr(true),
	}, "203.0.113.7")
	require.Error(t, err)

	var fieldErrs validation.FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	require.Contains(t, fieldErrs, "admin_email")

	// Disabled notifications make the address optional.
	_, err = svc.UpdateSettings(&UpdateSettingsRequest{
		AdminEmail:               "",
		EnableAdminNotifications: boolPtr(false),
	}, "203.0.113.7")
	require.NoError(t, err)
}

func TestUpdateSettingsRejectsBadEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateSettings(&UpdateSettingsRequest{
		AdminEmail:               "not-an-email",
		EnableAdminNotifications: boolPtr(true),
	}, "203.0.113.7")

	var fieldErrs validation.FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	require.Equal(t, "please enter a valid email address", fieldErrs["admin_email"])
}

// Omitting the toggle in the request means "enabled".
func TestUpdateSettingsToggleDefaultsToEnabled(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateSettings(&UpdateSettingsRequest{AdminEmail: ""}, "203.0.113.7")
	require.Error(t, err)

	resp, err := svc.UpdateSettings(&UpdateSettingsRequest{AdminEmail: "admin@example.com"}, "203.0.113.7")
	require.NoError(t, err)
	require.True(t, resp.EnableAdminNotifications)
}
