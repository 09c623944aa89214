package settings

// Setting is one key-value pair of module configuration. The original
// plugin kept these in CMS config storage; here they live in their own
// table so admins can change them without a redeploy.
type Setting struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Key   string `gorm:"column:setting_key;type:varchar(100);not null;uniqueIndex" json:"key"`
	Value string `gorm:"column:setting_value;type:varchar(255)" json:"value"`
}

func (Setting) TableName() string {
	return "event_registration_settings"
}

const (
	KeyAdminEmail               = "admin_email"
	KeyEnableAdminNotifications = "enable_admin_notifications"
)

// UpdateSettingsRequest carries the admin settings form values.
type UpdateSettingsRequest struct {
	AdminEmail               string `json:"admin_email"`
	EnableAdminNotifications *bool  `json:"enable_admin_notifications"`
}

// SettingsResponse is the typed view of the stored settings.
type SettingsResponse struct {
	AdminEmail               string `json:"admin_email"`
	EnableAdminNotifications bool   `json:"enable_admin_notifications"`
}
