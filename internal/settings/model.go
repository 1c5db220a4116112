// File: internal/settings/model.go
package settings

import "time"

// SiteSettingsID is the fixed primary key of the singleton settings row.
const SiteSettingsID = "site_settings"

// SiteSettings is the single row of site-wide configuration, created lazily
// on first read.
type SiteSettings struct {
	ID           string    `gorm:"type:varchar(50);primary_key" json:"id"`
	SiteName     string    `gorm:"type:varchar(150);not null;default:'SABUConnect'" json:"site_name"`
	Logo         *string   `gorm:"type:varchar(512)" json:"logo,omitempty"`
	ContactEmail *string   `gorm:"type:varchar(255)" json:"contact_email,omitempty"`
	ContactPhone *string   `gorm:"type:varchar(50)" json:"contact_phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name for the SiteSettings model.
func (SiteSettings) TableName() string {
	return "site_settings"
}

// UpdateSettingsRequest for admins editing site settings.
type UpdateSettingsRequest struct {
	SiteName     string  `json:"site_name" binding:"required,max=150"`
	Logo         *string `json:"logo,omitempty" binding:"omitempty,max=512"`
	ContactEmail *string `json:"contact_email,omitempty" binding:"omitempty,email"`
	ContactPhone *string `json:"contact_phone,omitempty" binding:"omitempty,max=50"`
}
