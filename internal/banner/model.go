// File: internal/banner/model.go
package banner

import (
	"time"

	"sabuconnect_backend/internal/common"

	"github.com/google/uuid"
)

// PromoBanner is a site banner shown while the current time falls inside its
// schedule window. A nil bound leaves that side of the window open.
type PromoBanner struct {
	common.BaseModel
	Title     string     `gorm:"type:varchar(255);not null"`
	Image     string     `gorm:"type:varchar(512);not null"`
	LinkURL   *string    `gorm:"type:varchar(512)"`
	Position  string     `gorm:"type:varchar(50);not null;default:'home';index:idx_promo_banners_position"`
	IsActive  bool       `gorm:"not null;default:true"`
	StartDate *time.Time `gorm:"index:idx_promo_banners_window"`
	EndDate   *time.Time `gorm:"index:idx_promo_banners_window"`
	Order     int        `gorm:"column:sort_order;not null;default:0"`
}

// TableName specifies the table name for the PromoBanner model.
func (PromoBanner) TableName() string {
	return "promo_banners"
}

// VisibleAt reports whether the banner should be shown at the given time.
func (b *PromoBanner) VisibleAt(now time.Time) bool {
	if !b.IsActive {
		return false
	}
	if b.StartDate != nil && now.Before(*b.StartDate) {
		return false
	}
	if b.EndDate != nil && now.After(*b.EndDate) {
		return false
	}
	return true
}

// --- DTOs ---

// BannerRequest for admin creating or updating banners.
type BannerRequest struct {
	Title     string     `json:"title" binding:"required,max=255"`
	Image     string     `json:"image" binding:"required,max=512"`
	LinkURL   *string    `json:"link_url,omitempty" binding:"omitempty,max=512"`
	Position  string     `json:"position,omitempty" binding:"omitempty,max=50"`
	IsActive  *bool      `json:"is_active,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Order     int        `json:"order"`
}

// BannerResponse shapes a banner for API responses.
type BannerResponse struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Image     string     `json:"image"`
	LinkURL   *string    `json:"link_url,omitempty"`
	Position  string     `json:"position"`
	IsActive  bool       `json:"is_active"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Order     int        `json:"order"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ToBannerResponse converts a PromoBanner to its DTO.
func ToBannerResponse(b *PromoBanner) BannerResponse {
	return BannerResponse{
		ID:        b.ID,
		Title:     b.Title,
		Image:     b.Image,
		LinkURL:   b.LinkURL,
		Position:  b.Position,
		IsActive:  b.IsActive,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		Order:     b.Order,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
