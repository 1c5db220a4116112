// File: internal/notification/model.go
package notification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Type identifies what a notification is about.
type Type string

const (
	ListingApproved           Type = "listing_approved"
	ListingRejected           Type = "listing_rejected"
	PromotionApproved         Type = "promotion_approved"
	PromotionActivated        Type = "promotion_activated"
	PromotionPaymentRejected  Type = "promotion_payment_rejected"
	PromotionExpired          Type = "promotion_expired"
	AdPaymentVerified         Type = "ad_payment_verified"
	AdPaymentRejected         Type = "ad_payment_rejected"
)

// Notification is a per-user event record. Notifications are immutable once
// created except for the read flag.
type Notification struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID           uuid.UUID  `gorm:"type:uuid;not null;index:idx_notification_user_status" json:"user_id"`
	Type             Type       `gorm:"type:varchar(100);not null" json:"type"`
	Message          string     `gorm:"type:text;not null" json:"message"`
	RelatedListingID *uuid.UUID `gorm:"type:uuid" json:"related_listing_id,omitempty"`
	RelatedAdID      *uuid.UUID `gorm:"type:uuid" json:"related_ad_id,omitempty"`
	IsRead           bool       `gorm:"not null;default:false;index:idx_notification_user_status" json:"is_read"`
	CreatedAt        time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP;index:idx_notification_user_status" json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Notification) TableName() string {
	return "notifications"
}

// BeforeCreate assigns a UUID primary key when one was not supplied.
func (n *Notification) BeforeCreate(_ *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
