// File: internal/ad/model.go
package ad

import (
	"time"

	"sabuconnect_backend/internal/common"
	"sabuconnect_backend/internal/user"

	"github.com/google/uuid"
)

// AdStatus is the lifecycle of an ad entry.
type AdStatus string

const (
	AdWaitingPayment AdStatus = "waiting_payment"
	AdActive         AdStatus = "active"
	AdRejected       AdStatus = "rejected"
)

// PaymentMethod is how the provider pays for the ad.
type PaymentMethod string

const (
	MethodTransfer PaymentMethod = "transfer"
	MethodCOD      PaymentMethod = "cod"
)

// PaymentStatus is the verification lifecycle of an ad payment.
type PaymentStatus string

const (
	PaymentUnpaid       PaymentStatus = "unpaid"
	PaymentVerification PaymentStatus = "verification"
	PaymentPaid         PaymentStatus = "paid"
	PaymentRejected     PaymentStatus = "payment_rejected"
)

// VerifyDecision is an admin's ruling on an ad payment.
type VerifyDecision string

const (
	DecisionPaid     VerifyDecision = "paid"
	DecisionRejected VerifyDecision = "rejected"
)

// Ad is a provider-submitted entry that requires upfront payment before it
// becomes active, unlike a listing promotion which decorates an existing
// listing. Bank-transfer ads start in waiting_payment; cash-on-delivery ads
// activate immediately.
type Ad struct {
	common.BaseModel
	Title         string        `gorm:"type:varchar(255);not null"`
	Description   string        `gorm:"type:text;not null"`
	Price         *float64      `gorm:"type:numeric(12,2)"`
	Image         *string       `gorm:"type:varchar(512)"`
	Status        AdStatus      `gorm:"type:varchar(20);not null;default:'waiting_payment';index:idx_ads_status"`
	PaymentMethod PaymentMethod `gorm:"type:varchar(20);not null"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(30);not null;default:'unpaid'"`
	ProviderID    uuid.UUID     `gorm:"type:uuid;not null;index:idx_ads_provider"`

	Provider user.User `gorm:"foreignKey:ProviderID"`
	Payment  *Payment  `gorm:"foreignKey:AdID"`
}

// TableName specifies the table name for the Ad model.
func (Ad) TableName() string {
	return "ads"
}

// Payment is the unique payment record of an Ad, created or updated when the
// provider uploads a transfer proof.
type Payment struct {
	common.BaseModel
	AdID       uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_payments_ad,unique"`
	Method     PaymentMethod `gorm:"type:varchar(20);not null"`
	ProofImage *string       `gorm:"type:varchar(512)"`
	Status     PaymentStatus `gorm:"type:varchar(30);not null;default:'verification'"`
	VerifiedBy *uuid.UUID    `gorm:"type:uuid"`
	VerifiedAt *time.Time
}

// TableName specifies the table name for the Payment model.
func (Payment) TableName() string {
	return "payments"
}

// --- DTOs ---

// CreateAdRequest for providers submitting an ad.
type CreateAdRequest struct {
	Title         string   `json:"title" binding:"required,max=255"`
	Description   string   `json:"description" binding:"required"`
	Price         *float64 `json:"price,omitempty" binding:"omitempty,gte=0"`
	PaymentMethod string   `json:"payment_method" binding:"required,oneof=transfer cod"`
}

// VerifyAdRequest carries the admin decision on an ad payment.
type VerifyAdRequest struct {
	Decision string `json:"decision" binding:"required,oneof=paid rejected"`
}

// PaymentResponse shapes a payment for API responses.
type PaymentResponse struct {
	ID         uuid.UUID     `json:"id"`
	AdID       uuid.UUID     `json:"ad_id"`
	Method     PaymentMethod `json:"method"`
	ProofImage *string       `json:"proof_image,omitempty"`
	Status     PaymentStatus `json:"status"`
	VerifiedBy *uuid.UUID    `json:"verified_by,omitempty"`
	VerifiedAt *time.Time    `json:"verified_at,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
}

// ToPaymentResponse converts a Payment to its DTO.
func ToPaymentResponse(p *Payment) *PaymentResponse {
	if p == nil {
		return nil
	}
	return &PaymentResponse{
		ID:         p.ID,
		AdID:       p.AdID,
		Method:     p.Method,
		ProofImage: p.ProofImage,
		Status:     p.Status,
		VerifiedBy: p.VerifiedBy,
		VerifiedAt: p.VerifiedAt,
		CreatedAt:  p.CreatedAt,
	}
}

// ProviderResponse is the subset of the provider surfaced on an ad.
type ProviderResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone *string   `json:"phone,omitempty"`
}

// AdResponse shapes an ad for API responses.
type AdResponse struct {
	ID            uuid.UUID         `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Price         *float64          `json:"price,omitempty"`
	Image         *string           `json:"image,omitempty"`
	Status        AdStatus          `json:"status"`
	PaymentMethod PaymentMethod     `json:"payment_method"`
	PaymentStatus PaymentStatus     `json:"payment_status"`
	Provider      *ProviderResponse `json:"provider,omitempty"`
	Payment       *PaymentResponse  `json:"payment,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// ToAdResponse converts an Ad to its DTO.
func ToAdResponse(a *Ad) AdResponse {
	resp := AdResponse{
		ID:            a.ID,
		Title:         a.Title,
		Description:   a.Description,
		Price:         a.Price,
		Image:         a.Image,
		Status:        a.Status,
		PaymentMethod: a.PaymentMethod,
		PaymentStatus: a.PaymentStatus,
		Payment:       ToPaymentResponse(a.Payment),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
	if a.Provider.ID != uuid.Nil {
		resp.Provider = &ProviderResponse{ID: a.Provider.ID, Name: a.Provider.Name, Phone: a.Provider.Phone}
	}
	return resp
}
