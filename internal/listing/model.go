// File: internal/listing/model.go
package listing

import (
	"time"

	"sabuconnect_backend/internal/category"
	"sabuconnect_backend/internal/common"
	"sabuconnect_backend/internal/user"
	"sabuconnect_backend/internal/village"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Listing represents a provider-submitted advertisement for a good or
// service. A listing is owned by exactly one user and belongs to one
// category; the village is optional.
type Listing struct {
	common.BaseModel
	Title           string          `gorm:"type:varchar(255);not null"`
	Slug            string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_listings_slug,unique"`
	Description     string          `gorm:"type:text;not null"`
	Price           *float64        `gorm:"type:numeric(12,2)"`
	Images          pq.StringArray  `gorm:"type:text[]"`
	Status          Status          `gorm:"type:varchar(20);not null;default:'pending';index:idx_listings_status"`
	PromotionStatus PromotionStatus `gorm:"type:varchar(30);not null;default:'none';index:idx_listings_promotion_status"`
	PromotionEnd    *time.Time
	Views           int64      `gorm:"not null;default:0"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index:idx_listings_user"`
	CategoryID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_listings_category"`
	VillageID       *uuid.UUID `gorm:"type:uuid;index:idx_listings_village"`

	User             user.User          `gorm:"foreignKey:UserID"`
	Category         category.Category  `gorm:"foreignKey:CategoryID"`
	Village          *village.Village   `gorm:"foreignKey:VillageID"`
	PromotionPayment *PromotionPayment  `gorm:"foreignKey:ListingID"`
}

// TableName specifies the table name for the Listing model.
func (Listing) TableName() string {
	return "listings"
}

// PromotionPayment is the one payment record a listing's promotion cycle
// carries. It is created when an admin approves a promotion request and is
// reused across proof re-submissions within the same cycle.
type PromotionPayment struct {
	common.BaseModel
	ListingID  uuid.UUID              `gorm:"type:uuid;not null;uniqueIndex:idx_promotion_payments_listing,unique"`
	Amount     float64                `gorm:"type:numeric(12,2);not null;default:0"`
	ProofImage *string                `gorm:"type:varchar(512)"`
	Status     PromotionPaymentStatus `gorm:"type:varchar(30);not null;default:'waiting_payment'"`
	VerifiedBy *uuid.UUID             `gorm:"type:uuid"`
	VerifiedAt *time.Time
}

// TableName specifies the table name for the PromotionPayment model.
func (PromotionPayment) TableName() string {
	return "promotion_payments"
}

// --- DTOs ---

// CreateListingRequest for providers creating a listing.
type CreateListingRequest struct {
	Title       string     `json:"title" binding:"required,max=255"`
	Description string     `json:"description" binding:"required"`
	Price       *float64   `json:"price,omitempty" binding:"omitempty,gte=0"`
	Images      []string   `json:"images,omitempty" binding:"omitempty,max=10"`
	CategoryID  uuid.UUID  `json:"category_id" binding:"required"`
	VillageID   *uuid.UUID `json:"village_id,omitempty"`
}

// UpdateListingRequest for providers editing their listing. Only provided
// fields are changed.
type UpdateListingRequest struct {
	Title       *string    `json:"title,omitempty" binding:"omitempty,max=255"`
	Description *string    `json:"description,omitempty"`
	Price       *float64   `json:"price,omitempty" binding:"omitempty,gte=0"`
	Images      []string   `json:"images,omitempty" binding:"omitempty,max=10"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	VillageID   *uuid.UUID `json:"village_id,omitempty"`
}

// AdminSetStatusRequest for admins moderating a listing.
type AdminSetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// VerifyPromotionRequest carries the admin decision on an uploaded proof.
type VerifyPromotionRequest struct {
	Decision string `json:"decision" binding:"required,oneof=paid rejected"`
}

// ListQuery captures public browse filters.
type ListQuery struct {
	CategoryID *uuid.UUID
	VillageID  *uuid.UUID
	District   string
	Search     string
	Status     Status
	UserID     *uuid.UUID
	Pagination common.PaginationQuery
}

// PromotionPaymentResponse shapes a promotion payment for API responses.
type PromotionPaymentResponse struct {
	ID         uuid.UUID              `json:"id"`
	ListingID  uuid.UUID              `json:"listing_id"`
	Amount     float64                `json:"amount"`
	ProofImage *string                `json:"proof_image,omitempty"`
	Status     PromotionPaymentStatus `json:"status"`
	VerifiedBy *uuid.UUID             `json:"verified_by,omitempty"`
	VerifiedAt *time.Time             `json:"verified_at,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}

// ToPromotionPaymentResponse converts a PromotionPayment to its DTO.
func ToPromotionPaymentResponse(p *PromotionPayment) *PromotionPaymentResponse {
	if p == nil {
		return nil
	}
	return &PromotionPaymentResponse{
		ID:         p.ID,
		ListingID:  p.ListingID,
		Amount:     p.Amount,
		ProofImage: p.ProofImage,
		Status:     p.Status,
		VerifiedBy: p.VerifiedBy,
		VerifiedAt: p.VerifiedAt,
		CreatedAt:  p.CreatedAt,
	}
}

// OwnerResponse is the subset of the owner surfaced on a listing.
type OwnerResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone *string   `json:"phone,omitempty"`
}

// ListingResponse shapes a listing for API responses.
type ListingResponse struct {
	ID               uuid.UUID                  `json:"id"`
	Title            string                     `json:"title"`
	Slug             string                     `json:"slug"`
	Description      string                     `json:"description"`
	Price            *float64                   `json:"price,omitempty"`
	Images           []string                   `json:"images"`
	Status           Status                     `json:"status"`
	PromotionStatus  PromotionStatus            `json:"promotion_status"`
	PromotionEnd     *time.Time                 `json:"promotion_end,omitempty"`
	Views            int64                      `json:"views"`
	CategoryID       uuid.UUID                  `json:"category_id"`
	VillageID        *uuid.UUID                 `json:"village_id,omitempty"`
	Owner            *OwnerResponse             `json:"owner,omitempty"`
	Category         *category.CategoryResponse `json:"category,omitempty"`
	Village          *village.VillageResponse   `json:"village,omitempty"`
	PromotionPayment *PromotionPaymentResponse  `json:"promotion_payment,omitempty"`
	CreatedAt        time.Time                  `json:"created_at"`
	UpdatedAt        time.Time                  `json:"updated_at"`
}

// ToListingResponse converts a Listing to its DTO. includePayment controls
// whether the promotion payment record is exposed; it is owner/admin only.
func ToListingResponse(l *Listing, includePayment bool) ListingResponse {
	resp := ListingResponse{
		ID:              l.ID,
		Title:           l.Title,
		Slug:            l.Slug,
		Description:     l.Description,
		Price:           l.Price,
		Images:          []string(l.Images),
		Status:          l.Status,
		PromotionStatus: l.PromotionStatus,
		PromotionEnd:    l.PromotionEnd,
		Views:           l.Views,
		CategoryID:      l.CategoryID,
		VillageID:       l.VillageID,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
	if resp.Images == nil {
		resp.Images = []string{}
	}
	if l.User.ID != uuid.Nil {
		resp.Owner = &OwnerResponse{ID: l.User.ID, Name: l.User.Name, Phone: l.User.Phone}
	}
	if l.Category.ID != uuid.Nil {
		catResp := category.ToCategoryResponse(&l.Category)
		resp.Category = &catResp
	}
	if l.Village != nil && l.Village.ID != uuid.Nil {
		vResp := village.ToVillageResponse(l.Village)
		resp.Village = &vResp
	}
	if includePayment {
		resp.PromotionPayment = ToPromotionPaymentResponse(l.PromotionPayment)
	}
	return resp
}
