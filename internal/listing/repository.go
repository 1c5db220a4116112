// File: internal/listing/repository.go
package listing

import (
	"context"
	"errors"
	"strings"
	"time"

	"sabuconnect_backend/internal/common"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines the interface for listing data operations.
type Repository interface {
	Create(ctx context.Context, listing *Listing) error
	FindByID(ctx context.Context, id uuid.UUID) (*Listing, error)
	FindBySlug(ctx context.Context, slug string) (*Listing, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, q ListQuery) ([]Listing, int64, error)
	Update(ctx context.Context, listing *Listing) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementViews(ctx context.Context, slug string) error
	CountByStatus(ctx context.Context, status Status) (int64, error)

	FindPaymentByListingID(ctx context.Context, listingID uuid.UUID) (*PromotionPayment, error)
	SavePayment(ctx context.Context, payment *PromotionPayment) error
	// SaveListingAndPayment persists both rows in one transaction so a
	// concurrent reader never sees the listing and its payment disagree.
	SaveListingAndPayment(ctx context.Context, listing *Listing, payment *PromotionPayment) error

	ExpireActivePromotions(ctx context.Context, now time.Time) ([]Listing, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM listing repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, listing *Listing) error {
	err := r.db.WithContext(ctx).Create(listing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "unique constraint") {
			return common.ErrConflict.WithDetails("A listing with this slug already exists.")
		}
		return err
	}
	return nil
}

func (r *gormRepository) FindByID(ctx context.Context, id uuid.UUID) (*Listing, error) {
	var l Listing
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Category").
		Preload("Village").
		Preload("PromotionPayment").
		First(&l, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Listing not found.")
		}
		return nil, err
	}
	return &l, nil
}

func (r *gormRepository) FindBySlug(ctx context.Context, slug string) (*Listing, error) {
	var l Listing
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Category").
		Preload("Village").
		First(&l, "slug = ?", strings.ToLower(strings.TrimSpace(slug))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Listing not found.")
		}
		return nil, err
	}
	return &l, nil
}

func (r *gormRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Listing{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// List applies the browse filters. Listings with an active promotion sort
// ahead of the rest, newest first within each band.
func (r *gormRepository) List(ctx context.Context, q ListQuery) ([]Listing, int64, error) {
	query := r.db.WithContext(ctx).Model(&Listing{})

	if q.Status != "" {
		query = query.Where("listings.status = ?", q.Status)
	}
	if q.UserID != nil {
		query = query.Where("listings.user_id = ?", *q.UserID)
	}
	if q.CategoryID != nil {
		query = query.Where("listings.category_id = ?", *q.CategoryID)
	}
	if q.VillageID != nil {
		query = query.Where("listings.village_id = ?", *q.VillageID)
	}
	if district := strings.TrimSpace(q.District); district != "" {
		query = query.Joins("JOIN villages ON villages.id = listings.village_id").
			Where("villages.district = ?", district)
	}
	if search := strings.TrimSpace(q.Search); search != "" {
		query = query.Where("listings.title ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var listings []Listing
	err := query.
		Preload("User").
		Preload("Category").
		Preload("Village").
		Order("(listings.promotion_status = 'active') DESC").
		Order("listings.created_at DESC").
		Offset(q.Pagination.Offset()).
		Limit(q.Pagination.Limit()).
		Find(&listings).Error
	if err != nil {
		return nil, 0, err
	}
	return listings, total, nil
}

func (r *gormRepository) Update(ctx context.Context, listing *Listing) error {
	err := r.db.WithContext(ctx).Save(listing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "unique constraint") {
			return common.ErrConflict.WithDetails("A listing with this slug already exists.")
		}
		return err
	}
	return nil
}

func (r *gormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("listing_id = ?", id).Delete(&PromotionPayment{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&Listing{BaseModel: common.BaseModel{ID: id}})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return common.ErrNotFound.WithDetails("Listing not found or already deleted.")
		}
		return nil
	})
}

// IncrementViews bumps the view counter atomically in the store, so
// concurrent requests never lose counts to a read-modify-write race.
func (r *gormRepository) IncrementViews(ctx context.Context, slug string) error {
	result := r.db.WithContext(ctx).Model(&Listing{}).
		Where("slug = ?", strings.ToLower(strings.TrimSpace(slug))).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrNotFound.WithDetails("Listing not found.")
	}
	return nil
}

func (r *gormRepository) CountByStatus(ctx context.Context, status Status) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Listing{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *gormRepository) FindPaymentByListingID(ctx context.Context, listingID uuid.UUID) (*PromotionPayment, error) {
	var payment PromotionPayment
	err := r.db.WithContext(ctx).First(&payment, "listing_id = ?", listingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Promotion payment not found.")
		}
		return nil, err
	}
	return &payment, nil
}

func (r *gormRepository) SavePayment(ctx context.Context, payment *PromotionPayment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

func (r *gormRepository) SaveListingAndPayment(ctx context.Context, listing *Listing, payment *PromotionPayment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(listing).Error; err != nil {
			return err
		}
		if payment != nil {
			if err := tx.Save(payment).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ExpireActivePromotions stops every active promotion whose end has passed
// and returns the affected listings so callers can notify their owners.
func (r *gormRepository) ExpireActivePromotions(ctx context.Context, now time.Time) ([]Listing, error) {
	var expired []Listing
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("promotion_status = ? AND promotion_end IS NOT NULL AND promotion_end < ?", PromotionActive, now).
			Find(&expired).Error; err != nil {
			return err
		}
		if len(expired) == 0 {
			return nil
		}
		ids := make([]uuid.UUID, len(expired))
		for i, l := range expired {
			ids[i] = l.ID
		}
		return tx.Model(&Listing{}).
			Where("id IN ?", ids).
			Update("promotion_status", PromotionStopped).Error
	})
	if err != nil {
		return nil, err
	}
	return expired, nil
}
