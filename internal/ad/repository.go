// File: internal/ad/repository.go
package ad

import (
	"context"
	"errors"

	"sabuconnect_backend/internal/common"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines the interface for ad data operations.
type Repository interface {
	Create(ctx context.Context, ad *Ad) error
	FindByID(ctx context.Context, id uuid.UUID) (*Ad, error)
	FindByProvider(ctx context.Context, providerID uuid.UUID, pq common.PaginationQuery) ([]Ad, int64, error)
	List(ctx context.Context, status AdStatus, pq common.PaginationQuery) ([]Ad, int64, error)
	Update(ctx context.Context, ad *Ad) error
	FindPaymentByAdID(ctx context.Context, adID uuid.UUID) (*Payment, error)
	SavePayment(ctx context.Context, payment *Payment) error
	// SaveAdAndPayment persists both rows in one transaction so the ad and
	// its payment can never be observed in disagreeing states.
	SaveAdAndPayment(ctx context.Context, ad *Ad, payment *Payment) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM ad repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, ad *Ad) error {
	return r.db.WithContext(ctx).Create(ad).Error
}

func (r *gormRepository) FindByID(ctx context.Context, id uuid.UUID) (*Ad, error) {
	var a Ad
	err := r.db.WithContext(ctx).
		Preload("Provider").
		Preload("Payment").
		First(&a, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Ad not found.")
		}
		return nil, err
	}
	return &a, nil
}

func (r *gormRepository) FindByProvider(ctx context.Context, providerID uuid.UUID, pq common.PaginationQuery) ([]Ad, int64, error) {
	var ads []Ad
	var total int64

	query := r.db.WithContext(ctx).Model(&Ad{}).Where("provider_id = ?", providerID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.
		Preload("Payment").
		Order("created_at DESC").
		Offset(pq.Offset()).
		Limit(pq.Limit()).
		Find(&ads).Error
	if err != nil {
		return nil, 0, err
	}
	return ads, total, nil
}

func (r *gormRepository) List(ctx context.Context, status AdStatus, pq common.PaginationQuery) ([]Ad, int64, error) {
	var ads []Ad
	var total int64

	query := r.db.WithContext(ctx).Model(&Ad{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.
		Preload("Provider").
		Preload("Payment").
		Order("created_at DESC").
		Offset(pq.Offset()).
		Limit(pq.Limit()).
		Find(&ads).Error
	if err != nil {
		return nil, 0, err
	}
	return ads, total, nil
}

func (r *gormRepository) Update(ctx context.Context, ad *Ad) error {
	return r.db.WithContext(ctx).Save(ad).Error
}

func (r *gormRepository) FindPaymentByAdID(ctx context.Context, adID uuid.UUID) (*Payment, error) {
	var payment Payment
	err := r.db.WithContext(ctx).First(&payment, "ad_id = ?", adID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Payment not found.")
		}
		return nil, err
	}
	return &payment, nil
}

func (r *gormRepository) SavePayment(ctx context.Context, payment *Payment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

func (r *gormRepository) SaveAdAndPayment(ctx context.Context, ad *Ad, payment *Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(ad).Error; err != nil {
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
