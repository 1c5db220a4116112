// File: internal/banner/repository.go
package banner

import (
	"context"
	"errors"
	"time"

	"sabuconnect_backend/internal/common"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines the interface for banner data operations.
type Repository interface {
	Create(ctx context.Context, banner *PromoBanner) error
	FindByID(ctx context.Context, id uuid.UUID) (*PromoBanner, error)
	FindVisible(ctx context.Context, position string, now time.Time) ([]PromoBanner, error)
	FindAll(ctx context.Context) ([]PromoBanner, error)
	Update(ctx context.Context, banner *PromoBanner) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM banner repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, banner *PromoBanner) error {
	return r.db.WithContext(ctx).Create(banner).Error
}

func (r *gormRepository) FindByID(ctx context.Context, id uuid.UUID) (*PromoBanner, error) {
	var banner PromoBanner
	err := r.db.WithContext(ctx).First(&banner, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Banner not found.")
		}
		return nil, err
	}
	return &banner, nil
}

// FindVisible returns banners whose schedule window contains now, ordered by
// the explicit order field. Open-ended windows match on the open side.
func (r *gormRepository) FindVisible(ctx context.Context, position string, now time.Time) ([]PromoBanner, error) {
	query := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("start_date IS NULL OR start_date <= ?", now).
		Where("end_date IS NULL OR end_date >= ?", now)
	if position != "" {
		query = query.Where("position = ?", position)
	}

	var banners []PromoBanner
	err := query.Order("sort_order ASC").Find(&banners).Error
	return banners, err
}

func (r *gormRepository) FindAll(ctx context.Context) ([]PromoBanner, error) {
	var banners []PromoBanner
	err := r.db.WithContext(ctx).Order("sort_order ASC").Find(&banners).Error
	return banners, err
}

func (r *gormRepository) Update(ctx context.Context, banner *PromoBanner) error {
	return r.db.WithContext(ctx).Save(banner).Error
}

func (r *gormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&PromoBanner{BaseModel: common.BaseModel{ID: id}})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrNotFound.WithDetails("Banner not found or already deleted.")
	}
	return nil
}
