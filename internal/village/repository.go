// File: internal/village/repository.go
package village

import (
	"context"
	"errors"
	"strings"

	"sabuconnect_backend/internal/common"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	searchResultLimit  = 20
	defaultResultLimit = 100
)

// Repository defines the interface for village data operations.
type Repository interface {
	Create(ctx context.Context, village *Village) error
	FindByID(ctx context.Context, id uuid.UUID) (*Village, error)
	Search(ctx context.Context, q SearchQuery) ([]Village, error)
	FindAllAdmin(ctx context.Context) ([]Village, error)
	Update(ctx context.Context, village *Village) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM village repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, village *Village) error {
	return r.db.WithContext(ctx).Create(village).Error
}

func (r *gormRepository) FindByID(ctx context.Context, id uuid.UUID) (*Village, error) {
	var v Village
	err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Village not found.")
		}
		return nil, err
	}
	return &v, nil
}

// Search returns active villages ordered by district, then their configured
// order, then name. A name search caps the result at 20 rows, an unfiltered
// or district-only lookup at 100.
func (r *gormRepository) Search(ctx context.Context, q SearchQuery) ([]Village, error) {
	query := r.db.WithContext(ctx).Model(&Village{}).Where("is_active = ?", true)

	if district := strings.TrimSpace(q.District); district != "" {
		query = query.Where("district = ?", district)
	}

	limit := defaultResultLimit
	if search := strings.TrimSpace(q.Search); search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+search+"%")
		limit = searchResultLimit
	}

	var villages []Village
	err := query.
		Order("district ASC").
		Order("sort_order ASC").
		Order("name ASC").
		Limit(limit).
		Find(&villages).Error
	if err != nil {
		return nil, err
	}
	return villages, nil
}

func (r *gormRepository) FindAllAdmin(ctx context.Context) ([]Village, error) {
	var villages []Village
	err := r.db.WithContext(ctx).
		Order("district ASC").
		Order("sort_order ASC").
		Order("name ASC").
		Find(&villages).Error
	return villages, err
}

func (r *gormRepository) Update(ctx context.Context, village *Village) error {
	return r.db.WithContext(ctx).Save(village).Error
}

func (r *gormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&Village{BaseModel: common.BaseModel{ID: id}})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrNotFound.WithDetails("Village not found or already deleted.")
	}
	return nil
}
