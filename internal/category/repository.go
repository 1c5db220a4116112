// File: internal/category/repository.go
package category

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sabuconnect_backend/internal/common"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines the interface for category data operations.
type Repository interface {
	Create(ctx context.Context, category *Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindBySlug(ctx context.Context, slug string) (*Category, error)
	FindAll(ctx context.Context, preloadChildren bool) ([]Category, error)
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM category repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, category *Category) error {
	category.Slug = strings.ToLower(strings.TrimSpace(category.Slug))
	err := r.db.WithContext(ctx).Create(category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "unique constraint") {
			return common.ErrConflict.WithDetails("Category with this name or slug already exists.")
		}
		return err
	}
	return nil
}

func (r *gormRepository) FindByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	var category Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Category not found.")
		}
		return nil, err
	}
	return &category, nil
}

func (r *gormRepository) FindBySlug(ctx context.Context, slug string) (*Category, error) {
	var category Category
	normalizedSlug := strings.ToLower(strings.TrimSpace(slug))
	err := r.db.WithContext(ctx).First(&category, "slug = ?", normalizedSlug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Category not found.")
		}
		return nil, err
	}
	return &category, nil
}

// FindAll returns all categories, each annotated with the count of its ACTIVE
// listings only. Listings in any other status do not affect the count.
func (r *gormRepository) FindAll(ctx context.Context, preloadChildren bool) ([]Category, error) {
	var categories []Category
	query := r.db.WithContext(ctx).Model(&Category{})

	subQuery := r.db.Table("listings").
		Select("count(*)").
		Where("listings.category_id = categories.id AND listings.status = ?", "active")

	query = query.Select("categories.*, (?) as active_listing_count", subQuery)

	if preloadChildren {
		query = query.Preload("Children", func(db *gorm.DB) *gorm.DB {
			return db.Order("categories.name ASC")
		})
	}

	err := query.Order("categories.name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *gormRepository) Update(ctx context.Context, category *Category) error {
	if category.Slug != "" {
		category.Slug = strings.ToLower(strings.TrimSpace(category.Slug))
	}
	err := r.db.WithContext(ctx).Save(category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "unique constraint") {
			return common.ErrConflict.WithDetails("Category with this name or slug already exists.")
		}
		return err
	}
	return nil
}

// Delete removes a category. A category still referenced by listings cannot
// be deleted.
func (r *gormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var listingCount int64
	if err := r.db.WithContext(ctx).Table("listings").Where("category_id = ?", id).Count(&listingCount).Error; err != nil {
		return common.ErrInternalServer.WithDetails("Failed to check for associated listings.")
	}
	if listingCount > 0 {
		return common.ErrConflict.WithDetails(
			fmt.Sprintf("Cannot delete category: %d listings are still associated with it.", listingCount),
		)
	}

	result := r.db.WithContext(ctx).Delete(&Category{BaseModel: common.BaseModel{ID: id}})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrNotFound.WithDetails("Category not found or already deleted.")
	}
	return nil
}

func (r *gormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Category{}).Count(&count).Error
	return count, err
}
