// File: internal/settings/repository.go
package settings

import (
	"context"

	"gorm.io/gorm"
)

// Repository defines the interface for site settings data operations.
type Repository interface {
	// Get returns the singleton row, creating it with defaults when it does
	// not exist yet.
	Get(ctx context.Context) (*SiteSettings, error)
	Save(ctx context.Context, settings *SiteSettings) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM settings repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Get(ctx context.Context) (*SiteSettings, error) {
	settings := SiteSettings{ID: SiteSettingsID, SiteName: "SABUConnect"}
	err := r.db.WithContext(ctx).
		Where(SiteSettings{ID: SiteSettingsID}).
		FirstOrCreate(&settings).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *gormRepository) Save(ctx context.Context, settings *SiteSettings) error {
	settings.ID = SiteSettingsID
	return r.db.WithContext(ctx).Save(settings).Error
}
