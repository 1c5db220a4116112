// File: internal/settings/service.go
package settings

import (
	"context"

	"sabuconnect_backend/internal/common"

	"go.uber.org/zap"
)

// Service defines the interface for site settings business logic.
type Service interface {
	GetSettings(ctx context.Context) (*SiteSettings, error)
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (*SiteSettings, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new settings service.
func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) GetSettings(ctx context.Context) (*SiteSettings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		s.logger.Error("Failed to load site settings", zap.Error(err))
		return nil, common.ErrInternalServer.WithDetails("Could not load site settings.")
	}
	return settings, nil
}

func (s *service) UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (*SiteSettings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		s.logger.Error("Failed to load site settings for update", zap.Error(err))
		return nil, common.ErrInternalServer.WithDetails("Could not load site settings.")
	}
	settings.SiteName = req.SiteName
	settings.Logo = req.Logo
	settings.ContactEmail = req.ContactEmail
	settings.ContactPhone = req.ContactPhone

	if err := s.repo.Save(ctx, settings); err != nil {
		s.logger.Error("Failed to save site settings", zap.Error(err))
		return nil, common.ErrInternalServer.WithDetails("Could not save site settings.")
	}
	s.logger.Info("Site settings updated")
	return settings, nil
}
