// File: internal/banner/service.go
package banner

import (
	"context"
	"time"

	"sabuconnect_backend/internal/common"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines the interface for banner business logic.
type Service interface {
	GetVisibleBanners(ctx context.Context, position string) ([]PromoBanner, error)

	// Admin methods
	AdminListBanners(ctx context.Context) ([]PromoBanner, error)
	AdminCreateBanner(ctx context.Context, req BannerRequest) (*PromoBanner, error)
	AdminUpdateBanner(ctx context.Context, id uuid.UUID, req BannerRequest) (*PromoBanner, error)
	AdminDeleteBanner(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new banner service.
func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) GetVisibleBanners(ctx context.Context, position string) ([]PromoBanner, error) {
	banners, err := s.repo.FindVisible(ctx, position, time.Now())
	if err != nil {
		s.logger.Error("Failed to list visible banners", zap.Error(err))
		return nil, common.ErrInternalServer.WithDetails("Could not retrieve banners.")
	}
	return banners, nil
}

func (s *service) AdminListBanners(ctx context.Context) ([]PromoBanner, error) {
	banners, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list banners", zap.Error(err))
		return nil, common.ErrInternalServer.WithDetails("Could not retrieve banners.")
	}
	return banners, nil
}

func validateWindow(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return common.ErrBadRequest.WithDetails("Banner end date must not be before its start date.")
	}
	return nil
}

func (s *service) AdminCreateBanner(ctx context.Context, req BannerRequest) (*PromoBanner, error) {
	if err := validateWindow(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}
	position := req.Position
	if position == "" {
		position = "home"
	}
	b := &PromoBanner{
		Title:     req.Title,
		Image:     req.Image,
		LinkURL:   req.LinkURL,
		Position:  position,
		IsActive:  true,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Order:     req.Order,
	}
	if req.IsActive != nil {
		b.IsActive = *req.IsActive
	}
	if err := s.repo.Create(ctx, b); err != nil {
		s.logger.Error("Failed to create banner", zap.Error(err))
		return nil, common.ErrInternalServer.WithDetails("Could not create banner.")
	}
	s.logger.Info("Banner created", zap.String("id", b.ID.String()))
	return b, nil
}

func (s *service) AdminUpdateBanner(ctx context.Context, id uuid.UUID, req BannerRequest) (*PromoBanner, error) {
	if err := validateWindow(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	b.Title = req.Title
	b.Image = req.Image
	b.LinkURL = req.LinkURL
	if req.Position != "" {
		b.Position = req.Position
	}
	if req.IsActive != nil {
		b.IsActive = *req.IsActive
	}
	b.StartDate = req.StartDate
	b.EndDate = req.EndDate
	b.Order = req.Order

	if err := s.repo.Update(ctx, b); err != nil {
		s.logger.Error("Failed to update banner", zap.Error(err), zap.String("id", id.String()))
		return nil, common.ErrInternalServer.WithDetails("Could not update banner.")
	}
	return b, nil
}

func (s *service) AdminDeleteBanner(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Banner deleted", zap.String("id", id.String()))
	return nil
}
