// File: internal/stats/service.go
package stats

import (
	"context"

	"sabuconnect_backend/internal/category"
	"sabuconnect_backend/internal/common"
	"sabuconnect_backend/internal/listing"
	"sabuconnect_backend/internal/user"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Stats is the public aggregate counts payload.
type Stats struct {
	Providers      int64 `json:"providers"`
	ActiveListings int64 `json:"active_listings"`
	Users          int64 `json:"users"`
	Categories     int64 `json:"categories"`
}

// Service defines the interface for the stats aggregation.
type Service interface {
	GetStats(ctx context.Context) (Stats, error)
}

type service struct {
	userRepo     user.Repository
	listingRepo  listing.Repository
	categoryRepo category.Repository
	logger       *zap.Logger
}

// NewService creates a new stats service.
func NewService(userRepo user.Repository, listingRepo listing.Repository, categoryRepo category.Repository, logger *zap.Logger) Service {
	return &service{
		userRepo:     userRepo,
		listingRepo:  listingRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// GetStats fetches the four counts concurrently. Any failure yields an
// all-zero payload and an error rather than partial data.
func (s *service) GetStats(ctx context.Context) (Stats, error) {
	var stats Stats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.userRepo.CountByRole(gctx, common.RoleProvider)
		if err != nil {
			return err
		}
		stats.Providers = count
		return nil
	})
	g.Go(func() error {
		count, err := s.listingRepo.CountByStatus(gctx, listing.StatusActive)
		if err != nil {
			return err
		}
		stats.ActiveListings = count
		return nil
	})
	g.Go(func() error {
		count, err := s.userRepo.Count(gctx)
		if err != nil {
			return err
		}
		stats.Users = count
		return nil
	})
	g.Go(func() error {
		count, err := s.categoryRepo.Count(gctx)
		if err != nil {
			return err
		}
		stats.Categories = count
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("Failed to aggregate stats", zap.Error(err))
		return Stats{}, common.ErrInternalServer.WithDetails("Could not compute statistics.")
	}
	return stats, nil
}
