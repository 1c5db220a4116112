// File: internal/village/service.go
package village

import (
	"context"
	"strings"

	"sabuconnect_backend/internal/common"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines the interface for village-related business logic.
type Service interface {
	Lookup(ctx context.Context, q SearchQuery) (*VillageListResponse, error)

	// Admin methods
	AdminListVillages(ctx context.Context) ([]Village, error)
	AdminCreateVillage(ctx context.Context, req AdminVillageRequest) (*Village, error)
	AdminUpdateVillage(ctx context.Context, id uuid.UUID, req AdminVillageRequest) (*Village, error)
	AdminDeleteVillage(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new village service.
func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{repo: repo, logger: logger}
}

// Lookup runs the public village search and builds the grouped view. District
// groups appear in the same order districts first occur in the sorted result,
// so the grouped view inherits the district ASC ordering.
func (s *service) Lookup(ctx context.Context, q SearchQuery) (*VillageListResponse, error) {
	villages, err := s.repo.Search(ctx, q)
	if err != nil {
		s.logger.Error("Village lookup failed", zap.Error(err))
		return nil, common.ErrInternalServer.WithDetails("Could not retrieve villages.")
	}

	flat := make([]VillageResponse, len(villages))
	for i, v := range villages {
		flat[i] = ToVillageResponse(&v)
	}

	var grouped []DistrictGroup
	indexByDistrict := make(map[string]int)
	for _, vr := range flat {
		idx, seen := indexByDistrict[vr.District]
		if !seen {
			grouped = append(grouped, DistrictGroup{District: vr.District})
			idx = len(grouped) - 1
			indexByDistrict[vr.District] = idx
		}
		grouped[idx].Villages = append(grouped[idx].Villages, vr)
	}
	if grouped == nil {
		grouped = []DistrictGroup{}
	}

	return &VillageListResponse{Villages: flat, Grouped: grouped}, nil
}

func (s *service) AdminListVillages(ctx context.Context) ([]Village, error) {
	return s.repo.FindAllAdmin(ctx)
}

func (s *service) AdminCreateVillage(ctx context.Context, req AdminVillageRequest) (*Village, error) {
	v := &Village{
		Name:     strings.TrimSpace(req.Name),
		District: strings.TrimSpace(req.District),
		Order:    req.Order,
		IsActive: true,
	}
	if req.IsActive != nil {
		v.IsActive = *req.IsActive
	}
	if err := s.repo.Create(ctx, v); err != nil {
		s.logger.Error("Failed to create village", zap.Error(err), zap.String("name", req.Name))
		return nil, common.ErrInternalServer.WithDetails("Could not create village.")
	}
	s.logger.Info("Village created", zap.String("id", v.ID.String()), zap.String("district", v.District))
	return v, nil
}

func (s *service) AdminUpdateVillage(ctx context.Context, id uuid.UUID, req AdminVillageRequest) (*Village, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	v.Name = strings.TrimSpace(req.Name)
	v.District = strings.TrimSpace(req.District)
	v.Order = req.Order
	if req.IsActive != nil {
		v.IsActive = *req.IsActive
	}
	if err := s.repo.Update(ctx, v); err != nil {
		s.logger.Error("Failed to update village", zap.Error(err), zap.String("id", id.String()))
		return nil, common.ErrInternalServer.WithDetails("Could not update village.")
	}
	return v, nil
}

func (s *service) AdminDeleteVillage(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Village deleted", zap.String("id", id.String()))
	return nil
}
