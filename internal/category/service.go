// File: internal/category/service.go
package category

import (
	"context"
	"strings"

	"sabuconnect_backend/internal/common"
	"sabuconnect_backend/internal/config"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

// Service defines the interface for category-related business logic.
type Service interface {
	// Admin methods
	AdminCreateCategory(ctx context.Context, req AdminCreateCategoryRequest) (*Category, error)
	AdminUpdateCategory(ctx context.Context, id uuid.UUID, req AdminCreateCategoryRequest) (*Category, error)
	AdminDeleteCategory(ctx context.Context, id uuid.UUID) error

	// Public methods
	GetCategoryByID(ctx context.Context, id uuid.UUID) (*Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*Category, error)
	GetAllCategories(ctx context.Context, preloadChildren bool) ([]Category, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
	config *config.Config
}

// NewService creates a new category service.
func NewService(repo Repository, logger *zap.Logger, cfg *config.Config) Service {
	return &service{
		repo:   repo,
		logger: logger,
		config: cfg,
	}
}

func (s *service) resolveParent(ctx context.Context, id *uuid.UUID, selfID uuid.UUID) error {
	if id == nil {
		return nil
	}
	if *id == selfID {
		return common.ErrBadRequest.WithDetails("A category cannot be its own parent.")
	}
	if _, err := s.repo.FindByID(ctx, *id); err != nil {
		return common.ErrBadRequest.WithDetails("Parent category not found.")
	}
	return nil
}

func (s *service) AdminCreateCategory(ctx context.Context, req AdminCreateCategoryRequest) (*Category, error) {
	if err := s.resolveParent(ctx, req.ParentID, uuid.Nil); err != nil {
		return nil, err
	}

	finalSlug := strings.TrimSpace(req.Slug)
	if finalSlug == "" {
		finalSlug = slug.Make(req.Name)
	} else {
		finalSlug = slug.Make(finalSlug)
	}

	catType := strings.TrimSpace(req.Type)
	if catType == "" {
		catType = "service"
	}

	category := &Category{
		Name:     strings.TrimSpace(req.Name),
		Slug:     finalSlug,
		Type:     catType,
		ParentID: req.ParentID,
	}

	if err := s.repo.Create(ctx, category); err != nil {
		s.logger.Error("Failed to create category", zap.Error(err), zap.String("name", req.Name))
		return nil, err
	}
	s.logger.Info("Category created", zap.String("id", category.ID.String()), zap.String("name", category.Name))
	return category, nil
}

func (s *service) AdminUpdateCategory(ctx context.Context, id uuid.UUID, req AdminCreateCategoryRequest) (*Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.resolveParent(ctx, req.ParentID, id); err != nil {
		return nil, err
	}

	category.Name = strings.TrimSpace(req.Name)
	if req.Slug != "" {
		category.Slug = slug.Make(req.Slug)
	} else {
		category.Slug = slug.Make(req.Name)
	}
	if req.Type != "" {
		category.Type = strings.TrimSpace(req.Type)
	}
	category.ParentID = req.ParentID

	if err := s.repo.Update(ctx, category); err != nil {
		s.logger.Error("Failed to update category", zap.Error(err), zap.String("id", id.String()))
		return nil, err
	}
	s.logger.Info("Category updated", zap.String("id", category.ID.String()))
	return category, nil
}

func (s *service) AdminDeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete category", zap.Error(err), zap.String("id", id.String()))
		return err
	}
	s.logger.Info("Category deleted", zap.String("id", id.String()))
	return nil
}

func (s *service) GetCategoryByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) GetCategoryBySlug(ctx context.Context, slugToFind string) (*Category, error) {
	return s.repo.FindBySlug(ctx, slugToFind)
}

func (s *service) GetAllCategories(ctx context.Context, preloadChildren bool) ([]Category, error) {
	categories, err := s.repo.FindAll(ctx, preloadChildren)
	if err != nil {
		s.logger.Error("Failed to get all categories", zap.Error(err))
		return nil, common.ErrInternalServer.WithDetails("Could not retrieve categories.")
	}
	return categories, nil
}
