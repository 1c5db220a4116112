// File: internal/category/service_test.go
package category

import (
	"context"
	"testing"

	"sabuconnect_backend/internal/common"
	"sabuconnect_backend/internal/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// --- Mock Repository ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, category *Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockRepository) FindByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

func (m *MockRepository) FindBySlug(ctx context.Context, slug string) (*Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

func (m *MockRepository) FindAll(ctx context.Context, preloadChildren bool) ([]Category, error) {
	args := m.Called(ctx, preloadChildren)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Category), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, category *Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func setupCategoryServiceTest(t *testing.T) (Service, *MockRepository) {
	mockRepo := new(MockRepository)
	logger := zap.NewNop()
	cfg := &config.Config{}
	svc := NewService(mockRepo, logger, cfg)
	return svc, mockRepo
}

func TestAdminCreateCategory_SlugGeneratedFromName(t *testing.T) {
	svc, mockRepo := setupCategoryServiceTest(t)
	ctx := context.Background()

	req := AdminCreateCategoryRequest{Name: "Home Cleaning Services"}

	mockRepo.On("Create", ctx, mock.MatchedBy(func(c *Category) bool {
		return c.Slug == "home-cleaning-services" && c.Name == "Home Cleaning Services" && c.Type == "service"
	})).Return(nil).Once()

	created, err := svc.AdminCreateCategory(ctx, req)
	assert.NoError(t, err)
	assert.Equal(t, "home-cleaning-services", created.Slug)
	mockRepo.AssertExpectations(t)
}

func TestAdminCreateCategory_ExplicitSlugNormalized(t *testing.T) {
	svc, mockRepo := setupCategoryServiceTest(t)
	ctx := context.Background()

	req := AdminCreateCategoryRequest{Name: "Plumbing", Slug: "  Plumbing Repairs  ", Type: "trade"}

	mockRepo.On("Create", ctx, mock.MatchedBy(func(c *Category) bool {
		return c.Slug == "plumbing-repairs" && c.Type == "trade"
	})).Return(nil).Once()

	_, err := svc.AdminCreateCategory(ctx, req)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestAdminCreateCategory_ParentMustExist(t *testing.T) {
	svc, mockRepo := setupCategoryServiceTest(t)
	ctx := context.Background()
	parentID := uuid.New()

	mockRepo.On("FindByID", ctx, parentID).Return(nil, common.ErrNotFound).Once()

	_, err := svc.AdminCreateCategory(ctx, AdminCreateCategoryRequest{Name: "Child", ParentID: &parentID})
	assert.Error(t, err)
	apiErr, ok := err.(*common.APIError)
	assert.True(t, ok)
	assert.Equal(t, common.ErrBadRequest.Code, apiErr.Code)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestAdminUpdateCategory_SelfParentRejected(t *testing.T) {
	svc, mockRepo := setupCategoryServiceTest(t)
	ctx := context.Background()
	catID := uuid.New()

	existing := &Category{BaseModel: common.BaseModel{ID: catID}, Name: "Old", Slug: "old"}
	mockRepo.On("FindByID", ctx, catID).Return(existing, nil).Once()

	_, err := svc.AdminUpdateCategory(ctx, catID, AdminCreateCategoryRequest{Name: "New", ParentID: &catID})
	assert.Error(t, err)
	apiErr, ok := err.(*common.APIError)
	assert.True(t, ok)
	assert.Equal(t, common.ErrBadRequest.Code, apiErr.Code)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAdminDeleteCategory_BlockedByListings(t *testing.T) {
	svc, mockRepo := setupCategoryServiceTest(t)
	ctx := context.Background()
	catID := uuid.New()

	conflictErr := common.ErrConflict.WithDetails("Cannot delete category: 3 listings are still associated with it.")
	mockRepo.On("Delete", ctx, catID).Return(conflictErr).Once()

	err := svc.AdminDeleteCategory(ctx, catID)
	assert.Error(t, err)
	apiErr, ok := err.(*common.APIError)
	assert.True(t, ok)
	assert.Equal(t, common.ErrConflict.Code, apiErr.Code)
	mockRepo.AssertExpectations(t)
}

func TestGetAllCategories_PassesPreloadFlag(t *testing.T) {
	svc, mockRepo := setupCategoryServiceTest(t)
	ctx := context.Background()

	cats := []Category{
		{BaseModel: common.BaseModel{ID: uuid.New()}, Name: "A", Slug: "a", ActiveListingCount: 2},
		{BaseModel: common.BaseModel{ID: uuid.New()}, Name: "B", Slug: "b", ActiveListingCount: 0},
	}
	mockRepo.On("FindAll", ctx, true).Return(cats, nil).Once()

	got, err := svc.GetAllCategories(ctx, true)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 2, got[0].ActiveListingCount)
	mockRepo.AssertExpectations(t)
}
