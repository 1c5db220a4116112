// File: internal/village/service_test.go
package village

import (
	"context"
	"testing"

	"sabuconnect_backend/internal/common"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, village *Village) error {
	args := m.Called(ctx, village)
	return args.Error(0)
}

func (m *MockRepository) FindByID(ctx context.Context, id uuid.UUID) (*Village, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Village), args.Error(1)
}

func (m *MockRepository) Search(ctx context.Context, q SearchQuery) ([]Village, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Village), args.Error(1)
}

func (m *MockRepository) FindAllAdmin(ctx context.Context) ([]Village, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Village), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, village *Village) error {
	args := m.Called(ctx, village)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupVillageServiceTest(t *testing.T) (Service, *MockRepository) {
	mockRepo := new(MockRepository)
	return NewService(mockRepo, zap.NewNop()), mockRepo
}

func TestLookup_GroupsByDistrictPreservingOrder(t *testing.T) {
	svc, mockRepo := setupVillageServiceTest(t)
	ctx := context.Background()

	// already sorted the way the repository returns them
	villages := []Village{
		{BaseModel: common.BaseModel{ID: uuid.New()}, Name: "Gamma", District: "East", IsActive: true},
		{BaseModel: common.BaseModel{ID: uuid.New()}, Name: "Beta", District: "North", IsActive: true},
		{BaseModel: common.BaseModel{ID: uuid.New()}, Name: "Zeta", District: "North", IsActive: true},
	}
	mockRepo.On("Search", ctx, SearchQuery{}).Return(villages, nil).Once()

	resp, err := svc.Lookup(ctx, SearchQuery{})
	assert.NoError(t, err)
	assert.Len(t, resp.Villages, 3)

	assert.Len(t, resp.Grouped, 2)
	assert.Equal(t, "East", resp.Grouped[0].District)
	assert.Len(t, resp.Grouped[0].Villages, 1)
	assert.Equal(t, "North", resp.Grouped[1].District)
	assert.Len(t, resp.Grouped[1].Villages, 2)
	assert.Equal(t, "Beta", resp.Grouped[1].Villages[0].Name)
	mockRepo.AssertExpectations(t)
}

func TestLookup_EmptyResultHasEmptyGroups(t *testing.T) {
	svc, mockRepo := setupVillageServiceTest(t)
	ctx := context.Background()

	mockRepo.On("Search", ctx, mock.Anything).Return([]Village{}, nil).Once()

	resp, err := svc.Lookup(ctx, SearchQuery{Search: "nowhere"})
	assert.NoError(t, err)
	assert.Empty(t, resp.Villages)
	assert.NotNil(t, resp.Grouped)
	assert.Empty(t, resp.Grouped)
}

func TestAdminCreateVillage_DefaultsActive(t *testing.T) {
	svc, mockRepo := setupVillageServiceTest(t)
	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.MatchedBy(func(v *Village) bool {
		return v.IsActive && v.Name == "Newtown" && v.District == "South"
	})).Return(nil).Once()

	v, err := svc.AdminCreateVillage(ctx, AdminVillageRequest{Name: " Newtown ", District: "South"})
	assert.NoError(t, err)
	assert.True(t, v.IsActive)
	mockRepo.AssertExpectations(t)
}

func TestAdminUpdateVillage_CanDeactivate(t *testing.T) {
	svc, mockRepo := setupVillageServiceTest(t)
	ctx := context.Background()
	id := uuid.New()
	inactive := false

	existing := &Village{BaseModel: common.BaseModel{ID: id}, Name: "Old", District: "South", IsActive: true}
	mockRepo.On("FindByID", ctx, id).Return(existing, nil).Once()
	mockRepo.On("Update", ctx, mock.MatchedBy(func(v *Village) bool {
		return !v.IsActive
	})).Return(nil).Once()

	v, err := svc.AdminUpdateVillage(ctx, id, AdminVillageRequest{Name: "Old", District: "South", IsActive: &inactive})
	assert.NoError(t, err)
	assert.False(t, v.IsActive)
	mockRepo.AssertExpectations(t)
}
