// File: internal/listing/service_test.go
package listing

import (
	"context"
	"errors"
	"testing"
	"time"

	"sabuconnect_backend/internal/category"
	"sabuconnect_backend/internal/common"
	"sabuconnect_backend/internal/config"
	"sabuconnect_backend/internal/notification"
	"sabuconnect_backend/internal/village"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, l *Listing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockRepository) FindByID(ctx context.Context, id uuid.UUID) (*Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Listing), args.Error(1)
}

func (m *MockRepository) FindBySlug(ctx context.Context, slug string) (*Listing, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Listing), args.Error(1)
}

func (m *MockRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, q ListQuery) ([]Listing, int64, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]Listing), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) Update(ctx context.Context, l *Listing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) IncrementViews(ctx context.Context, slug string) error {
	args := m.Called(ctx, slug)
	return args.Error(0)
}

func (m *MockRepository) CountByStatus(ctx context.Context, status Status) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) FindPaymentByListingID(ctx context.Context, listingID uuid.UUID) (*PromotionPayment, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PromotionPayment), args.Error(1)
}

func (m *MockRepository) SavePayment(ctx context.Context, p *PromotionPayment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRepository) SaveListingAndPayment(ctx context.Context, l *Listing, p *PromotionPayment) error {
	args := m.Called(ctx, l, p)
	return args.Error(0)
}

func (m *MockRepository) ExpireActivePromotions(ctx context.Context, now time.Time) ([]Listing, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Listing), args.Error(1)
}

type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) Create(ctx context.Context, c *category.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *mockCategoryRepo) FindBySlug(ctx context.Context, slug string) (*category.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *mockCategoryRepo) FindAll(ctx context.Context, preloadChildren bool) ([]category.Category, error) {
	args := m.Called(ctx, preloadChildren)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]category.Category), args.Error(1)
}

func (m *mockCategoryRepo) Update(ctx context.Context, c *category.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCategoryRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockVillageRepo struct {
	mock.Mock
}

func (m *mockVillageRepo) Create(ctx context.Context, v *village.Village) error {
	return m.Called(ctx, v).Error(0)
}

func (m *mockVillageRepo) FindByID(ctx context.Context, id uuid.UUID) (*village.Village, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*village.Village), args.Error(1)
}

func (m *mockVillageRepo) Search(ctx context.Context, q village.SearchQuery) ([]village.Village, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]village.Village), args.Error(1)
}

func (m *mockVillageRepo) FindAllAdmin(ctx context.Context) ([]village.Village, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]village.Village), args.Error(1)
}

func (m *mockVillageRepo) Update(ctx context.Context, v *village.Village) error {
	return m.Called(ctx, v).Error(0)
}

func (m *mockVillageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockNotificationService struct {
	mock.Mock
}

func (m *mockNotificationService) CreateNotification(ctx context.Context, userID uuid.UUID, nType notification.Type, message string, relatedListingID, relatedAdID *uuid.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, userID, nType, message, relatedListingID, relatedAdID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

func (m *mockNotificationService) GetUserNotifications(ctx context.Context, userID uuid.UUID, onlyUnread bool, pq common.PaginationQuery) ([]notification.Notification, *common.Pagination, error) {
	args := m.Called(ctx, userID, onlyUnread, pq)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]notification.Notification), args.Get(1).(*common.Pagination), args.Error(2)
}

func (m *mockNotificationService) MarkNotificationRead(ctx context.Context, id, userID uuid.UUID) error {
	return m.Called(ctx, id, userID).Error(0)
}

func (m *mockNotificationService) MarkAllNotificationsRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockNotificationService) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Setup ---

type listingServiceTestSuite struct {
	svc          Service
	repo         *MockRepository
	categoryRepo *mockCategoryRepo
	villageRepo  *mockVillageRepo
	notifier     *mockNotificationService
}

func setupListingServiceTest(t *testing.T) *listingServiceTestSuite {
	repo := new(MockRepository)
	categoryRepo := new(mockCategoryRepo)
	villageRepo := new(mockVillageRepo)
	notifier := new(mockNotificationService)
	cfg := &config.Config{PromotionDurationDays: 30}
	svc := NewService(repo, categoryRepo, villageRepo, notifier, cfg, zap.NewNop())
	return &listingServiceTestSuite{
		svc:          svc,
		repo:         repo,
		categoryRepo: categoryRepo,
		villageRepo:  villageRepo,
		notifier:     notifier,
	}
}

func assertAPIErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	apiErr, ok := err.(*common.APIError)
	require.True(t, ok, "expected *common.APIError, got %T", err)
	assert.Equal(t, code, apiErr.Code)
}

// --- Tests ---

func TestCreate_GeneratesSlugAndStartsPending(t *testing.T) {
	ts := setupListingServiceTest(t)
	ctx := context.Background()
	userID := uuid.New()
	categoryID := uuid.New()

	ts.categoryRepo.On("FindByID", ctx, categoryID).
		Return(&category.Category{BaseModel: common.BaseModel{ID: categoryID}}, nil).Once()
	ts.repo.On("SlugExists", ctx, "garden-maintenance").Return(false, nil).Once()
	ts.repo.On("Create", ctx, mock.MatchedBy(func(l *Listing) bool {
		return l.Slug == "garden-maintenance" &&
			l.Status == StatusPending &&
			l.PromotionStatus == PromotionNone &&
			l.UserID == userID
	})).Return(nil).Once()

	l, err := ts.svc.Create(ctx, userID, CreateListingRequest{
		Title:       "Garden Maintenance",
		Description: "Weekly garden care",
		CategoryID:  categoryID,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, l.Status)
	ts.repo.AssertExpectations(t)
}

func TestCreate_SlugCollisionGetsSuffix(t *testing.T) {
	ts := setupListingServiceTest(t)
	ctx := context.Background()
	categoryID := uuid.New()

	ts.categoryRepo.On("FindByID", ctx, categoryID).
		Return(&category.Category{BaseModel: common.BaseModel{ID: categoryID}}, nil).Once()
	ts.repo.On("SlugExists", ctx, "garden-maintenance").Return(true, nil).Once()
	ts.repo.On("SlugExists", ctx, mock.MatchedBy(func(s string) bool {
		return len(s) > len("garden-maintenance-") && s[:len("garden-maintenance-")] == "garden-maintenance-"
	})).Return(false, nil).Once()
	ts.repo.On("Create", ctx, mock.Anything).Return(nil).Once()

	l, err := ts.svc.Create(ctx, uuid.New(), CreateListingRequest{
		Title:       "Garden Maintenance",
		Description: "Weekly garden care",
		CategoryID:  categoryID,
	})
	require.NoError(t, err)
	assert.Contains(t, l.Slug, "garden-maintenance-")
	ts.repo.AssertExpectations(t)
}

func TestRequestPromotion_OnlyFromActiveListing(t *testing.T) {
	ts := setupListingServiceTest(t)
	ctx := context.Background()
	userID := uuid.New()
	listingID := uuid.New()

	l := &Listing{
		BaseModel:       common.BaseModel{ID: listingID},
		UserID:          userID,
		Status:          StatusPending,
		PromotionStatus: PromotionNone,
	}
	ts.repo.On("FindByID", ctx, listingID).Return(l, nil).Once()

	_, err := ts.svc.RequestPromotion(ctx, listingID, userID)
	assertAPIErrorCode(t, err, "INVALID_STATE")
	ts.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRequestPromotion_MovesToPendingApproval(t *testing.T) {
	ts := setupListingServiceTest(t)
	ctx := context.Background()
	userID := uuid.New()
	listingID := uuid.New()

	l := &Listing{
		BaseModel:       common.BaseModel{ID: listingID},
		UserID:          userID,
		Status:          StatusActive,
		PromotionStatus: PromotionNone,
	}
	ts.repo.On("FindByID", ctx, listingID).Return(l, nil).Once()
	ts.repo.On("Update", ctx, mock.MatchedBy(func(l *Listing) bool {
		return l.PromotionStatus == PromotionPendingApproval
	})).Return(nil).Once()

	got, err := ts.svc.RequestPromotion(ctx, listingID, userID)
	require.NoError(t, err)
	assert.Equal(t, PromotionPendingApproval, got.PromotionStatus)
	ts.repo.AssertExpectations(t)
}

func TestStopPromotion_OwnershipEnforced(t *testing.T) {
	ts := setupListingServiceTest(t)
	ctx := context.Background()
	listingID := uuid.New()

	l := &Listing{
		BaseModel:       common.BaseModel{ID: listingID},
		UserID:          uuid.New(),
		PromotionStatus: PromotionActive,
	}
	ts.repo.On("FindByID", ctx, listingID).Return(l, nil).Once()

	_, err := ts.svc.StopPromotion(ctx, listingID, uuid.New())
	assertAPIErrorCode(t, err, "FORBIDDEN")
	ts.repo.AssertNotCalled(t, "SaveListingAndPayment", mock.Anything, mock.Anything, mock.Anything)
}

func TestStopPromotion_FailsOutsideActiveAndNeverMutates(t *testing.T) {
	ts := setupListingServiceTest(t)
	ctx := context.Background()
	userID := uuid.New()

	for _, status := range []PromotionStatus{
		PromotionNone, PromotionPendingApproval, PromotionWaitingPayment,
		PromotionPaymentUploaded, PromotionStopped,
	} {
		listingID := uuid.New()
		l := &Listing{
			BaseModel:       common.BaseModel{ID: listingID},
			UserID:          userID,
			PromotionStatus: status,
		}
		ts.repo.On("FindByID", ctx, listingID).Return(l, nil).Once()

		_, err := ts.svc.StopPromotion(ctx, listingID, userID)
		assertAPIErrorCode(t, err, "INVALID_STATE")
		assert.Equal(t, status, l.PromotionStatus)
		assert.Nil(t, l.PromotionEnd)
	}
	ts.repo.AssertNotCalled(t, "SaveListingAndPayment", mock.Anything, mock.Anything, mock.Anything)
}

func TestStopPromotion_MarksPaymentVerified(t *testing.T) {
	ts := setupListingServiceTest(t)
	ctx := context.Background()
	userID := uuid.New()
	listingID := uuid.New()

	l := &Listing{
		BaseModel:       common.BaseModel{ID: listingID},
		UserID:          userID,
		PromotionStatus: PromotionActive,
	}
	payment := &PromotionPayment{ListingID: listingID, Status: PromotionPaymentPaid}

	ts.repo.On("FindByID", ctx, listingID).Return(l, nil).Once()
	ts.repo.On("FindPaymentByListingID", ctx, listingID).Return(payment, nil).Once()
	ts.repo.On("SaveListingAndPayment", ctx,
		mock.MatchedBy(func(l *Listing) bool {
			return l.PromotionStatus == PromotionStopped && l.PromotionEnd != nil
		}),
		mock.MatchedBy(func(p *PromotionPayment) bool {
			return p.Status == PromotionPaymentVerified
		}),
	).Return(nil).Once()

	got, err := ts.svc.StopPromotion(ctx, listingID, userID)
	require.NoError(t, err)
	assert.Equal(t, PromotionStopped, got.PromotionStatus)
	require.NotNil(t, got.PromotionEnd)
	assert.WithinDuration(t, time.Now(), *got.PromotionEnd, 2*time.Second)
	ts.repo.AssertExpectations(t)
}

func TestAdminSetStatus_RejectsUnknownStatus(t *testing.T) {
	ts := setupListingServiceTest(t)
	ctx := context.Background()

	_, err := ts.svc.AdminSetStatus(ctx, uuid.New(), "archived")
	assertAPIErrorCode(t, err, "BAD_REQUEST")
	ts.repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestAdminSetStatus_ApprovalNotifiesOwner(t *testing.T) {
	ts := setupListingServiceTest(t)
	ctx := context.Background()
	listingID := uuid.New()
	ownerID := uuid.New()

	l := &Listing{
		BaseModel: common.BaseModel{ID: listingID},
		UserID:    ownerID,
		Title:     "Fresh Produce",
		Status:    StatusPending,
	}
	ts.repo.On("FindByID", ctx, listingID).Return(l, nil).Once()
	ts.repo.On("Update", ctx, mock.Anything).Return(nil).Once()
	ts.notifier.On("CreateNotification", ctx, ownerID, notification.ListingApproved,
		mock.Anything, mock.Anything, mock.Anything).
		Return(&notification.Notification{}, nil).Once()

	got, err := ts.svc.AdminSetStatus(ctx, listingID, "active")
	require.NoError(t, err)
	assert.Equal(t, StatusActive, got.Status)
	ts.notifier.AssertExpectations(t)
}

func TestAdminVerifyPromotion_Paid(t *testing.T) {
	ts := setupListingServiceTest(t)
	ctx := context.Background()
	listingID := uuid.New()
	adminID := uuid.New()

	l := &Listing{
		BaseModel:       common.BaseModel{ID: listingID},
		UserID:          uuid.New(),
		Title:           "Promoted Listing",
		PromotionStatus: PromotionPaymentUploaded,
	}
	payment := &PromotionPayment{ListingID: listingID, Status: PromotionPaymentVerification}

	ts.repo.On("FindByID", ctx, listingID).Return(l, nil).Once()
	ts.repo.On("FindPaymentByListingID", ctx, listingID).Return(payment, nil).Once()
	ts.repo.On("SaveListingAndPayment", ctx, mock.Anything, mock.Anything).Return(nil).Once()
	ts.notifier.On("CreateNotification", ctx, l.UserID, notification.PromotionActivated,
		mock.Anything, mock.Anything, mock.Anything).
		Return(&notification.Notification{}, nil).Once()

	got, err := ts.svc.AdminVerifyPromotion(ctx, listingID, adminID, DecisionPaid)
	require.NoError(t, err)

	assert.Equal(t, PromotionActive, got.PromotionStatus)
	require.NotNil(t, got.PromotionEnd)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 30), *got.PromotionEnd, 2*time.Second)
	assert.Equal(t, PromotionPaymentPaid, payment.Status)
	require.NotNil(t, payment.VerifiedBy)
	assert.Equal(t, adminID, *payment.VerifiedBy)
	assert.NotNil(t, payment.VerifiedAt)
	ts.repo.AssertExpectations(t)
}

func TestAdminVerifyPromotion_RejectedReopensPayment(t *testing.T) {
	ts := setupListingServiceTest(t)
	ctx := context.Background()
	listingID := uuid.New()
	adminID := uuid.New()

	l := &Listing{
		BaseModel:       common.BaseModel{ID: listingID},
		UserID:          uuid.New(),
		PromotionStatus: PromotionPaymentUploaded,
	}
	payment := &PromotionPayment{ListingID: listingID, Status: PromotionPaymentVerification}

	ts.repo.On("FindByID", ctx, listingID).Return(l, nil).Once()
	ts.repo.On("FindPaymentByListingID", ctx, listingID).Return(payment, nil).Once()
	ts.repo.On("SaveListingAndPayment", ctx, mock.Anything, mock.Anything).Return(nil).Once()
	ts.notifier.On("CreateNotification", ctx, l.UserID, notification.PromotionPaymentRejected,
		mock.Anything, mock.Anything, mock.Anything).
		Return(&notification.Notification{}, nil).Once()

	got, err := ts.svc.AdminVerifyPromotion(ctx, listingID, adminID, DecisionRejected)
	require.NoError(t, err)

	assert.Equal(t, PromotionWaitingPayment, got.PromotionStatus)
	assert.Equal(t, PromotionPaymentRejected, payment.Status)
	assert.Nil(t, payment.VerifiedAt)
	ts.repo.AssertExpectations(t)
}

func TestUploadPromotionProof_RequiresWaitingPayment(t *testing.T) {
	ts := setupListingServiceTest(t)
	ctx := context.Background()
	userID := uuid.New()
	listingID := uuid.New()

	l := &Listing{
		BaseModel:       common.BaseModel{ID: listingID},
		UserID:          userID,
		PromotionStatus: PromotionPendingApproval,
	}
	payment := &PromotionPayment{ListingID: listingID, Status: PromotionPaymentWaiting}

	ts.repo.On("FindByID", ctx, listingID).Return(l, nil).Once()
	ts.repo.On("FindPaymentByListingID", ctx, listingID).Return(payment, nil).Once()

	_, err := ts.svc.UploadPromotionProof(ctx, listingID, userID, "promotion-proofs/x.jpg")
	assertAPIErrorCode(t, err, "INVALID_STATE")
	ts.repo.AssertNotCalled(t, "SaveListingAndPayment", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetPublicBySlug_HidesNonActive(t *testing.T) {
	ts := setupListingServiceTest(t)
	ctx := context.Background()

	l := &Listing{BaseModel: common.BaseModel{ID: uuid.New()}, Slug: "hidden", Status: StatusPending}
	ts.repo.On("FindBySlug", ctx, "hidden").Return(l, nil).Once()

	_, err := ts.svc.GetPublicBySlug(ctx, "hidden")
	assertAPIErrorCode(t, err, "NOT_FOUND")
}

func TestGetOwn_ScopesToOwnerAndPassesPagination(t *testing.T) {
	s := setupListingServiceTest(t)
	ctx := context.Background()
	ownerID := uuid.New()

	l := Listing{Title: "Mine", UserID: ownerID, Status: StatusPending}
	l.ID = uuid.New()
	s.repo.On("List", ctx, mock.MatchedBy(func(q ListQuery) bool {
		return q.UserID != nil && *q.UserID == ownerID &&
			q.Pagination.Page == 3 && q.Pagination.PageSize == 7
	})).Return([]Listing{l}, int64(22), nil).Once()

	listings, pagination, err := s.svc.GetOwn(ctx, ownerID, common.PaginationQuery{Page: 3, PageSize: 7})

	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, ownerID, listings[0].UserID)
	require.NotNil(t, pagination)
	assert.Equal(t, int64(22), pagination.TotalItems)
	assert.Equal(t, 3, pagination.CurrentPage)
	s.repo.AssertExpectations(t)
}

func TestUploadPromotionProof_StoreFailureIsInternal(t *testing.T) {
	s := setupListingServiceTest(t)
	ctx := context.Background()
	ownerID := uuid.New()

	l := &Listing{UserID: ownerID, Status: StatusActive, PromotionStatus: PromotionWaitingPayment}
	l.ID = uuid.New()
	s.repo.On("FindByID", ctx, l.ID).Return(l, nil).Once()
	s.repo.On("FindPaymentByListingID", ctx, l.ID).Return(nil, errors.New("connection reset")).Once()

	_, err := s.svc.UploadPromotionProof(ctx, l.ID, ownerID, "promotion-proofs/x.jpg")

	assertAPIErrorCode(t, err, common.ErrInternalServer.Code)
}

func TestAdminApprovePromotion_StoreFailureIsInternal(t *testing.T) {
	s := setupListingServiceTest(t)
	ctx := context.Background()

	l := &Listing{Status: StatusActive, PromotionStatus: PromotionPendingApproval}
	l.ID = uuid.New()
	s.repo.On("FindByID", ctx, l.ID).Return(l, nil).Once()
	s.repo.On("FindPaymentByListingID", ctx, l.ID).Return(nil, errors.New("connection reset")).Once()

	_, err := s.svc.AdminApprovePromotion(ctx, l.ID, 150)

	assertAPIErrorCode(t, err, common.ErrInternalServer.Code)
	s.repo.AssertNotCalled(t, "SaveListingAndPayment", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminVerifyPromotion_MissingPaymentIsInvalidState(t *testing.T) {
	s := setupListingServiceTest(t)
	ctx := context.Background()

	l := &Listing{Status: StatusActive, PromotionStatus: PromotionPaymentUploaded}
	l.ID = uuid.New()
	s.repo.On("FindByID", ctx, l.ID).Return(l, nil).Once()
	s.repo.On("FindPaymentByListingID", ctx, l.ID).Return(nil, common.ErrNotFound).Once()

	_, err := s.svc.AdminVerifyPromotion(ctx, l.ID, uuid.New(), DecisionPaid)

	assertAPIErrorCode(t, err, common.ErrInvalidState.Code)
}
