// File: internal/listing/service.go
package listing

import (
	"context"
	"fmt"
	"time"

	"sabuconnect_backend/internal/category"
	"sabuconnect_backend/internal/common"
	"sabuconnect_backend/internal/config"
	"sabuconnect_backend/internal/notification"
	"sabuconnect_backend/internal/platform/crypto"
	"sabuconnect_backend/internal/village"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

// Service defines the interface for listing-related business logic.
type Service interface {
	// Public methods
	ListActive(ctx context.Context, q ListQuery) ([]Listing, *common.Pagination, error)
	GetPublicBySlug(ctx context.Context, slug string) (*Listing, error)
	RecordView(ctx context.Context, slug string) error

	// Provider methods
	Create(ctx context.Context, userID uuid.UUID, req CreateListingRequest) (*Listing, error)
	Update(ctx context.Context, listingID, userID uuid.UUID, req UpdateListingRequest) (*Listing, error)
	Delete(ctx context.Context, listingID, userID uuid.UUID) error
	GetOwn(ctx context.Context, userID uuid.UUID, page common.PaginationQuery) ([]Listing, *common.Pagination, error)
	RequestPromotion(ctx context.Context, listingID, userID uuid.UUID) (*Listing, error)
	UploadPromotionProof(ctx context.Context, listingID, userID uuid.UUID, proofPath string) (*PromotionPayment, error)
	StopPromotion(ctx context.Context, listingID, userID uuid.UUID) (*Listing, error)

	// Admin methods
	AdminList(ctx context.Context, q ListQuery) ([]Listing, *common.Pagination, error)
	AdminSetStatus(ctx context.Context, listingID uuid.UUID, newStatus string) (*Listing, error)
	AdminApprovePromotion(ctx context.Context, listingID uuid.UUID, amount float64) (*Listing, error)
	AdminVerifyPromotion(ctx context.Context, listingID, adminID uuid.UUID, decision VerifyDecision) (*Listing, error)

	// ExpirePromotions stops every active promotion whose end has passed.
	// Called by the scheduled expiry job.
	ExpirePromotions(ctx context.Context) (int, error)
}

type service struct {
	repo                Repository
	categoryRepo        category.Repository
	villageRepo         village.Repository
	notificationService notification.Service
	config              *config.Config
	logger              *zap.Logger
}

// NewService creates a new listing service.
func NewService(
	repo Repository,
	categoryRepo category.Repository,
	villageRepo village.Repository,
	notificationService notification.Service,
	cfg *config.Config,
	logger *zap.Logger,
) Service {
	return &service{
		repo:                repo,
		categoryRepo:        categoryRepo,
		villageRepo:         villageRepo,
		notificationService: notificationService,
		config:              cfg,
		logger:              logger,
	}
}

// --- Public ---

func (s *service) ListActive(ctx context.Context, q ListQuery) ([]Listing, *common.Pagination, error) {
	q.Status = StatusActive
	q.UserID = nil
	listings, total, err := s.repo.List(ctx, q)
	if err != nil {
		s.logger.Error("Failed to list active listings", zap.Error(err))
		return nil, nil, common.ErrInternalServer.WithDetails("Could not retrieve listings.")
	}
	return listings, common.NewPagination(total, q.Pagination.Page, q.Pagination.PageSize), nil
}

func (s *service) GetPublicBySlug(ctx context.Context, slugToFind string) (*Listing, error) {
	l, err := s.repo.FindBySlug(ctx, slugToFind)
	if err != nil {
		return nil, err
	}
	if l.Status != StatusActive {
		return nil, common.ErrNotFound.WithDetails("Listing not found.")
	}
	return l, nil
}

func (s *service) RecordView(ctx context.Context, slug string) error {
	return s.repo.IncrementViews(ctx, slug)
}

// --- Provider ---

func (s *service) generateSlug(ctx context.Context, title string) (string, error) {
	base := slug.Make(title)
	if base == "" {
		return "", common.ErrBadRequest.WithDetails("Title cannot be turned into a slug.")
	}
	exists, err := s.repo.SlugExists(ctx, base)
	if err != nil {
		return "", err
	}
	if !exists {
		return base, nil
	}
	// Collide once more and we give up; the suffix space makes that
	// vanishingly unlikely.
	candidate := fmt.Sprintf("%s-%s", base, crypto.RandomSlugSuffix())
	exists, err = s.repo.SlugExists(ctx, candidate)
	if err != nil {
		return "", err
	}
	if exists {
		return "", common.ErrInternalServer.WithDetails("Could not generate a unique slug.")
	}
	return candidate, nil
}

func (s *service) validateRefs(ctx context.Context, categoryID uuid.UUID, villageID *uuid.UUID) error {
	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return common.ErrBadRequest.WithDetails("Category not found.")
	}
	if villageID != nil {
		if _, err := s.villageRepo.FindByID(ctx, *villageID); err != nil {
			return common.ErrBadRequest.WithDetails("Village not found.")
		}
	}
	return nil
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, req CreateListingRequest) (*Listing, error) {
	if err := s.validateRefs(ctx, req.CategoryID, req.VillageID); err != nil {
		return nil, err
	}
	listingSlug, err := s.generateSlug(ctx, req.Title)
	if err != nil {
		return nil, err
	}

	l := &Listing{
		Title:           req.Title,
		Slug:            listingSlug,
		Description:     req.Description,
		Price:           req.Price,
		Images:          pq.StringArray(req.Images),
		Status:          StatusPending,
		PromotionStatus: PromotionNone,
		UserID:          userID,
		CategoryID:      req.CategoryID,
		VillageID:       req.VillageID,
	}
	if err := s.repo.Create(ctx, l); err != nil {
		s.logger.Error("Failed to create listing", zap.Error(err), zap.String("userID", userID.String()))
		return nil, err
	}
	s.logger.Info("Listing created",
		zap.String("id", l.ID.String()),
		zap.String("slug", l.Slug),
		zap.String("userID", userID.String()))
	return l, nil
}

func (s *service) findOwned(ctx context.Context, listingID, userID uuid.UUID) (*Listing, error) {
	l, err := s.repo.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if l.UserID != userID {
		return nil, common.ErrForbidden.WithDetails("You do not own this listing.")
	}
	return l, nil
}

func (s *service) Update(ctx context.Context, listingID, userID uuid.UUID, req UpdateListingRequest) (*Listing, error) {
	l, err := s.findOwned(ctx, listingID, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil && *req.Title != l.Title {
		l.Title = *req.Title
		newSlug, err := s.generateSlug(ctx, l.Title)
		if err != nil {
			return nil, err
		}
		l.Slug = newSlug
	}
	if req.Description != nil {
		l.Description = *req.Description
	}
	if req.Price != nil {
		l.Price = req.Price
	}
	if req.Images != nil {
		l.Images = pq.StringArray(req.Images)
	}
	if req.CategoryID != nil || req.VillageID != nil {
		categoryID := l.CategoryID
		if req.CategoryID != nil {
			categoryID = *req.CategoryID
		}
		villageID := l.VillageID
		if req.VillageID != nil {
			villageID = req.VillageID
		}
		if err := s.validateRefs(ctx, categoryID, villageID); err != nil {
			return nil, err
		}
		l.CategoryID = categoryID
		l.VillageID = villageID
	}

	if err := s.repo.Update(ctx, l); err != nil {
		s.logger.Error("Failed to update listing", zap.Error(err), zap.String("id", listingID.String()))
		return nil, err
	}
	return l, nil
}

func (s *service) Delete(ctx context.Context, listingID, userID uuid.UUID) error {
	if _, err := s.findOwned(ctx, listingID, userID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, listingID); err != nil {
		return err
	}
	s.logger.Info("Listing deleted", zap.String("id", listingID.String()), zap.String("userID", userID.String()))
	return nil
}

func (s *service) GetOwn(ctx context.Context, userID uuid.UUID, page common.PaginationQuery) ([]Listing, *common.Pagination, error) {
	q := ListQuery{UserID: &userID, Pagination: page}
	listings, total, err := s.repo.List(ctx, q)
	if err != nil {
		s.logger.Error("Failed to list own listings", zap.Error(err), zap.String("userID", userID.String()))
		return nil, nil, common.ErrInternalServer.WithDetails("Could not retrieve listings.")
	}
	return listings, common.NewPagination(total, page.Page, page.PageSize), nil
}

func (s *service) RequestPromotion(ctx context.Context, listingID, userID uuid.UUID) (*Listing, error) {
	l, err := s.findOwned(ctx, listingID, userID)
	if err != nil {
		return nil, err
	}
	if l.Status != StatusActive {
		return nil, common.ErrInvalidState.WithDetails("Only active listings can be promoted.")
	}
	if err := transitionPromotion(l, PromotionPendingApproval); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	s.logger.Info("Promotion requested", zap.String("listingID", l.ID.String()))
	return l, nil
}

func (s *service) UploadPromotionProof(ctx context.Context, listingID, userID uuid.UUID, proofPath string) (*PromotionPayment, error) {
	l, err := s.findOwned(ctx, listingID, userID)
	if err != nil {
		return nil, err
	}
	payment, err := s.repo.FindPaymentByListingID(ctx, listingID)
	if err != nil {
		if isNotFound(err) {
			return nil, common.ErrInvalidState.WithDetails("No promotion payment is awaiting proof for this listing.")
		}
		s.logger.Error("Failed to load promotion payment", zap.Error(err), zap.String("listingID", listingID.String()))
		return nil, common.ErrInternalServer
	}
	if err := transitionPromotion(l, PromotionPaymentUploaded); err != nil {
		return nil, err
	}

	payment.ProofImage = &proofPath
	payment.Status = PromotionPaymentVerification
	payment.VerifiedBy = nil
	payment.VerifiedAt = nil

	if err := s.repo.SaveListingAndPayment(ctx, l, payment); err != nil {
		s.logger.Error("Failed to store promotion proof", zap.Error(err), zap.String("listingID", listingID.String()))
		return nil, common.ErrInternalServer.WithDetails("Could not store payment proof.")
	}
	s.logger.Info("Promotion proof uploaded", zap.String("listingID", listingID.String()))
	return payment, nil
}

func (s *service) StopPromotion(ctx context.Context, listingID, userID uuid.UUID) (*Listing, error) {
	l, err := s.findOwned(ctx, listingID, userID)
	if err != nil {
		return nil, err
	}
	if l.PromotionStatus != PromotionActive {
		return nil, common.ErrInvalidState.WithDetails("Only an active promotion can be stopped.")
	}
	if err := transitionPromotion(l, PromotionStopped); err != nil {
		return nil, err
	}
	now := time.Now()
	l.PromotionEnd = &now

	payment, err := s.repo.FindPaymentByListingID(ctx, listingID)
	if err == nil {
		payment.Status = PromotionPaymentVerified
	} else {
		payment = nil
	}

	if err := s.repo.SaveListingAndPayment(ctx, l, payment); err != nil {
		s.logger.Error("Failed to stop promotion", zap.Error(err), zap.String("listingID", listingID.String()))
		return nil, common.ErrInternalServer.WithDetails("Could not stop promotion.")
	}
	s.logger.Info("Promotion stopped", zap.String("listingID", listingID.String()))
	return l, nil
}

// --- Admin ---

func (s *service) AdminList(ctx context.Context, q ListQuery) ([]Listing, *common.Pagination, error) {
	listings, total, err := s.repo.List(ctx, q)
	if err != nil {
		s.logger.Error("Failed to list listings for admin", zap.Error(err))
		return nil, nil, common.ErrInternalServer.WithDetails("Could not retrieve listings.")
	}
	return listings, common.NewPagination(total, q.Pagination.Page, q.Pagination.PageSize), nil
}

func (s *service) AdminSetStatus(ctx context.Context, listingID uuid.UUID, newStatus string) (*Listing, error) {
	status := Status(newStatus)
	if !ValidStatus(status) {
		return nil, common.ErrBadRequest.WithDetails(
			fmt.Sprintf("'%s' is not a valid listing status.", newStatus))
	}
	l, err := s.repo.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	previous := l.Status
	l.Status = status
	if err := s.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	s.logger.Info("Listing status changed",
		zap.String("listingID", l.ID.String()),
		zap.String("from", string(previous)),
		zap.String("to", string(status)))

	s.notify(ctx, l, previous)
	return l, nil
}

func (s *service) notify(ctx context.Context, l *Listing, previous Status) {
	if s.notificationService == nil || l.Status == previous {
		return
	}
	var nType notification.Type
	var message string
	switch l.Status {
	case StatusActive:
		nType = notification.ListingApproved
		message = fmt.Sprintf("Your listing '%s' has been approved and is now live.", l.Title)
	case StatusRejected:
		nType = notification.ListingRejected
		message = fmt.Sprintf("Your listing '%s' has been rejected.", l.Title)
	default:
		return
	}
	if _, err := s.notificationService.CreateNotification(ctx, l.UserID, nType, message, &l.ID, nil); err != nil {
		s.logger.Warn("Failed to send listing status notification",
			zap.Error(err), zap.String("listingID", l.ID.String()))
	}
}

func (s *service) AdminApprovePromotion(ctx context.Context, listingID uuid.UUID, amount float64) (*Listing, error) {
	l, err := s.repo.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if err := transitionPromotion(l, PromotionWaitingPayment); err != nil {
		return nil, err
	}

	payment, err := s.repo.FindPaymentByListingID(ctx, listingID)
	if err != nil {
		if !isNotFound(err) {
			s.logger.Error("Failed to load promotion payment", zap.Error(err), zap.String("listingID", listingID.String()))
			return nil, common.ErrInternalServer
		}
		payment = &PromotionPayment{ListingID: listingID}
	}
	payment.Amount = amount
	payment.Status = PromotionPaymentWaiting
	payment.ProofImage = nil
	payment.VerifiedBy = nil
	payment.VerifiedAt = nil

	if err := s.repo.SaveListingAndPayment(ctx, l, payment); err != nil {
		s.logger.Error("Failed to approve promotion", zap.Error(err), zap.String("listingID", listingID.String()))
		return nil, common.ErrInternalServer.WithDetails("Could not approve promotion.")
	}

	if s.notificationService != nil {
		message := fmt.Sprintf("Your promotion request for '%s' was approved. Please complete the payment.", l.Title)
		if _, err := s.notificationService.CreateNotification(ctx, l.UserID, notification.PromotionApproved, message, &l.ID, nil); err != nil {
			s.logger.Warn("Failed to send promotion approval notification", zap.Error(err))
		}
	}
	return l, nil
}

func (s *service) AdminVerifyPromotion(ctx context.Context, listingID, adminID uuid.UUID, decision VerifyDecision) (*Listing, error) {
	if !ValidDecision(decision) {
		return nil, common.ErrBadRequest.WithDetails(
			fmt.Sprintf("'%s' is not a valid verification decision.", decision))
	}
	l, err := s.repo.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	payment, err := s.repo.FindPaymentByListingID(ctx, listingID)
	if err != nil {
		if isNotFound(err) {
			return nil, common.ErrInvalidState.WithDetails("This listing has no promotion payment to verify.")
		}
		s.logger.Error("Failed to load promotion payment", zap.Error(err), zap.String("listingID", listingID.String()))
		return nil, common.ErrInternalServer
	}

	var nType notification.Type
	var message string
	switch decision {
	case DecisionPaid:
		if err := transitionPromotion(l, PromotionActive); err != nil {
			return nil, err
		}
		end := time.Now().AddDate(0, 0, s.config.PromotionDurationDays)
		l.PromotionEnd = &end
		now := time.Now()
		payment.Status = PromotionPaymentPaid
		payment.VerifiedBy = &adminID
		payment.VerifiedAt = &now
		nType = notification.PromotionActivated
		message = fmt.Sprintf("Payment confirmed. Your listing '%s' is now promoted until %s.",
			l.Title, end.Format("2006-01-02"))
	case DecisionRejected:
		if err := transitionPromotion(l, PromotionWaitingPayment); err != nil {
			return nil, err
		}
		payment.Status = PromotionPaymentRejected
		payment.VerifiedBy = &adminID
		payment.VerifiedAt = nil
		nType = notification.PromotionPaymentRejected
		message = fmt.Sprintf("The payment proof for '%s' was rejected. Please upload a new proof.", l.Title)
	}

	if err := s.repo.SaveListingAndPayment(ctx, l, payment); err != nil {
		s.logger.Error("Failed to verify promotion payment",
			zap.Error(err), zap.String("listingID", listingID.String()))
		return nil, common.ErrInternalServer.WithDetails("Could not verify promotion payment.")
	}

	if s.notificationService != nil {
		if _, err := s.notificationService.CreateNotification(ctx, l.UserID, nType, message, &l.ID, nil); err != nil {
			s.logger.Warn("Failed to send promotion verification notification", zap.Error(err))
		}
	}
	return l, nil
}

// isNotFound reports whether err is the common not-found sentinel.
func isNotFound(err error) bool {
	apiErr, ok := common.IsAPIError(err)
	return ok && apiErr.Code == common.ErrNotFound.Code
}

// ExpirePromotions stops active promotions whose paid window has lapsed and
// notifies the owners.
func (s *service) ExpirePromotions(ctx context.Context) (int, error) {
	expired, err := s.repo.ExpireActivePromotions(ctx, time.Now())
	if err != nil {
		s.logger.Error("Failed to expire promotions", zap.Error(err))
		return 0, err
	}
	if s.notificationService != nil {
		for i := range expired {
			l := &expired[i]
			message := fmt.Sprintf("The promotion for your listing '%s' has ended.", l.Title)
			if _, err := s.notificationService.CreateNotification(ctx, l.UserID, notification.PromotionExpired, message, &l.ID, nil); err != nil {
				s.logger.Warn("Failed to send promotion expiry notification",
					zap.Error(err), zap.String("listingID", l.ID.String()))
			}
		}
	}
	return len(expired), nil
}
