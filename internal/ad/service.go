// File: internal/ad/service.go
package ad

import (
	"context"
	"fmt"
	"time"

	"sabuconnect_backend/internal/common"
	"sabuconnect_backend/internal/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines the interface for ad-related business logic.
type Service interface {
	Create(ctx context.Context, providerID uuid.UUID, req CreateAdRequest) (*Ad, error)
	GetOwn(ctx context.Context, providerID uuid.UUID, pq common.PaginationQuery) ([]Ad, *common.Pagination, error)
	UploadProof(ctx context.Context, adID, callerID uuid.UUID, proofPath string) (*Payment, error)

	// Admin methods
	AdminList(ctx context.Context, status AdStatus, pq common.PaginationQuery) ([]Ad, *common.Pagination, error)
	AdminGet(ctx context.Context, adID uuid.UUID) (*Ad, error)
	Verify(ctx context.Context, adID, adminID uuid.UUID, decision VerifyDecision) (*Ad, error)
}

type service struct {
	repo                Repository
	notificationService notification.Service
	logger              *zap.Logger
}

// NewService creates a new ad service.
func NewService(repo Repository, notificationService notification.Service, logger *zap.Logger) Service {
	return &service{repo: repo, notificationService: notificationService, logger: logger}
}

// Create submits a new ad. Cash-on-delivery ads go live immediately;
// bank-transfer ads wait for payment verification.
func (s *service) Create(ctx context.Context, providerID uuid.UUID, req CreateAdRequest) (*Ad, error) {
	method := PaymentMethod(req.PaymentMethod)

	a := &Ad{
		Title:         req.Title,
		Description:   req.Description,
		Price:         req.Price,
		PaymentMethod: method,
		PaymentStatus: PaymentUnpaid,
		ProviderID:    providerID,
	}
	switch method {
	case MethodCOD:
		a.Status = AdActive
	case MethodTransfer:
		a.Status = AdWaitingPayment
	default:
		return nil, common.ErrBadRequest.WithDetails(
			fmt.Sprintf("'%s' is not a valid payment method.", req.PaymentMethod))
	}

	if err := s.repo.Create(ctx, a); err != nil {
		s.logger.Error("Failed to create ad", zap.Error(err), zap.String("providerID", providerID.String()))
		return nil, common.ErrInternalServer.WithDetails("Could not create ad.")
	}
	s.logger.Info("Ad created",
		zap.String("id", a.ID.String()),
		zap.String("method", string(method)),
		zap.String("status", string(a.Status)))
	return a, nil
}

func (s *service) GetOwn(ctx context.Context, providerID uuid.UUID, pq common.PaginationQuery) ([]Ad, *common.Pagination, error) {
	ads, total, err := s.repo.FindByProvider(ctx, providerID, pq)
	if err != nil {
		s.logger.Error("Failed to list provider ads", zap.Error(err), zap.String("providerID", providerID.String()))
		return nil, nil, common.ErrInternalServer.WithDetails("Could not retrieve ads.")
	}
	return ads, common.NewPagination(total, pq.Page, pq.PageSize), nil
}

// UploadProof attaches a transfer proof to an ad. The ad must belong to the
// caller, be waiting for payment, and use the transfer method. The unique
// payment row is created on first upload and reused on re-submission.
func (s *service) UploadProof(ctx context.Context, adID, callerID uuid.UUID, proofPath string) (*Payment, error) {
	a, err := s.repo.FindByID(ctx, adID)
	if err != nil {
		return nil, err
	}
	if a.ProviderID != callerID {
		return nil, common.ErrForbidden.WithDetails("You do not own this ad.")
	}
	if a.Status != AdWaitingPayment || a.PaymentMethod != MethodTransfer {
		return nil, common.ErrInvalidState.WithDetails("This ad is not awaiting a transfer payment.")
	}

	payment, err := s.repo.FindPaymentByAdID(ctx, adID)
	if err != nil {
		payment = &Payment{AdID: adID, Method: MethodTransfer}
	}
	payment.ProofImage = &proofPath
	payment.Status = PaymentVerification
	payment.VerifiedBy = nil
	payment.VerifiedAt = nil

	if err := s.repo.SavePayment(ctx, payment); err != nil {
		s.logger.Error("Failed to store ad payment proof", zap.Error(err), zap.String("adID", adID.String()))
		return nil, common.ErrInternalServer.WithDetails("Could not store payment proof.")
	}
	s.logger.Info("Ad payment proof uploaded", zap.String("adID", adID.String()))
	return payment, nil
}

func (s *service) AdminList(ctx context.Context, status AdStatus, pq common.PaginationQuery) ([]Ad, *common.Pagination, error) {
	ads, total, err := s.repo.List(ctx, status, pq)
	if err != nil {
		s.logger.Error("Failed to list ads for admin", zap.Error(err))
		return nil, nil, common.ErrInternalServer.WithDetails("Could not retrieve ads.")
	}
	return ads, common.NewPagination(total, pq.Page, pq.PageSize), nil
}

func (s *service) AdminGet(ctx context.Context, adID uuid.UUID) (*Ad, error) {
	return s.repo.FindByID(ctx, adID)
}

// Verify applies an admin decision to an ad payment. Both the payment and the
// ad are written in one transaction; a rejection reopens the ad for proof
// re-submission.
func (s *service) Verify(ctx context.Context, adID, adminID uuid.UUID, decision VerifyDecision) (*Ad, error) {
	a, err := s.repo.FindByID(ctx, adID)
	if err != nil {
		return nil, err
	}
	payment, err := s.repo.FindPaymentByAdID(ctx, adID)
	if err != nil {
		return nil, common.ErrInvalidState.WithDetails("This ad has no payment to verify.")
	}
	if payment.Status != PaymentVerification {
		return nil, common.ErrInvalidState.WithDetails("This payment is not awaiting verification.")
	}

	var nType notification.Type
	var message string
	switch decision {
	case DecisionPaid:
		now := time.Now()
		payment.Status = PaymentPaid
		payment.VerifiedBy = &adminID
		payment.VerifiedAt = &now
		a.Status = AdActive
		a.PaymentStatus = PaymentPaid
		nType = notification.AdPaymentVerified
		message = fmt.Sprintf("Payment confirmed. Your ad '%s' is now active.", a.Title)
	case DecisionRejected:
		payment.Status = PaymentRejected
		payment.VerifiedBy = &adminID
		payment.VerifiedAt = nil
		a.Status = AdWaitingPayment
		a.PaymentStatus = PaymentRejected
		nType = notification.AdPaymentRejected
		message = fmt.Sprintf("The payment proof for your ad '%s' was rejected. Please upload a new proof.", a.Title)
	default:
		return nil, common.ErrBadRequest.WithDetails(
			fmt.Sprintf("'%s' is not a valid verification decision.", decision))
	}

	if err := s.repo.SaveAdAndPayment(ctx, a, payment); err != nil {
		s.logger.Error("Failed to verify ad payment", zap.Error(err), zap.String("adID", adID.String()))
		return nil, common.ErrInternalServer.WithDetails("Could not verify payment.")
	}
	s.logger.Info("Ad payment verified",
		zap.String("adID", adID.String()),
		zap.String("decision", string(decision)),
		zap.String("adminID", adminID.String()))

	if s.notificationService != nil {
		if _, err := s.notificationService.CreateNotification(ctx, a.ProviderID, nType, message, nil, &a.ID); err != nil {
			s.logger.Warn("Failed to send ad verification notification", zap.Error(err))
		}
	}
	return a, nil
}
