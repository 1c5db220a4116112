// File: internal/notification/service.go
package notification

import (
	"context"

	"sabuconnect_backend/internal/common"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines the interface for notification-related business logic.
type Service interface {
	CreateNotification(ctx context.Context, userID uuid.UUID, nType Type, message string, relatedListingID, relatedAdID *uuid.UUID) (*Notification, error)
	GetUserNotifications(ctx context.Context, userID uuid.UUID, onlyUnread bool, pagination common.PaginationQuery) ([]Notification, *common.Pagination, error)
	MarkNotificationRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllNotificationsRead(ctx context.Context, userID uuid.UUID) (int64, error)
	GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new notification service.
func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{repo: repo, logger: logger}
}

// CreateNotification is fire-and-forget from the caller's point of view:
// callers log and swallow the error so a notification failure never rolls
// back the domain write that triggered it.
func (s *service) CreateNotification(ctx context.Context, userID uuid.UUID, nType Type, message string, relatedListingID, relatedAdID *uuid.UUID) (*Notification, error) {
	n := &Notification{
		UserID:           userID,
		Type:             nType,
		Message:          message,
		RelatedListingID: relatedListingID,
		RelatedAdID:      relatedAdID,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		s.logger.Error("Failed to create notification",
			zap.Error(err),
			zap.String("userID", userID.String()),
			zap.String("type", string(nType)))
		return nil, err
	}
	return n, nil
}

func (s *service) GetUserNotifications(ctx context.Context, userID uuid.UUID, onlyUnread bool, pq common.PaginationQuery) ([]Notification, *common.Pagination, error) {
	notifications, total, err := s.repo.FindByUser(ctx, userID, onlyUnread, pq)
	if err != nil {
		s.logger.Error("Failed to fetch notifications", zap.Error(err), zap.String("userID", userID.String()))
		return nil, nil, common.ErrInternalServer.WithDetails("Could not retrieve notifications.")
	}
	pagination := common.NewPagination(total, pq.Page, pq.PageSize)
	return notifications, pagination, nil
}

func (s *service) MarkNotificationRead(ctx context.Context, id, userID uuid.UUID) error {
	return s.repo.MarkRead(ctx, id, userID)
}

func (s *service) MarkAllNotificationsRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.MarkAllRead(ctx, userID)
}

func (s *service) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}
