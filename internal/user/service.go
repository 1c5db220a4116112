// File: internal/user/service.go
package user

import (
	"context"
	"errors"

	"sabuconnect_backend/internal/common"
	"sabuconnect_backend/internal/config"
	"sabuconnect_backend/internal/shared"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ServiceImplementation implements the shared.Service interface.
type ServiceImplementation struct {
	repo   Repository
	cfg    *config.Config
	logger *zap.Logger
}

var _ shared.Service = (*ServiceImplementation)(nil)

// NewService creates a new user service.
func NewService(repo Repository, cfg *config.Config, logger *zap.Logger) *ServiceImplementation {
	return &ServiceImplementation{
		repo:   repo,
		cfg:    cfg,
		logger: logger,
	}
}

// Register creates a new user with a hashed password. A duplicate email is a
// bad request and never creates a row.
func (s *ServiceImplementation) Register(ctx context.Context, email, password, name string, phone *string, role common.Role) (*shared.User, error) {
	if role != common.RoleUser && role != common.RoleProvider {
		return nil, common.ErrBadRequest.WithDetails("Role must be either 'user' or 'provider'.")
	}

	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrBadRequest.WithDetails("A user with this email already exists.")
	}
	if !errNotFound(err) {
		s.logger.Error("Failed to check existing user by email", zap.Error(err))
		return nil, common.ErrInternalServer
	}

	hashedPassword, err := common.HashPassword(password)
	if err != nil {
		s.logger.Error("Failed to hash password during registration", zap.Error(err))
		return nil, common.ErrInternalServer
	}

	dbUser := &User{
		Email:        email,
		PasswordHash: hashedPassword,
		Name:         name,
		Phone:        phone,
		Role:         role,
	}
	if err := s.repo.Create(ctx, dbUser); err != nil {
		s.logger.Error("Failed to create user", zap.Error(err), zap.String("email", email))
		if apiErr, ok := common.IsAPIError(err); ok {
			return nil, apiErr
		}
		return nil, common.ErrInternalServer
	}

	s.logger.Info("User registered", zap.String("userID", dbUser.ID.String()), zap.String("role", string(role)))
	return DBToShared(dbUser), nil
}

// Authenticate checks email/password credentials and returns the user on success.
func (s *ServiceImplementation) Authenticate(ctx context.Context, email, password string) (*User, error) {
	dbUser, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		// Do not reveal whether the email exists.
		return nil, common.ErrUnauthorized.WithDetails("Invalid email or password.")
	}
	if !common.CheckPassword(password, dbUser.PasswordHash) {
		return nil, common.ErrUnauthorized.WithDetails("Invalid email or password.")
	}
	return dbUser, nil
}

func (s *ServiceImplementation) GetUserByID(ctx context.Context, id uuid.UUID) (*shared.User, error) {
	dbUser, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return DBToShared(dbUser), nil
}

func (s *ServiceImplementation) GetUserByEmail(ctx context.Context, email string) (*shared.User, error) {
	dbUser, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return DBToShared(dbUser), nil
}

// UpdateProfile applies user-editable profile fields.
func (s *ServiceImplementation) UpdateProfile(ctx context.Context, id uuid.UUID, req UpdateProfileRequest) (*shared.User, error) {
	dbUser, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		dbUser.Name = *req.Name
	}
	if req.Phone != nil {
		dbUser.Phone = req.Phone
	}
	if err := s.repo.Update(ctx, dbUser); err != nil {
		s.logger.Error("Failed to update user profile", zap.Error(err), zap.String("userID", id.String()))
		return nil, err
	}
	return DBToShared(dbUser), nil
}

// errNotFound reports whether err is the common not-found sentinel.
func errNotFound(err error) bool {
	var apiErr *common.APIError
	return errors.As(err, &apiErr) && apiErr.Code == common.ErrNotFound.Code
}
