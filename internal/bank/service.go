// File: internal/bank/service.go
package bank

import (
	"context"

	"sabuconnect_backend/internal/common"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines the interface for bank account business logic.
type Service interface {
	GetActiveAccounts(ctx context.Context) ([]BankAccount, error)

	// Admin methods
	AdminListAccounts(ctx context.Context) ([]BankAccount, error)
	AdminCreateAccount(ctx context.Context, req BankAccountRequest) (*BankAccount, error)
	AdminUpdateAccount(ctx context.Context, id uuid.UUID, req BankAccountRequest) (*BankAccount, error)
	AdminDeleteAccount(ctx context.Context, id uuid.UUID) error
	AdminSetDefault(ctx context.Context, id uuid.UUID) (*BankAccount, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new bank account service.
func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) GetActiveAccounts(ctx context.Context) ([]BankAccount, error) {
	accounts, err := s.repo.FindActive(ctx)
	if err != nil {
		s.logger.Error("Failed to list active bank accounts", zap.Error(err))
		return nil, common.ErrInternalServer.WithDetails("Could not retrieve bank accounts.")
	}
	return accounts, nil
}

func (s *service) AdminListAccounts(ctx context.Context) ([]BankAccount, error) {
	accounts, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list bank accounts", zap.Error(err))
		return nil, common.ErrInternalServer.WithDetails("Could not retrieve bank accounts.")
	}
	return accounts, nil
}

func (s *service) AdminCreateAccount(ctx context.Context, req BankAccountRequest) (*BankAccount, error) {
	account := &BankAccount{
		BankName:      req.BankName,
		AccountName:   req.AccountName,
		AccountNumber: req.AccountNumber,
		IsActive:      true,
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	if err := s.repo.Create(ctx, account); err != nil {
		s.logger.Error("Failed to create bank account", zap.Error(err))
		return nil, common.ErrInternalServer.WithDetails("Could not create bank account.")
	}
	s.logger.Info("Bank account created", zap.String("id", account.ID.String()))
	return account, nil
}

func (s *service) AdminUpdateAccount(ctx context.Context, id uuid.UUID, req BankAccountRequest) (*BankAccount, error) {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	account.BankName = req.BankName
	account.AccountName = req.AccountName
	account.AccountNumber = req.AccountNumber
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	if err := s.repo.Update(ctx, account); err != nil {
		s.logger.Error("Failed to update bank account", zap.Error(err), zap.String("id", id.String()))
		return nil, common.ErrInternalServer.WithDetails("Could not update bank account.")
	}
	return account, nil
}

func (s *service) AdminDeleteAccount(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Bank account deleted", zap.String("id", id.String()))
	return nil
}

func (s *service) AdminSetDefault(ctx context.Context, id uuid.UUID) (*BankAccount, error) {
	account, err := s.repo.SetDefault(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Default bank account changed", zap.String("id", id.String()))
	return account, nil
}
