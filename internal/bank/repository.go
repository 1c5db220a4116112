// File: internal/bank/repository.go
package bank

import (
	"context"
	"errors"

	"sabuconnect_backend/internal/common"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines the interface for bank account data operations.
type Repository interface {
	Create(ctx context.Context, account *BankAccount) error
	FindByID(ctx context.Context, id uuid.UUID) (*BankAccount, error)
	FindActive(ctx context.Context) ([]BankAccount, error)
	FindAll(ctx context.Context) ([]BankAccount, error)
	Update(ctx context.Context, account *BankAccount) error
	Delete(ctx context.Context, id uuid.UUID) error
	// SetDefault clears the default flag on every account and sets it on the
	// given one inside a single transaction, so at most one default is ever
	// observable.
	SetDefault(ctx context.Context, id uuid.UUID) (*BankAccount, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewGORMRepository creates a new GORM bank account repository.
func NewGORMRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, account *BankAccount) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *gormRepository) FindByID(ctx context.Context, id uuid.UUID) (*BankAccount, error) {
	var account BankAccount
	err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound.WithDetails("Bank account not found.")
		}
		return nil, err
	}
	return &account, nil
}

func (r *gormRepository) FindActive(ctx context.Context) ([]BankAccount, error) {
	var accounts []BankAccount
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("is_default DESC").
		Order("bank_name ASC").
		Find(&accounts).Error
	return accounts, err
}

func (r *gormRepository) FindAll(ctx context.Context) ([]BankAccount, error) {
	var accounts []BankAccount
	err := r.db.WithContext(ctx).
		Order("is_default DESC").
		Order("bank_name ASC").
		Find(&accounts).Error
	return accounts, err
}

func (r *gormRepository) Update(ctx context.Context, account *BankAccount) error {
	return r.db.WithContext(ctx).Save(account).Error
}

func (r *gormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&BankAccount{BaseModel: common.BaseModel{ID: id}})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrNotFound.WithDetails("Bank account not found or already deleted.")
	}
	return nil
}

func (r *gormRepository) SetDefault(ctx context.Context, id uuid.UUID) (*BankAccount, error) {
	var account BankAccount
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&account, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return common.ErrNotFound.WithDetails("Bank account not found.")
			}
			return err
		}
		if err := tx.Model(&BankAccount{}).
			Where("is_default = ?", true).
			Update("is_default", false).Error; err != nil {
			return err
		}
		account.IsDefault = true
		return tx.Save(&account).Error
	})
	if err != nil {
		return nil, err
	}
	return &account, nil
}
