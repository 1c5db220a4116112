// File: internal/bank/model.go
package bank

import (
	"time"

	"sabuconnect_backend/internal/common"

	"github.com/google/uuid"
)

// BankAccount is a transfer destination shown to providers paying for ads
// and promotions. At most one account is the default at any time.
type BankAccount struct {
	common.BaseModel
	BankName      string `gorm:"type:varchar(100);not null"`
	AccountName   string `gorm:"type:varchar(150);not null"`
	AccountNumber string `gorm:"type:varchar(50);not null"`
	IsActive      bool   `gorm:"not null;default:true"`
	IsDefault     bool   `gorm:"not null;default:false;index:idx_bank_accounts_default"`
}

// TableName specifies the table name for the BankAccount model.
func (BankAccount) TableName() string {
	return "bank_accounts"
}

// --- DTOs ---

// BankAccountRequest for admin creating or updating bank accounts.
type BankAccountRequest struct {
	BankName      string `json:"bank_name" binding:"required,max=100"`
	AccountName   string `json:"account_name" binding:"required,max=150"`
	AccountNumber string `json:"account_number" binding:"required,max=50"`
	IsActive      *bool  `json:"is_active,omitempty"`
}

// BankAccountResponse shapes a bank account for API responses.
type BankAccountResponse struct {
	ID            uuid.UUID `json:"id"`
	BankName      string    `json:"bank_name"`
	AccountName   string    `json:"account_name"`
	AccountNumber string    `json:"account_number"`
	IsActive      bool      `json:"is_active"`
	IsDefault     bool      `json:"is_default"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToBankAccountResponse converts a BankAccount to its DTO.
func ToBankAccountResponse(b *BankAccount) BankAccountResponse {
	return BankAccountResponse{
		ID:            b.ID,
		BankName:      b.BankName,
		AccountName:   b.AccountName,
		AccountNumber: b.AccountNumber,
		IsActive:      b.IsActive,
		IsDefault:     b.IsDefault,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
