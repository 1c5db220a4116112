// File: internal/user/model.go
package user

import (
	"sabuconnect_backend/internal/common"

	"github.com/google/uuid"
)

// User represents the user model in the database.
type User struct {
	common.BaseModel
	Email        string      `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email,unique"`
	PasswordHash string      `gorm:"type:varchar(255);not null"`
	Name         string      `gorm:"type:varchar(150);not null"`
	Phone        *string     `gorm:"type:varchar(50)"`
	Role         common.Role `gorm:"type:varchar(50);not null;default:'user'"`
	IsVerified   bool        `gorm:"not null;default:false"`
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}

// Sanitize removes sensitive information like password hash.
func (u *User) Sanitize() {
	u.PasswordHash = ""
}

func (u *User) GetID() uuid.UUID {
	return u.ID
}

func (u *User) GetEmail() string {
	return u.Email
}

func (u *User) GetRole() common.Role {
	return u.Role
}

// --- DTOs ---

// UpdateProfileRequest defines the fields a user may change on their own profile.
type UpdateProfileRequest struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,min=2,max=150"`
	Phone *string `json:"phone,omitempty" binding:"omitempty,max=50"`
}
