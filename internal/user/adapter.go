// File: internal/user/adapter.go
package user

import (
	"sabuconnect_backend/internal/shared"
)

// DBToShared converts a GORM user.User model to a shared.User DTO.
func DBToShared(dbUser *User) *shared.User {
	if dbUser == nil {
		return nil
	}
	return &shared.User{
		ID:         dbUser.ID,
		Email:      dbUser.Email,
		Name:       dbUser.Name,
		Phone:      dbUser.Phone,
		Role:       dbUser.Role,
		IsVerified: dbUser.IsVerified,
		CreatedAt:  dbUser.CreatedAt,
		UpdatedAt:  dbUser.UpdatedAt,
	}
}
