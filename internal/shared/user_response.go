// File: internal/shared/user_response.go
package shared

import (
	"time"

	"github.com/google/uuid"

	"sabuconnect_backend/internal/common"
)

// UserResponse defines the structure for user data sent in API responses.
type UserResponse struct {
	ID         uuid.UUID   `json:"id"`
	Email      string      `json:"email"`
	Name       string      `json:"name"`
	Phone      *string     `json:"phone,omitempty"`
	Role       common.Role `json:"role"`
	IsVerified bool        `json:"is_verified"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// ToUserResponse converts a shared.User to a UserResponse DTO.
func ToUserResponse(svUser *User) UserResponse {
	return UserResponse{
		ID:         svUser.ID,
		Email:      svUser.Email,
		Name:       svUser.Name,
		Phone:      svUser.Phone,
		Role:       svUser.Role,
		IsVerified: svUser.IsVerified,
		CreatedAt:  svUser.CreatedAt,
		UpdatedAt:  svUser.UpdatedAt,
	}
}
