// File: internal/auth/model.go
package auth

// RegisterRequest defines the payload for account registration.
type RegisterRequest struct {
	Email    string  `json:"email" binding:"required,email,max=255"`
	Password string  `json:"password" binding:"required,min=8,max=72"`
	Name     string  `json:"name" binding:"required,min=2,max=150"`
	Phone    *string `json:"phone,omitempty" binding:"omitempty,max=50"`
	Role     string  `json:"role,omitempty" binding:"omitempty,oneof=user provider"`
}

// LoginRequest defines the payload for credential login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
