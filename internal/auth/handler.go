// File: internal/auth/handler.go
package auth

import (
	"errors"

	"sabuconnect_backend/internal/common"
	"sabuconnect_backend/internal/shared"
	"sabuconnect_backend/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for auth handlers.
type Handler struct {
	userService  *user.ServiceImplementation
	tokenService shared.TokenService
	logger       *zap.Logger
}

// NewHandler creates a new auth handler.
func NewHandler(userService *user.ServiceImplementation, tokenService shared.TokenService, logger *zap.Logger) *Handler {
	return &Handler{
		userService:  userService,
		tokenService: tokenService,
		logger:       logger,
	}
}

// RegisterRoutes sets up the auth routes. Register and login are public;
// /auth/me requires a valid token.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", h.register)
		authGroup.POST("/login", h.login)
		authGroup.GET("/me", authMW, h.me)
	}
}

func (h *Handler) register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}

	role := common.Role(req.Role)
	if role == "" {
		role = common.RoleUser
	}

	svUser, err := h.userService.Register(c.Request.Context(), req.Email, req.Password, req.Name, req.Phone, role)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, "Account created successfully.", shared.ToUserResponse(svUser))
}

func (h *Handler) login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}

	dbUser, err := h.userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	accessToken, expiresAt, err := h.tokenService.GenerateAccessToken(dbUser)
	if err != nil {
		common.RespondWithError(c, common.ErrInternalServer)
		return
	}
	refreshToken, _, err := h.tokenService.GenerateRefreshToken(dbUser)
	if err != nil {
		common.RespondWithError(c, common.ErrInternalServer)
		return
	}

	tokens := shared.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		TokenType:    "Bearer",
	}
	common.RespondOK(c, "Login successful.", gin.H{
		"user":   shared.ToUserResponse(user.DBToShared(dbUser)),
		"tokens": tokens,
	})
}

func (h *Handler) me(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	svUser, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Authenticated user retrieved.", shared.ToUserResponse(svUser))
}
