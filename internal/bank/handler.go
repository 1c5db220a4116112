// File: internal/bank/handler.go
package bank

import (
	"errors"

	"sabuconnect_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for bank account handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new bank account handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes sets up the routes for bank account operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc, adminRoleMW gin.HandlerFunc) {
	router.GET("/bank-accounts", h.listActive)

	adminGroup := router.Group("/admin/bank-accounts")
	adminGroup.Use(authMW)
	adminGroup.Use(adminRoleMW)
	{
		adminGroup.GET("", h.adminList)
		adminGroup.POST("", h.adminCreate)
		adminGroup.GET("/:id", h.adminGet)
		adminGroup.PATCH("/:id", h.adminUpdate)
		adminGroup.DELETE("/:id", h.adminDelete)
		adminGroup.POST("/:id/default", h.adminSetDefault)
	}
}

func accountIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid bank account ID format."))
		return uuid.Nil, false
	}
	return id, true
}

func toResponses(accounts []BankAccount) []BankAccountResponse {
	responses := make([]BankAccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToBankAccountResponse(&accounts[i])
	}
	return responses
}

func (h *Handler) listActive(c *gin.Context) {
	accounts, err := h.service.GetActiveAccounts(c.Request.Context())
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Bank accounts retrieved successfully.", toResponses(accounts))
}

func (h *Handler) adminList(c *gin.Context) {
	accounts, err := h.service.AdminListAccounts(c.Request.Context())
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Bank accounts retrieved successfully.", toResponses(accounts))
}

func (h *Handler) adminGet(c *gin.Context) {
	accountID, ok := accountIDParam(c)
	if !ok {
		return
	}
	accounts, err := h.service.AdminListAccounts(c.Request.Context())
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	for i := range accounts {
		if accounts[i].ID == accountID {
			common.RespondOK(c, "Bank account retrieved successfully.", ToBankAccountResponse(&accounts[i]))
			return
		}
	}
	common.RespondWithError(c, common.ErrNotFound.WithDetails("Bank account not found."))
}

func (h *Handler) adminCreate(c *gin.Context) {
	var req BankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}
	account, err := h.service.AdminCreateAccount(c.Request.Context(), req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, "Bank account created successfully.", ToBankAccountResponse(account))
}

func (h *Handler) adminUpdate(c *gin.Context) {
	accountID, ok := accountIDParam(c)
	if !ok {
		return
	}
	var req BankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}
	account, err := h.service.AdminUpdateAccount(c.Request.Context(), accountID, req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Bank account updated successfully.", ToBankAccountResponse(account))
}

func (h *Handler) adminDelete(c *gin.Context) {
	accountID, ok := accountIDParam(c)
	if !ok {
		return
	}
	if err := h.service.AdminDeleteAccount(c.Request.Context(), accountID); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondNoContent(c)
}

func (h *Handler) adminSetDefault(c *gin.Context) {
	accountID, ok := accountIDParam(c)
	if !ok {
		return
	}
	account, err := h.service.AdminSetDefault(c.Request.Context(), accountID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Default bank account updated.", ToBankAccountResponse(account))
}
