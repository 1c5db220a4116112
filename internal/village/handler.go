// File: internal/village/handler.go
package village

import (
	"errors"

	"sabuconnect_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for village handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new village handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes sets up the routes for village operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc, adminRoleMW gin.HandlerFunc) {
	router.GET("/villages", h.lookup)

	adminGroup := router.Group("/admin/villages")
	adminGroup.Use(authMW)
	adminGroup.Use(adminRoleMW)
	{
		adminGroup.GET("", h.adminList)
		adminGroup.POST("", h.adminCreate)
		adminGroup.PUT("/:id", h.adminUpdate)
		adminGroup.DELETE("/:id", h.adminDelete)
	}
}

func (h *Handler) lookup(c *gin.Context) {
	var q SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}
	resp, err := h.service.Lookup(c.Request.Context(), q)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Villages retrieved successfully.", resp)
}

func (h *Handler) adminList(c *gin.Context) {
	villages, err := h.service.AdminListVillages(c.Request.Context())
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	responses := make([]VillageResponse, len(villages))
	for i, v := range villages {
		responses[i] = ToVillageResponse(&v)
	}
	common.RespondOK(c, "Villages retrieved successfully.", responses)
}

func (h *Handler) adminCreate(c *gin.Context) {
	var req AdminVillageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Admin create village: invalid request body", zap.Error(err))
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}
	v, err := h.service.AdminCreateVillage(c.Request.Context(), req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, "Village created successfully.", ToVillageResponse(v))
}

func (h *Handler) adminUpdate(c *gin.Context) {
	villageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid village ID format."))
		return
	}
	var req AdminVillageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}
	v, err := h.service.AdminUpdateVillage(c.Request.Context(), villageID, req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Village updated successfully.", ToVillageResponse(v))
}

func (h *Handler) adminDelete(c *gin.Context) {
	villageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid village ID format."))
		return
	}
	if err := h.service.AdminDeleteVillage(c.Request.Context(), villageID); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondNoContent(c)
}
