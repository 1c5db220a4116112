// File: internal/banner/handler.go
package banner

import (
	"errors"

	"sabuconnect_backend/internal/common"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for banner handlers.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler creates a new banner handler.
func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes sets up the routes for banner operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc, adminRoleMW gin.HandlerFunc) {
	router.GET("/banners", h.listVisible)

	adminGroup := router.Group("/admin/banners")
	adminGroup.Use(authMW)
	adminGroup.Use(adminRoleMW)
	{
		adminGroup.GET("", h.adminList)
		adminGroup.POST("", h.adminCreate)
		adminGroup.PUT("/:id", h.adminUpdate)
		adminGroup.DELETE("/:id", h.adminDelete)
	}
}

func toResponses(banners []PromoBanner) []BannerResponse {
	responses := make([]BannerResponse, len(banners))
	for i := range banners {
		responses[i] = ToBannerResponse(&banners[i])
	}
	return responses
}

func (h *Handler) listVisible(c *gin.Context) {
	banners, err := h.service.GetVisibleBanners(c.Request.Context(), c.Query("position"))
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Banners retrieved successfully.", toResponses(banners))
}

func (h *Handler) adminList(c *gin.Context) {
	banners, err := h.service.AdminListBanners(c.Request.Context())
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Banners retrieved successfully.", toResponses(banners))
}

func (h *Handler) adminCreate(c *gin.Context) {
	var req BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}
	b, err := h.service.AdminCreateBanner(c.Request.Context(), req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, "Banner created successfully.", ToBannerResponse(b))
}

func (h *Handler) adminUpdate(c *gin.Context) {
	bannerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid banner ID format."))
		return
	}
	var req BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}
	b, err := h.service.AdminUpdateBanner(c.Request.Context(), bannerID, req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Banner updated successfully.", ToBannerResponse(b))
}

func (h *Handler) adminDelete(c *gin.Context) {
	bannerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid banner ID format."))
		return
	}
	if err := h.service.AdminDeleteBanner(c.Request.Context(), bannerID); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondNoContent(c)
}
