// File: internal/ad/handler.go
package ad

import (
	"errors"

	"sabuconnect_backend/internal/common"
	"sabuconnect_backend/internal/filestorage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for ad handlers.
type Handler struct {
	service     Service
	fileStorage *filestorage.Service
	logger      *zap.Logger
}

// NewHandler creates a new ad handler.
func NewHandler(service Service, fileStorage *filestorage.Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, fileStorage: fileStorage, logger: logger}
}

// RegisterRoutes sets up the routes for ad operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc, providerRoleMW gin.HandlerFunc, adminRoleMW gin.HandlerFunc) {
	adGroup := router.Group("/ads")
	adGroup.Use(authMW)
	adGroup.Use(providerRoleMW)
	{
		adGroup.POST("", h.createAd)
		adGroup.POST("/:id/upload-proof", h.uploadProof)
	}

	providerGroup := router.Group("/provider/ads")
	providerGroup.Use(authMW)
	providerGroup.Use(providerRoleMW)
	{
		providerGroup.GET("", h.getOwnAds)
	}

	adminGroup := router.Group("/admin/ads")
	adminGroup.Use(authMW)
	adminGroup.Use(adminRoleMW)
	{
		adminGroup.GET("", h.adminList)
		adminGroup.GET("/:id", h.adminGet)
		adminGroup.POST("/:id/verify", h.adminVerify)
	}
}

func (h *Handler) adIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid ad ID format."))
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) createAd(c *gin.Context) {
	providerID := common.GetUserIDFromContext(c)
	if providerID == uuid.Nil {
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}
	var req CreateAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}
	a, err := h.service.Create(c.Request.Context(), providerID, req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, "Ad created successfully.", ToAdResponse(a))
}

func (h *Handler) getOwnAds(c *gin.Context) {
	providerID := common.GetUserIDFromContext(c)
	if providerID == uuid.Nil {
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}
	page, pageSize := common.GetPaginationParams(c)
	ads, pagination, err := h.service.GetOwn(c.Request.Context(), providerID,
		common.PaginationQuery{Page: page, PageSize: pageSize})
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	responses := make([]AdResponse, len(ads))
	for i := range ads {
		responses[i] = ToAdResponse(&ads[i])
	}
	common.RespondPaginated(c, "Ads retrieved successfully.", responses, pagination)
}

func (h *Handler) uploadProof(c *gin.Context) {
	callerID := common.GetUserIDFromContext(c)
	adID, ok := h.adIDParam(c)
	if !ok {
		return
	}
	fileHeader, err := c.FormFile("proof")
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("A 'proof' file is required."))
		return
	}
	proofPath, err := h.fileStorage.Save(fileHeader, "ad-proofs")
	if err != nil {
		h.logger.Error("Failed to store ad proof file", zap.Error(err))
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Could not store the uploaded file."))
		return
	}
	payment, err := h.service.UploadProof(c.Request.Context(), adID, callerID, proofPath)
	if err != nil {
		if delErr := h.fileStorage.Delete(proofPath); delErr != nil {
			h.logger.Warn("Failed to remove orphaned proof file", zap.Error(delErr))
		}
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Payment proof uploaded.", ToPaymentResponse(payment))
}

func (h *Handler) adminList(c *gin.Context) {
	page, pageSize := common.GetPaginationParams(c)
	status := AdStatus(c.Query("status"))
	ads, pagination, err := h.service.AdminList(c.Request.Context(), status,
		common.PaginationQuery{Page: page, PageSize: pageSize})
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	responses := make([]AdResponse, len(ads))
	for i := range ads {
		responses[i] = ToAdResponse(&ads[i])
	}
	common.RespondPaginated(c, "Ads retrieved successfully.", responses, pagination)
}

func (h *Handler) adminGet(c *gin.Context) {
	adID, ok := h.adIDParam(c)
	if !ok {
		return
	}
	a, err := h.service.AdminGet(c.Request.Context(), adID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Ad retrieved successfully.", ToAdResponse(a))
}

func (h *Handler) adminVerify(c *gin.Context) {
	adminID := common.GetUserIDFromContext(c)
	adID, ok := h.adIDParam(c)
	if !ok {
		return
	}
	var req VerifyAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("A 'decision' of 'paid' or 'rejected' is required."))
		return
	}
	a, err := h.service.Verify(c.Request.Context(), adID, adminID, VerifyDecision(req.Decision))
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Ad payment verified.", ToAdResponse(a))
}
