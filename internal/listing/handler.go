// File: internal/listing/handler.go
package listing

import (
	"errors"

	"sabuconnect_backend/internal/common"
	"sabuconnect_backend/internal/filestorage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for listing handlers.
type Handler struct {
	service     Service
	fileStorage *filestorage.Service
	logger      *zap.Logger
}

// NewHandler creates a new listing handler.
func NewHandler(service Service, fileStorage *filestorage.Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, fileStorage: fileStorage, logger: logger}
}

// RegisterRoutes sets up the routes for listing operations.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc, providerRoleMW gin.HandlerFunc, adminRoleMW gin.HandlerFunc) {
	listingGroup := router.Group("/listings")
	{
		listingGroup.GET("", h.listActive)
		listingGroup.GET("/:slug", h.getBySlug)
		listingGroup.POST("/:slug", h.recordView)
	}

	providerGroup := router.Group("/provider/listings")
	providerGroup.Use(authMW)
	providerGroup.Use(providerRoleMW)
	{
		providerGroup.GET("", h.getOwnListings)
		providerGroup.POST("", h.createListing)
		providerGroup.PUT("/:id", h.updateListing)
		providerGroup.DELETE("/:id", h.deleteListing)
		providerGroup.POST("/:id/promote", h.requestPromotion)
		providerGroup.POST("/:id/upload-proof", h.uploadPromotionProof)
		providerGroup.POST("/:id/stop-promotion", h.stopPromotion)
	}

	adminGroup := router.Group("/admin/listings")
	adminGroup.Use(authMW)
	adminGroup.Use(adminRoleMW)
	{
		adminGroup.GET("", h.adminList)
		adminGroup.PATCH("/:id", h.adminSetStatus)
		adminGroup.POST("/:id/promotion/approve", h.adminApprovePromotion)
		adminGroup.POST("/:id/promotion/verify", h.adminVerifyPromotion)
	}
}

func parseListQuery(c *gin.Context) ListQuery {
	page, pageSize := common.GetPaginationParams(c)
	q := ListQuery{
		District:   c.Query("district"),
		Search:     c.Query("search"),
		Pagination: common.PaginationQuery{Page: page, PageSize: pageSize},
	}
	if raw := c.Query("category_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			q.CategoryID = &id
		}
	}
	if raw := c.Query("village_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			q.VillageID = &id
		}
	}
	return q
}

func (h *Handler) listActive(c *gin.Context) {
	q := parseListQuery(c)
	listings, pagination, err := h.service.ListActive(c.Request.Context(), q)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	responses := make([]ListingResponse, len(listings))
	for i := range listings {
		responses[i] = ToListingResponse(&listings[i], false)
	}
	common.RespondPaginated(c, "Listings retrieved successfully.", responses, pagination)
}

func (h *Handler) getBySlug(c *gin.Context) {
	l, err := h.service.GetPublicBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Listing retrieved successfully.", ToListingResponse(l, false))
}

func (h *Handler) recordView(c *gin.Context) {
	if err := h.service.RecordView(c.Request.Context(), c.Param("slug")); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "View recorded.", gin.H{"success": true})
}

// --- Provider ---

func (h *Handler) createListing(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == uuid.Nil {
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}
	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}
	l, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondCreated(c, "Listing submitted for review.", ToListingResponse(l, true))
}

func (h *Handler) getOwnListings(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	if userID == uuid.Nil {
		common.RespondWithError(c, common.ErrUnauthorized)
		return
	}
	page, pageSize := common.GetPaginationParams(c)
	listings, pagination, err := h.service.GetOwn(c.Request.Context(), userID,
		common.PaginationQuery{Page: page, PageSize: pageSize})
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	responses := make([]ListingResponse, len(listings))
	for i := range listings {
		responses[i] = ToListingResponse(&listings[i], true)
	}
	common.RespondPaginated(c, "Listings retrieved successfully.", responses, pagination)
}

func (h *Handler) listingIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid listing ID format."))
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) updateListing(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	listingID, ok := h.listingIDParam(c)
	if !ok {
		return
	}
	var req UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}
	l, err := h.service.Update(c.Request.Context(), listingID, userID, req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Listing updated successfully.", ToListingResponse(l, true))
}

func (h *Handler) deleteListing(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	listingID, ok := h.listingIDParam(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), listingID, userID); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondNoContent(c)
}

func (h *Handler) requestPromotion(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	listingID, ok := h.listingIDParam(c)
	if !ok {
		return
	}
	l, err := h.service.RequestPromotion(c.Request.Context(), listingID, userID)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Promotion request submitted.", ToListingResponse(l, true))
}

func (h *Handler) uploadPromotionProof(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	listingID, ok := h.listingIDParam(c)
	if !ok {
		return
	}
	fileHeader, err := c.FormFile("proof")
	if err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("A 'proof' file is required."))
		return
	}
	proofPath, err := h.fileStorage.Save(fileHeader, "promotion-proofs")
	if err != nil {
		h.logger.Error("Failed to store promotion proof file", zap.Error(err))
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("Could not store the uploaded file."))
		return
	}
	payment, err := h.service.UploadPromotionProof(c.Request.Context(), listingID, userID, proofPath)
	if err != nil {
		if delErr := h.fileStorage.Delete(proofPath); delErr != nil {
			h.logger.Warn("Failed to remove orphaned proof file", zap.Error(delErr))
		}
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Payment proof uploaded.", ToPromotionPaymentResponse(payment))
}

func (h *Handler) stopPromotion(c *gin.Context) {
	userID := common.GetUserIDFromContext(c)
	listingID, ok := h.listingIDParam(c)
	if !ok {
		return
	}
	if _, err := h.service.StopPromotion(c.Request.Context(), listingID, userID); err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Promotion stopped.", gin.H{"success": true, "message": "Promotion stopped."})
}

// --- Admin ---

func (h *Handler) adminList(c *gin.Context) {
	q := parseListQuery(c)
	if status := c.Query("status"); status != "" {
		q.Status = Status(status)
		if !ValidStatus(q.Status) {
			common.RespondWithError(c, common.ErrBadRequest.WithDetails("Invalid status filter."))
			return
		}
	}
	listings, pagination, err := h.service.AdminList(c.Request.Context(), q)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	responses := make([]ListingResponse, len(listings))
	for i := range listings {
		responses[i] = ToListingResponse(&listings[i], true)
	}
	common.RespondPaginated(c, "Listings retrieved successfully.", responses, pagination)
}

func (h *Handler) adminSetStatus(c *gin.Context) {
	listingID, ok := h.listingIDParam(c)
	if !ok {
		return
	}
	var req AdminSetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("A 'status' field is required."))
		return
	}
	l, err := h.service.AdminSetStatus(c.Request.Context(), listingID, req.Status)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Listing status updated.", ToListingResponse(l, true))
}

func (h *Handler) adminApprovePromotion(c *gin.Context) {
	listingID, ok := h.listingIDParam(c)
	if !ok {
		return
	}
	var req struct {
		Amount float64 `json:"amount" binding:"omitempty,gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		common.RespondWithError(c, common.ErrBadRequest.WithDetails(err.Error()))
		return
	}
	l, err := h.service.AdminApprovePromotion(c.Request.Context(), listingID, req.Amount)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Promotion approved, awaiting payment.", ToListingResponse(l, true))
}

func (h *Handler) adminVerifyPromotion(c *gin.Context) {
	adminID := common.GetUserIDFromContext(c)
	listingID, ok := h.listingIDParam(c)
	if !ok {
		return
	}
	var req VerifyPromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			common.RespondWithError(c, common.NewValidationAPIError(common.FormatValidationErrors(ve)))
			return
		}
		common.RespondWithError(c, common.ErrBadRequest.WithDetails("A 'decision' of 'paid' or 'rejected' is required."))
		return
	}
	l, err := h.service.AdminVerifyPromotion(c.Request.Context(), listingID, adminID, VerifyDecision(req.Decision))
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, "Promotion payment verified.", ToListingResponse(l, true))
}
