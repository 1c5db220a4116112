// File: internal/stats/handler.go
package stats

import (
	"fmt"

	"sabuconnect_backend/internal/common"
	"sabuconnect_backend/internal/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler struct holds dependencies for the stats handler.
type Handler struct {
	service Service
	config  *config.Config
	logger  *zap.Logger
}

// NewHandler creates a new stats handler.
func NewHandler(service Service, cfg *config.Config, logger *zap.Logger) *Handler {
	return &Handler{service: service, config: cfg, logger: logger}
}

// RegisterRoutes sets up the public stats route.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/stats", h.getStats)
}

func (h *Handler) getStats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		// Failures carry the zero counts, never a partial tally.
		apiErr, ok := common.IsAPIError(err)
		if !ok {
			apiErr = common.ErrInternalServer
		}
		c.AbortWithStatusJSON(apiErr.StatusCode, apiErr.WithDetails(stats))
		return
	}
	c.Header("Cache-Control", fmt.Sprintf("public, max-age=%d", h.config.StatsCacheMaxAgeSeconds))
	common.RespondOK(c, "Statistics retrieved successfully.", stats)
}
