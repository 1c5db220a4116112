// File: internal/app/server.go
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"sabuconnect_backend/internal/ad"
	"sabuconnect_backend/internal/auth"
	"sabuconnect_backend/internal/bank"
	"sabuconnect_backend/internal/banner"
	"sabuconnect_backend/internal/category"
	"sabuconnect_backend/internal/common"
	"sabuconnect_backend/internal/config"
	"sabuconnect_backend/internal/filestorage"
	"sabuconnect_backend/internal/jobs"
	"sabuconnect_backend/internal/listing"
	"sabuconnect_backend/internal/middleware"
	"sabuconnect_backend/internal/notification"
	"sabuconnect_backend/internal/settings"
	"sabuconnect_backend/internal/shared"
	"sabuconnect_backend/internal/stats"
	"sabuconnect_backend/internal/user"
	"sabuconnect_backend/internal/village"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server struct holds the dependencies for the HTTP server.
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	cfg        *config.Config
	logger     *zap.Logger

	promotionExpiryJob *jobs.PromotionExpiryJob
}

// NewServer creates a new instance of our application server.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	tokenService shared.TokenService,
	fileStorage *filestorage.Service,
	authHandler *auth.Handler,
	userHandler *user.Handler,
	categoryHandler *category.Handler,
	villageHandler *village.Handler,
	listingHandler *listing.Handler,
	adHandler *ad.Handler,
	bankHandler *bank.Handler,
	bannerHandler *banner.Handler,
	settingsHandler *settings.Handler,
	statsHandler *stats.Handler,
	notificationHandler *notification.Handler,
	promotionExpiryJob *jobs.PromotionExpiryJob,
) (*Server, error) {
	gin.SetMode(cfg.GinMode)
	router := gin.New()

	// --- Global Middleware ---
	router.Use(middleware.ZapLogger(logger, cfg))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{"Content-Length", middleware.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	authMW := middleware.AuthMiddleware(tokenService, logger.Named("AuthMiddleware"))
	providerRoleMW := middleware.RoleAuthMiddleware(common.RoleProvider, common.RoleAdmin)
	adminRoleMW := middleware.RoleAuthMiddleware(common.RoleAdmin)

	// --- Setup Routes ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "message": "SABUConnect API is healthy!"})
	})

	// Uploaded files (listing images, payment proofs, banners) are served
	// straight from local storage.
	router.Static(cfg.UploadBaseURL, fileStorage.StoragePath())

	v1 := router.Group("/api/v1")

	authHandler.RegisterRoutes(v1, authMW)
	userHandler.RegisterRoutes(v1, authMW)
	categoryHandler.RegisterRoutes(v1, authMW, adminRoleMW)
	villageHandler.RegisterRoutes(v1, authMW, adminRoleMW)
	listingHandler.RegisterRoutes(v1, authMW, providerRoleMW, adminRoleMW)
	adHandler.RegisterRoutes(v1, authMW, providerRoleMW, adminRoleMW)
	bankHandler.RegisterRoutes(v1, authMW, adminRoleMW)
	bannerHandler.RegisterRoutes(v1, authMW, adminRoleMW)
	settingsHandler.RegisterRoutes(v1, authMW, adminRoleMW)
	statsHandler.RegisterRoutes(v1)
	notificationHandler.RegisterRoutes(v1, authMW)

	addr := fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		httpServer:         httpServer,
		router:             router,
		cfg:                cfg,
		logger:             logger,
		promotionExpiryJob: promotionExpiryJob,
	}, nil
}

func (s *Server) Start() error {
	if s.promotionExpiryJob != nil {
		if err := s.promotionExpiryJob.SetupAndStart(); err != nil {
			s.logger.Error("Failed to setup and start promotion expiry job", zap.Error(err))
		}
	}

	s.logger.Info("HTTP Server starting",
		zap.String("address", s.httpServer.Addr),
		zap.String("gin_mode", s.cfg.GinMode),
	)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Failed to start HTTP server", zap.Error(err))
		return err
	}
	s.logger.Info("HTTP Server stopped")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Attempting graceful server shutdown...")
	if s.promotionExpiryJob != nil {
		s.promotionExpiryJob.Stop()
	}
	return s.httpServer.Shutdown(ctx)
}
