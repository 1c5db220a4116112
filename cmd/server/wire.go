// File: cmd/server/wire.go
//go:build wireinject
// +build wireinject

package main

import (
	"sabuconnect_backend/internal/ad"
	"sabuconnect_backend/internal/app"
	"sabuconnect_backend/internal/auth"
	"sabuconnect_backend/internal/bank"
	"sabuconnect_backend/internal/banner"
	"sabuconnect_backend/internal/category"
	"sabuconnect_backend/internal/config"
	"sabuconnect_backend/internal/jobs"
	"sabuconnect_backend/internal/listing"
	"sabuconnect_backend/internal/notification"
	"sabuconnect_backend/internal/platform/logger"
	"sabuconnect_backend/internal/settings"
	"sabuconnect_backend/internal/shared"
	"sabuconnect_backend/internal/stats"
	"sabuconnect_backend/internal/user"
	"sabuconnect_backend/internal/village"

	"github.com/google/wire"
)

// initializeServer is the main Wire injector.
func initializeServer(cfg *config.Config) (*app.Server, func(), error) {
	wire.Build(
		// Platform layer
		logger.New,
		provideDB,
		provideFileStorage,
		provideCleanup,

		// Auth and users
		auth.NewJWTService,
		user.NewGORMRepository,
		user.NewService,
		wire.Bind(new(shared.Service), new(*user.ServiceImplementation)),
		auth.NewHandler,
		user.NewHandler,

		// Reference data
		category.NewGORMRepository,
		category.NewService,
		category.NewHandler,
		village.NewGORMRepository,
		village.NewService,
		village.NewHandler,

		// Notifications
		notification.NewGORMRepository,
		notification.NewService,
		notification.NewHandler,

		// Listings and promotions
		listing.NewGORMRepository,
		listing.NewService,
		listing.NewHandler,

		// Ads
		ad.NewGORMRepository,
		ad.NewService,
		ad.NewHandler,

		// Payments support and site content
		bank.NewGORMRepository,
		bank.NewService,
		bank.NewHandler,
		banner.NewGORMRepository,
		banner.NewService,
		banner.NewHandler,
		settings.NewGORMRepository,
		settings.NewService,
		settings.NewHandler,
		stats.NewService,
		stats.NewHandler,

		// Jobs
		jobs.NewPromotionExpiryJob,

		// Application layer
		app.NewServer,
	)
	return nil, nil, nil
}
