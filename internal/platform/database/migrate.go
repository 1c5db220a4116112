// File: internal/platform/database/migrate.go
package database

import (
	"sabuconnect_backend/internal/ad"
	"sabuconnect_backend/internal/bank"
	"sabuconnect_backend/internal/banner"
	"sabuconnect_backend/internal/category"
	"sabuconnect_backend/internal/listing"
	"sabuconnect_backend/internal/notification"
	"sabuconnect_backend/internal/settings"
	"sabuconnect_backend/internal/user"
	"sabuconnect_backend/internal/village"

	"gorm.io/gorm"
)

// AutoMigrateAll keeps the database schema in sync with the domain models.
func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&category.Category{},
		&village.Village{},
		&listing.Listing{},
		&listing.PromotionPayment{},
		&ad.Ad{},
		&ad.Payment{},
		&bank.BankAccount{},
		&banner.PromoBanner{},
		&settings.SiteSettings{},
		&notification.Notification{},
	)
}
