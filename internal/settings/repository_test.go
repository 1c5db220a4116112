// File: internal/settings/repository_test.go
package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupSettingsRepoTest(t *testing.T) (Repository, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrator().DropTable(&SiteSettings{}))
	require.NoError(t, db.AutoMigrate(&SiteSettings{}))
	return NewGORMRepository(db), db
}

func TestGet_CreatesSingletonLazily(t *testing.T) {
	repo, db := setupSettingsRepoTest(t)
	ctx := context.Background()

	settings, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, SiteSettingsID, settings.ID)
	assert.Equal(t, "SABUConnect", settings.SiteName)

	// repeated reads never create a second row
	_, err = repo.Get(ctx)
	require.NoError(t, err)
	var count int64
	require.NoError(t, db.Model(&SiteSettings{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSave_KeepsFixedID(t *testing.T) {
	repo, db := setupSettingsRepoTest(t)
	ctx := context.Background()

	settings, err := repo.Get(ctx)
	require.NoError(t, err)

	settings.SiteName = "SABUConnect Marketplace"
	settings.ID = "something_else"
	require.NoError(t, repo.Save(ctx, settings))

	var count int64
	require.NoError(t, db.Model(&SiteSettings{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	stored, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "SABUConnect Marketplace", stored.SiteName)
}
