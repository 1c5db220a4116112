// File: internal/bank/repository_test.go
package bank

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupBankRepoTest(t *testing.T) (Repository, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrator().DropTable(&BankAccount{}))
	require.NoError(t, db.AutoMigrate(&BankAccount{}))
	return NewGORMRepository(db), db
}

func countDefaults(t *testing.T, db *gorm.DB) int64 {
	var count int64
	require.NoError(t, db.Model(&BankAccount{}).Where("is_default = ?", true).Count(&count).Error)
	return count
}

func TestSetDefault_ExactlyOneDefaultSystemWide(t *testing.T) {
	repo, db := setupBankRepoTest(t)
	ctx := context.Background()

	accounts := []BankAccount{
		{BankName: "Bank A", AccountName: "SABU", AccountNumber: "111", IsActive: true, IsDefault: true},
		{BankName: "Bank B", AccountName: "SABU", AccountNumber: "222", IsActive: true},
		{BankName: "Bank C", AccountName: "SABU", AccountNumber: "333", IsActive: true},
	}
	for i := range accounts {
		require.NoError(t, repo.Create(ctx, &accounts[i]))
	}

	// flip the default to each account in turn; the invariant must hold
	// after every flip
	for _, target := range []int{1, 2, 0, 2} {
		updated, err := repo.SetDefault(ctx, accounts[target].ID)
		require.NoError(t, err)
		assert.True(t, updated.IsDefault)
		assert.Equal(t, int64(1), countDefaults(t, db))

		var stored BankAccount
		require.NoError(t, db.First(&stored, "id = ?", accounts[target].ID).Error)
		assert.True(t, stored.IsDefault)
	}
}

func TestSetDefault_UnknownAccount(t *testing.T) {
	repo, db := setupBankRepoTest(t)
	ctx := context.Background()

	account := BankAccount{BankName: "Bank A", AccountName: "SABU", AccountNumber: "111", IsActive: true, IsDefault: true}
	require.NoError(t, repo.Create(ctx, &account))

	_, err := repo.SetDefault(ctx, uuid.New())
	require.Error(t, err)
	// the existing default must survive the failed flip
	assert.Equal(t, int64(1), countDefaults(t, db))
}

func TestFindActive_ExcludesInactive(t *testing.T) {
	repo, _ := setupBankRepoTest(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &BankAccount{BankName: "Live", AccountName: "SABU", AccountNumber: "1", IsActive: true}))
	require.NoError(t, repo.Create(ctx, &BankAccount{BankName: "Closed", AccountName: "SABU", AccountNumber: "2", IsActive: false}))

	accounts, err := repo.FindActive(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "Live", accounts[0].BankName)
}
