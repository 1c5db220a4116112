// File: internal/ad/repository_test.go
package ad

import (
	"context"
	"testing"
	"time"

	"sabuconnect_backend/internal/common"
	"sabuconnect_backend/internal/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupAdRepoTest(t *testing.T) (Repository, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrator().DropTable(&Payment{}, &Ad{}, &user.User{}))
	require.NoError(t, db.AutoMigrate(&user.User{}, &Ad{}, &Payment{}))
	return NewGORMRepository(db), db
}

func TestSaveAdAndPayment_BothRowsCommitted(t *testing.T) {
	repo, db := setupAdRepoTest(t)
	ctx := context.Background()

	a := &Ad{
		Title:         "Tractor rental",
		Description:   "Daily rates",
		Status:        AdWaitingPayment,
		PaymentMethod: MethodTransfer,
		PaymentStatus: PaymentUnpaid,
		ProviderID:    uuid.New(),
	}
	require.NoError(t, repo.Create(ctx, a))

	proof := "ad-proofs/x.jpg"
	payment := &Payment{AdID: a.ID, Method: MethodTransfer, ProofImage: &proof, Status: PaymentVerification}
	require.NoError(t, repo.SavePayment(ctx, payment))

	now := time.Now()
	adminID := uuid.New()
	a.Status = AdActive
	a.PaymentStatus = PaymentPaid
	payment.Status = PaymentPaid
	payment.VerifiedBy = &adminID
	payment.VerifiedAt = &now

	require.NoError(t, repo.SaveAdAndPayment(ctx, a, payment))

	var storedAd Ad
	require.NoError(t, db.First(&storedAd, "id = ?", a.ID).Error)
	var storedPayment Payment
	require.NoError(t, db.First(&storedPayment, "ad_id = ?", a.ID).Error)

	assert.Equal(t, AdActive, storedAd.Status)
	assert.Equal(t, PaymentPaid, storedAd.PaymentStatus)
	assert.Equal(t, PaymentPaid, storedPayment.Status)
	assert.NotNil(t, storedPayment.VerifiedAt)
}

func TestFindPaymentByAdID_NotFound(t *testing.T) {
	repo, _ := setupAdRepoTest(t)
	_, err := repo.FindPaymentByAdID(context.Background(), uuid.New())
	require.Error(t, err)
	apiErr, ok := err.(*common.APIError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
}
