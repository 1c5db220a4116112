// File: internal/listing/lifecycle_test.go
package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionPromotion(t *testing.T) {
	allStatuses := []PromotionStatus{
		PromotionNone, PromotionPendingApproval, PromotionWaitingPayment,
		PromotionPaymentUploaded, PromotionActive, PromotionStopped,
	}

	allowed := map[PromotionStatus]map[PromotionStatus]bool{
		PromotionNone:            {PromotionPendingApproval: true},
		PromotionPendingApproval: {PromotionWaitingPayment: true},
		PromotionWaitingPayment:  {PromotionPaymentUploaded: true},
		PromotionPaymentUploaded: {PromotionActive: true, PromotionWaitingPayment: true},
		PromotionActive:          {PromotionStopped: true},
		PromotionStopped:         {PromotionPendingApproval: true},
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			got := CanTransitionPromotion(from, to)
			want := allowed[from][to]
			assert.Equalf(t, want, got, "transition %s -> %s", from, to)
		}
	}
}

func TestTransitionPromotion_IllegalMoveDoesNotMutate(t *testing.T) {
	l := &Listing{PromotionStatus: PromotionNone}
	err := transitionPromotion(l, PromotionActive)
	assert.Error(t, err)
	assert.Equal(t, PromotionNone, l.PromotionStatus)
}

func TestValidStatus(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusActive, StatusInactive, StatusRejected} {
		assert.True(t, ValidStatus(s))
	}
	assert.False(t, ValidStatus(Status("archived")))
	assert.False(t, ValidStatus(Status("")))
	assert.False(t, ValidStatus(Status("ACTIVE")))
}

func TestValidDecision(t *testing.T) {
	assert.True(t, ValidDecision(DecisionPaid))
	assert.True(t, ValidDecision(DecisionRejected))
	assert.False(t, ValidDecision(VerifyDecision("maybe")))
}
