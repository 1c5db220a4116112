// File: internal/listing/lifecycle.go
package listing

import (
	"fmt"

	"sabuconnect_backend/internal/common"
)

// Status is the visibility lifecycle of a listing.
type Status string

const (
	StatusPending  Status = "pending"
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusRejected Status = "rejected"
)

// ValidStatus reports whether s is one of the four listing statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusActive, StatusInactive, StatusRejected:
		return true
	}
	return false
}

// PromotionStatus is the promotion lifecycle of a listing.
type PromotionStatus string

const (
	PromotionNone            PromotionStatus = "none"
	PromotionPendingApproval PromotionStatus = "pending_approval"
	PromotionWaitingPayment  PromotionStatus = "waiting_payment"
	PromotionPaymentUploaded PromotionStatus = "payment_uploaded"
	PromotionActive          PromotionStatus = "active"
	PromotionStopped         PromotionStatus = "stopped"
)

// promotionTransitions is the table of legal promotion moves. The cycle runs
// none -> pending_approval -> waiting_payment -> payment_uploaded -> active
// -> stopped. Admin rejection of an uploaded proof moves the listing back to
// waiting_payment. A stopped promotion may only start a fresh cycle.
var promotionTransitions = map[PromotionStatus][]PromotionStatus{
	PromotionNone:            {PromotionPendingApproval},
	PromotionPendingApproval: {PromotionWaitingPayment},
	PromotionWaitingPayment:  {PromotionPaymentUploaded},
	PromotionPaymentUploaded: {PromotionActive, PromotionWaitingPayment},
	PromotionActive:          {PromotionStopped},
	PromotionStopped:         {PromotionPendingApproval},
}

// CanTransitionPromotion reports whether moving from one promotion status to
// another is legal.
func CanTransitionPromotion(from, to PromotionStatus) bool {
	for _, allowed := range promotionTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// transitionPromotion is the single enforcement point for promotion status
// writes. Every promotion mutation in the service goes through here.
func transitionPromotion(l *Listing, to PromotionStatus) error {
	if !CanTransitionPromotion(l.PromotionStatus, to) {
		return common.ErrInvalidState.WithDetails(
			fmt.Sprintf("Promotion cannot move from '%s' to '%s'.", l.PromotionStatus, to))
	}
	l.PromotionStatus = to
	return nil
}

// PromotionPaymentStatus is the verification lifecycle of a promotion payment.
type PromotionPaymentStatus string

const (
	PromotionPaymentWaiting      PromotionPaymentStatus = "waiting_payment"
	PromotionPaymentVerification PromotionPaymentStatus = "verification"
	PromotionPaymentPaid         PromotionPaymentStatus = "paid"
	PromotionPaymentRejected     PromotionPaymentStatus = "payment_rejected"
	PromotionPaymentVerified     PromotionPaymentStatus = "verified"
)

// VerifyDecision is an admin's ruling on an uploaded payment proof.
type VerifyDecision string

const (
	DecisionPaid     VerifyDecision = "paid"
	DecisionRejected VerifyDecision = "rejected"
)

// ValidDecision reports whether d is a known verification decision.
func ValidDecision(d VerifyDecision) bool {
	return d == DecisionPaid || d == DecisionRejected
}
