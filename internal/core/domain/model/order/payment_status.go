package order

import (
	"fmt"

	"negcom/internal/pkg/errs"
)

// PaymentStatus represents the payment lifecycle state of an order.
// It implements a state machine with defined transitions so orders follow
// the correct purchase workflow.
//
// State transitions:
//
//	Pending ──┬──> Paid ──> Refunded
//	          │
//	          └──> Failed
//
// Failed and Refunded are terminal states.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized PaymentStatus values.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending is the initial status when an order is first placed.
	// Orders in this status are waiting for the buyer to complete payment.
	PaymentPending

	// PaymentPaid indicates the buyer's payment has completed successfully.
	// Only paid orders can be rated or refunded.
	PaymentPaid

	// PaymentFailed indicates the order was cancelled or its window expired.
	// This is a terminal state.
	PaymentFailed

	// PaymentRefunded indicates a paid order was refunded.
	// This is a terminal state.
	PaymentRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:  "unknown",
		PaymentPending:  "pending",
		PaymentPaid:     "paid",
		PaymentFailed:   "failed",
		PaymentRefunded: "refunded",
	}
}

func getValidPaymentStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // PaymentUnknown is intentionally excluded as it's invalid
	return map[PaymentStatus]string{
		PaymentPending:  "pending",
		PaymentPaid:     "paid",
		PaymentFailed:   "failed",
		PaymentRefunded: "refunded",
	}
}

// PaymentStatusFromString parses a wire-format status name.
// Used when restoring orders from storage.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getValidPaymentStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("payment status",
		fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks if the PaymentStatus value is valid.
// Valid statuses are pending, paid, failed and refunded; PaymentUnknown (0)
// and any other values are invalid. Used when restoring orders from storage.
func (s PaymentStatus) Validate() error {
	if _, ok := getValidPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the lowercase name of the status ("pending", "paid",
// "failed", "refunded"), or "unknown" for invalid values.
// Implements the fmt.Stringer interface.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Pay transitions the status to PaymentPaid.
//
// Valid transitions:
//   - Pending -> Paid (payment completed)
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s PaymentStatus) Pay() (PaymentStatus, error) {
	if s != PaymentPending {
		return 0, errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%s is not a valid status to pay", s.String()))
	}

	return PaymentPaid, nil
}

// Fail transitions the status to PaymentFailed.
//
// Valid transitions:
//   - Pending -> Failed (cancellation or expiry)
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s PaymentStatus) Fail() (PaymentStatus, error) {
	if s != PaymentPending {
		return 0, errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%s is not a valid status to fail", s.String()))
	}

	return PaymentFailed, nil
}

// Refund transitions the status to PaymentRefunded.
//
// Valid transitions:
//   - Paid -> Refunded
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s PaymentStatus) Refund() (PaymentStatus, error) {
	if s != PaymentPaid {
		return 0, errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%s is not a valid status to refund", s.String()))
	}

	return PaymentRefunded, nil
}
