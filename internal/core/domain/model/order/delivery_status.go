package order

import (
	"fmt"

	"negcom/internal/pkg/errs"
)

// DeliveryStatus represents the shipping state of an order's delivery record.
//
// State transitions:
//
//	Pending ──> InTransit ──> Delivered
//	    └───────────────────────┘
//
// Delivered is reached through the buyer's rating action; a separate
// carrier-driven status feed is a deferred enhancement, so Pending may move
// straight to Delivered.
type DeliveryStatus int

const (
	// DeliveryUnknown represents an invalid or undefined status.
	DeliveryUnknown DeliveryStatus = iota

	// DeliveryPending is the initial status assigned at order placement.
	DeliveryPending

	// DeliveryInTransit indicates the vehicle is on its way to the buyer.
	DeliveryInTransit

	// DeliveryDelivered indicates the purchase cycle completed.
	// This is a terminal state.
	DeliveryDelivered
)

func getDeliveryStatusStrings() map[DeliveryStatus]string {
	return map[DeliveryStatus]string{
		DeliveryUnknown:   "unknown",
		DeliveryPending:   "pending",
		DeliveryInTransit: "in_transit",
		DeliveryDelivered: "delivered",
	}
}

func getValidDeliveryStatusStrings() map[DeliveryStatus]string {
	//nolint:exhaustive // DeliveryUnknown is intentionally excluded as it's invalid
	return map[DeliveryStatus]string{
		DeliveryPending:   "pending",
		DeliveryInTransit: "in_transit",
		DeliveryDelivered: "delivered",
	}
}

// DeliveryStatusFromString parses a wire-format status name.
// Used when restoring deliveries from storage.
func DeliveryStatusFromString(s string) (DeliveryStatus, error) {
	for status, str := range getValidDeliveryStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return DeliveryUnknown, errs.NewValueIsInvalidErrorWithCause("delivery status",
		fmt.Errorf("%q is not a valid delivery status", s))
}

// Validate checks if the DeliveryStatus value is valid.
// Used when restoring deliveries from storage.
func (s DeliveryStatus) Validate() error {
	if _, ok := getValidDeliveryStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("delivery status",
			fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

// String returns the lowercase name of the status.
// Implements the fmt.Stringer interface.
func (s DeliveryStatus) String() string {
	if str, ok := getDeliveryStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Deliver transitions the status to DeliveryDelivered.
//
// Valid transitions:
//   - Pending -> Delivered
//   - InTransit -> Delivered
//
// Returns (0, error) if the delivery is already delivered or the status is
// invalid.
func (s DeliveryStatus) Deliver() (DeliveryStatus, error) {
	if s != DeliveryPending && s != DeliveryInTransit {
		return 0, errs.NewValueIsInvalidErrorWithCause("delivery status",
			fmt.Errorf("%s is not a valid status to deliver", s.String()))
	}

	return DeliveryDelivered, nil
}
