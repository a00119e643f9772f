package negotiation

import (
	"fmt"

	"negcom/internal/pkg/errs"
)

// Status represents the lifecycle state of a negotiation.
//
// State transitions:
//
//	Ongoing ──┬──> Accepted
//	          │
//	          └──> Rejected
//
// Accepted and Rejected are terminal states.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusOngoing is the initial status while offers are being traded.
	StatusOngoing

	// StatusAccepted indicates the latest offer was accepted; the
	// negotiation carries a final price from this point on.
	StatusAccepted

	// StatusRejected indicates the negotiation ended without agreement.
	StatusRejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "unknown",
		StatusOngoing:  "ongoing",
		StatusAccepted: "accepted",
		StatusRejected: "rejected",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusOngoing:  "ongoing",
		StatusAccepted: "accepted",
		StatusRejected: "rejected",
	}
}

// StatusFromString parses a wire-format status name.
// Used when restoring negotiations from storage.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("negotiation status",
		fmt.Errorf("%q is not a valid negotiation status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are ongoing, accepted and rejected; StatusUnknown (0) and
// any other values are invalid. Used when restoring negotiations from storage.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("negotiation status",
			fmt.Errorf("%d is not a valid negotiation status", s))
	}
	return nil
}

// String returns the lowercase name of the status ("ongoing", "accepted",
// "rejected"), or "unknown" for invalid values.
// Implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Accept transitions the status to StatusAccepted.
//
// Valid transitions:
//   - Ongoing -> Accepted
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Accept() (Status, error) {
	if s != StatusOngoing {
		return 0, errs.NewValueIsInvalidErrorWithCause("negotiation status",
			fmt.Errorf("%s is not a valid status to accept", s.String()))
	}

	return StatusAccepted, nil
}

// Reject transitions the status to StatusRejected.
//
// Valid transitions:
//   - Ongoing -> Rejected
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Reject() (Status, error) {
	if s != StatusOngoing {
		return 0, errs.NewValueIsInvalidErrorWithCause("negotiation status",
			fmt.Errorf("%s is not a valid status to reject", s.String()))
	}

	return StatusRejected, nil
}
