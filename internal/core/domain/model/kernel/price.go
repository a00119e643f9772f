package kernel

import (
	"fmt"

	"negcom/internal/pkg/errs"
	"negcom/internal/pkg/guard"
)

// ErrPriceIsNotConstructed is returned when attempting to use an improperly
// initialized Price. Prices must be created via NewPriceFromCents.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError(
	"price must be created via NewPriceFromCents constructor")

// Price represents a non-negative monetary amount stored as an integer number
// of cents, avoiding floating-point drift in listing prices and order totals.
// Price is an immutable value object; the zero value is invalid.
type Price struct { //nolint:recvcheck //using for validation
	cents int64
	guard guard.ConstructorGuard
}

// NewPriceFromCents creates a Price from an amount in cents.
// The amount must not be negative.
func NewPriceFromCents(cents int64) (Price, error) {
	p := Price{
		guard: guard.NewConstructorGuard(),
	}

	if err := p.setCents(cents); err != nil {
		return Price{}, err
	}

	return p, nil
}

// Validate checks if the Price was properly constructed.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

// Cents returns the amount in cents.
func (p Price) Cents() int64 {
	return p.cents
}

// String formats the price with two decimal places, e.g. "12000.50".
func (p Price) String() string {
	return fmt.Sprintf("%d.%02d", p.cents/100, p.cents%100)
}

// IsEqual compares two prices for equality.
func (p Price) IsEqual(other Price) bool {
	return p.cents == other.cents
}

func (p *Price) setCents(cents int64) error {
	if cents < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d cents is negative", cents))
	}

	p.cents = cents
	return nil
}
