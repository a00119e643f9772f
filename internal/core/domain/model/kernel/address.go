package kernel

import (
	"errors"
	"fmt"

	"negcom/internal/pkg/errs"
	"negcom/internal/pkg/guard"
)

const (
	// AddressStreetMinLen is the minimum length of a delivery street address.
	AddressStreetMinLen = 10
	// AddressStreetMaxLen is the maximum length of a delivery street address.
	AddressStreetMaxLen = 300
	// AddressCityMinLen is the minimum length of a city name.
	AddressCityMinLen = 2
	// AddressCityMaxLen is the maximum length of a city name.
	AddressCityMaxLen = 80
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address. Addresses must be created via NewAddress to ensure
// validity.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address represents a validated delivery address consisting of a street line
// and a city. Address is an immutable value object; once an order is placed
// its delivery address does not change. The zero value is invalid and will
// fail validation - use the constructor to create instances.
//
// Example:
//
//	addr, err := kernel.NewAddress("221B Baker Street", "London")
//	if err != nil {
//	    // Handle validation error
//	}
type Address struct { //nolint:recvcheck //using for validation
	street string
	city   string
	guard  guard.ConstructorGuard
}

// NewAddress creates a new Address with the specified street and city.
// The street must be between AddressStreetMinLen and AddressStreetMaxLen
// characters; the city between AddressCityMinLen and AddressCityMaxLen.
// Returns an error naming the offending field if either bound is violated.
func NewAddress(street string, city string) (Address, error) {
	addr := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(addr.setStreet(street), addr.setCity(city)); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate checks if the Address was properly constructed via NewAddress.
// The zero value of Address is invalid and will fail this validation.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city of the address.
func (a Address) City() string {
	return a.city
}

// String returns a human-readable representation in the form "street, city".
func (a Address) String() string {
	return fmt.Sprintf("%s, %s", a.street, a.city)
}

// IsEqual compares two addresses for equality. Both addresses must be
// properly constructed for the comparison to succeed.
func (a Address) IsEqual(other Address) (bool, error) {
	if err := errors.Join(a.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return a == other, nil
}

// setStreet sets the street with validation.
// Note: pointer receiver used intentionally for self-encapsulated validation
// during construction, while public methods use value receivers.
func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	if len(street) < AddressStreetMinLen || len(street) > AddressStreetMaxLen {
		return errs.NewValueIsOutOfRangeError("street", street, AddressStreetMinLen, AddressStreetMaxLen)
	}

	a.street = street
	return nil
}

// setCity sets the city with validation.
func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	if len(city) < AddressCityMinLen || len(city) > AddressCityMaxLen {
		return errs.NewValueIsOutOfRangeError("city", city, AddressCityMinLen, AddressCityMaxLen)
	}

	a.city = city
	return nil
}
