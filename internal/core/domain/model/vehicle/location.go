package vehicle

import (
	"errors"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/pkg/errs"
)

// ErrLocationIsNotConstructed is returned when a Location instance was not
// created through NewLocation.
var ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation constructor")

// Location records the city where a listed vehicle currently sits.
// At most one exists per vehicle; editing a vehicle mutates the existing
// record in place rather than creating a second one.
type Location struct {
	id   kernel.UUID
	city string

	isConstructed bool
}

// NewLocation creates a location record. The city shares the bounds of
// kernel.Address cities (2 to 80 characters).
func NewLocation(id kernel.UUID, city string) (*Location, error) {
	location := &Location{
		isConstructed: true,
	}

	if err := errors.Join(
		location.setID(id),
		location.setCity(city),
	); err != nil {
		return nil, err
	}

	return location, nil
}

// Validate ensures the Location instance was properly constructed.
func (l *Location) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLocationIsNotConstructed
	}

	return nil
}

// ID returns the location record's unique identifier.
func (l *Location) ID() kernel.UUID {
	return l.id
}

// City returns the city name.
func (l *Location) City() string {
	return l.city
}

func (l *Location) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Location) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	if len(city) < kernel.AddressCityMinLen || len(city) > kernel.AddressCityMaxLen {
		return errs.NewValueIsOutOfRangeError("city", city, kernel.AddressCityMinLen, kernel.AddressCityMaxLen)
	}
	l.city = city
	return nil
}
