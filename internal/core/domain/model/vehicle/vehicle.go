package vehicle

import (
	"errors"
	"fmt"
	"time"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/pkg/errs"
)

const (
	// AttributeMaxLen bounds the free-text catalog attributes
	// (make, model, engine type, transmission, body type, color).
	AttributeMaxLen = 80

	// YearMin is the earliest accepted model year.
	YearMin = 1900
)

// ErrVehicleIsNotConstructed is returned when a Vehicle instance was not
// created through the NewVehicle or RestoreVehicle factory methods.
var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")

// Vehicle represents a listing in the sales catalog. It is an aggregate root
// owning two optional one-to-one descriptors: Location (city) and Condition
// (graded state).
//
// Vehicle follows these invariants:
//   - Catalog attributes are required and bounded; the price is non-negative
//   - Creation always attaches both descriptors (no listing without a city
//     and a condition)
//   - Editing upserts descriptors: mutate when present, create when absent
type Vehicle struct {
	id           kernel.UUID
	make         string
	model        string
	year         int
	mileage      int
	engineType   string
	transmission string
	bodyType     string
	color        string
	price        kernel.Price

	location  *Location
	condition *Condition

	isConstructed bool
}

// NewVehicle creates a catalog listing with both descriptors attached.
// All attributes are validated; on any failure nothing is created and the
// error names the offending field.
func NewVehicle(
	id kernel.UUID,
	vehicleMake string,
	model string,
	year int,
	mileage int,
	engineType string,
	transmission string,
	bodyType string,
	color string,
	price kernel.Price,
	city string,
	grade ConditionGrade,
) (*Vehicle, error) {
	vehicle := &Vehicle{
		isConstructed: true,
	}

	if err := errors.Join(
		vehicle.setID(id),
		vehicle.setAttribute("make", &vehicle.make, vehicleMake),
		vehicle.setAttribute("model", &vehicle.model, model),
		vehicle.setYear(year),
		vehicle.setMileage(mileage),
		vehicle.setAttribute("engineType", &vehicle.engineType, engineType),
		vehicle.setAttribute("transmission", &vehicle.transmission, transmission),
		vehicle.setAttribute("bodyType", &vehicle.bodyType, bodyType),
		vehicle.setAttribute("color", &vehicle.color, color),
		vehicle.setPrice(price),
	); err != nil {
		return nil, err
	}

	location, err := NewLocation(kernel.NewUUID(), city)
	if err != nil {
		return nil, err
	}

	condition, err := NewCondition(kernel.NewUUID(), grade)
	if err != nil {
		return nil, err
	}

	vehicle.location = location
	vehicle.condition = condition
	return vehicle, nil
}

// RestoreVehicle reconstructs a vehicle from persistence. The descriptors
// may be nil: older listings predate them, and their absence is a valid
// state surfaced as "no information available" on the read side.
func RestoreVehicle(
	id kernel.UUID,
	vehicleMake string,
	model string,
	year int,
	mileage int,
	engineType string,
	transmission string,
	bodyType string,
	color string,
	price kernel.Price,
	location *Location,
	condition *Condition,
) (*Vehicle, error) {
	vehicle := &Vehicle{
		isConstructed: true,
	}

	if err := errors.Join(
		vehicle.setID(id),
		vehicle.setAttribute("make", &vehicle.make, vehicleMake),
		vehicle.setAttribute("model", &vehicle.model, model),
		vehicle.setYear(year),
		vehicle.setMileage(mileage),
		vehicle.setAttribute("engineType", &vehicle.engineType, engineType),
		vehicle.setAttribute("transmission", &vehicle.transmission, transmission),
		vehicle.setAttribute("bodyType", &vehicle.bodyType, bodyType),
		vehicle.setAttribute("color", &vehicle.color, color),
		vehicle.setPrice(price),
	); err != nil {
		return nil, err
	}

	if location != nil {
		if err := location.Validate(); err != nil {
			return nil, err
		}
		vehicle.location = location
	}
	if condition != nil {
		if err := condition.Validate(); err != nil {
			return nil, err
		}
		vehicle.condition = condition
	}

	return vehicle, nil
}

// Validate ensures the Vehicle instance was properly constructed.
func (v *Vehicle) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVehicleIsNotConstructed
	}

	return nil
}

// IsEqual compares two vehicles by their unique identifiers.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id.IsEqual(other.id)
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// Make returns the manufacturer name.
func (v *Vehicle) Make() string {
	return v.make
}

// Model returns the model name.
func (v *Vehicle) Model() string {
	return v.model
}

// Year returns the model year.
func (v *Vehicle) Year() int {
	return v.year
}

// Mileage returns the odometer reading in kilometers.
func (v *Vehicle) Mileage() int {
	return v.mileage
}

// EngineType returns the engine type, e.g. "petrol" or "diesel".
func (v *Vehicle) EngineType() string {
	return v.engineType
}

// Transmission returns the transmission type.
func (v *Vehicle) Transmission() string {
	return v.transmission
}

// BodyType returns the body type, e.g. "Sedan" or "SUV".
func (v *Vehicle) BodyType() string {
	return v.bodyType
}

// Color returns the exterior color.
func (v *Vehicle) Color() string {
	return v.color
}

// Price returns the listing price.
func (v *Vehicle) Price() kernel.Price {
	return v.price
}

// Location returns the location descriptor, or nil when none exists.
func (v *Vehicle) Location() *Location {
	return v.location
}

// Condition returns the condition descriptor, or nil when none exists.
func (v *Vehicle) Condition() *Condition {
	return v.condition
}

// ChangeLocation upserts the location descriptor: an existing record is
// mutated in place (keeping its identity, so storage updates the single
// existing row), a missing one is created.
func (v *Vehicle) ChangeLocation(city string) error {
	if v.location != nil {
		return v.location.setCity(city)
	}

	location, err := NewLocation(kernel.NewUUID(), city)
	if err != nil {
		return err
	}

	v.location = location
	return nil
}

// ChangeCondition upserts the condition descriptor with the same semantics
// as ChangeLocation.
func (v *Vehicle) ChangeCondition(grade ConditionGrade) error {
	if v.condition != nil {
		return v.condition.setGrade(grade)
	}

	condition, err := NewCondition(kernel.NewUUID(), grade)
	if err != nil {
		return err
	}

	v.condition = condition
	return nil
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setAttribute(name string, field *string, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	if len(value) > AttributeMaxLen {
		return errs.NewValueIsOutOfRangeError(name, len(value), 1, AttributeMaxLen)
	}
	*field = value
	return nil
}

func (v *Vehicle) setYear(year int) error {
	maxYear := time.Now().Year() + 1
	if year < YearMin || year > maxYear {
		return errs.NewValueIsOutOfRangeError("year", year, YearMin, maxYear)
	}
	v.year = year
	return nil
}

func (v *Vehicle) setMileage(mileage int) error {
	if mileage < 0 {
		return errs.NewValueIsInvalidErrorWithCause("mileage",
			fmt.Errorf("%d is negative", mileage))
	}
	v.mileage = mileage
	return nil
}

func (v *Vehicle) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	v.price = price
	return nil
}
