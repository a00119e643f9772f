package commands

import (
	"errors"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/core/domain/model/vehicle"
	"negcom/internal/pkg/errs"
	"negcom/internal/pkg/guard"
)

var ErrCreateVehicleCommandIsNotConstructed = errors.New(
	"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
)

// CreateVehicleCommand represents a request to publish a new vehicle listing.
// Carries the full set of listing attributes plus the location city and
// condition grade that seed the listing's descriptors.
type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID    kernel.UUID
	vehicleMake  string
	model        string
	year         int
	mileage      int
	engineType   string
	transmission string
	bodyType     string
	color        string
	priceCents   int64
	city         string
	grade        vehicle.ConditionGrade

	guard guard.ConstructorGuard
}

// NewCreateVehicleCommand creates a command to publish a vehicle listing.
// Validates the identifier, requires the make and model, and parses the
// condition grade name. The remaining attributes are validated by the
// vehicle aggregate when the handler constructs it.
func NewCreateVehicleCommand(
	vehicleID kernel.UUID,
	vehicleMake string,
	model string,
	year int,
	mileage int,
	engineType string,
	transmission string,
	bodyType string,
	color string,
	priceCents int64,
	city string,
	gradeName string,
) (CreateVehicleCommand, error) {
	vehicleCommand := CreateVehicleCommand{
		year:         year,
		mileage:      mileage,
		engineType:   engineType,
		transmission: transmission,
		bodyType:     bodyType,
		color:        color,
		priceCents:   priceCents,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		vehicleCommand.setVehicleID(vehicleID),
		vehicleCommand.setMake(vehicleMake),
		vehicleCommand.setModel(model),
		vehicleCommand.setCity(city),
		vehicleCommand.setGrade(gradeName),
	); err != nil {
		return CreateVehicleCommand{}, err
	}

	return vehicleCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateVehicleCommandIsNotConstructed if validation fails.
func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

// VehicleID returns the unique identifier for the listing.
func (c CreateVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Make returns the vehicle manufacturer name.
func (c CreateVehicleCommand) Make() string {
	return c.vehicleMake
}

// Model returns the vehicle model name.
func (c CreateVehicleCommand) Model() string {
	return c.model
}

// Year returns the vehicle model year.
func (c CreateVehicleCommand) Year() int {
	return c.year
}

// Mileage returns the vehicle mileage.
func (c CreateVehicleCommand) Mileage() int {
	return c.mileage
}

// EngineType returns the engine type attribute.
func (c CreateVehicleCommand) EngineType() string {
	return c.engineType
}

// Transmission returns the transmission attribute.
func (c CreateVehicleCommand) Transmission() string {
	return c.transmission
}

// BodyType returns the body type attribute.
func (c CreateVehicleCommand) BodyType() string {
	return c.bodyType
}

// Color returns the color attribute.
func (c CreateVehicleCommand) Color() string {
	return c.color
}

// PriceCents returns the listed price in cents.
func (c CreateVehicleCommand) PriceCents() int64 {
	return c.priceCents
}

// City returns the city for the listing's location descriptor.
func (c CreateVehicleCommand) City() string {
	return c.city
}

// Grade returns the condition grade for the listing's condition descriptor.
func (c CreateVehicleCommand) Grade() vehicle.ConditionGrade {
	return c.grade
}

func (c *CreateVehicleCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *CreateVehicleCommand) setMake(vehicleMake string) error {
	if vehicleMake == "" {
		return errs.NewValueIsRequiredError("make")
	}

	c.vehicleMake = vehicleMake
	return nil
}

func (c *CreateVehicleCommand) setModel(model string) error {
	if model == "" {
		return errs.NewValueIsRequiredError("model")
	}

	c.model = model
	return nil
}

func (c *CreateVehicleCommand) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}

	c.city = city
	return nil
}

func (c *CreateVehicleCommand) setGrade(gradeName string) error {
	grade, err := vehicle.ConditionGradeFromString(gradeName)
	if err != nil {
		return err
	}

	c.grade = grade
	return nil
}
