package commands

import (
	"errors"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/core/domain/model/vehicle"
	"negcom/internal/pkg/errs"
	"negcom/internal/pkg/guard"
)

var (
	ErrEditVehicleCommandIsNotConstructed = errors.New(
		"EditVehicleCommand must be created via NewEditVehicleCommand constructor",
	)
	ErrNothingToEdit = errors.New("at least one of city or condition grade must be provided")
)

// EditVehicleCommand represents a request to update a listing's descriptors.
// Either descriptor may be edited independently: an empty city leaves the
// location untouched, an empty grade name leaves the condition untouched.
// At least one must be provided.
type EditVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID
	city      string
	grade     vehicle.ConditionGrade
	hasGrade  bool

	guard guard.ConstructorGuard
}

// NewEditVehicleCommand creates a command to edit a listing's location city
// and condition grade. Empty values mean "leave unchanged".
func NewEditVehicleCommand(vehicleID kernel.UUID, city string, gradeName string) (EditVehicleCommand, error) {
	editCommand := EditVehicleCommand{
		city:  city,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		editCommand.setVehicleID(vehicleID),
		editCommand.setGrade(gradeName),
	); err != nil {
		return EditVehicleCommand{}, err
	}

	if city == "" && !editCommand.hasGrade {
		return EditVehicleCommand{}, errs.NewValueIsRequiredErrorWithCause("city, grade", ErrNothingToEdit)
	}

	return editCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEditVehicleCommandIsNotConstructed if validation fails.
func (c EditVehicleCommand) Validate() error {
	return c.guard.Validate(ErrEditVehicleCommandIsNotConstructed)
}

// VehicleID returns the identifier of the listing being edited.
func (c EditVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// City returns the new location city, or empty when unchanged.
func (c EditVehicleCommand) City() string {
	return c.city
}

// Grade returns the new condition grade. Valid only when HasGrade is true.
func (c EditVehicleCommand) Grade() vehicle.ConditionGrade {
	return c.grade
}

// HasGrade reports whether a condition grade change was requested.
func (c EditVehicleCommand) HasGrade() bool {
	return c.hasGrade
}

func (c *EditVehicleCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *EditVehicleCommand) setGrade(gradeName string) error {
	if gradeName == "" {
		return nil
	}

	grade, err := vehicle.ConditionGradeFromString(gradeName)
	if err != nil {
		return err
	}

	c.grade = grade
	c.hasGrade = true
	return nil
}
