package commands

import (
	"context"
)

// EditVehicleCommandHandler handles the business logic for descriptor edits.
// Each edit is an upsert: a listing that never had a descriptor gains one,
// an existing descriptor is updated in place keeping its identity.
type EditVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewEditVehicleCommandHandler creates a handler for listing edits.
// Requires a VehicleUoWFactory for transactional persistence.
func NewEditVehicleCommandHandler(uowFactory VehicleUoWFactory) EditVehicleCommandHandler {
	return EditVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the listing edit command.
func (h *EditVehicleCommandHandler) Handle(ctx context.Context, cmd EditVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vehicleRepo := uow.VehicleRepository()
	aggregate, err := vehicleRepo.Get(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	if cmd.City() != "" {
		if err = aggregate.ChangeLocation(cmd.City()); err != nil {
			return err
		}
	}

	if cmd.HasGrade() {
		if err = aggregate.ChangeCondition(cmd.Grade()); err != nil {
			return err
		}
	}

	if err = vehicleRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
