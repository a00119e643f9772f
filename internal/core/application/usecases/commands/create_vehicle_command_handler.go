package commands

import (
	"context"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/core/domain/model/vehicle"
)

// CreateVehicleCommandHandler handles the business logic for publishing
// vehicle listings. New listings always carry both descriptors.
type CreateVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewCreateVehicleCommandHandler creates a handler for listing creation.
// Requires a VehicleUoWFactory for transactional persistence.
func NewCreateVehicleCommandHandler(uowFactory VehicleUoWFactory) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the listing creation command.
// Constructs the vehicle aggregate, which validates all listing attributes
// and builds the location and condition descriptors.
func (h *CreateVehicleCommandHandler) Handle(ctx context.Context, cmd CreateVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	price, err := kernel.NewPriceFromCents(cmd.PriceCents())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vehicleRepo := uow.VehicleRepository()
	aggregate, err := vehicle.NewVehicle(cmd.VehicleID(), cmd.Make(), cmd.Model(),
		cmd.Year(), cmd.Mileage(), cmd.EngineType(), cmd.Transmission(),
		cmd.BodyType(), cmd.Color(), price, cmd.City(), cmd.Grade())
	if err != nil {
		return err
	}

	if err = vehicleRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
