package commands

import (
	"context"
	"errors"
	"fmt"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/core/domain/model/negotiation"
	"negcom/internal/core/domain/model/order"
	"negcom/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles the business logic for placing orders.
// Prices the order from the vehicle listing, or from the final price of an
// accepted negotiation, rejects a second live order for the same vehicle by
// the same buyer, and creates the order together with its pending delivery.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	cmd, _ := NewPlaceOrderCommand(orderID, buyerID, vehicleID, "456 Oak Avenue", "Abuja")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// Order is now pending payment with a pending delivery attached
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement operations.
// Requires a UoWFactory because placement reads the vehicle (and possibly the
// negotiation) aggregate while writing the order aggregate.
func NewPlaceOrderCommandHandler(uowFactory UoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// Loads the vehicle to take its listed price, or resolves the vehicle and
// the agreed price from an accepted negotiation owned by the buyer, checks
// the buyer has no other pending or paid order for the same vehicle, and
// persists the new order. Uses a transaction to ensure the order is fully
// persisted or rolled back.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
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

	vehicleID := cmd.VehicleID()
	var negotiatedPrice *kernel.Price
	if cmd.IsFromNegotiation() {
		agreement, err := uow.NegotiationRepository().Get(ctx, cmd.NegotiationID())
		if err != nil {
			return err
		}
		if !agreement.BuyerID().IsEqual(cmd.BuyerID()) {
			return errs.NewOperationIsForbiddenErrorWithCause("place order",
				fmt.Errorf("negotiation %s belongs to another buyer", agreement.ID()))
		}
		if agreement.Status() != negotiation.StatusAccepted {
			return errs.NewOperationIsForbiddenErrorWithCause("place order",
				fmt.Errorf("negotiation is %s, not accepted", agreement.Status()))
		}
		vehicleID = agreement.VehicleID()
		negotiatedPrice = agreement.FinalPrice()
	}

	vehicleRepo := uow.VehicleRepository()
	aggregate, err := vehicleRepo.Get(ctx, vehicleID)
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	_, err = orderRepo.GetLiveOrderForVehicle(ctx, cmd.BuyerID(), vehicleID)
	if err == nil {
		return errs.NewObjectAlreadyExistsError("order for vehicle", vehicleID.String())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	// Accepted negotiations always carry a final price; the listing price
	// covers rows restored without one.
	price := aggregate.Price()
	if negotiatedPrice != nil {
		price = *negotiatedPrice
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.BuyerID(), vehicleID,
		price, cmd.Address())
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
