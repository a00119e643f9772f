package commands

import (
	"context"
	"errors"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/core/domain/model/negotiation"
	"negcom/internal/core/domain/services"
	"negcom/internal/pkg/errs"
)

// OpenNegotiationCommandHandler handles the business logic for opening price
// negotiations. Verifies the listing exists, rejects a second ongoing
// negotiation for the same vehicle by the same buyer, records the buyer's
// opening offer, and immediately attaches the automated seller response. A
// seller acceptance closes the negotiation at the buyer's price in the same
// transaction.
type OpenNegotiationCommandHandler struct {
	uowFactory   UoWFactory
	counterOffer services.CounterOfferPolicy
}

// NewOpenNegotiationCommandHandler creates a handler for opening negotiations.
// Requires a UoWFactory because opening reads the vehicle aggregate while
// writing the negotiation aggregate.
func NewOpenNegotiationCommandHandler(uowFactory UoWFactory) OpenNegotiationCommandHandler {
	return OpenNegotiationCommandHandler{
		uowFactory:   uowFactory,
		counterOffer: services.NewCounterOfferPolicy(),
	}
}

// Handle processes the open negotiation command.
func (h *OpenNegotiationCommandHandler) Handle(ctx context.Context, cmd OpenNegotiationCommand) error {
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
	listing, err := vehicleRepo.Get(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	negotiationRepo := uow.NegotiationRepository()
	_, err = negotiationRepo.GetOngoingForVehicle(ctx, cmd.BuyerID(), cmd.VehicleID())
	if err == nil {
		return errs.NewObjectAlreadyExistsError("negotiation for vehicle", cmd.VehicleID().String())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	agreement, err := negotiation.NewNegotiation(cmd.NegotiationID(), cmd.BuyerID(),
		cmd.VehicleID(), cmd.OfferPrice(), cmd.Message())
	if err != nil {
		return err
	}

	if err = attachSellerResponse(h.counterOffer, agreement, listing.Price(), cmd.OfferPrice()); err != nil {
		return err
	}

	if err = negotiationRepo.Add(ctx, agreement); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// attachSellerResponse records the automated seller response to the latest
// buyer offer. An acceptance also closes the negotiation at the buyer's
// price. Shared by the open and make-offer handlers.
func attachSellerResponse(
	policy services.CounterOfferPolicy,
	agreement *negotiation.Negotiation,
	listPrice kernel.Price,
	offer kernel.Price,
) error {
	response, err := policy.Respond(listPrice, offer)
	if err != nil {
		return err
	}

	if err = agreement.Counter(response.Price, response.Reason); err != nil {
		return err
	}

	if response.Accepted {
		return agreement.Accept()
	}

	return nil
}
