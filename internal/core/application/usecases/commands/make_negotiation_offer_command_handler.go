package commands

import (
	"context"
	"fmt"

	"negcom/internal/core/domain/services"
	"negcom/internal/pkg/errs"
)

// MakeNegotiationOfferCommandHandler handles follow-up buyer offers.
// Records the offer on an ongoing negotiation owned by the buyer and
// immediately attaches the automated seller response, which may close the
// negotiation at the buyer's price.
type MakeNegotiationOfferCommandHandler struct {
	uowFactory   UoWFactory
	counterOffer services.CounterOfferPolicy
}

// NewMakeNegotiationOfferCommandHandler creates a handler for buyer offers.
// Requires a UoWFactory because the seller response is priced against the
// vehicle listing.
func NewMakeNegotiationOfferCommandHandler(uowFactory UoWFactory) MakeNegotiationOfferCommandHandler {
	return MakeNegotiationOfferCommandHandler{
		uowFactory:   uowFactory,
		counterOffer: services.NewCounterOfferPolicy(),
	}
}

// Handle processes the buyer offer command.
func (h *MakeNegotiationOfferCommandHandler) Handle(ctx context.Context, cmd MakeNegotiationOfferCommand) error {
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

	negotiationRepo := uow.NegotiationRepository()
	agreement, err := negotiationRepo.Get(ctx, cmd.NegotiationID())
	if err != nil {
		return err
	}

	if !agreement.BuyerID().IsEqual(cmd.BuyerID()) {
		return errs.NewOperationIsForbiddenErrorWithCause("make offer",
			fmt.Errorf("negotiation %s belongs to another buyer", agreement.ID()))
	}

	if err = agreement.MakeOffer(cmd.OfferPrice(), cmd.Message()); err != nil {
		return err
	}

	listing, err := uow.VehicleRepository().Get(ctx, agreement.VehicleID())
	if err != nil {
		return err
	}

	if err = attachSellerResponse(h.counterOffer, agreement, listing.Price(), cmd.OfferPrice()); err != nil {
		return err
	}

	if err = negotiationRepo.Update(ctx, agreement); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
