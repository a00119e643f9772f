package commands

import (
	"context"
	"fmt"

	"negcom/internal/pkg/errs"
)

// AcceptNegotiationCommandHandler handles a buyer accepting the latest offer
// in their negotiation. Acceptance fixes the final price, which order
// placement can then use instead of the listed price.
type AcceptNegotiationCommandHandler struct {
	uowFactory NegotiationUoWFactory
}

// NewAcceptNegotiationCommandHandler creates a handler for negotiation acceptance.
func NewAcceptNegotiationCommandHandler(uowFactory NegotiationUoWFactory) AcceptNegotiationCommandHandler {
	return AcceptNegotiationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the accept negotiation command.
func (h *AcceptNegotiationCommandHandler) Handle(ctx context.Context, cmd AcceptNegotiationCommand) error {
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
		return errs.NewOperationIsForbiddenErrorWithCause("accept negotiation",
			fmt.Errorf("negotiation %s belongs to another buyer", agreement.ID()))
	}

	if err = agreement.Accept(); err != nil {
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
