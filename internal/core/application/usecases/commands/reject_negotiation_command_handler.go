package commands

import (
	"context"
	"fmt"

	"negcom/internal/pkg/errs"
)

// RejectNegotiationCommandHandler handles a buyer closing their negotiation
// without agreement.
type RejectNegotiationCommandHandler struct {
	uowFactory NegotiationUoWFactory
}

// NewRejectNegotiationCommandHandler creates a handler for negotiation rejection.
func NewRejectNegotiationCommandHandler(uowFactory NegotiationUoWFactory) RejectNegotiationCommandHandler {
	return RejectNegotiationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reject negotiation command.
func (h *RejectNegotiationCommandHandler) Handle(ctx context.Context, cmd RejectNegotiationCommand) error {
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
		return errs.NewOperationIsForbiddenErrorWithCause("reject negotiation",
			fmt.Errorf("negotiation %s belongs to another buyer", agreement.ID()))
	}

	if err = agreement.Reject(); err != nil {
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
