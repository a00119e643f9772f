package commands

import (
	"context"
)

// RefundOrderCommandHandler handles the business logic for order refunds.
// Only paid orders can be refunded.
type RefundOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRefundOrderCommandHandler creates a handler for order refund operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewRefundOrderCommandHandler(uowFactory OrderUoWFactory) RefundOrderCommandHandler {
	return RefundOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order refund command.
func (h *RefundOrderCommandHandler) Handle(ctx context.Context, cmd RefundOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Refund(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
