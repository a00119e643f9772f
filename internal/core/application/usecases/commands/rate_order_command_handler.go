package commands

import (
	"context"
)

// RateOrderCommandHandler handles the business logic for rating orders.
// Loads the order, applies the rating through the aggregate (which also
// marks the delivery as delivered), and persists both changes in a single
// transaction. The storage layer's per-order uniqueness constraint on
// ratings closes the race between two concurrent rating attempts.
type RateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRateOrderCommandHandler creates a handler for order rating operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewRateOrderCommandHandler(uowFactory OrderUoWFactory) RateOrderCommandHandler {
	return RateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order rating command.
// The rating insert and the delivery status update commit or roll back
// together, so a delivered delivery always has a rating behind it.
func (h *RateOrderCommandHandler) Handle(ctx context.Context, cmd RateOrderCommand) error {
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

	if err = aggregate.Rate(cmd.Score(), cmd.Comment()); err != nil {
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
