package commands

import (
	"context"
	"time"
)

// ExpireStaleOrdersCommandHandler handles the periodic expiration sweep.
// Cancels every pending order that has outlived the maximum age in one
// transaction. An empty sweep is a successful no-op.
type ExpireStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewExpireStaleOrdersCommandHandler creates a handler for the expiration
// sweep. Requires an OrderUoWFactory for transactional persistence.
func NewExpireStaleOrdersCommandHandler(uowFactory OrderUoWFactory) ExpireStaleOrdersCommandHandler {
	return ExpireStaleOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the expiration sweep command.
func (h *ExpireStaleOrdersCommandHandler) Handle(ctx context.Context, cmd ExpireStaleOrdersCommand) error {
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
	cutoff := time.Now().Add(-cmd.MaxAge())
	stale, err := orderRepo.GetAllPendingOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, aggregate := range stale {
		if err = aggregate.Cancel(); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
