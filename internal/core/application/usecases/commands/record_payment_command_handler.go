package commands

import (
	"context"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/core/domain/model/order"
)

// RecordPaymentCommandHandler handles the business logic for payment attempts.
// Attaches the payment record to the order and settles the order when the
// attempt succeeded. A failed attempt is recorded but leaves the order
// pending so the buyer can retry.
type RecordPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRecordPaymentCommandHandler creates a handler for payment recording.
// Requires an OrderUoWFactory for transactional persistence.
func NewRecordPaymentCommandHandler(uowFactory OrderUoWFactory) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment recording command.
// Only pending orders accept payment attempts, and only one payment record
// may exist per order. The storage layer's unique constraint on the provider
// reference rejects a replayed callback.
func (h *RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
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

	payment, err := order.NewPayment(kernel.NewUUID(), cmd.Method(), cmd.Reference(), cmd.IsSuccessful())
	if err != nil {
		return err
	}

	if err = aggregate.RecordPayment(payment); err != nil {
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
