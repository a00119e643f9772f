package commands

import (
	"errors"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/pkg/guard"
)

var ErrRefundOrderCommandIsNotConstructed = errors.New(
	"RefundOrderCommand must be created via NewRefundOrderCommand constructor",
)

// RefundOrderCommand represents a request to return a buyer's money for a
// settled order. Refunding is terminal: a refunded order cannot be revived.
type RefundOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRefundOrderCommand creates a command to refund a paid order.
func NewRefundOrderCommand(orderID kernel.UUID) (RefundOrderCommand, error) {
	refundCommand := RefundOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := refundCommand.setOrderID(orderID); err != nil {
		return RefundOrderCommand{}, err
	}

	return refundCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRefundOrderCommandIsNotConstructed if validation fails.
func (c RefundOrderCommand) Validate() error {
	return c.guard.Validate(ErrRefundOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being refunded.
func (c RefundOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *RefundOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
