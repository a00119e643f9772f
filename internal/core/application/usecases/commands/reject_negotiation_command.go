package commands

import (
	"errors"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/pkg/guard"
)

var ErrRejectNegotiationCommandIsNotConstructed = errors.New(
	"RejectNegotiationCommand must be created via NewRejectNegotiationCommand constructor",
)

// RejectNegotiationCommand represents a buyer walking away from their
// negotiation. A rejected negotiation accepts no further offers.
type RejectNegotiationCommand struct { //nolint:recvcheck //using for validation
	negotiationID kernel.UUID
	buyerID       kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectNegotiationCommand creates a command to reject a negotiation.
func NewRejectNegotiationCommand(negotiationID kernel.UUID, buyerID kernel.UUID) (RejectNegotiationCommand, error) {
	rejectCommand := RejectNegotiationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rejectCommand.setNegotiationID(negotiationID),
		rejectCommand.setBuyerID(buyerID),
	); err != nil {
		return RejectNegotiationCommand{}, err
	}

	return rejectCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRejectNegotiationCommandIsNotConstructed if validation fails.
func (c RejectNegotiationCommand) Validate() error {
	return c.guard.Validate(ErrRejectNegotiationCommandIsNotConstructed)
}

// NegotiationID returns the identifier of the negotiation being rejected.
func (c RejectNegotiationCommand) NegotiationID() kernel.UUID {
	return c.negotiationID
}

// BuyerID returns the identifier of the rejecting buyer.
func (c RejectNegotiationCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

func (c *RejectNegotiationCommand) setNegotiationID(negotiationID kernel.UUID) error {
	if err := negotiationID.Validate(); err != nil {
		return err
	}

	c.negotiationID = negotiationID
	return nil
}

func (c *RejectNegotiationCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	c.buyerID = buyerID
	return nil
}
