package commands

import (
	"errors"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/pkg/guard"
)

var ErrAcceptNegotiationCommandIsNotConstructed = errors.New(
	"AcceptNegotiationCommand must be created via NewAcceptNegotiationCommand constructor",
)

// AcceptNegotiationCommand represents a buyer accepting the latest offer in
// their negotiation, fixing the final price.
type AcceptNegotiationCommand struct { //nolint:recvcheck //using for validation
	negotiationID kernel.UUID
	buyerID       kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptNegotiationCommand creates a command to accept a negotiation.
// The buyer identifier is carried for the ownership check.
func NewAcceptNegotiationCommand(negotiationID kernel.UUID, buyerID kernel.UUID) (AcceptNegotiationCommand, error) {
	acceptCommand := AcceptNegotiationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		acceptCommand.setNegotiationID(negotiationID),
		acceptCommand.setBuyerID(buyerID),
	); err != nil {
		return AcceptNegotiationCommand{}, err
	}

	return acceptCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAcceptNegotiationCommandIsNotConstructed if validation fails.
func (c AcceptNegotiationCommand) Validate() error {
	return c.guard.Validate(ErrAcceptNegotiationCommandIsNotConstructed)
}

// NegotiationID returns the identifier of the negotiation being accepted.
func (c AcceptNegotiationCommand) NegotiationID() kernel.UUID {
	return c.negotiationID
}

// BuyerID returns the identifier of the accepting buyer.
func (c AcceptNegotiationCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

func (c *AcceptNegotiationCommand) setNegotiationID(negotiationID kernel.UUID) error {
	if err := negotiationID.Validate(); err != nil {
		return err
	}

	c.negotiationID = negotiationID
	return nil
}

func (c *AcceptNegotiationCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	c.buyerID = buyerID
	return nil
}
