package commands

import (
	"errors"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/core/domain/model/negotiation"
	"negcom/internal/pkg/errs"
	"negcom/internal/pkg/guard"
)

var ErrMakeNegotiationOfferCommandIsNotConstructed = errors.New(
	"MakeNegotiationOfferCommand must be created via NewMakeNegotiationOfferCommand constructor",
)

// MakeNegotiationOfferCommand represents a buyer's follow-up offer in an
// ongoing negotiation.
type MakeNegotiationOfferCommand struct { //nolint:recvcheck //using for validation
	negotiationID kernel.UUID
	buyerID       kernel.UUID
	offerPrice    kernel.Price
	message       string

	guard guard.ConstructorGuard
}

// NewMakeNegotiationOfferCommand creates a command to add a buyer offer to a
// negotiation. The buyer identifier is carried for the ownership check.
func NewMakeNegotiationOfferCommand(
	negotiationID kernel.UUID,
	buyerID kernel.UUID,
	offerCents int64,
	message string,
) (MakeNegotiationOfferCommand, error) {
	offerCommand := MakeNegotiationOfferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		offerCommand.setNegotiationID(negotiationID),
		offerCommand.setBuyerID(buyerID),
		offerCommand.setOffer(offerCents),
		offerCommand.setMessage(message),
	); err != nil {
		return MakeNegotiationOfferCommand{}, err
	}

	return offerCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMakeNegotiationOfferCommandIsNotConstructed if validation fails.
func (c MakeNegotiationOfferCommand) Validate() error {
	return c.guard.Validate(ErrMakeNegotiationOfferCommandIsNotConstructed)
}

// NegotiationID returns the identifier of the negotiation being offered on.
func (c MakeNegotiationOfferCommand) NegotiationID() kernel.UUID {
	return c.negotiationID
}

// BuyerID returns the identifier of the offering buyer.
func (c MakeNegotiationOfferCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// OfferPrice returns the buyer's proposed amount.
func (c MakeNegotiationOfferCommand) OfferPrice() kernel.Price {
	return c.offerPrice
}

// Message returns the optional text attached to the offer.
func (c MakeNegotiationOfferCommand) Message() string {
	return c.message
}

func (c *MakeNegotiationOfferCommand) setNegotiationID(negotiationID kernel.UUID) error {
	if err := negotiationID.Validate(); err != nil {
		return err
	}

	c.negotiationID = negotiationID
	return nil
}

func (c *MakeNegotiationOfferCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	c.buyerID = buyerID
	return nil
}

func (c *MakeNegotiationOfferCommand) setOffer(offerCents int64) error {
	price, err := kernel.NewPriceFromCents(offerCents)
	if err != nil {
		return err
	}

	c.offerPrice = price
	return nil
}

func (c *MakeNegotiationOfferCommand) setMessage(message string) error {
	if len(message) > negotiation.OfferReasonMaxLen {
		return errs.NewValueIsOutOfRangeError("message", len(message), 0, negotiation.OfferReasonMaxLen)
	}

	c.message = message
	return nil
}
