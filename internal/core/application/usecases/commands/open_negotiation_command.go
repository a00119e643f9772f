package commands

import (
	"errors"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/core/domain/model/negotiation"
	"negcom/internal/pkg/errs"
	"negcom/internal/pkg/guard"
)

var ErrOpenNegotiationCommandIsNotConstructed = errors.New(
	"OpenNegotiationCommand must be created via NewOpenNegotiationCommand constructor",
)

// OpenNegotiationCommand represents a buyer's request to start negotiating
// the price of a listing, carrying the opening offer.
type OpenNegotiationCommand struct { //nolint:recvcheck //using for validation
	negotiationID kernel.UUID
	buyerID       kernel.UUID
	vehicleID     kernel.UUID
	offerPrice    kernel.Price
	message       string

	guard guard.ConstructorGuard
}

// NewOpenNegotiationCommand creates a command to open a negotiation.
// Validates the identifiers, that the offer is a positive amount in cents,
// and that the optional message fits the offer reason bound.
func NewOpenNegotiationCommand(
	negotiationID kernel.UUID,
	buyerID kernel.UUID,
	vehicleID kernel.UUID,
	offerCents int64,
	message string,
) (OpenNegotiationCommand, error) {
	openCommand := OpenNegotiationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		openCommand.setNegotiationID(negotiationID),
		openCommand.setBuyerID(buyerID),
		openCommand.setVehicleID(vehicleID),
		openCommand.setOffer(offerCents),
		openCommand.setMessage(message),
	); err != nil {
		return OpenNegotiationCommand{}, err
	}

	return openCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrOpenNegotiationCommandIsNotConstructed if validation fails.
func (c OpenNegotiationCommand) Validate() error {
	return c.guard.Validate(ErrOpenNegotiationCommandIsNotConstructed)
}

// NegotiationID returns the unique identifier for the negotiation.
func (c OpenNegotiationCommand) NegotiationID() kernel.UUID {
	return c.negotiationID
}

// BuyerID returns the identifier of the negotiating buyer.
func (c OpenNegotiationCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// VehicleID returns the identifier of the listing under negotiation.
func (c OpenNegotiationCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// OfferPrice returns the buyer's opening offer.
func (c OpenNegotiationCommand) OfferPrice() kernel.Price {
	return c.offerPrice
}

// Message returns the optional text attached to the opening offer.
func (c OpenNegotiationCommand) Message() string {
	return c.message
}

func (c *OpenNegotiationCommand) setNegotiationID(negotiationID kernel.UUID) error {
	if err := negotiationID.Validate(); err != nil {
		return err
	}

	c.negotiationID = negotiationID
	return nil
}

func (c *OpenNegotiationCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	c.buyerID = buyerID
	return nil
}

func (c *OpenNegotiationCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *OpenNegotiationCommand) setOffer(offerCents int64) error {
	price, err := kernel.NewPriceFromCents(offerCents)
	if err != nil {
		return err
	}

	c.offerPrice = price
	return nil
}

func (c *OpenNegotiationCommand) setMessage(message string) error {
	// The message becomes the offer's reason, so it carries the same bound.
	if len(message) > negotiation.OfferReasonMaxLen {
		return errs.NewValueIsOutOfRangeError("message", len(message), 0, negotiation.OfferReasonMaxLen)
	}

	c.message = message
	return nil
}
