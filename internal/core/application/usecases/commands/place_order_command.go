package commands

import (
	"errors"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a buyer's request to purchase a vehicle.
// Encapsulates the buyer, the vehicle being bought, and the delivery address.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewPlaceOrderCommand(orderID, buyerID, vehicleID, "123 Main Street", "Lagos")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Order %s placed and awaiting payment", orderID)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	buyerID       kernel.UUID
	vehicleID     kernel.UUID
	negotiationID kernel.UUID
	address       kernel.Address

	fromNegotiation bool

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new vehicle order.
// Validates that all identifiers are valid and that the street and city
// form a valid delivery address. Returns an error if any validation fails.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	buyerID kernel.UUID,
	vehicleID kernel.UUID,
	street string,
	city string,
) (PlaceOrderCommand, error) {
	orderCommand := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setBuyerID(buyerID),
		orderCommand.setVehicleID(vehicleID),
		orderCommand.setAddress(street, city),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return orderCommand, nil
}

// NewPlaceOrderCommandFromNegotiation creates a command to place an order at
// the price agreed in an accepted negotiation. The vehicle is taken from the
// negotiation, so only the negotiation identifier is carried.
func NewPlaceOrderCommandFromNegotiation(
	orderID kernel.UUID,
	buyerID kernel.UUID,
	negotiationID kernel.UUID,
	street string,
	city string,
) (PlaceOrderCommand, error) {
	orderCommand := PlaceOrderCommand{
		fromNegotiation: true,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setBuyerID(buyerID),
		orderCommand.setNegotiationID(negotiationID),
		orderCommand.setAddress(street, city),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BuyerID returns the identifier of the purchasing buyer.
func (c PlaceOrderCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// VehicleID returns the identifier of the vehicle being purchased.
func (c PlaceOrderCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// NegotiationID returns the identifier of the accepted negotiation, valid
// only when IsFromNegotiation reports true.
func (c PlaceOrderCommand) NegotiationID() kernel.UUID {
	return c.negotiationID
}

// IsFromNegotiation reports whether the order is priced from an accepted
// negotiation instead of the listing.
func (c PlaceOrderCommand) IsFromNegotiation() bool {
	return c.fromNegotiation
}

// Address returns the delivery destination address.
func (c PlaceOrderCommand) Address() kernel.Address {
	return c.address
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	c.buyerID = buyerID
	return nil
}

func (c *PlaceOrderCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *PlaceOrderCommand) setNegotiationID(negotiationID kernel.UUID) error {
	if err := negotiationID.Validate(); err != nil {
		return err
	}

	c.negotiationID = negotiationID
	return nil
}

func (c *PlaceOrderCommand) setAddress(street string, city string) error {
	address, err := kernel.NewAddress(street, city)
	if err != nil {
		return err
	}

	c.address = address
	return nil
}
