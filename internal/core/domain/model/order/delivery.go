package order

import (
	"errors"

	"negcom/internal/core/domain/model/kernel"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through NewDelivery or RestoreDelivery.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// Delivery is the shipping record owned by an Order. It is created together
// with the order at placement time and carries the destination address, which
// never changes once the order is placed.
//
// Delivery follows these invariants:
//   - Must have a valid unique identifier and a valid address
//   - Status starts at DeliveryPending
//   - Status reaches DeliveryDelivered only through the owning order's
//     rating action
type Delivery struct {
	id      kernel.UUID
	address kernel.Address
	status  DeliveryStatus

	isConstructed bool
}

// NewDelivery creates a delivery record in DeliveryPending status.
// The address must be a valid kernel.Address.
func NewDelivery(id kernel.UUID, address kernel.Address) (*Delivery, error) {
	delivery := &Delivery{
		status:        DeliveryPending,
		isConstructed: true,
	}

	if err := errors.Join(
		delivery.setID(id),
		delivery.setAddress(address),
	); err != nil {
		return nil, err
	}

	return delivery, nil
}

// RestoreDelivery reconstructs a delivery from persistence with an explicit
// status. Returns an error if any part fails validation.
func RestoreDelivery(id kernel.UUID, address kernel.Address, status DeliveryStatus) (*Delivery, error) {
	delivery, err := NewDelivery(id, address)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	delivery.status = status
	return delivery, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}

	return nil
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// Address returns the destination address.
func (d *Delivery) Address() kernel.Address {
	return d.address
}

// Status returns the current delivery status.
func (d *Delivery) Status() DeliveryStatus {
	return d.status
}

// deliver flips the delivery to DeliveryDelivered. Only the owning Order
// calls this, as a side effect of the buyer's rating action.
func (d *Delivery) deliver() error {
	newStatus, err := d.status.Deliver()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	d.address = address
	return nil
}
