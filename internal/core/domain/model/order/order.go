package order

import (
	"errors"
	"fmt"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods. This ensures all
// orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents a buyer's purchase of a vehicle. It is the aggregate root
// that manages the purchase lifecycle from placement through payment to the
// buyer's one-time rating.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, buyer, vehicle, and price
//   - Is created together with a pending Delivery (one atomic unit)
//   - Carries at most one Payment, at most one Rating
//   - A rating attaches only while the order is paid, and only once;
//     attaching it flips the delivery to delivered in the same operation
//   - Payment status transitions follow the PaymentStatus state machine
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// buyerID identifies the purchasing user
	buyerID kernel.UUID

	// vehicleID identifies the purchased vehicle
	vehicleID kernel.UUID

	// price is the agreed purchase price, fixed at placement
	price kernel.Price

	// paymentStatus is the current state in the purchase lifecycle
	paymentStatus PaymentStatus

	// delivery is the shipping record; nil only for legacy rows restored
	// without one
	delivery *Delivery

	// rating is the buyer's feedback (nil until rated)
	rating *Rating

	// payment is the recorded payment attempt (nil until one is made)
	payment *Payment

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in PaymentPending status together with its
// pending Delivery at the given address. This is the only way to place an
// order, ensuring order and delivery always come into existence as one unit.
//
// Parameters:
//   - id: Unique identifier for the order
//   - buyerID: The purchasing user
//   - vehicleID: The purchased vehicle
//   - price: The purchase price captured from the listing
//   - address: The delivery destination
//
// Returns a validation error naming the offending field if any parameter is
// invalid; in that case nothing is created.
func NewOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	vehicleID kernel.UUID,
	price kernel.Price,
	address kernel.Address,
) (*Order, error) {
	order := &Order{
		paymentStatus: PaymentPending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setBuyerID(buyerID),
		order.setVehicleID(vehicleID),
		order.setPrice(price),
	); err != nil {
		return nil, err
	}

	delivery, err := NewDelivery(kernel.NewUUID(), address)
	if err != nil {
		return nil, err
	}
	order.delivery = delivery

	return order, nil
}

// RestoreOrder reconstructs an order from persistence. The children may be
// nil: an order restored without a delivery, rating, or payment is valid,
// absence being an ordinary state rather than an error.
func RestoreOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	vehicleID kernel.UUID,
	price kernel.Price,
	status PaymentStatus,
	delivery *Delivery,
	rating *Rating,
	payment *Payment,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setBuyerID(buyerID),
		order.setVehicleID(vehicleID),
		order.setPrice(price),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	order.paymentStatus = status

	if delivery != nil {
		if err := delivery.Validate(); err != nil {
			return nil, err
		}
		order.delivery = delivery
	}
	if rating != nil {
		if err := rating.Validate(); err != nil {
			return nil, err
		}
		order.rating = rating
	}
	if payment != nil {
		if err := payment.Validate(); err != nil {
			return nil, err
		}
		order.payment = payment
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// BuyerID returns the purchasing user's identifier.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// VehicleID returns the purchased vehicle's identifier.
func (o *Order) VehicleID() kernel.UUID {
	return o.vehicleID
}

// Price returns the purchase price fixed at placement.
func (o *Order) Price() kernel.Price {
	return o.price
}

// PaymentStatus returns the current state of the purchase lifecycle.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Delivery returns the shipping record, or nil when none exists.
func (o *Order) Delivery() *Delivery {
	return o.delivery
}

// Rating returns the buyer's rating, or nil when the order is unrated.
func (o *Order) Rating() *Rating {
	return o.rating
}

// Payment returns the recorded payment attempt, or nil when none was made.
func (o *Order) Payment() *Payment {
	return o.payment
}

// RecordPayment attaches the outcome of a payment attempt to the order.
//
// Business rules:
//   - The order must be in PaymentPending status
//   - Only one payment attempt is recorded per order
//   - A successful payment moves the order to PaymentPaid; a failed one
//     leaves the order pending so it can still be cancelled
//
// Returns OperationIsForbiddenError when the order is not pending and
// ObjectAlreadyExistsError when a payment was already recorded.
func (o *Order) RecordPayment(payment *Payment) error {
	if err := payment.Validate(); err != nil {
		return err
	}

	if o.paymentStatus != PaymentPending {
		return errs.NewOperationIsForbiddenErrorWithCause("record payment",
			fmt.Errorf("order is %s", o.paymentStatus))
	}

	if o.payment != nil {
		return errs.NewObjectAlreadyExistsError("payment", o.id.String())
	}

	if payment.IsSuccessful() {
		newStatus, err := o.paymentStatus.Pay()
		if err != nil {
			return err
		}
		o.paymentStatus = newStatus
	}

	o.payment = payment
	return nil
}

// Cancel marks a pending order as failed. Orders that are paid, failed, or
// refunded cannot be cancelled.
func (o *Order) Cancel() error {
	newStatus, err := o.paymentStatus.Fail()
	if err != nil {
		return errs.NewOperationIsForbiddenErrorWithCause("cancel order", err)
	}

	o.paymentStatus = newStatus
	return nil
}

// Refund marks a paid order as refunded.
func (o *Order) Refund() error {
	newStatus, err := o.paymentStatus.Refund()
	if err != nil {
		return errs.NewOperationIsForbiddenErrorWithCause("refund order", err)
	}

	o.paymentStatus = newStatus
	return nil
}

// Rate attaches the buyer's one-time rating to the order.
//
// The transition guard, evaluated in this sequence:
//  1. OperationIsForbiddenError unless the order is PaymentPaid
//  2. ObjectAlreadyExistsError if a rating already exists; the existing
//     rating is left untouched
//  3. Score and comment are validated (score 1..5, comment <= 500 chars)
//
// On success the rating is attached and, as a coupled side effect, the
// delivery (when one exists) flips to DeliveryDelivered. When no delivery
// exists the side effect is a no-op, not an error. Rating is irreversible:
// it is the buyer's acknowledgment that the purchase cycle is complete.
func (o *Order) Rate(score int, comment string) error {
	if o.paymentStatus != PaymentPaid {
		return errs.NewOperationIsForbiddenErrorWithCause("rate order",
			fmt.Errorf("payment status is %s", o.paymentStatus))
	}

	if o.rating != nil {
		return errs.NewObjectAlreadyExistsError("rating", o.id.String())
	}

	rating, err := NewRating(kernel.NewUUID(), score, comment)
	if err != nil {
		return err
	}

	if o.delivery != nil {
		if err = o.delivery.deliver(); err != nil {
			return err
		}
	}

	o.rating = rating
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("buyerID", err)
	}
	o.buyerID = buyerID
	return nil
}

func (o *Order) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("vehicleID", err)
	}
	o.vehicleID = vehicleID
	return nil
}

func (o *Order) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	o.price = price
	return nil
}
