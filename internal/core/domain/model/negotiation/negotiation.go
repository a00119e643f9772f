package negotiation

import (
	"errors"
	"fmt"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/pkg/errs"
)

// ErrNegotiationIsNotConstructed is returned when a Negotiation instance was
// not created through the NewNegotiation or RestoreNegotiation factory
// methods. This ensures all negotiations are properly validated.
var ErrNegotiationIsNotConstructed = errors.New(
	"Negotiation must be created via NewNegotiation constructor")

// Negotiation represents a buyer's price negotiation on a vehicle listing.
// It is the aggregate root holding the append-only offer history and, once
// accepted, the agreed final price that an order can be placed at.
//
// Negotiation follows these invariants:
//   - Must have a valid unique identifier, buyer, and vehicle
//   - Is created ongoing with the buyer's opening offer attached
//   - Offers are only added while ongoing; the history is append-only
//   - Accepting fixes the final price to the latest offer's price
//   - Accepted and rejected are terminal states
//
// The Negotiation struct uses private fields to ensure encapsulation and
// maintains its invariants through validated methods.
type Negotiation struct {
	// id is the unique identifier for the negotiation
	id kernel.UUID

	// buyerID identifies the negotiating buyer
	buyerID kernel.UUID

	// vehicleID identifies the listing under negotiation
	vehicleID kernel.UUID

	// status is the current state in the negotiation lifecycle
	status Status

	// finalPrice is the agreed amount; nil until the negotiation is accepted
	finalPrice *kernel.Price

	// offers is the append-only proposal history, oldest first
	offers []*Offer

	// isConstructed ensures the negotiation was created via a factory method
	isConstructed bool
}

// NewNegotiation opens a negotiation in StatusOngoing with the buyer's
// opening offer attached. This is the only way to start one, ensuring a
// negotiation never exists without at least one offer.
func NewNegotiation(
	id kernel.UUID,
	buyerID kernel.UUID,
	vehicleID kernel.UUID,
	offerPrice kernel.Price,
	reason string,
) (*Negotiation, error) {
	negotiation := &Negotiation{
		status:        StatusOngoing,
		isConstructed: true,
	}

	if err := errors.Join(
		negotiation.setID(id),
		negotiation.setBuyerID(buyerID),
		negotiation.setVehicleID(vehicleID),
	); err != nil {
		return nil, err
	}

	offer, err := NewOffer(kernel.NewUUID(), OfferByBuyer, offerPrice, reason)
	if err != nil {
		return nil, err
	}
	negotiation.offers = append(negotiation.offers, offer)

	return negotiation, nil
}

// RestoreNegotiation reconstructs a negotiation from persistence. The final
// price may be nil (present only for accepted negotiations) and the offer
// history may be empty for rows persisted before offers were recorded.
func RestoreNegotiation(
	id kernel.UUID,
	buyerID kernel.UUID,
	vehicleID kernel.UUID,
	status Status,
	finalPrice *kernel.Price,
	offers []*Offer,
) (*Negotiation, error) {
	negotiation := &Negotiation{
		isConstructed: true,
	}

	if err := errors.Join(
		negotiation.setID(id),
		negotiation.setBuyerID(buyerID),
		negotiation.setVehicleID(vehicleID),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	negotiation.status = status

	if finalPrice != nil {
		if err := finalPrice.Validate(); err != nil {
			return nil, err
		}
		negotiation.finalPrice = finalPrice
	}

	for _, offer := range offers {
		if err := offer.Validate(); err != nil {
			return nil, err
		}
		negotiation.offers = append(negotiation.offers, offer)
	}

	return negotiation, nil
}

// Validate ensures the Negotiation instance was properly constructed through
// a factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (n *Negotiation) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNegotiationIsNotConstructed
	}

	return nil
}

// IsEqual compares two negotiations by their unique identifiers.
func (n *Negotiation) IsEqual(other *Negotiation) bool {
	return other != nil && n.id.IsEqual(other.id)
}

// ID returns the negotiation's unique identifier.
func (n *Negotiation) ID() kernel.UUID {
	return n.id
}

// BuyerID returns the negotiating buyer's identifier.
func (n *Negotiation) BuyerID() kernel.UUID {
	return n.buyerID
}

// VehicleID returns the identifier of the listing under negotiation.
func (n *Negotiation) VehicleID() kernel.UUID {
	return n.vehicleID
}

// Status returns the current state of the negotiation lifecycle.
func (n *Negotiation) Status() Status {
	return n.status
}

// FinalPrice returns the agreed amount, or nil while the negotiation has not
// been accepted.
func (n *Negotiation) FinalPrice() *kernel.Price {
	return n.finalPrice
}

// Offers returns the proposal history, oldest first.
func (n *Negotiation) Offers() []*Offer {
	return n.offers
}

// LatestOffer returns the most recent proposal, or nil when the history is
// empty.
func (n *Negotiation) LatestOffer() *Offer {
	if len(n.offers) == 0 {
		return nil
	}
	return n.offers[len(n.offers)-1]
}

// MakeOffer appends a buyer proposal to an ongoing negotiation.
// Returns OperationIsForbiddenError when the negotiation has already ended.
func (n *Negotiation) MakeOffer(price kernel.Price, reason string) error {
	return n.appendOffer(OfferByBuyer, price, reason)
}

// Counter appends a seller proposal to an ongoing negotiation. Used for the
// automated counter-offers generated in response to buyer offers.
// Returns OperationIsForbiddenError when the negotiation has already ended.
func (n *Negotiation) Counter(price kernel.Price, reason string) error {
	return n.appendOffer(OfferBySeller, price, reason)
}

// Accept closes an ongoing negotiation in agreement, fixing the final price
// to the latest offer's price.
//
// Returns OperationIsForbiddenError when the negotiation is not ongoing or
// when there is no offer to accept.
func (n *Negotiation) Accept() error {
	latest := n.LatestOffer()
	if latest == nil {
		return errs.NewOperationIsForbiddenErrorWithCause("accept negotiation",
			errors.New("negotiation has no offers"))
	}

	newStatus, err := n.status.Accept()
	if err != nil {
		return errs.NewOperationIsForbiddenErrorWithCause("accept negotiation", err)
	}

	price := latest.Price()
	n.status = newStatus
	n.finalPrice = &price
	return nil
}

// Reject closes an ongoing negotiation without agreement.
// Returns OperationIsForbiddenError when the negotiation is not ongoing.
func (n *Negotiation) Reject() error {
	newStatus, err := n.status.Reject()
	if err != nil {
		return errs.NewOperationIsForbiddenErrorWithCause("reject negotiation", err)
	}

	n.status = newStatus
	return nil
}

func (n *Negotiation) appendOffer(by OfferBy, price kernel.Price, reason string) error {
	if n.status != StatusOngoing {
		return errs.NewOperationIsForbiddenErrorWithCause("make offer",
			fmt.Errorf("negotiation is %s", n.status))
	}

	offer, err := NewOffer(kernel.NewUUID(), by, price, reason)
	if err != nil {
		return err
	}

	n.offers = append(n.offers, offer)
	return nil
}

func (n *Negotiation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Negotiation) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("buyerID", err)
	}
	n.buyerID = buyerID
	return nil
}

func (n *Negotiation) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("vehicleID", err)
	}
	n.vehicleID = vehicleID
	return nil
}
