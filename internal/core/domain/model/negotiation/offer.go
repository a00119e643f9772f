package negotiation

import (
	"errors"
	"fmt"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/pkg/errs"
)

// OfferReasonMaxLen bounds the optional free-text attached to an offer.
const OfferReasonMaxLen = 200

// ErrOfferIsNotConstructed is returned when an Offer instance was not
// created through NewOffer.
var ErrOfferIsNotConstructed = errors.New("Offer must be created via NewOffer constructor")

// OfferBy identifies which side of the negotiation made an offer.
type OfferBy int

const (
	OfferByUnknown OfferBy = iota

	// OfferByBuyer marks an amount proposed by the purchasing buyer.
	OfferByBuyer

	// OfferBySeller marks an amount proposed by the seller side, including
	// automated counter-offers.
	OfferBySeller
)

func getOfferByStrings() map[OfferBy]string {
	return map[OfferBy]string{
		OfferByBuyer:  "buyer",
		OfferBySeller: "seller",
	}
}

// OfferByFromString parses a wire-format side name.
func OfferByFromString(s string) (OfferBy, error) {
	for by, str := range getOfferByStrings() {
		if str == s {
			return by, nil
		}
	}
	return OfferByUnknown, errs.NewValueIsInvalidErrorWithCause("offer side",
		fmt.Errorf("%q is not a valid offer side", s))
}

// Validate checks the side is buyer or seller.
func (b OfferBy) Validate() error {
	if _, ok := getOfferByStrings()[b]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("offer side",
			fmt.Errorf("%d is not a valid offer side", b))
	}
	return nil
}

// String returns the wire-format name of the side.
func (b OfferBy) String() string {
	if str, ok := getOfferByStrings()[b]; ok {
		return str
	}
	return "unknown"
}

// Offer is a single priced proposal inside a negotiation. Offers are
// append-only: once made they are never amended, the history being part of
// the negotiation record.
type Offer struct {
	id     kernel.UUID
	by     OfferBy
	price  kernel.Price
	reason string

	isConstructed bool
}

// NewOffer creates a validated offer. The price must be positive; the reason
// is optional and limited to OfferReasonMaxLen characters.
func NewOffer(id kernel.UUID, by OfferBy, price kernel.Price, reason string) (*Offer, error) {
	offer := &Offer{
		isConstructed: true,
	}

	if err := errors.Join(
		offer.setID(id),
		offer.setBy(by),
		offer.setPrice(price),
		offer.setReason(reason),
	); err != nil {
		return nil, err
	}

	return offer, nil
}

// Validate ensures the Offer instance was properly constructed.
func (o *Offer) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOfferIsNotConstructed
	}

	return nil
}

// ID returns the offer's unique identifier.
func (o *Offer) ID() kernel.UUID {
	return o.id
}

// By returns which side made the offer.
func (o *Offer) By() OfferBy {
	return o.by
}

// Price returns the proposed amount.
func (o *Offer) Price() kernel.Price {
	return o.price
}

// Reason returns the optional free-text; empty when none was given.
func (o *Offer) Reason() string {
	return o.reason
}

func (o *Offer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Offer) setBy(by OfferBy) error {
	if err := by.Validate(); err != nil {
		return err
	}
	o.by = by
	return nil
}

func (o *Offer) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	if price.Cents() == 0 {
		return errs.NewValueIsInvalidErrorWithCause("offer price",
			errors.New("offer must be a positive amount"))
	}
	o.price = price
	return nil
}

func (o *Offer) setReason(reason string) error {
	if len(reason) > OfferReasonMaxLen {
		return errs.NewValueIsOutOfRangeError("offer reason", len(reason), 0, OfferReasonMaxLen)
	}
	o.reason = reason
	return nil
}
