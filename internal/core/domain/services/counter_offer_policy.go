package services

import (
	"errors"
	"fmt"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/pkg/errs"
)

// Pricing bands for automated seller responses, as fractions of the listed
// price in percent. A buyer offer at or above the acceptance band is taken
// as-is; closer offers get a smaller counter-discount than distant ones.
const (
	acceptBandPercent     = 95
	nearBandPercent       = 85
	nearCounterPercent    = 92
	distantCounterPercent = 90
)

// CounterOffer is the seller side's automated response to a buyer offer:
// either an acceptance of the buyer's amount or a priced counter-proposal.
type CounterOffer struct {
	// Accepted reports that the buyer's amount was taken as-is; Price then
	// equals the buyer's offer.
	Accepted bool

	// Price is the seller side's amount.
	Price kernel.Price

	// Reason is a short explanation recorded with the offer.
	Reason string
}

// CounterOfferPolicy generates the seller side's response to a buyer offer
// from the listed price alone. It replaces a human seller in the negotiation
// loop with a deterministic pricing rule, so every buyer offer gets an
// immediate, reproducible answer.
type CounterOfferPolicy struct{}

// NewCounterOfferPolicy creates the automated pricing capability.
func NewCounterOfferPolicy() CounterOfferPolicy {
	return CounterOfferPolicy{}
}

// Respond produces the seller response to a buyer offer on a listing.
//
// Pricing rule:
//   - offer >= 95% of the listed price: accept the buyer's amount
//   - offer >= 85%: counter at 92% of the listed price
//   - below that: counter at 90% of the listed price
//
// The listed price must be positive; the offer must be a valid price.
func (CounterOfferPolicy) Respond(listPrice kernel.Price, offer kernel.Price) (CounterOffer, error) {
	if err := listPrice.Validate(); err != nil {
		return CounterOffer{}, err
	}
	if err := offer.Validate(); err != nil {
		return CounterOffer{}, err
	}
	if listPrice.Cents() == 0 {
		return CounterOffer{}, errs.NewValueIsInvalidErrorWithCause("listed price",
			errors.New("listing has no price to negotiate against"))
	}

	if offer.Cents()*100 >= listPrice.Cents()*acceptBandPercent {
		return CounterOffer{
			Accepted: true,
			Price:    offer,
			Reason:   "offer within acceptance band",
		}, nil
	}

	counterPercent := distantCounterPercent
	if offer.Cents()*100 >= listPrice.Cents()*nearBandPercent {
		counterPercent = nearCounterPercent
	}

	counterPrice, err := kernel.NewPriceFromCents(listPrice.Cents() * int64(counterPercent) / 100)
	if err != nil {
		return CounterOffer{}, err
	}

	return CounterOffer{
		Price:  counterPrice,
		Reason: fmt.Sprintf("counter at %d%% of the listed price", counterPercent),
	}, nil
}
