package queries

import (
	"errors"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/pkg/guard"
)

var ErrGetNegotiationDetailsQueryIsNotConstructed = errors.New(
	"GetNegotiationDetailsQuery must be created via NewGetNegotiationDetailsQuery constructor",
)

// GetNegotiationDetailsQuery retrieves a single negotiation with its offer
// history, oldest offer first.
type GetNegotiationDetailsQuery struct {
	negotiationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetNegotiationDetailsQuery creates a query to fetch one negotiation by ID.
func NewGetNegotiationDetailsQuery(negotiationID kernel.UUID) (GetNegotiationDetailsQuery, error) {
	if err := negotiationID.Validate(); err != nil {
		return GetNegotiationDetailsQuery{}, err
	}

	return GetNegotiationDetailsQuery{
		negotiationID: negotiationID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetNegotiationDetailsQueryIsNotConstructed if validation fails.
func (q GetNegotiationDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetNegotiationDetailsQueryIsNotConstructed)
}

// NegotiationID returns the identifier of the requested negotiation.
func (q GetNegotiationDetailsQuery) NegotiationID() kernel.UUID {
	return q.negotiationID
}

// OfferDetails is the read model for one offer in a negotiation.
type OfferDetails struct {
	By         string
	PriceCents int64
	Reason     string
}

// GetNegotiationDetailsQueryResponse represents one negotiation on the read
// side. FinalPriceCents is nil until the negotiation is accepted.
type GetNegotiationDetailsQueryResponse struct {
	ID              kernel.UUID
	BuyerID         kernel.UUID
	VehicleID       kernel.UUID
	Status          string
	FinalPriceCents *int64

	Offers []OfferDetails
}
