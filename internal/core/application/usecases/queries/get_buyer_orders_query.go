package queries

import (
	"errors"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/pkg/guard"
)

var ErrGetBuyerOrdersQueryIsNotConstructed = errors.New(
	"GetBuyerOrdersQuery must be created via NewGetBuyerOrdersQuery constructor",
)

// GetBuyerOrdersQuery retrieves a buyer's order history, newest first.
type GetBuyerOrdersQuery struct {
	buyerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBuyerOrdersQuery creates a query for one buyer's orders.
func NewGetBuyerOrdersQuery(buyerID kernel.UUID) (GetBuyerOrdersQuery, error) {
	if err := buyerID.Validate(); err != nil {
		return GetBuyerOrdersQuery{}, err
	}

	return GetBuyerOrdersQuery{
		buyerID: buyerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetBuyerOrdersQueryIsNotConstructed if validation fails.
func (q GetBuyerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetBuyerOrdersQueryIsNotConstructed)
}

// BuyerID returns the identifier of the buyer whose orders are requested.
func (q GetBuyerOrdersQuery) BuyerID() kernel.UUID {
	return q.buyerID
}

// GetBuyerOrdersQueryResponse represents one order in a buyer's history.
// DeliveryStatus is nil for orders without a delivery leg.
type GetBuyerOrdersQueryResponse struct {
	ID             kernel.UUID
	VehicleID      kernel.UUID
	PriceCents     int64
	PaymentStatus  string
	DeliveryStatus *string
}
