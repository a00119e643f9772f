// Package queries contains read-only operations against the storage layer.
// Implements the query side of the CQRS architecture: handlers bypass the
// domain model and read projections straight from the database.
package queries

import (
	"errors"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/pkg/guard"
)

var ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
	"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
)

// GetOrderDetailsQuery retrieves a single order with its delivery, rating,
// and payment when they exist.
//
// Example:
//
//	query, err := NewGetOrderDetailsQuery(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid order id: %w", err)
//	}
//
//	details, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//	fmt.Printf("Order %s is %s\n", details.ID, details.PaymentStatus)
type GetOrderDetailsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderDetailsQuery creates a query to fetch one order by ID.
func NewGetOrderDetailsQuery(orderID kernel.UUID) (GetOrderDetailsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderDetailsQuery{}, err
	}

	return GetOrderDetailsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderDetailsQueryIsNotConstructed if validation fails.
func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderDetailsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// DeliveryDetails is the read model for an order's delivery leg.
type DeliveryDetails struct {
	Street string
	City   string
	Status string
}

// RatingDetails is the read model for an order's buyer rating.
type RatingDetails struct {
	Score   int
	Comment string
}

// PaymentDetails is the read model for an order's payment record.
type PaymentDetails struct {
	Method     string
	Reference  string
	Successful bool
}

// GetOrderDetailsQueryResponse represents one order on the read side.
// Delivery, Rating, and Payment are nil when the order has none; the
// caller renders their absence as "no information available".
type GetOrderDetailsQueryResponse struct {
	ID            kernel.UUID
	BuyerID       kernel.UUID
	VehicleID     kernel.UUID
	PriceCents    int64
	PaymentStatus string

	Delivery *DeliveryDetails
	Rating   *RatingDetails
	Payment  *PaymentDetails
}
