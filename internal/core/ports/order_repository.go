package ports

import (
	"context"
	"time"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// including their delivery, rating, and payment child records.
type OrderRepository interface {
	// Add persists a new order aggregate together with its children in the
	// current transaction. The order must be valid and not already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. Children that
	// appeared since the last load (a new rating, a new payment) are
	// inserted; changed ones (the delivery status) are updated. A rating
	// insert that violates the per-order uniqueness constraint surfaces as
	// an ObjectAlreadyExistsError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, with its
	// children attached when they exist. Returns ObjectNotFoundError when
	// the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetLiveOrderForVehicle retrieves the buyer's pending or paid order
	// for a vehicle, if one exists. Used to reject duplicate live orders.
	// Returns ObjectNotFoundError when there is none.
	GetLiveOrderForVehicle(ctx context.Context, buyerID kernel.UUID, vehicleID kernel.UUID) (*order.Order, error)

	// GetAllPendingOlderThan retrieves pending orders placed before the
	// cutoff. Used by the expiration job.
	GetAllPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
