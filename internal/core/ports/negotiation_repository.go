package ports

import (
	"context"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/core/domain/model/negotiation"
)

// NegotiationRepository defines the persistence contract for negotiation
// aggregates, including their offer history.
type NegotiationRepository interface {
	// Add persists a new negotiation together with its offers in the
	// current transaction. The negotiation must be valid and not already
	// exist.
	Add(ctx context.Context, aggregate *negotiation.Negotiation) error

	// Update persists changes to an existing negotiation. Offers that
	// appeared since the last load are inserted; the status and final price
	// are updated.
	Update(ctx context.Context, aggregate *negotiation.Negotiation) error

	// Get retrieves a negotiation by its unique identifier with its offer
	// history attached, oldest offer first. Returns ObjectNotFoundError
	// when the negotiation does not exist.
	Get(ctx context.Context, id kernel.UUID) (*negotiation.Negotiation, error)

	// GetOngoingForVehicle retrieves the buyer's ongoing negotiation for a
	// vehicle, if one exists. Used to reject duplicate active negotiations.
	// Returns ObjectNotFoundError when there is none.
	GetOngoingForVehicle(ctx context.Context, buyerID kernel.UUID, vehicleID kernel.UUID) (*negotiation.Negotiation, error)
}
