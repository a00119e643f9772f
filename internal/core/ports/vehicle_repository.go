package ports

import (
	"context"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle aggregates
// and their optional location/condition descriptor rows.
type VehicleRepository interface {
	// Add persists a new vehicle aggregate together with its descriptors.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Update persists changes to an existing vehicle. Descriptor records
	// keep their identity across upserts: an existing row is updated in
	// place, a newly attached one is inserted.
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Get retrieves a vehicle aggregate by its unique identifier.
	// Returns ObjectNotFoundError when the vehicle does not exist.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)
}
