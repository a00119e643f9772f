package queries

import (
	"errors"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/pkg/guard"
)

var ErrGetVehicleDetailsQueryIsNotConstructed = errors.New(
	"GetVehicleDetailsQuery must be created via NewGetVehicleDetailsQuery constructor",
)

// GetVehicleDetailsQuery retrieves a single vehicle listing with its
// optional location and condition descriptors.
type GetVehicleDetailsQuery struct {
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetVehicleDetailsQuery creates a query to fetch one listing by ID.
func NewGetVehicleDetailsQuery(vehicleID kernel.UUID) (GetVehicleDetailsQuery, error) {
	if err := vehicleID.Validate(); err != nil {
		return GetVehicleDetailsQuery{}, err
	}

	return GetVehicleDetailsQuery{
		vehicleID: vehicleID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetVehicleDetailsQueryIsNotConstructed if validation fails.
func (q GetVehicleDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetVehicleDetailsQueryIsNotConstructed)
}

// VehicleID returns the identifier of the requested listing.
func (q GetVehicleDetailsQuery) VehicleID() kernel.UUID {
	return q.vehicleID
}

// GetVehicleDetailsQueryResponse represents one listing on the read side.
// City and ConditionGrade are nil when the listing has no corresponding
// descriptor, rendered as "no information available" by the caller.
type GetVehicleDetailsQueryResponse struct {
	ID           kernel.UUID
	Make         string
	Model        string
	Year         int
	Mileage      int
	EngineType   string
	Transmission string
	BodyType     string
	Color        string
	PriceCents   int64

	City           *string
	ConditionGrade *string
}
