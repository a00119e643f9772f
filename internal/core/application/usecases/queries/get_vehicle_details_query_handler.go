package queries

import (
	"context"
	"database/sql"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetVehicleDetailsQueryHandler reads a single listing projection, joining
// in the optional location and condition descriptors.
type GetVehicleDetailsQueryHandler struct {
	db *gorm.DB
}

// NewGetVehicleDetailsQueryHandler creates a handler for listing detail
// queries. Requires a GORM database connection for query execution.
func NewGetVehicleDetailsQueryHandler(db *gorm.DB) GetVehicleDetailsQueryHandler {
	return GetVehicleDetailsQueryHandler{db: db}
}

// Handle executes the query for one listing.
// Returns ObjectNotFoundError when the listing does not exist.
func (h GetVehicleDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetVehicleDetailsQuery,
) (GetVehicleDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetVehicleDetailsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			v.id,
			v.make,
			v.model,
			v.year,
			v.mileage,
			v.engine_type,
			v.transmission,
			v.body_type,
			v.color,
			v.price_cents,
			l.city,
			c.grade
		FROM vehicles v
		LEFT JOIN vehicle_locations l ON l.vehicle_id = v.id
		LEFT JOIN vehicle_conditions c ON c.vehicle_id = v.id
		WHERE v.id = ?
	`, query.VehicleID().String()).Rows()
	if err != nil {
		return GetVehicleDetailsQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetVehicleDetailsQueryResponse{}, err
		}
		return GetVehicleDetailsQueryResponse{},
			errs.NewObjectNotFoundError("vehicle", query.VehicleID().String())
	}

	var (
		resp  GetVehicleDetailsQueryResponse
		id    uuid.UUID
		city  sql.NullString
		grade sql.NullString
	)

	err = rows.Scan(
		&id,
		&resp.Make,
		&resp.Model,
		&resp.Year,
		&resp.Mileage,
		&resp.EngineType,
		&resp.Transmission,
		&resp.BodyType,
		&resp.Color,
		&resp.PriceCents,
		&city,
		&grade,
	)
	if err != nil {
		return GetVehicleDetailsQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetVehicleDetailsQueryResponse{}, err
	}

	if city.Valid {
		resp.City = &city.String
	}
	if grade.Valid {
		resp.ConditionGrade = &grade.String
	}

	if err = rows.Err(); err != nil {
		return GetVehicleDetailsQueryResponse{}, err
	}

	return resp, nil
}
