// Package vehiclerepo provides data transfer objects and mapping functions for vehicle persistence.
// This package implements the repository pattern for the vehicle domain aggregate, handling
// the conversion between domain entities and database representations.
package vehiclerepo

import (
	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicle listings.
// The location and condition descriptors live in their own tables and are
// nil for listings that never received them.
type VehicleDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Make         string    `gorm:"type:varchar(80);not null"`
	Model        string    `gorm:"type:varchar(80);not null"`
	Year         int       `gorm:"not null"`
	Mileage      int       `gorm:"not null"`
	EngineType   string    `gorm:"type:varchar(80);not null"`
	Transmission string    `gorm:"type:varchar(80);not null"`
	BodyType     string    `gorm:"type:varchar(80);not null"`
	Color        string    `gorm:"type:varchar(80);not null"`
	PriceCents   int64     `gorm:"not null"`

	Location  *LocationDTO  `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
	Condition *ConditionDTO `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for vehicle entities.
// Overrides GORM's default naming convention to use "vehicles".
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// LocationDTO represents the database structure for the location descriptor.
// At most one location exists per vehicle.
type LocationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	VehicleID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	City      string    `gorm:"type:varchar(80);not null"`
}

// TableName specifies the database table name for location descriptors.
func (LocationDTO) TableName() string {
	return "vehicle_locations"
}

// ConditionDTO represents the database structure for the condition descriptor.
// At most one condition exists per vehicle.
type ConditionDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	VehicleID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Grade     string    `gorm:"type:varchar(16);not null"`
}

// TableName specifies the database table name for condition descriptors.
func (ConditionDTO) TableName() string {
	return "vehicle_conditions"
}

// fromDomain converts a vehicle domain aggregate to its database representation.
// Maps the optional descriptors only when present on the aggregate.
func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	vehicleID := aggregate.ID().Bytes()

	dto := VehicleDTO{
		ID:           vehicleID,
		Make:         aggregate.Make(),
		Model:        aggregate.Model(),
		Year:         aggregate.Year(),
		Mileage:      aggregate.Mileage(),
		EngineType:   aggregate.EngineType(),
		Transmission: aggregate.Transmission(),
		BodyType:     aggregate.BodyType(),
		Color:        aggregate.Color(),
		PriceCents:   aggregate.Price().Cents(),
	}

	if location := aggregate.Location(); location != nil {
		dto.Location = &LocationDTO{
			ID:        location.ID().Bytes(),
			VehicleID: vehicleID,
			City:      location.City(),
		}
	}

	if condition := aggregate.Condition(); condition != nil {
		dto.Condition = &ConditionDTO{
			ID:        condition.ID().Bytes(),
			VehicleID: vehicleID,
			Grade:     condition.Grade().String(),
		}
	}

	return dto
}

// toDomain converts a database DTO to a vehicle domain aggregate.
// Reconstructs the aggregate including its descriptors using RestoreVehicle.
func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPriceFromCents(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	var location *vehicle.Location
	if dto.Location != nil {
		locationID, locErr := kernel.UUIDFromBytes(dto.Location.ID[:])
		if locErr != nil {
			return nil, locErr
		}
		location, err = vehicle.NewLocation(locationID, dto.Location.City)
		if err != nil {
			return nil, err
		}
	}

	var condition *vehicle.Condition
	if dto.Condition != nil {
		conditionID, condErr := kernel.UUIDFromBytes(dto.Condition.ID[:])
		if condErr != nil {
			return nil, condErr
		}
		grade, gradeErr := vehicle.ConditionGradeFromString(dto.Condition.Grade)
		if gradeErr != nil {
			return nil, gradeErr
		}
		condition, err = vehicle.NewCondition(conditionID, grade)
		if err != nil {
			return nil, err
		}
	}

	return vehicle.RestoreVehicle(id, dto.Make, dto.Model, dto.Year, dto.Mileage,
		dto.EngineType, dto.Transmission, dto.BodyType, dto.Color, price,
		location, condition)
}
