// Package negotiationrepo provides data transfer objects and mapping functions
// for negotiation persistence. This package implements the repository pattern
// for the negotiation domain aggregate, handling the conversion between domain
// entities and database representations.
package negotiationrepo

import (
	"time"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/core/domain/model/negotiation"

	"github.com/google/uuid"
)

// NegotiationDTO represents the database structure for persisting negotiation
// aggregates. The offer history lives in its own table.
type NegotiationDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	BuyerID         uuid.UUID `gorm:"type:uuid;not null;index"`
	VehicleID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Status          string    `gorm:"type:varchar(16);not null;index"`
	FinalPriceCents *int64
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`

	Offers []OfferDTO `gorm:"foreignKey:NegotiationID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for negotiation entities.
func (NegotiationDTO) TableName() string {
	return "negotiations"
}

// OfferDTO represents the database structure for persisting negotiation
// offers. Rows are append-only; CreatedAt orders the history.
type OfferDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	NegotiationID uuid.UUID `gorm:"type:uuid;not null;index"`
	OfferBy       string    `gorm:"type:varchar(8);not null"`
	PriceCents    int64     `gorm:"not null"`
	Reason        string    `gorm:"type:varchar(200)"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for offer entities.
func (OfferDTO) TableName() string {
	return "negotiation_offers"
}

// fromDomain converts a negotiation domain aggregate to its database
// representation. The final price column is set only for accepted rows.
func fromDomain(aggregate *negotiation.Negotiation) NegotiationDTO {
	negotiationID := aggregate.ID().Bytes()

	dto := NegotiationDTO{
		ID:        negotiationID,
		BuyerID:   aggregate.BuyerID().Bytes(),
		VehicleID: aggregate.VehicleID().Bytes(),
		Status:    aggregate.Status().String(),
	}

	if finalPrice := aggregate.FinalPrice(); finalPrice != nil {
		cents := finalPrice.Cents()
		dto.FinalPriceCents = &cents
	}

	for _, offer := range aggregate.Offers() {
		dto.Offers = append(dto.Offers, OfferDTO{
			ID:            offer.ID().Bytes(),
			NegotiationID: negotiationID,
			OfferBy:       offer.By().String(),
			PriceCents:    offer.Price().Cents(),
			Reason:        offer.Reason(),
		})
	}

	return dto
}

// toDomain converts a database DTO to a negotiation domain aggregate.
// Offers must already be ordered oldest first.
func toDomain(dto NegotiationDTO) (*negotiation.Negotiation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	status, err := negotiation.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var finalPrice *kernel.Price
	if dto.FinalPriceCents != nil {
		price, priceErr := kernel.NewPriceFromCents(*dto.FinalPriceCents)
		if priceErr != nil {
			return nil, priceErr
		}
		finalPrice = &price
	}

	offers := make([]*negotiation.Offer, 0, len(dto.Offers))
	for _, offerDTO := range dto.Offers {
		offer, offerErr := offerToDomain(offerDTO)
		if offerErr != nil {
			return nil, offerErr
		}
		offers = append(offers, offer)
	}

	return negotiation.RestoreNegotiation(id, buyerID, vehicleID, status, finalPrice, offers)
}

// offerToDomain converts an offer DTO to its domain entity.
func offerToDomain(dto OfferDTO) (*negotiation.Offer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	by, err := negotiation.OfferByFromString(dto.OfferBy)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPriceFromCents(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	return negotiation.NewOffer(id, by, price, dto.Reason)
}
