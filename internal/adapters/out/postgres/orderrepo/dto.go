// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The delivery, rating, and payment children live in their own tables and
// are nil when the order has none.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	BuyerID       uuid.UUID `gorm:"type:uuid;not null;index"`
	VehicleID     uuid.UUID `gorm:"type:uuid;not null;index"`
	PriceCents    int64     `gorm:"not null"`
	PaymentStatus string    `gorm:"type:varchar(16);not null;index"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`

	Delivery *DeliveryDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Rating   *RatingDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Payment  *PaymentDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// DeliveryDTO represents the database structure for persisting delivery legs.
// At most one delivery exists per order.
type DeliveryDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Street  string    `gorm:"type:varchar(300);not null"`
	City    string    `gorm:"type:varchar(80);not null"`
	Status  string    `gorm:"type:varchar(16);not null"`
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "order_deliveries"
}

// RatingDTO represents the database structure for persisting buyer ratings.
// The unique index on OrderID enforces the one-rating-per-order rule at the
// storage level: when two requests race past the aggregate check, the
// second insert fails here.
type RatingDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Score   int       `gorm:"not null"`
	Comment string    `gorm:"type:varchar(500)"`
}

// TableName specifies the database table name for rating entities.
func (RatingDTO) TableName() string {
	return "order_ratings"
}

// PaymentDTO represents the database structure for persisting payment records.
// The unique index on Reference rejects a replayed provider callback.
type PaymentDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Method     string    `gorm:"type:varchar(16);not null"`
	Reference  string    `gorm:"type:varchar(80);not null;uniqueIndex"`
	Successful bool      `gorm:"not null"`
}

// TableName specifies the database table name for payment entities.
func (PaymentDTO) TableName() string {
	return "order_payments"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps the optional children only when present on the aggregate.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	dto := OrderDTO{
		ID:            orderID,
		BuyerID:       aggregate.BuyerID().Bytes(),
		VehicleID:     aggregate.VehicleID().Bytes(),
		PriceCents:    aggregate.Price().Cents(),
		PaymentStatus: aggregate.PaymentStatus().String(),
	}

	if delivery := aggregate.Delivery(); delivery != nil {
		dto.Delivery = &DeliveryDTO{
			ID:      delivery.ID().Bytes(),
			OrderID: orderID,
			Street:  delivery.Address().Street(),
			City:    delivery.Address().City(),
			Status:  delivery.Status().String(),
		}
	}

	if rating := aggregate.Rating(); rating != nil {
		dto.Rating = &RatingDTO{
			ID:      rating.ID().Bytes(),
			OrderID: orderID,
			Score:   rating.Score(),
			Comment: rating.Comment(),
		}
	}

	if payment := aggregate.Payment(); payment != nil {
		dto.Payment = &PaymentDTO{
			ID:         payment.ID().Bytes(),
			OrderID:    orderID,
			Method:     payment.Method().String(),
			Reference:  payment.Reference(),
			Successful: payment.IsSuccessful(),
		}
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its children using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
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

	price, err := kernel.NewPriceFromCents(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	status, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	var delivery *order.Delivery
	if dto.Delivery != nil {
		delivery, err = deliveryToDomain(*dto.Delivery)
		if err != nil {
			return nil, err
		}
	}

	var rating *order.Rating
	if dto.Rating != nil {
		ratingID, ratingErr := kernel.UUIDFromBytes(dto.Rating.ID[:])
		if ratingErr != nil {
			return nil, ratingErr
		}
		rating, err = order.NewRating(ratingID, dto.Rating.Score, dto.Rating.Comment)
		if err != nil {
			return nil, err
		}
	}

	var payment *order.Payment
	if dto.Payment != nil {
		payment, err = paymentToDomain(*dto.Payment)
		if err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(id, buyerID, vehicleID, price, status, delivery, rating, payment)
}

// deliveryToDomain converts a delivery DTO to its domain entity.
func deliveryToDomain(dto DeliveryDTO) (*order.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(dto.Street, dto.City)
	if err != nil {
		return nil, err
	}

	status, err := order.DeliveryStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreDelivery(id, address, status)
}

// paymentToDomain converts a payment DTO to its domain entity.
func paymentToDomain(dto PaymentDTO) (*order.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	method, err := order.PaymentMethodFromString(dto.Method)
	if err != nil {
		return nil, err
	}

	return order.NewPayment(id, method, dto.Reference, dto.Successful)
}
