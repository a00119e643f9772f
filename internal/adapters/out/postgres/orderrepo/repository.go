package orderrepo

import (
	"context"
	"errors"
	"time"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/core/domain/model/order"
	"negcom/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database together with its children.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateDuplicateKey(err, aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. Children that appeared
// since the last load are inserted, changed ones are updated. A rating
// insert that loses the race against a concurrent one violates the unique
// index on order_ratings.order_id and surfaces as ObjectAlreadyExistsError,
// rolling back the coupled delivery update with it.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update nested associations
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return translateDuplicateKey(result.Error, aggregate.ID())
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its children attached.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Delivery").
		Preload("Rating").
		Preload("Payment").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetLiveOrderForVehicle retrieves the buyer's pending or paid order for a
// vehicle. Used to reject a duplicate live order at placement time.
func (r *GormOrderRepository) GetLiveOrderForVehicle(
	ctx context.Context,
	buyerID kernel.UUID,
	vehicleID kernel.UUID,
) (*order.Order, error) {
	if err := errors.Join(buyerID.Validate(), vehicleID.Validate()); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Delivery").
		Preload("Rating").
		Preload("Payment").
		Where("buyer_id = ? AND vehicle_id = ? AND payment_status IN ?",
			buyerID.Bytes(), vehicleID.Bytes(),
			[]string{order.PaymentPending.String(), order.PaymentPaid.String()}).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("live order for vehicle", vehicleID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPendingOlderThan retrieves pending orders placed before the cutoff.
func (r *GormOrderRepository) GetAllPendingOlderThan(
	ctx context.Context,
	cutoff time.Time,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Delivery").
		Preload("Rating").
		Preload("Payment").
		Where("payment_status = ? AND created_at < ?", order.PaymentPending.String(), cutoff).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// translateDuplicateKey maps a unique constraint violation to the domain's
// conflict error. Relies on GORM's error translation being enabled on the
// connection.
func translateDuplicateKey(err error, id kernel.UUID) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewObjectAlreadyExistsErrorWithCause("order record", id.String(), err)
	}
	return err
}
