package negotiationrepo

import (
	"context"
	"errors"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/core/domain/model/negotiation"
	"negcom/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormNegotiationRepository implements NegotiationRepository using GORM.
type GormNegotiationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormNegotiationRepository creates a new GORM negotiation repository.
func NewGormNegotiationRepository(db *gorm.DB, tracker aggregateTracker) *GormNegotiationRepository {
	return &GormNegotiationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new negotiation to the database together with its offers.
func (r *GormNegotiationRepository) Add(ctx context.Context, aggregate *negotiation.Negotiation) error {
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

// Update saves an existing negotiation. Offers that appeared since the last
// load are inserted; existing rows keep their values since the history is
// append-only.
func (r *GormNegotiationRepository) Update(ctx context.Context, aggregate *negotiation.Negotiation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

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

// Get retrieves a negotiation by ID with its offer history attached, oldest
// offer first.
func (r *GormNegotiationRepository) Get(ctx context.Context, id kernel.UUID) (*negotiation.Negotiation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto NegotiationDTO
	err := r.db.WithContext(ctx).
		Preload("Offers", func(db *gorm.DB) *gorm.DB {
			return db.Order("negotiation_offers.created_at ASC")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("negotiation", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetOngoingForVehicle retrieves the buyer's ongoing negotiation for a
// vehicle. Used to reject a duplicate active negotiation at opening time.
func (r *GormNegotiationRepository) GetOngoingForVehicle(
	ctx context.Context,
	buyerID kernel.UUID,
	vehicleID kernel.UUID,
) (*negotiation.Negotiation, error) {
	if err := errors.Join(buyerID.Validate(), vehicleID.Validate()); err != nil {
		return nil, err
	}

	var dto NegotiationDTO
	err := r.db.WithContext(ctx).
		Preload("Offers", func(db *gorm.DB) *gorm.DB {
			return db.Order("negotiation_offers.created_at ASC")
		}).
		Where("buyer_id = ? AND vehicle_id = ? AND status = ?",
			buyerID.Bytes(), vehicleID.Bytes(), negotiation.StatusOngoing.String()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ongoing negotiation for vehicle", vehicleID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// translateDuplicateKey maps a unique constraint violation to the domain's
// conflict error. Relies on GORM's error translation being enabled on the
// connection.
func translateDuplicateKey(err error, id kernel.UUID) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewObjectAlreadyExistsErrorWithCause("negotiation record", id.String(), err)
	}
	return err
}
