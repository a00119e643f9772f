package queries

import (
	"context"
	"database/sql"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderDetailsQueryHandler reads a single order projection, joining in
// the optional delivery, rating, and payment rows.
type GetOrderDetailsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderDetailsQueryHandler creates a handler for order detail queries.
// Requires a GORM database connection for query execution.
func NewGetOrderDetailsQueryHandler(db *gorm.DB) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{db: db}
}

// Handle executes the query for one order.
// Returns ObjectNotFoundError when the order does not exist. Child rows are
// left-joined: their absence produces nil sections, not an error.
func (h GetOrderDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailsQuery,
) (GetOrderDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.buyer_id,
			o.vehicle_id,
			o.price_cents,
			o.payment_status,
			d.street,
			d.city,
			d.status,
			r.score,
			r.comment,
			p.method,
			p.reference,
			p.successful
		FROM orders o
		LEFT JOIN order_deliveries d ON d.order_id = o.id
		LEFT JOIN order_ratings r ON r.order_id = o.id
		LEFT JOIN order_payments p ON p.order_id = o.id
		WHERE o.id = ?
	`, query.OrderID().String()).Rows()
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderDetailsQueryResponse{}, err
		}
		return GetOrderDetailsQueryResponse{},
			errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	var (
		resp       GetOrderDetailsQueryResponse
		id         uuid.UUID
		buyerID    uuid.UUID
		vehicleID  uuid.UUID
		street     sql.NullString
		city       sql.NullString
		status     sql.NullString
		score      sql.NullInt64
		comment    sql.NullString
		method     sql.NullString
		reference  sql.NullString
		successful sql.NullBool
	)

	err = rows.Scan(
		&id,
		&buyerID,
		&vehicleID,
		&resp.PriceCents,
		&resp.PaymentStatus,
		&street,
		&city,
		&status,
		&score,
		&comment,
		&method,
		&reference,
		&successful,
	)
	if err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}
	if resp.BuyerID, err = kernel.UUIDFromBytes(buyerID[:]); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}
	if resp.VehicleID, err = kernel.UUIDFromBytes(vehicleID[:]); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	if status.Valid {
		resp.Delivery = &DeliveryDetails{
			Street: street.String,
			City:   city.String,
			Status: status.String,
		}
	}
	if score.Valid {
		resp.Rating = &RatingDetails{
			Score:   int(score.Int64),
			Comment: comment.String,
		}
	}
	if method.Valid {
		resp.Payment = &PaymentDetails{
			Method:     method.String,
			Reference:  reference.String,
			Successful: successful.Bool,
		}
	}

	if err = rows.Err(); err != nil {
		return GetOrderDetailsQueryResponse{}, err
	}

	return resp, nil
}
