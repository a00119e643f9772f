package queries

import (
	"context"
	"database/sql"

	"negcom/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBuyerOrdersQueryHandler reads a buyer's order history from the
// database. An empty history is a valid result, not an error.
type GetBuyerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetBuyerOrdersQueryHandler creates a handler for buyer history queries.
// Requires a GORM database connection for query execution.
func NewGetBuyerOrdersQueryHandler(db *gorm.DB) GetBuyerOrdersQueryHandler {
	return GetBuyerOrdersQueryHandler{db: db}
}

// Handle executes the query for a buyer's orders, newest first.
func (h GetBuyerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetBuyerOrdersQuery,
) ([]GetBuyerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetBuyerOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.vehicle_id,
			o.price_cents,
			o.payment_status,
			d.status
		FROM orders o
		LEFT JOIN order_deliveries d ON d.order_id = o.id
		WHERE o.buyer_id = ?
		ORDER BY o.created_at DESC
	`, query.BuyerID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderResp      GetBuyerOrdersQueryResponse
			id             uuid.UUID
			vehicleID      uuid.UUID
			deliveryStatus sql.NullString
		)

		err = rows.Scan(
			&id,
			&vehicleID,
			&orderResp.PriceCents,
			&orderResp.PaymentStatus,
			&deliveryStatus,
		)
		if err != nil {
			return nil, err
		}

		if orderResp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if orderResp.VehicleID, err = kernel.UUIDFromBytes(vehicleID[:]); err != nil {
			return nil, err
		}
		if deliveryStatus.Valid {
			orderResp.DeliveryStatus = &deliveryStatus.String
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
