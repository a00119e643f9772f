package queries

import (
	"context"
	"database/sql"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetNegotiationDetailsQueryHandler reads a single negotiation projection,
// joining in its offer rows.
type GetNegotiationDetailsQueryHandler struct {
	db *gorm.DB
}

// NewGetNegotiationDetailsQueryHandler creates a handler for negotiation
// detail queries. Requires a GORM database connection for query execution.
func NewGetNegotiationDetailsQueryHandler(db *gorm.DB) GetNegotiationDetailsQueryHandler {
	return GetNegotiationDetailsQueryHandler{db: db}
}

// Handle executes the query for one negotiation.
// Returns ObjectNotFoundError when the negotiation does not exist. Offer rows
// are left-joined and ordered by creation time, so a negotiation without
// offers still resolves with an empty history.
func (h GetNegotiationDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetNegotiationDetailsQuery,
) (GetNegotiationDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetNegotiationDetailsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			n.id,
			n.buyer_id,
			n.vehicle_id,
			n.status,
			n.final_price_cents,
			o.offer_by,
			o.price_cents,
			o.reason
		FROM negotiations n
		LEFT JOIN negotiation_offers o ON o.negotiation_id = n.id
		WHERE n.id = ?
		ORDER BY o.created_at ASC
	`, query.NegotiationID().String()).Rows()
	if err != nil {
		return GetNegotiationDetailsQueryResponse{}, err
	}
	defer rows.Close()

	var (
		resp  GetNegotiationDetailsQueryResponse
		found bool
	)

	for rows.Next() {
		var (
			id         uuid.UUID
			buyerID    uuid.UUID
			vehicleID  uuid.UUID
			status     string
			finalPrice sql.NullInt64
			offerBy    sql.NullString
			priceCents sql.NullInt64
			reason     sql.NullString
		)

		err = rows.Scan(
			&id,
			&buyerID,
			&vehicleID,
			&status,
			&finalPrice,
			&offerBy,
			&priceCents,
			&reason,
		)
		if err != nil {
			return GetNegotiationDetailsQueryResponse{}, err
		}

		if !found {
			found = true
			resp.Status = status
			if finalPrice.Valid {
				cents := finalPrice.Int64
				resp.FinalPriceCents = &cents
			}
			if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
				return GetNegotiationDetailsQueryResponse{}, err
			}
			if resp.BuyerID, err = kernel.UUIDFromBytes(buyerID[:]); err != nil {
				return GetNegotiationDetailsQueryResponse{}, err
			}
			if resp.VehicleID, err = kernel.UUIDFromBytes(vehicleID[:]); err != nil {
				return GetNegotiationDetailsQueryResponse{}, err
			}
		}

		if offerBy.Valid {
			resp.Offers = append(resp.Offers, OfferDetails{
				By:         offerBy.String,
				PriceCents: priceCents.Int64,
				Reason:     reason.String,
			})
		}
	}

	if err = rows.Err(); err != nil {
		return GetNegotiationDetailsQueryResponse{}, err
	}

	if !found {
		return GetNegotiationDetailsQueryResponse{},
			errs.NewObjectNotFoundError("negotiation", query.NegotiationID().String())
	}

	return resp, nil
}
