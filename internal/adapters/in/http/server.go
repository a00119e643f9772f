// Package http exposes the order and catalog operations over a JSON API.
// It coordinates between HTTP handlers and application use cases, mapping
// the domain error taxonomy onto status codes: validation errors become 400,
// denied operations 403, missing objects 404, and conflicts 409.
package http

import (
	"errors"
	"net/http"

	"negcom/internal/core/application/usecases/commands"
	"negcom/internal/core/application/usecases/queries"
	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/core/domain/services"
	"negcom/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Caller identity headers, populated by the authentication layer in front
// of this service.
const (
	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Role"
)

// Error is the JSON error payload returned on every failure.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server implements the HTTP handlers for order and catalog operations.
type Server struct {
	// Command handlers
	placeOrderHandler        commands.PlaceOrderCommandHandler
	recordPaymentHandler     commands.RecordPaymentCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	refundOrderHandler       commands.RefundOrderCommandHandler
	rateOrderHandler         commands.RateOrderCommandHandler
	createVehicleHandler     commands.CreateVehicleCommandHandler
	editVehicleHandler       commands.EditVehicleCommandHandler
	openNegotiationHandler   commands.OpenNegotiationCommandHandler
	makeOfferHandler         commands.MakeNegotiationOfferCommandHandler
	acceptNegotiationHandler commands.AcceptNegotiationCommandHandler
	rejectNegotiationHandler commands.RejectNegotiationCommandHandler

	// Query handlers
	getOrderDetailsHandler       queries.GetOrderDetailsQueryHandler
	getBuyerOrdersHandler        queries.GetBuyerOrdersQueryHandler
	getVehicleDetailsHandler     queries.GetVehicleDetailsQueryHandler
	getNegotiationDetailsHandler queries.GetNegotiationDetailsQueryHandler

	accessPolicy services.AccessPolicy
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	recordPaymentHandler commands.RecordPaymentCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	refundOrderHandler commands.RefundOrderCommandHandler,
	rateOrderHandler commands.RateOrderCommandHandler,
	createVehicleHandler commands.CreateVehicleCommandHandler,
	editVehicleHandler commands.EditVehicleCommandHandler,
	openNegotiationHandler commands.OpenNegotiationCommandHandler,
	makeOfferHandler commands.MakeNegotiationOfferCommandHandler,
	acceptNegotiationHandler commands.AcceptNegotiationCommandHandler,
	rejectNegotiationHandler commands.RejectNegotiationCommandHandler,
	getOrderDetailsHandler queries.GetOrderDetailsQueryHandler,
	getBuyerOrdersHandler queries.GetBuyerOrdersQueryHandler,
	getVehicleDetailsHandler queries.GetVehicleDetailsQueryHandler,
	getNegotiationDetailsHandler queries.GetNegotiationDetailsQueryHandler,
	accessPolicy services.AccessPolicy,
) *Server {
	return &Server{
		placeOrderHandler:            placeOrderHandler,
		recordPaymentHandler:         recordPaymentHandler,
		cancelOrderHandler:           cancelOrderHandler,
		refundOrderHandler:           refundOrderHandler,
		rateOrderHandler:             rateOrderHandler,
		createVehicleHandler:         createVehicleHandler,
		editVehicleHandler:           editVehicleHandler,
		openNegotiationHandler:       openNegotiationHandler,
		makeOfferHandler:             makeOfferHandler,
		acceptNegotiationHandler:     acceptNegotiationHandler,
		rejectNegotiationHandler:     rejectNegotiationHandler,
		getOrderDetailsHandler:       getOrderDetailsHandler,
		getBuyerOrdersHandler:        getBuyerOrdersHandler,
		getVehicleDetailsHandler:     getVehicleDetailsHandler,
		getNegotiationDetailsHandler: getNegotiationDetailsHandler,
		accessPolicy:                 accessPolicy,
	}
}

// RegisterRoutes attaches all handlers to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders/:orderID", s.GetOrder)
	api.POST("/orders/:orderID/payment", s.RecordPayment)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)
	api.POST("/orders/:orderID/refund", s.RefundOrder)
	api.POST("/orders/:orderID/rating", s.RateOrder)
	api.GET("/buyers/:buyerID/orders", s.GetBuyerOrders)

	api.POST("/vehicles", s.CreateVehicle)
	api.PUT("/vehicles/:vehicleID", s.EditVehicle)
	api.GET("/vehicles/:vehicleID", s.GetVehicle)

	api.POST("/negotiations", s.OpenNegotiation)
	api.GET("/negotiations/:negotiationID", s.GetNegotiation)
	api.POST("/negotiations/:negotiationID/offer", s.MakeNegotiationOffer)
	api.POST("/negotiations/:negotiationID/accept", s.AcceptNegotiation)
	api.POST("/negotiations/:negotiationID/reject", s.RejectNegotiation)
}

// caller reconstructs the authenticated identity from request headers.
func (s *Server) caller(ctx echo.Context) (services.Caller, error) {
	id, err := kernel.UUIDFromString(ctx.Request().Header.Get(HeaderUserID))
	if err != nil {
		return services.Caller{}, err
	}

	role, err := services.RoleFromString(ctx.Request().Header.Get(HeaderUserRole))
	if err != nil {
		return services.Caller{}, err
	}

	return services.Caller{ID: id, Role: role}, nil
}

// writeError maps a domain error to its HTTP representation.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrOperationIsForbidden):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		code = http.StatusConflict
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}

// PlaceOrderRequest is the payload for POST /api/v1/orders.
// Either vehicle_id (order at the listed price) or negotiation_id (order at
// the price of an accepted negotiation) must be set.
type PlaceOrderRequest struct {
	VehicleID     string `json:"vehicle_id"`
	NegotiationID string `json:"negotiation_id"`
	Street        string `json:"street"`
	City          string `json:"city"`
}

// PlaceOrderResponse returns the identifier of the created order.
type PlaceOrderResponse struct {
	ID string `json:"id"`
}

// PlaceOrder handles POST /api/v1/orders - places a new order for the caller.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	buyer, err := s.caller(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req PlaceOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	orderID := kernel.NewUUID()
	var cmd commands.PlaceOrderCommand
	if req.NegotiationID != "" {
		negotiationID, idErr := kernel.UUIDFromString(req.NegotiationID)
		if idErr != nil {
			return writeError(ctx, idErr)
		}
		cmd, err = commands.NewPlaceOrderCommandFromNegotiation(orderID, buyer.ID,
			negotiationID, req.Street, req.City)
	} else {
		vehicleID, idErr := kernel.UUIDFromString(req.VehicleID)
		if idErr != nil {
			return writeError(ctx, idErr)
		}
		cmd, err = commands.NewPlaceOrderCommand(orderID, buyer.ID, vehicleID, req.Street, req.City)
	}
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{ID: orderID.String()})
}

// OrderResponse is the read model returned for a single order.
type OrderResponse struct {
	ID            string `json:"id"`
	BuyerID       string `json:"buyer_id"`
	VehicleID     string `json:"vehicle_id"`
	PriceCents    int64  `json:"price_cents"`
	PaymentStatus string `json:"payment_status"`

	Delivery *DeliveryResponse `json:"delivery,omitempty"`
	Rating   *RatingResponse   `json:"rating,omitempty"`
	Payment  *PaymentResponse  `json:"payment,omitempty"`
}

// DeliveryResponse describes the order's delivery leg.
type DeliveryResponse struct {
	Street string `json:"street"`
	City   string `json:"city"`
	Status string `json:"status"`
}

// RatingResponse describes the buyer's rating.
type RatingResponse struct {
	Score   int    `json:"score"`
	Comment string `json:"comment,omitempty"`
}

// PaymentResponse describes the order's payment record.
type PaymentResponse struct {
	Method     string `json:"method"`
	Reference  string `json:"reference"`
	Successful bool   `json:"successful"`
}

// GetOrder handles GET /api/v1/orders/:orderID - retrieves one order.
// Buyers see only their own orders; admins see all.
func (s *Server) GetOrder(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderDetailsQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	details, err := s.getOrderDetailsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.accessPolicy.CanAccessOrder(caller, details.BuyerID); err != nil {
		return writeError(ctx, err)
	}

	resp := OrderResponse{
		ID:            details.ID.String(),
		BuyerID:       details.BuyerID.String(),
		VehicleID:     details.VehicleID.String(),
		PriceCents:    details.PriceCents,
		PaymentStatus: details.PaymentStatus,
	}
	if details.Delivery != nil {
		resp.Delivery = &DeliveryResponse{
			Street: details.Delivery.Street,
			City:   details.Delivery.City,
			Status: details.Delivery.Status,
		}
	}
	if details.Rating != nil {
		resp.Rating = &RatingResponse{
			Score:   details.Rating.Score,
			Comment: details.Rating.Comment,
		}
	}
	if details.Payment != nil {
		resp.Payment = &PaymentResponse{
			Method:     details.Payment.Method,
			Reference:  details.Payment.Reference,
			Successful: details.Payment.Successful,
		}
	}

	return ctx.JSON(http.StatusOK, resp)
}

// RecordPaymentRequest is the payload for the payment provider callback.
type RecordPaymentRequest struct {
	Method     string `json:"method"`
	Reference  string `json:"reference"`
	Successful bool   `json:"successful"`
}

// RecordPayment handles POST /api/v1/orders/:orderID/payment - records the
// outcome of a payment attempt. Called by the payment provider, not a user,
// so no caller identity is required.
func (s *Server) RecordPayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req RecordPaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewRecordPaymentCommand(orderID, req.Method, req.Reference, req.Successful)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.recordPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel - abandons a
// pending order. Allowed for the owning buyer and admins.
func (s *Server) CancelOrder(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.authorizeOrderAccess(ctx, caller, orderID); err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RefundOrder handles POST /api/v1/orders/:orderID/refund - returns the
// buyer's money for a paid order. Admin only.
func (s *Server) RefundOrder(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.accessPolicy.CanRefundOrder(caller); err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRefundOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.refundOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RateOrderRequest is the payload for POST /api/v1/orders/:orderID/rating.
type RateOrderRequest struct {
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

// RateOrder handles POST /api/v1/orders/:orderID/rating - attaches the
// buyer's one-time rating to a paid order and completes its delivery.
func (s *Server) RateOrder(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.authorizeOrderAccess(ctx, caller, orderID); err != nil {
		return writeError(ctx, err)
	}

	var req RateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewRateOrderCommand(orderID, req.Score, req.Comment)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.rateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// BuyerOrderResponse is one entry in a buyer's order history.
type BuyerOrderResponse struct {
	ID             string  `json:"id"`
	VehicleID      string  `json:"vehicle_id"`
	PriceCents     int64   `json:"price_cents"`
	PaymentStatus  string  `json:"payment_status"`
	DeliveryStatus *string `json:"delivery_status,omitempty"`
}

// GetBuyerOrders handles GET /api/v1/buyers/:buyerID/orders - lists a
// buyer's orders, newest first. Buyers see only their own history.
func (s *Server) GetBuyerOrders(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	buyerID, err := kernel.UUIDFromString(ctx.Param("buyerID"))
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.accessPolicy.CanAccessOrder(caller, buyerID); err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetBuyerOrdersQuery(buyerID)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getBuyerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	resp := make([]BuyerOrderResponse, len(orders))
	for i, o := range orders {
		resp[i] = BuyerOrderResponse{
			ID:             o.ID.String(),
			VehicleID:      o.VehicleID.String(),
			PriceCents:     o.PriceCents,
			PaymentStatus:  o.PaymentStatus,
			DeliveryStatus: o.DeliveryStatus,
		}
	}

	return ctx.JSON(http.StatusOK, resp)
}

// VehicleRequest is the payload for creating a vehicle listing.
type VehicleRequest struct {
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	Mileage      int    `json:"mileage"`
	EngineType   string `json:"engine_type"`
	Transmission string `json:"transmission"`
	BodyType     string `json:"body_type"`
	Color        string `json:"color"`
	PriceCents   int64  `json:"price_cents"`
	City         string `json:"city"`
	Condition    string `json:"condition"`
}

// CreateVehicleResponse returns the identifier of the created listing.
type CreateVehicleResponse struct {
	ID string `json:"id"`
}

// CreateVehicle handles POST /api/v1/vehicles - publishes a listing. Admin only.
func (s *Server) CreateVehicle(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.accessPolicy.CanManageCatalog(caller); err != nil {
		return writeError(ctx, err)
	}

	var req VehicleRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	vehicleID := kernel.NewUUID()
	cmd, err := commands.NewCreateVehicleCommand(vehicleID, req.Make, req.Model,
		req.Year, req.Mileage, req.EngineType, req.Transmission, req.BodyType,
		req.Color, req.PriceCents, req.City, req.Condition)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createVehicleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateVehicleResponse{ID: vehicleID.String()})
}

// EditVehicleRequest is the payload for updating a listing's descriptors.
// Empty fields are left unchanged.
type EditVehicleRequest struct {
	City      string `json:"city"`
	Condition string `json:"condition"`
}

// EditVehicle handles PUT /api/v1/vehicles/:vehicleID - upserts a listing's
// location and condition descriptors. Admin only.
func (s *Server) EditVehicle(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.accessPolicy.CanManageCatalog(caller); err != nil {
		return writeError(ctx, err)
	}

	vehicleID, err := kernel.UUIDFromString(ctx.Param("vehicleID"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req EditVehicleRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewEditVehicleCommand(vehicleID, req.City, req.Condition)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.editVehicleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// VehicleResponse is the read model returned for a single listing.
// Nil city or condition render as absent: "no information available".
type VehicleResponse struct {
	ID           string  `json:"id"`
	Make         string  `json:"make"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	Mileage      int     `json:"mileage"`
	EngineType   string  `json:"engine_type"`
	Transmission string  `json:"transmission"`
	BodyType     string  `json:"body_type"`
	Color        string  `json:"color"`
	PriceCents   int64   `json:"price_cents"`
	City         *string `json:"city,omitempty"`
	Condition    *string `json:"condition,omitempty"`
}

// GetVehicle handles GET /api/v1/vehicles/:vehicleID - retrieves one
// listing. Public: browsing the catalog needs no identity.
func (s *Server) GetVehicle(ctx echo.Context) error {
	vehicleID, err := kernel.UUIDFromString(ctx.Param("vehicleID"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetVehicleDetailsQuery(vehicleID)
	if err != nil {
		return writeError(ctx, err)
	}

	details, err := s.getVehicleDetailsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, VehicleResponse{
		ID:           details.ID.String(),
		Make:         details.Make,
		Model:        details.Model,
		Year:         details.Year,
		Mileage:      details.Mileage,
		EngineType:   details.EngineType,
		Transmission: details.Transmission,
		BodyType:     details.BodyType,
		Color:        details.Color,
		PriceCents:   details.PriceCents,
		City:         details.City,
		Condition:    details.ConditionGrade,
	})
}

// OpenNegotiationRequest is the payload for POST /api/v1/negotiations.
type OpenNegotiationRequest struct {
	VehicleID  string `json:"vehicle_id"`
	OfferCents int64  `json:"offer_cents"`
	Message    string `json:"message"`
}

// OpenNegotiationResponse returns the identifier of the created negotiation.
type OpenNegotiationResponse struct {
	ID string `json:"id"`
}

// OpenNegotiation handles POST /api/v1/negotiations - starts a price
// negotiation on a listing for the caller. The automated seller response is
// attached before the negotiation is returned.
func (s *Server) OpenNegotiation(ctx echo.Context) error {
	buyer, err := s.caller(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req OpenNegotiationRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	vehicleID, err := kernel.UUIDFromString(req.VehicleID)
	if err != nil {
		return writeError(ctx, err)
	}

	negotiationID := kernel.NewUUID()
	cmd, err := commands.NewOpenNegotiationCommand(negotiationID, buyer.ID, vehicleID,
		req.OfferCents, req.Message)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.openNegotiationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OpenNegotiationResponse{ID: negotiationID.String()})
}

// NegotiationOfferRequest is the payload for a follow-up buyer offer.
type NegotiationOfferRequest struct {
	OfferCents int64  `json:"offer_cents"`
	Message    string `json:"message"`
}

// MakeNegotiationOffer handles POST /api/v1/negotiations/:negotiationID/offer -
// records a follow-up buyer offer and the automated seller response.
func (s *Server) MakeNegotiationOffer(ctx echo.Context) error {
	buyer, err := s.caller(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	negotiationID, err := kernel.UUIDFromString(ctx.Param("negotiationID"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req NegotiationOfferRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewMakeNegotiationOfferCommand(negotiationID, buyer.ID,
		req.OfferCents, req.Message)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.makeOfferHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptNegotiation handles POST /api/v1/negotiations/:negotiationID/accept -
// the caller accepts the latest offer, fixing the final price.
func (s *Server) AcceptNegotiation(ctx echo.Context) error {
	buyer, err := s.caller(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	negotiationID, err := kernel.UUIDFromString(ctx.Param("negotiationID"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAcceptNegotiationCommand(negotiationID, buyer.ID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.acceptNegotiationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectNegotiation handles POST /api/v1/negotiations/:negotiationID/reject -
// the caller walks away from the negotiation.
func (s *Server) RejectNegotiation(ctx echo.Context) error {
	buyer, err := s.caller(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	negotiationID, err := kernel.UUIDFromString(ctx.Param("negotiationID"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRejectNegotiationCommand(negotiationID, buyer.ID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.rejectNegotiationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// NegotiationResponse is the read model returned for a single negotiation.
type NegotiationResponse struct {
	ID              string `json:"id"`
	BuyerID         string `json:"buyer_id"`
	VehicleID       string `json:"vehicle_id"`
	Status          string `json:"status"`
	FinalPriceCents *int64 `json:"final_price_cents,omitempty"`

	Offers []NegotiationOfferResponse `json:"offers"`
}

// NegotiationOfferResponse describes one offer in the history.
type NegotiationOfferResponse struct {
	By         string `json:"by"`
	PriceCents int64  `json:"price_cents"`
	Message    string `json:"message,omitempty"`
}

// GetNegotiation handles GET /api/v1/negotiations/:negotiationID - retrieves
// one negotiation with its offer history. Buyers see only their own.
func (s *Server) GetNegotiation(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	negotiationID, err := kernel.UUIDFromString(ctx.Param("negotiationID"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetNegotiationDetailsQuery(negotiationID)
	if err != nil {
		return writeError(ctx, err)
	}

	details, err := s.getNegotiationDetailsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.accessPolicy.CanAccessNegotiation(caller, details.BuyerID); err != nil {
		return writeError(ctx, err)
	}

	resp := NegotiationResponse{
		ID:              details.ID.String(),
		BuyerID:         details.BuyerID.String(),
		VehicleID:       details.VehicleID.String(),
		Status:          details.Status,
		FinalPriceCents: details.FinalPriceCents,
		Offers:          make([]NegotiationOfferResponse, len(details.Offers)),
	}
	for i, offer := range details.Offers {
		resp.Offers[i] = NegotiationOfferResponse{
			By:         offer.By,
			PriceCents: offer.PriceCents,
			Message:    offer.Reason,
		}
	}

	return ctx.JSON(http.StatusOK, resp)
}

// authorizeOrderAccess loads the order's owner and consults the access
// policy. Used by order mutations where the route itself does not carry
// the owning buyer.
func (s *Server) authorizeOrderAccess(ctx echo.Context, caller services.Caller, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderDetailsQuery(orderID)
	if err != nil {
		return err
	}

	details, err := s.getOrderDetailsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return s.accessPolicy.CanAccessOrder(caller, details.BuyerID)
}
