package commands_test

import (
	"testing"

	"negcom/internal/core/application/usecases/commands"
	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/core/domain/model/negotiation"
	"negcom/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOpenNegotiationCommandHandler_Handle_CounterAttached(t *testing.T) {
	ctx := t.Context()
	veh := newTestVehicle(t) // listed at 2_500_000 cents
	buyerID := kernel.NewUUID()
	cmd, err := commands.NewOpenNegotiationCommand(kernel.NewUUID(), buyerID, veh.ID(),
		2_000_000, "cash buyer")
	require.NoError(t, err)

	var opened *negotiation.Negotiation
	vehicleRepo := new(MockVehicleRepository)
	negotiationRepo := new(MockNegotiationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("Get", mock.Anything, veh.ID()).Return(veh, nil).Once(),
		uow.On("NegotiationRepository").Return(negotiationRepo).Once(),
		negotiationRepo.On("GetOngoingForVehicle", mock.Anything, buyerID, veh.ID()).
			Return(nil, errs.NewObjectNotFoundError("negotiation", veh.ID().String())).Once(),
		negotiationRepo.On("Add", mock.Anything, mock.AnythingOfType("*negotiation.Negotiation")).
			Run(func(args mock.Arguments) { opened = args.Get(1).(*negotiation.Negotiation) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewOpenNegotiationCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, opened)
	require.Equal(t, negotiation.StatusOngoing, opened.Status())
	require.Nil(t, opened.FinalPrice())
	require.Len(t, opened.Offers(), 2)
	require.Equal(t, negotiation.OfferByBuyer, opened.Offers()[0].By())
	counter := opened.LatestOffer()
	require.Equal(t, negotiation.OfferBySeller, counter.By())
	// 80% of the listing gets the distant counter at 90%.
	require.Equal(t, int64(2_250_000), counter.Price().Cents())

	vehicleRepo.AssertExpectations(t)
	negotiationRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestOpenNegotiationCommandHandler_Handle_HighOfferAcceptedImmediately(t *testing.T) {
	ctx := t.Context()
	veh := newTestVehicle(t)
	buyerID := kernel.NewUUID()
	cmd, err := commands.NewOpenNegotiationCommand(kernel.NewUUID(), buyerID, veh.ID(),
		2_400_000, "")
	require.NoError(t, err)

	var opened *negotiation.Negotiation
	vehicleRepo := new(MockVehicleRepository)
	negotiationRepo := new(MockNegotiationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("Get", mock.Anything, veh.ID()).Return(veh, nil).Once(),
		uow.On("NegotiationRepository").Return(negotiationRepo).Once(),
		negotiationRepo.On("GetOngoingForVehicle", mock.Anything, buyerID, veh.ID()).
			Return(nil, errs.NewObjectNotFoundError("negotiation", veh.ID().String())).Once(),
		negotiationRepo.On("Add", mock.Anything, mock.AnythingOfType("*negotiation.Negotiation")).
			Run(func(args mock.Arguments) { opened = args.Get(1).(*negotiation.Negotiation) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewOpenNegotiationCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, opened)
	require.Equal(t, negotiation.StatusAccepted, opened.Status())
	require.NotNil(t, opened.FinalPrice())
	require.Equal(t, int64(2_400_000), opened.FinalPrice().Cents())
	uow.AssertExpectations(t)
}

func TestOpenNegotiationCommandHandler_Handle_VehicleNotFound(t *testing.T) {
	ctx := t.Context()
	vehicleID := kernel.NewUUID()
	cmd, err := commands.NewOpenNegotiationCommand(kernel.NewUUID(), kernel.NewUUID(), vehicleID,
		2_000_000, "")
	require.NoError(t, err)

	vehicleRepo := new(MockVehicleRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("Get", mock.Anything, vehicleID).
			Return(nil, errs.NewObjectNotFoundError("vehicle", vehicleID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewOpenNegotiationCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestOpenNegotiationCommandHandler_Handle_DuplicateOngoingNegotiation(t *testing.T) {
	ctx := t.Context()
	veh := newTestVehicle(t)
	buyerID := kernel.NewUUID()
	cmd, err := commands.NewOpenNegotiationCommand(kernel.NewUUID(), buyerID, veh.ID(),
		2_000_000, "")
	require.NoError(t, err)

	vehicleRepo := new(MockVehicleRepository)
	negotiationRepo := new(MockNegotiationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("Get", mock.Anything, veh.ID()).Return(veh, nil).Once(),
		uow.On("NegotiationRepository").Return(negotiationRepo).Once(),
		negotiationRepo.On("GetOngoingForVehicle", mock.Anything, buyerID, veh.ID()).
			Return(newTestNegotiation(t), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewOpenNegotiationCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	negotiationRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestOpenNegotiationCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockUoWFactory)
	h := commands.NewOpenNegotiationCommandHandler(factory)
	err := h.Handle(t.Context(), commands.OpenNegotiationCommand{})
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
