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

func TestMakeNegotiationOfferCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	veh := newTestVehicle(t) // listed at 2_500_000 cents
	buyerID := kernel.NewUUID()
	openingPrice, err := kernel.NewPriceFromCents(1_900_000)
	require.NoError(t, err)
	agreement, err := negotiation.NewNegotiation(kernel.NewUUID(), buyerID, veh.ID(),
		openingPrice, "opening offer")
	require.NoError(t, err)

	cmd, err := commands.NewMakeNegotiationOfferCommand(agreement.ID(), buyerID,
		2_200_000, "can stretch a little")
	require.NoError(t, err)

	vehicleRepo := new(MockVehicleRepository)
	negotiationRepo := new(MockNegotiationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NegotiationRepository").Return(negotiationRepo).Once(),
		negotiationRepo.On("Get", mock.Anything, agreement.ID()).Return(agreement, nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("Get", mock.Anything, veh.ID()).Return(veh, nil).Once(),
		negotiationRepo.On("Update", mock.Anything, agreement).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMakeNegotiationOfferCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, negotiation.StatusOngoing, agreement.Status())
	require.Len(t, agreement.Offers(), 3)
	require.Equal(t, negotiation.OfferByBuyer, agreement.Offers()[1].By())
	require.Equal(t, int64(2_200_000), agreement.Offers()[1].Price().Cents())
	counter := agreement.LatestOffer()
	require.Equal(t, negotiation.OfferBySeller, counter.By())
	// 88% of the listing gets the near counter at 92%.
	require.Equal(t, int64(2_300_000), counter.Price().Cents())
	uow.AssertExpectations(t)
}

func TestMakeNegotiationOfferCommandHandler_Handle_WrongBuyer(t *testing.T) {
	ctx := t.Context()
	agreement := newTestNegotiation(t)
	cmd, err := commands.NewMakeNegotiationOfferCommand(agreement.ID(), kernel.NewUUID(),
		2_200_000, "")
	require.NoError(t, err)

	negotiationRepo := new(MockNegotiationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NegotiationRepository").Return(negotiationRepo).Once(),
		negotiationRepo.On("Get", mock.Anything, agreement.ID()).Return(agreement, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMakeNegotiationOfferCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrOperationIsForbidden)
	negotiationRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	require.Len(t, agreement.Offers(), 1)
	uow.AssertExpectations(t)
}

func TestMakeNegotiationOfferCommandHandler_Handle_EndedNegotiation(t *testing.T) {
	ctx := t.Context()
	agreement := newAcceptedTestNegotiation(t)
	cmd, err := commands.NewMakeNegotiationOfferCommand(agreement.ID(), agreement.BuyerID(),
		2_200_000, "")
	require.NoError(t, err)

	negotiationRepo := new(MockNegotiationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NegotiationRepository").Return(negotiationRepo).Once(),
		negotiationRepo.On("Get", mock.Anything, agreement.ID()).Return(agreement, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMakeNegotiationOfferCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrOperationIsForbidden)
	negotiationRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestMakeNegotiationOfferCommandHandler_Handle_NegotiationNotFound(t *testing.T) {
	ctx := t.Context()
	negotiationID := kernel.NewUUID()
	cmd, err := commands.NewMakeNegotiationOfferCommand(negotiationID, kernel.NewUUID(),
		2_200_000, "")
	require.NoError(t, err)

	negotiationRepo := new(MockNegotiationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NegotiationRepository").Return(negotiationRepo).Once(),
		negotiationRepo.On("Get", mock.Anything, negotiationID).
			Return(nil, errs.NewObjectNotFoundError("negotiation", negotiationID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMakeNegotiationOfferCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}
