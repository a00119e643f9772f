package commands_test

import (
	"testing"
	"time"

	"negcom/internal/core/application/usecases/commands"
	"negcom/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewExpireStaleOrdersCommand_InvalidMaxAge(t *testing.T) {
	for _, maxAge := range []time.Duration{0, -time.Hour} {
		_, err := commands.NewExpireStaleOrdersCommand(maxAge)
		require.Error(t, err)
	}
}

func TestExpireStaleOrdersCommandHandler_Handle_CancelsStaleOrders(t *testing.T) {
	ctx := t.Context()
	first := newTestOrder(t)
	second := newTestOrder(t)
	cmd, _ := commands.NewExpireStaleOrdersCommand(24 * time.Hour)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllPendingOlderThan", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{first, second}, nil).Once(),
		repo.On("Update", mock.Anything, first).Return(nil).Once(),
		repo.On("Update", mock.Anything, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewExpireStaleOrdersCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, order.PaymentFailed, first.PaymentStatus())
	require.Equal(t, order.PaymentFailed, second.PaymentStatus())
	uow.AssertExpectations(t)
}

func TestExpireStaleOrdersCommandHandler_Handle_EmptySweep(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewExpireStaleOrdersCommand(time.Hour)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllPendingOlderThan", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewExpireStaleOrdersCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
