package commands_test

import (
	"context"
	"testing"
	"time"

	"negcom/internal/core/application/usecases/commands"
	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/core/domain/model/negotiation"
	"negcom/internal/core/domain/model/order"
	"negcom/internal/core/domain/model/vehicle"
	"negcom/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetLiveOrderForVehicle(
	ctx context.Context, buyerID kernel.UUID, vehicleID kernel.UUID,
) (*order.Order, error) {
	args := m.Called(ctx, buyerID, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllPendingOlderThan(
	ctx context.Context, cutoff time.Time,
) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockVehicleUoW struct{ mock.Mock }

func (m *MockVehicleUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVehicleUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVehicleUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVehicleUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

type MockVehicleUoWFactory struct{ mock.Mock }

func (m *MockVehicleUoWFactory) Create() commands.VehicleUoW {
	args := m.Called()
	return args.Get(0).(commands.VehicleUoW)
}

type MockNegotiationRepository struct{ mock.Mock }

func (m *MockNegotiationRepository) Add(ctx context.Context, n *negotiation.Negotiation) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNegotiationRepository) Update(ctx context.Context, n *negotiation.Negotiation) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNegotiationRepository) Get(ctx context.Context, id kernel.UUID) (*negotiation.Negotiation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*negotiation.Negotiation), args.Error(1)
}

func (m *MockNegotiationRepository) GetOngoingForVehicle(
	ctx context.Context, buyerID kernel.UUID, vehicleID kernel.UUID,
) (*negotiation.Negotiation, error) {
	args := m.Called(ctx, buyerID, vehicleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*negotiation.Negotiation), args.Error(1)
}

type MockNegotiationUoW struct{ mock.Mock }

func (m *MockNegotiationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNegotiationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNegotiationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNegotiationUoW) NegotiationRepository() ports.NegotiationRepository {
	args := m.Called()
	return args.Get(0).(ports.NegotiationRepository)
}

type MockNegotiationUoWFactory struct{ mock.Mock }

func (m *MockNegotiationUoWFactory) Create() commands.NegotiationUoW {
	args := m.Called()
	return args.Get(0).(commands.NegotiationUoW)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

func (m *MockUoW) NegotiationRepository() ports.NegotiationRepository {
	args := m.Called()
	return args.Get(0).(ports.NegotiationRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	price, err := kernel.NewPriceFromCents(1_200_050)
	require.NoError(t, err)
	address, err := kernel.NewAddress("12 Marina Road", "Lagos")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), price, address)
	require.NoError(t, err)
	return o
}

func newPaidTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o := newTestOrder(t)
	payment, err := order.NewPayment(kernel.NewUUID(), order.PaymentMethodCreditCard, "ref-001", true)
	require.NoError(t, err)
	require.NoError(t, o.RecordPayment(payment))
	return o
}

func newTestNegotiation(t *testing.T) *negotiation.Negotiation {
	t.Helper()
	offerPrice, err := kernel.NewPriceFromCents(2_000_000)
	require.NoError(t, err)
	n, err := negotiation.NewNegotiation(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		offerPrice, "cash buyer, can close this week")
	require.NoError(t, err)
	return n
}

func newAcceptedTestNegotiation(t *testing.T) *negotiation.Negotiation {
	t.Helper()
	n := newTestNegotiation(t)
	require.NoError(t, n.Accept())
	return n
}

func newTestVehicle(t *testing.T) *vehicle.Vehicle {
	t.Helper()
	price, err := kernel.NewPriceFromCents(2_500_000)
	require.NoError(t, err)
	v, err := vehicle.NewVehicle(kernel.NewUUID(), "Toyota", "Corolla", 2021, 15000,
		"petrol", "automatic", "sedan", "silver", price, "Abuja", vehicle.ConditionUsedExcellent)
	require.NoError(t, err)
	return v
}
