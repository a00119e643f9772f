package commands_test

import (
	"testing"

	"negcom/internal/core/application/usecases/commands"
	"negcom/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand_Success(t *testing.T) {
	orderID := kernel.NewUUID()
	buyerID := kernel.NewUUID()
	vehicleID := kernel.NewUUID()

	cmd, err := commands.NewPlaceOrderCommand(orderID, buyerID, vehicleID, "12 Marina Road", "Lagos")
	require.NoError(t, err)
	assert.True(t, cmd.OrderID().IsEqual(orderID))
	assert.True(t, cmd.BuyerID().IsEqual(buyerID))
	assert.True(t, cmd.VehicleID().IsEqual(vehicleID))
	assert.Equal(t, "12 Marina Road", cmd.Address().Street())
	assert.Equal(t, "Lagos", cmd.Address().City())
	assert.NoError(t, cmd.Validate())
}

func TestNewPlaceOrderCommand_InvalidAddress(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"short", "Lagos")
	require.Error(t, err)
}

func TestNewPlaceOrderCommand_EmptyUUID(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(),
		"12 Marina Road", "Lagos")
	require.Error(t, err)
}

func TestPlaceOrderCommand_NotConstructed(t *testing.T) {
	cmd := commands.PlaceOrderCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
}
