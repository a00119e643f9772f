package queries_test

import (
	"testing"

	"negcom/internal/core/application/usecases/queries"
	"negcom/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetVehicleDetailsQuery_Valid(t *testing.T) {
	vehicleID := kernel.NewUUID()
	query, err := queries.NewGetVehicleDetailsQuery(vehicleID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.VehicleID().IsEqual(vehicleID))
}

func TestGetVehicleDetailsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetVehicleDetailsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetVehicleDetailsQueryIsNotConstructed)
}
