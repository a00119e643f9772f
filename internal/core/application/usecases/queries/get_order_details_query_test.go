package queries_test

import (
	"testing"

	"negcom/internal/core/application/usecases/queries"
	"negcom/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderDetailsQuery_Valid(t *testing.T) {
	orderID := kernel.NewUUID()
	query, err := queries.NewGetOrderDetailsQuery(orderID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.OrderID().IsEqual(orderID))
}

func TestNewGetOrderDetailsQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetOrderDetailsQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetOrderDetailsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderDetailsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderDetailsQueryIsNotConstructed)
}
