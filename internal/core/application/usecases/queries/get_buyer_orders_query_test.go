package queries_test

import (
	"testing"

	"negcom/internal/core/application/usecases/queries"
	"negcom/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetBuyerOrdersQuery_Valid(t *testing.T) {
	buyerID := kernel.NewUUID()
	query, err := queries.NewGetBuyerOrdersQuery(buyerID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.BuyerID().IsEqual(buyerID))
}

func TestGetBuyerOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetBuyerOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetBuyerOrdersQueryIsNotConstructed)
}
