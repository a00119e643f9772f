package negotiation_test

import (
	"strings"
	"testing"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/core/domain/model/negotiation"
	"negcom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOfferPrice(t *testing.T) kernel.Price {
	t.Helper()
	price, err := kernel.NewPriceFromCents(2_000_000)
	require.NoError(t, err)
	return price
}

func newOngoingNegotiation(t *testing.T) *negotiation.Negotiation {
	t.Helper()
	n, err := negotiation.NewNegotiation(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		testOfferPrice(t), "opening offer")
	require.NoError(t, err)
	return n
}

func TestNewNegotiation_OpensOngoingWithBuyerOffer(t *testing.T) {
	n := newOngoingNegotiation(t)

	assert.Equal(t, negotiation.StatusOngoing, n.Status())
	assert.Nil(t, n.FinalPrice())
	require.Len(t, n.Offers(), 1)
	opening := n.LatestOffer()
	assert.Equal(t, negotiation.OfferByBuyer, opening.By())
	assert.True(t, opening.Price().IsEqual(testOfferPrice(t)))
	assert.Equal(t, "opening offer", opening.Reason())
	require.NoError(t, n.Validate())
}

func TestNewNegotiation_InvalidInputs(t *testing.T) {
	price := testOfferPrice(t)

	_, err := negotiation.NewNegotiation(kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), price, "")
	require.Error(t, err)

	_, err = negotiation.NewNegotiation(kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(), price, "")
	require.Error(t, err)

	_, err = negotiation.NewNegotiation(kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{}, price, "")
	require.Error(t, err)

	_, err = negotiation.NewNegotiation(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		kernel.Price{}, "")
	require.Error(t, err)

	zero, err := kernel.NewPriceFromCents(0)
	require.NoError(t, err)
	_, err = negotiation.NewNegotiation(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), zero, "")
	require.Error(t, err)

	_, err = negotiation.NewNegotiation(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), price,
		strings.Repeat("x", negotiation.OfferReasonMaxLen+1))
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNegotiation_Validate_NotConstructed(t *testing.T) {
	var n negotiation.Negotiation
	require.ErrorIs(t, n.Validate(), negotiation.ErrNegotiationIsNotConstructed)
}

func TestNegotiation_MakeOfferAndCounter_AppendToHistory(t *testing.T) {
	n := newOngoingNegotiation(t)

	counterPrice, err := kernel.NewPriceFromCents(2_300_000)
	require.NoError(t, err)
	require.NoError(t, n.Counter(counterPrice, "counter"))

	secondPrice, err := kernel.NewPriceFromCents(2_100_000)
	require.NoError(t, err)
	require.NoError(t, n.MakeOffer(secondPrice, "meeting halfway"))

	require.Len(t, n.Offers(), 3)
	assert.Equal(t, negotiation.OfferByBuyer, n.Offers()[0].By())
	assert.Equal(t, negotiation.OfferBySeller, n.Offers()[1].By())
	assert.Equal(t, negotiation.OfferByBuyer, n.Offers()[2].By())
	assert.True(t, n.LatestOffer().Price().IsEqual(secondPrice))
}

func TestNegotiation_Accept_FixesFinalPriceToLatestOffer(t *testing.T) {
	n := newOngoingNegotiation(t)
	counterPrice, err := kernel.NewPriceFromCents(2_300_000)
	require.NoError(t, err)
	require.NoError(t, n.Counter(counterPrice, ""))

	require.NoError(t, n.Accept())

	assert.Equal(t, negotiation.StatusAccepted, n.Status())
	require.NotNil(t, n.FinalPrice())
	assert.True(t, n.FinalPrice().IsEqual(counterPrice))
}

func TestNegotiation_Accept_ForbiddenWhenEnded(t *testing.T) {
	n := newOngoingNegotiation(t)
	require.NoError(t, n.Accept())

	require.ErrorIs(t, n.Accept(), errs.ErrOperationIsForbidden)

	rejected := newOngoingNegotiation(t)
	require.NoError(t, rejected.Reject())
	require.ErrorIs(t, rejected.Accept(), errs.ErrOperationIsForbidden)
}

func TestNegotiation_Accept_ForbiddenWithoutOffers(t *testing.T) {
	n, err := negotiation.RestoreNegotiation(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		negotiation.StatusOngoing, nil, nil)
	require.NoError(t, err)

	require.ErrorIs(t, n.Accept(), errs.ErrOperationIsForbidden)
	assert.Equal(t, negotiation.StatusOngoing, n.Status())
}

func TestNegotiation_Reject_EndsWithoutFinalPrice(t *testing.T) {
	n := newOngoingNegotiation(t)

	require.NoError(t, n.Reject())
	assert.Equal(t, negotiation.StatusRejected, n.Status())
	assert.Nil(t, n.FinalPrice())

	require.ErrorIs(t, n.Reject(), errs.ErrOperationIsForbidden)
}

func TestNegotiation_MakeOffer_ForbiddenWhenEnded(t *testing.T) {
	n := newOngoingNegotiation(t)
	require.NoError(t, n.Accept())

	err := n.MakeOffer(testOfferPrice(t), "")
	require.ErrorIs(t, err, errs.ErrOperationIsForbidden)
	require.Len(t, n.Offers(), 1)
}

func TestRestoreNegotiation_RoundTrip(t *testing.T) {
	finalPrice, err := kernel.NewPriceFromCents(2_300_000)
	require.NoError(t, err)
	offer, err := negotiation.NewOffer(kernel.NewUUID(), negotiation.OfferBySeller, finalPrice, "counter")
	require.NoError(t, err)

	n, err := negotiation.RestoreNegotiation(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		negotiation.StatusAccepted, &finalPrice, []*negotiation.Offer{offer})
	require.NoError(t, err)

	assert.Equal(t, negotiation.StatusAccepted, n.Status())
	require.NotNil(t, n.FinalPrice())
	assert.True(t, n.FinalPrice().IsEqual(finalPrice))
	require.Len(t, n.Offers(), 1)
}

func TestRestoreNegotiation_InvalidStatus(t *testing.T) {
	_, err := negotiation.RestoreNegotiation(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		negotiation.StatusUnknown, nil, nil)
	require.Error(t, err)
}

func TestNewOffer_InvalidInputs(t *testing.T) {
	price := testOfferPrice(t)

	_, err := negotiation.NewOffer(kernel.UUID{}, negotiation.OfferByBuyer, price, "")
	require.Error(t, err)

	_, err = negotiation.NewOffer(kernel.NewUUID(), negotiation.OfferByUnknown, price, "")
	require.Error(t, err)

	zero, err := kernel.NewPriceFromCents(0)
	require.NoError(t, err)
	_, err = negotiation.NewOffer(kernel.NewUUID(), negotiation.OfferByBuyer, zero, "")
	require.Error(t, err)

	_, err = negotiation.NewOffer(kernel.NewUUID(), negotiation.OfferByBuyer, price,
		strings.Repeat("x", negotiation.OfferReasonMaxLen+1))
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNegotiation_IsEqual(t *testing.T) {
	a := newOngoingNegotiation(t)
	b := newOngoingNegotiation(t)

	assert.True(t, a.IsEqual(a))
	assert.False(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(nil))
}
