package order_test

import (
	"strings"
	"testing"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/core/domain/model/order"
	"negcom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRating_Valid(t *testing.T) {
	id := kernel.NewUUID()
	rating, err := order.NewRating(id, 4, "Great experience")
	require.NoError(t, err)
	assert.Equal(t, id, rating.ID())
	assert.Equal(t, 4, rating.Score())
	assert.Equal(t, "Great experience", rating.Comment())
	require.NoError(t, rating.Validate())
}

func TestNewRating_EmptyCommentAllowed(t *testing.T) {
	rating, err := order.NewRating(kernel.NewUUID(), 1, "")
	require.NoError(t, err)
	assert.Empty(t, rating.Comment())
}

func TestNewRating_ScoreBounds(t *testing.T) {
	_, err := order.NewRating(kernel.NewUUID(), 0, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = order.NewRating(kernel.NewUUID(), 6, "")
	require.Error(t, err)
}

func TestNewRating_CommentAtMaxLen(t *testing.T) {
	_, err := order.NewRating(kernel.NewUUID(), 5, strings.Repeat("x", order.RatingCommentMaxLen))
	require.NoError(t, err)

	_, err = order.NewRating(kernel.NewUUID(), 5, strings.Repeat("x", order.RatingCommentMaxLen+1))
	require.Error(t, err)
}

func TestRating_Validate_NotConstructed(t *testing.T) {
	var rating order.Rating
	require.ErrorIs(t, rating.Validate(), order.ErrRatingIsNotConstructed)
}

func TestNewPayment_Validation(t *testing.T) {
	_, err := order.NewPayment(kernel.NewUUID(), order.PaymentMethodCreditCard, "", true)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = order.NewPayment(kernel.NewUUID(), order.PaymentMethodUnknown, "PAY-007", true)
	require.Error(t, err)

	payment, err := order.NewPayment(kernel.NewUUID(), order.PaymentMethodCreditCard, "PAY-007", true)
	require.NoError(t, err)
	assert.True(t, payment.IsSuccessful())
	assert.Equal(t, "PAY-007", payment.Reference())
}

func TestPaymentMethodFromString(t *testing.T) {
	method, err := order.PaymentMethodFromString("credit_card")
	require.NoError(t, err)
	assert.Equal(t, order.PaymentMethodCreditCard, method)

	method, err = order.PaymentMethodFromString("mobile_money")
	require.NoError(t, err)
	assert.Equal(t, order.PaymentMethodMobileMoney, method)

	_, err = order.PaymentMethodFromString("barter")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
