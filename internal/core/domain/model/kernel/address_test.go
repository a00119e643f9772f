package kernel_test

import (
	"strings"
	"testing"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress_Valid(t *testing.T) {
	addr, err := kernel.NewAddress("221B Baker Street", "London")
	require.NoError(t, err)
	assert.Equal(t, "221B Baker Street", addr.Street())
	assert.Equal(t, "London", addr.City())
	assert.Equal(t, "221B Baker Street, London", addr.String())
	require.NoError(t, addr.Validate())
}

func TestNewAddress_BoundaryLengths(t *testing.T) {
	minStreet := strings.Repeat("s", kernel.AddressStreetMinLen)
	maxStreet := strings.Repeat("s", kernel.AddressStreetMaxLen)
	minCity := strings.Repeat("c", kernel.AddressCityMinLen)
	maxCity := strings.Repeat("c", kernel.AddressCityMaxLen)

	_, err := kernel.NewAddress(minStreet, minCity)
	require.NoError(t, err)

	_, err = kernel.NewAddress(maxStreet, maxCity)
	require.NoError(t, err)
}

func TestNewAddress_StreetTooShort(t *testing.T) {
	_, err := kernel.NewAddress("too short", "London")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	var rangeErr *errs.ValueIsOutOfRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, "street", rangeErr.ParamName)
}

func TestNewAddress_StreetTooLong(t *testing.T) {
	_, err := kernel.NewAddress(strings.Repeat("s", kernel.AddressStreetMaxLen+1), "London")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewAddress_CityOutOfRange(t *testing.T) {
	_, err := kernel.NewAddress("221B Baker Street", "L")
	require.Error(t, err)

	var rangeErr *errs.ValueIsOutOfRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, "city", rangeErr.ParamName)

	_, err = kernel.NewAddress("221B Baker Street", strings.Repeat("c", kernel.AddressCityMaxLen+1))
	require.Error(t, err)
}

func TestNewAddress_RequiredFields(t *testing.T) {
	_, err := kernel.NewAddress("", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestAddress_Validate_ZeroValue(t *testing.T) {
	var addr kernel.Address

	err := addr.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrAddressIsNotConstructed)
}

func TestAddress_IsEqual(t *testing.T) {
	addr1, _ := kernel.NewAddress("221B Baker Street", "London")
	addr2, _ := kernel.NewAddress("221B Baker Street", "London")
	addr3, _ := kernel.NewAddress("10 Downing Street", "London")

	equal, err := addr1.IsEqual(addr2)
	require.NoError(t, err)
	assert.True(t, equal)

	equal, err = addr1.IsEqual(addr3)
	require.NoError(t, err)
	assert.False(t, equal)
}

func TestAddress_IsEqual_Unconstructed(t *testing.T) {
	addr, _ := kernel.NewAddress("221B Baker Street", "London")
	var zero kernel.Address

	_, err := addr.IsEqual(zero)
	require.Error(t, err)
}
