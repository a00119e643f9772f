package vehicle_test

import (
	"strings"
	"testing"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/core/domain/model/vehicle"
	"negcom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listingPrice(t *testing.T) kernel.Price {
	t.Helper()
	price, err := kernel.NewPriceFromCents(1200050)
	require.NoError(t, err)
	return price
}

func newTestVehicle(t *testing.T) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(
		kernel.NewUUID(),
		"Toyota", "Hilux", 2021, 45000,
		"diesel", "manual", "Truck", "white",
		listingPrice(t),
		"Bulawayo", vehicle.ConditionUsedGood,
	)
	require.NoError(t, err)
	return v
}

func TestNewVehicle_AttachesBothDescriptors(t *testing.T) {
	v := newTestVehicle(t)

	require.NotNil(t, v.Location())
	assert.Equal(t, "Bulawayo", v.Location().City())
	require.NotNil(t, v.Condition())
	assert.Equal(t, vehicle.ConditionUsedGood, v.Condition().Grade())
	require.NoError(t, v.Validate())
}

func TestNewVehicle_MissingCityFailsValidation(t *testing.T) {
	_, err := vehicle.NewVehicle(
		kernel.NewUUID(),
		"Toyota", "Hilux", 2021, 45000,
		"diesel", "manual", "Truck", "white",
		listingPrice(t),
		"", vehicle.ConditionUsedGood,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewVehicle_InvalidConditionFailsValidation(t *testing.T) {
	_, err := vehicle.NewVehicle(
		kernel.NewUUID(),
		"Toyota", "Hilux", 2021, 45000,
		"diesel", "manual", "Truck", "white",
		listingPrice(t),
		"Bulawayo", vehicle.ConditionUnknown,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewVehicle_InvalidAttributes(t *testing.T) {
	price := listingPrice(t)

	_, err := vehicle.NewVehicle(kernel.NewUUID(), "", "Hilux", 2021, 45000,
		"diesel", "manual", "Truck", "white", price, "Bulawayo", vehicle.ConditionNew)
	require.Error(t, err)

	_, err = vehicle.NewVehicle(kernel.NewUUID(), strings.Repeat("m", vehicle.AttributeMaxLen+1),
		"Hilux", 2021, 45000, "diesel", "manual", "Truck", "white", price, "Bulawayo", vehicle.ConditionNew)
	require.Error(t, err)

	_, err = vehicle.NewVehicle(kernel.NewUUID(), "Toyota", "Hilux", 1899, 45000,
		"diesel", "manual", "Truck", "white", price, "Bulawayo", vehicle.ConditionNew)
	require.Error(t, err)

	_, err = vehicle.NewVehicle(kernel.NewUUID(), "Toyota", "Hilux", 2021, -1,
		"diesel", "manual", "Truck", "white", price, "Bulawayo", vehicle.ConditionNew)
	require.Error(t, err)
}

func TestVehicle_ChangeLocation_MutatesExistingRecord(t *testing.T) {
	v := newTestVehicle(t)
	originalID := v.Location().ID()

	require.NoError(t, v.ChangeLocation("Harare"))

	// Upsert semantics: the single existing record is updated in place.
	assert.Equal(t, "Harare", v.Location().City())
	assert.True(t, originalID.IsEqual(v.Location().ID()))
}

func TestVehicle_ChangeLocation_CreatesWhenAbsent(t *testing.T) {
	v, err := vehicle.RestoreVehicle(
		kernel.NewUUID(),
		"Toyota", "Hilux", 2021, 45000,
		"diesel", "manual", "Truck", "white",
		listingPrice(t),
		nil, nil,
	)
	require.NoError(t, err)
	require.Nil(t, v.Location())

	require.NoError(t, v.ChangeLocation("Harare"))
	require.NotNil(t, v.Location())
	assert.Equal(t, "Harare", v.Location().City())
}

func TestVehicle_ChangeLocation_InvalidCity(t *testing.T) {
	v := newTestVehicle(t)
	err := v.ChangeLocation("X")
	require.Error(t, err)
	assert.Equal(t, "Bulawayo", v.Location().City())
}

func TestVehicle_ChangeCondition(t *testing.T) {
	v := newTestVehicle(t)
	originalID := v.Condition().ID()

	require.NoError(t, v.ChangeCondition(vehicle.ConditionDamaged))
	assert.Equal(t, vehicle.ConditionDamaged, v.Condition().Grade())
	assert.True(t, originalID.IsEqual(v.Condition().ID()))

	err := v.ChangeCondition(vehicle.ConditionUnknown)
	require.Error(t, err)
	assert.Equal(t, vehicle.ConditionDamaged, v.Condition().Grade())
}

func TestRestoreVehicle_DescriptorsOptional(t *testing.T) {
	location, err := vehicle.NewLocation(kernel.NewUUID(), "Mutare")
	require.NoError(t, err)

	v, err := vehicle.RestoreVehicle(
		kernel.NewUUID(),
		"Mazda", "BT-50", 2018, 98000,
		"diesel", "automatic", "Truck", "silver",
		listingPrice(t),
		location, nil,
	)
	require.NoError(t, err)
	require.NotNil(t, v.Location())
	assert.Nil(t, v.Condition())
}

func TestConditionGradeFromString(t *testing.T) {
	for str, want := range map[string]vehicle.ConditionGrade{
		"new":            vehicle.ConditionNew,
		"used-excellent": vehicle.ConditionUsedExcellent,
		"used-good":      vehicle.ConditionUsedGood,
		"used-fair":      vehicle.ConditionUsedFair,
		"damaged":        vehicle.ConditionDamaged,
	} {
		grade, err := vehicle.ConditionGradeFromString(str)
		require.NoError(t, err)
		assert.Equal(t, want, grade)
		assert.Equal(t, str, grade.String())
	}

	_, err := vehicle.ConditionGradeFromString("mint")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestVehicle_Validate_NotConstructed(t *testing.T) {
	var v vehicle.Vehicle
	require.ErrorIs(t, v.Validate(), vehicle.ErrVehicleIsNotConstructed)
}
