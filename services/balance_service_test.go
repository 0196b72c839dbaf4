package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"warehouse-app/services"
)

func TestAdjustBatchCreatesRowOnPositiveDelta(t *testing.T) {
	db := newTestDB(t)
	balances := services.NewBalanceService(db, zap.NewNop())
	resource := newResource(t, db, "steel")
	unit := newUnit(t, db, "kg")

	err := balances.AdjustBatch(db, []services.BalanceAdjustment{
		{ResourceID: resource.ID, UnitID: unit.ID, Quantity: qty("12.5")},
	})
	require.NoError(t, err)

	assert.True(t, balanceQuantity(t, db, resource, unit).Equal(qty("12.5")))
}

func TestAdjustBatchCoalescesSameKey(t *testing.T) {
	db := newTestDB(t)
	balances := services.NewBalanceService(db, zap.NewNop())
	resource := newResource(t, db, "steel")
	unit := newUnit(t, db, "kg")

	// The negative entry alone would fail against a missing row, but the
	// merged delta for the key is +2.
	err := balances.AdjustBatch(db, []services.BalanceAdjustment{
		{ResourceID: resource.ID, UnitID: unit.ID, Quantity: qty("5")},
		{ResourceID: resource.ID, UnitID: unit.ID, Quantity: qty("-3")},
	})
	require.NoError(t, err)

	assert.True(t, balanceQuantity(t, db, resource, unit).Equal(qty("2")))
}

func TestAdjustBatchRejectsDecrementOfMissingRow(t *testing.T) {
	db := newTestDB(t)
	balances := services.NewBalanceService(db, zap.NewNop())
	resource := newResource(t, db, "steel")
	unit := newUnit(t, db, "kg")

	err := balances.AdjustBatch(db, []services.BalanceAdjustment{
		{ResourceID: resource.ID, UnitID: unit.ID, Quantity: qty("-1")},
	})
	require.ErrorIs(t, err, services.ErrMissingBalance)
}

func TestAdjustBatchRejectsNegativeResult(t *testing.T) {
	db := newTestDB(t)
	balances := services.NewBalanceService(db, zap.NewNop())
	resource := newResource(t, db, "steel")
	unit := newUnit(t, db, "kg")

	require.NoError(t, balances.AdjustBatch(db, []services.BalanceAdjustment{
		{ResourceID: resource.ID, UnitID: unit.ID, Quantity: qty("4")},
	}))

	err := balances.AdjustBatch(db, []services.BalanceAdjustment{
		{ResourceID: resource.ID, UnitID: unit.ID, Quantity: qty("-5")},
	})

	var stockErr *services.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.True(t, stockErr.Available.Equal(qty("4")))
	assert.True(t, stockErr.Required.Equal(qty("5")))
}

func TestValidateBatchChecksEachEntryAgainstPersistedState(t *testing.T) {
	db := newTestDB(t)
	balances := services.NewBalanceService(db, zap.NewNop())
	resource := newResource(t, db, "steel")
	unit := newUnit(t, db, "kg")

	require.NoError(t, balances.AdjustBatch(db, []services.BalanceAdjustment{
		{ResourceID: resource.ID, UnitID: unit.ID, Quantity: qty("2")},
	}))

	// Validation is per entry: the positive entry does not lend cover to the
	// negative one.
	err := balances.ValidateBatch(db, []services.BalanceAdjustment{
		{ResourceID: resource.ID, UnitID: unit.ID, Quantity: qty("10")},
		{ResourceID: resource.ID, UnitID: unit.ID, Quantity: qty("-5")},
	})

	var stockErr *services.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.True(t, stockErr.Available.Equal(qty("2")))
}

func TestValidateBatchPassesWhenCovered(t *testing.T) {
	db := newTestDB(t)
	balances := services.NewBalanceService(db, zap.NewNop())
	resource := newResource(t, db, "steel")
	unit := newUnit(t, db, "kg")

	require.NoError(t, balances.AdjustBatch(db, []services.BalanceAdjustment{
		{ResourceID: resource.ID, UnitID: unit.ID, Quantity: qty("10")},
	}))

	err := balances.ValidateBatch(db, []services.BalanceAdjustment{
		{ResourceID: resource.ID, UnitID: unit.ID, Quantity: qty("-10")},
	})
	require.NoError(t, err)
}
