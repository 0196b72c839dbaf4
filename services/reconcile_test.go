package services_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warehouse-app/services"
	"warehouse-app/types"
)

func line(id int64, resourceID, unitID types.SnowflakeID, quantity string) services.ItemLine {
	return services.ItemLine{
		ID:         types.SnowflakeID(id),
		ResourceID: resourceID,
		UnitID:     unitID,
		Quantity:   qty(quantity),
	}
}

func TestReconcileItemsClassifiesLines(t *testing.T) {
	current := []services.ItemLine{
		line(1, 10, 20, "5"),
		line(2, 11, 20, "3"),
		line(3, 12, 20, "7"),
	}
	desired := []services.ItemLine{
		line(1, 10, 20, "8"),    // quantity change
		line(3, 12, 21, "7"),    // unit change
		line(0, 13, 20, "2.50"), // new line
	}

	plan, err := services.ReconcileItems(current, desired)
	require.NoError(t, err)

	require.Len(t, plan.Inserts, 1)
	assert.Equal(t, types.SnowflakeID(13), plan.Inserts[0].ResourceID)

	require.Len(t, plan.Updates, 2)
	assert.Equal(t, types.SnowflakeID(1), plan.Updates[0].New.ID)
	assert.Equal(t, types.SnowflakeID(3), plan.Updates[1].New.ID)

	require.Len(t, plan.Deletes, 1)
	assert.Equal(t, types.SnowflakeID(2), plan.Deletes[0].ID)
}

func TestReconcileItemsRejectsRepeatedID(t *testing.T) {
	current := []services.ItemLine{line(1, 10, 20, "5")}
	desired := []services.ItemLine{
		line(1, 10, 20, "10"),
		line(1, 10, 20, "10"),
	}

	_, err := services.ReconcileItems(current, desired)
	require.ErrorIs(t, err, services.ErrDuplicateItem)
}

func TestReconcileItemsRejectsUnknownID(t *testing.T) {
	current := []services.ItemLine{line(1, 10, 20, "5")}
	desired := []services.ItemLine{line(99, 10, 20, "5")}

	_, err := services.ReconcileItems(current, desired)
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrNotFound))
}

func TestReconcilePlanDeltas(t *testing.T) {
	current := []services.ItemLine{
		line(1, 10, 20, "5"),
		line(2, 11, 20, "3"),
		line(3, 12, 20, "7"),
	}
	desired := []services.ItemLine{
		line(1, 10, 20, "8"),
		line(3, 12, 21, "6"),
		line(0, 13, 20, "2"),
	}

	plan, err := services.ReconcileItems(current, desired)
	require.NoError(t, err)

	deltas := plan.Deltas()
	require.Len(t, deltas, 5)

	// delete of line 2
	assert.Equal(t, types.SnowflakeID(11), deltas[0].ResourceID)
	assert.True(t, deltas[0].Quantity.Equal(qty("-3")))

	// quantity change on line 1: +3 on the same key
	assert.Equal(t, types.SnowflakeID(10), deltas[1].ResourceID)
	assert.True(t, deltas[1].Quantity.Equal(qty("3")))

	// key change on line 3: old quantity off the old key, new quantity on the new
	assert.Equal(t, types.SnowflakeID(20), deltas[2].UnitID)
	assert.True(t, deltas[2].Quantity.Equal(qty("-7")))
	assert.Equal(t, types.SnowflakeID(21), deltas[3].UnitID)
	assert.True(t, deltas[3].Quantity.Equal(qty("6")))

	// insert
	assert.Equal(t, types.SnowflakeID(13), deltas[4].ResourceID)
	assert.True(t, deltas[4].Quantity.Equal(qty("2")))
}

func TestReconcilePlanChangedLines(t *testing.T) {
	current := []services.ItemLine{
		line(1, 10, 20, "5"),
		line(2, 11, 20, "3"),
	}
	desired := []services.ItemLine{
		line(1, 10, 20, "9"),  // same key, quantity only
		line(2, 11, 21, "3"),  // re-keyed
		line(0, 12, 20, "1"),  // new
	}

	plan, err := services.ReconcileItems(current, desired)
	require.NoError(t, err)

	changed := plan.ChangedLines()
	require.Len(t, changed, 2)
	assert.Equal(t, types.SnowflakeID(12), changed[0].ResourceID)
	assert.Equal(t, types.SnowflakeID(2), changed[1].ID)
}

func TestReconcilePlanHasItemChanges(t *testing.T) {
	current := []services.ItemLine{line(1, 10, 20, "5")}

	unchanged, err := services.ReconcileItems(current, []services.ItemLine{line(1, 10, 20, "5")})
	require.NoError(t, err)
	assert.False(t, unchanged.HasItemChanges())

	quantityChanged, err := services.ReconcileItems(current, []services.ItemLine{line(1, 10, 20, "6")})
	require.NoError(t, err)
	assert.True(t, quantityChanged.HasItemChanges())

	rekeyed, err := services.ReconcileItems(current, []services.ItemLine{line(1, 10, 21, "5")})
	require.NoError(t, err)
	assert.True(t, rekeyed.HasItemChanges())
}
