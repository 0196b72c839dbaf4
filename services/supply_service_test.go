package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warehouse-app/models"
	"warehouse-app/services"
)

func TestSupplyCreateCreditsLedger(t *testing.T) {
	db := newTestDB(t)
	supplies := newSupplyService(db)
	steel := newResource(t, db, "steel")
	kg := newUnit(t, db, "kg")
	m := newUnit(t, db, "m")

	doc := supplyDoc("SUP-001",
		supplyItem(steel, kg, "10"),
		supplyItem(steel, m, "4"),
		supplyItem(steel, kg, "2.5"),
	)
	require.NoError(t, supplies.Create(doc))

	assert.True(t, balanceQuantity(t, db, steel, kg).Equal(qty("12.5")))
	assert.True(t, balanceQuantity(t, db, steel, m).Equal(qty("4")))

	stored, err := supplies.GetByID(doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "SUP-001", stored.Number)
	assert.Len(t, stored.Items, 3)
}

func TestSupplyCreateAllowsEmptyDocument(t *testing.T) {
	db := newTestDB(t)
	supplies := newSupplyService(db)

	doc := supplyDoc("SUP-EMPTY")
	require.NoError(t, supplies.Create(doc))

	stored, err := supplies.GetByID(doc.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Items)
}

func TestSupplyCreateRejectsDuplicateNumber(t *testing.T) {
	db := newTestDB(t)
	supplies := newSupplyService(db)
	steel := newResource(t, db, "steel")
	kg := newUnit(t, db, "kg")

	require.NoError(t, supplies.Create(supplyDoc("SUP-001", supplyItem(steel, kg, "1"))))

	err := supplies.Create(supplyDoc("SUP-001", supplyItem(steel, kg, "2")))
	require.ErrorIs(t, err, services.ErrDuplicateNumber)

	// The rejected document must not have touched the ledger.
	assert.True(t, balanceQuantity(t, db, steel, kg).Equal(qty("1")))
}

func TestSupplyCreateRejectsArchivedResource(t *testing.T) {
	db := newTestDB(t)
	supplies := newSupplyService(db)
	steel := newResource(t, db, "steel")
	kg := newUnit(t, db, "kg")

	steel.IsArchived = true
	require.NoError(t, db.Save(steel).Error)

	err := supplies.Create(supplyDoc("SUP-001", supplyItem(steel, kg, "3")))

	var archivedErr *services.ArchivedEntityError
	require.ErrorAs(t, err, &archivedErr)
	assert.Equal(t, "resource", archivedErr.Kind)

	var count int64
	require.NoError(t, db.Model(&models.SupplyDocument{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.True(t, balanceQuantity(t, db, steel, kg).Equal(qty("0")))
}

func TestSupplyCreateRejectsNonPositiveQuantity(t *testing.T) {
	db := newTestDB(t)
	supplies := newSupplyService(db)
	steel := newResource(t, db, "steel")
	kg := newUnit(t, db, "kg")

	err := supplies.Create(supplyDoc("SUP-001", supplyItem(steel, kg, "0")))
	require.ErrorIs(t, err, services.ErrNonPositiveQuantity)
}

func TestSupplyUpdateAppliesReconciledDeltas(t *testing.T) {
	db := newTestDB(t)
	supplies := newSupplyService(db)
	steel := newResource(t, db, "steel")
	copper := newResource(t, db, "copper")
	kg := newUnit(t, db, "kg")

	doc := supplyDoc("SUP-001",
		supplyItem(steel, kg, "10"),
		supplyItem(copper, kg, "5"),
	)
	require.NoError(t, supplies.Create(doc))

	stored, err := supplies.GetByID(doc.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 2)

	var steelItem, copperItem models.SupplyItem
	for _, item := range stored.Items {
		if item.ResourceID == steel.ID {
			steelItem = item
		} else {
			copperItem = item
		}
	}

	// Raise steel to 15, move the copper line over to steel, add a new line.
	input := supplyDoc("SUP-001",
		models.SupplyItem{BaseModel: models.BaseModel{ID: steelItem.ID}, ResourceID: steel.ID, UnitID: kg.ID, Quantity: qty("15")},
		models.SupplyItem{BaseModel: models.BaseModel{ID: copperItem.ID}, ResourceID: steel.ID, UnitID: kg.ID, Quantity: qty("5")},
		supplyItem(copper, kg, "2"),
	)
	require.NoError(t, supplies.Update(doc.ID, input))

	assert.True(t, balanceQuantity(t, db, steel, kg).Equal(qty("20")))
	assert.True(t, balanceQuantity(t, db, copper, kg).Equal(qty("2")))

	updated, err := supplies.GetByID(doc.ID)
	require.NoError(t, err)
	assert.Len(t, updated.Items, 3)
}

func TestSupplyUpdateRejectsForeignItemID(t *testing.T) {
	db := newTestDB(t)
	supplies := newSupplyService(db)
	steel := newResource(t, db, "steel")
	kg := newUnit(t, db, "kg")

	doc := supplyDoc("SUP-001", supplyItem(steel, kg, "10"))
	require.NoError(t, supplies.Create(doc))

	input := supplyDoc("SUP-001",
		models.SupplyItem{BaseModel: models.BaseModel{ID: 424242}, ResourceID: steel.ID, UnitID: kg.ID, Quantity: qty("10")},
	)
	err := supplies.Update(doc.ID, input)
	require.ErrorIs(t, err, services.ErrNotFound)

	// Nothing changed.
	assert.True(t, balanceQuantity(t, db, steel, kg).Equal(qty("10")))
}

func TestSupplyUpdateRejectsRepeatedItemID(t *testing.T) {
	db := newTestDB(t)
	supplies := newSupplyService(db)
	steel := newResource(t, db, "steel")
	kg := newUnit(t, db, "kg")

	doc := supplyDoc("SUP-001", supplyItem(steel, kg, "5"))
	require.NoError(t, supplies.Create(doc))

	stored, err := supplies.GetByID(doc.ID)
	require.NoError(t, err)
	itemID := stored.Items[0].ID

	// The same line sent twice must not be diffed twice against the old
	// quantity; that would book the change once per occurrence and leave the
	// ledger ahead of the document.
	input := supplyDoc("SUP-001",
		models.SupplyItem{BaseModel: models.BaseModel{ID: itemID}, ResourceID: steel.ID, UnitID: kg.ID, Quantity: qty("10")},
		models.SupplyItem{BaseModel: models.BaseModel{ID: itemID}, ResourceID: steel.ID, UnitID: kg.ID, Quantity: qty("10")},
	)
	err = supplies.Update(doc.ID, input)
	require.ErrorIs(t, err, services.ErrDuplicateItem)

	assert.True(t, balanceQuantity(t, db, steel, kg).Equal(qty("5")))
	unchanged, err := supplies.GetByID(doc.ID)
	require.NoError(t, err)
	require.Len(t, unchanged.Items, 1)
	assert.True(t, unchanged.Items[0].Quantity.Equal(qty("5")))
}

func TestSupplyUpdateFailsWhenRemovedQuantityAlreadyShipped(t *testing.T) {
	db := newTestDB(t)
	supplies := newSupplyService(db)
	shipments := newShipmentService(db)
	steel := newResource(t, db, "steel")
	kg := newUnit(t, db, "kg")
	client := newClient(t, db, "acme")

	doc := supplyDoc("SUP-001", supplyItem(steel, kg, "10"))
	require.NoError(t, supplies.Create(doc))

	shipment := shipmentDoc("SHP-001", client, shipmentItem(steel, kg, "8"))
	require.NoError(t, shipments.Create(shipment))
	require.NoError(t, shipments.ChangeStatus(shipment.ID, models.ShipmentStatusSigned))

	stored, err := supplies.GetByID(doc.ID)
	require.NoError(t, err)

	// Lowering the supply to 5 would leave the ledger at -3.
	input := supplyDoc("SUP-001",
		models.SupplyItem{BaseModel: models.BaseModel{ID: stored.Items[0].ID}, ResourceID: steel.ID, UnitID: kg.ID, Quantity: qty("5")},
	)
	err = supplies.Update(doc.ID, input)

	var stockErr *services.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)

	// The failed transaction must leave both document and ledger untouched.
	assert.True(t, balanceQuantity(t, db, steel, kg).Equal(qty("2")))
	unchanged, err := supplies.GetByID(doc.ID)
	require.NoError(t, err)
	assert.True(t, unchanged.Items[0].Quantity.Equal(qty("10")))
}

func TestSupplyDeleteReturnsQuantitiesAndFreesNumber(t *testing.T) {
	db := newTestDB(t)
	supplies := newSupplyService(db)
	steel := newResource(t, db, "steel")
	kg := newUnit(t, db, "kg")

	doc := supplyDoc("SUP-001", supplyItem(steel, kg, "10"))
	require.NoError(t, supplies.Create(doc))
	require.NoError(t, supplies.Delete(doc.ID))

	assert.True(t, balanceQuantity(t, db, steel, kg).Equal(qty("0")))

	_, err := supplies.GetByID(doc.ID)
	require.ErrorIs(t, err, services.ErrNotFound)

	// The soft-deleted document no longer blocks its number.
	require.NoError(t, supplies.Create(supplyDoc("SUP-001", supplyItem(steel, kg, "1"))))
}

func TestSupplyDeleteFailsWhenStockAlreadyConsumed(t *testing.T) {
	db := newTestDB(t)
	supplies := newSupplyService(db)
	shipments := newShipmentService(db)
	steel := newResource(t, db, "steel")
	kg := newUnit(t, db, "kg")
	client := newClient(t, db, "acme")

	doc := supplyDoc("SUP-001", supplyItem(steel, kg, "10"))
	require.NoError(t, supplies.Create(doc))

	shipment := shipmentDoc("SHP-001", client, shipmentItem(steel, kg, "4"))
	require.NoError(t, shipments.Create(shipment))
	require.NoError(t, shipments.ChangeStatus(shipment.ID, models.ShipmentStatusSigned))

	err := supplies.Delete(doc.ID)

	var stockErr *services.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)

	// Document and ledger survive the failed delete.
	assert.True(t, balanceQuantity(t, db, steel, kg).Equal(qty("6")))
	_, err = supplies.GetByID(doc.ID)
	require.NoError(t, err)
}
