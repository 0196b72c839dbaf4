package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"warehouse-app/models"
	"warehouse-app/services"
)

func TestResourceCreateRejectsDuplicateName(t *testing.T) {
	db := newTestDB(t)
	resources := services.NewResourceService(db, zap.NewNop())

	require.NoError(t, resources.Create(&models.Resource{Name: "steel"}))

	err := resources.Create(&models.Resource{Name: "steel"})
	require.ErrorIs(t, err, services.ErrDuplicateName)
}

func TestResourceDeleteRejectsWhenReferenced(t *testing.T) {
	db := newTestDB(t)
	resources := services.NewResourceService(db, zap.NewNop())
	supplies := newSupplyService(db)
	steel := newResource(t, db, "steel")
	kg := newUnit(t, db, "kg")

	require.NoError(t, supplies.Create(supplyDoc("SUP-001", supplyItem(steel, kg, "1"))))

	err := resources.Delete(steel.ID)
	require.ErrorIs(t, err, services.ErrInUse)

	// Archiving remains available for referenced resources.
	require.NoError(t, resources.SetArchived(steel.ID, true))

	archived, err := resources.GetByID(steel.ID)
	require.NoError(t, err)
	assert.True(t, archived.IsArchived)
}

func TestResourceDeleteAllowedWhenBalanceDrainedToZero(t *testing.T) {
	db := newTestDB(t)
	resources := services.NewResourceService(db, zap.NewNop())
	supplies := newSupplyService(db)
	steel := newResource(t, db, "steel")
	kg := newUnit(t, db, "kg")

	doc := supplyDoc("SUP-001", supplyItem(steel, kg, "5"))
	require.NoError(t, supplies.Create(doc))

	// Removing the only line drains the balance row to zero and hard-deletes
	// the item; the empty row must not keep blocking deletion.
	require.NoError(t, supplies.Update(doc.ID, supplyDoc("SUP-001")))
	assert.True(t, balanceQuantity(t, db, steel, kg).Equal(qty("0")))

	require.NoError(t, resources.Delete(steel.ID))
}

func TestResourceDeleteFreesName(t *testing.T) {
	db := newTestDB(t)
	resources := services.NewResourceService(db, zap.NewNop())
	steel := newResource(t, db, "steel")

	require.NoError(t, resources.Delete(steel.ID))

	_, err := resources.GetByID(steel.ID)
	require.ErrorIs(t, err, services.ErrNotFound)

	// The soft-deleted row no longer blocks the name.
	require.NoError(t, resources.Create(&models.Resource{Name: "steel"}))
}

func TestResourceSetArchivedIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	resources := services.NewResourceService(db, zap.NewNop())
	steel := newResource(t, db, "steel")

	require.NoError(t, resources.SetArchived(steel.ID, true))
	require.NoError(t, resources.SetArchived(steel.ID, true))

	archived, err := resources.GetByID(steel.ID)
	require.NoError(t, err)
	assert.True(t, archived.IsArchived)

	require.NoError(t, resources.SetArchived(steel.ID, false))

	restored, err := resources.GetByID(steel.ID)
	require.NoError(t, err)
	assert.False(t, restored.IsArchived)
}

func TestArchivedResourceStaysOnExistingDocuments(t *testing.T) {
	db := newTestDB(t)
	resources := services.NewResourceService(db, zap.NewNop())
	supplies := newSupplyService(db)
	steel := newResource(t, db, "steel")
	kg := newUnit(t, db, "kg")

	doc := supplyDoc("SUP-001", supplyItem(steel, kg, "5"))
	require.NoError(t, supplies.Create(doc))
	require.NoError(t, resources.SetArchived(steel.ID, true))

	// Updating the document without touching the archived line is allowed.
	stored, err := supplies.GetByID(doc.ID)
	require.NoError(t, err)
	input := supplyDoc("SUP-001-B",
		models.SupplyItem{BaseModel: models.BaseModel{ID: stored.Items[0].ID}, ResourceID: steel.ID, UnitID: kg.ID, Quantity: qty("5")},
	)
	require.NoError(t, supplies.Update(doc.ID, input))

	// Adding a new line for the archived resource is not.
	withNewLine := supplyDoc("SUP-001-B",
		models.SupplyItem{BaseModel: models.BaseModel{ID: stored.Items[0].ID}, ResourceID: steel.ID, UnitID: kg.ID, Quantity: qty("5")},
		supplyItem(steel, kg, "2"),
	)
	err = supplies.Update(doc.ID, withNewLine)

	var archivedErr *services.ArchivedEntityError
	require.ErrorAs(t, err, &archivedErr)
}
