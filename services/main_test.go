package services_test

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"warehouse-app/idgen"
	"warehouse-app/migration"
	"warehouse-app/models"
	"warehouse-app/repositories"
	"warehouse-app/services"
)

func TestMain(m *testing.M) {
	idgen.Init()
	os.Exit(m.Run())
}

// newTestDB opens a private in-memory database with the full schema,
// including the partial unique indexes.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, migration.Migrate(db))
	return db
}

func newResource(t *testing.T, db *gorm.DB, name string) *models.Resource {
	t.Helper()

	resource := &models.Resource{
		BaseModel: models.BaseModel{ID: idgen.GenerateID()},
		Name:      name,
	}
	require.NoError(t, repositories.NewResourceRepository(db).Add(resource))
	return resource
}

func newUnit(t *testing.T, db *gorm.DB, name string) *models.UnitOfMeasure {
	t.Helper()

	unit := &models.UnitOfMeasure{
		BaseModel: models.BaseModel{ID: idgen.GenerateID()},
		Name:      name,
	}
	require.NoError(t, repositories.NewUomRepository(db).Add(unit))
	return unit
}

func newClient(t *testing.T, db *gorm.DB, name string) *models.Client {
	t.Helper()

	client := &models.Client{
		BaseModel: models.BaseModel{ID: idgen.GenerateID()},
		Name:      name,
		Address:   name + " street 1",
	}
	require.NoError(t, repositories.NewClientRepository(db).Add(client))
	return client
}

func qty(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// balanceQuantity reads the persisted quantity for a pair, zero when no row
// exists.
func balanceQuantity(t *testing.T, db *gorm.DB, resource *models.Resource, unit *models.UnitOfMeasure) decimal.Decimal {
	t.Helper()

	balance, err := repositories.NewBalanceRepository(db).GetByResourceAndUnit(resource.ID, unit.ID)
	require.NoError(t, err)
	if balance == nil {
		return decimal.Zero
	}
	return balance.Quantity
}

func newSupplyService(db *gorm.DB) *services.SupplyService {
	log := zap.NewNop()
	return services.NewSupplyService(db, log, services.NewBalanceService(db, log))
}

func newShipmentService(db *gorm.DB) *services.ShipmentService {
	log := zap.NewNop()
	return services.NewShipmentService(db, log, services.NewBalanceService(db, log))
}

func supplyDoc(number string, items ...models.SupplyItem) *models.SupplyDocument {
	return &models.SupplyDocument{
		Number: number,
		Date:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Items:  items,
	}
}

func supplyItem(resource *models.Resource, unit *models.UnitOfMeasure, quantity string) models.SupplyItem {
	return models.SupplyItem{
		ResourceID: resource.ID,
		UnitID:     unit.ID,
		Quantity:   qty(quantity),
	}
}

func shipmentDoc(number string, client *models.Client, items ...models.ShipmentItem) *models.ShipmentDocument {
	return &models.ShipmentDocument{
		Number:   number,
		ClientID: client.ID,
		Date:     time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		Items:    items,
	}
}

func shipmentItem(resource *models.Resource, unit *models.UnitOfMeasure, quantity string) models.ShipmentItem {
	return models.ShipmentItem{
		ResourceID: resource.ID,
		UnitID:     unit.ID,
		Quantity:   qty(quantity),
	}
}
