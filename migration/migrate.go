package migration

import (
	"fmt"

	"gorm.io/gorm"

	"warehouse-app/models"
)

type uniqueIndex struct {
	name    string
	table   string
	columns string
}

// The partial indexes only cover live rows, so a number or name freed by a
// soft delete can be reused.
var uniqueIndexes = []uniqueIndex{
	{"uq_resources_name", "resources", "name"},
	{"uq_units_of_measure_name", "units_of_measure", "name"},
	{"uq_clients_name", "clients", "name"},
	{"uq_supply_documents_number", "supply_documents", "number"},
	{"uq_shipment_documents_number", "shipment_documents", "number"},
	{"uq_balances_resource_unit", "balances", "resource_id, unit_id"},
}

// Migrate creates the schema and the live-row unique indexes.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Resource{},
		&models.UnitOfMeasure{},
		&models.Client{},
		&models.Balance{},
		&models.SupplyDocument{},
		&models.SupplyItem{},
		&models.ShipmentDocument{},
		&models.ShipmentItem{},
		&models.User{},
		&models.FileLog{},
	)
	if err != nil {
		return err
	}

	for _, stmt := range uniqueIndexStatements(db.Dialector.Name()) {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}

// uniqueIndexStatements renders the filtered-index DDL for the given
// dialect. SQL Server supports filtered indexes but not IF NOT EXISTS on
// CREATE INDEX, so existence is checked against sys.indexes instead.
func uniqueIndexStatements(dialect string) []string {
	stmts := make([]string, 0, len(uniqueIndexes))
	for _, idx := range uniqueIndexes {
		switch dialect {
		case "sqlserver":
			stmts = append(stmts, fmt.Sprintf(
				"IF NOT EXISTS (SELECT 1 FROM sys.indexes WHERE name = '%s') CREATE UNIQUE INDEX %s ON %s (%s) WHERE deleted_at IS NULL",
				idx.name, idx.name, idx.table, idx.columns))
		default: // postgres, sqlite
			stmts = append(stmts, fmt.Sprintf(
				"CREATE UNIQUE INDEX IF NOT EXISTS %s ON %s (%s) WHERE deleted_at IS NULL",
				idx.name, idx.table, idx.columns))
		}
	}
	return stmts
}
