package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
)

// ConnectDB opens the database configured via DB_DRIVER. Supported drivers
// are the ones whose dialect can express the live-row unique indexes the
// schema relies on (see migration).
// TranslateError is required so unique-index violations surface as
// gorm.ErrDuplicatedKey regardless of driver.
func ConnectDB() (*gorm.DB, error) {
	gormConfig := &gorm.Config{TranslateError: true}

	var db *gorm.DB
	var err error

	switch DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			DBHost, DBUser, DBPassword, DBName, DBPort)
		db, err = gorm.Open(postgres.Open(dsn), gormConfig)
	case "mssql":
		dsn := "sqlserver://" + DBUser + ":" + DBPassword + "@" + DBHost + ":" + DBPort + "?database=" + DBName
		db, err = gorm.Open(sqlserver.Open(dsn), gormConfig)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", DBDriver)
	}

	if err != nil {
		return nil, err
	}

	return db, nil
}
