package models

import (
	"time"

	"github.com/shopspring/decimal"

	"warehouse-app/types"
)

type SupplyDocument struct {
	BaseModel
	Number string    `json:"number" gorm:"not null" validate:"required"`
	Date   time.Time `json:"date" gorm:"not null"`

	Items []SupplyItem `json:"items" gorm:"foreignKey:SupplyDocumentID"`
}

type SupplyItem struct {
	BaseModel
	SupplyDocumentID types.SnowflakeID `json:"supply_document_id" gorm:"index"`
	ResourceID       types.SnowflakeID `json:"resource_id" gorm:"not null"`
	UnitID           types.SnowflakeID `json:"unit_id" gorm:"not null"`
	Quantity         decimal.Decimal   `json:"quantity" gorm:"type:decimal(20,8);not null"`

	Resource *Resource      `json:"resource,omitempty" gorm:"foreignKey:ResourceID"`
	Unit     *UnitOfMeasure `json:"unit,omitempty" gorm:"foreignKey:UnitID"`
}
