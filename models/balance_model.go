package models

import (
	"github.com/shopspring/decimal"

	"warehouse-app/types"
)

// Balance is the quantity on hand for one (resource, unit) pair.
// At most one live row exists per pair; rows are created lazily on the
// first positive adjustment and must never hold a negative quantity.
type Balance struct {
	BaseModel
	ResourceID types.SnowflakeID `json:"resource_id" gorm:"not null;index:idx_balances_resource_unit"`
	UnitID     types.SnowflakeID `json:"unit_id" gorm:"not null;index:idx_balances_resource_unit"`
	Quantity   decimal.Decimal   `json:"quantity" gorm:"type:decimal(20,8);not null"`

	Resource *Resource      `json:"resource,omitempty" gorm:"foreignKey:ResourceID"`
	Unit     *UnitOfMeasure `json:"unit,omitempty" gorm:"foreignKey:UnitID"`
}
