package models

import (
	"time"

	"github.com/shopspring/decimal"

	"warehouse-app/types"
)

type ShipmentStatus string

const (
	ShipmentStatusDraft   ShipmentStatus = "draft"
	ShipmentStatusSigned  ShipmentStatus = "signed"
	ShipmentStatusRevoked ShipmentStatus = "revoked"
)

func (s ShipmentStatus) Valid() bool {
	switch s {
	case ShipmentStatusDraft, ShipmentStatusSigned, ShipmentStatusRevoked:
		return true
	}
	return false
}

type ShipmentDocument struct {
	BaseModel
	Number   string            `json:"number" gorm:"not null" validate:"required"`
	ClientID types.SnowflakeID `json:"client_id" gorm:"not null"`
	Date     time.Time         `json:"date" gorm:"not null"`
	Status   ShipmentStatus    `json:"status" gorm:"not null;default:'draft'"`

	Client *Client        `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Items  []ShipmentItem `json:"items" gorm:"foreignKey:ShipmentDocumentID"`
}

type ShipmentItem struct {
	BaseModel
	ShipmentDocumentID types.SnowflakeID `json:"shipment_document_id" gorm:"index"`
	ResourceID         types.SnowflakeID `json:"resource_id" gorm:"not null"`
	UnitID             types.SnowflakeID `json:"unit_id" gorm:"not null"`
	Quantity           decimal.Decimal   `json:"quantity" gorm:"type:decimal(20,8);not null"`

	Resource *Resource      `json:"resource,omitempty" gorm:"foreignKey:ResourceID"`
	Unit     *UnitOfMeasure `json:"unit,omitempty" gorm:"foreignKey:UnitID"`
}
