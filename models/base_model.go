package models

import (
	"time"

	"gorm.io/gorm"

	"warehouse-app/types"
)

// BaseModel provides the identity, timestamps and soft delete shared by
// every entity. Soft-deleted rows are invisible to normal queries but stay
// referenceable by historical documents.
type BaseModel struct {
	ID        types.SnowflakeID `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	DeletedAt gorm.DeletedAt    `json:"-" gorm:"index"`
}
