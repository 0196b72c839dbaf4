package models

import "time"

// FileLog records supply files already ingested by the processor so a file
// is never imported twice.
type FileLog struct {
	BaseModel
	Filename     string `gorm:"unique;not null"`
	DateModified time.Time
}
