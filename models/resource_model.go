package models

type Resource struct {
	BaseModel
	Name       string `json:"name" gorm:"not null" validate:"required"`
	IsArchived bool   `json:"is_archived" gorm:"default:false"`
}
