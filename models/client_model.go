package models

type Client struct {
	BaseModel
	Name       string `json:"name" gorm:"not null" validate:"required"`
	Address    string `json:"address"`
	IsArchived bool   `json:"is_archived" gorm:"default:false"`
}
