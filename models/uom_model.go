package models

type UnitOfMeasure struct {
	BaseModel
	Name       string `json:"name" gorm:"not null" validate:"required"`
	IsArchived bool   `json:"is_archived" gorm:"default:false"`
}

func (UnitOfMeasure) TableName() string {
	return "units_of_measure"
}
