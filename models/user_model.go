package models

type User struct {
	BaseModel
	Username string `json:"username" gorm:"unique;not null" validate:"required,min=3"`
	Name     string `json:"name"`
	Email    string `json:"email" validate:"email"`
	Password string `json:"-" gorm:"not null"`
}
