package database

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"warehouse-app/idgen"
	"warehouse-app/models"
)

func RunSeeders(db *gorm.DB) {
	SeedAdminUser(db)
	SeedUoms(db)
}

func SeedAdminUser(db *gorm.DB) {
	var existing models.User
	err := db.Where("username = ?", "admin").First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Unexpected DB error: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user := models.User{
		BaseModel: models.BaseModel{ID: idgen.GenerateID()},
		Username:  "admin",
		Name:      "Administrator",
		Email:     "admin@localhost",
		Password:  string(hashed),
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}
}

func SeedUoms(db *gorm.DB) {
	units := []models.UnitOfMeasure{
		{Name: "pcs"},
		{Name: "kg"},
		{Name: "m"},
	}

	for _, u := range units {
		var existing models.UnitOfMeasure
		err := db.Where("name = ?", u.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Unexpected DB error: %v", err)
		}

		u.ID = idgen.GenerateID()
		if err := db.Create(&u).Error; err != nil {
			log.Fatalf("Failed to seed unit %s: %v", u.Name, err)
		}
	}
}
