package repositories

import (
	"errors"

	"gorm.io/gorm"

	"warehouse-app/models"
	"warehouse-app/types"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Get(id types.SnowflakeID) (*models.Client, error) {
	var client models.Client
	err := r.db.First(&client, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ClientRepository) GetAllFiltered(filter models.EntityFilter) ([]models.Client, error) {
	query := r.db.Model(&models.Client{})

	if len(filter.IDs) > 0 {
		query = query.Where("id IN ?", filter.IDs)
	}
	if filter.NameContains != "" {
		query = query.Where("name LIKE ?", "%"+filter.NameContains+"%")
	}
	if !filter.IncludeArchived {
		query = query.Where("is_archived = ?", false)
	}

	var clients []models.Client
	if err := query.Order("name ASC").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientRepository) Add(client *models.Client) error {
	return r.db.Create(client).Error
}

func (r *ClientRepository) Update(client *models.Client) error {
	return r.db.Save(client).Error
}

func (r *ClientRepository) SoftDelete(id types.SnowflakeID) error {
	return r.db.Delete(&models.Client{}, "id = ?", id).Error
}

func (r *ClientRepository) HardDelete(id types.SnowflakeID) error {
	return r.db.Unscoped().Delete(&models.Client{}, "id = ?", id).Error
}

// IsInUse reports whether any shipment references the client.
func (r *ClientRepository) IsInUse(id types.SnowflakeID) (bool, error) {
	var count int64
	err := r.db.Model(&models.ShipmentDocument{}).Where("client_id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
