package repositories

import (
	"errors"

	"gorm.io/gorm"

	"warehouse-app/models"
	"warehouse-app/types"
)

type ResourceRepository struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{db: db}
}

func (r *ResourceRepository) Get(id types.SnowflakeID) (*models.Resource, error) {
	var resource models.Resource
	err := r.db.First(&resource, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

func (r *ResourceRepository) GetAllByIDs(ids []types.SnowflakeID) ([]models.Resource, error) {
	var resources []models.Resource
	if err := r.db.Where("id IN ?", ids).Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

func (r *ResourceRepository) GetAllFiltered(filter models.EntityFilter) ([]models.Resource, error) {
	query := r.db.Model(&models.Resource{})

	if len(filter.IDs) > 0 {
		query = query.Where("id IN ?", filter.IDs)
	}
	if filter.NameContains != "" {
		query = query.Where("name LIKE ?", "%"+filter.NameContains+"%")
	}
	if !filter.IncludeArchived {
		query = query.Where("is_archived = ?", false)
	}

	var resources []models.Resource
	if err := query.Order("name ASC").Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

func (r *ResourceRepository) Add(resource *models.Resource) error {
	return r.db.Create(resource).Error
}

func (r *ResourceRepository) Update(resource *models.Resource) error {
	return r.db.Save(resource).Error
}

func (r *ResourceRepository) SoftDelete(id types.SnowflakeID) error {
	return r.db.Delete(&models.Resource{}, "id = ?", id).Error
}

func (r *ResourceRepository) HardDelete(id types.SnowflakeID) error {
	return r.db.Unscoped().Delete(&models.Resource{}, "id = ?", id).Error
}

// IsInUse reports whether any document line or stocked balance row
// references the resource. A balance row drained to zero does not count;
// it carries no quantity the resource could still account for.
func (r *ResourceRepository) IsInUse(id types.SnowflakeID) (bool, error) {
	for _, model := range []interface{}{
		&models.SupplyItem{},
		&models.ShipmentItem{},
	} {
		var count int64
		if err := r.db.Model(model).Where("resource_id = ?", id).Count(&count).Error; err != nil {
			return false, err
		}
		if count > 0 {
			return true, nil
		}
	}

	var count int64
	err := r.db.Model(&models.Balance{}).
		Where("resource_id = ? AND quantity <> 0", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
