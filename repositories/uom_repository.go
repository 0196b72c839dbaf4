package repositories

import (
	"errors"

	"gorm.io/gorm"

	"warehouse-app/models"
	"warehouse-app/types"
)

type UomRepository struct {
	db *gorm.DB
}

func NewUomRepository(db *gorm.DB) *UomRepository {
	return &UomRepository{db: db}
}

func (r *UomRepository) Get(id types.SnowflakeID) (*models.UnitOfMeasure, error) {
	var unit models.UnitOfMeasure
	err := r.db.First(&unit, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *UomRepository) GetAllByIDs(ids []types.SnowflakeID) ([]models.UnitOfMeasure, error) {
	var units []models.UnitOfMeasure
	if err := r.db.Where("id IN ?", ids).Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

func (r *UomRepository) GetAllFiltered(filter models.EntityFilter) ([]models.UnitOfMeasure, error) {
	query := r.db.Model(&models.UnitOfMeasure{})

	if len(filter.IDs) > 0 {
		query = query.Where("id IN ?", filter.IDs)
	}
	if filter.NameContains != "" {
		query = query.Where("name LIKE ?", "%"+filter.NameContains+"%")
	}
	if !filter.IncludeArchived {
		query = query.Where("is_archived = ?", false)
	}

	var units []models.UnitOfMeasure
	if err := query.Order("name ASC").Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

func (r *UomRepository) Add(unit *models.UnitOfMeasure) error {
	return r.db.Create(unit).Error
}

func (r *UomRepository) Update(unit *models.UnitOfMeasure) error {
	return r.db.Save(unit).Error
}

func (r *UomRepository) SoftDelete(id types.SnowflakeID) error {
	return r.db.Delete(&models.UnitOfMeasure{}, "id = ?", id).Error
}

func (r *UomRepository) HardDelete(id types.SnowflakeID) error {
	return r.db.Unscoped().Delete(&models.UnitOfMeasure{}, "id = ?", id).Error
}

// IsInUse reports whether any document line or stocked balance row
// references the unit. Balance rows drained to zero do not count.
func (r *UomRepository) IsInUse(id types.SnowflakeID) (bool, error) {
	for _, model := range []interface{}{
		&models.SupplyItem{},
		&models.ShipmentItem{},
	} {
		var count int64
		if err := r.db.Model(model).Where("unit_id = ?", id).Count(&count).Error; err != nil {
			return false, err
		}
		if count > 0 {
			return true, nil
		}
	}

	var count int64
	err := r.db.Model(&models.Balance{}).
		Where("unit_id = ? AND quantity <> 0", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
