package repositories

import (
	"errors"

	"gorm.io/gorm"

	"warehouse-app/models"
	"warehouse-app/types"
)

type SupplyRepository struct {
	db *gorm.DB
}

func NewSupplyRepository(db *gorm.DB) *SupplyRepository {
	return &SupplyRepository{db: db}
}

func (r *SupplyRepository) Get(id types.SnowflakeID) (*models.SupplyDocument, error) {
	var doc models.SupplyDocument
	err := r.db.First(&doc, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *SupplyRepository) GetWithItems(id types.SnowflakeID) (*models.SupplyDocument, error) {
	var doc models.SupplyDocument
	err := r.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("supply_items.created_at ASC") }).
		Preload("Items.Resource").
		Preload("Items.Unit").
		First(&doc, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *SupplyRepository) GetAllFiltered(filter models.DocumentFilter) ([]models.SupplyDocument, error) {
	query := r.db.Model(&models.SupplyDocument{}).
		Preload("Items").
		Preload("Items.Resource").
		Preload("Items.Unit")

	if filter.DateFrom != nil {
		query = query.Where("date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("date <= ?", *filter.DateTo)
	}
	if len(filter.Numbers) > 0 {
		query = query.Where("number IN ?", filter.Numbers)
	}
	if len(filter.ResourceIDs) > 0 || len(filter.UnitIDs) > 0 {
		sub := r.db.Model(&models.SupplyItem{}).Select("supply_document_id")
		if len(filter.ResourceIDs) > 0 {
			sub = sub.Where("resource_id IN ?", filter.ResourceIDs)
		}
		if len(filter.UnitIDs) > 0 {
			sub = sub.Where("unit_id IN ?", filter.UnitIDs)
		}
		query = query.Where("id IN (?)", sub)
	}

	var docs []models.SupplyDocument
	if err := query.Order("date DESC").Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *SupplyRepository) Add(doc *models.SupplyDocument) error {
	return r.db.Create(doc).Error
}

// UpdateHeader persists header fields only; item changes go through the
// item-level methods so the reconciler stays in control of them.
func (r *SupplyRepository) UpdateHeader(doc *models.SupplyDocument) error {
	return r.db.Model(&models.SupplyDocument{}).
		Where("id = ?", doc.ID).
		Updates(map[string]interface{}{
			"number": doc.Number,
			"date":   doc.Date,
		}).Error
}

func (r *SupplyRepository) SoftDelete(id types.SnowflakeID) error {
	return r.db.Delete(&models.SupplyDocument{}, "id = ?", id).Error
}

func (r *SupplyRepository) AddItem(item *models.SupplyItem) error {
	return r.db.Create(item).Error
}

func (r *SupplyRepository) UpdateItem(item *models.SupplyItem) error {
	return r.db.Model(&models.SupplyItem{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"resource_id": item.ResourceID,
			"unit_id":     item.UnitID,
			"quantity":    item.Quantity,
		}).Error
}

func (r *SupplyRepository) HardDeleteItems(ids []types.SnowflakeID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Unscoped().Delete(&models.SupplyItem{}, "id IN ?", ids).Error
}
