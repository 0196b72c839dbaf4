package repositories

import (
	"errors"

	"gorm.io/gorm"

	"warehouse-app/models"
	"warehouse-app/types"
)

type ShipmentRepository struct {
	db *gorm.DB
}

func NewShipmentRepository(db *gorm.DB) *ShipmentRepository {
	return &ShipmentRepository{db: db}
}

func (r *ShipmentRepository) Get(id types.SnowflakeID) (*models.ShipmentDocument, error) {
	var doc models.ShipmentDocument
	err := r.db.First(&doc, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *ShipmentRepository) GetWithItems(id types.SnowflakeID) (*models.ShipmentDocument, error) {
	var doc models.ShipmentDocument
	err := r.db.
		Preload("Client").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("shipment_items.created_at ASC") }).
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

func (r *ShipmentRepository) GetAllFiltered(filter models.DocumentFilter) ([]models.ShipmentDocument, error) {
	query := r.db.Model(&models.ShipmentDocument{}).
		Preload("Client").
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
		sub := r.db.Model(&models.ShipmentItem{}).Select("shipment_document_id")
		if len(filter.ResourceIDs) > 0 {
			sub = sub.Where("resource_id IN ?", filter.ResourceIDs)
		}
		if len(filter.UnitIDs) > 0 {
			sub = sub.Where("unit_id IN ?", filter.UnitIDs)
		}
		query = query.Where("id IN (?)", sub)
	}

	var docs []models.ShipmentDocument
	if err := query.Order("date DESC").Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *ShipmentRepository) Add(doc *models.ShipmentDocument) error {
	return r.db.Create(doc).Error
}

func (r *ShipmentRepository) UpdateHeader(doc *models.ShipmentDocument) error {
	return r.db.Model(&models.ShipmentDocument{}).
		Where("id = ?", doc.ID).
		Updates(map[string]interface{}{
			"number":    doc.Number,
			"date":      doc.Date,
			"client_id": doc.ClientID,
		}).Error
}

func (r *ShipmentRepository) UpdateStatus(id types.SnowflakeID, status models.ShipmentStatus) error {
	return r.db.Model(&models.ShipmentDocument{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *ShipmentRepository) SoftDelete(id types.SnowflakeID) error {
	return r.db.Delete(&models.ShipmentDocument{}, "id = ?", id).Error
}

func (r *ShipmentRepository) AddItem(item *models.ShipmentItem) error {
	return r.db.Create(item).Error
}

func (r *ShipmentRepository) UpdateItem(item *models.ShipmentItem) error {
	return r.db.Model(&models.ShipmentItem{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"resource_id": item.ResourceID,
			"unit_id":     item.UnitID,
			"quantity":    item.Quantity,
		}).Error
}

func (r *ShipmentRepository) HardDeleteItems(ids []types.SnowflakeID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Unscoped().Delete(&models.ShipmentItem{}, "id IN ?", ids).Error
}
