package repositories

import (
	"errors"

	"gorm.io/gorm"

	"warehouse-app/models"
	"warehouse-app/types"
)

type BalanceRepository struct {
	db *gorm.DB
}

func NewBalanceRepository(db *gorm.DB) *BalanceRepository {
	return &BalanceRepository{db: db}
}

// GetByResourceAndUnit returns nil when no live balance row exists for the pair.
func (r *BalanceRepository) GetByResourceAndUnit(resourceID, unitID types.SnowflakeID) (*models.Balance, error) {
	var balance models.Balance
	err := r.db.Where("resource_id = ? AND unit_id = ?", resourceID, unitID).First(&balance).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &balance, nil
}

func (r *BalanceRepository) GetAllFiltered(filter models.BalanceFilter) ([]models.Balance, error) {
	query := r.db.Preload("Resource").Preload("Unit")

	if len(filter.ResourceIDs) > 0 {
		query = query.Where("resource_id IN ?", filter.ResourceIDs)
	}
	if len(filter.UnitIDs) > 0 {
		query = query.Where("unit_id IN ?", filter.UnitIDs)
	}

	var balances []models.Balance
	if err := query.Order("created_at ASC").Find(&balances).Error; err != nil {
		return nil, err
	}
	return balances, nil
}

func (r *BalanceRepository) Add(balance *models.Balance) error {
	return r.db.Create(balance).Error
}

func (r *BalanceRepository) Update(balance *models.Balance) error {
	return r.db.Save(balance).Error
}
