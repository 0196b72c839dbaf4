package services

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"warehouse-app/idgen"
	"warehouse-app/models"
	"warehouse-app/repositories"
	"warehouse-app/types"
)

// BalanceAdjustment is a signed quantity change for one (resource, unit) key.
type BalanceAdjustment struct {
	ResourceID types.SnowflakeID
	UnitID     types.SnowflakeID
	Quantity   decimal.Decimal
}

// BalanceService owns the balance ledger: the authoritative quantity on hand
// per (resource, unit) pair.
type BalanceService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewBalanceService(db *gorm.DB, log *zap.Logger) *BalanceService {
	return &BalanceService{db: db, log: log}
}

func (s *BalanceService) GetAll(filter models.BalanceFilter) ([]models.Balance, error) {
	return repositories.NewBalanceRepository(s.db).GetAllFiltered(filter)
}

// ValidateBatch checks that no negative adjustment would drive its balance
// below zero. Every entry is checked against the currently persisted row,
// not against the running effect of other entries in the same batch. Callers
// that can produce negative deltas (signing a shipment, deleting a supply)
// must call this before AdjustBatch.
func (s *BalanceService) ValidateBatch(tx *gorm.DB, adjustments []BalanceAdjustment) error {
	repo := repositories.NewBalanceRepository(tx)

	for _, adj := range adjustments {
		if adj.Quantity.Sign() >= 0 {
			continue
		}

		balance, err := repo.GetByResourceAndUnit(adj.ResourceID, adj.UnitID)
		if err != nil {
			return err
		}

		available := decimal.Zero
		if balance != nil {
			available = balance.Quantity
		}

		if available.Add(adj.Quantity).IsNegative() {
			s.log.Warn("insufficient stock",
				zap.Int64("resource_id", int64(adj.ResourceID)),
				zap.Int64("unit_id", int64(adj.UnitID)),
				zap.String("available", available.String()),
				zap.String("required", adj.Quantity.Neg().String()))
			return &InsufficientStockError{
				ResourceID: adj.ResourceID,
				UnitID:     adj.UnitID,
				Available:  available,
				Required:   adj.Quantity.Neg(),
			}
		}
	}

	return nil
}

// AdjustBatch applies adjustments to the ledger inside the caller's
// transaction. Entries addressing the same key are merged into a single
// delta first, so processing order cannot change the outcome. A row is
// created lazily on a positive delta; a missing row cannot be decremented.
// Every touched row must end non-negative or the whole batch fails — the
// surrounding transaction is expected to roll back on error.
func (s *BalanceService) AdjustBatch(tx *gorm.DB, adjustments []BalanceAdjustment) error {
	repo := repositories.NewBalanceRepository(tx)

	for _, adj := range coalesceAdjustments(adjustments) {
		if adj.Quantity.IsZero() {
			continue
		}

		balance, err := repo.GetByResourceAndUnit(adj.ResourceID, adj.UnitID)
		if err != nil {
			return err
		}

		if balance != nil {
			newQuantity := balance.Quantity.Add(adj.Quantity)
			if newQuantity.IsNegative() {
				return &InsufficientStockError{
					ResourceID: adj.ResourceID,
					UnitID:     adj.UnitID,
					Available:  balance.Quantity,
					Required:   adj.Quantity.Neg(),
				}
			}

			balance.Quantity = newQuantity
			if err := repo.Update(balance); err != nil {
				return err
			}
			continue
		}

		if !adj.Quantity.IsPositive() {
			return ErrMissingBalance
		}

		newBalance := models.Balance{
			BaseModel:  models.BaseModel{ID: idgen.GenerateID()},
			ResourceID: adj.ResourceID,
			UnitID:     adj.UnitID,
			Quantity:   adj.Quantity,
		}
		if err := repo.Add(&newBalance); err != nil {
			return err
		}
	}

	return nil
}

// coalesceAdjustments merges entries for the same (resource, unit) key into
// one signed delta, preserving first-seen key order.
func coalesceAdjustments(adjustments []BalanceAdjustment) []BalanceAdjustment {
	type key struct {
		resourceID types.SnowflakeID
		unitID     types.SnowflakeID
	}

	index := make(map[key]int, len(adjustments))
	merged := make([]BalanceAdjustment, 0, len(adjustments))

	for _, adj := range adjustments {
		k := key{adj.ResourceID, adj.UnitID}
		if i, ok := index[k]; ok {
			merged[i].Quantity = merged[i].Quantity.Add(adj.Quantity)
			continue
		}
		index[k] = len(merged)
		merged = append(merged, adj)
	}

	return merged
}
