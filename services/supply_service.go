package services

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"warehouse-app/idgen"
	"warehouse-app/models"
	"warehouse-app/repositories"
	"warehouse-app/types"
)

// SupplyService manages supply documents. Every write runs in one database
// transaction covering the document, its items and the ledger adjustment, so
// a failure at any step leaves all three untouched.
type SupplyService struct {
	db       *gorm.DB
	log      *zap.Logger
	balances *BalanceService
}

func NewSupplyService(db *gorm.DB, log *zap.Logger, balances *BalanceService) *SupplyService {
	return &SupplyService{db: db, log: log, balances: balances}
}

func (s *SupplyService) GetByID(id types.SnowflakeID) (*models.SupplyDocument, error) {
	doc, err := repositories.NewSupplyRepository(s.db).GetWithItems(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("supply '%d': %w", id, ErrNotFound)
	}
	return doc, nil
}

func (s *SupplyService) GetFiltered(filter models.DocumentFilter) ([]models.SupplyDocument, error) {
	return repositories.NewSupplyRepository(s.db).GetAllFiltered(filter)
}

// Create stores the document and credits every line to the ledger. A supply
// may be created without items.
func (s *SupplyService) Create(doc *models.SupplyDocument) error {
	lines := supplyLines(doc.Items)
	if err := checkLineQuantities(lines); err != nil {
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := checkLineEntities(tx, lines); err != nil {
			return err
		}

		doc.ID = idgen.GenerateID()
		for i := range doc.Items {
			doc.Items[i].ID = idgen.GenerateID()
			doc.Items[i].SupplyDocumentID = doc.ID
		}

		if err := repositories.NewSupplyRepository(tx).Add(doc); err != nil {
			return translateDuplicate(err, ErrDuplicateNumber)
		}

		adjustments := make([]BalanceAdjustment, 0, len(doc.Items))
		for _, item := range doc.Items {
			adjustments = append(adjustments, BalanceAdjustment{
				ResourceID: item.ResourceID,
				UnitID:     item.UnitID,
				Quantity:   item.Quantity,
			})
		}
		return s.balances.AdjustBatch(tx, adjustments)
	})
	if err != nil {
		return err
	}

	s.log.Info("created supply document",
		zap.Int64("id", int64(doc.ID)), zap.String("number", doc.Number))
	return nil
}

// Update reconciles the desired item set against the persisted one and
// applies the resulting line operations and ledger deltas atomically.
func (s *SupplyService) Update(id types.SnowflakeID, input *models.SupplyDocument) error {
	desired := supplyLines(input.Items)
	if err := checkLineQuantities(desired); err != nil {
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewSupplyRepository(tx)

		old, err := repo.GetWithItems(id)
		if err != nil {
			return err
		}
		if old == nil {
			return fmt.Errorf("supply '%d': %w", id, ErrNotFound)
		}

		plan, err := ReconcileItems(supplyLines(old.Items), desired)
		if err != nil {
			return err
		}
		if err := checkLineEntities(tx, plan.ChangedLines()); err != nil {
			return err
		}

		old.Number = input.Number
		old.Date = input.Date
		if err := repo.UpdateHeader(old); err != nil {
			return translateDuplicate(err, ErrDuplicateNumber)
		}

		if err := s.applyItemChanges(repo, id, plan); err != nil {
			return err
		}

		return s.balances.AdjustBatch(tx, plan.Deltas())
	})
	if err != nil {
		return err
	}

	s.log.Info("updated supply document", zap.Int64("id", int64(id)))
	return nil
}

// Delete soft-deletes the document after taking its quantities back out of
// the ledger; it fails when stock no longer covers them.
func (s *SupplyService) Delete(id types.SnowflakeID) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewSupplyRepository(tx)

		doc, err := repo.GetWithItems(id)
		if err != nil {
			return err
		}
		if doc == nil {
			return fmt.Errorf("supply '%d': %w", id, ErrNotFound)
		}

		adjustments := make([]BalanceAdjustment, 0, len(doc.Items))
		for _, item := range doc.Items {
			adjustments = append(adjustments, BalanceAdjustment{
				ResourceID: item.ResourceID,
				UnitID:     item.UnitID,
				Quantity:   item.Quantity.Neg(),
			})
		}

		if err := s.balances.ValidateBatch(tx, adjustments); err != nil {
			return err
		}
		if err := s.balances.AdjustBatch(tx, adjustments); err != nil {
			return err
		}

		return repo.SoftDelete(id)
	})
	if err != nil {
		return err
	}

	s.log.Info("deleted supply document", zap.Int64("id", int64(id)))
	return nil
}

func (s *SupplyService) applyItemChanges(repo *repositories.SupplyRepository, docID types.SnowflakeID, plan *ReconcilePlan) error {
	deleteIDs := make([]types.SnowflakeID, 0, len(plan.Deletes))
	for _, line := range plan.Deletes {
		deleteIDs = append(deleteIDs, line.ID)
	}
	if err := repo.HardDeleteItems(deleteIDs); err != nil {
		return err
	}

	for _, line := range plan.Inserts {
		item := models.SupplyItem{
			BaseModel:        models.BaseModel{ID: idgen.GenerateID()},
			SupplyDocumentID: docID,
			ResourceID:       line.ResourceID,
			UnitID:           line.UnitID,
			Quantity:         line.Quantity,
		}
		if err := repo.AddItem(&item); err != nil {
			return err
		}
	}

	for _, upd := range plan.Updates {
		item := models.SupplyItem{
			BaseModel:  models.BaseModel{ID: upd.New.ID},
			ResourceID: upd.New.ResourceID,
			UnitID:     upd.New.UnitID,
			Quantity:   upd.New.Quantity,
		}
		if err := repo.UpdateItem(&item); err != nil {
			return err
		}
	}

	return nil
}
