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

// ShipmentService manages shipment documents and their status machine:
// draft -> signed consumes stock, signed -> revoked returns it. The ledger
// is only ever touched by those two transitions.
type ShipmentService struct {
	db       *gorm.DB
	log      *zap.Logger
	balances *BalanceService
}

func NewShipmentService(db *gorm.DB, log *zap.Logger, balances *BalanceService) *ShipmentService {
	return &ShipmentService{db: db, log: log, balances: balances}
}

func (s *ShipmentService) GetByID(id types.SnowflakeID) (*models.ShipmentDocument, error) {
	doc, err := repositories.NewShipmentRepository(s.db).GetWithItems(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("shipment '%d': %w", id, ErrNotFound)
	}
	return doc, nil
}

func (s *ShipmentService) GetFiltered(filter models.DocumentFilter) ([]models.ShipmentDocument, error) {
	return repositories.NewShipmentRepository(s.db).GetAllFiltered(filter)
}

// Create stores a draft shipment. Stock is not touched until the document
// is signed.
func (s *ShipmentService) Create(doc *models.ShipmentDocument) error {
	if len(doc.Items) == 0 {
		return ErrEmptyDocument
	}

	lines := shipmentLines(doc.Items)
	if err := checkLineQuantities(lines); err != nil {
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.checkClient(tx, doc.ClientID); err != nil {
			return err
		}
		if err := checkLineEntities(tx, lines); err != nil {
			return err
		}

		doc.ID = idgen.GenerateID()
		doc.Status = models.ShipmentStatusDraft
		for i := range doc.Items {
			doc.Items[i].ID = idgen.GenerateID()
			doc.Items[i].ShipmentDocumentID = doc.ID
		}

		if err := repositories.NewShipmentRepository(tx).Add(doc); err != nil {
			return translateDuplicate(err, ErrDuplicateNumber)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("created shipment document",
		zap.Int64("id", int64(doc.ID)), zap.String("number", doc.Number))
	return nil
}

// Update edits header and items. Items of a signed shipment are immutable;
// a revoked shipment cannot be edited at all.
func (s *ShipmentService) Update(id types.SnowflakeID, input *models.ShipmentDocument) error {
	if len(input.Items) == 0 {
		return ErrEmptyDocument
	}

	desired := shipmentLines(input.Items)
	if err := checkLineQuantities(desired); err != nil {
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewShipmentRepository(tx)

		old, err := repo.GetWithItems(id)
		if err != nil {
			return err
		}
		if old == nil {
			return fmt.Errorf("shipment '%d': %w", id, ErrNotFound)
		}
		if old.Status == models.ShipmentStatusRevoked {
			return ErrRevokedDocument
		}

		plan, err := ReconcileItems(shipmentLines(old.Items), desired)
		if err != nil {
			return err
		}
		if old.Status == models.ShipmentStatusSigned && plan.HasItemChanges() {
			return ErrSignedDocumentImmutable
		}

		if input.ClientID != old.ClientID {
			if err := s.checkClient(tx, input.ClientID); err != nil {
				return err
			}
		}
		if err := checkLineEntities(tx, plan.ChangedLines()); err != nil {
			return err
		}

		old.Number = input.Number
		old.Date = input.Date
		old.ClientID = input.ClientID
		if err := repo.UpdateHeader(old); err != nil {
			return translateDuplicate(err, ErrDuplicateNumber)
		}

		// Draft items carry no ledger weight, so reconciliation here only
		// rewrites lines.
		if old.Status == models.ShipmentStatusDraft {
			if err := s.applyItemChanges(repo, id, plan); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info("updated shipment document", zap.Int64("id", int64(id)))
	return nil
}

// ChangeStatus drives the status machine. Requesting the current status is
// a no-op success; anything outside draft->signed and signed->revoked is
// rejected.
func (s *ShipmentService) ChangeStatus(id types.SnowflakeID, newStatus models.ShipmentStatus) error {
	if !newStatus.Valid() {
		return fmt.Errorf("status '%s': %w", newStatus, ErrInvalidTransition)
	}

	var noop bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewShipmentRepository(tx)

		doc, err := repo.GetWithItems(id)
		if err != nil {
			return err
		}
		if doc == nil {
			return fmt.Errorf("shipment '%d': %w", id, ErrNotFound)
		}

		if doc.Status == newStatus {
			noop = true
			return nil
		}

		switch {
		case doc.Status == models.ShipmentStatusDraft && newStatus == models.ShipmentStatusSigned:
			adjustments := statusAdjustments(doc.Items, true)
			if err := s.balances.ValidateBatch(tx, adjustments); err != nil {
				return err
			}
			if err := s.balances.AdjustBatch(tx, adjustments); err != nil {
				return err
			}
		case doc.Status == models.ShipmentStatusSigned && newStatus == models.ShipmentStatusRevoked:
			// Returning stock cannot violate non-negativity, no pre-validation.
			if err := s.balances.AdjustBatch(tx, statusAdjustments(doc.Items, false)); err != nil {
				return err
			}
		default:
			return fmt.Errorf("'%s' -> '%s': %w", doc.Status, newStatus, ErrInvalidTransition)
		}

		return repo.UpdateStatus(id, newStatus)
	})
	if err != nil {
		return err
	}

	if !noop {
		s.log.Info("changed shipment status",
			zap.Int64("id", int64(id)), zap.String("status", string(newStatus)))
	}
	return nil
}

// Delete soft-deletes the shipment. A signed document is revoked first so
// the stock it consumed returns to the ledger.
func (s *ShipmentService) Delete(id types.SnowflakeID) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewShipmentRepository(tx)

		doc, err := repo.GetWithItems(id)
		if err != nil {
			return err
		}
		if doc == nil {
			return fmt.Errorf("shipment '%d': %w", id, ErrNotFound)
		}

		if doc.Status == models.ShipmentStatusSigned {
			if err := s.balances.AdjustBatch(tx, statusAdjustments(doc.Items, false)); err != nil {
				return err
			}
			if err := repo.UpdateStatus(id, models.ShipmentStatusRevoked); err != nil {
				return err
			}
		}

		return repo.SoftDelete(id)
	})
	if err != nil {
		return err
	}

	s.log.Info("deleted shipment document", zap.Int64("id", int64(id)))
	return nil
}

func (s *ShipmentService) checkClient(tx *gorm.DB, clientID types.SnowflakeID) error {
	client, err := repositories.NewClientRepository(tx).Get(clientID)
	if err != nil {
		return err
	}
	if client == nil {
		return fmt.Errorf("client '%d': %w", clientID, ErrNotFound)
	}
	if client.IsArchived {
		return &ArchivedEntityError{Kind: "client", ID: clientID}
	}
	return nil
}

func (s *ShipmentService) applyItemChanges(repo *repositories.ShipmentRepository, docID types.SnowflakeID, plan *ReconcilePlan) error {
	deleteIDs := make([]types.SnowflakeID, 0, len(plan.Deletes))
	for _, line := range plan.Deletes {
		deleteIDs = append(deleteIDs, line.ID)
	}
	if err := repo.HardDeleteItems(deleteIDs); err != nil {
		return err
	}

	for _, line := range plan.Inserts {
		item := models.ShipmentItem{
			BaseModel:          models.BaseModel{ID: idgen.GenerateID()},
			ShipmentDocumentID: docID,
			ResourceID:         line.ResourceID,
			UnitID:             line.UnitID,
			Quantity:           line.Quantity,
		}
		if err := repo.AddItem(&item); err != nil {
			return err
		}
	}

	for _, upd := range plan.Updates {
		item := models.ShipmentItem{
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

func statusAdjustments(items []models.ShipmentItem, consume bool) []BalanceAdjustment {
	adjustments := make([]BalanceAdjustment, 0, len(items))
	for _, item := range items {
		quantity := item.Quantity
		if consume {
			quantity = quantity.Neg()
		}
		adjustments = append(adjustments, BalanceAdjustment{
			ResourceID: item.ResourceID,
			UnitID:     item.UnitID,
			Quantity:   quantity,
		})
	}
	return adjustments
}
