package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"warehouse-app/models"
	"warehouse-app/types"
)

// ItemLine is the document-neutral view of one line item used for
// reconciliation. A zero ID marks a line that does not exist yet.
type ItemLine struct {
	ID         types.SnowflakeID
	ResourceID types.SnowflakeID
	UnitID     types.SnowflakeID
	Quantity   decimal.Decimal
}

func (l ItemLine) sameKey(other ItemLine) bool {
	return l.ResourceID == other.ResourceID && l.UnitID == other.UnitID
}

type ItemUpdate struct {
	Old ItemLine
	New ItemLine
}

// ReconcilePlan is the minimal set of line operations that turns the current
// item set of a document into the desired one.
type ReconcilePlan struct {
	Inserts []ItemLine
	Updates []ItemUpdate
	Deletes []ItemLine
}

// ReconcileItems diffs the desired item set against the currently persisted
// one, keyed by item identity. Desired lines without identity are inserts;
// lines whose identity is unknown to the document are rejected, as is a
// line identity appearing more than once (each occurrence would be diffed
// against the same old line and the deltas would double-count). It is a pure
// computation: no storage access, no ledger writes.
func ReconcileItems(current, desired []ItemLine) (*ReconcilePlan, error) {
	currentByID := make(map[types.SnowflakeID]ItemLine, len(current))
	for _, line := range current {
		currentByID[line.ID] = line
	}

	plan := &ReconcilePlan{}
	kept := make(map[types.SnowflakeID]bool, len(desired))

	for _, line := range desired {
		if line.ID == 0 {
			plan.Inserts = append(plan.Inserts, line)
			continue
		}

		old, ok := currentByID[line.ID]
		if !ok {
			return nil, fmt.Errorf("item '%d': %w", line.ID, ErrNotFound)
		}
		if kept[line.ID] {
			return nil, fmt.Errorf("item '%d': %w", line.ID, ErrDuplicateItem)
		}

		kept[line.ID] = true
		plan.Updates = append(plan.Updates, ItemUpdate{Old: old, New: line})
	}

	for _, line := range current {
		if !kept[line.ID] {
			plan.Deletes = append(plan.Deletes, line)
		}
	}

	return plan, nil
}

// Deltas converts the plan into ledger adjustments, in the supply sign
// convention: inserted quantity enters the warehouse, deleted quantity
// leaves it. An update that moves a line to a different (resource, unit)
// key takes the old quantity off the old key and puts the new quantity on
// the new key.
func (p *ReconcilePlan) Deltas() []BalanceAdjustment {
	var deltas []BalanceAdjustment

	for _, line := range p.Deletes {
		deltas = append(deltas, BalanceAdjustment{
			ResourceID: line.ResourceID,
			UnitID:     line.UnitID,
			Quantity:   line.Quantity.Neg(),
		})
	}

	for _, upd := range p.Updates {
		if upd.Old.sameKey(upd.New) {
			deltas = append(deltas, BalanceAdjustment{
				ResourceID: upd.New.ResourceID,
				UnitID:     upd.New.UnitID,
				Quantity:   upd.New.Quantity.Sub(upd.Old.Quantity),
			})
			continue
		}

		deltas = append(deltas,
			BalanceAdjustment{
				ResourceID: upd.Old.ResourceID,
				UnitID:     upd.Old.UnitID,
				Quantity:   upd.Old.Quantity.Neg(),
			},
			BalanceAdjustment{
				ResourceID: upd.New.ResourceID,
				UnitID:     upd.New.UnitID,
				Quantity:   upd.New.Quantity,
			})
	}

	for _, line := range p.Inserts {
		deltas = append(deltas, BalanceAdjustment{
			ResourceID: line.ResourceID,
			UnitID:     line.UnitID,
			Quantity:   line.Quantity,
		})
	}

	return deltas
}

// ChangedLines returns the lines that introduce or change a resource/unit
// reference and therefore need the archived-entity check.
func (p *ReconcilePlan) ChangedLines() []ItemLine {
	lines := append([]ItemLine(nil), p.Inserts...)
	for _, upd := range p.Updates {
		if !upd.Old.sameKey(upd.New) {
			lines = append(lines, upd.New)
		}
	}
	return lines
}

// HasItemChanges reports whether the plan mutates the item set at all.
func (p *ReconcilePlan) HasItemChanges() bool {
	if len(p.Inserts) > 0 || len(p.Deletes) > 0 {
		return true
	}
	for _, upd := range p.Updates {
		if !upd.Old.sameKey(upd.New) || !upd.Old.Quantity.Equal(upd.New.Quantity) {
			return true
		}
	}
	return false
}

func supplyLines(items []models.SupplyItem) []ItemLine {
	lines := make([]ItemLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, ItemLine{
			ID:         item.ID,
			ResourceID: item.ResourceID,
			UnitID:     item.UnitID,
			Quantity:   item.Quantity,
		})
	}
	return lines
}

func shipmentLines(items []models.ShipmentItem) []ItemLine {
	lines := make([]ItemLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, ItemLine{
			ID:         item.ID,
			ResourceID: item.ResourceID,
			UnitID:     item.UnitID,
			Quantity:   item.Quantity,
		})
	}
	return lines
}
