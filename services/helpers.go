package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"warehouse-app/repositories"
	"warehouse-app/types"
)

// checkLineQuantities rejects non-positive quantities before anything is
// persisted.
func checkLineQuantities(lines []ItemLine) error {
	for _, line := range lines {
		if !line.Quantity.IsPositive() {
			return fmt.Errorf("resource '%d': %w", line.ResourceID, ErrNonPositiveQuantity)
		}
	}
	return nil
}

// checkLineEntities verifies that every resource and unit referenced by the
// given lines exists (not soft-deleted) and is not archived. Only lines that
// introduce or change a reference should be passed in.
func checkLineEntities(tx *gorm.DB, lines []ItemLine) error {
	if len(lines) == 0 {
		return nil
	}

	resourceIDs := make([]types.SnowflakeID, 0, len(lines))
	unitIDs := make([]types.SnowflakeID, 0, len(lines))
	seenResource := make(map[types.SnowflakeID]bool)
	seenUnit := make(map[types.SnowflakeID]bool)

	for _, line := range lines {
		if !seenResource[line.ResourceID] {
			seenResource[line.ResourceID] = true
			resourceIDs = append(resourceIDs, line.ResourceID)
		}
		if !seenUnit[line.UnitID] {
			seenUnit[line.UnitID] = true
			unitIDs = append(unitIDs, line.UnitID)
		}
	}

	resources, err := repositories.NewResourceRepository(tx).GetAllByIDs(resourceIDs)
	if err != nil {
		return err
	}
	foundResource := make(map[types.SnowflakeID]bool, len(resources))
	for _, resource := range resources {
		if resource.IsArchived {
			return &ArchivedEntityError{Kind: "resource", ID: resource.ID}
		}
		foundResource[resource.ID] = true
	}
	for _, id := range resourceIDs {
		if !foundResource[id] {
			return fmt.Errorf("resource '%d': %w", id, ErrNotFound)
		}
	}

	units, err := repositories.NewUomRepository(tx).GetAllByIDs(unitIDs)
	if err != nil {
		return err
	}
	foundUnit := make(map[types.SnowflakeID]bool, len(units))
	for _, unit := range units {
		if unit.IsArchived {
			return &ArchivedEntityError{Kind: "unit", ID: unit.ID}
		}
		foundUnit[unit.ID] = true
	}
	for _, id := range unitIDs {
		if !foundUnit[id] {
			return fmt.Errorf("unit '%d': %w", id, ErrNotFound)
		}
	}

	return nil
}

// translateDuplicate maps a unique-index violation to the domain conflict
// error; everything else passes through unchanged.
func translateDuplicate(err, conflict error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return conflict
	}
	return err
}
