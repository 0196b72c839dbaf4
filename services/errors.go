package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"warehouse-app/types"
)

// Expected, recoverable-by-caller conditions. Controllers map these to
// distinct HTTP outcomes; anything else is an internal failure.
var (
	ErrNotFound                = errors.New("not found")
	ErrDuplicateNumber         = errors.New("document number already exists")
	ErrDuplicateName           = errors.New("name already exists")
	ErrEmptyDocument           = errors.New("shipment must contain at least one item")
	ErrInvalidTransition       = errors.New("invalid status transition")
	ErrSignedDocumentImmutable = errors.New("cannot edit items of a signed shipment")
	ErrRevokedDocument         = errors.New("revoked shipment cannot be edited")
	ErrInUse                   = errors.New("entity is in use and cannot be deleted, consider archiving instead")
	ErrDuplicateItem           = errors.New("document lists the same item more than once")
	ErrMissingBalance          = errors.New("balance entry missing on adjust")
	ErrNonPositiveQuantity     = errors.New("item quantity must be greater than zero")
)

// InsufficientStockError reports the key that lacked cover together with
// what was available and what the adjustment required.
type InsufficientStockError struct {
	ResourceID types.SnowflakeID
	UnitID     types.SnowflakeID
	Available  decimal.Decimal
	Required   decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough resource '%d' (unit '%d'): available %s, required %s",
		e.ResourceID, e.UnitID, e.Available.String(), e.Required.String())
}

// ArchivedEntityError reports a line or document referencing an archived entity.
type ArchivedEntityError struct {
	Kind string // "resource", "unit" or "client"
	ID   types.SnowflakeID
}

func (e *ArchivedEntityError) Error() string {
	return fmt.Sprintf("%s '%d' is archived and cannot be used", e.Kind, e.ID)
}
