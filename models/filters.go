package models

import (
	"time"

	"warehouse-app/types"
)

// EntityFilter narrows reference-entity listings (resources, units, clients).
type EntityFilter struct {
	IDs             []types.SnowflakeID `json:"ids"`
	NameContains    string              `json:"name_contains"`
	IncludeArchived bool                `json:"include_archived"`
}

// DocumentFilter narrows supply/shipment listings.
type DocumentFilter struct {
	DateFrom    *time.Time          `json:"date_from"`
	DateTo      *time.Time          `json:"date_to"`
	Numbers     []string            `json:"numbers"`
	ResourceIDs []types.SnowflakeID `json:"resource_ids"`
	UnitIDs     []types.SnowflakeID `json:"unit_ids"`
}

type BalanceFilter struct {
	ResourceIDs []types.SnowflakeID `json:"resource_ids"`
	UnitIDs     []types.SnowflakeID `json:"unit_ids"`
}
