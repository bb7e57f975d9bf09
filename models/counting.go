package models

import (
	"encoding/json"
	"time"
)

// Counting record statuses.
const (
	CountingPending         = "pending"
	CountingPendingColdroom = "pending_coldroom"
	CountingCompleted       = "completed"
)

// CountingTotals is the per-variety box breakdown after sorting.
type CountingTotals struct {
	Fuerte4kgTotal  int `json:"fuerte4kgTotal" bson:"fuerte4kg_total"`
	Fuerte10kgTotal int `json:"fuerte10kgTotal" bson:"fuerte10kg_total"`
	Hass4kgTotal    int `json:"hass4kgTotal" bson:"hass4kg_total"`
	Hass10kgTotal   int `json:"hass10kgTotal" bson:"hass10kg_total"`
}

// CountingRecord is the post-intake box/crate breakdown produced by sorting.
// Linked to an IntakeRecord by pallet_id/supplier, best effort (no strict FK).
type CountingRecord struct {
	ID                 int64           `json:"id" bson:"_id,omitempty" db:"id"`
	PalletID           string          `json:"pallet_id" bson:"pallet_id" db:"pallet_id"`
	SupplierID         *int64          `json:"supplier_id,omitempty" bson:"supplier_id,omitempty" db:"supplier_id"`
	SupplierName       string          `json:"supplier_name" bson:"supplier_name" db:"supplier_name"`
	Status             string          `json:"status" bson:"status" db:"status"`
	TotalCountedWeight float64         `json:"total_counted_weight" bson:"total_counted_weight" db:"total_counted_weight"`
	Totals             CountingTotals  `json:"totals" bson:"totals" db:"totals"`
	CountingData       json.RawMessage `json:"counting_data,omitempty" bson:"counting_data,omitempty" db:"counting_data"`
	CreatedAt          time.Time       `json:"created_at" bson:"created_at" db:"created_at"`
}

// CountingPayload is the wire form of a counting record. Legacy clients send
// totals and counting_data either as objects or as JSON-encoded strings, so
// both are taken raw and parsed defensively.
type CountingPayload struct {
	PalletID           string          `json:"pallet_id"`
	SupplierID         *int64          `json:"supplier_id,omitempty"`
	SupplierName       string          `json:"supplier_name"`
	Status             string          `json:"status"`
	TotalCountedWeight float64         `json:"total_counted_weight"`
	Totals             json.RawMessage `json:"totals"`
	CountingData       json.RawMessage `json:"counting_data"`
}
