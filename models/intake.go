package models

import "time"

// IntakeRecord is one weighing event at the intake station. Records are
// immutable once created; corrections are modeled as counting or rejection
// entries, never in-place edits.
type IntakeRecord struct {
	ID           int64     `json:"id" bson:"_id,omitempty" db:"id"`
	PalletID     string    `json:"pallet_id" bson:"pallet_id" db:"pallet_id"` // PAL-NNN/MMDD, sequence resets daily
	SupplierID   *int64    `json:"supplier_id,omitempty" bson:"supplier_id,omitempty" db:"supplier_id"`
	SupplierName string    `json:"supplier_name" bson:"supplier_name" db:"supplier_name"`
	DriverName   string    `json:"driver_name" bson:"driver_name" db:"driver_name"`
	VehiclePlate string    `json:"vehicle_plate" bson:"vehicle_plate" db:"vehicle_plate"`
	Region       string    `json:"region" bson:"region" db:"region"`
	FuerteWeight float64   `json:"fuerte_weight" bson:"fuerte_weight" db:"fuerte_weight"`
	FuerteCrates int       `json:"fuerte_crates" bson:"fuerte_crates" db:"fuerte_crates"`
	HassWeight   float64   `json:"hass_weight" bson:"hass_weight" db:"hass_weight"`
	HassCrates   int       `json:"hass_crates" bson:"hass_crates" db:"hass_crates"`
	TotalWeight  float64   `json:"total_weight" bson:"total_weight" db:"total_weight"`
	CreatedBy    int64     `json:"created_by" bson:"created_by" db:"created_by"`
	Timestamp    time.Time `json:"timestamp" bson:"timestamp" db:"timestamp"`

	CreatedByUser *AppUser `json:"created_by_user,omitempty" bson:"-"`
}

// CreateIntakeRequest carries the weighing-station form. Weights and crate
// counts arrive as strings from the scale UI.
type CreateIntakeRequest struct {
	SupplierID   *int64 `json:"supplier_id,omitempty"`
	SupplierName string `json:"supplier_name"`
	DriverName   string `json:"driver_name"`
	VehiclePlate string `json:"vehicle_plate"`
	Region       string `json:"region"`
	FuerteWeight string `json:"fuerte_weight"`
	FuerteCrates string `json:"fuerte_crates"`
	HassWeight   string `json:"hass_weight"`
	HassCrates   string `json:"hass_crates"`
	CreatedBy    int64  `json:"created_by"`
}
