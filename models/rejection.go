package models

import "time"

// RejectionEntry records weight and crates disqualified during quality
// control. Variance is recomputed against the source intake weight before
// every persist; see engine.RecomputeRejection.
type RejectionEntry struct {
	ID                  int64     `json:"id" bson:"_id,omitempty" db:"id"`
	PalletID            string    `json:"pallet_id" bson:"pallet_id" db:"pallet_id"`
	SupplierID          *int64    `json:"supplier_id,omitempty" bson:"supplier_id,omitempty" db:"supplier_id"`
	SupplierName        string    `json:"supplier_name" bson:"supplier_name" db:"supplier_name"`
	FuerteWeight        float64   `json:"fuerte_weight" bson:"fuerte_weight" db:"fuerte_weight"`
	FuerteCrates        int       `json:"fuerte_crates" bson:"fuerte_crates" db:"fuerte_crates"`
	HassWeight          float64   `json:"hass_weight" bson:"hass_weight" db:"hass_weight"`
	HassCrates          int       `json:"hass_crates" bson:"hass_crates" db:"hass_crates"`
	TotalRejectedWeight float64   `json:"total_rejected_weight" bson:"total_rejected_weight" db:"total_rejected_weight"`
	TotalRejectedCrates int       `json:"total_rejected_crates" bson:"total_rejected_crates" db:"total_rejected_crates"`
	CountedWeight       float64   `json:"counted_weight" bson:"counted_weight" db:"counted_weight"` // snapshot of counting record at entry time
	Variance            float64   `json:"variance" bson:"variance" db:"variance"`
	Reason              string    `json:"reason" bson:"reason" db:"reason"`
	Notes               string    `json:"notes" bson:"notes" db:"notes"`
	RejectedAt          time.Time `json:"rejected_at" bson:"rejected_at" db:"rejected_at"`
	CreatedBy           int64     `json:"created_by" bson:"created_by" db:"created_by"`

	CreatedByUser *AppUser `json:"created_by_user,omitempty" bson:"-"`
}
