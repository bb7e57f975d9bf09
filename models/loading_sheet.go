package models

import "time"

// LoadingSheetLine is a pallet line item copied by value onto the sheet at
// assignment time. It is a snapshot, not a live reference into the cold room.
type LoadingSheetLine struct {
	ID       int64   `json:"id" bson:"_id,omitempty" db:"id"`
	SheetID  int64   `json:"sheet_id" bson:"sheet_id" db:"sheet_id"`
	PalletNo string  `json:"pallet_no" bson:"pallet_no" db:"pallet_no"`
	Variety  string  `json:"variety" bson:"variety" db:"variety"`
	BoxType  string  `json:"box_type" bson:"box_type" db:"box_type"` // 4kg | 10kg
	Boxes    int     `json:"boxes" bson:"boxes" db:"boxes"`
	Weight   float64 `json:"weight" bson:"weight" db:"weight"`
}

type LoadingSheet struct {
	ID           int64      `json:"id" bson:"_id,omitempty" db:"id"`
	SheetNo      string     `json:"sheet_no" bson:"sheet_no" db:"sheet_no"`
	Destination  string     `json:"destination" bson:"destination" db:"destination"`
	CarrierID    *int64     `json:"carrier_id,omitempty" bson:"carrier_id,omitempty" db:"carrier_id"`
	VehiclePlate string     `json:"vehicle_plate" bson:"vehicle_plate" db:"vehicle_plate"`
	DriverName   string     `json:"driver_name" bson:"driver_name" db:"driver_name"`
	TotalBoxes   int        `json:"total_boxes" bson:"total_boxes" db:"total_boxes"`
	TotalWeight  float64    `json:"total_weight" bson:"total_weight" db:"total_weight"`
	Status       string     `json:"status" bson:"status" db:"status"` // draft | dispatched
	CreatedBy    int64      `json:"created_by" bson:"created_by" db:"created_by"`
	CreatedAt    time.Time  `json:"created_at" bson:"created_at" db:"created_at"`
	PdfCreatedAt *time.Time `json:"pdf_created_at,omitempty" bson:"pdf_created_at,omitempty" db:"pdf_created_at"`
	PdfPath      *string    `json:"pdf_path,omitempty" bson:"pdf_path,omitempty" db:"pdf_path"`

	Lines         []LoadingSheetLine `json:"lines,omitempty" bson:"-"`
	Carrier       *Carrier           `json:"carrier,omitempty" bson:"-"`
	CreatedByUser *AppUser           `json:"created_by_user,omitempty" bson:"-"`
}
