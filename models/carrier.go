package models

import "time"

type Carrier struct {
	ID           int64     `json:"id" bson:"_id,omitempty" db:"id"`
	Name         string    `json:"name" bson:"name" db:"name"`
	VehiclePlate string    `json:"vehicle_plate" bson:"vehicle_plate" db:"vehicle_plate"`
	DriverName   string    `json:"driver_name" bson:"driver_name" db:"driver_name"`
	Phone        string    `json:"phone" bson:"phone" db:"phone"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}

// Carrier assignment statuses.
const (
	AssignmentAssigned  = "assigned"
	AssignmentInTransit = "in_transit"
	AssignmentDelivered = "delivered"
)

type CarrierAssignment struct {
	ID             int64      `json:"id" bson:"_id,omitempty" db:"id"`
	CarrierID      int64      `json:"carrier_id" bson:"carrier_id" db:"carrier_id"`
	LoadingSheetID int64      `json:"loading_sheet_id" bson:"loading_sheet_id" db:"loading_sheet_id"`
	Status         string     `json:"status" bson:"status" db:"status"`
	AssignedAt     time.Time  `json:"assigned_at" bson:"assigned_at" db:"assigned_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty" db:"updated_at"`

	Carrier *Carrier `json:"carrier,omitempty" bson:"-"`
}

type TransitHistory struct {
	ID           int64     `json:"id" bson:"_id,omitempty" db:"id"`
	AssignmentID int64     `json:"assignment_id" bson:"assignment_id" db:"assignment_id"`
	Status       string    `json:"status" bson:"status" db:"status"`
	Location     string    `json:"location" bson:"location" db:"location"`
	Note         string    `json:"note" bson:"note" db:"note"`
	RecordedAt   time.Time `json:"recorded_at" bson:"recorded_at" db:"recorded_at"`
}
