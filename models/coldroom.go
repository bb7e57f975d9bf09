package models

import "time"

type TemperatureReading struct {
	ID         int64     `json:"id" bson:"_id,omitempty" db:"id"`
	Room       string    `json:"room" bson:"room" db:"room"`
	Celsius    float64   `json:"celsius" bson:"celsius" db:"celsius"`
	RecordedAt time.Time `json:"recorded_at" bson:"recorded_at" db:"recorded_at"`
}

// ColdRoomBoxes is the current box inventory per variety and box size.
type ColdRoomBoxes struct {
	ID        int64     `json:"id" bson:"_id,omitempty" db:"id"`
	Variety   string    `json:"variety" bson:"variety" db:"variety"`   // fuerte | hass
	BoxType   string    `json:"box_type" bson:"box_type" db:"box_type"` // 4kg | 10kg
	Quantity  int       `json:"quantity" bson:"quantity" db:"quantity"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at" db:"updated_at"`
}

type ColdRoomPallet struct {
	ID       int64     `json:"id" bson:"_id,omitempty" db:"id"`
	PalletNo string    `json:"pallet_no" bson:"pallet_no" db:"pallet_no"`
	Variety  string    `json:"variety" bson:"variety" db:"variety"`
	BoxType  string    `json:"box_type" bson:"box_type" db:"box_type"`
	Boxes    int       `json:"boxes" bson:"boxes" db:"boxes"`
	Weight   float64   `json:"weight" bson:"weight" db:"weight"`
	StoredAt time.Time `json:"stored_at" bson:"stored_at" db:"stored_at"`
}

type LoadingHistoryEntry struct {
	ID          int64     `json:"id" bson:"_id,omitempty" db:"id"`
	SheetNo     string    `json:"sheet_no" bson:"sheet_no" db:"sheet_no"`
	Destination string    `json:"destination" bson:"destination" db:"destination"`
	TotalBoxes  int       `json:"total_boxes" bson:"total_boxes" db:"total_boxes"`
	TotalWeight float64   `json:"total_weight" bson:"total_weight" db:"total_weight"`
	LoadedAt    time.Time `json:"loaded_at" bson:"loaded_at" db:"loaded_at"`
}
