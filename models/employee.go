package models

import "time"

// Employee contract types. Contract staff must be assigned a work area
// before they may gate out; permanent staff may leave without one.
const (
	ContractFullTime = "Full-time"
	ContractPartTime = "Part-time"
	ContractCasual   = "Contract"
)

type Employee struct {
	ID        int64     `json:"id" bson:"_id,omitempty" db:"id"`
	Name      string    `json:"name" bson:"name" db:"name"`
	IDNumber  string    `json:"id_number" bson:"id_number" db:"id_number"`
	Phone     string    `json:"phone" bson:"phone" db:"phone"`
	Contract  string    `json:"contract" bson:"contract" db:"contract"`
	Role      string    `json:"role" bson:"role" db:"role"`
	Status    string    `json:"status" bson:"status" db:"status"` // active | inactive
	CreatedAt time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}
