package models

import "time"

type Supplier struct {
	ID        int64     `json:"id" bson:"_id,omitempty" db:"id"`
	Name      string    `json:"name" bson:"name" db:"name"`
	Phone     string    `json:"phone" bson:"phone" db:"phone"`
	Region    string    `json:"region" bson:"region" db:"region"`
	Status    string    `json:"status" bson:"status" db:"status"` // active | inactive
	CreatedAt time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}
