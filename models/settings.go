package models

import "time"

type ContactEntry struct {
	Number string `json:"number" bson:"number" db:"number"`
	Label  string `json:"label" bson:"label" db:"label"`
}

// FacilitySettings is the packhouse identity printed on loading sheets.
type FacilitySettings struct {
	ID           int64          `json:"id" bson:"_id,omitempty" db:"id"`
	FacilityName string         `json:"facility_name" bson:"name" db:"name"`
	Address      string         `json:"address" bson:"address" db:"address"`
	Town         string         `json:"town" bson:"town" db:"town"`
	Region       string         `json:"region" bson:"region" db:"region"`
	ExporterCode string         `json:"exporter_code" bson:"exporter_code" db:"exporter_code"`
	Footnote     string         `json:"footnote" bson:"footnote" db:"footnote"`
	Contacts     []ContactEntry `json:"contacts" bson:"contacts" db:"contacts"`
	CreatedAt    time.Time      `json:"created_at" bson:"created_at" db:"created_at"`
}
