package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"packhouse/models"
)

type PostgresSettingsRepo struct {
	DB *sql.DB
}

func NewPostgresSettingsRepo(db *sql.DB) *PostgresSettingsRepo {
	return &PostgresSettingsRepo{DB: db}
}

// SaveSettings inserts or updates the facility identity block
func (r *PostgresSettingsRepo) SaveSettings(s *models.FacilitySettings) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}

	contactsJSON, err := json.Marshal(s.Contacts)
	if err != nil {
		return err
	}

	// If ID is passed → UPDATE, else INSERT
	if s.ID > 0 {
		_, err = r.DB.Exec(`
			UPDATE facility_settings
			SET name=$1, address=$2, town=$3, region=$4, exporter_code=$5,
				footnote=$6, contacts=$7, created_at=$8
			WHERE id=$9
		`, s.FacilityName, s.Address, s.Town, s.Region, s.ExporterCode,
			s.Footnote, contactsJSON, s.CreatedAt, s.ID)
	} else {
		_, err = r.DB.Exec(`
			INSERT INTO facility_settings
			(name, address, town, region, exporter_code, footnote, contacts, created_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		`, s.FacilityName, s.Address, s.Town, s.Region, s.ExporterCode,
			s.Footnote, contactsJSON, s.CreatedAt)
	}

	return err
}

// GetSettings fetches the latest facility settings
func (r *PostgresSettingsRepo) GetSettings() (*models.FacilitySettings, error) {
	s := &models.FacilitySettings{}
	var contactsJSON []byte

	err := r.DB.QueryRow(`
		SELECT id, name, address, town, region, exporter_code, footnote, contacts, created_at
		FROM facility_settings
		ORDER BY id DESC LIMIT 1
	`).Scan(&s.ID, &s.FacilityName, &s.Address, &s.Town, &s.Region,
		&s.ExporterCode, &s.Footnote, &contactsJSON, &s.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if len(contactsJSON) > 0 {
		if err := json.Unmarshal(contactsJSON, &s.Contacts); err != nil {
			return nil, err
		}
	}

	return s, nil
}
