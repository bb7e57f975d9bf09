package repository

import "packhouse/models"

type IntakeRepository interface {
	// CreateIntake assigns the next PAL-NNN/MMDD id for the record's day
	// and persists the record.
	CreateIntake(rec *models.IntakeRecord) error
	GetIntakes(filters map[string]interface{}, limit int, order string) ([]*models.IntakeRecord, error)
	GetIntakeByPallet(palletID string) (*models.IntakeRecord, error)
	IntakeTotalForDate(date string) (float64, error)
}
