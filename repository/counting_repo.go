package repository

import "packhouse/models"

type CountingRepository interface {
	CreateCounting(rec *models.CountingRecord) error
	GetCountingHistory(filters map[string]interface{}) ([]*models.CountingRecord, error)
	GetCountingByPallet(palletID string) (*models.CountingRecord, error)
	UpdateCountingStatus(id int64, status string) error
}
