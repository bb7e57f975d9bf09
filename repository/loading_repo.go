package repository

import (
	"time"

	"packhouse/models"
)

type LoadingSheetRepository interface {
	// CreateLoadingSheet persists the sheet and its pallet lines in one
	// write. Lines are value copies; cold-room inventory is untouched.
	CreateLoadingSheet(sheet *models.LoadingSheet) error
	GetLoadingSheets(filters map[string]interface{}, single bool) ([]*models.LoadingSheet, error)
	UpdatePDFInfo(id int64, path string, createdAt time.Time) error
}
