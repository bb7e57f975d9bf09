package repository

import "packhouse/models"

type SettingsRepository interface {
	SaveSettings(s *models.FacilitySettings) error
	GetSettings() (*models.FacilitySettings, error)
}
