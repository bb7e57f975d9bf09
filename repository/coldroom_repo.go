package repository

import "packhouse/models"

type ColdRoomRepository interface {
	GetTemperatures() ([]models.TemperatureReading, error)
	AddTemperature(r *models.TemperatureReading) error
	GetBoxes() ([]models.ColdRoomBoxes, error)
	SaveBoxes(b *models.ColdRoomBoxes) error
	GetPallets() ([]models.ColdRoomPallet, error)
	AddPallet(p *models.ColdRoomPallet) error
	GetLoadingHistory() ([]models.LoadingHistoryEntry, error)
	AddLoadingHistory(e *models.LoadingHistoryEntry) error
	CountBoxes() (int, error)
}
