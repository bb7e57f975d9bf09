package repository

import "packhouse/models"

// ReportRepository bundles the stores a report or PDF needs into one fetch
// surface.
type ReportRepository struct {
	SheetRepo      LoadingSheetRepository
	SettingsRepo   SettingsRepository
	EmployeeRepo   EmployeeRepository
	AttendanceRepo AttendanceRepository
	IntakeRepo     IntakeRepository
}

// GetSheetForPDF fetches a single loading sheet by ID for PDF rendering
func (r *ReportRepository) GetSheetForPDF(id int64) (*models.LoadingSheet, error) {
	sheets, err := r.SheetRepo.GetLoadingSheets(map[string]interface{}{"id": id}, true)
	if err != nil {
		return nil, err
	}
	if len(sheets) == 0 {
		return nil, nil
	}
	return sheets[0], nil
}

// GetSettingsForPDF fetches the facility identity block
func (r *ReportRepository) GetSettingsForPDF() (*models.FacilitySettings, error) {
	return r.SettingsRepo.GetSettings()
}
