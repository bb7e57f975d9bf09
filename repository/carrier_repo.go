package repository

import "packhouse/models"

type CarrierRepository interface {
	CreateCarrier(c *models.Carrier) error
	GetCarriers() ([]models.Carrier, error)
	CountCarriers() (int, error)

	CreateAssignment(a *models.CarrierAssignment) error
	GetAssignments(filters map[string]interface{}) ([]*models.CarrierAssignment, error)
	UpdateAssignmentStatus(id int64, status string) error

	AddTransitEvent(e *models.TransitHistory) error
	GetTransitHistory(assignmentID int64) ([]models.TransitHistory, error)
}
