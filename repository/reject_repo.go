package repository

import "packhouse/models"

type RejectRepository interface {
	CreateReject(rec *models.RejectionEntry) error
	GetRejects(filters map[string]interface{}) ([]*models.RejectionEntry, error)
	DeleteReject(id int64) error
}
