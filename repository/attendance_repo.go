package repository

import "packhouse/models"

type AttendanceRepository interface {
	// UpsertAttendance writes the single record for (employee_id, date),
	// replacing fields rather than appending a second row.
	UpsertAttendance(rec *models.AttendanceRecord) error
	UpdateAttendance(id int64, upd *models.AttendanceUpdate) error
	GetAttendanceByID(id int64) (*models.AttendanceRecord, error)
	GetByEmployeeAndDate(employeeID int64, date string) (*models.AttendanceRecord, error)
	GetAttendance(filters map[string]interface{}) ([]*models.AttendanceRecord, error)
	GetAttendanceRange(from, to string) ([]*models.AttendanceRecord, error)
}
