package repository

import "packhouse/models"

type EmployeeRepository interface {
	CreateEmployee(e *models.Employee) error
	GetEmployees(filters map[string]interface{}) ([]*models.Employee, error)
	GetEmployeeByID(id int64) (*models.Employee, error)
	UpdateEmployee(e *models.Employee) error
	DeleteEmployee(id int64) error
	CountEmployees() (int, error)
}
