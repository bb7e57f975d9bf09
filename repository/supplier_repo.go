package repository

import "packhouse/models"

type SupplierRepository interface {
	CreateSupplier(s *models.Supplier) error
	GetSuppliers() ([]models.Supplier, error)
	CountSuppliers() (int, error)
}
