package repository

import (
	"database/sql"
	"time"

	"packhouse/models"
)

type PostgresSupplierRepo struct {
	DB *sql.DB
}

func NewPostgresSupplierRepo(db *sql.DB) *PostgresSupplierRepo {
	return &PostgresSupplierRepo{DB: db}
}

func (r *PostgresSupplierRepo) CreateSupplier(s *models.Supplier) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	if s.Status == "" {
		s.Status = "active"
	}
	return r.DB.QueryRow(`
		INSERT INTO supplier(name,phone,region,status,created_at)
		VALUES($1,$2,$3,$4,$5)
		RETURNING id
	`, s.Name, s.Phone, s.Region, s.Status, s.CreatedAt).Scan(&s.ID)
}

func (r *PostgresSupplierRepo) GetSuppliers() ([]models.Supplier, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, phone, region, status, created_at
		FROM supplier
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.Supplier
	for rows.Next() {
		var s models.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Phone, &s.Region, &s.Status, &s.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}

func (r *PostgresSupplierRepo) CountSuppliers() (int, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM supplier`).Scan(&count)
	return count, err
}
