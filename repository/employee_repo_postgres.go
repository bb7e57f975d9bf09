package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"packhouse/models"
)

type PostgresEmployeeRepo struct {
	DB *sql.DB
}

func NewPostgresEmployeeRepo(db *sql.DB) *PostgresEmployeeRepo {
	return &PostgresEmployeeRepo{DB: db}
}

func (r *PostgresEmployeeRepo) CreateEmployee(e *models.Employee) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	if e.Status == "" {
		e.Status = "active"
	}
	return r.DB.QueryRow(`
		INSERT INTO employee(name,id_number,phone,contract,role,status,created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`, e.Name, e.IDNumber, e.Phone, e.Contract, e.Role, e.Status, e.CreatedAt).Scan(&e.ID)
}

func (r *PostgresEmployeeRepo) GetEmployees(filters map[string]interface{}) ([]*models.Employee, error) {
	query := `
		SELECT id, name, id_number, phone, contract, role, status, created_at
		FROM employee
	`

	args := []interface{}{}
	where := []string{}
	n := 1
	for k, v := range allowFilters(filters, "id", "name", "id_number", "phone", "contract", "role", "status") {
		where = append(where, fmt.Sprintf("%s = $%d", k, n))
		args = append(args, v)
		n++
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY name ASC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Employee
	for rows.Next() {
		var e models.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.IDNumber, &e.Phone, &e.Contract, &e.Role, &e.Status, &e.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &e)
	}
	return result, nil
}

func (r *PostgresEmployeeRepo) GetEmployeeByID(id int64) (*models.Employee, error) {
	e := &models.Employee{}
	err := r.DB.QueryRow(`
		SELECT id, name, id_number, phone, contract, role, status, created_at
		FROM employee WHERE id=$1
	`, id).Scan(&e.ID, &e.Name, &e.IDNumber, &e.Phone, &e.Contract, &e.Role, &e.Status, &e.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

func (r *PostgresEmployeeRepo) UpdateEmployee(e *models.Employee) error {
	_, err := r.DB.Exec(`
		UPDATE employee
		SET name=$1, id_number=$2, phone=$3, contract=$4, role=$5, status=$6
		WHERE id=$7
	`, e.Name, e.IDNumber, e.Phone, e.Contract, e.Role, e.Status, e.ID)
	return err
}

func (r *PostgresEmployeeRepo) DeleteEmployee(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM employee WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *PostgresEmployeeRepo) CountEmployees() (int, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM employee WHERE status='active'`).Scan(&count)
	return count, err
}
