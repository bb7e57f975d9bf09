package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"packhouse/models"
)

type PostgresCarrierRepo struct {
	DB *sql.DB
}

func NewPostgresCarrierRepo(db *sql.DB) *PostgresCarrierRepo {
	return &PostgresCarrierRepo{DB: db}
}

func (r *PostgresCarrierRepo) CreateCarrier(c *models.Carrier) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	return r.DB.QueryRow(`
		INSERT INTO carrier(name,vehicle_plate,driver_name,phone,created_at)
		VALUES($1,$2,$3,$4,$5)
		RETURNING id
	`, c.Name, c.VehiclePlate, c.DriverName, c.Phone, c.CreatedAt).Scan(&c.ID)
}

func (r *PostgresCarrierRepo) GetCarriers() ([]models.Carrier, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, vehicle_plate, driver_name, phone, created_at
		FROM carrier
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.Carrier
	for rows.Next() {
		var c models.Carrier
		if err := rows.Scan(&c.ID, &c.Name, &c.VehiclePlate, &c.DriverName, &c.Phone, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, nil
}

func (r *PostgresCarrierRepo) CountCarriers() (int, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM carrier`).Scan(&count)
	return count, err
}

func (r *PostgresCarrierRepo) CreateAssignment(a *models.CarrierAssignment) error {
	if a.AssignedAt.IsZero() {
		a.AssignedAt = time.Now().UTC()
	}
	if a.Status == "" {
		a.Status = models.AssignmentAssigned
	}
	return r.DB.QueryRow(`
		INSERT INTO carrier_assignment(carrier_id,loading_sheet_id,status,assigned_at)
		VALUES($1,$2,$3,$4)
		RETURNING id
	`, a.CarrierID, a.LoadingSheetID, a.Status, a.AssignedAt).Scan(&a.ID)
}

func (r *PostgresCarrierRepo) GetAssignments(filters map[string]interface{}) ([]*models.CarrierAssignment, error) {
	query := `
		SELECT a.id, a.carrier_id, a.loading_sheet_id, a.status, a.assigned_at, a.updated_at,

		       c.id, c.name, c.vehicle_plate, c.driver_name, c.phone, c.created_at
		FROM carrier_assignment a
		LEFT JOIN carrier c ON a.carrier_id = c.id
	`

	args := []interface{}{}
	where := []string{}
	n := 1
	for k, v := range allowFilters(filters, "id", "carrier_id", "loading_sheet_id", "status") {
		where = append(where, fmt.Sprintf("a.%s = $%d", k, n))
		args = append(args, v)
		n++
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY a.assigned_at DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.CarrierAssignment
	for rows.Next() {
		var a models.CarrierAssignment
		var cID sql.NullInt64
		var cName, cPlate, cDriver, cPhone sql.NullString
		var cCreated sql.NullTime

		err := rows.Scan(
			&a.ID, &a.CarrierID, &a.LoadingSheetID, &a.Status, &a.AssignedAt, &a.UpdatedAt,
			&cID, &cName, &cPlate, &cDriver, &cPhone, &cCreated,
		)
		if err != nil {
			return nil, err
		}
		if cID.Valid {
			a.Carrier = &models.Carrier{
				ID:           cID.Int64,
				Name:         cName.String,
				VehiclePlate: cPlate.String,
				DriverName:   cDriver.String,
				Phone:        cPhone.String,
				CreatedAt:    cCreated.Time,
			}
		}
		result = append(result, &a)
	}
	return result, nil
}

func (r *PostgresCarrierRepo) UpdateAssignmentStatus(id int64, status string) error {
	res, err := r.DB.Exec(`
		UPDATE carrier_assignment SET status=$1, updated_at=$2 WHERE id=$3
	`, status, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *PostgresCarrierRepo) AddTransitEvent(e *models.TransitHistory) error {
	if e.RecordedAt.IsZero() {
		e.RecordedAt = time.Now().UTC()
	}
	return r.DB.QueryRow(`
		INSERT INTO transit_history(assignment_id,status,location,note,recorded_at)
		VALUES($1,$2,$3,$4,$5)
		RETURNING id
	`, e.AssignmentID, e.Status, e.Location, e.Note, e.RecordedAt).Scan(&e.ID)
}

func (r *PostgresCarrierRepo) GetTransitHistory(assignmentID int64) ([]models.TransitHistory, error) {
	query := `
		SELECT id, assignment_id, status, location, note, recorded_at
		FROM transit_history
	`
	args := []interface{}{}
	if assignmentID != 0 {
		query += ` WHERE assignment_id=$1`
		args = append(args, assignmentID)
	}
	query += ` ORDER BY recorded_at DESC`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.TransitHistory
	for rows.Next() {
		var e models.TransitHistory
		if err := rows.Scan(&e.ID, &e.AssignmentID, &e.Status, &e.Location, &e.Note, &e.RecordedAt); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, nil
}
