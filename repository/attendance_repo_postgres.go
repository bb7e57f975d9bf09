package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"packhouse/models"
)

type PostgresAttendanceRepo struct {
	DB *sql.DB
}

func NewPostgresAttendanceRepo(db *sql.DB) *PostgresAttendanceRepo {
	return &PostgresAttendanceRepo{DB: db}
}

// UpsertAttendance keeps the one-row-per-(employee,date) invariant in the
// store itself via the unique constraint.
func (r *PostgresAttendanceRepo) UpsertAttendance(rec *models.AttendanceRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	return r.DB.QueryRow(`
		INSERT INTO attendance_record(
			employee_id,date,status,clock_in_time,clock_out_time,designation,created_at,updated_at
		)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT(employee_id,date) DO UPDATE SET
			status=EXCLUDED.status,
			clock_in_time=EXCLUDED.clock_in_time,
			clock_out_time=EXCLUDED.clock_out_time,
			designation=EXCLUDED.designation,
			updated_at=EXCLUDED.updated_at
		RETURNING id
	`,
		rec.EmployeeID, rec.Date, rec.Status, rec.ClockInTime, rec.ClockOutTime,
		rec.Designation, rec.CreatedAt, rec.UpdatedAt,
	).Scan(&rec.ID)
}

// UpdateAttendance applies a partial update; fields the caller left nil are
// preserved as stored.
func (r *PostgresAttendanceRepo) UpdateAttendance(id int64, upd *models.AttendanceUpdate) error {
	sets := []string{}
	args := []interface{}{}
	n := 1

	if upd.Status != nil {
		sets = append(sets, fmt.Sprintf("status=$%d", n))
		args = append(args, *upd.Status)
		n++
	}
	if upd.ClockInTime != nil {
		sets = append(sets, fmt.Sprintf("clock_in_time=$%d", n))
		args = append(args, *upd.ClockInTime)
		n++
	}
	if upd.ClockOutTime != nil {
		sets = append(sets, fmt.Sprintf("clock_out_time=$%d", n))
		args = append(args, *upd.ClockOutTime)
		n++
	}
	if upd.Designation != nil {
		sets = append(sets, fmt.Sprintf("designation=$%d", n))
		args = append(args, *upd.Designation)
		n++
	}
	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, fmt.Sprintf("updated_at=$%d", n))
	args = append(args, time.Now().UTC())
	n++
	args = append(args, id)

	query := fmt.Sprintf("UPDATE attendance_record SET %s WHERE id=$%d", strings.Join(sets, ", "), n)
	res, err := r.DB.Exec(query, args...)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *PostgresAttendanceRepo) GetAttendanceByID(id int64) (*models.AttendanceRecord, error) {
	list, err := r.GetAttendance(map[string]interface{}{"id": id})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (r *PostgresAttendanceRepo) GetByEmployeeAndDate(employeeID int64, date string) (*models.AttendanceRecord, error) {
	list, err := r.GetAttendance(map[string]interface{}{"employee_id": employeeID, "date": date})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (r *PostgresAttendanceRepo) GetAttendance(filters map[string]interface{}) ([]*models.AttendanceRecord, error) {
	query := `
		SELECT a.id, a.employee_id, a.date, a.status, a.clock_in_time, a.clock_out_time,
		       a.designation, a.created_at, a.updated_at,

		       e.id, e.name, e.id_number, e.phone, e.contract, e.role, e.status, e.created_at
		FROM attendance_record a
		LEFT JOIN employee e ON a.employee_id = e.id
	`

	args := []interface{}{}
	where := []string{}
	n := 1
	for k, v := range allowFilters(filters, "id", "employee_id", "date", "status", "designation") {
		where = append(where, fmt.Sprintf("a.%s = $%d", k, n))
		args = append(args, v)
		n++
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY a.date DESC, a.employee_id ASC"

	return r.scanRows(query, args...)
}

func (r *PostgresAttendanceRepo) GetAttendanceRange(from, to string) ([]*models.AttendanceRecord, error) {
	query := `
		SELECT a.id, a.employee_id, a.date, a.status, a.clock_in_time, a.clock_out_time,
		       a.designation, a.created_at, a.updated_at,

		       e.id, e.name, e.id_number, e.phone, e.contract, e.role, e.status, e.created_at
		FROM attendance_record a
		LEFT JOIN employee e ON a.employee_id = e.id
		WHERE a.date >= $1 AND a.date <= $2
		ORDER BY a.date ASC, a.employee_id ASC
	`
	return r.scanRows(query, from, to)
}

func (r *PostgresAttendanceRepo) scanRows(query string, args ...interface{}) ([]*models.AttendanceRecord, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.AttendanceRecord
	for rows.Next() {
		var rec models.AttendanceRecord
		var eID sql.NullInt64
		var eName, eIDNum, ePhone, eContract, eRole, eStatus sql.NullString
		var eCreated sql.NullTime

		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status, &rec.ClockInTime,
			&rec.ClockOutTime, &rec.Designation, &rec.CreatedAt, &rec.UpdatedAt,
			&eID, &eName, &eIDNum, &ePhone, &eContract, &eRole, &eStatus, &eCreated,
		)
		if err != nil {
			return nil, err
		}
		if eID.Valid {
			rec.Employee = &models.Employee{
				ID:        eID.Int64,
				Name:      eName.String,
				IDNumber:  eIDNum.String,
				Phone:     ePhone.String,
				Contract:  eContract.String,
				Role:      eRole.String,
				Status:    eStatus.String,
				CreatedAt: eCreated.Time,
			}
		}
		result = append(result, &rec)
	}
	return result, nil
}
