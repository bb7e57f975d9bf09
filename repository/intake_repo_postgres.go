package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"packhouse/models"
)

type PostgresIntakeRepo struct {
	DB *sql.DB
}

func NewPostgresIntakeRepo(db *sql.DB) *PostgresIntakeRepo {
	return &PostgresIntakeRepo{DB: db}
}

// CreateIntake claims the next pallet sequence for the record's day. Two
// weighing stations can read the same MAX(day_seq) at read committed, so the
// unique index on (day, day_seq) is the real arbiter: the loser's insert
// fails with a unique violation and the claim is retried with a fresh
// sequence.
func (r *PostgresIntakeRepo) CreateIntake(rec *models.IntakeRecord) error {
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}
	rec.TotalWeight = rec.FuerteWeight + rec.HassWeight

	var err error
	for attempt := 0; attempt < 3; attempt++ {
		err = r.createIntakeOnce(rec)
		if !isUniqueViolation(err) {
			return err
		}
	}
	return err
}

func (r *PostgresIntakeRepo) createIntakeOnce(rec *models.IntakeRecord) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var seq int
	err = tx.QueryRow(`
		SELECT COALESCE(MAX(day_seq),0)+1
		FROM intake_record
		WHERE date(timestamp) = date($1)
	`, rec.Timestamp).Scan(&seq)
	if err != nil {
		return err
	}
	rec.PalletID = fmt.Sprintf("PAL-%03d/%s", seq, rec.Timestamp.Format("0102"))

	err = tx.QueryRow(`
		INSERT INTO intake_record(
			pallet_id,day_seq,supplier_id,supplier_name,driver_name,vehicle_plate,region,
			fuerte_weight,fuerte_crates,hass_weight,hass_crates,total_weight,
			created_by,timestamp
		)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		RETURNING id
	`,
		rec.PalletID, seq, rec.SupplierID, rec.SupplierName, rec.DriverName, rec.VehiclePlate,
		rec.Region, rec.FuerteWeight, rec.FuerteCrates, rec.HassWeight, rec.HassCrates,
		rec.TotalWeight, rec.CreatedBy, rec.Timestamp,
	).Scan(&rec.ID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// isUniqueViolation reports whether err is a Postgres unique_violation.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (r *PostgresIntakeRepo) GetIntakes(filters map[string]interface{}, limit int, order string) ([]*models.IntakeRecord, error) {
	query := `
		SELECT i.id, i.pallet_id, i.supplier_id, i.supplier_name, i.driver_name,
		       i.vehicle_plate, i.region, i.fuerte_weight, i.fuerte_crates,
		       i.hass_weight, i.hass_crates, i.total_weight, i.created_by, i.timestamp
		FROM intake_record i
	`

	args := []interface{}{}
	where := []string{}
	n := 1
	for k, v := range allowFilters(filters, "id", "pallet_id", "supplier_id", "supplier_name", "driver_name", "vehicle_plate", "region", "created_by") {
		where = append(where, fmt.Sprintf("i.%s = $%d", k, n))
		args = append(args, v)
		n++
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	if strings.EqualFold(order, "asc") {
		query += " ORDER BY i.timestamp ASC"
	} else {
		query += " ORDER BY i.timestamp DESC"
	}
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.IntakeRecord
	for rows.Next() {
		var rec models.IntakeRecord
		err := rows.Scan(
			&rec.ID, &rec.PalletID, &rec.SupplierID, &rec.SupplierName, &rec.DriverName,
			&rec.VehiclePlate, &rec.Region, &rec.FuerteWeight, &rec.FuerteCrates,
			&rec.HassWeight, &rec.HassCrates, &rec.TotalWeight, &rec.CreatedBy, &rec.Timestamp,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, &rec)
	}
	return result, nil
}

func (r *PostgresIntakeRepo) GetIntakeByPallet(palletID string) (*models.IntakeRecord, error) {
	list, err := r.GetIntakes(map[string]interface{}{"pallet_id": palletID}, 1, "desc")
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (r *PostgresIntakeRepo) IntakeTotalForDate(date string) (float64, error) {
	var total sql.NullFloat64
	err := r.DB.QueryRow(`
		SELECT SUM(total_weight) FROM intake_record WHERE date(timestamp) = $1
	`, date).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total.Float64, nil
}
