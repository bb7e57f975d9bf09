package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"packhouse/models"
)

type PostgresCountingRepo struct {
	DB *sql.DB
}

func NewPostgresCountingRepo(db *sql.DB) *PostgresCountingRepo {
	return &PostgresCountingRepo{DB: db}
}

func (r *PostgresCountingRepo) CreateCounting(rec *models.CountingRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	if rec.Status == "" {
		rec.Status = models.CountingPending
	}

	totalsJSON, err := json.Marshal(rec.Totals)
	if err != nil {
		return err
	}
	countingData := rec.CountingData
	if len(countingData) == 0 {
		countingData = json.RawMessage("{}")
	}

	return r.DB.QueryRow(`
		INSERT INTO counting_record(
			pallet_id,supplier_id,supplier_name,status,total_counted_weight,
			totals,counting_data,created_at
		)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id
	`,
		rec.PalletID, rec.SupplierID, rec.SupplierName, rec.Status,
		rec.TotalCountedWeight, totalsJSON, []byte(countingData), rec.CreatedAt,
	).Scan(&rec.ID)
}

func (r *PostgresCountingRepo) GetCountingHistory(filters map[string]interface{}) ([]*models.CountingRecord, error) {
	query := `
		SELECT c.id, c.pallet_id, c.supplier_id, c.supplier_name, c.status,
		       c.total_counted_weight, c.totals, c.counting_data, c.created_at
		FROM counting_record c
	`

	args := []interface{}{}
	where := []string{}
	n := 1
	for k, v := range allowFilters(filters, "id", "pallet_id", "supplier_id", "supplier_name", "status") {
		where = append(where, fmt.Sprintf("c.%s = $%d", k, n))
		args = append(args, v)
		n++
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY c.created_at DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.CountingRecord
	for rows.Next() {
		var rec models.CountingRecord
		var totalsJSON, countingData []byte
		err := rows.Scan(
			&rec.ID, &rec.PalletID, &rec.SupplierID, &rec.SupplierName, &rec.Status,
			&rec.TotalCountedWeight, &totalsJSON, &countingData, &rec.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if len(totalsJSON) > 0 {
			if err := json.Unmarshal(totalsJSON, &rec.Totals); err != nil {
				return nil, err
			}
		}
		rec.CountingData = json.RawMessage(countingData)
		result = append(result, &rec)
	}
	return result, nil
}

func (r *PostgresCountingRepo) GetCountingByPallet(palletID string) (*models.CountingRecord, error) {
	list, err := r.GetCountingHistory(map[string]interface{}{"pallet_id": palletID})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (r *PostgresCountingRepo) UpdateCountingStatus(id int64, status string) error {
	res, err := r.DB.Exec(`UPDATE counting_record SET status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
