package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"packhouse/models"
)

type PostgresRejectRepo struct {
	DB *sql.DB
}

func NewPostgresRejectRepo(db *sql.DB) *PostgresRejectRepo {
	return &PostgresRejectRepo{DB: db}
}

func (r *PostgresRejectRepo) CreateReject(rec *models.RejectionEntry) error {
	if rec.RejectedAt.IsZero() {
		rec.RejectedAt = time.Now().UTC()
	}

	// Server-side fallback when the client omitted the derived totals.
	if rec.TotalRejectedWeight == 0 {
		rec.TotalRejectedWeight = rec.FuerteWeight + rec.HassWeight
	}
	if rec.TotalRejectedCrates == 0 {
		rec.TotalRejectedCrates = rec.FuerteCrates + rec.HassCrates
	}

	return r.DB.QueryRow(`
		INSERT INTO rejection_entry(
			pallet_id,supplier_id,supplier_name,
			fuerte_weight,fuerte_crates,hass_weight,hass_crates,
			total_rejected_weight,total_rejected_crates,counted_weight,variance,
			reason,notes,rejected_at,created_by
		)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		RETURNING id
	`,
		rec.PalletID, rec.SupplierID, rec.SupplierName,
		rec.FuerteWeight, rec.FuerteCrates, rec.HassWeight, rec.HassCrates,
		rec.TotalRejectedWeight, rec.TotalRejectedCrates, rec.CountedWeight, rec.Variance,
		rec.Reason, rec.Notes, rec.RejectedAt, rec.CreatedBy,
	).Scan(&rec.ID)
}

func (r *PostgresRejectRepo) GetRejects(filters map[string]interface{}) ([]*models.RejectionEntry, error) {
	query := `
		SELECT j.id, j.pallet_id, j.supplier_id, j.supplier_name,
		       j.fuerte_weight, j.fuerte_crates, j.hass_weight, j.hass_crates,
		       j.total_rejected_weight, j.total_rejected_crates, j.counted_weight, j.variance,
		       j.reason, j.notes, j.rejected_at, j.created_by,

		       u.id, u.name, u.email, u.role, u.created_at
		FROM rejection_entry j
		LEFT JOIN app_user u ON j.created_by = u.id
	`

	args := []interface{}{}
	where := []string{}
	n := 1
	for k, v := range allowFilters(filters, "id", "pallet_id", "supplier_id", "supplier_name", "reason", "created_by") {
		where = append(where, fmt.Sprintf("j.%s = $%d", k, n))
		args = append(args, v)
		n++
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY j.rejected_at DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.RejectionEntry
	for rows.Next() {
		var rec models.RejectionEntry
		var uID sql.NullInt64
		var uName, uEmail, uRole sql.NullString
		var uCreated sql.NullTime

		err := rows.Scan(
			&rec.ID, &rec.PalletID, &rec.SupplierID, &rec.SupplierName,
			&rec.FuerteWeight, &rec.FuerteCrates, &rec.HassWeight, &rec.HassCrates,
			&rec.TotalRejectedWeight, &rec.TotalRejectedCrates, &rec.CountedWeight, &rec.Variance,
			&rec.Reason, &rec.Notes, &rec.RejectedAt, &rec.CreatedBy,
			&uID, &uName, &uEmail, &uRole, &uCreated,
		)
		if err != nil {
			return nil, err
		}
		if uID.Valid {
			rec.CreatedByUser = &models.AppUser{
				ID:        uID.Int64,
				Name:      uName.String,
				Email:     uEmail.String,
				Role:      uRole.String,
				CreatedAt: uCreated.Time,
			}
		}
		result = append(result, &rec)
	}
	return result, nil
}

func (r *PostgresRejectRepo) DeleteReject(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM rejection_entry WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
