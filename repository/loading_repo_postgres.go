package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"packhouse/models"
)

type PostgresLoadingRepo struct {
	DB *sql.DB
}

func NewPostgresLoadingRepo(db *sql.DB) *PostgresLoadingRepo {
	return &PostgresLoadingRepo{DB: db}
}

func (r *PostgresLoadingRepo) CreateLoadingSheet(sheet *models.LoadingSheet) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if sheet.CreatedAt.IsZero() {
		sheet.CreatedAt = time.Now().UTC()
	}
	if sheet.Status == "" {
		sheet.Status = "draft"
	}
	if sheet.SheetNo == "" {
		sheet.SheetNo = fmt.Sprintf("LS-%s", sheet.CreatedAt.Format("20060102-150405"))
	}

	err = tx.QueryRow(`
		INSERT INTO loading_sheet(
			sheet_no,destination,carrier_id,vehicle_plate,driver_name,
			total_boxes,total_weight,status,created_by,created_at
		)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id
	`,
		sheet.SheetNo, sheet.Destination, sheet.CarrierID, sheet.VehiclePlate, sheet.DriverName,
		sheet.TotalBoxes, sheet.TotalWeight, sheet.Status, sheet.CreatedBy, sheet.CreatedAt,
	).Scan(&sheet.ID)
	if err != nil {
		return err
	}

	for i := range sheet.Lines {
		l := &sheet.Lines[i]
		l.SheetID = sheet.ID
		err := tx.QueryRow(`
			INSERT INTO loading_sheet_line(sheet_id,pallet_no,variety,box_type,boxes,weight)
			VALUES($1,$2,$3,$4,$5,$6)
			RETURNING id
		`, l.SheetID, l.PalletNo, l.Variety, l.BoxType, l.Boxes, l.Weight).Scan(&l.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresLoadingRepo) GetLoadingSheets(filters map[string]interface{}, single bool) ([]*models.LoadingSheet, error) {
	query := `
		SELECT s.id, s.sheet_no, s.destination, s.carrier_id, s.vehicle_plate, s.driver_name,
		       s.total_boxes, s.total_weight, s.status, s.created_by, s.created_at,
		       s.pdf_created_at, s.pdf_path,

		       c.id, c.name, c.vehicle_plate, c.driver_name, c.phone, c.created_at,

		       u.id, u.name, u.email, u.role, u.created_at
		FROM loading_sheet s
		LEFT JOIN carrier c ON s.carrier_id = c.id
		LEFT JOIN app_user u ON s.created_by = u.id
	`

	args := []interface{}{}
	where := []string{}
	n := 1
	for k, v := range allowFilters(filters, "id", "sheet_no", "destination", "carrier_id", "vehicle_plate", "driver_name", "status", "created_by") {
		where = append(where, fmt.Sprintf("s.%s = $%d", k, n))
		args = append(args, v)
		n++
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	if !single {
		query += " ORDER BY s.created_at DESC"
	}

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.LoadingSheet
	for rows.Next() {
		var s models.LoadingSheet
		var cID sql.NullInt64
		var cName, cPlate, cDriver, cPhone sql.NullString
		var cCreated sql.NullTime
		var uID sql.NullInt64
		var uName, uEmail, uRole sql.NullString
		var uCreated sql.NullTime

		err := rows.Scan(
			&s.ID, &s.SheetNo, &s.Destination, &s.CarrierID, &s.VehiclePlate, &s.DriverName,
			&s.TotalBoxes, &s.TotalWeight, &s.Status, &s.CreatedBy, &s.CreatedAt,
			&s.PdfCreatedAt, &s.PdfPath,
			&cID, &cName, &cPlate, &cDriver, &cPhone, &cCreated,
			&uID, &uName, &uEmail, &uRole, &uCreated,
		)
		if err != nil {
			return nil, err
		}
		if cID.Valid {
			s.Carrier = &models.Carrier{
				ID:           cID.Int64,
				Name:         cName.String,
				VehiclePlate: cPlate.String,
				DriverName:   cDriver.String,
				Phone:        cPhone.String,
				CreatedAt:    cCreated.Time,
			}
		}
		if uID.Valid {
			s.CreatedByUser = &models.AppUser{
				ID:        uID.Int64,
				Name:      uName.String,
				Email:     uEmail.String,
				Role:      uRole.String,
				CreatedAt: uCreated.Time,
			}
		}
		result = append(result, &s)
	}

	// Load all lines in one go (to avoid N+1)
	if len(result) > 0 {
		ids := make([]interface{}, len(result))
		idStrs := make([]string, len(result))
		for i, s := range result {
			ids[i] = s.ID
			idStrs[i] = fmt.Sprintf("$%d", i+1)
		}
		lineQuery := fmt.Sprintf(`
			SELECT id, sheet_id, pallet_no, variety, box_type, boxes, weight
			FROM loading_sheet_line
			WHERE sheet_id IN (%s)
		`, strings.Join(idStrs, ","))
		lineRows, err := r.DB.Query(lineQuery, ids...)
		if err != nil {
			return nil, err
		}
		defer lineRows.Close()

		lineMap := make(map[int64][]models.LoadingSheetLine)
		for lineRows.Next() {
			var l models.LoadingSheetLine
			if err := lineRows.Scan(&l.ID, &l.SheetID, &l.PalletNo, &l.Variety, &l.BoxType, &l.Boxes, &l.Weight); err != nil {
				return nil, err
			}
			lineMap[l.SheetID] = append(lineMap[l.SheetID], l)
		}

		for _, s := range result {
			if lines, ok := lineMap[s.ID]; ok {
				s.Lines = lines
			}
		}
	}

	if single {
		if len(result) > 0 {
			return []*models.LoadingSheet{result[0]}, nil
		}
		return nil, nil
	}
	return result, nil
}

func (r *PostgresLoadingRepo) UpdatePDFInfo(id int64, path string, createdAt time.Time) error {
	_, err := r.DB.Exec(`
		UPDATE loading_sheet
		SET pdf_path = $1, pdf_created_at = $2
		WHERE id = $3
	`, path, createdAt, id)
	return err
}
