package repository

import (
	"database/sql"
	"time"

	"packhouse/models"
)

type PostgresColdRoomRepo struct {
	DB *sql.DB
}

func NewPostgresColdRoomRepo(db *sql.DB) *PostgresColdRoomRepo {
	return &PostgresColdRoomRepo{DB: db}
}

func (r *PostgresColdRoomRepo) GetTemperatures() ([]models.TemperatureReading, error) {
	rows, err := r.DB.Query(`
		SELECT id, room, celsius, recorded_at
		FROM temperature_reading
		ORDER BY recorded_at DESC
		LIMIT 100
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.TemperatureReading
	for rows.Next() {
		var t models.TemperatureReading
		if err := rows.Scan(&t.ID, &t.Room, &t.Celsius, &t.RecordedAt); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, nil
}

func (r *PostgresColdRoomRepo) AddTemperature(t *models.TemperatureReading) error {
	if t.RecordedAt.IsZero() {
		t.RecordedAt = time.Now().UTC()
	}
	return r.DB.QueryRow(`
		INSERT INTO temperature_reading(room,celsius,recorded_at)
		VALUES($1,$2,$3)
		RETURNING id
	`, t.Room, t.Celsius, t.RecordedAt).Scan(&t.ID)
}

func (r *PostgresColdRoomRepo) GetBoxes() ([]models.ColdRoomBoxes, error) {
	rows, err := r.DB.Query(`
		SELECT id, variety, box_type, quantity, updated_at
		FROM cold_room_boxes
		ORDER BY variety, box_type
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.ColdRoomBoxes
	for rows.Next() {
		var b models.ColdRoomBoxes
		if err := rows.Scan(&b.ID, &b.Variety, &b.BoxType, &b.Quantity, &b.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, nil
}

// SaveBoxes upserts the inventory row for one variety and box size.
func (r *PostgresColdRoomRepo) SaveBoxes(b *models.ColdRoomBoxes) error {
	b.UpdatedAt = time.Now().UTC()
	return r.DB.QueryRow(`
		INSERT INTO cold_room_boxes(variety,box_type,quantity,updated_at)
		VALUES($1,$2,$3,$4)
		ON CONFLICT(variety,box_type) DO UPDATE SET
			quantity=EXCLUDED.quantity,
			updated_at=EXCLUDED.updated_at
		RETURNING id
	`, b.Variety, b.BoxType, b.Quantity, b.UpdatedAt).Scan(&b.ID)
}

func (r *PostgresColdRoomRepo) GetPallets() ([]models.ColdRoomPallet, error) {
	rows, err := r.DB.Query(`
		SELECT id, pallet_no, variety, box_type, boxes, weight, stored_at
		FROM cold_room_pallet
		ORDER BY stored_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.ColdRoomPallet
	for rows.Next() {
		var p models.ColdRoomPallet
		if err := rows.Scan(&p.ID, &p.PalletNo, &p.Variety, &p.BoxType, &p.Boxes, &p.Weight, &p.StoredAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, nil
}

func (r *PostgresColdRoomRepo) AddPallet(p *models.ColdRoomPallet) error {
	if p.StoredAt.IsZero() {
		p.StoredAt = time.Now().UTC()
	}
	return r.DB.QueryRow(`
		INSERT INTO cold_room_pallet(pallet_no,variety,box_type,boxes,weight,stored_at)
		VALUES($1,$2,$3,$4,$5,$6)
		RETURNING id
	`, p.PalletNo, p.Variety, p.BoxType, p.Boxes, p.Weight, p.StoredAt).Scan(&p.ID)
}

func (r *PostgresColdRoomRepo) GetLoadingHistory() ([]models.LoadingHistoryEntry, error) {
	rows, err := r.DB.Query(`
		SELECT id, sheet_no, destination, total_boxes, total_weight, loaded_at
		FROM loading_history
		ORDER BY loaded_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.LoadingHistoryEntry
	for rows.Next() {
		var e models.LoadingHistoryEntry
		if err := rows.Scan(&e.ID, &e.SheetNo, &e.Destination, &e.TotalBoxes, &e.TotalWeight, &e.LoadedAt); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, nil
}

func (r *PostgresColdRoomRepo) AddLoadingHistory(e *models.LoadingHistoryEntry) error {
	if e.LoadedAt.IsZero() {
		e.LoadedAt = time.Now().UTC()
	}
	return r.DB.QueryRow(`
		INSERT INTO loading_history(sheet_no,destination,total_boxes,total_weight,loaded_at)
		VALUES($1,$2,$3,$4,$5)
		RETURNING id
	`, e.SheetNo, e.Destination, e.TotalBoxes, e.TotalWeight, e.LoadedAt).Scan(&e.ID)
}

func (r *PostgresColdRoomRepo) CountBoxes() (int, error) {
	var count sql.NullInt64
	err := r.DB.QueryRow(`SELECT SUM(quantity) FROM cold_room_boxes`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return int(count.Int64), nil
}
