package utils

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"

	"packhouse/models"
)

// attendanceCSVHeader is fixed; downstream payroll tooling matches on it.
var attendanceCSVHeader = []string{
	"From Date", "To Date", "Name", "ID Number", "Tel Number",
	"Designation", "Shift(Full/Half)", "Number of days",
}

// AttendanceCSV renders one row per employee, aggregated over the date range.
// A day counts when the employee was Present, Late or left early; the shift is
// Full only when every counted day has a clock-out.
func AttendanceCSV(from, to string, employees []*models.Employee, records []*models.AttendanceRecord) ([]byte, error) {
	byEmployee := make(map[int64][]*models.AttendanceRecord)
	for _, rec := range records {
		byEmployee[rec.EmployeeID] = append(byEmployee[rec.EmployeeID], rec)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(attendanceCSVHeader); err != nil {
		return nil, err
	}

	for _, emp := range employees {
		days := 0
		fullShift := true
		designation := ""

		for _, rec := range byEmployee[emp.ID] {
			switch rec.Status {
			case "Present", "Late", "Early Departure":
				days++
				if rec.ClockOutTime == nil {
					fullShift = false
				}
			}
			if rec.Designation != nil && *rec.Designation != "" {
				designation = *rec.Designation
			}
		}
		if days == 0 {
			continue
		}

		shift := "Full"
		if !fullShift {
			shift = "Half"
		}

		row := []string{
			from, to, emp.Name, emp.IDNumber, emp.Phone,
			designation, shift, strconv.Itoa(days),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

var weightsCSVHeader = []string{
	"Date", "Supplier", "Region", "Vehicle",
	"Fuerte Weight", "Fuerte Crates", "Hass Weight", "Hass Crates", "Total Weight",
}

type weightsRow struct {
	date         string
	supplier     string
	region       string
	vehicle      string
	fuerteWeight float64
	fuerteCrates int
	hassWeight   float64
	hassCrates   int
}

func (r *weightsRow) total() float64 { return r.fuerteWeight + r.hassWeight }

// WeightsCSV aggregates intake records per supplier, date and vehicle, then
// appends a blank separator, a TOTALS row and a GRAND TOTAL row.
func WeightsCSV(intakes []*models.IntakeRecord) ([]byte, error) {
	byKey := make(map[string]*weightsRow)
	var order []string

	for _, in := range intakes {
		date := in.Timestamp.Format("2006-01-02")
		key := date + "|" + in.SupplierName + "|" + in.VehiclePlate
		row, ok := byKey[key]
		if !ok {
			row = &weightsRow{
				date:     date,
				supplier: in.SupplierName,
				region:   in.Region,
				vehicle:  in.VehiclePlate,
			}
			byKey[key] = row
			order = append(order, key)
		}
		row.fuerteWeight += in.FuerteWeight
		row.fuerteCrates += in.FuerteCrates
		row.hassWeight += in.HassWeight
		row.hassCrates += in.HassCrates
	}

	sort.Strings(order)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(weightsCSVHeader); err != nil {
		return nil, err
	}

	var totals weightsRow
	for _, key := range order {
		row := byKey[key]
		record := []string{
			row.date, row.supplier, row.region, row.vehicle,
			formatWeight(row.fuerteWeight), strconv.Itoa(row.fuerteCrates),
			formatWeight(row.hassWeight), strconv.Itoa(row.hassCrates),
			formatWeight(row.total()),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
		totals.fuerteWeight += row.fuerteWeight
		totals.fuerteCrates += row.fuerteCrates
		totals.hassWeight += row.hassWeight
		totals.hassCrates += row.hassCrates
	}

	// Blank separator row before the summary block.
	if err := w.Write(make([]string, len(weightsCSVHeader))); err != nil {
		return nil, err
	}
	if err := w.Write([]string{
		"TOTALS", "", "", "",
		formatWeight(totals.fuerteWeight), strconv.Itoa(totals.fuerteCrates),
		formatWeight(totals.hassWeight), strconv.Itoa(totals.hassCrates),
		formatWeight(totals.total()),
	}); err != nil {
		return nil, err
	}
	if err := w.Write([]string{
		"GRAND TOTAL", "", "", "", "", "", "", "",
		formatWeight(totals.total()),
	}); err != nil {
		return nil, err
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

func formatWeight(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
