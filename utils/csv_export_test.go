package utils

import (
	"strings"
	"testing"
	"time"

	"packhouse/models"
)

func ts(day string) time.Time {
	t, _ := time.Parse("2006-01-02", day)
	return t
}

func TestWeightsCSVAggregatesSameSupplierDayVehicle(t *testing.T) {
	intakes := []*models.IntakeRecord{
		{SupplierName: "Kakuzi", Region: "Murang'a", VehiclePlate: "KDA 123A",
			FuerteWeight: 100, FuerteCrates: 10, Timestamp: ts("2026-03-02")},
		{SupplierName: "Kakuzi", Region: "Murang'a", VehiclePlate: "KDA 123A",
			FuerteWeight: 50, FuerteCrates: 5, Timestamp: ts("2026-03-02")},
	}

	data, err := WeightsCSV(intakes)
	if err != nil {
		t.Fatalf("WeightsCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	// header, 1 aggregated row, blank, TOTALS, GRAND TOTAL
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d:\n%s", len(lines), data)
	}
	if !strings.Contains(lines[1], "150.00") {
		t.Errorf("aggregated row should sum fuerte weight to 150.00, got %q", lines[1])
	}
	if !strings.Contains(lines[1], "15") {
		t.Errorf("aggregated row should sum crates to 15, got %q", lines[1])
	}
}

func TestWeightsCSVSummaryRows(t *testing.T) {
	intakes := []*models.IntakeRecord{
		{SupplierName: "Kakuzi", VehiclePlate: "KDA 123A",
			FuerteWeight: 100, Timestamp: ts("2026-03-02")},
		{SupplierName: "Sasini", VehiclePlate: "KBZ 456B",
			HassWeight: 40, Timestamp: ts("2026-03-03")},
	}

	data, err := WeightsCSV(intakes)
	if err != nil {
		t.Fatalf("WeightsCSV: %v", err)
	}

	out := string(data)
	if !strings.Contains(out, "TOTALS") {
		t.Error("missing TOTALS row")
	}
	if !strings.Contains(out, "GRAND TOTAL") {
		t.Error("missing GRAND TOTAL row")
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	grand := lines[len(lines)-1]
	if !strings.Contains(grand, "140.00") {
		t.Errorf("grand total should be 140.00, got %q", grand)
	}

	// Separator row between data and summary block.
	sep := lines[len(lines)-3]
	if strings.Trim(sep, ",\r") != "" {
		t.Errorf("expected blank separator row, got %q", sep)
	}
}

func TestWeightsCSVQuotesCommaFields(t *testing.T) {
	intakes := []*models.IntakeRecord{
		{SupplierName: "Mwea Growers, Ltd", VehiclePlate: "KCC 001C",
			FuerteWeight: 10, Timestamp: ts("2026-03-02")},
	}

	data, err := WeightsCSV(intakes)
	if err != nil {
		t.Fatalf("WeightsCSV: %v", err)
	}
	if !strings.Contains(string(data), `"Mwea Growers, Ltd"`) {
		t.Errorf("supplier with comma should be quote-wrapped:\n%s", data)
	}
}

func TestAttendanceCSVHeader(t *testing.T) {
	data, err := AttendanceCSV("2026-03-01", "2026-03-07", nil, nil)
	if err != nil {
		t.Fatalf("AttendanceCSV: %v", err)
	}

	want := "From Date,To Date,Name,ID Number,Tel Number,Designation,Shift(Full/Half),Number of days"
	got := strings.Split(strings.TrimSpace(string(data)), "\n")[0]
	if strings.TrimRight(got, "\r") != want {
		t.Errorf("header mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestAttendanceCSVAggregatesDays(t *testing.T) {
	in1 := ts("2026-03-02").Add(8 * time.Hour)
	out1 := ts("2026-03-02").Add(17 * time.Hour)
	in2 := ts("2026-03-03").Add(8 * time.Hour)
	designation := "packing"

	employees := []*models.Employee{
		{ID: 1, Name: "Wanjiku Njeri", IDNumber: "12345678", Phone: "0700000001"},
		{ID: 2, Name: "Otieno Omondi", IDNumber: "87654321", Phone: "0700000002"},
	}
	records := []*models.AttendanceRecord{
		{EmployeeID: 1, Date: "2026-03-02", Status: "Present", ClockInTime: &in1, ClockOutTime: &out1, Designation: &designation},
		{EmployeeID: 1, Date: "2026-03-03", Status: "Late", ClockInTime: &in2, ClockOutTime: &out1},
		{EmployeeID: 2, Date: "2026-03-02", Status: "Absent"},
	}

	data, err := AttendanceCSV("2026-03-01", "2026-03-07", employees, records)
	if err != nil {
		t.Fatalf("AttendanceCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	// Employee 2 has no counted days and is dropped.
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines:\n%s", len(lines), data)
	}
	row := lines[1]
	if !strings.Contains(row, "Wanjiku Njeri") {
		t.Errorf("row should name the employee, got %q", row)
	}
	if !strings.HasSuffix(strings.TrimRight(row, "\r"), ",2") {
		t.Errorf("row should count 2 days, got %q", row)
	}
	if !strings.Contains(row, "packing") {
		t.Errorf("row should carry the designation, got %q", row)
	}
	if !strings.Contains(row, "Full") {
		t.Errorf("both days clocked out, shift should be Full, got %q", row)
	}
}

func TestAttendanceCSVHalfShiftWhenMissingClockOut(t *testing.T) {
	in := ts("2026-03-02").Add(8 * time.Hour)

	employees := []*models.Employee{
		{ID: 1, Name: "Achieng", IDNumber: "11111111", Phone: "0700000003"},
	}
	records := []*models.AttendanceRecord{
		{EmployeeID: 1, Date: "2026-03-02", Status: "Present", ClockInTime: &in},
	}

	data, err := AttendanceCSV("2026-03-01", "2026-03-07", employees, records)
	if err != nil {
		t.Fatalf("AttendanceCSV: %v", err)
	}
	if !strings.Contains(string(data), "Half") {
		t.Errorf("missing clock-out should yield Half shift:\n%s", data)
	}
}
