package engine

import (
	"errors"
	"testing"
	"time"

	"packhouse/models"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 3, 14, hour, min, 0, 0, time.UTC)
}

func TestCheckIn_OnTime(t *testing.T) {
	rec, err := CheckIn(nil, 42, at(8, 30))
	if err != nil {
		t.Fatalf("CheckIn failed: %v", err)
	}
	if rec.Status != StatusPresent {
		t.Errorf("status = %q, want %q", rec.Status, StatusPresent)
	}
	if rec.ClockInTime == nil {
		t.Error("clock-in time not set")
	}
	if rec.Date != "2025-03-14" {
		t.Errorf("date key = %q, want 2025-03-14", rec.Date)
	}
}

func TestCheckIn_AfterCutoffIsLate(t *testing.T) {
	rec, err := CheckIn(nil, 42, at(9, 0))
	if err != nil {
		t.Fatalf("CheckIn failed: %v", err)
	}
	if rec.Status != StatusLate {
		t.Errorf("status = %q, want %q", rec.Status, StatusLate)
	}
}

func TestCheckIn_ReentryFromAbsentReplacesRecord(t *testing.T) {
	rec, err := MarkAbsent(nil, 42, at(7, 0))
	if err != nil {
		t.Fatalf("MarkAbsent failed: %v", err)
	}

	updated, err := CheckIn(rec, 42, at(10, 15))
	if err != nil {
		t.Fatalf("re-entry CheckIn failed: %v", err)
	}
	if updated != rec {
		t.Error("re-entry must mutate the existing day record, not create a second one")
	}
	if updated.Status != StatusLate {
		t.Errorf("status = %q, want %q after 9am re-entry", updated.Status, StatusLate)
	}
}

func TestCheckIn_RefusedAfterCheckOut(t *testing.T) {
	emp := models.Employee{ID: 42, Contract: models.ContractFullTime}
	rec, _ := CheckIn(nil, 42, at(8, 0))
	if err := CheckOut(rec, emp, at(17, 0)); err != nil {
		t.Fatalf("CheckOut failed: %v", err)
	}

	if _, err := CheckIn(rec, 42, at(18, 0)); !errors.Is(err, ErrAlreadyCheckedOut) {
		t.Errorf("expected ErrAlreadyCheckedOut, got %v", err)
	}
}

func TestCheckOut_RequiresClockIn(t *testing.T) {
	emp := models.Employee{ID: 42, Contract: models.ContractFullTime}

	if err := CheckOut(nil, emp, at(17, 0)); !errors.Is(err, ErrNotCheckedIn) {
		t.Errorf("nil record: expected ErrNotCheckedIn, got %v", err)
	}

	rec, _ := MarkAbsent(nil, 42, at(7, 0))
	if err := CheckOut(rec, emp, at(17, 0)); !errors.Is(err, ErrNotCheckedIn) {
		t.Errorf("absent record: expected ErrNotCheckedIn, got %v", err)
	}
	if rec.ClockOutTime != nil {
		t.Error("refused check-out must not change the record")
	}
}

func TestCheckOut_ContractNeedsDesignation(t *testing.T) {
	emp := models.Employee{ID: 42, Contract: models.ContractCasual}
	rec, _ := CheckIn(nil, 42, at(8, 30))

	err := CheckOut(rec, emp, at(17, 0))
	if !errors.Is(err, ErrDesignationRequired) {
		t.Fatalf("expected ErrDesignationRequired, got %v", err)
	}
	if rec.ClockOutTime != nil {
		t.Error("refused check-out must not set clock-out time")
	}

	if err := AssignDesignation(rec, "packing", at(9, 0)); err != nil {
		t.Fatalf("AssignDesignation failed: %v", err)
	}
	if err := CheckOut(rec, emp, at(17, 0)); err != nil {
		t.Fatalf("check-out after designation failed: %v", err)
	}
	if rec.ClockOutTime == nil {
		t.Error("clock-out time not set")
	}
}

func TestCheckOut_PermanentStaffSkipDesignation(t *testing.T) {
	for _, contract := range []string{models.ContractFullTime, models.ContractPartTime} {
		emp := models.Employee{ID: 42, Contract: contract}
		rec, _ := CheckIn(nil, 42, at(8, 0))
		if err := CheckOut(rec, emp, at(17, 0)); err != nil {
			t.Errorf("%s: check-out without designation refused: %v", contract, err)
		}
	}
}

func TestAssignDesignation_Guards(t *testing.T) {
	if err := AssignDesignation(nil, "packing", at(9, 0)); !errors.Is(err, ErrNotCheckedIn) {
		t.Errorf("nil record: expected ErrNotCheckedIn, got %v", err)
	}

	rec, _ := CheckIn(nil, 42, at(8, 0))
	if err := AssignDesignation(rec, "barista", at(9, 0)); !errors.Is(err, ErrInvalidDesignation) {
		t.Errorf("expected ErrInvalidDesignation, got %v", err)
	}
	if err := AssignDesignation(rec, "qualityControl", at(9, 0)); err != nil {
		t.Errorf("valid designation refused: %v", err)
	}
	if rec.Designation == nil || *rec.Designation != "qualityControl" {
		t.Errorf("designation = %v, want qualityControl", rec.Designation)
	}
}

func TestBulkResult_BestEffortCounting(t *testing.T) {
	emps := []models.Employee{
		{ID: 1, Contract: models.ContractFullTime},
		{ID: 2, Contract: models.ContractCasual},
		{ID: 3, Contract: models.ContractFullTime},
	}

	recs := map[int64]*models.AttendanceRecord{}
	for _, e := range emps {
		rec, _ := CheckIn(nil, e.ID, at(8, 0))
		recs[e.ID] = rec
	}

	// One contract employee without designation fails; the rest proceed.
	var res BulkResult
	for _, e := range emps {
		if err := CheckOut(recs[e.ID], e, at(17, 0)); err != nil {
			res.Fail(err)
			continue
		}
		res.Ok()
	}

	if res.Succeeded != 2 || res.Failed != 1 {
		t.Errorf("bulk result = %d ok / %d failed, want 2/1", res.Succeeded, res.Failed)
	}
	if recs[1].ClockOutTime == nil || recs[3].ClockOutTime == nil {
		t.Error("non-failing employees must still be checked out")
	}
	if recs[2].ClockOutTime != nil {
		t.Error("failing employee must remain checked in")
	}
}

func TestValidateRecord_BackfillGuards(t *testing.T) {
	in := at(7, 30)
	out := at(17, 0)
	packing := "packing"
	bogus := "astronaut"

	contract := &models.Employee{ID: 7, Contract: models.ContractCasual}
	permanent := &models.Employee{ID: 8, Contract: models.ContractFullTime}

	cases := []struct {
		name string
		rec  models.AttendanceRecord
		emp  *models.Employee
		want error
	}{
		{
			name: "clock-out without clock-in",
			rec:  models.AttendanceRecord{Status: StatusAbsent, ClockOutTime: &out},
			emp:  permanent,
			want: ErrNotCheckedIn,
		},
		{
			name: "unknown designation",
			rec:  models.AttendanceRecord{ClockInTime: &in, Designation: &bogus},
			emp:  permanent,
			want: ErrInvalidDesignation,
		},
		{
			name: "contract clock-out without designation",
			rec:  models.AttendanceRecord{ClockInTime: &in, ClockOutTime: &out},
			emp:  contract,
			want: ErrDesignationRequired,
		},
		{
			name: "contract clock-out with designation",
			rec:  models.AttendanceRecord{ClockInTime: &in, ClockOutTime: &out, Designation: &packing},
			emp:  contract,
			want: nil,
		},
		{
			name: "permanent clock-out without designation",
			rec:  models.AttendanceRecord{ClockInTime: &in, ClockOutTime: &out},
			emp:  permanent,
			want: nil,
		},
		{
			name: "unresolved employee skips contract rule",
			rec:  models.AttendanceRecord{ClockInTime: &in, ClockOutTime: &out},
			emp:  nil,
			want: nil,
		},
	}

	for _, tc := range cases {
		rec := tc.rec
		err := ValidateRecord(&rec, tc.emp)
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
	}
}
