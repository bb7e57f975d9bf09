package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"packhouse/engine"
	"packhouse/models"
)

type fakeAttendanceRepo struct {
	records map[string]*models.AttendanceRecord // employeeID|date
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*models.AttendanceRecord)}
}

func attKey(employeeID int64, date string) string {
	return fmt.Sprintf("%d|%s", employeeID, date)
}

func (f *fakeAttendanceRepo) UpsertAttendance(rec *models.AttendanceRecord) error {
	if rec.ID == 0 {
		rec.ID = int64(len(f.records) + 1)
	}
	cp := *rec
	f.records[attKey(rec.EmployeeID, rec.Date)] = &cp
	return nil
}

func (f *fakeAttendanceRepo) UpdateAttendance(id int64, upd *models.AttendanceUpdate) error {
	for _, rec := range f.records {
		if rec.ID != id {
			continue
		}
		if upd.Status != nil {
			rec.Status = *upd.Status
		}
		if upd.ClockInTime != nil {
			rec.ClockInTime = upd.ClockInTime
		}
		if upd.ClockOutTime != nil {
			rec.ClockOutTime = upd.ClockOutTime
		}
		if upd.Designation != nil {
			rec.Designation = upd.Designation
		}
		return nil
	}
	return fmt.Errorf("attendance %d not found", id)
}

func (f *fakeAttendanceRepo) GetAttendanceByID(id int64) (*models.AttendanceRecord, error) {
	for _, rec := range f.records {
		if rec.ID == id {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(employeeID int64, date string) (*models.AttendanceRecord, error) {
	rec, ok := f.records[attKey(employeeID, date)]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeAttendanceRepo) GetAttendance(filters map[string]interface{}) ([]*models.AttendanceRecord, error) {
	var out []*models.AttendanceRecord
	for _, rec := range f.records {
		cp := *rec
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) GetAttendanceRange(from, to string) ([]*models.AttendanceRecord, error) {
	var out []*models.AttendanceRecord
	for _, rec := range f.records {
		if rec.Date >= from && rec.Date <= to {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employees map[int64]*models.Employee
}

func (f *fakeEmployeeRepo) CreateEmployee(e *models.Employee) error {
	f.employees[e.ID] = e
	return nil
}

func (f *fakeEmployeeRepo) GetEmployees(filters map[string]interface{}) ([]*models.Employee, error) {
	var out []*models.Employee
	for _, e := range f.employees {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) GetEmployeeByID(id int64) (*models.Employee, error) {
	return f.employees[id], nil
}

func (f *fakeEmployeeRepo) UpdateEmployee(e *models.Employee) error { return nil }
func (f *fakeEmployeeRepo) DeleteEmployee(id int64) error          { return nil }
func (f *fakeEmployeeRepo) CountEmployees() (int, error)           { return len(f.employees), nil }

func newGateHandler(employees ...*models.Employee) (*AttendanceHandler, *fakeAttendanceRepo) {
	attRepo := newFakeAttendanceRepo()
	empRepo := &fakeEmployeeRepo{employees: make(map[int64]*models.Employee)}
	for _, e := range employees {
		empRepo.employees[e.ID] = e
	}
	return &AttendanceHandler{Repo: attRepo, EmployeeRepo: empRepo}, attRepo
}

func postJSON(t *testing.T, h http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(data))
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func TestCheckInCreatesRecord(t *testing.T) {
	h, repo := newGateHandler(&models.Employee{ID: 1, Name: "Wanjiku", Contract: models.ContractFullTime})

	w := postJSON(t, h.CheckIn, gateRequest{EmployeeID: 1})
	if w.Code != http.StatusOK {
		t.Fatalf("check-in status = %d, body %s", w.Code, w.Body.String())
	}

	rec, _ := repo.GetByEmployeeAndDate(1, engine.DateKey(time.Now()))
	if rec == nil {
		t.Fatal("check-in should persist a record for today")
	}
	if rec.ClockInTime == nil {
		t.Error("persisted record should carry a clock-in time")
	}
}

func TestCheckOutWithoutCheckInConflicts(t *testing.T) {
	h, _ := newGateHandler(&models.Employee{ID: 1, Name: "Wanjiku", Contract: models.ContractFullTime})

	w := postJSON(t, h.CheckOut, gateRequest{EmployeeID: 1})
	if w.Code != http.StatusConflict {
		t.Fatalf("check-out without check-in = %d, want %d", w.Code, http.StatusConflict)
	}
}

func TestContractCheckOutRequiresDesignation(t *testing.T) {
	h, _ := newGateHandler(&models.Employee{ID: 7, Name: "Otieno", Contract: models.ContractCasual})

	if w := postJSON(t, h.CheckIn, gateRequest{EmployeeID: 7}); w.Code != http.StatusOK {
		t.Fatalf("check-in = %d", w.Code)
	}

	// Contract staff without a designation are refused at the gate.
	if w := postJSON(t, h.CheckOut, gateRequest{EmployeeID: 7}); w.Code != http.StatusConflict {
		t.Fatalf("undesignated contract check-out = %d, want %d", w.Code, http.StatusConflict)
	}

	if w := postJSON(t, h.AssignDesignation, gateRequest{EmployeeID: 7, Designation: "packing"}); w.Code != http.StatusOK {
		t.Fatalf("designation = %d, body %s", w.Code, w.Body.String())
	}

	if w := postJSON(t, h.CheckOut, gateRequest{EmployeeID: 7}); w.Code != http.StatusOK {
		t.Fatalf("designated check-out = %d, body %s", w.Code, w.Body.String())
	}
}

func TestAssignDesignationRejectsUnknownArea(t *testing.T) {
	h, _ := newGateHandler(&models.Employee{ID: 3, Name: "Achieng", Contract: models.ContractCasual})

	if w := postJSON(t, h.CheckIn, gateRequest{EmployeeID: 3}); w.Code != http.StatusOK {
		t.Fatalf("check-in = %d", w.Code)
	}

	w := postJSON(t, h.AssignDesignation, gateRequest{EmployeeID: 3, Designation: "astronaut"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown designation = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestDoubleCheckOutConflicts(t *testing.T) {
	h, _ := newGateHandler(&models.Employee{ID: 2, Name: "Mutua", Contract: models.ContractFullTime})

	postJSON(t, h.CheckIn, gateRequest{EmployeeID: 2})
	if w := postJSON(t, h.CheckOut, gateRequest{EmployeeID: 2}); w.Code != http.StatusOK {
		t.Fatalf("first check-out = %d", w.Code)
	}
	if w := postJSON(t, h.CheckOut, gateRequest{EmployeeID: 2}); w.Code != http.StatusConflict {
		t.Fatalf("second check-out = %d, want %d", w.Code, http.StatusConflict)
	}
}

func TestBulkGateBestEffort(t *testing.T) {
	h, _ := newGateHandler(
		&models.Employee{ID: 1, Name: "A", Contract: models.ContractFullTime, Status: "active"},
		&models.Employee{ID: 2, Name: "B", Contract: models.ContractFullTime, Status: "active"},
	)

	// Only employee 1 checks in, so a bulk check-out succeeds once and fails once.
	postJSON(t, h.CheckIn, gateRequest{EmployeeID: 1})

	w := postJSON(t, h.BulkGate, bulkGateRequest{Action: "check-out", EmployeeIDs: []int64{1, 2}})
	if w.Code != http.StatusOK {
		t.Fatalf("bulk = %d, body %s", w.Code, w.Body.String())
	}

	var result engine.BulkResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode bulk result: %v", err)
	}
	if result.Succeeded != 1 || result.Failed != 1 {
		t.Errorf("bulk result = %+v, want 1 succeeded / 1 failed", result)
	}
}

func TestUpdateAttendancePreservesUnsetFields(t *testing.T) {
	h, repo := newGateHandler(&models.Employee{ID: 5, Name: "Njeri", Contract: models.ContractFullTime})

	postJSON(t, h.CheckIn, gateRequest{EmployeeID: 5})
	stored, _ := repo.GetByEmployeeAndDate(5, engine.DateKey(time.Now()))

	status := "On Leave"
	body, _ := json.Marshal(models.AttendanceUpdate{Status: &status})
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/attendance?id=%d", stored.ID), bytes.NewReader(body))
	w := httptest.NewRecorder()
	h.UpdateAttendance(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("update = %d, body %s", w.Code, w.Body.String())
	}

	after, _ := repo.GetAttendanceByID(stored.ID)
	if after.Status != "On Leave" {
		t.Errorf("status = %q, want On Leave", after.Status)
	}
	if after.ClockInTime == nil {
		t.Error("clock-in time should survive a partial update")
	}
}

func putAttendance(t *testing.T, h *AttendanceHandler, id int64, upd models.AttendanceUpdate) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(upd)
	if err != nil {
		t.Fatalf("marshal update: %v", err)
	}
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/attendance?id=%d", id), bytes.NewReader(body))
	w := httptest.NewRecorder()
	h.UpdateAttendance(w, req)
	return w
}

func TestUpdateAttendanceRejectsClockOutWithoutClockIn(t *testing.T) {
	h, repo := newGateHandler(&models.Employee{ID: 4, Name: "Kamau", Contract: models.ContractFullTime})

	// Absent record, no clock-in.
	absent := &models.AttendanceRecord{
		EmployeeID: 4,
		Date:       engine.DateKey(time.Now()),
		Status:     engine.StatusAbsent,
	}
	if err := repo.UpsertAttendance(absent); err != nil {
		t.Fatalf("seed record: %v", err)
	}

	out := time.Now()
	w := putAttendance(t, h, absent.ID, models.AttendanceUpdate{ClockOutTime: &out})
	if w.Code != http.StatusConflict {
		t.Fatalf("clock-out-only update = %d, want %d (body %s)", w.Code, http.StatusConflict, w.Body.String())
	}

	after, _ := repo.GetAttendanceByID(absent.ID)
	if after.ClockOutTime != nil {
		t.Error("refused update must not persist a clock-out time")
	}
}

func TestUpdateAttendanceContractClockOutNeedsDesignation(t *testing.T) {
	h, repo := newGateHandler(&models.Employee{ID: 9, Name: "Otieno", Contract: models.ContractCasual})

	postJSON(t, h.CheckIn, gateRequest{EmployeeID: 9})
	stored, _ := repo.GetByEmployeeAndDate(9, engine.DateKey(time.Now()))

	out := time.Now()
	if w := putAttendance(t, h, stored.ID, models.AttendanceUpdate{ClockOutTime: &out}); w.Code != http.StatusConflict {
		t.Fatalf("undesignated contract update = %d, want %d", w.Code, http.StatusConflict)
	}

	packing := "packing"
	if w := putAttendance(t, h, stored.ID, models.AttendanceUpdate{ClockOutTime: &out, Designation: &packing}); w.Code != http.StatusOK {
		t.Fatalf("designated contract update = %d, body %s", w.Code, w.Body.String())
	}
}

func TestUpdateAttendanceRejectsUnknownDesignation(t *testing.T) {
	h, repo := newGateHandler(&models.Employee{ID: 6, Name: "Njeri", Contract: models.ContractFullTime})

	postJSON(t, h.CheckIn, gateRequest{EmployeeID: 6})
	stored, _ := repo.GetByEmployeeAndDate(6, engine.DateKey(time.Now()))

	bogus := "astronaut"
	w := putAttendance(t, h, stored.ID, models.AttendanceUpdate{Designation: &bogus})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown designation update = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestCreateAttendanceRejectsClockOutWithoutClockIn(t *testing.T) {
	h, _ := newGateHandler(&models.Employee{ID: 11, Name: "Wafula", Contract: models.ContractFullTime})

	out := time.Now()
	rec := models.AttendanceRecord{
		EmployeeID:   11,
		Date:         engine.DateKey(time.Now()),
		Status:       engine.StatusPresent,
		ClockOutTime: &out,
	}
	w := postJSON(t, h.CreateAttendance, rec)
	if w.Code != http.StatusConflict {
		t.Fatalf("backfill with clock-out only = %d, want %d (body %s)", w.Code, http.StatusConflict, w.Body.String())
	}
}
