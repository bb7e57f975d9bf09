package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"packhouse/engine"
	"packhouse/models"
	"packhouse/repository"
)

type AttendanceHandler struct {
	Repo         repository.AttendanceRepository
	EmployeeRepo repository.EmployeeRepository
}

type gateRequest struct {
	EmployeeID  int64  `json:"employee_id"`
	Designation string `json:"designation,omitempty"`
}

type bulkGateRequest struct {
	Action      string  `json:"action"` // check-in | check-out | absent | on-leave
	EmployeeIDs []int64 `json:"employee_ids,omitempty"`
}

// GetAttendance handler; ?id= fetches one record, otherwise the query
// parameters become filters.
func (h *AttendanceHandler) GetAttendance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if idStr := q.Get("id"); idStr != "" {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "invalid attendance ID", http.StatusBadRequest)
			return
		}
		rec, err := h.Repo.GetAttendanceByID(id)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if rec == nil {
			http.Error(w, "Attendance record not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(rec)
		return
	}

	filters := make(map[string]interface{})
	for key, values := range q {
		if len(values) > 0 && values[0] != "" {
			if intVal, err := strconv.Atoi(values[0]); err == nil && key != "date" {
				filters[key] = intVal
			} else {
				filters[key] = values[0]
			}
		}
	}

	list, err := h.Repo.GetAttendance(filters)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []*models.AttendanceRecord{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// CreateAttendance handler writes the day's record directly, bypassing the
// gate actions. Used by supervisors backfilling a missed day.
func (h *AttendanceHandler) CreateAttendance(w http.ResponseWriter, r *http.Request) {
	var rec models.AttendanceRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if rec.EmployeeID == 0 || rec.Date == "" {
		http.Error(w, "employee_id and date are required", http.StatusBadRequest)
		return
	}

	emp, err := h.EmployeeRepo.GetEmployeeByID(rec.EmployeeID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := engine.ValidateRecord(&rec, emp); err != nil {
		writeGateError(w, err)
		return
	}

	if err := h.Repo.UpsertAttendance(&rec); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(rec)
}

// UpdateAttendance handler applies a partial PUT; fields absent from the body
// keep their stored values. The merged record has to satisfy the same rules
// the gate actions enforce, so a partial update cannot clock an employee out
// who never clocked in.
func (h *AttendanceHandler) UpdateAttendance(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Error(w, "invalid attendance ID", http.StatusBadRequest)
		return
	}

	var upd models.AttendanceUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	stored, err := h.Repo.GetAttendanceByID(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if stored == nil {
		http.Error(w, "Attendance record not found", http.StatusNotFound)
		return
	}

	merged := *stored
	if upd.Status != nil {
		merged.Status = *upd.Status
	}
	if upd.ClockInTime != nil {
		merged.ClockInTime = upd.ClockInTime
	}
	if upd.ClockOutTime != nil {
		merged.ClockOutTime = upd.ClockOutTime
	}
	if upd.Designation != nil {
		merged.Designation = upd.Designation
	}

	emp, err := h.EmployeeRepo.GetEmployeeByID(merged.EmployeeID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := engine.ValidateRecord(&merged, emp); err != nil {
		writeGateError(w, err)
		return
	}

	if err := h.Repo.UpdateAttendance(id, &upd); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	rec, err := h.Repo.GetAttendanceByID(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rec)
}

// CheckIn handler gates an employee in for today.
func (h *AttendanceHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req gateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	now := time.Now()
	rec, err := h.Repo.GetByEmployeeAndDate(req.EmployeeID, engine.DateKey(now))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	updated, err := engine.CheckIn(rec, req.EmployeeID, now)
	if err != nil {
		writeGateError(w, err)
		return
	}

	if err := h.Repo.UpsertAttendance(updated); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(updated)
}

// CheckOut handler gates an employee out for today. The engine refuses a
// check-out without a prior check-in, and refuses contract staff without a
// designation.
func (h *AttendanceHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req gateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	emp, err := h.EmployeeRepo.GetEmployeeByID(req.EmployeeID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if emp == nil {
		http.Error(w, "Employee not found", http.StatusNotFound)
		return
	}

	now := time.Now()
	rec, err := h.Repo.GetByEmployeeAndDate(req.EmployeeID, engine.DateKey(now))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := engine.CheckOut(rec, *emp, now); err != nil {
		writeGateError(w, err)
		return
	}

	if err := h.Repo.UpsertAttendance(rec); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rec)
}

// AssignDesignation handler sets the work area on today's record.
func (h *AttendanceHandler) AssignDesignation(w http.ResponseWriter, r *http.Request) {
	var req gateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	now := time.Now()
	rec, err := h.Repo.GetByEmployeeAndDate(req.EmployeeID, engine.DateKey(now))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := engine.AssignDesignation(rec, req.Designation, now); err != nil {
		writeGateError(w, err)
		return
	}

	if err := h.Repo.UpsertAttendance(rec); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rec)
}

// BulkGate handler applies one gate action to many employees, best effort.
// Empty employee_ids means every active employee.
func (h *AttendanceHandler) BulkGate(w http.ResponseWriter, r *http.Request) {
	var req bulkGateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ids := req.EmployeeIDs
	if len(ids) == 0 {
		emps, err := h.EmployeeRepo.GetEmployees(map[string]interface{}{"status": "active"})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		for _, e := range emps {
			ids = append(ids, e.ID)
		}
	}

	now := time.Now()
	var result engine.BulkResult

	for _, id := range ids {
		if err := h.applyGateAction(req.Action, id, now); err != nil {
			result.Fail(err)
		} else {
			result.Ok()
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
}

func (h *AttendanceHandler) applyGateAction(action string, employeeID int64, now time.Time) error {
	rec, err := h.Repo.GetByEmployeeAndDate(employeeID, engine.DateKey(now))
	if err != nil {
		return err
	}

	switch action {
	case "check-in":
		updated, err := engine.CheckIn(rec, employeeID, now)
		if err != nil {
			return err
		}
		return h.Repo.UpsertAttendance(updated)
	case "check-out":
		emp, err := h.EmployeeRepo.GetEmployeeByID(employeeID)
		if err != nil {
			return err
		}
		if emp == nil {
			return errors.New("employee not found")
		}
		if err := engine.CheckOut(rec, *emp, now); err != nil {
			return err
		}
		return h.Repo.UpsertAttendance(rec)
	case "absent":
		updated, err := engine.MarkAbsent(rec, employeeID, now)
		if err != nil {
			return err
		}
		return h.Repo.UpsertAttendance(updated)
	case "on-leave":
		updated, err := engine.MarkOnLeave(rec, employeeID, now)
		if err != nil {
			return err
		}
		return h.Repo.UpsertAttendance(updated)
	default:
		return errors.New("unknown bulk action: " + action)
	}
}

// writeGateError maps engine refusals onto HTTP statuses: state conflicts are
// 409, a bad designation value is 400.
func writeGateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, engine.ErrInvalidDesignation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, engine.ErrNotCheckedIn),
		errors.Is(err, engine.ErrAlreadyCheckedOut),
		errors.Is(err, engine.ErrDesignationRequired):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
