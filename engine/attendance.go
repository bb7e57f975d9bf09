package engine

import (
	"errors"
	"time"

	"packhouse/models"
)

// Attendance statuses for one employee on one calendar date.
const (
	StatusPresent        = "Present"
	StatusAbsent         = "Absent"
	StatusLate           = "Late"
	StatusOnLeave        = "On Leave"
	StatusEarlyDeparture = "Early Departure"
)

// LateCutoffHour marks the check-in hour from which a check-in counts as late.
const LateCutoffHour = 9

// Work-area designations assignable at the gate.
var Designations = []string{
	"dipping", "intake", "qualityControl", "qualityAssurance",
	"packing", "loading", "palletizing", "porter",
}

var (
	ErrNotCheckedIn        = errors.New("employee has not checked in")
	ErrAlreadyCheckedOut   = errors.New("employee already checked out for the day")
	ErrDesignationRequired = errors.New("contract employee needs a designation before check-out")
	ErrInvalidDesignation  = errors.New("unknown designation")
)

// DateKey formats a time as the day-granularity attendance key.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// CheckIn upserts the day's record with a clock-in. When rec is nil there is
// no record for the date yet and a fresh one is created. Re-entry from Absent
// or On Leave replaces the status; a checked-out employee cannot re-enter the
// same day.
func CheckIn(rec *models.AttendanceRecord, employeeID int64, now time.Time) (*models.AttendanceRecord, error) {
	if rec == nil {
		rec = &models.AttendanceRecord{
			EmployeeID: employeeID,
			Date:       DateKey(now),
			CreatedAt:  now,
		}
	}
	if rec.ClockOutTime != nil {
		return nil, ErrAlreadyCheckedOut
	}

	rec.Status = StatusPresent
	if now.Hour() >= LateCutoffHour {
		rec.Status = StatusLate
	}
	in := now
	rec.ClockInTime = &in
	touch(rec, now)
	return rec, nil
}

// MarkAbsent records an absence for the date without a clock-in.
func MarkAbsent(rec *models.AttendanceRecord, employeeID int64, now time.Time) (*models.AttendanceRecord, error) {
	return markStatus(rec, employeeID, now, StatusAbsent)
}

// MarkOnLeave records approved leave for the date.
func MarkOnLeave(rec *models.AttendanceRecord, employeeID int64, now time.Time) (*models.AttendanceRecord, error) {
	return markStatus(rec, employeeID, now, StatusOnLeave)
}

func markStatus(rec *models.AttendanceRecord, employeeID int64, now time.Time, status string) (*models.AttendanceRecord, error) {
	if rec == nil {
		rec = &models.AttendanceRecord{
			EmployeeID: employeeID,
			Date:       DateKey(now),
			CreatedAt:  now,
		}
	}
	if rec.ClockOutTime != nil {
		return nil, ErrAlreadyCheckedOut
	}
	rec.Status = status
	touch(rec, now)
	return rec, nil
}

// AssignDesignation sets the work area on an existing record. The employee
// must have clocked in first. The guard is contract-independent here:
// permanent staff may carry a designation too, it is just not required of
// them at the gate.
func AssignDesignation(rec *models.AttendanceRecord, designation string, now time.Time) error {
	if rec == nil || rec.ClockInTime == nil {
		return ErrNotCheckedIn
	}
	if rec.ClockOutTime != nil {
		return ErrAlreadyCheckedOut
	}
	if !ValidDesignation(designation) {
		return ErrInvalidDesignation
	}
	d := designation
	rec.Designation = &d
	touch(rec, now)
	return nil
}

// CheckOut closes the day's record. The guard lives here, not in the
// handlers, so no caller can gate an employee out without a clock-in, or a
// contract employee without a designation.
func CheckOut(rec *models.AttendanceRecord, emp models.Employee, now time.Time) error {
	if rec == nil || rec.ClockInTime == nil {
		return ErrNotCheckedIn
	}
	if rec.ClockOutTime != nil {
		return ErrAlreadyCheckedOut
	}
	if emp.Contract == models.ContractCasual && rec.Designation == nil {
		return ErrDesignationRequired
	}
	out := now
	rec.ClockOutTime = &out
	touch(rec, now)
	return nil
}

// ValidateRecord checks a record written outside the gate actions, such as a
// supervisor backfill, against the same rules the gate enforces: a clock-out
// needs a clock-in, contract staff cannot be clocked out without a
// designation, and any designation present must be a known work area. emp may
// be nil when the employee could not be resolved; the contract rule is then
// skipped.
func ValidateRecord(rec *models.AttendanceRecord, emp *models.Employee) error {
	if rec.ClockOutTime != nil && rec.ClockInTime == nil {
		return ErrNotCheckedIn
	}
	if rec.Designation != nil && !ValidDesignation(*rec.Designation) {
		return ErrInvalidDesignation
	}
	if rec.ClockOutTime != nil && emp != nil &&
		emp.Contract == models.ContractCasual && rec.Designation == nil {
		return ErrDesignationRequired
	}
	return nil
}

func ValidDesignation(d string) bool {
	for _, v := range Designations {
		if v == d {
			return true
		}
	}
	return false
}

func touch(rec *models.AttendanceRecord, now time.Time) {
	t := now
	rec.UpdatedAt = &t
}

// BulkResult accumulates the outcome of a best-effort bulk gate action.
// One failure never aborts the rest of the batch.
type BulkResult struct {
	Succeeded int      `json:"succeeded"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors,omitempty"`
}

func (b *BulkResult) Ok() { b.Succeeded++ }

func (b *BulkResult) Fail(err error) {
	b.Failed++
	if err != nil {
		b.Errors = append(b.Errors, err.Error())
	}
}
