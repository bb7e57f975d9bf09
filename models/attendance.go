package models

import "time"

// AttendanceRecord is one employee's attendance for one calendar date.
// At most one record exists per (employee_id, date); writes are upserts.
type AttendanceRecord struct {
	ID           int64      `json:"id" bson:"_id,omitempty" db:"id"`
	EmployeeID   int64      `json:"employee_id" bson:"employee_id" db:"employee_id"`
	Date         string     `json:"date" bson:"date" db:"date"` // YYYY-MM-DD
	Status       string     `json:"status" bson:"status" db:"status"`
	ClockInTime  *time.Time `json:"clock_in_time,omitempty" bson:"clock_in_time,omitempty" db:"clock_in_time"`
	ClockOutTime *time.Time `json:"clock_out_time,omitempty" bson:"clock_out_time,omitempty" db:"clock_out_time"`
	Designation  *string    `json:"designation,omitempty" bson:"designation,omitempty" db:"designation"`
	CreatedAt    time.Time  `json:"created_at" bson:"created_at" db:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty" db:"updated_at"`

	Employee *Employee `json:"employee,omitempty" bson:"-"`
}

// AttendanceUpdate carries a partial PUT; nil fields are left untouched.
type AttendanceUpdate struct {
	Status       *string    `json:"status,omitempty"`
	ClockInTime  *time.Time `json:"clock_in_time,omitempty"`
	ClockOutTime *time.Time `json:"clock_out_time,omitempty"`
	Designation  *string    `json:"designation,omitempty"`
}
