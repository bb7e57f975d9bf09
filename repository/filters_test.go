package repository

import "testing"

func TestAllowFiltersDropsUnknownKeys(t *testing.T) {
	in := map[string]interface{}{
		"status":                    "active",
		"employee_id":               7,
		"date=$1; DROP TABLE x; --": "2025-03-14",
		"clock_in_time":             "07:00",
	}

	out := allowFilters(in, "id", "employee_id", "date", "status", "designation")

	if len(out) != 2 {
		t.Fatalf("kept %d filters, want 2: %v", len(out), out)
	}
	if out["status"] != "active" || out["employee_id"] != 7 {
		t.Errorf("known filters mangled: %v", out)
	}
}

func TestAllowFiltersEmptyInput(t *testing.T) {
	out := allowFilters(nil, "id", "status")
	if len(out) != 0 {
		t.Errorf("nil input should yield no filters, got %v", out)
	}
}
