package handlers

import (
	"fmt"
	"net/http"
	"time"

	"packhouse/repository"
	"packhouse/utils"
)

// ReportHandler serves the CSV report downloads.
type ReportHandler struct {
	Repo *repository.ReportRepository
}

// AttendanceCSV handler for GET /api/reports/attendance.csv?from=&to=
func (h *ReportHandler) AttendanceCSV(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		http.Error(w, "from and to dates are required", http.StatusBadRequest)
		return
	}
	if _, err := time.Parse("2006-01-02", from); err != nil {
		http.Error(w, "invalid from date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	if _, err := time.Parse("2006-01-02", to); err != nil {
		http.Error(w, "invalid to date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	employees, err := h.Repo.EmployeeRepo.GetEmployees(nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	records, err := h.Repo.AttendanceRepo.GetAttendanceRange(from, to)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data, err := utils.AttendanceCSV(from, to, employees, records)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="attendance_%s_%s.csv"`, from, to))
	_, _ = w.Write(data)
}

// WeightsCSV handler for GET /api/reports/weights.csv
func (h *ReportHandler) WeightsCSV(w http.ResponseWriter, r *http.Request) {
	intakes, err := h.Repo.IntakeRepo.GetIntakes(nil, 0, "asc")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data, err := utils.WeightsCSV(intakes)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="weights_%s.csv"`, time.Now().Format("20060102")))
	_, _ = w.Write(data)
}
