package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"packhouse/models"
	"packhouse/repository"
)

// DashboardHandler fans in the per-area counts shown on the operations
// dashboard.
type DashboardHandler struct {
	SupplierRepo repository.SupplierRepository
	EmployeeRepo repository.EmployeeRepository
	ColdRoomRepo repository.ColdRoomRepository
	CarrierRepo  repository.CarrierRepository
	IntakeRepo   repository.IntakeRepository
}

func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	var summary models.DashboardSummary
	var err error

	if summary.Suppliers, err = h.SupplierRepo.CountSuppliers(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if summary.Employees, err = h.EmployeeRepo.CountEmployees(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if summary.ColdRoomBoxes, err = h.ColdRoomRepo.CountBoxes(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if summary.Vehicles, err = h.CarrierRepo.CountCarriers(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	today := time.Now().Format("2006-01-02")
	if summary.IntakeToday, err = h.IntakeRepo.IntakeTotalForDate(today); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(summary)
}
