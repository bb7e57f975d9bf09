package handlers

import (
	"encoding/json"
	"net/http"

	"packhouse/engine"
	"packhouse/models"
	"packhouse/repository"
)

type SupplierHandler struct {
	Repo         repository.SupplierRepository
	IntakeRepo   repository.IntakeRepository
	CountingRepo repository.CountingRepository
	RejectRepo   repository.RejectRepository
}

// CreateSupplier handler
func (h *SupplierHandler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	var s models.Supplier
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if s.Name == "" {
		http.Error(w, "supplier name is required", http.StatusBadRequest)
		return
	}

	if err := h.Repo.CreateSupplier(&s); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(s)
}

// GetSuppliers handler
func (h *SupplierHandler) GetSuppliers(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.GetSuppliers()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []models.Supplier{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GetPerformance handler returns the top suppliers by intake weight with
// their counted boxes and rejection rate.
func (h *SupplierHandler) GetPerformance(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.Repo.GetSuppliers()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	intakePtrs, err := h.IntakeRepo.GetIntakes(nil, 0, "")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	countingPtrs, err := h.CountingRepo.GetCountingHistory(nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rejectPtrs, err := h.RejectRepo.GetRejects(nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	intakes := make([]models.IntakeRecord, 0, len(intakePtrs))
	for _, p := range intakePtrs {
		intakes = append(intakes, *p)
	}
	countings := make([]models.CountingRecord, 0, len(countingPtrs))
	for _, p := range countingPtrs {
		countings = append(countings, *p)
	}
	rejections := make([]models.RejectionEntry, 0, len(rejectPtrs))
	for _, p := range rejectPtrs {
		rejections = append(rejections, *p)
	}

	rows := engine.AggregateSupplierPerformance(suppliers, intakes, countings, rejections)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rows)
}
