package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"packhouse/engine"
	"packhouse/models"
	"packhouse/repository"
)

type CountingHandler struct {
	Repo repository.CountingRepository
}

// CreateCounting handler. Legacy capture clients send totals and counting_data
// either as objects or as JSON-encoded strings, so both fields go through the
// defensive parser before persisting.
func (h *CountingHandler) CreateCounting(w http.ResponseWriter, r *http.Request) {
	var payload models.CountingPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	totals := engine.ParseMaybeJSON(payload.Totals, models.CountingTotals{})
	countingData := engine.ParseMaybeJSON(payload.CountingData, map[string]interface{}{})

	normalized, err := json.Marshal(countingData)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	rec := models.CountingRecord{
		PalletID:           payload.PalletID,
		SupplierID:         payload.SupplierID,
		SupplierName:       payload.SupplierName,
		Status:             payload.Status,
		TotalCountedWeight: payload.TotalCountedWeight,
		Totals:             totals,
		CountingData:       normalized,
	}
	if rec.Status == "" {
		rec.Status = models.CountingPending
	}

	if err := h.Repo.CreateCounting(&rec); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(rec)
}

// GetCountingHistory handler
func (h *CountingHandler) GetCountingHistory(w http.ResponseWriter, r *http.Request) {
	filters := make(map[string]interface{})
	for key, values := range r.URL.Query() {
		if key == "action" {
			continue
		}
		if len(values) > 0 && values[0] != "" {
			if intVal, err := strconv.Atoi(values[0]); err == nil {
				filters[key] = intVal
			} else {
				filters[key] = values[0]
			}
		}
	}

	list, err := h.Repo.GetCountingHistory(filters)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []*models.CountingRecord{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// UpdateCountingStatus handler moves a record along
// pending -> pending_coldroom | completed.
func (h *CountingHandler) UpdateCountingStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	switch req.Status {
	case models.CountingPending, models.CountingPendingColdroom, models.CountingCompleted:
	default:
		http.Error(w, "unknown counting status: "+req.Status, http.StatusBadRequest)
		return
	}

	if err := h.Repo.UpdateCountingStatus(req.ID, req.Status); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Status updated"})
}
