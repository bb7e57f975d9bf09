package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"packhouse/engine"
	"packhouse/models"
	"packhouse/repository"
)

type RejectHandler struct {
	Repo         repository.RejectRepository
	IntakeRepo   repository.IntakeRepository
	CountingRepo repository.CountingRepository
}

// CreateReject handler. The variance is recomputed server-side against the
// source intake weight; client-sent derived fields are overwritten.
func (h *RejectHandler) CreateReject(w http.ResponseWriter, r *http.Request) {
	var rec models.RejectionEntry
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var intake *models.IntakeRecord
	var counting *models.CountingRecord
	if rec.PalletID != "" {
		var err error
		intake, err = h.IntakeRepo.GetIntakeByPallet(rec.PalletID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		counting, err = h.CountingRepo.GetCountingByPallet(rec.PalletID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}

	if rec.CountedWeight == 0 && counting != nil {
		rec.CountedWeight = counting.TotalCountedWeight
	}

	intakeWeight := engine.ResolveIntakeWeight(intake, counting)
	engine.RecomputeRejection(&rec, intakeWeight)

	if rec.RejectedAt.IsZero() {
		rec.RejectedAt = time.Now().UTC()
	}

	if err := h.Repo.CreateReject(&rec); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(rec)
}

// GetRejects handler
func (h *RejectHandler) GetRejects(w http.ResponseWriter, r *http.Request) {
	filters := make(map[string]interface{})
	for key, values := range r.URL.Query() {
		if len(values) > 0 && values[0] != "" {
			if intVal, err := strconv.Atoi(values[0]); err == nil {
				filters[key] = intVal
			} else {
				filters[key] = values[0]
			}
		}
	}

	list, err := h.Repo.GetRejects(filters)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []*models.RejectionEntry{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// DeleteReject handler for DELETE /api/rejects/{id}
func (h *RejectHandler) DeleteReject(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/api/rejects/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Error(w, "invalid reject ID", http.StatusBadRequest)
		return
	}

	if err := h.Repo.DeleteReject(id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Rejection entry deleted"})
}
