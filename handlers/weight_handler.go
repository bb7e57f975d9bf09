package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"packhouse/models"
	"packhouse/repository"
)

type WeightHandler struct {
	Repo repository.IntakeRepository
}

// CreateWeight handler. The scale UI posts weights and crate counts as
// strings; anything unparseable is treated as zero.
func (h *WeightHandler) CreateWeight(w http.ResponseWriter, r *http.Request) {
	var req models.CreateIntakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	fuerteWeight := parseFloatField(req.FuerteWeight)
	fuerteCrates := parseIntField(req.FuerteCrates)
	hassWeight := parseFloatField(req.HassWeight)
	hassCrates := parseIntField(req.HassCrates)

	fuerteOK := fuerteWeight > 0 && fuerteCrates > 0
	hassOK := hassWeight > 0 && hassCrates > 0
	if !fuerteOK && !hassOK {
		http.Error(w, "at least one variety needs weight and crates greater than zero", http.StatusBadRequest)
		return
	}

	rec := models.IntakeRecord{
		SupplierID:   req.SupplierID,
		SupplierName: req.SupplierName,
		DriverName:   req.DriverName,
		VehiclePlate: req.VehiclePlate,
		Region:       req.Region,
		FuerteWeight: fuerteWeight,
		FuerteCrates: fuerteCrates,
		HassWeight:   hassWeight,
		HassCrates:   hassCrates,
		TotalWeight:  fuerteWeight + hassWeight,
		CreatedBy:    req.CreatedBy,
		Timestamp:    time.Now().UTC(),
	}

	if err := h.Repo.CreateIntake(&rec); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(rec)
}

// GetWeights handler
func (h *WeightHandler) GetWeights(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := 0
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	order := q.Get("order")

	filters := make(map[string]interface{})
	for key, values := range q {
		if key == "limit" || key == "order" {
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

	list, err := h.Repo.GetIntakes(filters, limit, order)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []*models.IntakeRecord{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

func parseFloatField(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func parseIntField(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
