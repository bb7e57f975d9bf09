package handlers

import (
	"encoding/json"
	"net/http"

	"packhouse/engine"
	"packhouse/models"
	"packhouse/repository"
)

// ColdRoomHandler serves the cold-room surface, polymorphic on the `action`
// query parameter: temperature, boxes, pallets, loading-history.
type ColdRoomHandler struct {
	Repo repository.ColdRoomRepository
}

func (h *ColdRoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("action") {
	case "temperature":
		list, err := h.Repo.GetTemperatures()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if list == nil {
			list = []models.TemperatureReading{}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(list)

	case "boxes":
		list, err := h.Repo.GetBoxes()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if list == nil {
			list = []models.ColdRoomBoxes{}
		}

		type boxRow struct {
			models.ColdRoomBoxes
			Pallets  int     `json:"pallets"`
			WeightKg float64 `json:"weight_kg"`
		}
		rows := make([]boxRow, 0, len(list))
		for _, b := range list {
			rows = append(rows, boxRow{
				ColdRoomBoxes: b,
				Pallets:       engine.PalletsFromBoxes(b.Quantity, b.BoxType),
				WeightKg:      engine.WeightFromBoxes(b.Quantity, b.BoxType),
			})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(rows)

	case "pallets":
		list, err := h.Repo.GetPallets()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if list == nil {
			list = []models.ColdRoomPallet{}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(list)

	case "loading-history":
		list, err := h.Repo.GetLoadingHistory()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if list == nil {
			list = []models.LoadingHistoryEntry{}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(list)

	default:
		http.Error(w, "unknown cold-room action", http.StatusBadRequest)
	}
}

func (h *ColdRoomHandler) Post(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("action") {
	case "temperature":
		var t models.TemperatureReading
		if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := h.Repo.AddTemperature(&t); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(t)

	case "boxes":
		var b models.ColdRoomBoxes
		if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if b.Variety == "" || b.BoxType == "" {
			http.Error(w, "variety and box_type are required", http.StatusBadRequest)
			return
		}
		if err := h.Repo.SaveBoxes(&b); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(b)

	case "pallets":
		var p models.ColdRoomPallet
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if p.Weight == 0 {
			p.Weight = engine.WeightFromBoxes(p.Boxes, p.BoxType)
		}
		if err := h.Repo.AddPallet(&p); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(p)

	case "loading-history":
		var e models.LoadingHistoryEntry
		if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := h.Repo.AddLoadingHistory(&e); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(e)

	default:
		http.Error(w, "unknown cold-room action", http.StatusBadRequest)
	}
}
