package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"packhouse/engine"
	"packhouse/models"
	"packhouse/repository"
)

type LoadingSheetHandler struct {
	Repo         repository.LoadingSheetRepository
	ColdRoomRepo repository.ColdRoomRepository
}

// CreateLoadingSheet handler. Pallet lines are snapshots copied by value;
// missing line weights and sheet totals are derived from box counts.
func (h *LoadingSheetHandler) CreateLoadingSheet(w http.ResponseWriter, r *http.Request) {
	var sheet models.LoadingSheet
	if err := json.NewDecoder(r.Body).Decode(&sheet); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(sheet.Lines) == 0 {
		http.Error(w, "a loading sheet needs at least one pallet line", http.StatusBadRequest)
		return
	}

	totalBoxes := 0
	totalWeight := 0.0
	for i := range sheet.Lines {
		line := &sheet.Lines[i]
		if line.Weight == 0 {
			line.Weight = engine.WeightFromBoxes(line.Boxes, line.BoxType)
		}
		totalBoxes += line.Boxes
		totalWeight += line.Weight
	}
	if sheet.TotalBoxes == 0 {
		sheet.TotalBoxes = totalBoxes
	}
	if sheet.TotalWeight == 0 {
		sheet.TotalWeight = totalWeight
	}

	if err := h.Repo.CreateLoadingSheet(&sheet); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Mirror the dispatch into the cold-room loading history; failure here
	// never blocks the sheet.
	if h.ColdRoomRepo != nil {
		entry := models.LoadingHistoryEntry{
			SheetNo:     sheet.SheetNo,
			Destination: sheet.Destination,
			TotalBoxes:  sheet.TotalBoxes,
			TotalWeight: sheet.TotalWeight,
			LoadedAt:    sheet.CreatedAt,
		}
		if err := h.ColdRoomRepo.AddLoadingHistory(&entry); err != nil {
			fmt.Printf("failed to record loading history for sheet %s: %v\n", sheet.SheetNo, err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(sheet)
}

// GetLoadingSheets handler; ?id= fetches one sheet with its lines
func (h *LoadingSheetHandler) GetLoadingSheets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if idStr := q.Get("id"); idStr != "" {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "invalid loading sheet ID", http.StatusBadRequest)
			return
		}
		list, err := h.Repo.GetLoadingSheets(map[string]interface{}{"id": id}, true)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if len(list) == 0 {
			http.Error(w, "Loading sheet not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(list[0])
		return
	}

	filters := make(map[string]interface{})
	for key, values := range q {
		if len(values) > 0 && values[0] != "" {
			if intVal, err := strconv.Atoi(values[0]); err == nil {
				filters[key] = intVal
			} else {
				filters[key] = values[0]
			}
		}
	}

	list, err := h.Repo.GetLoadingSheets(filters, false)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []*models.LoadingSheet{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}
