package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"packhouse/models"
	"packhouse/repository"
)

type CarrierHandler struct {
	Repo repository.CarrierRepository
}

// CreateCarrier handler
func (h *CarrierHandler) CreateCarrier(w http.ResponseWriter, r *http.Request) {
	var c models.Carrier
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if c.Name == "" {
		http.Error(w, "carrier name is required", http.StatusBadRequest)
		return
	}

	if err := h.Repo.CreateCarrier(&c); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(c)
}

// GetCarriers handler
func (h *CarrierHandler) GetCarriers(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.GetCarriers()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []models.Carrier{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// CreateAssignment handler links a carrier to a loading sheet.
func (h *CarrierHandler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var a models.CarrierAssignment
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if a.CarrierID == 0 || a.LoadingSheetID == 0 {
		http.Error(w, "carrier_id and loading_sheet_id are required", http.StatusBadRequest)
		return
	}

	if err := h.Repo.CreateAssignment(&a); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(a)
}

// GetAssignments handler
func (h *CarrierHandler) GetAssignments(w http.ResponseWriter, r *http.Request) {
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

	list, err := h.Repo.GetAssignments(filters)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []*models.CarrierAssignment{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// UpdateAssignmentStatus handler moves an assignment along
// assigned -> in_transit -> delivered.
func (h *CarrierHandler) UpdateAssignmentStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	switch req.Status {
	case models.AssignmentAssigned, models.AssignmentInTransit, models.AssignmentDelivered:
	default:
		http.Error(w, "unknown assignment status: "+req.Status, http.StatusBadRequest)
		return
	}

	if err := h.Repo.UpdateAssignmentStatus(req.ID, req.Status); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Assignment status updated"})
}

// AddTransitEvent handler
func (h *CarrierHandler) AddTransitEvent(w http.ResponseWriter, r *http.Request) {
	var e models.TransitHistory
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if e.AssignmentID == 0 {
		http.Error(w, "assignment_id is required", http.StatusBadRequest)
		return
	}

	if err := h.Repo.AddTransitEvent(&e); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(e)
}

// GetTransitHistory handler for ?assignment_id=
func (h *CarrierHandler) GetTransitHistory(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("assignment_id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Error(w, "invalid assignment ID", http.StatusBadRequest)
		return
	}

	list, err := h.Repo.GetTransitHistory(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []models.TransitHistory{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}
