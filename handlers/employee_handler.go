package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"packhouse/models"
	"packhouse/repository"
)

type EmployeeHandler struct {
	Repo repository.EmployeeRepository
}

// CreateEmployee handler
func (h *EmployeeHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var emp models.Employee
	if err := json.NewDecoder(r.Body).Decode(&emp); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if emp.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	switch emp.Contract {
	case "", models.ContractFullTime, models.ContractPartTime, models.ContractCasual:
	default:
		http.Error(w, "unknown contract type: "+emp.Contract, http.StatusBadRequest)
		return
	}

	if err := h.Repo.CreateEmployee(&emp); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(emp)
}

// GetEmployees handler; ?id= fetches one
func (h *EmployeeHandler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if idStr := q.Get("id"); idStr != "" {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "invalid employee ID", http.StatusBadRequest)
			return
		}
		emp, err := h.Repo.GetEmployeeByID(id)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if emp == nil {
			http.Error(w, "Employee not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(emp)
		return
	}

	filters := make(map[string]interface{})
	for key, values := range q {
		if len(values) > 0 && values[0] != "" {
			filters[key] = values[0]
		}
	}

	list, err := h.Repo.GetEmployees(filters)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []*models.Employee{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// UpdateEmployee handler
func (h *EmployeeHandler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Error(w, "invalid employee ID", http.StatusBadRequest)
		return
	}

	var emp models.Employee
	if err := json.NewDecoder(r.Body).Decode(&emp); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	emp.ID = id

	if err := h.Repo.UpdateEmployee(&emp); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(emp)
}

// DeleteEmployee handler
func (h *EmployeeHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Error(w, "invalid employee ID", http.StatusBadRequest)
		return
	}

	if err := h.Repo.DeleteEmployee(id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Employee deleted"})
}
