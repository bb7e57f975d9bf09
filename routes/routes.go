package routes

import (
	"net/http"
	"strings"

	"packhouse/handlers"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func SetupRoutes(
	userHandler *handlers.UserHandler,
	weightHandler *handlers.WeightHandler,
	countingHandler *handlers.CountingHandler,
	rejectHandler *handlers.RejectHandler,
	supplierHandler *handlers.SupplierHandler,
	employeeHandler *handlers.EmployeeHandler,
	attendanceHandler *handlers.AttendanceHandler,
	coldRoomHandler *handlers.ColdRoomHandler,
	loadingHandler *handlers.LoadingSheetHandler,
	carrierHandler *handlers.CarrierHandler,
	settingsHandler *handlers.SettingsHandler,
	dashboardHandler *handlers.DashboardHandler,
	reportHandler *handlers.ReportHandler,
	pdfHandler *handlers.PDFHandler,
) {
	// User routes
	http.Handle("/signup", withCORS(http.HandlerFunc(handlers.RecoverWrapper(userHandler.Signup))))
	http.Handle("/login", withCORS(http.HandlerFunc(handlers.RecoverWrapper(userHandler.Login))))

	// Intake weighing routes
	http.Handle("/api/weights", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			weightHandler.CreateWeight(w, r)
		case http.MethodGet:
			weightHandler.GetWeights(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))))

	// Counting routes
	http.Handle("/api/counting", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			countingHandler.CreateCounting(w, r)
		case http.MethodGet:
			countingHandler.GetCountingHistory(w, r)
		case http.MethodPut:
			countingHandler.UpdateCountingStatus(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))))

	// Rejection routes
	http.Handle("/api/rejects", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			rejectHandler.CreateReject(w, r)
		case http.MethodGet:
			rejectHandler.GetRejects(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))))

	// Delete rejection by ID
	http.Handle("/api/rejects/", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete && strings.TrimPrefix(r.URL.Path, "/api/rejects/") != "" {
			rejectHandler.DeleteReject(w, r)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))))

	// Supplier routes
	http.Handle("/api/suppliers", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			supplierHandler.CreateSupplier(w, r)
		case http.MethodGet:
			supplierHandler.GetSuppliers(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))))
	http.Handle("/api/suppliers/performance", withCORS(http.HandlerFunc(handlers.RecoverWrapper(supplierHandler.GetPerformance))))

	// Employee routes
	http.Handle("/api/employees", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			employeeHandler.CreateEmployee(w, r)
		case http.MethodGet:
			employeeHandler.GetEmployees(w, r)
		case http.MethodPut:
			employeeHandler.UpdateEmployee(w, r)
		case http.MethodDelete:
			employeeHandler.DeleteEmployee(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))))

	// Attendance routes
	http.Handle("/api/attendance", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			attendanceHandler.CreateAttendance(w, r)
		case http.MethodGet:
			attendanceHandler.GetAttendance(w, r)
		case http.MethodPut:
			attendanceHandler.UpdateAttendance(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))))
	http.Handle("/api/attendance/check-in", withCORS(http.HandlerFunc(handlers.RecoverWrapper(attendanceHandler.CheckIn))))
	http.Handle("/api/attendance/check-out", withCORS(http.HandlerFunc(handlers.RecoverWrapper(attendanceHandler.CheckOut))))
	http.Handle("/api/attendance/designation", withCORS(http.HandlerFunc(handlers.RecoverWrapper(attendanceHandler.AssignDesignation))))
	http.Handle("/api/attendance/bulk", withCORS(http.HandlerFunc(handlers.RecoverWrapper(attendanceHandler.BulkGate))))

	// Cold room routes
	http.Handle("/api/cold-room", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			coldRoomHandler.Post(w, r)
		case http.MethodGet:
			coldRoomHandler.Get(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))))

	// Loading sheet routes
	http.Handle("/api/loading-sheets", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			loadingHandler.CreateLoadingSheet(w, r)
		case http.MethodGet:
			loadingHandler.GetLoadingSheets(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))))
	http.Handle("/api/loading-sheets/pdf", withCORS(http.HandlerFunc(handlers.RecoverWrapper(pdfHandler.LoadingSheetPDF))))

	// Carrier routes
	http.Handle("/api/carriers", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			carrierHandler.CreateCarrier(w, r)
		case http.MethodGet:
			carrierHandler.GetCarriers(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))))
	http.Handle("/api/carrier-assignments", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			carrierHandler.CreateAssignment(w, r)
		case http.MethodGet:
			carrierHandler.GetAssignments(w, r)
		case http.MethodPatch:
			carrierHandler.UpdateAssignmentStatus(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))))
	http.Handle("/api/transit-history", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			carrierHandler.AddTransitEvent(w, r)
		case http.MethodGet:
			carrierHandler.GetTransitHistory(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))))

	// Facility settings routes
	http.Handle("/settings", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			settingsHandler.SaveSettings(w, r)
		case http.MethodGet:
			settingsHandler.GetSettings(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))))

	// Dashboard and reports
	http.Handle("/api/dashboard", withCORS(http.HandlerFunc(handlers.RecoverWrapper(dashboardHandler.GetSummary))))
	http.Handle("/api/reports/attendance.csv", withCORS(http.HandlerFunc(handlers.RecoverWrapper(reportHandler.AttendanceCSV))))
	http.Handle("/api/reports/weights.csv", withCORS(http.HandlerFunc(handlers.RecoverWrapper(reportHandler.WeightsCSV))))
}
