package main

import (
	"fmt"
	"net/http"

	"packhouse/config"
	"packhouse/db"
	"packhouse/db/mongo"
	"packhouse/db/postgres"
	"packhouse/handlers"
	"packhouse/repository"
	"packhouse/routes"
)

func main() {
	// Load config from .env or config file
	cfg := config.LoadConfig()

	// Run migrations (for Postgres)
	if cfg.DBType == "postgres" {
		db.RunMigrations()
	}

	var userRepo repository.UserRepository
	var intakeRepo repository.IntakeRepository
	var countingRepo repository.CountingRepository
	var rejectRepo repository.RejectRepository
	var supplierRepo repository.SupplierRepository
	var employeeRepo repository.EmployeeRepository
	var attendanceRepo repository.AttendanceRepository
	var coldRoomRepo repository.ColdRoomRepository
	var loadingRepo repository.LoadingSheetRepository
	var carrierRepo repository.CarrierRepository
	var settingsRepo repository.SettingsRepository

	switch cfg.DBType {
	case "postgres":
		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			panic(err)
		}
		defer pg.Disconnect()

		userRepo = repository.NewPostgresUserRepo(pg.Conn)
		intakeRepo = repository.NewPostgresIntakeRepo(pg.Conn)
		countingRepo = repository.NewPostgresCountingRepo(pg.Conn)
		rejectRepo = repository.NewPostgresRejectRepo(pg.Conn)
		supplierRepo = repository.NewPostgresSupplierRepo(pg.Conn)
		employeeRepo = repository.NewPostgresEmployeeRepo(pg.Conn)
		attendanceRepo = repository.NewPostgresAttendanceRepo(pg.Conn)
		coldRoomRepo = repository.NewPostgresColdRoomRepo(pg.Conn)
		loadingRepo = repository.NewPostgresLoadingRepo(pg.Conn)
		carrierRepo = repository.NewPostgresCarrierRepo(pg.Conn)
		settingsRepo = repository.NewPostgresSettingsRepo(pg.Conn)

	case "mongo":
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			panic(err)
		}
		defer mg.Disconnect()

		userRepo = repository.NewMongoUserRepo(mg.Client)
		intakeRepo = repository.NewMongoIntakeRepo(mg.Client)
		countingRepo = repository.NewMongoCountingRepo(mg.Client)
		rejectRepo = repository.NewMongoRejectRepo(mg.Client)
		supplierRepo = repository.NewMongoSupplierRepo(mg.Client)
		employeeRepo = repository.NewMongoEmployeeRepo(mg.Client)
		attendanceRepo = repository.NewMongoAttendanceRepo(mg.Client)
		coldRoomRepo = repository.NewMongoColdRoomRepo(mg.Client)
		loadingRepo = repository.NewMongoLoadingSheetRepo(mg.Client)
		carrierRepo = repository.NewMongoCarrierRepo(mg.Client)
		settingsRepo = repository.NewMongoSettingsRepo(mg.Client)

	default:
		panic("DB_TYPE not supported")
	}

	// Handlers
	userHandler := &handlers.UserHandler{Repo: userRepo}
	weightHandler := &handlers.WeightHandler{Repo: intakeRepo}
	countingHandler := &handlers.CountingHandler{Repo: countingRepo}
	rejectHandler := &handlers.RejectHandler{
		Repo:         rejectRepo,
		IntakeRepo:   intakeRepo,
		CountingRepo: countingRepo,
	}
	supplierHandler := &handlers.SupplierHandler{
		Repo:         supplierRepo,
		IntakeRepo:   intakeRepo,
		CountingRepo: countingRepo,
		RejectRepo:   rejectRepo,
	}
	employeeHandler := &handlers.EmployeeHandler{Repo: employeeRepo}
	attendanceHandler := &handlers.AttendanceHandler{
		Repo:         attendanceRepo,
		EmployeeRepo: employeeRepo,
	}
	coldRoomHandler := &handlers.ColdRoomHandler{Repo: coldRoomRepo}
	loadingHandler := &handlers.LoadingSheetHandler{
		Repo:         loadingRepo,
		ColdRoomRepo: coldRoomRepo,
	}
	carrierHandler := &handlers.CarrierHandler{Repo: carrierRepo}
	settingsHandler := &handlers.SettingsHandler{Repo: settingsRepo}
	dashboardHandler := &handlers.DashboardHandler{
		SupplierRepo: supplierRepo,
		EmployeeRepo: employeeRepo,
		ColdRoomRepo: coldRoomRepo,
		CarrierRepo:  carrierRepo,
		IntakeRepo:   intakeRepo,
	}

	// Report and PDF handlers with combined repository
	reportRepo := &repository.ReportRepository{
		SheetRepo:      loadingRepo,
		SettingsRepo:   settingsRepo,
		EmployeeRepo:   employeeRepo,
		AttendanceRepo: attendanceRepo,
		IntakeRepo:     intakeRepo,
	}
	reportHandler := &handlers.ReportHandler{Repo: reportRepo}
	pdfHandler := &handlers.PDFHandler{Repo: reportRepo, SavePath: cfg.PDFSavePath}

	routes.SetupRoutes(
		userHandler,
		weightHandler,
		countingHandler,
		rejectHandler,
		supplierHandler,
		employeeHandler,
		attendanceHandler,
		coldRoomHandler,
		loadingHandler,
		carrierHandler,
		settingsHandler,
		dashboardHandler,
		reportHandler,
		pdfHandler,
	)

	port := cfg.Port
	fmt.Printf("Server running on port %s\n", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		panic(err)
	}
}
