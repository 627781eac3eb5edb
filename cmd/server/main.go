package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "github.com/joshbaje/Drively-sub000/internal/api/http"
	"github.com/joshbaje/Drively-sub000/internal/config"
	"github.com/joshbaje/Drively-sub000/internal/logger"
	"github.com/joshbaje/Drively-sub000/internal/repository/postgres"
	"github.com/joshbaje/Drively-sub000/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Drively Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Services
	bookingSvc := service.NewBookingService(
		store.BookingRepository,
		store.VehicleRepository,
		store.ExceptionRepository,
	)
	vehicleSvc := service.NewVehicleService(store.VehicleRepository)
	exceptionSvc := service.NewExceptionService(
		store.ExceptionRepository,
		store.VehicleRepository,
	)
	calendarSvc := service.NewCalendarService(
		store.BookingRepository,
		store.VehicleRepository,
		store.ExceptionRepository,
	)
	statsSvc := service.NewStatisticsService(
		store.BookingRepository,
		store.ExceptionRepository,
	)

	// Initialize HTTP server
	server := httpapi.NewServer(cfg, bookingSvc, vehicleSvc, exceptionSvc, calendarSvc, statsSvc)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), server); err != nil {
		logger.Error("HTTP server failed", "error", err)
		log.Fatalf("HTTP server failed: %v", err)
	}
}
