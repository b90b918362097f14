package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "koriel-backend/internal/api/http"
	"koriel-backend/internal/config"
	"koriel-backend/internal/logger"
	"koriel-backend/internal/repository/postgres"
	"koriel-backend/internal/security"
	"koriel-backend/internal/service"

	_ "github.com/lib/pq"
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
	logger.Info("Starting Koriel Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
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

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	loanSvc := service.NewLoanService(store.LoanRepository, store.ClientRepository, store.ProductRepository)
	settlementSvc := service.NewSettlementService(store.SettlementRepository, store.LoanRepository)
	reversalSvc := service.NewReversalService(store.ReversalRepository)
	stockSvc := service.NewStockService(store.StockRepository)
	masterSvc := service.NewMasterDataService(store.ClientRepository, store.ProductRepository)
	reportSvc := service.NewReportService(store.SettlementRepository, store.LoanRepository, store.ClientRepository, store.ProductRepository)

	// Initialize HTTP router
	router := httpapi.NewRouter(httpapi.Services{
		Auth:        authSvc,
		Loans:       loanSvc,
		Settlements: settlementSvc,
		Reversals:   reversalSvc,
		Stock:       stockSvc,
		Masters:     masterSvc,
		Reports:     reportSvc,
	}, tokenManager)

	addr := cfg.GetServerAddress()
	logger.Info("HTTP server listening", "address", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("HTTP server stopped", "error", err)
		log.Fatalf("HTTP server stopped: %v", err)
	}
}
