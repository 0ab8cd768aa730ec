package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	httpapi "rvpark-backend/internal/api/http"
	"rvpark-backend/internal/cache"
	"rvpark-backend/internal/config"
	"rvpark-backend/internal/logger"
	"rvpark-backend/internal/repository/postgres"
	"rvpark-backend/internal/security"
	"rvpark-backend/internal/service"
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
	logger.Info("Starting RV Park Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
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

	// Initialize spot snapshot cache (optional)
	spotCache, err := cache.NewSpotCache(
		cfg.Redis.Addr,
		cfg.Redis.Password,
		cfg.Redis.DB,
		time.Duration(cfg.Redis.TTLMinutes)*time.Minute,
	)
	if err != nil {
		logger.Warn("Redis unavailable, spot snapshots disabled", "error", err)
		spotCache = nil
	}
	if spotCache != nil {
		defer spotCache.Close()
		logger.Info("Spot snapshot cache enabled", "addr", cfg.Redis.Addr)
	}

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Services
	authSvc := service.NewAuthService(store.UsuarioRepository, store.ClienteRepository, tokenManager)
	clienteSvc := service.NewClienteService(store.ClienteRepository)
	spotSvc := service.NewSpotService(store.SpotRepository, spotCache)
	parkSvc := service.NewRvParkService(store.RvParkRepository, store.SpotRepository)
	rentaSvc := service.NewRentaService(store.RentaRepository, store.SpotRepository, store.PagoRepository)
	pagoSvc := service.NewPagoService(store.PagoRepository, store.RentaRepository, store.SpotRepository)
	eventoSvc := service.NewEventoService(store.EventoRepository)
	reporteSvc := service.NewReporteService(store.ReporteRepository, store.RentaRepository)

	// Initialize Handlers and Router
	router := httpapi.NewRouter(tokenManager, httpapi.Handlers{
		Auth:    httpapi.NewAuthHandler(authSvc),
		Cliente: httpapi.NewClienteHandler(clienteSvc),
		RvPark:  httpapi.NewRvParkHandler(parkSvc),
		Spot:    httpapi.NewSpotHandler(spotSvc),
		Renta:   httpapi.NewRentaHandler(rentaSvc),
		Pago:    httpapi.NewPagoHandler(pagoSvc),
		Evento:  httpapi.NewEventoHandler(eventoSvc),
		Reporte: httpapi.NewReporteHandler(reporteSvc),
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
