package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"gas-backend/internal/auth"
	"gas-backend/internal/cache"
	"gas-backend/internal/config"
	"gas-backend/internal/database"
	"gas-backend/internal/db"
	"gas-backend/internal/handlers"
	"gas-backend/internal/health"
	h "gas-backend/internal/http"
	"gas-backend/internal/middleware"
	"gas-backend/internal/monitoring"
	"gas-backend/internal/repositories"
	"gas-backend/internal/services"
)

func main() {
	cfg := config.Load()

	// Database
	pool := db.Connect(cfg)
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatalf("db ping failed: %v", err)
	}

	migrator := database.NewMigrator(pool)
	if err := migrator.RunMigrations(context.Background()); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	// Redis cache is optional; without it every request hits Postgres
	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Not available, caching disabled: %v", err)
	} else {
		log.Println("[Redis] Connected")
	}

	// Repositories
	adminRepo := repositories.NewAdminRepository(pool)
	supplierRepo := repositories.NewSupplierRepository(pool)
	vendorRepo := repositories.NewVendorRepository(pool)
	stockRepo := repositories.NewStockRepository(pool)

	// Auth
	jwtManager := auth.NewJWTManager(cfg)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, adminRepo)

	// Services
	adminService := services.NewAdminService(adminRepo, jwtManager)
	supplierService := services.NewSupplierService(supplierRepo)
	vendorService := services.NewVendorService(vendorRepo)
	stockService := services.NewStockService(stockRepo)
	reportService := services.NewReportService(supplierService, vendorService)

	// Handlers
	authHandler := handlers.NewAuthHandler(adminService)
	supplierHandler := handlers.NewSupplierHandler(supplierService)
	vendorHandler := handlers.NewVendorHandler(vendorService)
	stockHandler := handlers.NewStockHandler(stockService)
	reportHandler := handlers.NewReportHandler(reportService)
	healthHandler := handlers.NewHealthHandler(health.NewHealthChecker(pool))
	monitoringHandler := monitoring.NewHandler(pool)

	router := h.NewRouter(
		authHandler,
		supplierHandler,
		vendorHandler,
		stockHandler,
		reportHandler,
		healthHandler,
		monitoringHandler,
		authMiddleware,
	)

	corsMiddleware := middleware.NewCORS(cfg)
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
