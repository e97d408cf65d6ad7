package http

import (
	"net/http"

	"gas-backend/internal/handlers"
	"gas-backend/internal/middleware"
	"gas-backend/internal/monitoring"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	supplierHandler *handlers.TransactionHandler,
	vendorHandler *handlers.TransactionHandler,
	stockHandler *handlers.StockHandler,
	reportHandler *handlers.ReportHandler,
	healthHandler *handlers.HealthHandler,
	monitoringHandler *monitoring.Handler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Serve the admin panel bundle
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	// Health and metrics
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Public API routes - Authentication
	r.HandleFunc("/api/createAdmin", authHandler.CreateAdmin).Methods("POST")
	r.HandleFunc("/api/adminLogin", authHandler.Login).Methods("POST")

	// Protected API routes - everything below requires a valid admin token
	api := r.PathPrefix("/api").Subrouter()
	api.Use(authMiddleware.Authenticate)

	// Gas supplier ledger
	api.HandleFunc("/addGasSupplier", supplierHandler.Create).Methods("POST")
	api.HandleFunc("/getGasSuppliers", supplierHandler.List).Methods("GET")
	api.HandleFunc("/searchGasSuppliers", supplierHandler.Search).Methods("GET")
	api.HandleFunc("/getGasSuppliersCount", supplierHandler.Stats).Methods("GET")
	api.HandleFunc("/updateGasSupplier/{id}", supplierHandler.Update).Methods("PUT")
	api.HandleFunc("/deleteGasSupplier/{id}", supplierHandler.Delete).Methods("DELETE")

	// Vendor ledger
	api.HandleFunc("/addVendorSupplier", vendorHandler.Create).Methods("POST")
	api.HandleFunc("/getVendorSuppliers", vendorHandler.List).Methods("GET")
	api.HandleFunc("/searchGasVendorSuppliers", vendorHandler.Search).Methods("GET")
	api.HandleFunc("/getCountVendors", vendorHandler.Stats).Methods("GET")
	api.HandleFunc("/updateVendorSupplier/{id}", vendorHandler.Update).Methods("PUT")
	api.HandleFunc("/deleteVendorSupplier/{id}", vendorHandler.Delete).Methods("DELETE")

	// Stock singleton - no id parameter on any route
	api.HandleFunc("/addStock", stockHandler.Create).Methods("POST")
	api.HandleFunc("/getStock", stockHandler.Get).Methods("GET")
	api.HandleFunc("/updateStock", stockHandler.Update).Methods("PUT")
	api.HandleFunc("/deleteStock", stockHandler.Delete).Methods("DELETE")

	// Ledger exports
	api.HandleFunc("/reports/{kind}/pdf", reportHandler.LedgerPDF).Methods("GET")
	api.HandleFunc("/reports/{kind}/csv", reportHandler.LedgerCSV).Methods("GET")

	// Infrastructure monitoring for the dashboard
	api.HandleFunc("/monitoring/stats", monitoringHandler.GetStats).Methods("GET")
	api.HandleFunc("/monitoring/live", monitoringHandler.Live)

	return r
}
