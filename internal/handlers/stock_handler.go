package handlers

import (
	"encoding/json"
	"net/http"

	"gas-backend/internal/metrics"
	"gas-backend/internal/models"
	"gas-backend/internal/services"
	"gas-backend/pkg/utils"
)

// StockHandler operates on the implicit stock singleton; no route carries an id.
type StockHandler struct {
	Service *services.StockService
}

func NewStockHandler(service *services.StockService) *StockHandler {
	return &StockHandler{Service: service}
}

func (h *StockHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	stock, err := h.Service.Create(r.Context(), &req)
	if err != nil {
		respondError(w, err)
		return
	}

	metrics.LedgerWritesTotal.WithLabelValues("stock", "create").Inc()
	utils.Success(w, http.StatusCreated, "Stock record added successfully!", stock)
}

func (h *StockHandler) Get(w http.ResponseWriter, r *http.Request) {
	stock, err := h.Service.Get(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "Stock record fetched successfully!", stock)
}

func (h *StockHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	stock, err := h.Service.Update(r.Context(), &req)
	if err != nil {
		respondError(w, err)
		return
	}

	metrics.LedgerWritesTotal.WithLabelValues("stock", "update").Inc()
	utils.Success(w, http.StatusOK, "Stock record updated successfully!", stock)
}

func (h *StockHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(r.Context()); err != nil {
		respondError(w, err)
		return
	}

	metrics.LedgerWritesTotal.WithLabelValues("stock", "delete").Inc()
	utils.Success(w, http.StatusOK, "Stock record deleted successfully!", nil)
}
