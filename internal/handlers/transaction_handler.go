package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"gas-backend/internal/cache"
	"gas-backend/internal/metrics"
	"gas-backend/internal/models"
	"gas-backend/internal/services"
	"gas-backend/pkg/utils"

	"github.com/gorilla/mux"
)

// TransactionHandler exposes one cylinder ledger over HTTP. Two instances are
// wired at startup, one for the supplier ledger and one for the vendor ledger.
type TransactionHandler struct {
	Service  *services.TransactionService
	statsKey string
}

func NewSupplierHandler(service *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{Service: service, statsKey: cache.SupplierStatsKey}
}

func NewVendorHandler(service *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{Service: service, statsKey: cache.VendorStatsKey}
}

func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tx, err := h.Service.Create(r.Context(), &req)
	if err != nil {
		respondError(w, err)
		return
	}

	metrics.LedgerWritesTotal.WithLabelValues(h.Service.Kind(), "create").Inc()
	cache.InvalidateStats(r.Context(), h.statsKey)
	utils.Success(w, http.StatusCreated, "Ledger entry added successfully!", tx)
}

func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	txs, err := h.Service.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "Ledger entries fetched successfully!", txs)
}

func (h *TransactionHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	txs, err := h.Service.Search(r.Context(), query)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.Success(w, http.StatusOK,
		"Found "+strconv.Itoa(len(txs))+" entries matching \""+query+"\"", txs)
}

func (h *TransactionHandler) Stats(w http.ResponseWriter, r *http.Request) {
	// Stats drive the dashboard header and get polled, so serve from Redis
	// when a fresh copy exists.
	if data, ok := cache.GetCachedStats(r.Context(), h.statsKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
		return
	}

	stats, err := h.Service.Stats(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	payload, err := json.Marshal(utils.Envelope{Success: true, Stats: stats})
	if err != nil {
		respondError(w, err)
		return
	}
	cache.CacheStats(r.Context(), h.statsKey, payload)

	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}

func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid entry ID")
		return
	}

	var req models.UpdateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tx, err := h.Service.Update(r.Context(), id, &req)
	if err != nil {
		respondError(w, err)
		return
	}

	metrics.LedgerWritesTotal.WithLabelValues(h.Service.Kind(), "update").Inc()
	cache.InvalidateStats(r.Context(), h.statsKey)
	utils.Success(w, http.StatusOK, "Ledger entry updated successfully!", tx)
}

func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid entry ID")
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	metrics.LedgerWritesTotal.WithLabelValues(h.Service.Kind(), "delete").Inc()
	cache.InvalidateStats(r.Context(), h.statsKey)
	utils.Success(w, http.StatusOK, "Ledger entry deleted successfully!", nil)
}
