package handlers

import (
	"fmt"
	"net/http"

	"gas-backend/internal/services"
	"gas-backend/internal/timeutil"

	"github.com/gorilla/mux"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: service}
}

// LedgerPDF streams the full ledger as a PDF download.
// Route: /api/reports/{kind}/pdf where kind is suppliers or vendors.
func (h *ReportHandler) LedgerPDF(w http.ResponseWriter, r *http.Request) {
	kind := mux.Vars(r)["kind"]

	data, err := h.Service.LedgerPDF(r.Context(), kind)
	if err != nil {
		respondError(w, err)
		return
	}

	filename := fmt.Sprintf("%s-ledger-%s.pdf", kind, timeutil.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(data)
}

// LedgerCSV streams the full ledger as CSV.
func (h *ReportHandler) LedgerCSV(w http.ResponseWriter, r *http.Request) {
	kind := mux.Vars(r)["kind"]

	data, err := h.Service.LedgerCSV(r.Context(), kind)
	if err != nil {
		respondError(w, err)
		return
	}

	filename := fmt.Sprintf("%s-ledger-%s.csv", kind, timeutil.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(data)
}
