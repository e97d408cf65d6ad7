package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"gas-backend/internal/query"
	"gas-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// ReportService renders ledger exports for the admin panel: a landscape PDF
// with per-entry rows and aggregate footer, and a raw CSV for spreadsheets.
type ReportService struct {
	Suppliers *TransactionService
	Vendors   *TransactionService
}

func NewReportService(suppliers, vendors *TransactionService) *ReportService {
	return &ReportService{Suppliers: suppliers, Vendors: vendors}
}

func (s *ReportService) ledger(kind string) (*TransactionService, error) {
	switch kind {
	case "suppliers":
		return s.Suppliers, nil
	case "vendors":
		return s.Vendors, nil
	}
	return nil, validationErr("kind", "unknown ledger: "+kind)
}

// LedgerPDF renders the full (non-deleted) ledger of the given kind.
func (s *ReportService) LedgerPDF(ctx context.Context, kind string) ([]byte, error) {
	svc, err := s.ledger(kind)
	if err != nil {
		return nil, err
	}
	txs, err := svc.List(ctx)
	if err != nil {
		return nil, err
	}
	stats := query.Stats(txs, timeutil.Now())

	pdf := gofpdf.New("L", "mm", "A4", "") // Landscape for the amount columns
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(277, 10, fmt.Sprintf("Gas Agency - %s Ledger", title(kind)), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(277, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Table header
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(55, 7, "Party Name", "1", 0, "C", true, 0, "")
	pdf.CellFormat(22, 7, "Cylinders", "1", 0, "C", true, 0, "")
	pdf.CellFormat(22, 7, "Returned", "1", 0, "C", true, 0, "")
	pdf.CellFormat(22, 7, "Remaining", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Total Amt", "1", 0, "C", true, 0, "")
	pdf.CellFormat(26, 7, "Online", "1", 0, "C", true, 0, "")
	pdf.CellFormat(26, 7, "Cash", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Remaining Amt", "1", 0, "C", true, 0, "")
	pdf.CellFormat(24, 7, "Date", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Remarks", "1", 1, "C", true, 0, "")

	// Table rows
	pdf.SetFont("Arial", "", 9)
	for _, tx := range txs {
		name := tx.PartyName
		if len(name) > 30 {
			name = name[:27] + "..."
		}
		remarks := tx.Remarks
		if len(remarks) > 10 {
			remarks = remarks[:7] + "..."
		}
		// Negative remaining means the party overpaid; flag the row
		if tx.RemainingPayment < 0 {
			pdf.SetTextColor(200, 0, 0)
		}
		pdf.CellFormat(55, 6, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(22, 6, fmt.Sprintf("%.0f", tx.CylindersIssued), "1", 0, "C", false, 0, "")
		pdf.CellFormat(22, 6, fmt.Sprintf("%.0f", tx.EmptyCylindersReturned), "1", 0, "C", false, 0, "")
		pdf.CellFormat(22, 6, fmt.Sprintf("%.0f", tx.RemainingCylinders), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("Rs. %.2f", tx.TotalAmount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(26, 6, fmt.Sprintf("%.2f", tx.OnlinePayment), "1", 0, "R", false, 0, "")
		pdf.CellFormat(26, 6, fmt.Sprintf("%.2f", tx.CashPayment), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("Rs. %.2f", tx.RemainingPayment), "1", 0, "R", false, 0, "")
		pdf.CellFormat(24, 6, timeutil.FormatIST(tx.PaymentDate, timeutil.DateLayout), "1", 0, "C", false, 0, "")
		pdf.CellFormat(20, 6, remarks, "1", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Ln(4)

	// Summary footer
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(92, 8, fmt.Sprintf("Entries: %d", stats.TotalCount), "1", 0, "C", true, 0, "")
	pdf.CellFormat(92, 8, fmt.Sprintf("Total Amount: Rs. %.2f", stats.TotalAmount), "1", 0, "C", true, 0, "")
	pdf.CellFormat(93, 8, fmt.Sprintf("Last Month: Rs. %.2f", stats.LastMonthAmount), "1", 1, "C", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render %s PDF: %w", kind, err)
	}
	return buf.Bytes(), nil
}

// LedgerCSV exports the ledger with one row per entry, derived fields included.
func (s *ReportService) LedgerCSV(ctx context.Context, kind string) ([]byte, error) {
	svc, err := s.ledger(kind)
	if err != nil {
		return nil, err
	}
	txs, err := svc.List(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{
		"party_name", "cylinder_rate", "no_of_cylinders", "empty_cylinders_returned",
		"remaining_cylinders", "total_amount", "online_payment", "cash_payment",
		"previous_payment", "remaining_payment", "payment_date", "remarks",
	})
	for _, tx := range txs {
		w.Write([]string{
			tx.PartyName,
			fmt.Sprintf("%.2f", tx.CylinderRate),
			fmt.Sprintf("%.0f", tx.CylindersIssued),
			fmt.Sprintf("%.0f", tx.EmptyCylindersReturned),
			fmt.Sprintf("%.0f", tx.RemainingCylinders),
			fmt.Sprintf("%.2f", tx.TotalAmount),
			fmt.Sprintf("%.2f", tx.OnlinePayment),
			fmt.Sprintf("%.2f", tx.CashPayment),
			fmt.Sprintf("%.2f", tx.PreviousPayment),
			fmt.Sprintf("%.2f", tx.RemainingPayment),
			timeutil.FormatIST(tx.PaymentDate, timeutil.DateLayout),
			tx.Remarks,
		})
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to render %s CSV: %w", kind, err)
	}
	return buf.Bytes(), nil
}

func title(kind string) string {
	if kind == "vendors" {
		return "Vendor"
	}
	return "Supplier"
}
