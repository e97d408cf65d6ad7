// Package ledger holds the derived-field arithmetic for cylinder transactions
// and the stock record. Both the create and update paths go through here so the
// derivation rules live in exactly one place.
package ledger

import "gas-backend/internal/models"

// RemainingPayment returns total minus everything already paid. The result may
// be negative: the party overpaid or paid in advance. Never clamped.
func RemainingPayment(total, online, cash, previous float64) float64 {
	return total - (online + cash + previous)
}

// RemainingCylinders returns issued minus returned, passed through as-is.
func RemainingCylinders(issued, returned float64) float64 {
	return issued - returned
}

// PendingStock returns total minus selling stock. Not clamped.
func PendingStock(total, selling float64) float64 {
	return total - selling
}

// Coalesce picks the updated value when the payload carried one, otherwise the
// stored value. Applied per field so a partial update never zeroes its siblings.
func Coalesce(updated *float64, stored float64) float64 {
	if updated != nil {
		return *updated
	}
	return stored
}

func value(p *float64) float64 {
	if p != nil {
		return *p
	}
	return 0
}

// NewTransaction builds a ledger entry from a create request and computes the
// derived fields. Omitted optional amounts count as zero.
func NewTransaction(req *models.CreateTransactionRequest) *models.Transaction {
	tx := &models.Transaction{
		PartyName:              req.PartyName,
		CylinderRate:           value(req.CylinderRate),
		CylindersIssued:        value(req.CylindersIssued),
		EmptyCylindersReturned: value(req.EmptyCylindersReturned),
		TotalAmount:            value(req.TotalAmount),
		OnlinePayment:          value(req.OnlinePayment),
		CashPayment:            value(req.CashPayment),
		PreviousPayment:        value(req.PreviousPayment),
		Remarks:                req.Remarks,
	}
	Recompute(tx)
	return tx
}

// ApplyUpdate merges a partial update over the stored entry and recomputes the
// derived fields from the merge result. Fields absent from the payload keep
// their stored values, independently per field.
func ApplyUpdate(tx *models.Transaction, req *models.UpdateTransactionRequest) {
	if req.PartyName != nil {
		tx.PartyName = *req.PartyName
	}
	tx.CylinderRate = Coalesce(req.CylinderRate, tx.CylinderRate)
	tx.CylindersIssued = Coalesce(req.CylindersIssued, tx.CylindersIssued)
	tx.EmptyCylindersReturned = Coalesce(req.EmptyCylindersReturned, tx.EmptyCylindersReturned)
	tx.TotalAmount = Coalesce(req.TotalAmount, tx.TotalAmount)
	tx.OnlinePayment = Coalesce(req.OnlinePayment, tx.OnlinePayment)
	tx.CashPayment = Coalesce(req.CashPayment, tx.CashPayment)
	tx.PreviousPayment = Coalesce(req.PreviousPayment, tx.PreviousPayment)
	if req.Remarks != nil {
		tx.Remarks = *req.Remarks
	}
	Recompute(tx)
}

// Recompute overwrites the derived fields from the raw ones. Any value the
// client supplied for a derived field is discarded here.
func Recompute(tx *models.Transaction) {
	tx.RemainingCylinders = RemainingCylinders(tx.CylindersIssued, tx.EmptyCylindersReturned)
	tx.RemainingPayment = RemainingPayment(tx.TotalAmount, tx.OnlinePayment, tx.CashPayment, tx.PreviousPayment)
}

// ApplyStockUpdate merges a partial stock update and recomputes pending stock.
func ApplyStockUpdate(stock *models.Stock, req *models.UpdateStockRequest) {
	stock.TotalStock = Coalesce(req.TotalStock, stock.TotalStock)
	stock.SellingStock = Coalesce(req.SellingStock, stock.SellingStock)
	stock.PendingStock = PendingStock(stock.TotalStock, stock.SellingStock)
}
