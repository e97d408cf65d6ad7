package ledger

import (
	"testing"

	"gas-backend/internal/models"
)

func f(v float64) *float64 { return &v }

func TestRemainingPayment(t *testing.T) {
	if got := RemainingPayment(1000, 200, 300, 0); got != 500 {
		t.Fatalf("expected 500 got %v", got)
	}
	// Overpayment goes negative, no clamping.
	if got := RemainingPayment(100, 80, 50, 0); got != -30 {
		t.Fatalf("expected -30 got %v", got)
	}
	if got := RemainingPayment(0, 0, 0, 0); got != 0 {
		t.Fatalf("expected 0 got %v", got)
	}
}

func TestRemainingCylinders(t *testing.T) {
	if got := RemainingCylinders(12, 5); got != 7 {
		t.Fatalf("expected 7 got %v", got)
	}
	if got := RemainingCylinders(3, 5); got != -2 {
		t.Fatalf("expected -2 got %v", got)
	}
}

func TestPendingStock(t *testing.T) {
	if got := PendingStock(100, 30); got != 70 {
		t.Fatalf("expected 70 got %v", got)
	}
}

func TestNewTransactionDefaultsOmittedToZero(t *testing.T) {
	tx := NewTransaction(&models.CreateTransactionRequest{
		PartyName:       "Raj Traders",
		CylindersIssued: f(10),
		TotalAmount:     f(5000),
		OnlinePayment:   f(1000),
	})
	if tx.RemainingPayment != 4000 {
		t.Fatalf("expected remaining payment 4000 got %v", tx.RemainingPayment)
	}
	if tx.RemainingCylinders != 10 {
		t.Fatalf("expected remaining cylinders 10 got %v", tx.RemainingCylinders)
	}
}

func TestApplyUpdateCoalescesPerField(t *testing.T) {
	tx := &models.Transaction{
		PartyName:       "Raj Traders",
		CylindersIssued: 10,
		TotalAmount:     1000,
		OnlinePayment:   200,
		CashPayment:     300,
	}
	ApplyUpdate(tx, &models.UpdateTransactionRequest{CashPayment: f(500)})
	if tx.RemainingPayment != 300 {
		t.Fatalf("expected remaining payment 300 got %v", tx.RemainingPayment)
	}
	if tx.OnlinePayment != 200 || tx.TotalAmount != 1000 {
		t.Fatalf("untouched fields changed: %+v", tx)
	}
}

func TestApplyUpdateIdempotent(t *testing.T) {
	tx := &models.Transaction{
		CylindersIssued:        8,
		EmptyCylindersReturned: 3,
		TotalAmount:            900,
		OnlinePayment:          400,
		CashPayment:            100,
	}
	Recompute(tx)
	before := *tx
	ApplyUpdate(tx, &models.UpdateTransactionRequest{
		CylindersIssued:        f(8),
		EmptyCylindersReturned: f(3),
		TotalAmount:            f(900),
		OnlinePayment:          f(400),
		CashPayment:            f(100),
	})
	if tx.RemainingPayment != before.RemainingPayment {
		t.Fatalf("remaining payment drifted: %v -> %v", before.RemainingPayment, tx.RemainingPayment)
	}
	if tx.RemainingCylinders != before.RemainingCylinders {
		t.Fatalf("remaining cylinders drifted: %v -> %v", before.RemainingCylinders, tx.RemainingCylinders)
	}
}

func TestApplyStockUpdate(t *testing.T) {
	stock := &models.Stock{TotalStock: 100, SellingStock: 30, PendingStock: 70}
	ApplyStockUpdate(stock, &models.UpdateStockRequest{SellingStock: f(50)})
	if stock.PendingStock != 50 {
		t.Fatalf("expected pending stock 50 got %v", stock.PendingStock)
	}
	if stock.TotalStock != 100 {
		t.Fatalf("total stock changed: %v", stock.TotalStock)
	}
}
