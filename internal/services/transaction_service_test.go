package services

import (
	"context"
	"testing"

	"gas-backend/internal/models"
)

func f(v float64) *float64 { return &v }

func TestCreateRequiresPartyName(t *testing.T) {
	svc := NewSupplierService(nil)
	_, err := svc.Create(context.Background(), &models.CreateTransactionRequest{
		PartyName:       "   ",
		CylindersIssued: f(5),
		TotalAmount:     f(100),
	})
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateRequiresCylinderCount(t *testing.T) {
	svc := NewSupplierService(nil)
	_, err := svc.Create(context.Background(), &models.CreateTransactionRequest{
		PartyName:   "Raj Traders",
		TotalAmount: f(100),
	})
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateRequiresTotalAmount(t *testing.T) {
	svc := NewVendorService(nil)
	_, err := svc.Create(context.Background(), &models.CreateTransactionRequest{
		PartyName:       "HP Gas Depot",
		CylindersIssued: f(20),
	})
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateRejectsBadPaymentDate(t *testing.T) {
	svc := NewSupplierService(nil)
	bad := "15/03/2024"
	_, err := svc.Create(context.Background(), &models.CreateTransactionRequest{
		PartyName:       "Raj Traders",
		CylindersIssued: f(5),
		TotalAmount:     f(100),
		PaymentDate:     &bad,
	})
	if !IsValidation(err) {
		t.Fatalf("expected validation error for malformed date, got %v", err)
	}
}

func TestStockCreateRequiresTotalStock(t *testing.T) {
	svc := NewStockService(nil)
	_, err := svc.Create(context.Background(), &models.CreateStockRequest{SellingStock: f(10)})
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestErrorTaxonomyIsDisjoint(t *testing.T) {
	verr := validationErr("party_name", "required")
	nferr := &NotFoundError{Resource: "supplier"}
	cerr := &ConflictError{Message: "stock record already exists"}

	if !IsValidation(verr) || IsNotFound(verr) || IsConflict(verr) {
		t.Fatalf("validation error misclassified")
	}
	if !IsNotFound(nferr) || IsValidation(nferr) {
		t.Fatalf("not-found error misclassified")
	}
	if !IsConflict(cerr) || IsNotFound(cerr) {
		t.Fatalf("conflict error misclassified")
	}
}
