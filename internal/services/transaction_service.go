package services

import (
	"context"
	"errors"
	"strings"

	"gas-backend/internal/ledger"
	"gas-backend/internal/models"
	"gas-backend/internal/query"
	"gas-backend/internal/repositories"
	"gas-backend/internal/timeutil"

	"github.com/jackc/pgx/v5"
)

// TransactionService orchestrates one cylinder ledger (supplier or vendor):
// required-field validation, derived-field computation and persistence.
type TransactionService struct {
	Repo *repositories.TransactionRepository

	// kind names the ledger in error messages ("supplier" or "vendor").
	kind string
}

func NewSupplierService(repo *repositories.TransactionRepository) *TransactionService {
	return &TransactionService{Repo: repo, kind: "supplier"}
}

func NewVendorService(repo *repositories.TransactionRepository) *TransactionService {
	return &TransactionService{Repo: repo, kind: "vendor"}
}

func (s *TransactionService) Kind() string { return s.kind }

func (s *TransactionService) Create(ctx context.Context, req *models.CreateTransactionRequest) (*models.Transaction, error) {
	if strings.TrimSpace(req.PartyName) == "" {
		return nil, validationErr("party_name", "party name is required")
	}
	if req.CylindersIssued == nil {
		return nil, validationErr("no_of_cylinders", "number of cylinders is required")
	}
	if req.TotalAmount == nil {
		return nil, validationErr("total_amount", "total amount is required")
	}

	tx := ledger.NewTransaction(req)

	var err error
	tx.PaymentDate, err = parseDateOr(req.PaymentDate, timeutil.Now())
	if err != nil {
		return nil, validationErr("payment_date", "expected YYYY-MM-DD")
	}
	tx.RemainingCylinderDate, err = parseDateOr(req.RemainingCylinderDate, timeutil.Now())
	if err != nil {
		return nil, validationErr("remaining_cylinder_date", "expected YYYY-MM-DD")
	}

	if err := s.Repo.Create(ctx, tx); err != nil {
		return nil, storeErr("create "+s.kind, err)
	}
	return tx, nil
}

func (s *TransactionService) List(ctx context.Context) ([]*models.Transaction, error) {
	txs, err := s.Repo.List(ctx)
	if err != nil {
		return nil, storeErr("list "+s.kind+"s", err)
	}
	return txs, nil
}

func (s *TransactionService) Search(ctx context.Context, q string) ([]*models.Transaction, error) {
	txs, err := s.Repo.Search(ctx, q)
	if err != nil {
		return nil, storeErr("search "+s.kind+"s", err)
	}
	return txs, nil
}

// Stats runs the dashboard aggregation over the full ledger. Full-table scan;
// the tables stay small enough for a single agency.
func (s *TransactionService) Stats(ctx context.Context) (models.TransactionStats, error) {
	txs, err := s.Repo.List(ctx)
	if err != nil {
		return models.TransactionStats{}, storeErr("stats "+s.kind+"s", err)
	}
	return query.Stats(txs, timeutil.Now()), nil
}

func (s *TransactionService) Update(ctx context.Context, id int, req *models.UpdateTransactionRequest) (*models.Transaction, error) {
	tx, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Resource: s.kind}
		}
		return nil, storeErr("get "+s.kind, err)
	}

	if req.PartyName != nil && strings.TrimSpace(*req.PartyName) == "" {
		return nil, validationErr("party_name", "party name cannot be empty")
	}

	ledger.ApplyUpdate(tx, req)

	if tx.PaymentDate, err = parseDateOr(req.PaymentDate, tx.PaymentDate); err != nil {
		return nil, validationErr("payment_date", "expected YYYY-MM-DD")
	}
	if tx.RemainingCylinderDate, err = parseDateOr(req.RemainingCylinderDate, tx.RemainingCylinderDate); err != nil {
		return nil, validationErr("remaining_cylinder_date", "expected YYYY-MM-DD")
	}

	if err := s.Repo.Update(ctx, tx); err != nil {
		return nil, storeErr("update "+s.kind, err)
	}
	return tx, nil
}

func (s *TransactionService) Delete(ctx context.Context, id int) error {
	err := s.Repo.SoftDelete(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &NotFoundError{Resource: s.kind}
		}
		return storeErr("delete "+s.kind, err)
	}
	return nil
}
