package services

import (
	"context"
	"errors"

	"gas-backend/internal/ledger"
	"gas-backend/internal/models"
	"gas-backend/internal/repositories"

	"github.com/jackc/pgx/v5"
)

// StockService manages the single aggregate stock record. All operations work
// on the implicit singleton; there is no id parameter anywhere.
type StockService struct {
	Repo *repositories.StockRepository
}

func NewStockService(repo *repositories.StockRepository) *StockService {
	return &StockService{Repo: repo}
}

func (s *StockService) Get(ctx context.Context) (*models.Stock, error) {
	stock, err := s.Repo.GetSingleton(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Resource: "stock record"}
		}
		return nil, storeErr("get stock", err)
	}
	return stock, nil
}

// Create inserts the singleton. A second create fails with a conflict; the
// unique constraint in the store makes that hold under concurrent requests too.
func (s *StockService) Create(ctx context.Context, req *models.CreateStockRequest) (*models.Stock, error) {
	if req.TotalStock == nil {
		return nil, validationErr("total_stock", "total stock is required")
	}

	stock := &models.Stock{
		TotalStock:   *req.TotalStock,
		SellingStock: ledger.Coalesce(req.SellingStock, 0),
	}
	stock.PendingStock = ledger.PendingStock(stock.TotalStock, stock.SellingStock)

	if err := s.Repo.CreateSingleton(ctx, stock); err != nil {
		if errors.Is(err, repositories.ErrStockExists) {
			return nil, &ConflictError{Message: "stock record already exists, update it instead"}
		}
		return nil, storeErr("create stock", err)
	}
	return stock, nil
}

func (s *StockService) Update(ctx context.Context, req *models.UpdateStockRequest) (*models.Stock, error) {
	stock, err := s.Repo.GetSingleton(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Resource: "stock record"}
		}
		return nil, storeErr("get stock", err)
	}

	ledger.ApplyStockUpdate(stock, req)

	if err := s.Repo.UpdateSingleton(ctx, stock); err != nil {
		return nil, storeErr("update stock", err)
	}
	return stock, nil
}

func (s *StockService) Delete(ctx context.Context) error {
	err := s.Repo.DeleteSingleton(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &NotFoundError{Resource: "stock record"}
		}
		return storeErr("delete stock", err)
	}
	return nil
}
