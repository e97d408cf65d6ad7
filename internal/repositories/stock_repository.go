package repositories

import (
	"context"
	"errors"
	"fmt"

	"gas-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrStockExists is returned when a second stock record is inserted. The
// singleton is enforced by a unique constraint on a fixed key, so two
// concurrent creates cannot both succeed.
var ErrStockExists = errors.New("stock record already exists")

type StockRepository struct {
	DB *pgxpool.Pool
}

func NewStockRepository(db *pgxpool.Pool) *StockRepository {
	return &StockRepository{DB: db}
}

// GetSingleton returns the one stock row, or pgx.ErrNoRows when none exists.
func (r *StockRepository) GetSingleton(ctx context.Context) (*models.Stock, error) {
	stock := &models.Stock{}
	err := r.DB.QueryRow(ctx, `
		SELECT id, total_stock, selling_stock, pending_stock, created_at, updated_at
		FROM stock
		WHERE singleton
	`).Scan(&stock.ID, &stock.TotalStock, &stock.SellingStock, &stock.PendingStock, &stock.CreatedAt, &stock.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return stock, nil
}

func (r *StockRepository) CreateSingleton(ctx context.Context, stock *models.Stock) error {
	err := r.DB.QueryRow(ctx, `
		INSERT INTO stock (singleton, total_stock, selling_stock, pending_stock)
		VALUES (TRUE, $1, $2, $3)
		RETURNING id, created_at, updated_at
	`, stock.TotalStock, stock.SellingStock, stock.PendingStock).
		Scan(&stock.ID, &stock.CreatedAt, &stock.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrStockExists
		}
		return fmt.Errorf("failed to insert stock: %w", err)
	}
	return nil
}

func (r *StockRepository) UpdateSingleton(ctx context.Context, stock *models.Stock) error {
	err := r.DB.QueryRow(ctx, `
		UPDATE stock
		SET total_stock = $1, selling_stock = $2, pending_stock = $3, updated_at = NOW()
		WHERE singleton
		RETURNING updated_at
	`, stock.TotalStock, stock.SellingStock, stock.PendingStock).Scan(&stock.UpdatedAt)
	if err != nil {
		return err
	}
	return nil
}

func (r *StockRepository) DeleteSingleton(ctx context.Context) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM stock WHERE singleton`)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
