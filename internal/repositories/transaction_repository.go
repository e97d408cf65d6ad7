package repositories

import (
	"context"
	"fmt"
	"strings"

	"gas-backend/internal/models"
	"gas-backend/internal/query"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `id, party_name, cylinder_rate, no_of_cylinders, empty_cylinders_returned,
	       remaining_cylinders, total_amount, online_payment, cash_payment, previous_payment,
	       remaining_payment, payment_date, remaining_cylinder_date, COALESCE(remarks, ''),
	       delete_flag, created_at, updated_at`

// TransactionRepository persists cylinder ledger entries. The supplier and
// vendor ledgers share the schema, so the same repository serves both tables.
type TransactionRepository struct {
	DB    *pgxpool.Pool
	table string
}

func NewSupplierRepository(db *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{DB: db, table: "supplier_transactions"}
}

func NewVendorRepository(db *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{DB: db, table: "vendor_transactions"}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	q := fmt.Sprintf(`
		INSERT INTO %s (party_name, cylinder_rate, no_of_cylinders, empty_cylinders_returned,
		                remaining_cylinders, total_amount, online_payment, cash_payment,
		                previous_payment, remaining_payment, payment_date, remaining_cylinder_date, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at
	`, r.table)

	err := r.DB.QueryRow(ctx, q,
		tx.PartyName,
		tx.CylinderRate,
		tx.CylindersIssued,
		tx.EmptyCylindersReturned,
		tx.RemainingCylinders,
		tx.TotalAmount,
		tx.OnlinePayment,
		tx.CashPayment,
		tx.PreviousPayment,
		tx.RemainingPayment,
		tx.PaymentDate,
		tx.RemainingCylinderDate,
		tx.Remarks,
	).Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert into %s: %w", r.table, err)
	}
	return nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, id int) (*models.Transaction, error) {
	q := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1 AND delete_flag = FALSE`, transactionColumns, r.table)
	return r.scanOne(r.DB.QueryRow(ctx, q, id))
}

// List returns every non-deleted entry, newest first.
func (r *TransactionRepository) List(ctx context.Context) ([]*models.Transaction, error) {
	q := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE delete_flag = FALSE
		ORDER BY created_at DESC
	`, transactionColumns, r.table)

	rows, err := r.DB.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

// Search filters the ledger by a free-text query. A query that parses as a
// number matches amounts exactly; anything else matches party name, remarks or
// the payment date rendered as YYYY-MM-DD, case-insensitively. An empty query
// falls back to List.
func (r *TransactionRepository) Search(ctx context.Context, queryStr string) ([]*models.Transaction, error) {
	if strings.TrimSpace(queryStr) == "" {
		return r.List(ctx)
	}

	if amount, numeric := query.ParseAmount(queryStr); numeric {
		q := fmt.Sprintf(`
			SELECT %s FROM %s
			WHERE delete_flag = FALSE
			  AND (total_amount = $1 OR cash_payment = $1 OR online_payment = $1)
			ORDER BY created_at DESC
		`, transactionColumns, r.table)

		rows, err := r.DB.Query(ctx, q, amount)
		if err != nil {
			return nil, err
		}
		return r.collect(rows)
	}

	q := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE delete_flag = FALSE
		  AND (party_name ILIKE $1 OR remarks ILIKE $1
		       OR to_char(payment_date AT TIME ZONE 'Asia/Kolkata', 'YYYY-MM-DD') ILIKE $1)
		ORDER BY created_at DESC
	`, transactionColumns, r.table)

	rows, err := r.DB.Query(ctx, q, "%"+queryStr+"%")
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *TransactionRepository) Update(ctx context.Context, tx *models.Transaction) error {
	q := fmt.Sprintf(`
		UPDATE %s
		SET party_name = $1, cylinder_rate = $2, no_of_cylinders = $3, empty_cylinders_returned = $4,
		    remaining_cylinders = $5, total_amount = $6, online_payment = $7, cash_payment = $8,
		    previous_payment = $9, remaining_payment = $10, payment_date = $11,
		    remaining_cylinder_date = $12, remarks = $13, updated_at = NOW()
		WHERE id = $14
		RETURNING updated_at
	`, r.table)

	err := r.DB.QueryRow(ctx, q,
		tx.PartyName,
		tx.CylinderRate,
		tx.CylindersIssued,
		tx.EmptyCylindersReturned,
		tx.RemainingCylinders,
		tx.TotalAmount,
		tx.OnlinePayment,
		tx.CashPayment,
		tx.PreviousPayment,
		tx.RemainingPayment,
		tx.PaymentDate,
		tx.RemainingCylinderDate,
		tx.Remarks,
		tx.ID,
	).Scan(&tx.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", r.table, err)
	}
	return nil
}

// SoftDelete flags the entry instead of removing the row. List and Search
// filter flagged rows out.
func (r *TransactionRepository) SoftDelete(ctx context.Context, id int) error {
	q := fmt.Sprintf(`UPDATE %s SET delete_flag = TRUE, updated_at = NOW() WHERE id = $1 AND delete_flag = FALSE`, r.table)
	tag, err := r.DB.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *TransactionRepository) scanOne(row pgx.Row) (*models.Transaction, error) {
	tx := &models.Transaction{}
	err := row.Scan(
		&tx.ID,
		&tx.PartyName,
		&tx.CylinderRate,
		&tx.CylindersIssued,
		&tx.EmptyCylindersReturned,
		&tx.RemainingCylinders,
		&tx.TotalAmount,
		&tx.OnlinePayment,
		&tx.CashPayment,
		&tx.PreviousPayment,
		&tx.RemainingPayment,
		&tx.PaymentDate,
		&tx.RemainingCylinderDate,
		&tx.Remarks,
		&tx.DeleteFlag,
		&tx.CreatedAt,
		&tx.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func (r *TransactionRepository) collect(rows pgx.Rows) ([]*models.Transaction, error) {
	defer rows.Close()

	var txs []*models.Transaction
	for rows.Next() {
		tx, err := r.scanOne(rows)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}
