package repositories

import (
	"context"
	"fmt"

	"gas-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminRepository struct {
	DB *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{DB: db}
}

func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	err := r.DB.QueryRow(ctx, `
		INSERT INTO admins (admin_name, admin_email, password)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, admin.Name, admin.Email, admin.Password).
		Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert admin: %w", err)
	}
	return nil
}

// GetByEmail looks up an active admin account. Emails are stored lowercased.
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	admin := &models.Admin{}
	err := r.DB.QueryRow(ctx, `
		SELECT id, admin_name, admin_email, password, delete_flag, created_at, updated_at
		FROM admins
		WHERE admin_email = $1 AND delete_flag = FALSE
	`, email).Scan(&admin.ID, &admin.Name, &admin.Email, &admin.Password, &admin.DeleteFlag, &admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return admin, nil
}

func (r *AdminRepository) Get(ctx context.Context, id int) (*models.Admin, error) {
	admin := &models.Admin{}
	err := r.DB.QueryRow(ctx, `
		SELECT id, admin_name, admin_email, password, delete_flag, created_at, updated_at
		FROM admins
		WHERE id = $1 AND delete_flag = FALSE
	`, id).Scan(&admin.ID, &admin.Name, &admin.Email, &admin.Password, &admin.DeleteFlag, &admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return admin, nil
}
