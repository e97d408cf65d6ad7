package services

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"gas-backend/internal/auth"
	"gas-backend/internal/cache"
	"gas-backend/internal/models"
	"gas-backend/internal/repositories"

	"github.com/jackc/pgx/v5"
)

var emailRegex = regexp.MustCompile(`^\w+([\.-]?\w+)*@\w+([\.-]?\w+)*(\.\w{2,})+$`)

type AdminService struct {
	Repo       *repositories.AdminRepository
	jwtManager *auth.JWTManager
}

func NewAdminService(repo *repositories.AdminRepository, jwtManager *auth.JWTManager) *AdminService {
	return &AdminService{Repo: repo, jwtManager: jwtManager}
}

func (s *AdminService) CreateAdmin(ctx context.Context, req *models.CreateAdminRequest) (*models.Admin, error) {
	if req.Email == "" {
		return nil, validationErr("admin_email", "email is required")
	}
	if !emailRegex.MatchString(req.Email) {
		return nil, validationErr("admin_email", "please provide a valid email address")
	}
	if req.Name == "" {
		return nil, validationErr("admin_name", "admin name is required")
	}
	if req.Password == "" {
		return nil, validationErr("password", "password is required")
	}

	email := strings.ToLower(req.Email)

	if _, err := s.Repo.GetByEmail(ctx, email); err == nil {
		return nil, &ConflictError{Message: "email already exists"}
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, storeErr("lookup admin", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{Name: req.Name, Email: email, Password: hash}
	if err := s.Repo.Create(ctx, admin); err != nil {
		return nil, storeErr("create admin", err)
	}
	return admin, nil
}

func (s *AdminService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, validationErr("", "please provide both admin email and password")
	}

	email := strings.ToLower(req.Email)

	admin, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Resource: "admin account"}
		}
		return nil, storeErr("lookup admin", err)
	}

	// Redis-backed fast path skips bcrypt for recently verified credentials.
	if _, ok := cache.GetCachedAuth(ctx, email, req.Password); !ok {
		if !auth.VerifyPassword(admin.Password, req.Password) {
			return nil, validationErr("password", "invalid password")
		}
		cache.CacheAuth(ctx, email, req.Password, int64(admin.ID))
	}

	token, err := s.jwtManager.GenerateToken(admin)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{AccessToken: token, Admin: admin}, nil
}
