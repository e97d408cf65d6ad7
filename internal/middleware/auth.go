package middleware

import (
	"context"
	"net/http"
	"strings"

	"gas-backend/internal/auth"
	"gas-backend/internal/repositories"
)

type contextKey string

const AdminIDKey contextKey = "admin_id"
const EmailKey contextKey = "email"

type AuthMiddleware struct {
	jwtManager *auth.JWTManager
	adminRepo  *repositories.AdminRepository
}

func NewAuthMiddleware(jwtManager *auth.JWTManager, adminRepo *repositories.AdminRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		adminRepo:  adminRepo,
	}
}

// Authenticate validates the Bearer token and confirms the admin account
// still exists and is not deleted. Deleted accounts lose access immediately,
// not at token expiry.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Authorization header required", http.StatusUnauthorized)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			http.Error(w, "Invalid authorization format", http.StatusUnauthorized)
			return
		}

		claims, err := m.jwtManager.ValidateToken(parts[1])
		if err != nil {
			http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
			return
		}

		admin, err := m.adminRepo.Get(r.Context(), claims.AdminID)
		if err != nil {
			http.Error(w, "Admin account not found", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), AdminIDKey, admin.ID)
		ctx = context.WithValue(ctx, EmailKey, admin.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAdminIDFromContext extracts the authenticated admin id from the request context
func GetAdminIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(AdminIDKey).(int)
	return id, ok
}
