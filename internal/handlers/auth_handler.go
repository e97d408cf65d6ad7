package handlers

import (
	"encoding/json"
	"net/http"

	"gas-backend/internal/models"
	"gas-backend/internal/services"
	"gas-backend/pkg/utils"
)

type AuthHandler struct {
	Service *services.AdminService
}

func NewAuthHandler(service *services.AdminService) *AuthHandler {
	return &AuthHandler{Service: service}
}

func (h *AuthHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	admin, err := h.Service.CreateAdmin(r.Context(), &req)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "Congratulations! Your account has been created successfully!", admin)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.Service.Login(r.Context(), &req)
	if err != nil {
		// Wrong password reads as 401 to the panel, not a field error
		if services.IsValidation(err) && req.Email != "" && req.Password != "" {
			utils.Error(w, http.StatusUnauthorized, "Invalid password!")
			return
		}
		respondError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, resp)
}
