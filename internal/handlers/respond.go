package handlers

import (
	"log"
	"net/http"

	"gas-backend/internal/services"
	"gas-backend/pkg/utils"
)

// respondError maps the service error taxonomy onto HTTP status codes:
// validation 400, not found 404, conflict 409, anything else (store failures)
// an opaque 500.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case services.IsValidation(err):
		utils.Error(w, http.StatusBadRequest, err.Error())
	case services.IsNotFound(err):
		utils.Error(w, http.StatusNotFound, err.Error())
	case services.IsConflict(err):
		utils.Error(w, http.StatusConflict, err.Error())
	default:
		log.Printf("[Handler] %v", err)
		utils.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
