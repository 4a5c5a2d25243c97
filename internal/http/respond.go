package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/fjod/go_storefront/internal/catalog"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// handleCatalogError maps catalog failures onto HTTP statuses. Fetch
// failures carry a displayable reason; the client decides whether to
// retry by calling again.
func handleCatalogError(w http.ResponseWriter, err error) {
	var fetchErr *catalog.FetchError
	if errors.As(err, &fetchErr) {
		if fetchErr.Status == http.StatusNotFound {
			respondError(w, http.StatusNotFound, "not_found", fetchErr.Error())
			return
		}
		respondError(w, http.StatusBadGateway, "catalog_unavailable", fetchErr.Error())
		return
	}
	respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
}
