package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/wealthmanager/portfolio-analytics-api/internal/apperrors"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Failed to encode JSON: %v", err)
		}
	}
}

// respondError maps a service error onto the API error contract: data
// availability errors become 404, anything else (load or computation
// failures) becomes 500.
func respondError(w http.ResponseWriter, err error, message string) {
	status := http.StatusInternalServerError
	if apperrors.IsNotFound(err) {
		status = http.StatusNotFound
	}
	respondJSON(w, status, map[string]string{
		"error":  message,
		"detail": err.Error(),
	})
}
