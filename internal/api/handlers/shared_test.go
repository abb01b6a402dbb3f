package handlers

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/wealthmanager/portfolio-analytics-api/internal/apperrors"
)

// TestRespondJSON tests the respondJSON helper function.
// This is an internal test (package handlers, not handlers_test) because
// respondJSON is unexported.
func TestRespondJSON(t *testing.T) {
	t.Run("sets content-type and status code correctly", func(t *testing.T) {
		w := httptest.NewRecorder()
		data := map[string]string{"message": "success"}

		respondJSON(w, 200, data)

		if w.Code != 200 {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		if w.Header().Get("Content-Type") != "application/json" {
			t.Errorf("Expected Content-Type 'application/json', got '%s'", w.Header().Get("Content-Type"))
		}
	})

	t.Run("handles nil data without error", func(t *testing.T) {
		w := httptest.NewRecorder()

		respondJSON(w, 204, nil)

		if w.Code != 204 {
			t.Errorf("Expected status 204, got %d", w.Code)
		}
	})

	t.Run("handles un-encodable data gracefully", func(t *testing.T) {
		w := httptest.NewRecorder()

		// Channels cannot be JSON encoded
		data := map[string]interface{}{
			"channel": make(chan int),
		}

		// Should not panic, just log the error
		respondJSON(w, 200, data)

		// Status should still be set even if encoding fails
		if w.Code != 200 {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
	})
}

// TestRespondError tests the error-to-status mapping.
//
// WHY: the API contract distinguishes missing data (404) from load failures
// (500); the mapping lives in one place and every endpoint depends on it.
func TestRespondError(t *testing.T) {
	t.Run("data availability errors map to 404", func(t *testing.T) {
		w := httptest.NewRecorder()

		respondError(w, apperrors.ErrNoHoldingsData, "failed to fetch holdings")

		if w.Code != 404 {
			t.Errorf("Expected status 404, got %d", w.Code)
		}

		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("Failed to decode body: %v", err)
		}
		if body["error"] != "failed to fetch holdings" {
			t.Errorf("Unexpected error message: %q", body["error"])
		}
		if body["detail"] != "no holdings data found" {
			t.Errorf("Unexpected detail: %q", body["detail"])
		}
	})

	t.Run("other errors map to 500", func(t *testing.T) {
		w := httptest.NewRecorder()

		respondError(w, errors.New("workbook unreadable"), "failed to fetch holdings")

		if w.Code != 500 {
			t.Errorf("Expected status 500, got %d", w.Code)
		}
	})
}
