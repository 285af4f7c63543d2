package utils

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dcode-github/listing_storefront/models"
)

// WriteJSON encodes payload with the given status.
func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to write JSON response", "error", err)
	}
}

// WriteError sends an unsuccessful APIResponse.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, models.APIResponse{Success: false, Message: message})
}
