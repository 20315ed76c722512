package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"sportswear-shop/internal/model"

	"github.com/rs/zerolog"
)

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error   string             `json:"error"`
	Details []model.FieldError `json:"details,omitempty"`
}

// IDResponse carries the identifier assigned to a newly created document.
type IDResponse struct {
	ID string `json:"id"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent; nothing useful left to do.
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeServiceError maps an error coming out of the service layer onto the
// HTTP surface: validation failures carry field detail with 400, not-found
// gets 404, and everything else collapses to 500 with the underlying message.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		logger.Warn().Str("error", verr.Error()).Msg("validation failed")
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: verr.Fields,
		})
		return
	}

	var derr *model.DomainError
	if errors.As(err, &derr) && derr.Code == model.ErrCodeProductNotFound {
		writeError(w, http.StatusNotFound, derr.Message, logger)
		return
	}

	writeError(w, http.StatusInternalServerError, err.Error(), logger)
}
