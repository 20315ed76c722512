package handler

import (
	"net/http"

	"sportswear-shop/internal/service"

	"github.com/rs/zerolog"
)

// SystemHandler handles liveness and diagnostics requests.
type SystemHandler struct {
	service service.SystemService
	logger  zerolog.Logger
}

// NewSystemHandler creates a new system handler.
func NewSystemHandler(service service.SystemService, logger zerolog.Logger) *SystemHandler {
	return &SystemHandler{
		service: service,
		logger:  logger.With().Str("handler", "system").Logger(),
	}
}

// MessageResponse is the fixed liveness payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// Root handles GET / requests.
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Sportswear Shop API running"})
}

// Diagnostics handles GET /test requests. It always answers 200; store
// failures are reported inside the body.
func (h *SystemHandler) Diagnostics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.service.Diagnostics(r.Context()))
}
