package handler

import (
	"encoding/json"
	"net/http"

	"sportswear-shop/internal/model"
	"sportswear-shop/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// Create handles POST /api/products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	id, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, IDResponse{ID: id})
}

// List handles GET /api/products requests with optional category, sport,
// and q filters.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	filter := model.ProductFilter{
		Category: r.URL.Query().Get("category"),
		Sport:    r.URL.Query().Get("sport"),
		Query:    r.URL.Query().Get("q"),
	}

	products, err := h.service.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	if products == nil {
		products = []model.Product{}
	}

	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	// Expecting path: /api/products/{id}
	path := r.URL.Path
	if len(path) <= len("/api/products/") {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}
	productID := path[len("/api/products/"):]

	product, err := h.service.GetByID(r.Context(), productID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// SeedResponse reports the outcome of a seed request.
type SeedResponse struct {
	Inserted int    `json:"inserted"`
	Message  string `json:"message,omitempty"`
}

// Seed handles POST /api/products/seed requests.
func (h *ProductHandler) Seed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	inserted, err := h.service.Seed(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	resp := SeedResponse{Inserted: inserted}
	if inserted == 0 {
		resp.Message = "products already exist"
	}

	writeJSON(w, http.StatusOK, resp)
}
