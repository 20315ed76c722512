package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sportswear-shop/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockProductService is a mock implementation of ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Create(ctx context.Context, req *model.ProductRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockProductService) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Seed(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

const validProductBody = `{
	"title": "AeroRun Pro Tee",
	"price": 29.99,
	"category": "Tops",
	"sport": "Running"
}`

func TestProductHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	assignedID := primitive.NewObjectID().Hex()

	tests := []struct {
		name           string
		method         string
		body           string
		mockID         string
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			method:         http.MethodPost,
			body:           validProductBody,
			mockID:         assignedID,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Invalid JSON",
			method:         http.MethodPost,
			body:           `{not json`,
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:   "Validation failure",
			method: http.MethodPost,
			body:   `{"title": "", "price": -5}`,
			mockError: &model.ValidationError{Fields: []model.FieldError{
				{Field: "title", Message: "is required"},
				{Field: "price", Message: "must be greater than or equal to 0"},
			}},
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name:           "Store failure",
			method:         http.MethodPost,
			body:           validProductBody,
			mockError:      errors.New("connection reset"),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
		},
		{
			name:           "Method not allowed",
			method:         http.MethodGet,
			body:           "",
			expectedStatus: http.StatusMethodNotAllowed,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			handler := NewProductHandler(mockService, logger)

			if tt.expectService {
				mockService.On("Create", mock.Anything, mock.Anything).
					Return(tt.mockID, tt.mockError)
			}

			req := httptest.NewRequest(tt.method, "/api/products", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.Create(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp IDResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, assignedID, resp.ID)
			}

			if tt.expectService {
				mockService.AssertExpectations(t)
			}
		})
	}
}

func TestProductHandler_Create_ValidationDetails(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockProductService)
	mockService.On("Create", mock.Anything, mock.Anything).Return("", &model.ValidationError{
		Fields: []model.FieldError{{Field: "price", Message: "must be greater than or equal to 0"}},
	})

	handler := NewProductHandler(mockService, logger)

	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(`{"price": -5}`))
	w := httptest.NewRecorder()

	handler.Create(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "price", resp.Details[0].Field)
}

func TestProductHandler_List(t *testing.T) {
	logger := zerolog.Nop()

	stored := []model.Product{
		{ID: primitive.NewObjectID(), Title: "AeroRun Pro Tee", Category: "Tops", Sport: "Running"},
		{ID: primitive.NewObjectID(), Title: "TrailGrip XT Shoes", Category: "Footwear", Sport: "Running"},
	}

	tests := []struct {
		name           string
		queryParams    string
		expectedFilter model.ProductFilter
		mockReturn     []model.Product
		mockError      error
		expectedStatus int
	}{
		{
			name:           "No filters",
			queryParams:    "",
			expectedFilter: model.ProductFilter{},
			mockReturn:     stored,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Category filter",
			queryParams:    "?category=Tops",
			expectedFilter: model.ProductFilter{Category: "Tops"},
			mockReturn:     stored[:1],
			expectedStatus: http.StatusOK,
		},
		{
			name:           "All filters combined",
			queryParams:    "?category=Tops&sport=Running&q=run",
			expectedFilter: model.ProductFilter{Category: "Tops", Sport: "Running", Query: "run"},
			mockReturn:     stored[:1],
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Store failure",
			queryParams:    "",
			expectedFilter: model.ProductFilter{},
			mockError:      errors.New("server selection timeout"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			mockService.On("List", mock.Anything, tt.expectedFilter).
				Return(tt.mockReturn, tt.mockError)

			handler := NewProductHandler(mockService, logger)

			req := httptest.NewRequest(http.MethodGet, "/api/products"+tt.queryParams, nil)
			w := httptest.NewRecorder()

			handler.List(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_List_EmptyResultIsArray(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockProductService)
	mockService.On("List", mock.Anything, mock.Anything).Return([]model.Product{}, nil)

	handler := NewProductHandler(mockService, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	w := httptest.NewRecorder()

	handler.List(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestProductHandler_List_RenamesIdentifier(t *testing.T) {
	logger := zerolog.Nop()

	id := primitive.NewObjectID()
	mockService := new(MockProductService)
	mockService.On("List", mock.Anything, mock.Anything).
		Return([]model.Product{{ID: id, Title: "AeroRun Pro Tee"}}, nil)

	handler := NewProductHandler(mockService, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	w := httptest.NewRecorder()

	handler.List(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var docs []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, id.Hex(), docs[0]["id"])
	assert.NotContains(t, docs[0], "_id")
}

func TestProductHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()

	stored := &model.Product{ID: primitive.NewObjectID(), Title: "AeroRun Pro Tee"}

	tests := []struct {
		name           string
		path           string
		productID      string
		mockReturn     *model.Product
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			path:           "/api/products/" + stored.ID.Hex(),
			productID:      stored.ID.Hex(),
			mockReturn:     stored,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Well-formed but absent id",
			path:           "/api/products/66b1f7a2c3d4e5f6a7b8c9d0",
			productID:      "66b1f7a2c3d4e5f6a7b8c9d0",
			mockError:      model.ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Malformed id",
			path:           "/api/products/not-a-hex-id",
			productID:      "not-a-hex-id",
			mockError:      errors.New(`malformed product id "not-a-hex-id"`),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
		},
		{
			name:           "Missing id",
			path:           "/api/products/",
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			handler := NewProductHandler(mockService, logger)

			if tt.expectService {
				mockService.On("GetByID", mock.Anything, tt.productID).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			handler.GetByID(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectService {
				mockService.AssertExpectations(t)
			}
		})
	}
}

func TestProductHandler_Seed(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		mockInserted   int
		mockError      error
		expectedStatus int
		expectedBody   SeedResponse
	}{
		{
			name:           "First seed inserts demo catalog",
			mockInserted:   4,
			expectedStatus: http.StatusOK,
			expectedBody:   SeedResponse{Inserted: 4},
		},
		{
			name:           "Second seed is a no-op",
			mockInserted:   0,
			expectedStatus: http.StatusOK,
			expectedBody:   SeedResponse{Inserted: 0, Message: "products already exist"},
		},
		{
			name:           "Store failure",
			mockError:      errors.New("no reachable servers"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			mockService.On("Seed", mock.Anything).Return(tt.mockInserted, tt.mockError)

			handler := NewProductHandler(mockService, logger)

			req := httptest.NewRequest(http.MethodPost, "/api/products/seed", nil)
			w := httptest.NewRecorder()

			handler.Seed(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp SeedResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedBody, resp)
			}
		})
	}
}
