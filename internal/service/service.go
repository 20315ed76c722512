package service

import (
	"context"

	"sportswear-shop/internal/model"
)

// ProductService defines operations for the product catalog.
type ProductService interface {
	// Create validates and stores a new product, returning its identifier
	// as text.
	Create(ctx context.Context, req *model.ProductRequest) (string, error)

	// List retrieves products matching the optional filters.
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)

	// GetByID retrieves a single product by its text identifier.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Seed inserts the demo catalog if the collection is empty and reports
	// the number of products inserted.
	Seed(ctx context.Context) (int, error)
}

// OrderService defines operations for order intake.
type OrderService interface {
	// Create validates and stores a new order, returning its identifier
	// as text.
	Create(ctx context.Context, req *model.OrderRequest) (string, error)

	// List retrieves all orders.
	List(ctx context.Context) ([]model.Order, error)
}

// SystemService defines liveness and store-diagnostics operations.
type SystemService interface {
	// Diagnostics produces a best-effort store health report. It never
	// returns an error; failures are reported as data.
	Diagnostics(ctx context.Context) model.DiagnosticsReport
}
