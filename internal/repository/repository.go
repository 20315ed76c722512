package repository

import (
	"context"

	"sportswear-shop/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// Insert stores a new product and returns its assigned identifier.
	Insert(ctx context.Context, product *model.Product) (primitive.ObjectID, error)

	// Find retrieves products matching the filter; zero-value filter fields
	// impose no constraint.
	Find(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)

	// FindByID retrieves a single product by its hex identifier. It returns
	// (nil, nil) when no document matches and an error when the identifier
	// is malformed or the query fails.
	FindByID(ctx context.Context, id string) (*model.Product, error)

	// Count reports the number of documents in the product collection.
	Count(ctx context.Context) (int64, error)
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// Insert stores a new order and returns its assigned identifier.
	Insert(ctx context.Context, order *model.Order) (primitive.ObjectID, error)

	// FindAll retrieves every order document.
	FindAll(ctx context.Context) ([]model.Order, error)
}
