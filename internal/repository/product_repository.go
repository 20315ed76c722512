package repository

import (
	"context"
	"errors"
	"fmt"

	"sportswear-shop/internal/model"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProductCollection is the name of the backing collection.
const ProductCollection = "product"

// productRepository implements ProductRepository on top of MongoDB.
type productRepository struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

// NewProductRepository creates a new MongoDB-backed product repository.
func NewProductRepository(db *mongo.Database, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		collection: db.Collection(ProductCollection),
		logger:     logger.With().Str("repository", "product").Logger(),
	}
}

// Insert stores a new product and returns its assigned identifier.
func (r *productRepository) Insert(ctx context.Context, product *model.Product) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		r.logger.Error().Err(err).Str("title", product.Title).Msg("failed to insert product")
		return primitive.NilObjectID, fmt.Errorf("failed to insert product: %w", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}

	return id, nil
}

// Find retrieves products matching the filter, AND-combining set fields.
// The free-text query is a case-insensitive regex against title, matching
// the store's natural substring semantics.
func (r *productRepository) Find(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Sport != "" {
		query["sport"] = filter.Sport
	}
	if filter.Query != "" {
		query["title"] = primitive.Regex{Pattern: filter.Query, Options: "i"}
	}

	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}

	products := make([]model.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode products")
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	return products, nil
}

// FindByID retrieves a single product by its hex identifier.
func (r *productRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", id).Msg("malformed product id")
		return nil, fmt.Errorf("malformed product id %q: %w", id, err)
	}

	var product model.Product
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.logger.Debug().Str("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &product, nil
}

// Count reports the number of documents in the product collection.
func (r *productRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to count products")
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}
