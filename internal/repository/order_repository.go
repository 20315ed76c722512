package repository

import (
	"context"
	"fmt"

	"sportswear-shop/internal/model"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// OrderCollection is the name of the backing collection.
const OrderCollection = "order"

// orderRepository implements OrderRepository on top of MongoDB.
type orderRepository struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

// NewOrderRepository creates a new MongoDB-backed order repository.
func NewOrderRepository(db *mongo.Database, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		collection: db.Collection(OrderCollection),
		logger:     logger.With().Str("repository", "order").Logger(),
	}
}

// Insert stores a new order and returns its assigned identifier.
func (r *orderRepository) Insert(ctx context.Context, order *model.Order) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		r.logger.Error().Err(err).Int("item_count", len(order.Items)).Msg("failed to insert order")
		return primitive.NilObjectID, fmt.Errorf("failed to insert order: %w", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}

	return id, nil
}

// FindAll retrieves every order document in natural store order.
func (r *orderRepository) FindAll(ctx context.Context) ([]model.Order, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}

	orders := make([]model.Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		r.logger.Error().Err(err).Msg("failed to decode orders")
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	return orders, nil
}
