package service

import (
	"context"

	"sportswear-shop/internal/model"
	"sportswear-shop/internal/repository"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository, logger zerolog.Logger) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// Create validates and stores a new order. Item product references are taken
// as-is; existence against the product collection is deliberately not
// checked.
func (s *orderService) Create(ctx context.Context, req *model.OrderRequest) (string, error) {
	if err := model.Validate(req); err != nil {
		s.logger.Warn().Err(err).Msg("order payload failed validation")
		return "", err
	}

	order := req.ToOrder()

	id, err := s.orderRepo.Insert(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Int("item_count", len(order.Items)).Msg("failed to create order")
		return "", err
	}

	s.logger.Info().
		Str("order_id", id.Hex()).
		Int("item_count", len(order.Items)).
		Str("status", order.Status).
		Msg("order created")

	return id.Hex(), nil
}

// List retrieves all orders.
func (s *orderService) List(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, err
	}

	s.logger.Debug().Int("count", len(orders)).Msg("listed orders")
	return orders, nil
}
