package service

import (
	"context"
	"fmt"

	"sportswear-shop/internal/model"
	"sportswear-shop/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// Create validates and stores a new product.
func (s *productService) Create(ctx context.Context, req *model.ProductRequest) (string, error) {
	if err := model.Validate(req); err != nil {
		s.logger.Warn().Err(err).Msg("product payload failed validation")
		return "", err
	}

	id, err := s.productRepo.Insert(ctx, req.ToProduct())
	if err != nil {
		s.logger.Error().Err(err).Str("title", req.Title).Msg("failed to create product")
		return "", err
	}

	s.logger.Info().
		Str("product_id", id.Hex()).
		Str("title", req.Title).
		Msg("product created")

	return id.Hex(), nil
}

// List retrieves products matching the optional filters.
func (s *productService) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	products, err := s.productRepo.Find(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, err
	}

	s.logger.Debug().
		Int("count", len(products)).
		Str("category", filter.Category).
		Str("sport", filter.Sport).
		Str("q", filter.Query).
		Msg("listed products")

	return products, nil
}

// GetByID retrieves a single product by its text identifier.
func (s *productService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if product == nil {
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Seed inserts the demo catalog if the product collection is empty. The
// count-then-insert sequence is not atomic; two concurrent calls can both
// pass the emptiness check.
func (s *productService) Seed(ctx context.Context) (int, error) {
	count, err := s.productRepo.Count(ctx)
	if err != nil {
		return 0, err
	}

	if count > 0 {
		s.logger.Info().Int64("existing", count).Msg("seed skipped, products already exist")
		return 0, nil
	}

	inserted := 0
	for i := range demoProducts {
		if _, err := s.productRepo.Insert(ctx, &demoProducts[i]); err != nil {
			return inserted, fmt.Errorf("failed to seed demo catalog: %w", err)
		}
		inserted++
	}

	s.logger.Info().Int("inserted", inserted).Msg("seeded demo catalog")
	return inserted, nil
}

// demoProducts is the fixed demonstration catalog inserted by Seed.
var demoProducts = []model.Product{
	{
		Title:       "AeroRun Pro Tee",
		Description: "Ultra-light breathable running t-shirt.",
		Price:       29.99,
		Category:    "Tops",
		Sport:       "Running",
		Brand:       "Fleet",
		Sizes:       []string{"S", "M", "L", "XL"},
		Colors:      []string{"Black", "Neon Green", "White"},
		Image:       "https://images.unsplash.com/photo-1554344058-0cf8f5d386df?q=80&w=1200&auto=format&fit=crop",
		InStock:     true,
		Stock:       50,
	},
	{
		Title:       "FlexStudio Yoga Leggings",
		Description: "High-stretch, squat-proof leggings.",
		Price:       49.0,
		Category:    "Bottoms",
		Sport:       "Yoga",
		Brand:       "ZenMotion",
		Sizes:       []string{"XS", "S", "M", "L"},
		Colors:      []string{"Navy", "Burgundy", "Charcoal"},
		Image:       "https://images.unsplash.com/photo-1549575810-39cc4b3a0224?q=80&w=1200&auto=format&fit=crop",
		InStock:     true,
		Stock:       35,
	},
	{
		Title:       "TrailGrip XT Shoes",
		Description: "All-terrain trail running shoes.",
		Price:       95.5,
		Category:    "Footwear",
		Sport:       "Running",
		Brand:       "Peak",
		Sizes:       []string{"7", "8", "9", "10", "11"},
		Colors:      []string{"Gray", "Orange"},
		Image:       "https://images.unsplash.com/photo-1542291026-7eec264c27ff?q=80&w=1200&auto=format&fit=crop",
		InStock:     true,
		Stock:       20,
	},
	{
		Title:       "ProShield Training Jacket",
		Description: "Wind-resistant, water-repellent shell.",
		Price:       79.0,
		Category:    "Outerwear",
		Sport:       "Football",
		Brand:       "Gridiron",
		Sizes:       []string{"M", "L", "XL"},
		Colors:      []string{"Olive", "Black"},
		Image:       "https://images.unsplash.com/photo-1540575467063-178a50c2df87?q=80&w=1200&auto=format&fit=crop",
		InStock:     true,
		Stock:       15,
	},
}
