package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product represents a sportswear product document in the "product"
// collection. The ObjectID marshals to its hex form in JSON, so clients only
// ever see a string "id" field.
type Product struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64            `json:"price" bson:"price"`
	Category    string             `json:"category" bson:"category"`
	Sport       string             `json:"sport" bson:"sport"`
	Brand       string             `json:"brand,omitempty" bson:"brand,omitempty"`
	Sizes       []string           `json:"sizes" bson:"sizes"`
	Colors      []string           `json:"colors" bson:"colors"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	InStock     bool               `json:"in_stock" bson:"in_stock"`
	Stock       int                `json:"stock" bson:"stock"`
}

// ProductRequest is the payload accepted by POST /api/products. Numeric
// fields that legitimately hold zero are pointers so that "missing" and "0"
// validate differently.
type ProductRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Category    string   `json:"category" validate:"required"`
	Sport       string   `json:"sport" validate:"required"`
	Brand       string   `json:"brand"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	Image       string   `json:"image"`
	InStock     *bool    `json:"in_stock"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
}

// ToProduct converts a validated request into a document, applying defaults
// for omitted fields: in_stock true, stock 0, sizes/colors empty lists.
func (r *ProductRequest) ToProduct() *Product {
	p := &Product{
		Title:       r.Title,
		Description: r.Description,
		Price:       *r.Price,
		Category:    r.Category,
		Sport:       r.Sport,
		Brand:       r.Brand,
		Sizes:       r.Sizes,
		Colors:      r.Colors,
		Image:       r.Image,
		InStock:     true,
		Stock:       0,
	}

	if r.InStock != nil {
		p.InStock = *r.InStock
	}
	if r.Stock != nil {
		p.Stock = *r.Stock
	}
	if p.Sizes == nil {
		p.Sizes = []string{}
	}
	if p.Colors == nil {
		p.Colors = []string{}
	}

	return p
}

// ProductFilter holds the optional list-endpoint filters. Zero-value fields
// impose no constraint; set fields are AND-combined.
type ProductFilter struct {
	Category string // exact match
	Sport    string // exact match
	Query    string // case-insensitive pattern match against title
}
