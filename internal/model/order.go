package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatusPending is the default status assigned to new orders. Status is
// free-form text; pending/paid/shipped/delivered/cancelled are conventional
// values, but nothing is enforced.
const OrderStatusPending = "pending"

// OrderItem is a line item embedded in an order. The product reference is
// kept as text and is not checked against the product collection.
type OrderItem struct {
	ProductID string `json:"product_id" bson:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" bson:"quantity" validate:"required,min=1"`
	Size      string `json:"size,omitempty" bson:"size,omitempty"`
	Color     string `json:"color,omitempty" bson:"color,omitempty"`
}

// CustomerInfo holds the shipping details embedded in an order.
type CustomerInfo struct {
	Name       string `json:"name" bson:"name" validate:"required"`
	Email      string `json:"email" bson:"email" validate:"required,email"`
	Address    string `json:"address" bson:"address" validate:"required"`
	City       string `json:"city" bson:"city" validate:"required"`
	Country    string `json:"country" bson:"country" validate:"required"`
	PostalCode string `json:"postal_code" bson:"postal_code" validate:"required"`
}

// Order represents a placed purchase in the "order" collection.
type Order struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Items    []OrderItem        `json:"items" bson:"items"`
	Customer CustomerInfo       `json:"customer" bson:"customer"`
	Subtotal float64            `json:"subtotal" bson:"subtotal"`
	Shipping float64            `json:"shipping" bson:"shipping"`
	Total    float64            `json:"total" bson:"total"`
	Status   string             `json:"status" bson:"status"`
	PlacedAt *time.Time         `json:"placed_at,omitempty" bson:"placed_at,omitempty"`
}

// OrderRequest is the payload accepted by POST /api/orders. The caller
// supplies subtotal, shipping, and total independently; no relationship
// between them is enforced.
type OrderRequest struct {
	Items    []OrderItem  `json:"items" validate:"dive"`
	Customer CustomerInfo `json:"customer"`
	Subtotal *float64     `json:"subtotal" validate:"required,gte=0"`
	Shipping *float64     `json:"shipping" validate:"required,gte=0"`
	Total    *float64     `json:"total" validate:"required,gte=0"`
	Status   string       `json:"status"`
	PlacedAt *time.Time   `json:"placed_at"`
}

// ToOrder converts a validated request into a document, defaulting status to
// pending and items to an empty list.
func (r *OrderRequest) ToOrder() *Order {
	o := &Order{
		Items:    r.Items,
		Customer: r.Customer,
		Subtotal: *r.Subtotal,
		Shipping: *r.Shipping,
		Total:    *r.Total,
		Status:   r.Status,
		PlacedAt: r.PlacedAt,
	}

	if o.Items == nil {
		o.Items = []OrderItem{}
	}
	if o.Status == "" {
		o.Status = OrderStatusPending
	}

	return o
}
