package entity

import (
	"time"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
	OrderStatusReturned   = "returned"
)

// ReturnWindow is how long after delivery a return may be requested.
const ReturnWindow = 14 * 24 * time.Hour

type ShippingAddress struct {
	Name       string `json:"name" validate:"required"`
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required,min=4"`
	Country    string `json:"country" validate:"required"`
	Phone      string `json:"phone" validate:"required,min=7"`
}

type Order struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Items       []CartLine      `json:"items"`
	Total       float64         `json:"total"`
	Status      string          `json:"status"`
	Address     ShippingAddress `json:"address"`
	CreatedAt   time.Time       `json:"created_at"`
	DeliveredAt *time.Time      `json:"delivered_at,omitempty"`
}

// Cancellable reports whether the order can still be cancelled. Once the
// order ships, only the return flow applies.
func (o Order) Cancellable() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusProcessing
}

// Returnable reports whether a return may be requested at the given time.
func (o Order) Returnable(now time.Time) bool {
	if o.Status != OrderStatusDelivered || o.DeliveredAt == nil {
		return false
	}
	return now.Sub(*o.DeliveredAt) <= ReturnWindow
}
