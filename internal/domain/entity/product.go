package entity

import (
	"time"
)

type Product struct {
	ID          string    `json:"id"`
	SellerID    string    `json:"seller_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Images      []string  `json:"images,omitempty"`
	Status      string    `json:"status"`
	Stock       int       `json:"stock"`
	SoldCount   int       `json:"sold_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
