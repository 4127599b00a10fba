package entity

// CartLine is one product entry in the cart. UnitPrice is a cached display
// value only; billing is recomputed server-side at checkout.
type CartLine struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price,omitempty"`
}
