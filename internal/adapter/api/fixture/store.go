// Package fixture is the in-memory backend bundled for local development
// and integration tests. It implements the same HTTP contract the real
// storefront backend exposes, including the server-side behaviors the
// client must reconcile against: stock clamping on cart writes and
// wishlist membership toggling.
package fixture

import (
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"shopsync/internal/domain/entity"
	"shopsync/pkg/errors"
)

type user struct {
	ID       string
	Email    string
	Password string
}

type Store struct {
	mu         sync.Mutex
	signingKey []byte
	users      map[string]user
	products   map[string]entity.Product
	order      []string
	carts      map[string][]entity.CartLine
	wishlists  map[string][]string
	orders     map[string][]entity.Order
	now        func() time.Time
}

func NewStore(signingKey string) *Store {
	s := &Store{
		signingKey: []byte(signingKey),
		users:      make(map[string]user),
		products:   make(map[string]entity.Product),
		carts:      make(map[string][]entity.CartLine),
		wishlists:  make(map[string][]string),
		orders:     make(map[string][]entity.Order),
		now:        time.Now,
	}
	s.seed()
	return s
}

func (s *Store) seed() {
	s.users["demo@shopsync.dev"] = user{
		ID:       "user-demo",
		Email:    "demo@shopsync.dev",
		Password: "password",
	}

	for _, p := range []entity.Product{
		{ID: "sku-1", SellerID: "seller-1", Title: "Wireless Mouse", Description: "Ergonomic 2.4GHz mouse", Category: "electronics", Price: 24.99, Status: "active", Stock: 40},
		{ID: "sku-2", SellerID: "seller-1", Title: "Mechanical Keyboard", Description: "Tenkeyless, brown switches", Category: "electronics", Price: 89.00, Status: "active", Stock: 12},
		{ID: "sku-3", SellerID: "seller-2", Title: "Ceramic Mug", Description: "350ml stoneware mug", Category: "home", Price: 11.50, Status: "active", Stock: 200},
		{ID: "sku-4", SellerID: "seller-2", Title: "Desk Lamp", Description: "Dimmable LED lamp", Category: "home", Price: 32.00, Status: "active", Stock: 3},
		{ID: "sku-5", SellerID: "seller-3", Title: "Canvas Tote", Description: "Heavy cotton tote bag", Category: "fashion", Price: 18.00, Status: "active", Stock: 75},
	} {
		p.CreatedAt = s.now().UTC()
		p.UpdatedAt = p.CreatedAt
		s.products[p.ID] = p
		s.order = append(s.order, p.ID)
	}
}

func (s *Store) Login(email, password string) (token, userID string, err error) {
	s.mu.Lock()
	u, ok := s.users[strings.ToLower(email)]
	s.mu.Unlock()
	if !ok || u.Password != password {
		return "", "", errors.Unauthenticated("invalid credentials", nil)
	}

	claims := jwt.MapClaims{
		"sub":   u.ID,
		"email": u.Email,
		"exp":   s.now().Add(24 * time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return "", "", errors.Internal("sign token", err)
	}
	return signed, u.ID, nil
}

// VerifyToken checks the signature and expiry and returns the user ID.
func (s *Store) VerifyToken(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Unauthenticated("unexpected signing method", nil)
		}
		return s.signingKey, nil
	})
	if err != nil || !parsed.Valid {
		return "", errors.Unauthenticated("invalid or expired token", err)
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.Unauthenticated("invalid token claims", nil)
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", errors.Unauthenticated("token has no user identity", nil)
	}
	return sub, nil
}

func (s *Store) Products(search, category string, page, pageSize int) ([]entity.Product, int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	search = strings.ToLower(strings.TrimSpace(search))
	category = strings.ToLower(strings.TrimSpace(category))

	var matched []entity.Product
	for _, id := range s.order {
		p := s.products[id]
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if category != "" && strings.ToLower(p.Category) != category {
			continue
		}
		matched = append(matched, p)
	}

	total := int64(len(matched))
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	start := (page - 1) * pageSize
	if start >= len(matched) {
		return []entity.Product{}, total
	}
	end := start + pageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total
}

func (s *Store) Product(productID string) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[productID]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	return &p, nil
}

func (s *Store) Cart(userID string) []entity.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.CartLine{}, s.carts[userID]...)
}

// SetCartQuantity sets the absolute quantity for a product. A quantity at
// or below zero removes the line; anything above stock is clamped, which
// is exactly the canonical-state divergence the client has to reconcile.
func (s *Store) SetCartQuantity(userID, productID string, quantity int) ([]entity.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[productID]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}

	lines := s.carts[userID]
	if quantity <= 0 {
		kept := lines[:0]
		for _, line := range lines {
			if line.ProductID != productID {
				kept = append(kept, line)
			}
		}
		s.carts[userID] = kept
		return append([]entity.CartLine{}, kept...), nil
	}

	if quantity > product.Stock {
		quantity = product.Stock
	}
	updated := false
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity = quantity
			lines[i].UnitPrice = product.Price
			updated = true
			break
		}
	}
	if !updated {
		lines = append(lines, entity.CartLine{
			ProductID: productID,
			Quantity:  quantity,
			UnitPrice: product.Price,
		})
	}
	s.carts[userID] = lines
	return append([]entity.CartLine{}, lines...), nil
}

func (s *Store) Wishlist(userID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.wishlists[userID]...)
}

func (s *Store) ToggleWishlist(userID, productID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[productID]; !ok {
		return nil, errors.NotFound("Product", nil)
	}

	items := s.wishlists[userID]
	kept := items[:0]
	removed := false
	for _, id := range items {
		if id == productID {
			removed = true
			continue
		}
		kept = append(kept, id)
	}
	if !removed {
		kept = append(kept, productID)
	}
	s.wishlists[userID] = kept
	return append([]string{}, kept...), nil
}

func (s *Store) Orders(userID string) []entity.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Order{}, s.orders[userID]...)
}

func (s *Store) PlaceOrder(userID string, address entity.ShippingAddress) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	if len(lines) == 0 {
		return nil, errors.BadRequest("cart is empty", nil)
	}

	total := 0.0
	items := make([]entity.CartLine, len(lines))
	for i, line := range lines {
		if p, ok := s.products[line.ProductID]; ok {
			line.UnitPrice = p.Price
		}
		items[i] = line
		total += float64(line.Quantity) * line.UnitPrice
	}

	order := entity.Order{
		ID:        uuid.NewString(),
		UserID:    userID,
		Items:     items,
		Total:     total,
		Status:    entity.OrderStatusPending,
		Address:   address,
		CreatedAt: s.now().UTC(),
	}
	s.orders[userID] = append(s.orders[userID], order)
	s.carts[userID] = nil
	return &order, nil
}

func (s *Store) CancelOrder(userID, orderID string) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := s.orders[userID]
	for i := range orders {
		if orders[i].ID != orderID {
			continue
		}
		if !orders[i].Cancellable() {
			return nil, errors.Conflict("order can no longer be cancelled")
		}
		orders[i].Status = entity.OrderStatusCancelled
		order := orders[i]
		return &order, nil
	}
	return nil, errors.NotFound("Order", nil)
}

func (s *Store) ReturnOrder(userID, orderID string) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := s.orders[userID]
	for i := range orders {
		if orders[i].ID != orderID {
			continue
		}
		if !orders[i].Returnable(s.now()) {
			return nil, errors.Conflict("order is outside the return window")
		}
		orders[i].Status = entity.OrderStatusReturned
		order := orders[i]
		return &order, nil
	}
	return nil, errors.NotFound("Order", nil)
}

// MarkDelivered is a development helper so the return flow can be
// exercised without a real fulfillment pipeline.
func (s *Store) MarkDelivered(userID, orderID string, at time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := s.orders[userID]
	for i := range orders {
		if orders[i].ID == orderID {
			delivered := at.UTC()
			orders[i].Status = entity.OrderStatusDelivered
			orders[i].DeliveredAt = &delivered
			return true
		}
	}
	return false
}
