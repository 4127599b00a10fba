package repository

import (
	"context"
	"net/http"

	"shopsync/internal/domain/entity"
	"shopsync/internal/domain/repository"
)

type httpCartRepository struct {
	client *Client
}

func NewHTTPCartRepository(client *Client) repository.CartRemote {
	return &httpCartRepository{
		client: client,
	}
}

type cartItem struct {
	Product   string  `json:"product"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price,omitempty"`
}

type cartPayload struct {
	Cart struct {
		Items []cartItem `json:"items"`
	} `json:"cart"`
}

func (r *httpCartRepository) Get(ctx context.Context, userID string) ([]entity.CartLine, error) {
	var payload cartPayload
	if err := r.client.do(ctx, http.MethodGet, "/api/cart/"+userID, nil, &payload); err != nil {
		return nil, err
	}
	return toCartLines(payload), nil
}

func (r *httpCartRepository) SetQuantity(ctx context.Context, userID, productID string, quantity int) ([]entity.CartLine, error) {
	body := map[string]interface{}{
		"product":  productID,
		"quantity": quantity,
	}
	var payload cartPayload
	if err := r.client.do(ctx, http.MethodPut, "/api/cart/"+userID, body, &payload); err != nil {
		return nil, err
	}
	return toCartLines(payload), nil
}

func toCartLines(payload cartPayload) []entity.CartLine {
	lines := make([]entity.CartLine, 0, len(payload.Cart.Items))
	for _, item := range payload.Cart.Items {
		lines = append(lines, entity.CartLine{
			ProductID: item.Product,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return lines
}
