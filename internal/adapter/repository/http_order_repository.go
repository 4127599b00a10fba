package repository

import (
	"context"
	"net/http"

	"shopsync/internal/domain/entity"
	"shopsync/internal/domain/repository"
)

type httpOrderRepository struct {
	client *Client
}

func NewHTTPOrderRepository(client *Client) repository.OrderRemote {
	return &httpOrderRepository{
		client: client,
	}
}

type orderListPayload struct {
	Orders []entity.Order `json:"orders"`
}

type orderPayload struct {
	Order entity.Order `json:"order"`
}

func (r *httpOrderRepository) List(ctx context.Context, userID string) ([]entity.Order, error) {
	var payload orderListPayload
	if err := r.client.do(ctx, http.MethodGet, "/api/orders/"+userID, nil, &payload); err != nil {
		return nil, err
	}
	return payload.Orders, nil
}

func (r *httpOrderRepository) Place(ctx context.Context, userID string, address entity.ShippingAddress) (*entity.Order, error) {
	var payload orderPayload
	if err := r.client.do(ctx, http.MethodPost, "/api/orders/"+userID, address, &payload); err != nil {
		return nil, err
	}
	return &payload.Order, nil
}

func (r *httpOrderRepository) Cancel(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	var payload orderPayload
	if err := r.client.do(ctx, http.MethodPost, "/api/orders/"+userID+"/"+orderID+"/cancel", nil, &payload); err != nil {
		return nil, err
	}
	return &payload.Order, nil
}

func (r *httpOrderRepository) Return(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	var payload orderPayload
	if err := r.client.do(ctx, http.MethodPost, "/api/orders/"+userID+"/"+orderID+"/return", nil, &payload); err != nil {
		return nil, err
	}
	return &payload.Order, nil
}
