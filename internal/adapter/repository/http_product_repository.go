package repository

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"shopsync/internal/domain/entity"
	"shopsync/internal/domain/repository"
)

type httpProductRepository struct {
	client *Client
}

func NewHTTPProductRepository(client *Client) repository.ProductRemote {
	return &httpProductRepository{
		client: client,
	}
}

type productListPayload struct {
	Items []entity.Product `json:"items"`
	Total int64            `json:"total"`
}

func (r *httpProductRepository) List(ctx context.Context, query repository.ProductQuery) ([]entity.Product, int64, error) {
	params := url.Values{}
	if query.Search != "" {
		params.Set("search", query.Search)
	}
	if query.Category != "" {
		params.Set("category", query.Category)
	}
	if query.Page > 0 {
		params.Set("page", strconv.Itoa(query.Page))
	}
	if query.PageSize > 0 {
		params.Set("limit", strconv.Itoa(query.PageSize))
	}

	path := "/api/products"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var payload productListPayload
	if err := r.client.do(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return nil, 0, err
	}
	return payload.Items, payload.Total, nil
}

func (r *httpProductRepository) GetByID(ctx context.Context, productID string) (*entity.Product, error) {
	var product entity.Product
	if err := r.client.do(ctx, http.MethodGet, "/api/products/"+productID, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}
