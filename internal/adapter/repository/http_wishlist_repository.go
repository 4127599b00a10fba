package repository

import (
	"context"
	"net/http"

	"shopsync/internal/domain/repository"
)

type httpWishlistRepository struct {
	client *Client
}

func NewHTTPWishlistRepository(client *Client) repository.WishlistRemote {
	return &httpWishlistRepository{
		client: client,
	}
}

type wishlistPayload struct {
	Items []string `json:"items"`
}

func (r *httpWishlistRepository) Get(ctx context.Context, userID string) ([]string, error) {
	var payload wishlistPayload
	if err := r.client.do(ctx, http.MethodGet, "/api/wishlist/"+userID, nil, &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}

func (r *httpWishlistRepository) Toggle(ctx context.Context, userID, productID string) ([]string, error) {
	body := map[string]string{
		"productId": productID,
	}
	var payload wishlistPayload
	if err := r.client.do(ctx, http.MethodPost, "/api/wishlist/"+userID, body, &payload); err != nil {
		return nil, err
	}
	if payload.Items == nil {
		// An emptied wishlist is still a canonical answer.
		return []string{}, nil
	}
	return payload.Items, nil
}
