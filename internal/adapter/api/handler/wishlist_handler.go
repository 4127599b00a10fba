package handler

import (
	"shopsync/internal/adapter/api/fixture"
	"shopsync/pkg/errors"
	"shopsync/pkg/response"

	"github.com/labstack/echo/v4"
)

type WishlistHandler struct {
	store *fixture.Store
}

func NewWishlistHandler(store *fixture.Store) *WishlistHandler {
	return &WishlistHandler{
		store: store,
	}
}

type toggleWishlistRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

func (h *WishlistHandler) GetWishlist(c echo.Context) error {
	userID, err := requireOwnUser(c)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string][]string{
		"items": h.store.Wishlist(userID),
	})
}

// Toggle flips membership: present becomes absent and vice versa. The
// response is the canonical membership after the flip.
func (h *WishlistHandler) Toggle(c echo.Context) error {
	userID, err := requireOwnUser(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req toggleWishlistRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	items, err := h.store.ToggleWishlist(userID, req.ProductID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string][]string{
		"items": items,
	})
}
