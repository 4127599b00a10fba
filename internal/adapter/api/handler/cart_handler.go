package handler

import (
	"shopsync/internal/adapter/api/fixture"
	"shopsync/internal/domain/entity"
	"shopsync/pkg/errors"
	"shopsync/pkg/response"

	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	store *fixture.Store
}

func NewCartHandler(store *fixture.Store) *CartHandler {
	return &CartHandler{
		store: store,
	}
}

type setQuantityRequest struct {
	Product  string `json:"product" validate:"required"`
	Quantity int    `json:"quantity"`
}

type cartItem struct {
	Product   string  `json:"product"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price,omitempty"`
}

type cartBody struct {
	Items []cartItem `json:"items"`
}

func (h *CartHandler) GetCart(c echo.Context) error {
	userID, err := requireOwnUser(c)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]cartBody{
		"cart": toCartBody(h.store.Cart(userID)),
	})
}

// SetQuantity interprets the body as an absolute target quantity; a value
// at or below zero removes the line.
func (h *CartHandler) SetQuantity(c echo.Context) error {
	userID, err := requireOwnUser(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req setQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	lines, err := h.store.SetCartQuantity(userID, req.Product, req.Quantity)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]cartBody{
		"cart": toCartBody(lines),
	})
}

func toCartBody(lines []entity.CartLine) cartBody {
	items := make([]cartItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, cartItem{
			Product:   line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}
	return cartBody{Items: items}
}

// requireOwnUser checks that the authenticated user matches the path, so
// one account cannot read or write another account's cart.
func requireOwnUser(c echo.Context) (string, error) {
	uid, _ := c.Get("uid").(string)
	userID := c.Param("userId")
	if userID == "" {
		return "", errors.BadRequest("User ID is required", nil)
	}
	if uid != userID {
		return "", errors.Forbidden("Cannot access another user's data", nil)
	}
	return userID, nil
}
