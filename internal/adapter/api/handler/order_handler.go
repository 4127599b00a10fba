package handler

import (
	"shopsync/internal/adapter/api/fixture"
	"shopsync/internal/domain/entity"
	"shopsync/pkg/errors"
	"shopsync/pkg/response"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	store *fixture.Store
}

func NewOrderHandler(store *fixture.Store) *OrderHandler {
	return &OrderHandler{
		store: store,
	}
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, err := requireOwnUser(c)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string][]entity.Order{
		"orders": h.store.Orders(userID),
	})
}

func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	userID, err := requireOwnUser(c)
	if err != nil {
		return response.Error(c, err)
	}

	var address entity.ShippingAddress
	if err := c.Bind(&address); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&address); err != nil {
		return response.Error(c, err)
	}

	order, err := h.store.PlaceOrder(userID, address)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, map[string]*entity.Order{
		"order": order,
	})
}

func (h *OrderHandler) CancelOrder(c echo.Context) error {
	userID, err := requireOwnUser(c)
	if err != nil {
		return response.Error(c, err)
	}

	order, err := h.store.CancelOrder(userID, c.Param("orderId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]*entity.Order{
		"order": order,
	})
}

func (h *OrderHandler) ReturnOrder(c echo.Context) error {
	userID, err := requireOwnUser(c)
	if err != nil {
		return response.Error(c, err)
	}

	order, err := h.store.ReturnOrder(userID, c.Param("orderId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]*entity.Order{
		"order": order,
	})
}
