package handler

import (
	"shopsync/internal/adapter/api/fixture"
	"shopsync/pkg/errors"
	"shopsync/pkg/response"
	"shopsync/pkg/utils"

	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	store *fixture.Store
}

func NewProductHandler(store *fixture.Store) *ProductHandler {
	return &ProductHandler{
		store: store,
	}
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	query := utils.GetCatalogQuery(c)

	items, total := h.store.Products(
		query.Search,
		query.Category,
		query.Page,
		query.PageSize,
	)

	return response.Paginated(c, items, total, query.Page, query.PageSize)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID := c.Param("productId")
	if productID == "" {
		return response.Error(c, errors.BadRequest("Product ID is required", nil))
	}

	product, err := h.store.Product(productID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}
