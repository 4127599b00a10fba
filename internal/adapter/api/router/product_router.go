package router

import (
	"github.com/labstack/echo/v4"

	"shopsync/internal/adapter/api/handler"
)

func SetupProductRouter(e *echo.Echo, productHandler *handler.ProductHandler) {
	e.GET("/api/products", productHandler.ListProducts)
	e.GET("/api/products/:productId", productHandler.GetProduct)
}
