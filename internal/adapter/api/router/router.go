package router

import (
	"github.com/labstack/echo/v4"

	"shopsync/internal/adapter/api/handler"
	"shopsync/internal/adapter/api/middleware"
)

func Setup(
	e *echo.Echo,
	authHandler *handler.AuthHandler,
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	wishlistHandler *handler.WishlistHandler,
	orderHandler *handler.OrderHandler,
	healthHandler *handler.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	SetupAuthRouter(e, authHandler)
	SetupProductRouter(e, productHandler)
	SetupCartRouter(e, cartHandler, authMiddleware)
	SetupWishlistRouter(e, wishlistHandler, authMiddleware)
	SetupOrderRouter(e, orderHandler, authMiddleware)
	SetupHealthRouter(e, healthHandler)
}
