package router

import (
	"github.com/labstack/echo/v4"

	"shopsync/internal/adapter/api/handler"
	"shopsync/internal/adapter/api/middleware"
)

func SetupWishlistRouter(e *echo.Echo, wishlistHandler *handler.WishlistHandler, authMiddleware *middleware.AuthMiddleware) {
	// All wishlist endpoints require authentication
	wishlistGroup := e.Group("/api/wishlist")
	wishlistGroup.Use(authMiddleware.Authenticate)

	wishlistGroup.GET("/:userId", wishlistHandler.GetWishlist)
	wishlistGroup.POST("/:userId", wishlistHandler.Toggle)
}
