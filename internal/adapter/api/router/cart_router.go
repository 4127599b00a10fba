package router

import (
	"github.com/labstack/echo/v4"

	"shopsync/internal/adapter/api/handler"
	"shopsync/internal/adapter/api/middleware"
)

func SetupCartRouter(e *echo.Echo, cartHandler *handler.CartHandler, authMiddleware *middleware.AuthMiddleware) {
	// All cart endpoints require authentication
	cartGroup := e.Group("/api/cart")
	cartGroup.Use(authMiddleware.Authenticate)

	cartGroup.GET("/:userId", cartHandler.GetCart)
	cartGroup.PUT("/:userId", cartHandler.SetQuantity)
}
