package router

import (
	"github.com/labstack/echo/v4"

	"shopsync/internal/adapter/api/handler"
	"shopsync/internal/adapter/api/middleware"
)

func SetupOrderRouter(e *echo.Echo, orderHandler *handler.OrderHandler, authMiddleware *middleware.AuthMiddleware) {
	orderGroup := e.Group("/api/orders")
	orderGroup.Use(authMiddleware.Authenticate)

	orderGroup.GET("/:userId", orderHandler.ListOrders)
	orderGroup.POST("/:userId", orderHandler.PlaceOrder)
	orderGroup.POST("/:userId/:orderId/cancel", orderHandler.CancelOrder)
	orderGroup.POST("/:userId/:orderId/return", orderHandler.ReturnOrder)
}
