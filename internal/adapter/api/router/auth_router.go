package router

import (
	"github.com/labstack/echo/v4"

	"shopsync/internal/adapter/api/handler"
)

func SetupAuthRouter(e *echo.Echo, authHandler *handler.AuthHandler) {
	e.POST("/api/auth/login", authHandler.Login)
}
