// Package api assembles the bundled development backend: an echo server
// implementing the storefront HTTP contract over the in-memory fixture
// store. Integration tests run the client against this same server.
package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"shopsync/internal/adapter/api/fixture"
	"shopsync/internal/adapter/api/handler"
	apimiddleware "shopsync/internal/adapter/api/middleware"
	"shopsync/internal/adapter/api/router"
)

func NewServer(store *fixture.Store) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.Validator = NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(store)

	router.Setup(
		e,
		handler.NewAuthHandler(store),
		handler.NewProductHandler(store),
		handler.NewCartHandler(store),
		handler.NewWishlistHandler(store),
		handler.NewOrderHandler(store),
		handler.NewHealthHandler(),
		authMiddleware,
	)

	return e
}
