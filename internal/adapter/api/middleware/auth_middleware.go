package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"shopsync/internal/adapter/api/fixture"
)

type AuthMiddleware struct {
	store *fixture.Store
}

func NewAuthMiddleware(store *fixture.Store) *AuthMiddleware {
	return &AuthMiddleware{
		store: store,
	}
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		userID, err := m.store.VerifyToken(parts[1])
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set("uid", userID)
		return next(c)
	}
}
