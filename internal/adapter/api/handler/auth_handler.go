package handler

import (
	"shopsync/internal/adapter/api/fixture"
	"shopsync/pkg/errors"
	"shopsync/pkg/response"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	store *fixture.Store
}

func NewAuthHandler(store *fixture.Store) *AuthHandler {
	return &AuthHandler{
		store: store,
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	token, userID, err := h.store.Login(req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"token":   token,
		"user_id": userID,
	})
}
