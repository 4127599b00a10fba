package repository

import (
	"context"
	"net/http"

	"shopsync/internal/domain/repository"
)

type httpAuthRepository struct {
	client *Client
}

func NewHTTPAuthRepository(client *Client) repository.AuthRemote {
	return &httpAuthRepository{
		client: client,
	}
}

type loginPayload struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

func (r *httpAuthRepository) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}
	var payload loginPayload
	if err := r.client.do(ctx, http.MethodPost, "/api/auth/login", body, &payload); err != nil {
		return "", err
	}
	return payload.Token, nil
}
