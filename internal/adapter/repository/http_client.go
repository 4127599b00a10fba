package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"shopsync/pkg/errors"
)

// Client is the shared HTTP plumbing for every RemoteStore adapter: base
// URL, bearer token, envelope decoding. The token func is consulted per
// request so a refreshed session is picked up without rebuilding adapters.
type Client struct {
	baseURL string
	http    *http.Client
	token   func() string
}

func NewClient(baseURL string, timeout time.Duration, token func() string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		token:   token,
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// do issues one request and decodes the response envelope's data field
// into out. Non-2xx responses are mapped onto the application error
// taxonomy, carrying the backend's error code when one is present.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Internal("encode request body", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Internal("build request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		if token := c.token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.SyncFailed(fmt.Sprintf("%s %s", method, path), err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.SyncFailed("read response body", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return errors.SyncFailed("malformed response body", err)
		}
		return statusError(resp.StatusCode, "", "")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		code, message := "", ""
		if env.Error != nil {
			code, message = env.Error.Code, env.Error.Message
		}
		return statusError(resp.StatusCode, code, message)
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return errors.SyncFailed("malformed response data", err)
		}
	}
	return nil
}

func statusError(status int, code, message string) error {
	if message == "" {
		message = http.StatusText(status)
	}
	switch {
	case status == http.StatusUnauthorized:
		return errors.Unauthenticated(message, nil)
	case status == http.StatusNotFound:
		return errors.New("NOT_FOUND", message, status, nil)
	case status == http.StatusBadRequest:
		return errors.BadRequest(message, nil)
	case code != "":
		return errors.New(code, message, status, nil)
	default:
		return errors.SyncFailed(message, nil)
	}
}
