// Package financeapi is the HTTP adapter for the external finance backend,
// the single source of truth for documents and the sole mutation surface
// this service calls.
package financeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/theCrudify/kpin-approval/internal/apperrors"
	portsclients "github.com/theCrudify/kpin-approval/internal/core/ports/clients"
	"github.com/theCrudify/kpin-approval/internal/middleware"
)

// envelope is the response wrapper the finance backend uses on every route.
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client calls the finance backend over HTTP. The configured timeout bounds
// every round-trip; timeouts surface as *apperrors.TransportError and are
// never retried here.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a finance backend client. timeout bounds each request.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

var _ portsclients.FinanceClient = (*Client)(nil)

// do performs one request and decodes the envelope. Non-2xx responses and
// envelope-level failures map to *apperrors.RemoteError; anything that
// prevents a complete round-trip maps to *apperrors.TransportError.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := middleware.GetAuthTokenFromCtx(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &apperrors.TransportError{Cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &apperrors.TransportError{Cause: err}
	}

	var env envelope
	if len(raw) > 0 {
		// A malformed body on an error status still carries the status code;
		// only fail decode on success responses.
		if err := json.Unmarshal(raw, &env); err != nil && resp.StatusCode < 300 {
			return fmt.Errorf("failed to decode response from %s %s: %w", method, path, err)
		}
	}

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, path)
	}
	if resp.StatusCode >= 300 || (len(raw) > 0 && !env.Status) {
		message := env.Message
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return &apperrors.RemoteError{StatusCode: resp.StatusCode, Message: message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data from %s %s: %w", method, path, err)
		}
	}
	return nil
}
