package financeapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/theCrudify/kpin-approval/internal/core/domain"
	portsclients "github.com/theCrudify/kpin-approval/internal/core/ports/clients"
)

// GetDocument fetches one document. The result is authoritative and is not
// cached anywhere in this service.
func (c *Client) GetDocument(ctx context.Context, documentID string) (*domain.Document, error) {
	var doc domain.Document
	path := fmt.Sprintf("/documents/%s", url.PathEscape(documentID))
	if err := c.do(ctx, http.MethodGet, path, nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// SendTransition posts one approval action to the status-update endpoint.
func (c *Client) SendTransition(ctx context.Context, documentID string, payload portsclients.TransitionPayload) error {
	path := fmt.Sprintf("/documents/%s/status", url.PathEscape(documentID))
	return c.do(ctx, http.MethodPost, path, payload, nil)
}
