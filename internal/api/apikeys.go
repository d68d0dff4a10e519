package api

import (
	"context"

	"github.com/aatumaykin/cronclaw/internal/constants"
)

// ListAPIKeys returns all API keys of the account. Secrets are never
// included in list responses.
func (c *Client) ListAPIKeys(ctx context.Context) ([]APIKey, error) {
	var keys []APIKey
	if err := c.get(ctx, constants.RouteAPIKeys, &keys); err != nil {
		return nil, err
	}
	return keys, nil
}

// CreateAPIKey creates a named key. The response carries the secret once.
func (c *Client) CreateAPIKey(ctx context.Context, name string) (*APIKey, error) {
	body := map[string]string{"name": name}
	var key APIKey
	if err := c.post(ctx, constants.RouteAPIKeys, body, &key); err != nil {
		return nil, err
	}
	return &key, nil
}

// RevokeAPIKey revokes a key by ID.
func (c *Client) RevokeAPIKey(ctx context.Context, keyID string) error {
	return c.delete(ctx, constants.RouteAPIKeys+"/"+keyID)
}
