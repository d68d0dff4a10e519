package api

import (
	"context"

	"github.com/aatumaykin/cronclaw/internal/constants"
)

// SetGateway registers the user-operated gateway bridge URL.
func (c *Client) SetGateway(ctx context.Context, gatewayURL string) (*Gateway, error) {
	body := map[string]string{"url": gatewayURL}
	var gw Gateway
	if err := c.put(ctx, constants.RouteGateway, body, &gw); err != nil {
		return nil, err
	}
	return &gw, nil
}

// Gateway returns the registered gateway record.
func (c *Client) Gateway(ctx context.Context) (*Gateway, error) {
	var gw Gateway
	if err := c.get(ctx, constants.RouteGateway, &gw); err != nil {
		return nil, err
	}
	return &gw, nil
}

// TestGateway asks the server to round-trip a probe through the gateway.
func (c *Client) TestGateway(ctx context.Context) (*GatewayTestResult, error) {
	var result GatewayTestResult
	if err := c.post(ctx, constants.RouteGatewayTest, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
