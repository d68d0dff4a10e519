package api

import (
	"context"

	"github.com/aatumaykin/cronclaw/internal/constants"
)

// Status returns the account + gateway health summary.
func (c *Client) Status(ctx context.Context) (*Status, error) {
	var status Status
	if err := c.get(ctx, constants.RouteStatus, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Plan returns the current plan and its limits.
func (c *Client) Plan(ctx context.Context) (*Plan, error) {
	var plan Plan
	if err := c.get(ctx, constants.RoutePlan, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// Usage returns run counters against the plan limits.
func (c *Client) Usage(ctx context.Context) (*Usage, error) {
	var usage Usage
	if err := c.get(ctx, constants.RouteUsage, &usage); err != nil {
		return nil, err
	}
	return &usage, nil
}
