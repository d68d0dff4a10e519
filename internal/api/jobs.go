package api

import (
	"context"

	"github.com/aatumaykin/cronclaw/internal/constants"
)

// ListJobs returns all jobs of the account.
func (c *Client) ListJobs(ctx context.Context) ([]Job, error) {
	var jobs []Job
	if err := c.get(ctx, constants.RouteJobs, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetJob returns a single job by scanning the list. The server contract
// has no per-job read endpoint.
func (c *Client) GetJob(ctx context.Context, jobID string) (*Job, error) {
	jobs, err := c.ListJobs(ctx)
	if err != nil {
		return nil, err
	}
	for i := range jobs {
		if jobs[i].ID == jobID {
			return &jobs[i], nil
		}
	}
	return nil, &APIError{StatusCode: 404, Code: "not_found", Message: "job " + jobID + " not found"}
}

// CreateJob creates a new job.
func (c *Client) CreateJob(ctx context.Context, req CreateJobRequest) (*Job, error) {
	var job Job
	if err := c.post(ctx, constants.RouteJobs, req, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// UpdateJob applies a partial update.
func (c *Client) UpdateJob(ctx context.Context, jobID string, req UpdateJobRequest) (*Job, error) {
	var job Job
	if err := c.patch(ctx, constants.RouteJobs+"/"+jobID, req, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// DeleteJob removes a job.
func (c *Client) DeleteJob(ctx context.Context, jobID string) error {
	return c.delete(ctx, constants.RouteJobs+"/"+jobID)
}

// TriggerJob asks the server to run a job now. The run itself happens
// server-side; idempotencyKey lets the server drop a duplicate trigger.
func (c *Client) TriggerJob(ctx context.Context, jobID, idempotencyKey string) error {
	body := map[string]string{}
	if idempotencyKey != "" {
		body["idempotencyKey"] = idempotencyKey
	}
	return c.post(ctx, constants.RouteJobs+"/"+jobID+"/trigger", body, nil)
}

// EnableJob turns scheduling on for a job.
func (c *Client) EnableJob(ctx context.Context, jobID string) (*Job, error) {
	var job Job
	if err := c.post(ctx, constants.RouteJobs+"/"+jobID+"/enable", nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// DisableJob turns scheduling off for a job.
func (c *Client) DisableJob(ctx context.Context, jobID string) (*Job, error) {
	var job Job
	if err := c.post(ctx, constants.RouteJobs+"/"+jobID+"/disable", nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}
