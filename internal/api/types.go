package api

import "time"

// Job is the server-side job record. The client only carries its JSON
// shape; relational invariants live on the server.
type Job struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Cron            string            `json:"cron"`
	Message         string            `json:"message,omitempty"`
	IntegrationType string            `json:"integrationType"`
	Agent           string            `json:"agent,omitempty"`
	Channel         string            `json:"channel,omitempty"`
	Deliver         string            `json:"deliver,omitempty"`
	ReplyTo         string            `json:"replyTo,omitempty"`
	WebhookURL      string            `json:"webhookUrl,omitempty"`
	WebhookMethod   string            `json:"webhookMethod,omitempty"`
	WebhookHeaders  map[string]string `json:"webhookHeaders,omitempty"`
	WebhookBody     string            `json:"webhookBody,omitempty"`
	Timezone        string            `json:"timezone,omitempty"`
	Enabled         bool              `json:"enabled"`
	RunCount        int               `json:"runCount"`
	FailCount       int               `json:"failCount"`
	LastRunAt       *time.Time        `json:"lastRunAt,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	Source          string            `json:"source,omitempty"`
}

// CreateJobRequest is the payload for POST /v1/jobs.
type CreateJobRequest struct {
	Name            string            `json:"name"`
	Cron            string            `json:"cron"`
	Message         string            `json:"message,omitempty"`
	IntegrationType string            `json:"integrationType"`
	Agent           string            `json:"agent,omitempty"`
	Channel         string            `json:"channel,omitempty"`
	Deliver         string            `json:"deliver,omitempty"`
	ReplyTo         string            `json:"replyTo,omitempty"`
	WebhookURL      string            `json:"webhookUrl,omitempty"`
	WebhookMethod   string            `json:"webhookMethod,omitempty"`
	WebhookHeaders  map[string]string `json:"webhookHeaders,omitempty"`
	WebhookBody     string            `json:"webhookBody,omitempty"`
	Timezone        string            `json:"timezone,omitempty"`
	Enabled         *bool             `json:"enabled,omitempty"`
}

// UpdateJobRequest is the partial-update payload for PATCH /v1/jobs/{id}.
// Nil fields are left untouched by the server.
type UpdateJobRequest struct {
	Name           *string            `json:"name,omitempty"`
	Cron           *string            `json:"cron,omitempty"`
	Message        *string            `json:"message,omitempty"`
	Agent          *string            `json:"agent,omitempty"`
	Channel        *string            `json:"channel,omitempty"`
	Deliver        *string            `json:"deliver,omitempty"`
	ReplyTo        *string            `json:"replyTo,omitempty"`
	WebhookURL     *string            `json:"webhookUrl,omitempty"`
	WebhookMethod  *string            `json:"webhookMethod,omitempty"`
	WebhookHeaders *map[string]string `json:"webhookHeaders,omitempty"`
	WebhookBody    *string            `json:"webhookBody,omitempty"`
	Timezone       *string            `json:"timezone,omitempty"`
}

// Status is the account + gateway health summary from GET /v1/status.
type Status struct {
	Account struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Plan  string `json:"plan"`
	} `json:"account"`
	Gateway struct {
		URL        string     `json:"url,omitempty"`
		Connected  bool       `json:"connected"`
		LastSeenAt *time.Time `json:"lastSeenAt,omitempty"`
	} `json:"gateway"`
	JobCount int `json:"jobCount"`
}

// Plan describes the account plan and its limits.
type Plan struct {
	Name            string `json:"name"`
	MaxJobs         int    `json:"maxJobs"`
	MaxRunsPerMonth int    `json:"maxRunsPerMonth"`
	SyncTrigger     bool   `json:"syncTrigger"`
}

// Usage reports consumption against the plan limits.
type Usage struct {
	JobCount       int        `json:"jobCount"`
	RunsThisMonth  int        `json:"runsThisMonth"`
	FailsThisMonth int        `json:"failsThisMonth"`
	PeriodStart    *time.Time `json:"periodStart,omitempty"`
}

// Gateway is the registered gateway bridge record.
type Gateway struct {
	URL        string     `json:"url"`
	Connected  bool       `json:"connected"`
	LastSeenAt *time.Time `json:"lastSeenAt,omitempty"`
}

// GatewayTestResult is the outcome of POST /v1/gateway/test.
type GatewayTestResult struct {
	OK        bool   `json:"ok"`
	LatencyMs int    `json:"latencyMs"`
	Error     string `json:"error,omitempty"`
}

// APIKey is a server-side API key record. Secret is only present in the
// create response and never returned again.
type APIKey struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Secret     string     `json:"secret,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
}
