package constants

import "time"

// DefaultAPIURL is the hosted service endpoint used when no override is configured
const DefaultAPIURL = "https://api.cronclaw.dev"

// HTTPTimeout is the per-request timeout for API calls
const HTTPTimeout = 30 * time.Second

// Sync trigger polling. The server owns the run; the client only watches
// lastRunAt until the run shows up or the wait window closes.
const (
	// PollInterval is the delay between job list polls after a sync trigger
	PollInterval = 2 * time.Second

	// PollMaxAttempts caps the poll loop at 5 minutes total
	PollMaxAttempts = 150

	// PollRunWindow is how recent lastRunAt must be to attribute the run to this trigger
	PollRunWindow = 30 * time.Second
)

// MaxNameLength is the maximum job name length accepted by the server
const MaxNameLength = 100

// MaxMessageLength is the maximum message length accepted by the server
const MaxMessageLength = 4096
