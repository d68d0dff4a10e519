package api

import (
	"context"
	"time"

	"github.com/aatumaykin/cronclaw/internal/constants"
	"github.com/aatumaykin/cronclaw/internal/logger"
)

// RunState is the verdict of a synchronous trigger wait.
type RunState string

const (
	// RunSuccess means a fresh run was observed with no failures.
	RunSuccess RunState = "success"

	// RunFailed means a fresh run was observed and failCount is nonzero.
	RunFailed RunState = "failed"

	// RunTimeout means no fresh run was observed inside the wait window.
	RunTimeout RunState = "timeout"
)

// RunOutcome reports what the poll loop observed.
type RunOutcome struct {
	State     RunState
	Job       *Job
	FailCount int
}

// PollConfig tunes the wait loop. The zero value uses the service
// defaults (2s interval, 150 attempts, 30s attribution window).
type PollConfig struct {
	Interval    time.Duration
	MaxAttempts int
	RunWindow   time.Duration
}

func (p PollConfig) withDefaults() PollConfig {
	if p.Interval <= 0 {
		p.Interval = constants.PollInterval
	}
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = constants.PollMaxAttempts
	}
	if p.RunWindow <= 0 {
		p.RunWindow = constants.PollRunWindow
	}
	return p
}

// WaitForRun polls the job list after a trigger until the job shows a
// recent lastRunAt or the attempt budget runs out. A run is attributed to
// this trigger when lastRunAt falls within RunWindow of the poll time;
// a concurrent unrelated trigger inside that window is indistinguishable
// and will be picked up instead. Cancelling ctx stops the wait, not the
// server-side run.
func (c *Client) WaitForRun(ctx context.Context, jobID string, cfg PollConfig) (*RunOutcome, error) {
	cfg = cfg.withDefaults()

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}

		job, err := c.GetJob(ctx, jobID)
		if err != nil {
			return nil, err
		}

		c.log.Debug("poll attempt",
			logger.Field{Key: "job_id", Value: jobID},
			logger.Field{Key: "attempt", Value: attempt},
			logger.Field{Key: "last_run_at", Value: job.LastRunAt},
		)

		if job.LastRunAt == nil {
			continue
		}
		if time.Since(*job.LastRunAt) > cfg.RunWindow {
			continue
		}

		outcome := &RunOutcome{
			Job:       job,
			FailCount: job.FailCount,
		}
		if job.FailCount != 0 {
			outcome.State = RunFailed
		} else {
			outcome.State = RunSuccess
		}
		return outcome, nil
	}

	return &RunOutcome{State: RunTimeout}, nil
}
