package constants

// Package messages contains all user-facing text constants used throughout the cronclaw CLI.

// Auth messages
const (
	// MsgLoginOK is the confirmation message after a successful login.
	MsgLoginOK = "✅ Logged in to %s\n"

	// MsgLoginAccount is the label for the account line after login.
	MsgLoginAccount = "Account: %s\n"

	// MsgLogoutOK is the confirmation message after logout.
	MsgLogoutOK = "✅ Logged out. Credentials removed.\n"

	// MsgNotLoggedIn is printed when a command requires credentials and none are stored.
	MsgNotLoggedIn = "❌ Not logged in. Run 'cronclaw login <api-key>' first.\n"
)

// Job messages
const (
	// MsgJobCreated is the confirmation message after creating a job.
	MsgJobCreated = "✅ Job created\n"

	// MsgJobUpdated is the confirmation message after updating a job.
	MsgJobUpdated = "✅ Job %s updated\n"

	// MsgJobRemoved is the confirmation message after removing a job.
	MsgJobRemoved = "✅ Job %s removed\n"

	// MsgJobEnabled is the confirmation message after enabling a job.
	MsgJobEnabled = "✅ Job %s enabled\n"

	// MsgJobDisabled is the confirmation message after disabling a job.
	MsgJobDisabled = "✅ Job %s disabled\n"

	// MsgJobTriggered is the confirmation message after an async trigger.
	MsgJobTriggered = "✅ Job %s triggered\n"

	// MsgJobID is the label for the job ID line.
	MsgJobID = "ID: %s\n"

	// MsgJobsNotFound is printed when the job list is empty.
	MsgJobsNotFound = "No jobs yet. Create one with 'cronclaw job create'.\n"

	// MsgJobsTotal is the footer of the job list.
	MsgJobsTotal = "Total: %d job(s)\n"
)

// Sync trigger messages
const (
	// MsgTriggerWaiting is printed while polling for the run outcome.
	MsgTriggerWaiting = "⏳ Waiting for job %s to run (up to %s)...\n"

	// MsgTriggerSuccess is printed when the run completed without failures.
	MsgTriggerSuccess = "✅ Job %s ran successfully at %s\n"

	// MsgTriggerFailed is printed when the run was observed with a failure.
	MsgTriggerFailed = "❌ Job %s run failed (failCount=%d). Check 'cronclaw status' for details.\n"

	// MsgTriggerTimeout is printed when the wait window closes without an observed run.
	MsgTriggerTimeout = "⚠️ Timed out waiting for job %s. The run may still complete server-side.\n"
)

// Gateway messages
const (
	// MsgGatewaySet is the confirmation message after registering a gateway.
	MsgGatewaySet = "✅ Gateway set to %s\n"

	// MsgGatewayTestOK is printed when the gateway round trip succeeded.
	MsgGatewayTestOK = "✅ Gateway reachable (%d ms)\n"

	// MsgGatewayTestFail is printed when the gateway round trip failed.
	MsgGatewayTestFail = "❌ Gateway test failed: %s\n"

	// MsgGatewayNotSet is printed when no gateway is registered.
	MsgGatewayNotSet = "No gateway configured. Run 'cronclaw gateway set <url>'.\n"
)

// API key messages
const (
	// MsgAPIKeyCreated is the header after creating an API key.
	MsgAPIKeyCreated = "✅ API key created\n"

	// MsgAPIKeySecret is the one-time secret line. The server never returns it again.
	MsgAPIKeySecret = "Secret (save it now, it will not be shown again): %s\n"

	// MsgAPIKeyRevoked is the confirmation message after revoking a key.
	MsgAPIKeyRevoked = "✅ API key %s revoked\n"

	// MsgAPIKeysNotFound is printed when no API keys exist.
	MsgAPIKeysNotFound = "No API keys.\n"
)

// Doctor messages
const (
	// MsgDoctorCheckOK is the line for a passed check.
	MsgDoctorCheckOK = "✅ %s\n"

	// MsgDoctorCheckFail is the line for a failed check.
	MsgDoctorCheckFail = "❌ %s: %s\n"

	// MsgDoctorAllOK is the footer when every check passed.
	MsgDoctorAllOK = "All checks passed.\n"

	// MsgDoctorProblems is the footer when at least one check failed.
	MsgDoctorProblems = "%d check(s) failed.\n"
)

// Error messages
const (
	// MsgErrorFormat is the prefix for error messages.
	MsgErrorFormat = "Error: %v\n"

	// MsgValidationError is the prefix for local validation failures.
	MsgValidationError = "❌ Invalid %s: %s\n"
)
