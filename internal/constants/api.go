package constants

// API route paths. The remote contract is fixed by the server.
const (
	// RouteStatus is the account status endpoint
	RouteStatus = "/v1/status"

	// RoutePlan is the plan and limits endpoint
	RoutePlan = "/v1/plan"

	// RouteUsage is the usage counters endpoint
	RouteUsage = "/v1/usage"

	// RouteGateway is the gateway registration endpoint
	RouteGateway = "/v1/gateway"

	// RouteGatewayTest is the gateway round-trip test endpoint
	RouteGatewayTest = "/v1/gateway/test"

	// RouteJobs is the jobs collection endpoint
	RouteJobs = "/v1/jobs"

	// RouteAPIKeys is the API keys collection endpoint
	RouteAPIKeys = "/v1/apikeys"
)
