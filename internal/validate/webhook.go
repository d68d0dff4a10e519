package validate

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// Allowed webhook HTTP methods.
var validMethods = map[string]bool{
	"GET":    true,
	"POST":   true,
	"PUT":    true,
	"PATCH":  true,
	"DELETE": true,
}

// WebhookURL validates the target URL of a webhook job.
func WebhookURL(raw string) Result {
	if raw == "" {
		return fail("webhook URL is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fail(fmt.Sprintf("invalid webhook URL: %v", err))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fail(fmt.Sprintf("invalid webhook URL scheme: %s (expected: http, https)", u.Scheme))
	}
	if u.Host == "" {
		return fail("webhook URL must include a host")
	}
	return ok()
}

// WebhookMethod validates the HTTP method. Input is case-insensitive;
// CanonicalMethod returns the upper-case form sent to the server.
func WebhookMethod(method string) Result {
	if method == "" {
		return fail("webhook method is required")
	}
	if !validMethods[strings.ToUpper(method)] {
		return fail(fmt.Sprintf("invalid webhook method: %s (expected: GET, POST, PUT, PATCH, DELETE)", method))
	}
	return ok()
}

// CanonicalMethod returns the canonical upper-case HTTP method.
func CanonicalMethod(method string) string {
	return strings.ToUpper(method)
}

// WebhookHeaders validates a JSON object with string values only.
func WebhookHeaders(raw string) Result {
	if raw == "" {
		return ok()
	}

	var headers map[string]any
	if err := json.Unmarshal([]byte(raw), &headers); err != nil {
		return fail(fmt.Sprintf("invalid webhook headers: %v (expected a JSON object)", err))
	}

	for name, value := range headers {
		if _, isString := value.(string); !isString {
			return fail(fmt.Sprintf("invalid webhook header %q: value must be a string", name))
		}
	}

	return ok()
}

// WebhookBody validates that the body, when present, is valid JSON.
func WebhookBody(raw string) Result {
	if raw == "" {
		return ok()
	}
	if !json.Valid([]byte(raw)) {
		return fail("invalid webhook body: not valid JSON")
	}
	return ok()
}
