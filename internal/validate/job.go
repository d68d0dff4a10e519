package validate

import "strings"

// JobFields carries the fields needed for the cross-field create gate.
// Relational invariants beyond this gate belong to the server.
type JobFields struct {
	Name        string
	Cron        string
	Message     string
	Integration string
	Channel     string
	Phone       string
	ChatID      string
	WebhookURL  string
	Method      string
	Headers     string
	Body        string
	Timezone    string
}

type fieldCheck struct {
	field  string
	result Result
}

// Job runs every field validator required for the chosen integration type
// and returns the first failure. Field name prefixes make the failure
// addressable in CLI output.
func Job(f JobFields) Result {
	checks := []fieldCheck{
		{"name", Name(f.Name)},
		{"cron", Cron(f.Cron)},
		{"integration", IntegrationType(f.Integration)},
		{"timezone", Timezone(f.Timezone)},
	}

	switch f.Integration {
	case "openclaw":
		checks = append(checks,
			fieldCheck{"message", Message(f.Message)},
			fieldCheck{"channel", Channel(f.Channel)},
		)
		// Deliver target: phone or chat ID, at least one
		switch {
		case f.Phone != "":
			checks = append(checks, fieldCheck{"phone", Phone(f.Phone)})
		case f.ChatID != "":
			checks = append(checks, fieldCheck{"chat ID", ChatID(f.ChatID)})
		default:
			return fail("openclaw jobs need a deliver target: --phone or --chat-id")
		}
	case "webhook":
		checks = append(checks,
			fieldCheck{"webhook URL", WebhookURL(f.WebhookURL)},
			fieldCheck{"webhook method", WebhookMethod(f.Method)},
			fieldCheck{"webhook headers", WebhookHeaders(f.Headers)},
			fieldCheck{"webhook body", WebhookBody(f.Body)},
		)
	}

	for _, c := range checks {
		if !c.result.Valid {
			if strings.HasPrefix(c.result.Error, c.field) {
				return c.result
			}
			return fail(c.field + ": " + c.result.Error)
		}
	}

	return ok()
}
