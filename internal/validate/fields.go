package validate

import (
	"fmt"
	"strings"
	"time"

	// Embedded tzdata keeps Timezone working on hosts without a zoneinfo database.
	_ "time/tzdata"

	"github.com/wasilibs/go-re2"
	"golang.org/x/text/unicode/norm"

	"github.com/aatumaykin/cronclaw/internal/constants"
)

// Field patterns. Compiled with re2 so untrusted input cannot trigger
// catastrophic backtracking.
var (
	controlCharPattern = re2.MustCompile(`[\x00-\x08\x0b\x0c\x0e-\x1f\x7f]`)
	phonePattern       = re2.MustCompile(`^\+[1-9][0-9]{6,14}$`)
	chatIDPattern      = re2.MustCompile(`^-?[0-9]{1,20}$`)
	jobIDPattern       = re2.MustCompile(`^job_[A-Za-z0-9]{8,32}$`)
)

// Known delivery channels for the openclaw integration.
var validChannels = map[string]bool{
	"telegram": true,
	"whatsapp": true,
	"discord":  true,
	"slack":    true,
}

// Name validates a job name: 1-100 characters after NFKC normalization,
// no control characters.
func Name(name string) Result {
	name = strings.TrimSpace(norm.NFKC.String(name))
	if name == "" {
		return fail("name is required")
	}
	if len([]rune(name)) > constants.MaxNameLength {
		return fail(fmt.Sprintf("name is too long (max %d characters)", constants.MaxNameLength))
	}
	if controlCharPattern.MatchString(name) {
		return fail("name must not contain control characters")
	}
	return ok()
}

// Message validates the message payload delivered on each run.
func Message(message string) Result {
	message = norm.NFKC.String(message)
	if strings.TrimSpace(message) == "" {
		return fail("message is required")
	}
	if len([]rune(message)) > constants.MaxMessageLength {
		return fail(fmt.Sprintf("message is too long (max %d characters)", constants.MaxMessageLength))
	}
	return ok()
}

// Channel validates a delivery channel name.
func Channel(channel string) Result {
	if channel == "" {
		return fail("channel is required")
	}
	if !validChannels[strings.ToLower(channel)] {
		return fail(fmt.Sprintf("unknown channel: %s (expected: telegram, whatsapp, discord, slack)", channel))
	}
	return ok()
}

// Phone validates an E.164 phone number, e.g. +15555551234.
func Phone(phone string) Result {
	if phone == "" {
		return fail("phone number is required")
	}
	if !phonePattern.MatchString(phone) {
		return fail(fmt.Sprintf("invalid phone number: %s (expected E.164, e.g. +15555551234)", phone))
	}
	return ok()
}

// ChatID validates a numeric chat identifier. Telegram group IDs are negative.
func ChatID(chatID string) Result {
	if chatID == "" {
		return fail("chat ID is required")
	}
	if !chatIDPattern.MatchString(chatID) {
		return fail(fmt.Sprintf("invalid chat ID: %s (expected digits, optional leading -)", chatID))
	}
	return ok()
}

// JobID validates a server-issued job identifier.
func JobID(jobID string) Result {
	if jobID == "" {
		return fail("job ID is required")
	}
	if !jobIDPattern.MatchString(jobID) {
		return fail(fmt.Sprintf("invalid job ID: %s (expected job_ followed by 8-32 alphanumerics)", jobID))
	}
	return ok()
}

// IntegrationType validates the payload integration tag.
func IntegrationType(integration string) Result {
	switch integration {
	case "openclaw", "webhook":
		return ok()
	case "":
		return fail("integration type is required")
	default:
		return fail(fmt.Sprintf("unknown integration type: %s (expected: openclaw, webhook)", integration))
	}
}

// Timezone validates an IANA timezone name. Empty means server default.
func Timezone(tz string) Result {
	if tz == "" {
		return ok()
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return fail(fmt.Sprintf("unknown timezone: %s", tz))
	}
	return ok()
}
