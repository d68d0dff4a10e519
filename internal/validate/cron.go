package validate

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

// cronParser accepts standard 5-field expressions plus @-descriptors
// (@hourly, @daily, ...). Seconds are not part of the server format.
var cronParser = cron.NewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// Cron validates a cron expression using the cron parser.
func Cron(expression string) Result {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return fail("cron expression is required")
	}

	if _, err := cronParser.Parse(expression); err != nil {
		return fail(fmt.Sprintf("invalid cron expression: %v", err))
	}

	return ok()
}
