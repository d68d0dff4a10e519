// Package jobfile parses declarative YAML job definitions for
// 'job create --file' and 'job update --file'. The file carries the same
// fields as the create flags; values still pass through the regular
// validators before anything is sent.
package jobfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aatumaykin/cronclaw/internal/api"
	"github.com/aatumaykin/cronclaw/internal/validate"
)

// Definition is the YAML shape of a job file.
//
//	name: Morning report
//	cron: "0 9 * * *"
//	integration: openclaw
//	channel: telegram
//	chat_id: "123456789"
//	message: Good morning!
type Definition struct {
	Name        string            `yaml:"name"`
	Cron        string            `yaml:"cron"`
	Message     string            `yaml:"message,omitempty"`
	Integration string            `yaml:"integration"`
	Agent       string            `yaml:"agent,omitempty"`
	Channel     string            `yaml:"channel,omitempty"`
	Phone       string            `yaml:"phone,omitempty"`
	ChatID      string            `yaml:"chat_id,omitempty"`
	ReplyTo     string            `yaml:"reply_to,omitempty"`
	Webhook     *WebhookSection   `yaml:"webhook,omitempty"`
	Timezone    string            `yaml:"timezone,omitempty"`
	Enabled     *bool             `yaml:"enabled,omitempty"`
}

// WebhookSection groups the webhook fields of a definition.
type WebhookSection struct {
	URL     string            `yaml:"url"`
	Method  string            `yaml:"method"`
	Headers map[string]string `yaml:"headers,omitempty"`
	Body    string            `yaml:"body,omitempty"`
}

// Load reads and parses a job definition file. Unknown keys are rejected
// so a typo does not silently drop a field.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}
	return Parse(data)
}

// Parse parses job definition content.
func Parse(data []byte) (*Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("failed to parse job file: %w", err)
	}

	return &def, nil
}

// Validate runs the cross-field job gate over the definition.
func (d *Definition) Validate() validate.Result {
	f := validate.JobFields{
		Name:        d.Name,
		Cron:        d.Cron,
		Message:     d.Message,
		Integration: d.Integration,
		Channel:     d.Channel,
		Phone:       d.Phone,
		ChatID:      d.ChatID,
		Timezone:    d.Timezone,
	}
	if d.Webhook != nil {
		f.WebhookURL = d.Webhook.URL
		f.Method = d.Webhook.Method
		f.Body = d.Webhook.Body
		if len(d.Webhook.Headers) > 0 {
			encoded, err := json.Marshal(d.Webhook.Headers)
			if err == nil {
				f.Headers = string(encoded)
			}
		}
	}
	return validate.Job(f)
}

// ToCreateRequest converts a validated definition into the API payload.
func (d *Definition) ToCreateRequest() api.CreateJobRequest {
	req := api.CreateJobRequest{
		Name:            d.Name,
		Cron:            d.Cron,
		Message:         d.Message,
		IntegrationType: d.Integration,
		Agent:           d.Agent,
		Channel:         d.Channel,
		Deliver:         d.deliverTarget(),
		ReplyTo:         d.ReplyTo,
		Timezone:        d.Timezone,
		Enabled:         d.Enabled,
	}
	if d.Webhook != nil {
		req.WebhookURL = d.Webhook.URL
		req.WebhookMethod = validate.CanonicalMethod(d.Webhook.Method)
		req.WebhookHeaders = d.Webhook.Headers
		req.WebhookBody = d.Webhook.Body
	}
	return req
}

// ToUpdateRequest converts a definition into a partial update. Only
// fields present in the file are sent.
func (d *Definition) ToUpdateRequest() api.UpdateJobRequest {
	req := api.UpdateJobRequest{}
	if d.Name != "" {
		req.Name = &d.Name
	}
	if d.Cron != "" {
		req.Cron = &d.Cron
	}
	if d.Message != "" {
		req.Message = &d.Message
	}
	if d.Agent != "" {
		req.Agent = &d.Agent
	}
	if d.Channel != "" {
		req.Channel = &d.Channel
	}
	if target := d.deliverTarget(); target != "" {
		req.Deliver = &target
	}
	if d.ReplyTo != "" {
		req.ReplyTo = &d.ReplyTo
	}
	if d.Timezone != "" {
		req.Timezone = &d.Timezone
	}
	if d.Webhook != nil {
		if d.Webhook.URL != "" {
			req.WebhookURL = &d.Webhook.URL
		}
		if d.Webhook.Method != "" {
			method := validate.CanonicalMethod(d.Webhook.Method)
			req.WebhookMethod = &method
		}
		if d.Webhook.Headers != nil {
			req.WebhookHeaders = &d.Webhook.Headers
		}
		if d.Webhook.Body != "" {
			req.WebhookBody = &d.Webhook.Body
		}
	}
	return req
}

// deliverTarget picks the delivery target: phone wins over chat ID.
func (d *Definition) deliverTarget() string {
	if d.Phone != "" {
		return d.Phone
	}
	return d.ChatID
}
