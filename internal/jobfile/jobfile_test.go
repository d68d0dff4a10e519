package jobfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const openclawYAML = `name: Morning report
cron: "0 9 * * *"
integration: openclaw
channel: telegram
chat_id: "123456789"
message: Good morning!
timezone: Europe/Moscow
`

const webhookYAML = `name: Nightly sync
cron: "0 3 * * *"
integration: webhook
webhook:
  url: https://example.com/hook
  method: post
  headers:
    Authorization: Bearer x
  body: '{"run": true}'
enabled: false
`

func TestParseOpenclawDefinition(t *testing.T) {
	def, err := Parse([]byte(openclawYAML))
	require.NoError(t, err)

	assert.Equal(t, "Morning report", def.Name)
	assert.Equal(t, "0 9 * * *", def.Cron)
	assert.Equal(t, "openclaw", def.Integration)
	assert.Equal(t, "123456789", def.ChatID)
	assert.Equal(t, "Europe/Moscow", def.Timezone)
	assert.Nil(t, def.Webhook)

	r := def.Validate()
	assert.True(t, r.Valid, r.Error)
}

func TestParseWebhookDefinition(t *testing.T) {
	def, err := Parse([]byte(webhookYAML))
	require.NoError(t, err)

	require.NotNil(t, def.Webhook)
	assert.Equal(t, "https://example.com/hook", def.Webhook.URL)
	assert.Equal(t, "Bearer x", def.Webhook.Headers["Authorization"])
	require.NotNil(t, def.Enabled)
	assert.False(t, *def.Enabled)

	r := def.Validate()
	assert.True(t, r.Valid, r.Error)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("name: x\nschedule: '* * * * *'\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse job file")
}

func TestParseRejectsBadYAML(t *testing.T) {
	_, err := Parse([]byte("name: [broken"))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read job file")
}

func TestLoadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte(openclawYAML), 0644))

	def, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Morning report", def.Name)
}

func TestValidateCatchesBadDefinition(t *testing.T) {
	def, err := Parse([]byte("name: x\ncron: 'not a cron'\nintegration: webhook\n"))
	require.NoError(t, err)

	r := def.Validate()
	assert.False(t, r.Valid)
	assert.Contains(t, r.Error, "cron")
}

func TestToCreateRequest(t *testing.T) {
	def, err := Parse([]byte(webhookYAML))
	require.NoError(t, err)

	req := def.ToCreateRequest()
	assert.Equal(t, "Nightly sync", req.Name)
	assert.Equal(t, "webhook", req.IntegrationType)
	assert.Equal(t, "POST", req.WebhookMethod) // canonicalized
	assert.Equal(t, `{"run": true}`, req.WebhookBody)
}

func TestToCreateRequestPhoneWinsOverChatID(t *testing.T) {
	def := &Definition{
		Phone:  "+15555551234",
		ChatID: "123456789",
	}
	req := def.ToCreateRequest()
	assert.Equal(t, "+15555551234", req.Deliver)
}

func TestToUpdateRequestOmitsAbsentFields(t *testing.T) {
	def, err := Parse([]byte("name: Renamed\n"))
	require.NoError(t, err)

	req := def.ToUpdateRequest()
	require.NotNil(t, req.Name)
	assert.Equal(t, "Renamed", *req.Name)
	assert.Nil(t, req.Cron)
	assert.Nil(t, req.Message)
	assert.Nil(t, req.WebhookURL)
}
