package output

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	p := NewWithWriters(false, &buf, &bytes.Buffer{})

	p.Print(
		[]string{"ID", "NAME"},
		[][]string{
			{"job_a1b2c3d4", "Morning report"},
			{"job_e5f6a7b8", "Nightly sync"},
		},
		nil,
	)

	out := buf.String()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "--")
	assert.Contains(t, out, "job_a1b2c3d4")
	assert.Contains(t, out, "Nightly sync")
}

func TestJSONMode(t *testing.T) {
	var buf bytes.Buffer
	p := NewWithWriters(true, &buf, &bytes.Buffer{})

	p.Print(nil, nil, map[string]string{"id": "job_a1b2c3d4"})

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "job_a1b2c3d4", decoded["id"])
}

func TestNoticeGoesToStderr(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewWithWriters(false, &out, &errOut)

	p.Notice("done: %s\n", "ok")

	assert.Empty(t, out.String())
	assert.Equal(t, "done: ok\n", errOut.String())
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "never", FormatTime(nil))

	ts := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	assert.NotEmpty(t, FormatTime(&ts))
}

func TestFormatEnabled(t *testing.T) {
	assert.Equal(t, "enabled", FormatEnabled(true))
	assert.Equal(t, "disabled", FormatEnabled(false))
}
