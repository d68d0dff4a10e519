package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WithValidConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid json config stdout",
			config: Config{
				Level:  "debug",
				Format: "json",
				Output: "stdout",
			},
			wantErr: false,
		},
		{
			name: "valid text config stderr",
			config: Config{
				Level:  "info",
				Format: "text",
				Output: "stderr",
			},
			wantErr: false,
		},
		{
			name: "empty format and output use defaults",
			config: Config{
				Level: "warn",
			},
			wantErr: false,
		},
		{
			name: "invalid level",
			config: Config{
				Level:  "invalid",
				Format: "json",
				Output: "stdout",
			},
			wantErr: true,
		},
		{
			name: "invalid format",
			config: Config{
				Level:  "debug",
				Format: "xml",
				Output: "stdout",
			},
			wantErr: true,
		},
		{
			name: "file output not supported",
			config: Config{
				Level:  "debug",
				Format: "text",
				Output: "/tmp/cronclaw.log",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.config)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, log)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, log)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"debug", true},
		{"INFO", true},
		{"Warn", true},
		{"error", true},
		{"trace", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, valid := parseLevel(tt.input)
			assert.Equal(t, tt.valid, valid)
		})
	}
}

func TestDiscard(t *testing.T) {
	log := Discard()
	require.NotNil(t, log)

	// Must not panic
	log.Debug("dropped")
	log.Error("dropped", assert.AnError)
	log.With(Field{Key: "k", Value: "v"}).Info("dropped")
}
