package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5, s.TimeoutMinutes)
	assert.True(t, s.CloseTerminal)
	assert.True(t, s.Sound)
	assert.Empty(t, s.ChannelDir)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("FOLLOWUP_TIMEOUT_MINUTES", "30")
	t.Setenv("FOLLOWUP_CLOSE_TERMINAL", "false")
	t.Setenv("FOLLOWUP_SOUND", "false")
	t.Setenv("FOLLOWUP_CHANNEL_DIR", "/tmp/followup-test")

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30, s.TimeoutMinutes)
	assert.False(t, s.CloseTerminal)
	assert.False(t, s.Sound)
	assert.Equal(t, "/tmp/followup-test", s.ChannelDir)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("FOLLOWUP_TIMEOUT_MINUTES", "soon")

	_, err := Load()
	assert.Error(t, err)
}

func TestSettings_Timeout(t *testing.T) {
	tests := []struct {
		name     string
		minutes  int
		expected time.Duration
	}{
		{"default", 5, 5 * time.Minute},
		{"zero", 0, 0},
		{"day", 1440, 1440 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Settings{TimeoutMinutes: tt.minutes}
			assert.Equal(t, tt.expected, s.Timeout())
		})
	}
}
