package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Settings holds runtime configuration, read from FOLLOWUP_* environment
// variables.
type Settings struct {
	TimeoutMinutes int    `envconfig:"TIMEOUT_MINUTES" default:"5"`
	CloseTerminal  bool   `envconfig:"CLOSE_TERMINAL" default:"true"`
	Sound          bool   `envconfig:"SOUND" default:"true"`
	ChannelDir     string `envconfig:"CHANNEL_DIR"`
}

// Load reads settings from the environment.
func Load() (*Settings, error) {
	var s Settings
	if err := envconfig.Process("followup", &s); err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return &s, nil
}

// Default returns the built-in settings, used when the environment
// cannot be parsed.
func Default() *Settings {
	return &Settings{
		TimeoutMinutes: 5,
		CloseTerminal:  true,
		Sound:          true,
	}
}

// Timeout returns the configured response timeout as a duration.
func (s *Settings) Timeout() time.Duration {
	return time.Duration(s.TimeoutMinutes) * time.Minute
}
