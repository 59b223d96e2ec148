package cmd

import (
	adaptersound "followup/internal/adapters/sound"
	adapterterminal "followup/internal/adapters/terminal"
	"followup/internal/config"
	"followup/internal/ports"
	"followup/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	FollowupService *services.FollowupService
	Settings        *config.Settings
	SoundPlayer     ports.SoundPlayer
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) *Container {
	launcher := adapterterminal.NewLauncher()
	soundPlayer := adaptersound.NewPlayer()

	return &Container{
		FollowupService: services.NewFollowupService(launcher, settings),
		Settings:        settings,
		SoundPlayer:     soundPlayer,
	}
}
