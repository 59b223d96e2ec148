package sound

import "fmt"

// Player implements ports.SoundPlayer
type Player struct{}

// NewPlayer creates a new sound player
func NewPlayer() *Player {
	return &Player{}
}

// PlaySound plays the prompt notification sound so the user notices the new
// window. Platform-specific implementations are in player_*.go files with
// build tags.
func (p *Player) PlaySound() error {
	return playNotification()
}

// terminalBell outputs a terminal bell character as fallback
func terminalBell() error {
	fmt.Print("\a")
	return nil
}
