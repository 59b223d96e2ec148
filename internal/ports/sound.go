package ports

// SoundPlayer plays notification sounds
type SoundPlayer interface {
	// PlaySound plays the prompt notification sound
	PlaySound() error
}
