//go:build !darwin && !linux && !windows

package sound

// playNotification falls back to the terminal bell on unsupported platforms
func playNotification() error {
	return terminalBell()
}
