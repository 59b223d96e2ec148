//go:build darwin

package sound

import "os/exec"

// playNotification plays the notification sound on macOS using afplay
func playNotification() error {
	soundFiles := []string{
		"/System/Library/Sounds/Glass.aiff",
		"/System/Library/Sounds/Tink.aiff",
	}

	for _, soundFile := range soundFiles {
		cmd := exec.Command("afplay", soundFile)
		if err := cmd.Start(); err == nil {
			return nil
		}
	}

	return terminalBell()
}
