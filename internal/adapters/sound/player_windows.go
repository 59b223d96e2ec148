//go:build windows

package sound

import "os/exec"

// playNotification plays the notification sound on Windows using PowerShell
func playNotification() error {
	soundCommands := []string{
		"[System.Media.SystemSounds]::Asterisk.Play()",
		"[System.Media.SystemSounds]::Beep.Play()",
	}

	for _, soundCmd := range soundCommands {
		cmd := exec.Command("powershell", "-c", soundCmd)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}

	return terminalBell()
}
