//go:build linux

package sound

import "os/exec"

// playNotification plays the notification sound on Linux using paplay
// (PulseAudio) or aplay (ALSA)
func playNotification() error {
	sounds := []struct {
		cmd  string
		args []string
	}{
		{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/message.oga"}},
		{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/message.wav"}},
		{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/bell.oga"}},
	}

	for _, sound := range sounds {
		cmd := exec.Command(sound.cmd, sound.args...)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}

	return terminalBell()
}
