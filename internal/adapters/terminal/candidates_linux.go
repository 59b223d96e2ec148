//go:build linux

package terminal

import "os/exec"

// platformCandidates returns the Linux terminal order. The tmux window is
// probed first so sessions inside tmux are served without a desktop; after
// that the common emulators are tried in a fixed order.
func platformCandidates() []candidate {
	return []candidate{
		tmuxWindowCandidate(),
		{
			name:           "gnome-terminal",
			exitObservable: false, // hands off to gnome-terminal-server
			probe:          hasExecutable("gnome-terminal"),
			invoke: func(argv []string, keepOpen bool) *exec.Cmd {
				return exec.Command("gnome-terminal", "--", "bash", "-c", shellCommand(argv, keepOpen))
			},
		},
		{
			name:           "konsole",
			exitObservable: true,
			probe:          hasExecutable("konsole"),
			invoke: func(argv []string, keepOpen bool) *exec.Cmd {
				return exec.Command("konsole", "-e", "bash", "-c", shellCommand(argv, keepOpen))
			},
		},
		{
			name:           "xfce4-terminal",
			exitObservable: false, // single-instance daemon
			probe:          hasExecutable("xfce4-terminal"),
			invoke: func(argv []string, keepOpen bool) *exec.Cmd {
				return exec.Command("xfce4-terminal", "-e", shellCommand(argv, keepOpen))
			},
		},
		{
			name:           "xterm",
			exitObservable: true,
			probe:          hasExecutable("xterm"),
			invoke: func(argv []string, keepOpen bool) *exec.Cmd {
				return exec.Command("xterm", "-T", "Follow-up", "-e", "bash", "-c", shellCommand(argv, keepOpen))
			},
		},
		{
			name:           "terminator",
			exitObservable: false, // single-instance over dbus
			probe:          hasExecutable("terminator"),
			invoke: func(argv []string, keepOpen bool) *exec.Cmd {
				return exec.Command("terminator", "-e", shellCommand(argv, keepOpen))
			},
		},
		{
			name:           "x-terminal-emulator",
			exitObservable: false, // alternatives symlink, target unknown
			probe:          hasExecutable("x-terminal-emulator"),
			invoke: func(argv []string, keepOpen bool) *exec.Cmd {
				return exec.Command("x-terminal-emulator", "-e", shellCommand(argv, keepOpen))
			},
		},
	}
}
