package terminal

import (
	"os"
	"os/exec"
)

// tmuxWindowCandidate opens the prompt as a new window of the tmux session
// the caller is already inside. Probed only when $TMUX is set, so a session
// reached over SSH gets a usable surface before any desktop emulator is
// tried.
func tmuxWindowCandidate() candidate {
	return candidate{
		name:           "tmux",
		exitObservable: false, // the tmux client returns immediately
		probe: func() bool {
			if os.Getenv("TMUX") == "" {
				return false
			}
			_, err := lookPath("tmux")
			return err == nil
		},
		invoke: func(argv []string, keepOpen bool) *exec.Cmd {
			return exec.Command("tmux", "new-window", "-n", "followup", shellCommand(argv, keepOpen))
		},
	}
}
