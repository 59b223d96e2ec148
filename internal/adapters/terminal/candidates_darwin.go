//go:build darwin

package terminal

import (
	"os/exec"
	"strings"
)

// platformCandidates returns the macOS order: a tmux window when already
// inside tmux, then Terminal.app through the osascript bridge.
func platformCandidates() []candidate {
	return []candidate{
		tmuxWindowCandidate(),
		{
			name:           "Terminal.app",
			exitObservable: false, // osascript exits once the script is delivered
			probe:          hasExecutable("osascript"),
			invoke: func(argv []string, keepOpen bool) *exec.Cmd {
				script := `tell application "Terminal" to do script "` +
					appleScriptQuote(shellCommand(argv, keepOpen)) + `"`
				return exec.Command("osascript",
					"-e", `tell application "Terminal" to activate`,
					"-e", script)
			},
		},
	}
}

// appleScriptQuote escapes s for an AppleScript string literal.
func appleScriptQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
