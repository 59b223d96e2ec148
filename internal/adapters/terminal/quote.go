package terminal

import (
	"os"
	"strings"

	"github.com/kballard/go-shellquote"
)

// shellCommand renders argv as a POSIX shell command string for terminals
// that take a `sh -c` style argument. Debug settings are re-exported inline
// because some emulators hand the command to a pre-existing server process
// that did not inherit our environment.
func shellCommand(argv []string, keepOpen bool) string {
	cmd := shellquote.Join(argv...)
	if env := debugEnv(); env != "" {
		cmd = env + " " + cmd
	}
	if keepOpen {
		cmd += `; printf '\nPress Enter to close... '; read -r _`
	}
	return cmd
}

func debugEnv() string {
	if os.Getenv("FOLLOWUP_DEBUG") != "1" {
		return ""
	}
	parts := []string{"FOLLOWUP_DEBUG=1"}
	if file := os.Getenv("FOLLOWUP_DEBUG_FILE"); file != "" {
		parts = append(parts, "FOLLOWUP_DEBUG_FILE="+shellquote.Join(file))
	}
	return strings.Join(parts, " ")
}
