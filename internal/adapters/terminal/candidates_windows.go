//go:build windows

package terminal

import (
	"os/exec"
	"strings"
	"syscall"

	"golang.org/x/sys/windows"
)

// platformCandidates returns the Windows order: PowerShell, then cmd.exe.
// Both run as the console process itself, so exits are observable.
func platformCandidates() []candidate {
	return []candidate{
		{
			name:           "powershell",
			exitObservable: true,
			probe:          hasExecutable("powershell"),
			invoke: func(argv []string, keepOpen bool) *exec.Cmd {
				args := []string{"-NoLogo"}
				if keepOpen {
					args = append(args, "-NoExit")
				}
				args = append(args, "-Command", powershellCommand(argv))
				cmd := exec.Command("powershell", args...)
				newConsole(cmd)
				return cmd
			},
		},
		{
			name:           "cmd",
			exitObservable: true,
			probe:          hasExecutable("cmd"),
			invoke: func(argv []string, keepOpen bool) *exec.Cmd {
				mode := "/C"
				if keepOpen {
					mode = "/K"
				}
				cmd := exec.Command("cmd", mode, windowsCommand(argv))
				newConsole(cmd)
				return cmd
			},
		},
	}
}

// newConsole detaches the child into its own console window.
func newConsole(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: windows.CREATE_NEW_CONSOLE,
	}
}

// powershellCommand renders argv as a PowerShell call-operator command.
// Single quotes are PowerShell's literal strings; embedded ones double.
func powershellCommand(argv []string) string {
	quoted := make([]string, 0, len(argv)+1)
	quoted = append(quoted, "&")
	for _, arg := range argv {
		quoted = append(quoted, "'"+strings.ReplaceAll(arg, "'", "''")+"'")
	}
	return strings.Join(quoted, " ")
}

// windowsCommand renders argv with CommandLineToArgvW quoting for cmd.exe.
func windowsCommand(argv []string) string {
	quoted := make([]string, 0, len(argv))
	for _, arg := range argv {
		quoted = append(quoted, syscall.EscapeArg(arg))
	}
	return strings.Join(quoted, " ")
}
