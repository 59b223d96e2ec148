package ports

import (
	"context"

	"followup/internal/domain"
)

// TerminalLauncher opens a terminal window running a prompt session
type TerminalLauncher interface {
	// Launch resolves a terminal emulator and starts a prompt session in it.
	// The session writes its result to channelPath.
	Launch(ctx context.Context, question domain.Question, channelPath string) (TerminalWindow, error)
}

// TerminalWindow is a handle to a launched terminal
type TerminalWindow interface {
	// Name returns the terminal emulator that was used
	Name() string

	// ExitObservable reports whether Done tracks the prompt process itself.
	// Launchers that hand off to a terminal server always return false.
	ExitObservable() bool

	// Done is closed once the launched process has been reaped
	Done() <-chan struct{}
}
