package domain

import "errors"

var (
	// ErrEmptyQuestion rejects questions whose text is empty after trimming.
	ErrEmptyQuestion = errors.New("question text is required")

	// ErrNoTerminalAvailable means no launch candidate's probe succeeded.
	ErrNoTerminalAvailable = errors.New("no terminal available")

	// ErrLaunchFailed means a candidate was selected but starting it failed.
	ErrLaunchFailed = errors.New("terminal launch failed")

	// ErrTimeout means no result arrived within the configured timeout.
	// It is distinct from cancellation: the user never declined, the wait
	// simply ran out.
	ErrTimeout = errors.New("timed out waiting for a response")
)
