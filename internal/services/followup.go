package services

import (
	"context"
	"fmt"
	"time"

	"followup/internal/channel"
	"followup/internal/config"
	"followup/internal/domain"
	"followup/internal/logging"
	"followup/internal/ports"
)

// completionOptions are the choices offered when confirming a finished task.
var completionOptions = []string{
	"This looks perfect - finish",
	"Make some changes",
	"Add more features",
	"Start over with a different approach",
}

// FollowupService drives one follow-up question end to end: create a response
// channel, open a terminal prompt pointed at it, wait for the outcome, clean
// the channel up.
type FollowupService struct {
	launcher ports.TerminalLauncher
	settings *config.Settings
}

// NewFollowupService creates a new FollowupService
func NewFollowupService(launcher ports.TerminalLauncher, settings *config.Settings) *FollowupService {
	return &FollowupService{
		launcher: launcher,
		settings: settings,
	}
}

// Ask opens a terminal prompt for the question and blocks until the user
// responds, the prompt is cancelled, or the timeout elapses. The timeout is
// taken as requested: anything under a minute waits indefinitely, so callers
// that want the configured default must pass it themselves.
func (s *FollowupService) Ask(ctx context.Context, text string, options []string, timeout time.Duration) (domain.Result, error) {
	question, err := domain.NewQuestion(text, options, timeout, s.settings.CloseTerminal)
	if err != nil {
		return domain.Result{}, err
	}

	handle := channel.NewHandle(s.settings.ChannelDir)
	defer handle.Cleanup()

	window, err := s.launcher.Launch(ctx, question, handle.Path())
	if err != nil {
		logging.Logger.Error("Failed to open terminal prompt", "error", err)
		return domain.Result{}, err
	}

	logging.Logger.Info("Waiting for response",
		"terminal", window.Name(),
		"path", handle.Path(),
		"timeout", question.Timeout)

	// Done is only meaningful when the launcher tracked the prompt process
	// itself. A nil channel never fires in Await's select.
	var promptDone <-chan struct{}
	if window.ExitObservable() {
		promptDone = window.Done()
	}

	result, err := channel.Await(ctx, handle, question.Timeout, promptDone)
	if err != nil {
		return domain.Result{}, err
	}

	logging.Logger.Info("Prompt resolved", "status", result.Status)
	return result, nil
}

// ConfirmCompletion asks the user to sign off on a finished task described by
// summary, offering the standard completion choices. It waits up to the
// configured default timeout.
func (s *FollowupService) ConfirmCompletion(ctx context.Context, summary string) (domain.Result, error) {
	question := fmt.Sprintf("I've completed the following:\n\n%s\n\nWhat would you like to do?", summary)
	return s.Ask(ctx, question, completionOptions, s.settings.Timeout())
}
