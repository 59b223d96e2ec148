package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"followup/internal/channel"
	"followup/internal/domain"
	"followup/internal/logging"
	"followup/internal/ui"
)

// PromptCmd runs one interactive prompt session inside the spawned terminal
type PromptCmd struct {
	Output   string   `help:"Path of the response file to write" required:""`
	Question string   `help:"Question text to display" required:""`
	Option   []string `help:"Suggested option (repeatable)"`
}

// Run executes the prompt session and publishes its result exactly once
func (p *PromptCmd) Run(cli *CLI) (err error) {
	handle := channel.HandleForPath(p.Output)

	// The waiting side reads a missing response file as nothing at all, so
	// every abnormal exit below still has to publish a cancellation.
	published := false
	defer func() {
		if r := recover(); r != nil {
			logging.Logger.Error("Prompt session panicked", "panic", r)
			err = fmt.Errorf("prompt session panicked: %v", r)
		}
		if !published {
			if werr := handle.Write(domain.NewCancelled()); werr != nil {
				logging.Logger.Error("Failed to publish cancellation", "error", werr, "path", p.Output)
			}
		}
	}()

	question, err := domain.NewQuestion(p.Question, p.Option, 0, true)
	if err != nil {
		return err
	}

	if cli.Container.Settings.Sound {
		if serr := cli.Container.SoundPlayer.PlaySound(); serr != nil {
			logging.Logger.Debug("Could not play notification sound", "error", serr)
		}
	}

	logging.Logger.Info("Prompt session started", "path", p.Output, "options", len(question.Options))

	// No alternate screen: the resolution line stays visible after exit.
	program := tea.NewProgram(ui.NewPrompt(question))
	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("error running prompt: %w", err)
	}

	prompt, ok := finalModel.(*ui.Prompt)
	if !ok || !prompt.Completed {
		// The program ended without resolving; the deferred write covers it.
		return nil
	}

	if err := handle.Write(prompt.Result); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	published = true

	logging.Logger.Info("Prompt session resolved", "status", prompt.Result.Status)
	return nil
}
