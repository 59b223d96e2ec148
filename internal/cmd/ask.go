package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// AskCmd asks a one-off question without going through MCP
type AskCmd struct {
	Question       string   `arg:"" help:"Question text to ask"`
	Option         []string `help:"Suggested option (repeatable)"`
	TimeoutMinutes *int     `help:"Minutes to wait for a response (under 1 waits indefinitely, capped at 1440)"`
}

// Run drives one question through the terminal pipeline and prints the answer
func (a *AskCmd) Run(cli *CLI) error {
	timeout := cli.Container.Settings.Timeout()
	if a.TimeoutMinutes != nil {
		timeout = time.Duration(*a.TimeoutMinutes) * time.Minute
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := cli.Container.FollowupService.Ask(ctx, a.Question, a.Option, timeout)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return errors.New("interrupted before a response arrived")
		}
		return err
	}

	if !result.Answered() {
		return errors.New("cancelled without a response")
	}

	fmt.Println(result.Text)
	return nil
}
