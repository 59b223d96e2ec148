// Package terminal resolves and launches a terminal window for prompt
// sessions. Each platform contributes an ordered candidate list; the first
// candidate whose probe succeeds launches the window.
package terminal

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"followup/internal/domain"
	"followup/internal/logging"
	"followup/internal/ports"
)

// lookPath resolves executables on the search path. Overridable in tests.
var lookPath = exec.LookPath

// candidate is one way to open a terminal window. probe answers whether it
// is usable on this host; invoke builds the command that opens the window
// running argv inside it.
type candidate struct {
	name           string
	exitObservable bool
	probe          func() bool
	invoke         func(argv []string, keepOpen bool) *exec.Cmd
}

// hasExecutable probes for name on the search path.
func hasExecutable(name string) func() bool {
	return func() bool {
		_, err := lookPath(name)
		return err == nil
	}
}

// Launcher implements ports.TerminalLauncher for the host platform.
type Launcher struct {
	candidates []candidate
	executable func() (string, error)
	start      func(*exec.Cmd) error
}

// NewLauncher creates a launcher with the platform's candidate list.
func NewLauncher() *Launcher {
	return &Launcher{
		candidates: platformCandidates(),
		executable: os.Executable,
		start:      func(cmd *exec.Cmd) error { return cmd.Start() },
	}
}

// Launch starts a prompt session for question in a new terminal window.
// The session re-executes this binary with the hidden prompt command and
// writes its result to channelPath.
//
// The first candidate whose probe succeeds is the only one tried: a failed
// start is domain.ErrLaunchFailed, not a reason to continue down the list.
// No probe success is domain.ErrNoTerminalAvailable.
func (l *Launcher) Launch(ctx context.Context, question domain.Question, channelPath string) (ports.TerminalWindow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	argv := l.promptArgv(question, channelPath)
	keepOpen := !question.CloseOnSubmit

	for _, cand := range l.candidates {
		if !cand.probe() {
			logging.Logger.Debug("Terminal not available", "terminal", cand.name)
			continue
		}

		cmd := cand.invoke(argv, keepOpen)
		logging.Logger.Info("Launching terminal",
			"terminal", cand.name,
			"command", cmd.Args,
			"keep_open", keepOpen)

		if err := l.start(cmd); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrLaunchFailed, cand.name, err)
		}
		return newWindow(cand.name, cand.exitObservable, cmd), nil
	}

	return nil, domain.ErrNoTerminalAvailable
}

// promptArgv builds the child command line for the prompt session.
func (l *Launcher) promptArgv(question domain.Question, channelPath string) []string {
	bin, err := l.executable()
	if err != nil {
		bin = "followup"
		logging.Logger.Warn("Could not resolve own executable, using PATH", "error", err)
	}

	argv := []string{bin, "prompt", "--output", channelPath, "--question", question.Text}
	for _, option := range question.Options {
		argv = append(argv, "--option", option)
	}
	return argv
}

// window implements ports.TerminalWindow.
type window struct {
	name           string
	exitObservable bool
	done           chan struct{}
}

func newWindow(name string, exitObservable bool, cmd *exec.Cmd) *window {
	w := &window{
		name:           name,
		exitObservable: exitObservable,
		done:           make(chan struct{}),
	}

	// Always reap the child, observable or not, so it never lingers as a
	// zombie under a long-lived serve process.
	go func() {
		if err := cmd.Wait(); err != nil {
			logging.Logger.Debug("Terminal process exited with error", "terminal", w.name, "error", err)
		}
		close(w.done)
	}()

	return w
}

func (w *window) Name() string { return w.name }

func (w *window) ExitObservable() bool { return w.exitObservable }

func (w *window) Done() <-chan struct{} { return w.done }
