//go:build linux

package terminal

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubLookPath(t *testing.T, available ...string) {
	t.Helper()
	set := make(map[string]bool, len(available))
	for _, name := range available {
		set[name] = true
	}

	orig := lookPath
	lookPath = func(name string) (string, error) {
		if set[name] {
			return "/usr/bin/" + name, nil
		}
		return "", exec.ErrNotFound
	}
	t.Cleanup(func() { lookPath = orig })
}

func TestPlatformCandidates_Order(t *testing.T) {
	var names []string
	for _, cand := range platformCandidates() {
		names = append(names, cand.name)
	}

	assert.Equal(t, []string{
		"tmux",
		"gnome-terminal",
		"konsole",
		"xfce4-terminal",
		"xterm",
		"terminator",
		"x-terminal-emulator",
	}, names)
}

func TestPlatformCandidates_ProbesUseLookPath(t *testing.T) {
	stubLookPath(t, "konsole", "xterm")
	t.Setenv("TMUX", "")

	probed := map[string]bool{}
	for _, cand := range platformCandidates() {
		probed[cand.name] = cand.probe()
	}

	assert.False(t, probed["tmux"])
	assert.False(t, probed["gnome-terminal"])
	assert.True(t, probed["konsole"])
	assert.True(t, probed["xterm"])
	assert.False(t, probed["terminator"])
}

func TestTmuxCandidate_RequiresTmuxEnvironment(t *testing.T) {
	stubLookPath(t, "tmux")

	cand := tmuxWindowCandidate()

	t.Setenv("TMUX", "")
	assert.False(t, cand.probe(), "outside tmux the candidate must not match")

	t.Setenv("TMUX", "/tmp/tmux-1000/default,42,0")
	assert.True(t, cand.probe())
}

func TestTmuxCandidate_OpensNewWindow(t *testing.T) {
	t.Setenv("FOLLOWUP_DEBUG", "")

	cmd := tmuxWindowCandidate().invoke([]string{"followup", "prompt"}, false)

	assert.Equal(t, []string{"tmux", "new-window", "-n", "followup", "followup prompt"}, cmd.Args)
}

func TestGnomeTerminalCandidate_WrapsCommandInBash(t *testing.T) {
	t.Setenv("FOLLOWUP_DEBUG", "")

	cand := findCandidate(t, "gnome-terminal")
	cmd := cand.invoke([]string{"followup", "prompt", "--question", "Proceed now?"}, false)

	require.Len(t, cmd.Args, 5)
	assert.Equal(t, []string{"gnome-terminal", "--", "bash", "-c"}, cmd.Args[:4])
	assert.Contains(t, cmd.Args[4], "'Proceed now?'")
}

func TestXtermCandidate_KeepOpenTail(t *testing.T) {
	t.Setenv("FOLLOWUP_DEBUG", "")

	cand := findCandidate(t, "xterm")
	cmd := cand.invoke([]string{"followup", "prompt"}, true)

	assert.Equal(t, "xterm", cmd.Args[0])
	assert.Contains(t, cmd.Args[len(cmd.Args)-1], "read -r _")
}

func TestExitObservability(t *testing.T) {
	expected := map[string]bool{
		"tmux":                false,
		"gnome-terminal":      false,
		"konsole":             true,
		"xfce4-terminal":      false,
		"xterm":               true,
		"terminator":          false,
		"x-terminal-emulator": false,
	}

	for _, cand := range platformCandidates() {
		assert.Equal(t, expected[cand.name], cand.exitObservable, cand.name)
	}
}

func findCandidate(t *testing.T, name string) candidate {
	t.Helper()
	for _, cand := range platformCandidates() {
		if cand.name == name {
			return cand
		}
	}
	t.Fatalf("candidate %s not found", name)
	return candidate{}
}
