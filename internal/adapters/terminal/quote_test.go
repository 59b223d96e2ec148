package terminal

import (
	"strings"
	"testing"

	"github.com/kballard/go-shellquote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellCommand_RoundTripsArgv(t *testing.T) {
	t.Setenv("FOLLOWUP_DEBUG", "")

	argv := []string{
		"/opt/follow up/followup", "prompt",
		"--question", `what's "next"?`,
		"--option", "Make changes",
	}

	cmd := shellCommand(argv, false)

	parsed, err := shellquote.Split(cmd)
	require.NoError(t, err)
	assert.Equal(t, argv, parsed, "quoting must survive a shell word split")
}

func TestShellCommand_KeepOpenAppendsReadTail(t *testing.T) {
	t.Setenv("FOLLOWUP_DEBUG", "")

	cmd := shellCommand([]string{"followup", "prompt"}, true)

	assert.True(t, strings.HasSuffix(cmd, "read -r _"))
}

func TestShellCommand_InheritsDebugSettings(t *testing.T) {
	t.Setenv("FOLLOWUP_DEBUG", "1")
	t.Setenv("FOLLOWUP_DEBUG_FILE", "/var/log/follow up.log")

	cmd := shellCommand([]string{"followup", "prompt"}, false)

	assert.True(t, strings.HasPrefix(cmd, "FOLLOWUP_DEBUG=1 "))
	assert.Contains(t, cmd, "FOLLOWUP_DEBUG_FILE='/var/log/follow up.log'")
}

func TestShellCommand_NoDebugPrefixByDefault(t *testing.T) {
	t.Setenv("FOLLOWUP_DEBUG", "")

	cmd := shellCommand([]string{"followup", "prompt"}, false)

	assert.NotContains(t, cmd, "FOLLOWUP_DEBUG")
}
