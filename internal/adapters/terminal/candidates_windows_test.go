//go:build windows

package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformCandidates_Order(t *testing.T) {
	var names []string
	for _, cand := range platformCandidates() {
		names = append(names, cand.name)
	}

	assert.Equal(t, []string{"powershell", "cmd"}, names)
}

func TestPowershellCommand_SingleQuoteDoubling(t *testing.T) {
	cmd := powershellCommand([]string{`C:\followup.exe`, "prompt", "--question", "what's next?"})

	assert.Equal(t, `& 'C:\followup.exe' 'prompt' '--question' 'what''s next?'`, cmd)
}

func TestPowershellCandidate_KeepOpenUsesNoExit(t *testing.T) {
	cand := platformCandidates()[0]

	open := cand.invoke([]string{"followup.exe", "prompt"}, true)
	closed := cand.invoke([]string{"followup.exe", "prompt"}, false)

	assert.Contains(t, open.Args, "-NoExit")
	assert.NotContains(t, closed.Args, "-NoExit")
	require.NotNil(t, open.SysProcAttr)
	assert.True(t, cand.exitObservable)
}

func TestCmdCandidate_KeepOpenUsesSlashK(t *testing.T) {
	cand := platformCandidates()[1]

	open := cand.invoke([]string{"followup.exe", "prompt"}, true)
	closed := cand.invoke([]string{"followup.exe", "prompt"}, false)

	assert.Equal(t, "/K", open.Args[1])
	assert.Equal(t, "/C", closed.Args[1])
}
