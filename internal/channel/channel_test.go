package channel

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"followup/internal/domain"
)

func TestNewHandle_UniquePaths(t *testing.T) {
	dir := t.TempDir()

	h1 := NewHandle(dir)
	h2 := NewHandle(dir)

	assert.NotEqual(t, h1.Path(), h2.Path(), "each handle should get its own file")
	assert.Equal(t, dir, filepath.Dir(h1.Path()))
	assert.True(t, strings.HasPrefix(filepath.Base(h1.Path()), "followup-"))
	assert.True(t, strings.HasSuffix(h1.Path(), ".json"))
}

func TestNewHandle_DefaultsToTempDir(t *testing.T) {
	h := NewHandle("")

	assert.Equal(t, os.TempDir(), filepath.Dir(h.Path()))
}

func TestHandleForPath_RoundTrip(t *testing.T) {
	h := NewHandle(t.TempDir())

	rebuilt := HandleForPath(h.Path())

	assert.Equal(t, h.Path(), rebuilt.Path())
}

func TestWriteAndRead(t *testing.T) {
	tests := []struct {
		name   string
		result domain.Result
	}{
		{"answered", domain.NewAnswered("Make changes")},
		{"answered with unicode", domain.NewAnswered("garçon — 説明 \"quoted\"\nsecond line")},
		{"cancelled", domain.NewCancelled()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandle(t.TempDir())

			require.NoError(t, h.Write(tt.result))

			got, err := h.Read()
			require.NoError(t, err)
			assert.Equal(t, tt.result, got)
		})
	}
}

func TestWrite_LeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	h := NewHandle(dir)

	require.NoError(t, h.Write(domain.NewAnswered("ok")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(h.Path()), entries[0].Name())
}

func TestWrite_CreatesChannelDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "channel")
	h := NewHandle(dir)

	require.NoError(t, h.Write(domain.NewAnswered("ok")))

	_, err := os.Stat(h.Path())
	assert.NoError(t, err)
}

func TestWrite_RejectsInvalidResult(t *testing.T) {
	h := NewHandle(t.TempDir())

	err := h.Write(domain.Result{Status: "done"})

	assert.Error(t, err)
	_, statErr := os.Stat(h.Path())
	assert.True(t, os.IsNotExist(statErr), "nothing should be published")
}

func TestRead_MissingFile(t *testing.T) {
	h := NewHandle(t.TempDir())

	_, err := h.Read()

	assert.True(t, os.IsNotExist(err))
}

func TestRead_MalformedFileCountsAsCancelled(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "not json at all"},
		{"truncated", `{"status":"answ`},
		{"unknown status", `{"status":"done","text":"x"}`},
		{"empty file", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandle(t.TempDir())
			require.NoError(t, os.WriteFile(h.Path(), []byte(tt.content), 0600))

			got, err := h.Read()
			require.NoError(t, err)
			assert.Equal(t, domain.NewCancelled(), got)
		})
	}
}

func TestCleanup(t *testing.T) {
	h := NewHandle(t.TempDir())
	require.NoError(t, h.Write(domain.NewAnswered("ok")))

	h.Cleanup()

	_, err := os.Stat(h.Path())
	assert.True(t, os.IsNotExist(err))

	// A second cleanup of an already-gone file is fine
	h.Cleanup()
}

func TestCleanup_RemovesTempLeftover(t *testing.T) {
	h := NewHandle(t.TempDir())
	tmp := h.Path() + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte(`{"status":"answered"`), 0600))

	h.Cleanup()

	_, err := os.Stat(tmp)
	assert.True(t, os.IsNotExist(err))
}
