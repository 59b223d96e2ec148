package channel

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"followup/internal/domain"
)

func TestAwait_ReturnsAlreadyPublishedResult(t *testing.T) {
	h := NewHandle(t.TempDir())
	require.NoError(t, h.Write(domain.NewAnswered("done")))

	got, err := Await(context.Background(), h, time.Second, nil)

	require.NoError(t, err)
	assert.Equal(t, domain.NewAnswered("done"), got)
}

func TestAwait_SeesLateWrite(t *testing.T) {
	h := NewHandle(t.TempDir())

	go func() {
		time.Sleep(50 * time.Millisecond)
		_ = h.Write(domain.NewAnswered("late"))
	}()

	got, err := Await(context.Background(), h, 10*time.Second, nil)

	require.NoError(t, err)
	assert.Equal(t, "late", got.Text)
}

func TestAwait_Timeout(t *testing.T) {
	h := NewHandle(t.TempDir())

	start := time.Now()
	_, err := Await(context.Background(), h, 300*time.Millisecond, nil)

	assert.ErrorIs(t, err, domain.ErrTimeout)
	assert.GreaterOrEqual(t, time.Since(start), 250*time.Millisecond)
}

func TestAwait_ContextCancelled(t *testing.T) {
	h := NewHandle(t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := Await(ctx, h, 0, nil)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestAwait_PromptExitWithoutResponseIsCancelled(t *testing.T) {
	h := NewHandle(t.TempDir())

	done := make(chan struct{})
	go func() {
		time.Sleep(50 * time.Millisecond)
		close(done)
	}()

	got, err := Await(context.Background(), h, 10*time.Second, done)

	require.NoError(t, err)
	assert.Equal(t, domain.NewCancelled(), got)
}

func TestAwait_PromptExitAfterWriteReturnsAnswer(t *testing.T) {
	h := NewHandle(t.TempDir())
	require.NoError(t, h.Write(domain.NewAnswered("published first")))

	done := make(chan struct{})
	close(done)

	got, err := Await(context.Background(), h, 10*time.Second, done)

	require.NoError(t, err)
	assert.Equal(t, "published first", got.Text)
}

func TestAwait_MalformedResponseCountsAsCancelled(t *testing.T) {
	h := NewHandle(t.TempDir())

	go func() {
		time.Sleep(50 * time.Millisecond)
		_ = os.WriteFile(h.Path(), []byte("not a result"), 0600)
	}()

	got, err := Await(context.Background(), h, 10*time.Second, nil)

	require.NoError(t, err)
	assert.Equal(t, domain.NewCancelled(), got)
}
