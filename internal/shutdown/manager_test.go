package shutdown

import (
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"shapepad/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShutdownReverseOrder(t *testing.T) {
	m := NewManager(logger.NewNop())

	var mu sync.Mutex
	var order []string
	record := func(name string) Func {
		return func() {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, name)
		}
	}

	m.Register("first", record("first"))
	m.Register("second", record("second"))
	m.Register("third", record("third"))

	m.Shutdown()

	assert.Equal(t, []string{"third", "second", "first"}, order)
	assert.Error(t, m.Context().Err())

	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestShutdownRunsOnce(t *testing.T) {
	m := NewManager(logger.NewNop())
	calls := 0
	m.Register("counter", Func(func() { calls++ }))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, 1, calls)
}

func TestShutdownStepTimeout(t *testing.T) {
	m := NewManager(logger.NewNop())
	m.SetStepTimeout(20 * time.Millisecond)

	block := make(chan struct{})
	defer close(block)
	reached := false

	m.Register("after", Func(func() { reached = true }))
	m.Register("stuck", Func(func() { <-block }))

	start := time.Now()
	m.Shutdown()

	require.True(t, reached)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func sendSIGTERM(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("SIGTERM cannot be sent to the current process on windows")
	}
	p, err := os.FindProcess(os.Getpid())
	require.NoError(t, err)
	require.NoError(t, p.Signal(syscall.SIGTERM))
}

func TestListenHandsSignalToCallback(t *testing.T) {
	m := NewManager(logger.NewNop())
	var stopped atomic.Int32
	m.Register("component", Func(func() { stopped.Add(1) }))

	signalled := make(chan struct{})
	m.Listen(func() { close(signalled) })
	t.Cleanup(m.Shutdown)

	sendSIGTERM(t)

	select {
	case <-signalled:
	case <-time.After(2 * time.Second):
		t.Fatal("signal callback not called")
	}
	assert.Zero(t, stopped.Load(), "components stop only when the caller shuts down")

	m.Shutdown()
	assert.Equal(t, int32(1), stopped.Load())
}

func TestListenWithoutCallbackShutsDown(t *testing.T) {
	m := NewManager(logger.NewNop())
	var stopped atomic.Int32
	m.Register("component", Func(func() { stopped.Add(1) }))

	m.Listen(nil)
	sendSIGTERM(t)

	select {
	case <-m.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown not triggered by signal")
	}
	assert.Eventually(t, func() bool { return stopped.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
}
