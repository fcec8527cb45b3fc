package fault

import (
	"bytes"
	"os"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// syncBuffer guards a bytes.Buffer written from the faulting goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// testReporter never ends the process: Terminate records the signal and
// exits the faulting goroutine instead.
func testReporter(out *syncBuffer) (*Reporter, <-chan os.Signal) {
	sigs := make(chan os.Signal, 1)
	r := New(
		WithOutput(out),
		WithTerminate(func(sig os.Signal) {
			sigs <- sig
			runtime.Goexit()
		}),
	)
	return r, sigs
}

// runToTermination runs fn on its own goroutine and requires that it never
// returns normally.
func runToTermination(t *testing.T, fn func()) {
	t.Helper()

	done := make(chan struct{})
	returned := false
	go func() {
		defer close(done)
		fn()
		returned = true
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("fault handling did not terminate")
	}
	require.False(t, returned, "fault handling returned to its caller")
}

func receive(t *testing.T, sigs <-chan os.Signal) os.Signal {
	t.Helper()
	select {
	case sig := <-sigs:
		return sig
	default:
		t.Fatal("terminate was not called")
		return nil
	}
}
