package exl

import (
	"bytes"
	"os"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/ib-77/exl/pkg/exl/fault"
	"github.com/stretchr/testify/require"
)

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// expectFatal runs fn against a default reporter that ends only the calling
// goroutine, and returns what was reported. Tests using it cannot run in
// parallel.
func expectFatal(t *testing.T, fn func()) string {
	t.Helper()

	out := &lockedBuffer{}
	terminated := make(chan os.Signal, 1)
	prev := fault.SetDefault(fault.New(
		fault.WithOutput(out),
		fault.WithTerminate(func(sig os.Signal) {
			terminated <- sig
			runtime.Goexit()
		}),
	))
	defer fault.SetDefault(prev)

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
		t.Fatal("fatal accessor did not terminate")
	}
	require.False(t, returned, "fatal accessor returned")
	require.Len(t, terminated, 1)
	return out.String()
}
