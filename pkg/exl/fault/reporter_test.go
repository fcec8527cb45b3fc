package fault

import (
	"os"
	"runtime"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

var sink int

func TestPanic_WritesBlockAndAborts(t *testing.T) {
	t.Parallel()

	out := &syncBuffer{}
	r, sigs := testReporter(out)

	runToTermination(t, func() { r.Panic("boom") })

	assert.Equal(t, syscall.SIGABRT, receive(t, sigs))
	text := out.String()
	assert.Contains(t, text, "[PANIC] - 'boom'")
	assert.Contains(t, text, DefaultTitle)
	assert.Contains(t, text, "TestPanic_WritesBlockAndAborts")
	assert.Equal(t, 2, delimiters(text))
}

func delimiters(text string) int {
	n := 0
	for _, l := range strings.Split(text, "\n") {
		if l != "" && strings.Trim(l, "=") == "" {
			n++
		}
	}
	return n
}

func TestPanicf_FormatsMessage(t *testing.T) {
	t.Parallel()

	out := &syncBuffer{}
	r, sigs := testReporter(out)

	runToTermination(t, func() { r.Panicf("bad value %d", 42) })

	assert.Equal(t, syscall.SIGABRT, receive(t, sigs))
	assert.Contains(t, out.String(), "'bad value 42'")
}

func TestPanic_CustomTitle(t *testing.T) {
	t.Parallel()

	out := &syncBuffer{}
	sigs := make(chan os.Signal, 1)
	r := New(
		WithOutput(out),
		WithTitle("- Crash -"),
		WithDepth(12),
		WithTerminate(func(sig os.Signal) {
			sigs <- sig
			runtime.Goexit()
		}),
	)

	runToTermination(t, func() { r.Panic("titled") })

	receive(t, sigs)
	assert.Contains(t, out.String(), "- Crash -")
	assert.Equal(t, 12, r.Options().Depth)
}

func TestPanic_WhileHandlingTerminatesAbruptly(t *testing.T) {
	t.Parallel()

	out := &syncBuffer{}
	r, sigs := testReporter(out)
	r.handling.Store(true)

	runToTermination(t, func() { r.Panic("nested") })

	assert.Equal(t, syscall.SIGABRT, receive(t, sigs))
	assert.Contains(t, out.String(), "while handling a fault")
	assert.NotContains(t, out.String(), DefaultTitle)
	assert.True(t, r.handling.Load())
}

type panickingWriter struct{}

func (panickingWriter) Write([]byte) (int, error) {
	panic("writer exploded")
}

func TestPanic_BrokenOutputStillTerminates(t *testing.T) {
	t.Parallel()

	sigs := make(chan os.Signal, 1)
	r := New(
		WithOutput(panickingWriter{}),
		WithTerminate(func(sig os.Signal) {
			sigs <- sig
			runtime.Goexit()
		}),
	)

	runToTermination(t, func() { r.Panic("unprintable") })

	assert.Equal(t, syscall.SIGABRT, receive(t, sigs))
	assert.False(t, r.handling.Load())
}

func TestSignalled_ReportsSignal(t *testing.T) {
	t.Parallel()

	out := &syncBuffer{}
	r, sigs := testReporter(out)

	runToTermination(t, func() { r.Signalled(syscall.SIGBUS) })

	assert.Equal(t, syscall.SIGBUS, receive(t, sigs))
	assert.Contains(t, out.String(), "[FAULT] - 'fatal signal'")
	assert.Contains(t, out.String(), syscall.SIGBUS.String())
	assert.Contains(t, out.String(), "| goroutine ")
	assert.Equal(t, 3, delimiters(out.String()))
}

func TestGuard_NilDereference(t *testing.T) {
	t.Parallel()

	out := &syncBuffer{}
	r, sigs := testReporter(out)

	runToTermination(t, func() {
		r.Guard(func() {
			var p *int
			sink = *p
		})
	})

	assert.Equal(t, syscall.SIGSEGV, receive(t, sigs))
	assert.Contains(t, out.String(), "invalid memory address")
	assert.Contains(t, out.String(), "[FAULT]")
}

func TestGuard_DivideByZero(t *testing.T) {
	t.Parallel()

	out := &syncBuffer{}
	r, sigs := testReporter(out)
	zero := 0

	runToTermination(t, func() {
		r.Guard(func() { sink = 1 / zero })
	})

	assert.Equal(t, syscall.SIGFPE, receive(t, sigs))
	assert.Contains(t, out.String(), "divide by zero")
}

func TestGuard_PlainPanicAborts(t *testing.T) {
	t.Parallel()

	out := &syncBuffer{}
	r, sigs := testReporter(out)

	runToTermination(t, func() {
		r.Guard(func() { panic("plain") })
	})

	assert.Equal(t, syscall.SIGABRT, receive(t, sigs))
	assert.Contains(t, out.String(), "'plain'")
}

func TestGuard_NoPanicReturns(t *testing.T) {
	t.Parallel()

	out := &syncBuffer{}
	r, _ := testReporter(out)
	ran := false

	r.Guard(func() { ran = true })

	assert.True(t, ran)
	assert.Empty(t, out.String())
}

func TestClassify(t *testing.T) {
	t.Parallel()

	sig, _, hasAddr := classify("not a runtime error")
	assert.Equal(t, syscall.SIGABRT, sig)
	assert.False(t, hasAddr)
}

func TestSetDefault(t *testing.T) {
	out := &syncBuffer{}
	r, _ := testReporter(out)

	prev := SetDefault(r)
	defer SetDefault(prev)

	assert.Same(t, r, Default())
	assert.NotNil(t, prev)
}
