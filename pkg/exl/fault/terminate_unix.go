//go:build unix && !linux

package fault

import (
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"
)

// terminate restores the default disposition of sig and re-raises it. The Go
// runtime turns a kill-sent fatal signal into a throw; with the crash
// traceback level that throw ends in SIGABRT instead of exit status 2.
func terminate(sig os.Signal, grace time.Duration) {
	if s, ok := sig.(syscall.Signal); ok {
		debug.SetTraceback("crash")
		signal.Reset(s)
		_ = syscall.Kill(syscall.Getpid(), s)
		time.Sleep(grace)
	}
	os.Exit(exitCode(sig))
}
