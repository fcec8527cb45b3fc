package fault

import (
	"os"
	"syscall"
)

// FatalSignals is the set Register redirects to the reporter.
var FatalSignals = []os.Signal{
	syscall.SIGSEGV,
	syscall.SIGILL,
	syscall.SIGFPE,
	syscall.SIGABRT,
	syscall.SIGBUS,
}

// exitCode follows the shell convention for death by signal.
func exitCode(sig os.Signal) int {
	if s, ok := sig.(syscall.Signal); ok {
		return 128 + int(s)
	}
	return 2
}
