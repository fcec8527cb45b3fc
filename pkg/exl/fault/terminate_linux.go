//go:build linux

package fault

import (
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"
	"unsafe"
)

// terminate hands sig back to the kernel: the runtime handler is replaced by
// SIG_DFL with a raw rt_sigaction and the signal is sent to the current
// thread, so the process dies by sig (core dump, WIFSIGNALED) without the
// runtime's own crash dump. The exit below only runs if delivery failed.
func terminate(sig os.Signal, grace time.Duration) {
	if s, ok := sig.(syscall.Signal); ok {
		runtime.LockOSThread()
		signal.Reset(s)
		if setDefault(s) == nil {
			_ = syscall.Tgkill(syscall.Getpid(), syscall.Gettid(), s)
			time.Sleep(grace)
		}
	}
	os.Exit(exitCode(sig))
}

// setDefault installs SIG_DFL for s. An all-zero kernel sigaction is SIG_DFL
// with no flags and an empty mask on every linux layout; the buffer is sized
// for the largest of them.
func setDefault(s syscall.Signal) error {
	var act [4]uint64
	_, _, errno := syscall.RawSyscall6(syscall.SYS_RT_SIGACTION,
		uintptr(s), uintptr(unsafe.Pointer(&act)), 0, 8, 0, 0)
	if errno != 0 {
		return errno
	}
	return nil
}
