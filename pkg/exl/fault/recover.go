package fault

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"
)

// Recover is deferred at the top of main or of a goroutine. A panic reaching
// it is reported with its backtrace and the process is terminated with the
// signal the fault corresponds to.
//
//	defer fault.Recover()
func Recover() {
	v := recover()
	if v == nil {
		return
	}
	recovered(Default(), v)
}

// Recover is the method form of the package-level Recover, reporting through r.
func (r *Reporter) Recover() {
	v := recover()
	if v == nil {
		return
	}
	recovered(r, v)
}

// Guard runs fn with memory faults turned into panics and reports any panic
// that escapes fn.
func Guard(fn func()) {
	Default().Guard(fn)
}

func (r *Reporter) Guard(fn func()) {
	defer debug.SetPanicOnFault(debug.SetPanicOnFault(true))
	defer r.Recover()
	fn()
}

func recovered(r *Reporter, v any) {
	sig, addr, hasAddr := classify(v)
	// skip recovered and Recover; the runtime panic frames follow
	r.Fault(fmt.Sprint(v), sig, addr, hasAddr, 2)
}

type addresser interface {
	Addr() uintptr
}

// classify maps a recovered value to the signal the fault stands for.
func classify(v any) (os.Signal, uintptr, bool) {
	err, ok := v.(runtime.Error)
	if !ok {
		return syscall.SIGABRT, 0, false
	}

	var addr uintptr
	a, hasAddr := err.(addresser)
	if hasAddr {
		addr = a.Addr()
	}

	msg := err.Error()
	switch {
	case hasAddr, strings.Contains(msg, "invalid memory address"), strings.Contains(msg, "nil pointer"):
		return syscall.SIGSEGV, addr, hasAddr
	case strings.Contains(msg, "divide by zero"):
		return syscall.SIGFPE, addr, hasAddr
	}
	return syscall.SIGABRT, addr, hasAddr
}
