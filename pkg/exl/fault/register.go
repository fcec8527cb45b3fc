package fault

import (
	"os"
	"os/signal"
	"runtime"
	"sync/atomic"
)

const (
	unregistered int32 = iota
	installing
	registered
)

var registration atomic.Int32

// Register routes FatalSignals to the default reporter. Only the first caller
// installs anything and gets true; concurrent callers wait until the
// installation is visible and get false.
func Register() bool {
	if !registration.CompareAndSwap(unregistered, installing) {
		for registration.Load() == installing {
			runtime.Gosched()
		}
		return false
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, FatalSignals...)
	go watch(ch)

	registration.Store(registered)
	return true
}

func Registered() bool {
	return registration.Load() == registered
}

func watch(ch chan os.Signal) {
	sig := <-ch
	// the first delivered signal consumes the registration
	signal.Stop(ch)
	registration.Store(unregistered)
	Default().Signalled(sig)
}
