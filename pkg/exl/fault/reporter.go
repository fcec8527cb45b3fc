package fault

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"syscall"
)

// Reporter writes fault reports and terminates the process.
type Reporter struct {
	opts     Options
	handling atomic.Bool
}

func New(opts ...Option) *Reporter {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return NewWithOptions(o)
}

func NewWithOptions(o Options) *Reporter {
	return &Reporter{opts: o.normalized()}
}

func (r *Reporter) Options() Options {
	return r.opts
}

// Panic reports msg with the caller's backtrace and aborts. It never returns.
func (r *Reporter) Panic(msg string) {
	r.panicSkip(msg, 1)
}

func (r *Reporter) Panicf(format string, args ...any) {
	r.panicSkip(fmt.Sprintf(format, args...), 1)
}

func (r *Reporter) panicSkip(msg string, skip int) {
	if !r.enter() {
		r.abrupt(msg, syscall.SIGABRT)
	}
	defer r.handling.Store(false)

	rec := r.capture(msg, skip+1)
	r.finish(rec, syscall.SIGABRT)
}

// Signalled reports a fatal signal and hands it back to the OS. Signals
// arrive through os/signal on a separate goroutine, so the interrupted stack
// is not available; the report carries a dump of all goroutines instead.
func (r *Reporter) Signalled(sig os.Signal) {
	if !r.enter() {
		r.abrupt("fatal signal", sig)
	}
	defer r.handling.Store(false)

	rec := r.capture("fatal signal", 1)
	rec.Signal = sig
	func() {
		defer func() { _ = recover() }()
		rec.Goroutines = dumpGoroutines()
	}()
	r.finish(rec, sig)
}

// Fault reports a recovered Go runtime fault as if sig had been delivered.
func (r *Reporter) Fault(msg string, sig os.Signal, addr uintptr, hasAddr bool, skip int) {
	if !r.enter() {
		r.abrupt(msg, sig)
	}
	defer r.handling.Store(false)

	rec := r.capture(msg, skip+1)
	rec.Signal = sig
	rec.Addr, rec.HasAddr = addr, hasAddr
	r.finish(rec, sig)
}

func (r *Reporter) enter() bool {
	return r.handling.CompareAndSwap(false, true)
}

func (r *Reporter) capture(msg string, skip int) Record {
	rec := Record{Message: msg, Title: r.opts.Title}
	// capture or symbolization trouble leaves whatever was gathered
	func() {
		defer func() { _ = recover() }()
		rec.ID = newID()
		rec.CreatedAt = now()
		rec.Frames = captureFrames(skip+2, r.opts.Depth)
	}()
	return rec
}

func (r *Reporter) finish(rec Record, sig os.Signal) {
	r.emit(rec)
	r.opts.Terminate(sig)
	os.Exit(exitCode(sig))
}

func (r *Reporter) emit(rec Record) {
	defer func() { _ = recover() }()
	_, _ = rec.WriteTo(r.opts.Output)
}

// abrupt handles a fault raised while a fault is already being reported.
func (r *Reporter) abrupt(msg string, sig os.Signal) {
	func() {
		defer func() { _ = recover() }()
		_, _ = io.WriteString(r.opts.Output, "[PANIC] - '"+msg+"' (while handling a fault)\n")
	}()
	r.opts.Terminate(sig)
	os.Exit(exitCode(sig))
}

var std atomic.Pointer[Reporter]

func init() {
	std.Store(New())
}

func Default() *Reporter {
	return std.Load()
}

// SetDefault replaces the package-level reporter and returns the previous one.
func SetDefault(r *Reporter) *Reporter {
	if r == nil {
		r = New()
	}
	return std.Swap(r)
}

// Configure rebuilds the package-level reporter from opts.
func Configure(opts ...Option) {
	SetDefault(New(opts...))
}

func Panic(msg string) {
	Default().panicSkip(msg, 1)
}

func Panicf(format string, args ...any) {
	Default().panicSkip(fmt.Sprintf(format, args...), 1)
}
