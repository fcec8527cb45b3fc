package fault

import (
	"io"
	"os"
	"time"
)

const (
	MinDepth     = 10
	MaxDepth     = 20
	DefaultDepth = 16

	DefaultTitle = "- Backtrace Symbols -"
	DefaultGrace = 200 * time.Millisecond
)

// Options configure a Reporter. Zero fields take the defaults.
type Options struct {
	// Output receives the report, os.Stderr when nil
	Output io.Writer
	// Depth bounds the captured frames, clamped to [MinDepth, MaxDepth]
	Depth int
	// Title is centered above the backtrace block
	Title string
	// Terminate ends the process for the given signal; it must not return
	Terminate func(sig os.Signal)
	// Grace is how long the default Terminate waits for a re-raised signal
	// before exiting with 128+signal
	Grace time.Duration
}

type Option func(*Options)

func WithOutput(w io.Writer) Option {
	return func(o *Options) { o.Output = w }
}

func WithDepth(depth int) Option {
	return func(o *Options) { o.Depth = depth }
}

func WithTitle(title string) Option {
	return func(o *Options) { o.Title = title }
}

func WithTerminate(terminate func(sig os.Signal)) Option {
	return func(o *Options) { o.Terminate = terminate }
}

func WithGrace(grace time.Duration) Option {
	return func(o *Options) { o.Grace = grace }
}

func (o Options) normalized() Options {
	if o.Output == nil {
		o.Output = os.Stderr
	}
	o.Depth = ClampDepth(o.Depth)
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Grace <= 0 {
		o.Grace = DefaultGrace
	}
	if o.Terminate == nil {
		grace := o.Grace
		o.Terminate = func(sig os.Signal) { terminate(sig, grace) }
	}
	return o
}

// ClampDepth maps a requested depth into the supported range; 0 selects
// DefaultDepth.
func ClampDepth(depth int) int {
	switch {
	case depth == 0:
		return DefaultDepth
	case depth < MinDepth:
		return MinDepth
	case depth > MaxDepth:
		return MaxDepth
	}
	return depth
}
