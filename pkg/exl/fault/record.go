package fault

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Frame is one captured call site. Function is empty when the pc could not
// be symbolized.
type Frame struct {
	PC       uintptr
	Function string
	File     string
	Line     int
}

func (f Frame) Symbolized() bool {
	return f.Function != ""
}

func (f Frame) String() string {
	if !f.Symbolized() {
		return fmt.Sprintf("%#x ?", f.PC)
	}
	return fmt.Sprintf("%#x %s %s:%d", f.PC, f.Function, f.File, f.Line)
}

// Record is the ephemeral description of one fault.
type Record struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Message   string
	Title     string
	Frames    []Frame
	// Signal is nil for an explicit panic
	Signal os.Signal
	// Addr is the faulting address when HasAddr is set
	Addr    uintptr
	HasAddr bool
	// Goroutines holds a dump of every goroutine. It is only gathered for
	// delivered signals, where Frames cannot reach the faulting stack.
	Goroutines []string
}

// Capture records the calling goroutine's stack. skip 0 starts at the caller
// of Capture; depth is clamped like Options.Depth.
func Capture(message string, skip, depth int) Record {
	return Record{
		ID:        newID(),
		CreatedAt: now(),
		Message:   message,
		Title:     DefaultTitle,
		Frames:    captureFrames(skip+1, ClampDepth(depth)),
	}
}

var now = func() time.Time {
	return time.Now().UTC()
}

func newID() uuid.UUID {
	id, err := uuid.NewRandom()
	if err != nil {
		return uuid.Nil
	}
	return id
}

func captureFrames(skip, depth int) []Frame {
	pcs := make([]uintptr, depth)
	// +2 skips runtime.Callers and captureFrames
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}

	out := make([]Frame, 0, n)
	frames := runtime.CallersFrames(pcs[:n])
	for len(out) < depth {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			Function: fr.Function,
			File:     fr.File,
			Line:     fr.Line,
		})
		if !more {
			break
		}
	}
	return out
}

// maxDump bounds the goroutine dump taken on the signal path.
const maxDump = 64 << 10

func dumpGoroutines() []string {
	buf := make([]byte, maxDump)
	n := runtime.Stack(buf, true)
	text := strings.TrimRight(string(buf[:n]), "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.ReplaceAll(l, "\t", "    ")
	}
	return lines
}

func (r Record) header() string {
	var b strings.Builder
	if r.Signal != nil {
		fmt.Fprintf(&b, "[FAULT] - '%s' (signal: %v", r.Message, r.Signal)
		if r.HasAddr {
			fmt.Fprintf(&b, ", addr: %#x", r.Addr)
		}
		b.WriteString(")")
	} else {
		fmt.Fprintf(&b, "[PANIC] - '%s'", r.Message)
	}
	fmt.Fprintf(&b, " [id %s at %s]", r.ID, r.CreatedAt.Format(time.RFC3339Nano))
	return b.String()
}

// Lines renders the report: header, blank line, centered title, delimiter,
// one line per frame, delimiter. A goroutine dump, when present, follows as
// its own bordered section.
func (r Record) Lines() []string {
	title := r.Title
	if title == "" {
		title = DefaultTitle
	}

	texts := make([]string, len(r.Frames))
	width := len(title) + 4
	for i, f := range r.Frames {
		texts[i] = fmt.Sprintf("#%d %s", i, f)
		width = max(width, len(texts[i])+4)
	}

	for _, g := range r.Goroutines {
		width = max(width, len(g)+4)
	}

	delimiter := strings.Repeat("=", width)
	lines := make([]string, 0, len(texts)+len(r.Goroutines)+6)
	lines = append(lines, r.header(), "", center(title, width), delimiter)
	for _, t := range texts {
		lines = append(lines, boxed(t, width))
	}
	lines = append(lines, delimiter)
	if len(r.Goroutines) > 0 {
		for _, g := range r.Goroutines {
			lines = append(lines, boxed(g, width))
		}
		lines = append(lines, delimiter)
	}
	return lines
}

func boxed(s string, width int) string {
	return "| " + s + strings.Repeat(" ", width-len(s)-4) + " |"
}

// WriteTo writes the report in a single Write call.
func (r Record) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, strings.Join(r.Lines(), "\n")+"\n")
	return int64(n), err
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-len(s)-pad)
}
