package errors

import (
	"bytes"
	"fmt"
	"io"
	"runtime"
)

// Tracer is a captured call stack.
type Tracer interface {
	StackTrace(w io.Writer)
	RangeFrames(handle func(frame runtime.Frame))
	fmt.Stringer
}

// depth is the maximum number of frames captured.
const depth = 1 << 5

type trace []uintptr

var _ Tracer = (*trace)(nil)

// String implements fmt.Stringer.
func (t trace) String() string {
	buf := &bytes.Buffer{}
	t.StackTrace(buf)
	return buf.String()
}

// RangeFrames calls handle for every frame with a known function, innermost first.
// A nil handle writes the frames to the error output.
func (t trace) RangeFrames(handle func(frame runtime.Frame)) {
	if len(t) == 0 {
		return
	}
	if handle == nil {
		handle = func(frame runtime.Frame) {
			writeFrame(errOutput, frame)
		}
	}
	frames := runtime.CallersFrames(t)
	for {
		frame, more := frames.Next()
		if frame.Function != "" {
			handle(frame)
		}
		if !more {
			return
		}
	}
}

// StackTrace writes a "Traceback:" header followed by one entry per frame.
func (t trace) StackTrace(w io.Writer) {
	_, _ = fmt.Fprintln(w, "Traceback:")
	t.RangeFrames(func(frame runtime.Frame) {
		writeFrame(w, frame)
	})
}

func writeFrame(w io.Writer, frame runtime.Frame) {
	_, _ = fmt.Fprintf(w, "    %s(...)\n", frame.Function)
	_, _ = fmt.Fprintf(w, "         %s:%d\n", frame.File, frame.Line)
}

// GetTrace captures the current goroutine's stack, skipping skip frames
// as runtime.Callers counts them: 1 is GetTrace itself, 2 its caller.
func GetTrace(skip int) Tracer {
	pcs := make(trace, depth)
	count := runtime.Callers(skip, pcs)
	return pcs[:count]
}

// StackTrace writes the traceback of its caller to w.
func StackTrace(w io.Writer) {
	GetTrace(3).StackTrace(w)
}
