package errors

import (
	stderr "errors"
	"fmt"
	"io"
	"runtime"
)

var Is = stderr.Is
var As = stderr.As
var Join = stderr.Join

// Error is a constant error type, usable for sentinel values.
type Error string

func (e Error) Error() string {
	return string(e)
}

// tracedErr is a message plus every error argument it was formatted from.
// The message is always the last element of errs.
type tracedErr struct {
	errs []error
	Tracer
}

func (t *tracedErr) Unwrap() []error {
	return t.errs
}

func (t *tracedErr) Error() string {
	return t.errs[len(t.errs)-1].Error()
}

func (t *tracedErr) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		_, _ = fmt.Fprintf(f, "Error: %s\nTrace:\n", t.Error())
		t.RangeFrames(func(frame runtime.Frame) {
			_, _ = fmt.Fprintf(f, "    %s(...)\n", frame.Function)
			_, _ = fmt.Fprintf(f, "         %s:%d\n", frame.File, frame.Line)
		})
	case 'q':
		_, _ = fmt.Fprintf(f, "%q", t.Error())
	default:
		_, _ = io.WriteString(f, t.Error())
	}
}

var _ error = (*tracedErr)(nil)
var _ fmt.Formatter = (*tracedErr)(nil)

// Newf formats an error message and records the caller's trace.
// Every argument that is a non-nil error stays reachable through Is and As.
func Newf(format string, a ...any) error {
	err := &tracedErr{}
	for _, e := range a {
		if argErr, ok := e.(error); ok && argErr != nil {
			err.errs = append(err.errs, argErr)
		}
	}
	err.errs = append(err.errs, Error(fmt.Sprintf(format, a...)))
	err.Tracer = GetTrace(3)
	return err
}

// New returns an error with the given text and the caller's trace.
func New(text string) error {
	return &tracedErr{
		errs:   []error{Error(text)},
		Tracer: GetTrace(3),
	}
}

// TraceOf returns the trace recorded by New or Newf, or nil for any other error.
func TraceOf(err error) Tracer {
	var t *tracedErr
	if As(err, &t) {
		return t.Tracer
	}
	return nil
}
