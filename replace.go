package replace

import (
	"github.com/stkali/replace/errors"
)

// With moves the value out of dest, passes it to f and stores the result in dest.
//
// If f panics, fallback is called once and its result is stored in dest before the
// panic continues to propagate. If fallback panics as well the process is aborted.
// On success fallback is never called.
func With[T any](dest *T, f func(T) T, fallback func() T) {
	g := guard[T]{dest: dest, fallback: fallback}
	defer g.fire()
	*dest = f(g.take())
	g.disarm()
}

// WithOrDefault is With with the zero value of T as the fallback.
func WithOrDefault[T any](dest *T, f func(T) T) {
	With(dest, f, func() (zero T) { return })
}

// WithOrAbort moves the value out of dest, passes it to f and stores the result in dest.
// If f panics the process is aborted; control never returns to the caller with dest
// holding anything but the result of f.
func WithOrAbort[T any](dest *T, f func(T) T) {
	g := guard[T]{dest: dest, abort: true}
	defer g.fire()
	*dest = f(g.take())
	g.disarm()
}

// WithOrAbortWith is WithOrAbort, except that when f panics, produce is called once
// and its result is stored in dest and included in the abort message before the
// process terminates.
func WithOrAbortWith[T any](dest *T, f func(T) T, produce func() T) {
	g := guard[T]{dest: dest, fallback: produce, abort: true}
	defer g.fire()
	*dest = f(g.take())
	g.disarm()
}

// WithAndReturn is With for a transform that also hands a result back to the caller.
func WithAndReturn[T, R any](dest *T, f func(T) (T, R), fallback func() T) R {
	g := guard[T]{dest: dest, fallback: fallback}
	defer g.fire()
	v, ret := f(g.take())
	*dest = v
	g.disarm()
	return ret
}

// TryWith is With for a transform that reports failure by returning an error.
//
// When f returns an error its value is discarded, fallback is called once and its
// result is stored in dest, and the error is returned wrapped so that errors.Is
// matches it. Panics are handled as in With.
func TryWith[T any](dest *T, f func(T) (T, error), fallback func() T) error {
	g := guard[T]{dest: dest, fallback: fallback}
	defer g.fire()
	v, err := f(g.take())
	if err != nil {
		g.disarm()
		g.repair()
		return errors.Newf("replace: transform of %s failed: %s", typeName[T](), err)
	}
	*dest = v
	g.disarm()
	return nil
}

// Set stores v in dest and returns a function restoring the previous value.
// Unlike With nothing is guarded: the caller decides when to restore.
//
//	defer replace.Set(&timeout, time.Millisecond)()
func Set[T any](dest *T, v T) (restore func()) {
	previous := *dest
	*dest = v
	return func() {
		*dest = previous
	}
}
