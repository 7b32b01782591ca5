package replace

import (
	"fmt"

	"github.com/stkali/replace/errors"
)

// guard repairs a slot whose value has been moved out when the scope it is
// deferred in exits before disarm is reached.
//
//	armed --disarm--> disarmed
//	armed --fire--> recovered (fallback written, panic continues)
//	armed --fire--> aborted   (abort set, or fallback failed)
type guard[T any] struct {
	dest     *T
	fallback func() T
	// abort terminates the process after the slot has been repaired, or right
	// away when there is no fallback.
	abort bool
	armed bool
}

// take moves the value out of the slot, leaving the zero value, and arms the guard.
func (g *guard[T]) take() T {
	v := *g.dest
	var zero T
	*g.dest = zero
	g.armed = true
	return v
}

func (g *guard[T]) disarm() {
	g.armed = false
}

// fire must be deferred directly: in abort mode it recovers the transform's panic
// value for the diagnostic.
func (g *guard[T]) fire() {
	if !g.armed {
		return
	}
	g.armed = false
	if !g.abort {
		g.repair()
		return
	}
	cause := recover()
	if g.fallback == nil {
		errors.Abort("replace: transform of %s failed: %s", typeName[T](), describe(cause))
	}
	g.repair()
	errors.Abort("replace: transform of %s failed: %s; slot set to %+v", typeName[T](), describe(cause), *g.dest)
}

// repair writes the fallback value into the slot. A failing fallback aborts.
func (g *guard[T]) repair() {
	repaired := false
	defer func() {
		if !repaired {
			errors.Abort("replace: fallback for %s failed while repairing the slot: %s", typeName[T](), describe(recover()))
		}
	}()
	*g.dest = g.fallback()
	repaired = true
}

func typeName[T any]() string {
	return fmt.Sprintf("%T", (*T)(nil))[1:]
}

// describe renders a recovered value. nil means the goroutine is exiting
// through runtime.Goexit, since panic(nil) recovers as *runtime.PanicNilError.
func describe(cause any) string {
	if cause == nil {
		return "runtime.Goexit called"
	}
	return fmt.Sprintf("panic: %v", cause)
}
