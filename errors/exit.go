package errors

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// AbortCode is the exit status used by Abort, the same status the Go runtime
// exits with on an unrecovered panic.
const AbortCode = 2

// ErrAborted is raised as a panic by Abort if the exit function returns,
// which only happens when it has been replaced with SetExit or ReplaceExit.
const ErrAborted = Error("process aborted")

var (
	// errPrefix is prepended to fatal messages, followed by ": ".
	errPrefix = "fatal error"

	// errOutput receives fatal messages and tracebacks.
	errOutput io.Writer = os.Stderr

	// exitHook runs right before the process exits.
	exitHook ExitHook = nil

	osExit = os.Exit
)

// ExitHook is called with the exit code, the message written (empty for Exit) and
// the trace of the code that requested the exit.
type ExitHook func(code int, msg string, tracer Tracer)

// SetErrPrefix changes the prefix of fatal messages. An empty prefix disables it.
func SetErrPrefix(prefix string) {
	errPrefix = prefix
}

// SetErrPrefixf is the formatted version of SetErrPrefix.
func SetErrPrefixf(s string, args ...any) {
	errPrefix = fmt.Sprintf(s, args...)
}

// SetErrOutput sets where fatal messages are written.
func SetErrOutput(writer io.Writer) {
	errOutput = writer
}

// SetExitHook sets a hook called before the program exits. nil removes it.
func SetExitHook(hook ExitHook) {
	exitHook = hook
}

// SetExit replaces the function used to terminate the process. nil restores os.Exit.
func SetExit(exit func(code int)) {
	if exit == nil {
		exit = os.Exit
	}
	osExit = exit
}

// ReplaceExit replaces the exit function and returns a function restoring the previous one.
//
//	defer errors.ReplaceExit(func(code int) { ... })()
func ReplaceExit(exit func(code int)) (restore func()) {
	previous := osExit
	SetExit(exit)
	return func() {
		osExit = previous
	}
}

// Exit calls the exit hook, if any, and exits with code.
func Exit(code int) {
	if exitHook != nil {
		exitHook(code, "", GetTrace(3))
	}
	osExit(code)
}

// Abort writes the formatted message and the caller's traceback to the error output,
// calls the exit hook and exits with AbortCode. It does not return: if the exit
// function was replaced and returns, Abort panics with ErrAborted.
func Abort(format string, args ...any) {
	if errPrefix != "" {
		var sb strings.Builder
		sb.Grow(len(errPrefix) + 2 + len(format))
		sb.WriteString(errPrefix)
		sb.WriteString(": ")
		sb.WriteString(format)
		format = sb.String()
	}
	msg := fmt.Sprintf(format, args...)
	tracer := GetTrace(3)
	_, _ = fmt.Fprintln(errOutput, msg)
	tracer.StackTrace(errOutput)
	if exitHook != nil {
		exitHook(AbortCode, msg, tracer)
	}
	osExit(AbortCode)
	panic(ErrAborted)
}
