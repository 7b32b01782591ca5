package replace

import (
	"bytes"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stkali/replace/errors"
)

// abortChildEnv selects the scenario a re-executed test binary runs.
const abortChildEnv = "REPLACE_ABORT_CHILD"

var abortScenarios = map[string]func(){
	"transform": func() {
		slot := 1
		WithOrAbort(&slot, func(int) int { panic("transform failed") })
	},
	"fallback": func() {
		slot := State{KindA, "x"}
		With(&slot, func(State) State {
			panic("transform failed")
		}, func() State {
			panic("fallback failed")
		})
	},
	"produce": func() {
		slot := "old"
		WithOrAbortWith(&slot, func(string) string { panic("transform failed") }, func() string { return "last" })
	},
}

// TestAbortChild is the entry point of the re-executed binary. It does nothing
// in a normal test run.
func TestAbortChild(t *testing.T) {
	scenario, ok := abortScenarios[os.Getenv(abortChildEnv)]
	if !ok {
		t.Skip("only runs as a child process")
	}
	scenario()
	// unreachable when the process aborts
	os.Exit(0)
}

func TestAbortTerminatesProcess(t *testing.T) {
	if os.Getenv(abortChildEnv) != "" {
		t.Skip("running as a child process")
	}
	cases := []struct {
		scenario string
		expect   string
	}{
		{"transform", "fatal error: replace: transform of int failed: panic: transform failed\n"},
		{"fallback", "fatal error: replace: fallback for replace.State failed while repairing the slot: panic: fallback failed\n"},
		{"produce", "fatal error: replace: transform of string failed: panic: transform failed; slot set to last\n"},
	}
	for _, c := range cases {
		t.Run(c.scenario, func(t *testing.T) {
			cmd := exec.Command(os.Args[0], "-test.run=^TestAbortChild$")
			cmd.Env = append(os.Environ(), abortChildEnv+"="+c.scenario)
			stderr := &bytes.Buffer{}
			cmd.Stderr = stderr
			err := cmd.Run()

			var exitErr *exec.ExitError
			require.True(t, errors.As(err, &exitErr), "child exited cleanly: %v", err)
			require.Equal(t, errors.AbortCode, exitErr.ExitCode())
			require.Contains(t, stderr.String(), c.expect)
			require.Contains(t, stderr.String(), "Traceback:\n")
		})
	}
}
