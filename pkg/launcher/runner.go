package launcher

import (
	"errors"
	"os"
	"os/exec"
)

// Runner abstracts process spawning for testability.
type Runner interface {
	// Run spawns name with args, waits for completion and returns the
	// child's exit code. A nil env inherits the parent's environment.
	Run(name string, args []string, env []string) (int, error)
}

// RealRunner implements Runner using actual OS processes. The child inherits
// stdin, stdout and stderr directly so interactive sessions work untouched.
type RealRunner struct{}

// Run spawns the command and waits for it, relaying termination signals
// received by the launcher to the child.
func (r *RealRunner) Run(name string, args []string, env []string) (int, error) {
	// #nosec G204 -- forwarding user-supplied arguments to the configured CLI is the whole point.
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if env != nil {
		cmd.Env = env
	}

	if err := cmd.Start(); err != nil {
		return ExitNotFound, err
	}

	stop := relaySignals(cmd)
	defer stop()

	err := cmd.Wait()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			// Child was killed by a signal.
			code = ExitNotFound
		}
		return code, nil
	}
	return ExitNotFound, err
}

// MockRunner is a test double for Runner.
type MockRunner struct {
	RunFunc func(name string, args []string, env []string) (int, error)
	Calls   int
}

// Run calls the mock function and counts the invocation.
func (m *MockRunner) Run(name string, args []string, env []string) (int, error) {
	m.Calls++
	return m.RunFunc(name, args, env)
}
