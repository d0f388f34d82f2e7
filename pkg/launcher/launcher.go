// Package launcher resolves the Lean CLI executable and forwards an
// invocation to it with inherited standard streams.
package launcher

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
)

// ExitNotFound is the launcher's own exit code when the executable
// cannot be located or spawned. Child exit codes pass through verbatim.
const ExitNotFound = 1

// NotFoundError reports a missing or unusable Lean CLI executable.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Lean CLI not found at %s; ensure the Lean CLI is installed (pip install lean)", e.Path)
}

// Stater provides file stat operations for testing.
type Stater interface {
	Stat(name string) (fs.FileInfo, error)
}

// RealStater uses actual os.Stat.
type RealStater struct{}

// Stat returns file info for the given path.
func (r *RealStater) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Resolve verifies that path points at an executable regular file.
// It returns a NotFoundError otherwise; no fallback search is attempted.
func Resolve(path string, st Stater) (string, error) {
	info, err := st.Stat(path)
	if err != nil {
		return "", &NotFoundError{Path: path}
	}
	if info.IsDir() {
		return "", &NotFoundError{Path: path}
	}
	// Windows has no executable bit; existence is the best we can verify.
	if runtime.GOOS != "windows" && info.Mode().Perm()&0o111 == 0 {
		return "", &NotFoundError{Path: path}
	}
	return path, nil
}

// Forward resolves exe and spawns it with args and env, returning the child's
// exit code. A failed resolve returns before any spawn attempt is made.
func Forward(exe string, args []string, env []string, st Stater, r Runner) (int, error) {
	resolved, err := Resolve(exe, st)
	if err != nil {
		return ExitNotFound, err
	}
	return r.Run(resolved, args, env)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
