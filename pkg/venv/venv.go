// Package venv locates a Python virtual environment and computes the
// activated environment for a child process. Activation never touches the
// launcher's own environment: it only produces the env slice the child gets.
package venv

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDirs are the conventional venv directory names, tried in order.
var DefaultDirs = []string{"QC_VENV", ".venv"}

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

// Venv is a located virtual environment.
type Venv struct {
	Dir string
}

// Find returns the venv rooted at dir if its activation marker exists.
func Find(dir string, st Stater) (*Venv, bool) {
	v := &Venv{Dir: dir}
	if _, err := st.Stat(v.marker()); err != nil {
		return nil, false
	}
	return v, true
}

// Discover searches workspace for a venv under the conventional directory
// names. Absence is not an error; the launcher proceeds without activation.
func Discover(workspace string, st Stater) (*Venv, bool) {
	for _, name := range DefaultDirs {
		if v, ok := Find(filepath.Join(workspace, name), st); ok {
			return v, true
		}
	}
	return nil, false
}

// BinDir returns the venv's binary directory (bin on Unix, Scripts on Windows).
func (v *Venv) BinDir() string {
	return filepath.Join(v.Dir, binDirName)
}

// Python returns the path of the venv's python executable.
func (v *Venv) Python() string {
	return filepath.Join(v.Dir, binDirName, pythonName)
}

func (v *Venv) marker() string {
	return filepath.Join(v.Dir, binDirName, markerName)
}

// Activate returns a copy of base with the venv applied the way an activate
// script would: the binary directory is prepended to PATH, VIRTUAL_ENV is
// set, and PYTHONHOME is dropped. All other variables pass through unchanged.
func (v *Venv) Activate(base []string) []string {
	env := make([]string, 0, len(base)+1)
	pathSeen := false

	for _, kv := range base {
		key, val, _ := strings.Cut(kv, "=")
		switch {
		case strings.EqualFold(key, "PATH"):
			env = append(env, key+"="+v.BinDir()+string(os.PathListSeparator)+val)
			pathSeen = true
		case key == "VIRTUAL_ENV", key == "PYTHONHOME":
			// replaced or dropped below
		default:
			env = append(env, kv)
		}
	}

	if !pathSeen {
		env = append(env, "PATH="+v.BinDir())
	}
	return append(env, "VIRTUAL_ENV="+v.Dir)
}
