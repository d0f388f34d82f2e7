// Package venvcheck validates the workspace's Python virtual environment.
package venvcheck

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/leantools/leanlaunch/pkg/check"
	"github.com/leantools/leanlaunch/pkg/venv"
)

// Check verifies that a virtual environment exists and is usable.
type Check struct {
	Workspace string      // workspace root for discovery
	Dir       string      // explicit venv directory; empty means discover
	Stater    venv.Stater // injected for testing
}

// Run executes the venv check.
func (c *Check) Run() check.Result {
	label := c.Dir
	if label == "" {
		label = strings.Join(venv.DefaultDirs, " or ")
	}
	result := check.Result{
		Name: fmt.Sprintf("venv: %s", label),
	}
	result.WithHint("create one with: python -m venv QC_VENV")

	var v *venv.Venv
	var ok bool
	if c.Dir != "" {
		// A relative configured dir is workspace-relative, matching launch.
		dir := c.Dir
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(c.Workspace, dir)
		}
		v, ok = venv.Find(dir, c.Stater)
	} else {
		v, ok = venv.Discover(c.Workspace, c.Stater)
	}
	if !ok {
		return result.Fail("no activation marker found", fmt.Errorf("virtual environment not found"))
	}

	result.AddDetailf("dir: %s", v.Dir)

	if _, err := c.Stater.Stat(v.Python()); err != nil {
		return result.Failf("python not found at %s", v.Python())
	}
	result.AddDetailf("python: %s", v.Python())

	result.Status = check.StatusOK
	return result
}
