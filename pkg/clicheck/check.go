package clicheck

import (
	"fmt"

	"github.com/leantools/leanlaunch/pkg/check"
	"github.com/leantools/leanlaunch/pkg/version"
)

// Check verifies that the Lean CLI exists and can report its version.
type Check struct {
	Name       string           // command name or path of the Lean CLI
	MinVersion *version.Version // minimum version required (inclusive)
	Prober     Prober           // injected for testing
}

// Run executes the CLI check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("cli: %s", c.Name),
	}

	path, err := c.Prober.LookPath(c.Name)
	if err != nil {
		result.WithHint("install the Lean CLI: pip install lean")
		return result.Failf("not found: %v", err)
	}

	result.AddDetailf("path: %s", path)

	banner, err := c.Prober.Version(c.Name)
	if err != nil {
		return result.Fail(err.Error(), err)
	}

	v, err := version.Extract(banner)
	if err != nil {
		if c.MinVersion != nil {
			return result.Failf("could not parse version from output: %v", err)
		}
		result.AddDetailf("version: %s", banner)
		result.Status = check.StatusOK
		return result
	}

	result.AddDetailf("version: %s", v)

	if c.MinVersion != nil && !v.AtLeast(*c.MinVersion) {
		result.WithHint("upgrade with: pip install --upgrade lean")
		return result.Failf("version %s below minimum %s", v, c.MinVersion)
	}

	result.Status = check.StatusOK
	return result
}
