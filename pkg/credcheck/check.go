// Package credcheck verifies the QuantConnect credential variables the Lean
// CLI needs for cloud operations.
package credcheck

import (
	"fmt"
	"os"
	"strings"

	"github.com/leantools/leanlaunch/pkg/check"
)

// EnvGetter provides environment lookups for testing.
type EnvGetter interface {
	LookupEnv(key string) (string, bool)
}

// RealEnvGetter uses actual os.LookupEnv.
type RealEnvGetter struct{}

// LookupEnv looks up an environment variable.
func (r *RealEnvGetter) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Check verifies that credential environment variables are set and non-empty.
// Values are always masked in output.
type Check struct {
	Vars   []string  // variable names, all required
	Getter EnvGetter // injected for testing
}

// Run executes the credential check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("creds: %s", strings.Join(c.Vars, ", ")),
	}
	result.WithHint("log in with: lean login")

	for _, name := range c.Vars {
		value, exists := c.Getter.LookupEnv(name)
		if !exists {
			return result.Failf("%s not set", name)
		}
		if value == "" {
			return result.Failf("%s is empty", name)
		}
		result.AddDetailf("%s: %s", name, mask(value))
	}

	result.Status = check.StatusOK
	return result
}

// mask hides all but the first and last three characters of a value.
func mask(value string) string {
	if len(value) <= 6 {
		return "***"
	}
	return value[:3] + "..." + value[len(value)-3:]
}
