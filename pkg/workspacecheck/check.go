package workspacecheck

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/leantools/leanlaunch/pkg/check"
)

// Check verifies that the workspace lean.json is valid and carries the keys
// the Lean CLI needs.
type Check struct {
	File        string     // path to lean.json
	RequireKeys []string   // keys that must exist (dot notation for nested)
	FS          FileSystem // injected for testing
}

// Run executes the workspace check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("workspace: %s", c.File),
	}
	result.WithHint("initialize the workspace with: lean init")

	content, err := c.FS.ReadFile(c.File)
	if err != nil {
		return result.Failf("failed to read file: %v", err)
	}

	jsonStr := string(content)
	if !gjson.Valid(jsonStr) {
		return result.Fail("invalid JSON", fmt.Errorf("invalid JSON syntax"))
	}
	result.AddDetail("syntax: valid")

	for _, key := range c.RequireKeys {
		value := gjson.Get(jsonStr, key)
		if !value.Exists() {
			return result.Failf("key %q not found", key)
		}
		result.AddDetailf("%s: %s", key, value.String())
	}

	result.Status = check.StatusOK
	return result
}
