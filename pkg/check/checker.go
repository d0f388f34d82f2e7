package check

// Checker is implemented by all check types.
// Each check validates one aspect of the Lean workspace
// and returns a Result indicating success or failure.
//
// Implementations:
//   - clicheck.Check: verifies the Lean CLI exists and its version
//   - venvcheck.Check: validates the Python virtual environment
//   - workspacecheck.Check: checks the workspace lean.json file
//   - credcheck.Check: verifies QuantConnect credential variables
type Checker interface {
	Run() Result
}
