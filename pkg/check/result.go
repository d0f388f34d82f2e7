package check

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single environment check.
type Result struct {
	Name    string   // e.g., "cli: lean", "venv: QC_VENV"
	Status  Status   // OK or FAIL
	Details []string // human-readable details
	Hint    string   // remediation hint, shown on failure
	Err     error    // underlying error for failures
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}
