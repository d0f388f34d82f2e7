package output

import (
	"fmt"

	"github.com/jwalton/go-supportscolor"

	"github.com/leantools/leanlaunch/pkg/check"
)

var (
	green  = "\033[32m"
	red    = "\033[31m"
	yellow = "\033[33m"
	reset  = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, yellow, reset = "", "", "", ""
	}
}

// PrintResult outputs a check result with colored status.
// Failed checks additionally render their remediation hint.
func PrintResult(r check.Result) {
	if r.OK() {
		fmt.Printf("%s[OK]%s %s\n", green, reset, r.Name)
	} else {
		fmt.Printf("%s[FAIL]%s %s\n", red, reset, r.Name)
	}
	for _, d := range r.Details {
		fmt.Printf("      %s\n", d)
	}
	if !r.OK() && r.Hint != "" {
		fmt.Printf("      %shint: %s%s\n", yellow, r.Hint, reset)
	}
}
