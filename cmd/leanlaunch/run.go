package main

import (
	"errors"

	"github.com/leantools/leanlaunch/pkg/check"
	"github.com/leantools/leanlaunch/pkg/output"
)

// ErrChecksFailed is returned when one or more doctor checks fail.
// The returned error causes Cobra to exit with code 1.
var ErrChecksFailed = errors.New("checks failed")

// runChecks executes every check and prints each result. All checks run even
// when an earlier one fails, so the user sees the whole picture at once.
func runChecks(checkers ...check.Checker) error {
	ok := true
	for _, c := range checkers {
		result := c.Run()
		output.PrintResult(result)
		ok = ok && result.OK()
	}

	if !ok {
		return ErrChecksFailed
	}
	return nil
}
