package clicheck

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Prober abstracts probing the Lean CLI for testability.
type Prober interface {
	// LookPath resolves the CLI's location in PATH.
	LookPath(name string) (string, error)
	// Version runs `<name> --version` and returns its banner line.
	Version(name string) (string, error)
}

// RealProber probes the actual Lean CLI.
type RealProber struct{}

// LookPath searches for the CLI in PATH.
func (p *RealProber) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Version runs the CLI's --version command. The Lean CLI prints its banner on
// stdout, but some builds write it to stderr, so stderr is the fallback.
func (p *RealProber) Version(name string) (string, error) {
	cmd := exec.Command(name, "--version")
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err := cmd.Run()

	banner := strings.TrimSpace(outBuf.String())
	if banner == "" {
		banner = strings.TrimSpace(errBuf.String())
	}

	if err != nil {
		if banner != "" {
			return "", fmt.Errorf("version command failed: %w (output: %s)", err, banner)
		}
		return "", fmt.Errorf("version command failed: %w", err)
	}
	return banner, nil
}

// MockProber is a test double for Prober.
type MockProber struct {
	LookPathFunc func(name string) (string, error)
	VersionFunc  func(name string) (string, error)
}

// LookPath calls the mock function.
func (m *MockProber) LookPath(name string) (string, error) {
	return m.LookPathFunc(name)
}

// Version calls the mock function.
func (m *MockProber) Version(name string) (string, error) {
	return m.VersionFunc(name)
}
