package output

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/leantools/leanlaunch/pkg/check"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error = %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func TestPrintResult_OK(t *testing.T) {
	result := check.Result{
		Name:    "cli: lean",
		Status:  check.StatusOK,
		Details: []string{"path: /usr/local/bin/lean"},
	}

	out := captureStdout(t, func() { PrintResult(result) })

	if !strings.Contains(out, "[OK]") {
		t.Errorf("output missing [OK]: %q", out)
	}
	if !strings.Contains(out, "cli: lean") {
		t.Errorf("output missing name: %q", out)
	}
	if !strings.Contains(out, "path: /usr/local/bin/lean") {
		t.Errorf("output missing detail: %q", out)
	}
}

func TestPrintResult_FailWithHint(t *testing.T) {
	result := check.Result{
		Name:   "cli: lean",
		Status: check.StatusFail,
		Hint:   "pip install lean",
		Err:    errors.New("not found"),
	}

	out := captureStdout(t, func() { PrintResult(result) })

	if !strings.Contains(out, "[FAIL]") {
		t.Errorf("output missing [FAIL]: %q", out)
	}
	if !strings.Contains(out, "hint: pip install lean") {
		t.Errorf("output missing hint: %q", out)
	}
}

func TestPrintResult_HintHiddenOnSuccess(t *testing.T) {
	result := check.Result{
		Name:   "venv: QC_VENV",
		Status: check.StatusOK,
		Hint:   "python -m venv QC_VENV",
	}

	out := captureStdout(t, func() { PrintResult(result) })

	if strings.Contains(out, "hint:") {
		t.Errorf("hint rendered for passing check: %q", out)
	}
}
