//go:build unix

package venv

const (
	binDirName = "bin"
	markerName = "activate"
	pythonName = "python"
)
