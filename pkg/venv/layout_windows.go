//go:build windows

package venv

const (
	binDirName = "Scripts"
	markerName = "activate.bat"
	pythonName = "python.exe"
)
