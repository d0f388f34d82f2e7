//go:build windows

package launcher

import "os/exec"

// relaySignals is a no-op on Windows: console control events are delivered
// to the whole process group, so the child sees Ctrl-C without our help.
func relaySignals(_ *exec.Cmd) func() {
	return func() {}
}
