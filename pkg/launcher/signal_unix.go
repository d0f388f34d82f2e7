//go:build unix

package launcher

import (
	"os"
	"os/exec"
	"os/signal"
	"syscall"
)

// relaySignals forwards SIGINT and SIGTERM received by the launcher to the
// child process, so terminating the launcher terminates the child too.
// The returned function stops the relay.
func relaySignals(cmd *exec.Cmd) func() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)

	go func() {
		for sig := range ch {
			if cmd.Process != nil {
				_ = cmd.Process.Signal(sig)
			}
		}
	}()

	return func() {
		signal.Stop(ch)
		close(ch)
	}
}
