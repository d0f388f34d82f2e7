package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:     "leanlaunch",
	Short:   "Launcher for the QuantConnect Lean CLI",
	Long:    "Leanlaunch resolves the Lean CLI, activates the workspace virtual environment and forwards the invocation to it.",
	Version: Version,
}

// knownSubcommands are handled by leanlaunch itself; any other leading
// argument makes the whole invocation a passthrough to the Lean CLI.
var knownSubcommands = []string{"launch", "doctor", "config", "version", "help", "completion"}

// classifyArgs rewrites an invocation whose first argument is not a
// leanlaunch subcommand into an explicit launch passthrough.
func classifyArgs(args []string) []string {
	if len(args) < 2 {
		return args
	}

	first := args[1]
	switch first {
	case "-h", "--help", "--version":
		return args
	}
	for _, subcmd := range knownSubcommands {
		if first == subcmd {
			return args
		}
	}

	rewritten := append([]string{args[0], "launch"}, args[1:]...)
	return rewritten
}

func main() {
	os.Args = classifyArgs(os.Args)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
