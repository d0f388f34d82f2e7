package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leantools/leanlaunch/pkg/config"
	"github.com/leantools/leanlaunch/pkg/launcher"
	"github.com/leantools/leanlaunch/pkg/logging"
	"github.com/leantools/leanlaunch/pkg/venv"
)

var launchCmd = &cobra.Command{
	Use:   "launch [args...]",
	Short: "Forward an invocation to the Lean CLI",
	Long: "Launch forwards all arguments verbatim to the Lean CLI with standard " +
		"streams inherited, activating the workspace virtual environment for the " +
		"child process if one exists. Flag parsing is disabled: every argument " +
		"belongs to the Lean CLI, not to leanlaunch.",
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runLaunch,
}

func init() {
	rootCmd.AddCommand(launchCmd)
}

func runLaunch(_ *cobra.Command, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.Load(wd)
	if err != nil {
		return err
	}
	log := logging.New(cfg.Debug)

	st := &venv.RealStater{}
	vv, activated := findVenv(cfg, st)

	env := os.Environ()
	if activated {
		env = vv.Activate(env)
		log.Debug().Str("dir", vv.Dir).Msg("virtual environment activated")
	} else {
		log.Debug().Msg("no virtual environment found, proceeding without activation")
	}

	exe, err := resolveCLI(cfg, vv, exec.LookPath, &launcher.RealStater{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "leanlaunch: %v\n", err)
		os.Exit(launcher.ExitNotFound)
	}
	log.Debug().Str("exe", exe).Strs("args", args).Msg("forwarding to Lean CLI")

	code, err := launcher.Forward(exe, args, env, &launcher.RealStater{}, &launcher.RealRunner{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "leanlaunch: %v\n", err)
	}
	log.Debug().Int("code", code).Msg("child exited")
	os.Exit(code)
	return nil
}

// findVenv honors an explicit venv directory from config before falling back
// to discovery under the workspace.
func findVenv(cfg *config.Config, st venv.Stater) (*venv.Venv, bool) {
	if cfg.Venv != "" {
		dir := cfg.Venv
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(cfg.Workspace, dir)
		}
		return venv.Find(dir, st)
	}
	return venv.Discover(cfg.Workspace, st)
}

// resolveCLI picks the executable: explicit config first, then the venv's
// binary directory, then PATH. The choice is made once; launcher.Forward
// verifies it before any spawn.
func resolveCLI(cfg *config.Config, vv *venv.Venv, lookPath func(string) (string, error), st launcher.Stater) (string, error) {
	if cfg.CLI != "" {
		if strings.ContainsRune(cfg.CLI, '/') || strings.ContainsRune(cfg.CLI, os.PathSeparator) {
			return cfg.CLI, nil
		}
		path, err := lookPath(cfg.CLI)
		if err != nil {
			return "", &launcher.NotFoundError{Path: cfg.CLI + " (in PATH)"}
		}
		return path, nil
	}

	if vv != nil {
		candidate := filepath.Join(vv.BinDir(), leanExeName())
		if _, err := st.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	path, err := lookPath(leanExeName())
	if err != nil {
		return "", &launcher.NotFoundError{Path: leanExeName() + " (in PATH)"}
	}
	return path, nil
}

func leanExeName() string {
	if runtime.GOOS == "windows" {
		return "lean.exe"
	}
	return "lean"
}
