package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/leantools/leanlaunch/pkg/clicheck"
	"github.com/leantools/leanlaunch/pkg/config"
	"github.com/leantools/leanlaunch/pkg/credcheck"
	"github.com/leantools/leanlaunch/pkg/venv"
	"github.com/leantools/leanlaunch/pkg/venvcheck"
	"github.com/leantools/leanlaunch/pkg/version"
	"github.com/leantools/leanlaunch/pkg/workspacecheck"
)

var doctorMinVersion string

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the Lean workspace is ready to use",
	Args:  cobra.NoArgs,
	RunE:  runDoctor,
}

func init() {
	doctorCmd.Flags().StringVar(&doctorMinVersion, "min-version", "", "minimum Lean CLI version required (overrides config)")
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(_ *cobra.Command, _ []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.Load(wd)
	if err != nil {
		return err
	}

	minVersionStr := doctorMinVersion
	if minVersionStr == "" {
		minVersionStr = cfg.MinVersion
	}
	minVersion, err := version.ParseOptional(minVersionStr)
	if err != nil {
		return fmt.Errorf("invalid --min-version: %w", err)
	}

	cliName := cfg.CLI
	if cliName == "" {
		cliName = leanExeName()
	}

	return runChecks(
		&clicheck.Check{
			Name:       cliName,
			MinVersion: minVersion,
			Prober:     &clicheck.RealProber{},
		},
		&venvcheck.Check{
			Workspace: cfg.Workspace,
			Dir:       cfg.Venv,
			Stater:    &venv.RealStater{},
		},
		&workspacecheck.Check{
			File:        filepath.Join(cfg.Workspace, "lean.json"),
			RequireKeys: []string{"data-folder"},
			FS:          &workspacecheck.RealFileSystem{},
		},
		&credcheck.Check{
			Vars:   []string{"QC_USER_ID", "QC_API_TOKEN"},
			Getter: &credcheck.RealEnvGetter{},
		},
	)
}
