package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leantools/leanlaunch/pkg/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration and where each value came from",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.Load(wd)
	if err != nil {
		return err
	}

	rows := []struct {
		key   string
		value string
	}{
		{"cli", orAuto(cfg.CLI)},
		{"venv", orAuto(cfg.Venv)},
		{"workspace", cfg.Workspace},
		{"min_version", orNone(cfg.MinVersion)},
		{"debug", fmt.Sprintf("%t", cfg.Debug)},
	}

	for _, row := range rows {
		cmd.Printf("%-12s %-30s (%s)\n", row.key, row.value, cfg.Sources[row.key])
	}
	return nil
}

func orAuto(v string) string {
	if v == "" {
		return "<auto>"
	}
	return v
}

func orNone(v string) string {
	if v == "" {
		return "<none>"
	}
	return v
}
