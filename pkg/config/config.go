// Package config resolves launcher configuration once at startup from a
// leanlaunch.yaml file, LEANLAUNCH_* environment variables and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the config file searched for upward from the working directory.
const FileName = "leanlaunch.yaml"

// EnvPrefix prefixes the environment variable overrides (LEANLAUNCH_CLI etc).
const EnvPrefix = "LEANLAUNCH"

var keys = []string{"cli", "venv", "workspace", "min_version", "debug"}

// Config holds the resolved launcher configuration. It is immutable after Load.
type Config struct {
	CLI        string // path or command name of the Lean CLI; empty means auto-resolve
	Venv       string // venv directory; empty means discover QC_VENV / .venv
	Workspace  string // workspace root
	MinVersion string // minimum Lean CLI version enforced by doctor
	Debug      bool   // enable trace logging on stderr

	// Sources records where each key's value came from ("env", the config
	// file path, or "default"), for the config subcommand.
	Sources map[string]string
}

// FindFile searches upward from startDir for FileName, stopping at the home
// directory, a .git boundary, or the filesystem root.
func FindFile(startDir string) (string, bool) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		if dir == homeDir {
			break
		}
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", false
}

// Load resolves the configuration, reading the nearest config file if one
// exists. Precedence per key: environment, config file, default.
func Load(startDir string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	for _, key := range keys {
		if key == "debug" {
			v.SetDefault(key, false)
			continue
		}
		v.SetDefault(key, "")
	}

	filePath, fromFile := FindFile(startDir)
	if fromFile {
		v.SetConfigFile(filePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", filePath, err)
		}
	}

	cfg := &Config{
		CLI:        v.GetString("cli"),
		Venv:       v.GetString("venv"),
		Workspace:  v.GetString("workspace"),
		MinVersion: v.GetString("min_version"),
		Debug:      v.GetBool("debug"),
		Sources:    make(map[string]string, len(keys)),
	}
	for _, key := range keys {
		cfg.Sources[key] = source(v, key, filePath, fromFile)
	}

	if cfg.Workspace == "" {
		if fromFile {
			cfg.Workspace = filepath.Dir(filePath)
		} else {
			cfg.Workspace = startDir
		}
	}

	return cfg, nil
}

func source(v *viper.Viper, key, filePath string, fromFile bool) string {
	envVar := EnvPrefix + "_" + strings.ToUpper(key)
	if _, ok := os.LookupEnv(envVar); ok {
		return "env"
	}
	if fromFile && v.InConfig(key) {
		return filePath
	}
	return "default"
}
