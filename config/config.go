// Package config loads optional defaults for CLI flags from a TOML
// file. The parser and engine never read it: every analysis parameter
// is still explicit input at the core boundary.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file. Pointer fields
// distinguish "unset" from a configured zero.
type FileConfig struct {
	Analysis AnalysisDefaults `toml:"analysis"`
	Notify   NotifyDefaults   `toml:"notify"`
}

// AnalysisDefaults supplies flag defaults for the analyze command.
type AnalysisDefaults struct {
	HostLBASizeKB  *float64 `toml:"host-lba-size"`
	FlashLBASizeKB *float64 `toml:"flash-lba-size"`
	RatedPECycles  *int     `toml:"rated-pe-cycles"`
	CapacityGB     *float64 `toml:"capacity"`
}

// NotifyDefaults supplies the default notification target.
type NotifyDefaults struct {
	URL *string `toml:"url"`
}

// DefaultPath returns ~/.config/ssdlife/config.toml (or under
// XDG_CONFIG_HOME). Returns empty string if no home directory can be
// determined.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "ssdlife", "config.toml")
}

// Load reads the TOML config at path. A missing file is not an error;
// an unreadable or malformed one is.
func Load(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
