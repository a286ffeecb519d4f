package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Load reads configuration from path, or from the first discovered
// conventional location when path is empty: pyproject.toml (table
// [tool.rigby]) or .rigby.toml — searched upward from the working directory
// — then ~/.config/rigby/config.toml. A malformed file is never fatal: the
// defaults are returned together with a non-empty warning.
func Load(path string) (*Config, string) {
	if path == "" {
		path = Discover()
	}
	if path == "" {
		return Default(), ""
	}

	cfg := Default()
	if err := decodeInto(path, cfg); err != nil {
		return Default(), fmt.Sprintf("error loading config from %s: %v", path, err)
	}
	return cfg, ""
}

// decodeInto decodes a config file over pre-filled defaults, so keys absent
// from the file keep their default values.
func decodeInto(path string, cfg *Config) error {
	if filepath.Base(path) != "pyproject.toml" {
		_, err := toml.DecodeFile(path, cfg)
		return err
	}

	var wrapper struct {
		Tool struct {
			Rigby toml.Primitive `toml:"rigby"`
		} `toml:"tool"`
	}
	meta, err := toml.DecodeFile(path, &wrapper)
	if err != nil {
		return err
	}
	if !meta.IsDefined("tool", "rigby") {
		return nil
	}
	return meta.PrimitiveDecode(wrapper.Tool.Rigby, cfg)
}

// Discover returns the path of the nearest conventional configuration file,
// or "" when none exists.
func Discover() string {
	dir, err := os.Getwd()
	if err != nil {
		return homeConfig()
	}

	// Walk up towards the filesystem root looking for a project config.
	maxIterations := 20
	for i := 0; i < maxIterations; i++ {
		for _, name := range []string{"pyproject.toml", ".rigby.toml"} {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return homeConfig()
}

func homeConfig() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	candidate := filepath.Join(home, ".config", "rigby", "config.toml")
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return ""
}
