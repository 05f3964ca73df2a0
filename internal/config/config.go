package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries the runtime settings shared by the MCP server and the
// CLI. Fields left empty in a configuration file keep their defaults.
type Config struct {
	Server ServerConfig `json:"server" yaml:"server"`
	Log    LogConfig    `json:"log" yaml:"log"`
	Index  IndexConfig  `json:"index" yaml:"index"`
}

// ServerConfig names the service as announced during the MCP handshake.
type ServerConfig struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
}

// LogConfig controls the slog handler wired at startup. Level accepts
// debug, info, warn, or error; Format accepts text or json.
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

// IndexConfig points the class and wiki tables at files on disk. When
// Dir is empty the tables embedded in the binary are used. Classes and
// Wiki are paths relative to Dir and default to classes.json and
// wiki.json.
type IndexConfig struct {
	Dir     string `json:"dir" yaml:"dir"`
	Classes string `json:"classes" yaml:"classes"`
	Wiki    string `json:"wiki" yaml:"wiki"`
}

// Default returns the configuration used when no file overrides it.
func Default() Config {
	return Config{
		Server: ServerConfig{Name: "go-enfgen", Version: "0.1.0"},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads a YAML configuration file and merges it over Default. An
// empty path or a missing file is not an error; defaults apply. A file
// that exists but does not parse is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}
