package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/configtree/internal/logging"
	"github.com/aretw0/configtree/pkg/tree"
)

// DefaultFile is the project file read when no --config flag is given.
const DefaultFile = ".configtree.yaml"

// EnvPrefix prefixes environment variables that override file settings.
const EnvPrefix = "CONFIGTREE_"

// Config holds the CLI settings.
type Config struct {
	Root        string      `mapstructure:"root"`
	Layout      tree.Layout `mapstructure:"layout"`
	Log         LogConfig   `mapstructure:"log"`
	MetricsFile string      `mapstructure:"metrics_file"`
}

// LogConfig configures the application logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Root:   "configurations",
		Layout: tree.LayoutEnvironments,
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// envKeys maps environment variable suffixes to their dotted config keys.
var envKeys = map[string]string{
	"ROOT":         "root",
	"LAYOUT":       "layout",
	"LOG_LEVEL":    "log.level",
	"LOG_FORMAT":   "log.format",
	"METRICS_FILE": "metrics_file",
}

// Load reads the YAML file at path, applies CONFIGTREE_* environment overrides
// and decodes the result on top of Default(). A missing file is not an error.
func Load(path string) (Config, error) {
	raw := map[string]any{}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// No project file: defaults plus environment.
	case err != nil:
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if raw == nil {
			raw = map[string]any{}
		}
	}

	applyEnv(raw, os.LookupEnv)

	cfg := Default()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &cfg,
		ErrorUnused: true,
		TagName:     "mapstructure",
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv writes every set CONFIGTREE_* variable into raw at its dotted key.
func applyEnv(raw map[string]any, lookup func(string) (string, bool)) {
	for suffix, key := range envKeys {
		value, ok := lookup(EnvPrefix + suffix)
		if !ok {
			continue
		}
		node := raw
		parts := strings.Split(key, ".")
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]any)
			if !ok {
				child = map[string]any{}
				node[part] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = value
	}
}

// Validate rejects settings the CLI cannot act on.
func (c Config) Validate() error {
	if c.Root == "" {
		return fmt.Errorf("config: root must not be empty")
	}
	switch c.Layout {
	case tree.LayoutEnvironments, tree.LayoutVersions:
	default:
		return fmt.Errorf("config: unknown layout %q (want %q or %q)", c.Layout, tree.LayoutEnvironments, tree.LayoutVersions)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown log format %q", c.Log.Format)
	}
	return nil
}
