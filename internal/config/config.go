// Package config loads CLI settings from defaults, an optional TOML file and
// AGENTSGEN_ environment variables, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// EnvPrefix is the prefix of environment overrides, e.g. AGENTSGEN_OUTPUT_DIR.
const EnvPrefix = "AGENTSGEN_"

// FileName is the default settings file name.
const FileName = "agentsgen.toml"

// Config represents the CLI configuration.
type Config struct {
	Output struct {
		Dir    string `koanf:"dir"`
		Format string `koanf:"format"`
		Copy   bool   `koanf:"copy"`
	} `koanf:"output"`

	Assets struct {
		// Source is a bundle directory or base URL. Empty uses the embedded
		// assets.
		Source  string        `koanf:"source"`
		Timeout time.Duration `koanf:"timeout"`
	} `koanf:"assets"`

	Preview struct {
		Debounce time.Duration `koanf:"debounce"`
		File     string        `koanf:"file"`
	} `koanf:"preview"`

	Render struct {
		Prune  bool     `koanf:"prune"`
		Exempt []string `koanf:"exempt"`
	} `koanf:"render"`

	Log struct {
		Level string `koanf:"level"`
		JSON  bool   `koanf:"json"`
	} `koanf:"log"`
}

func defaults() map[string]any {
	return map[string]any{
		"output.dir":       ".",
		"output.format":    "markdown",
		"output.copy":      false,
		"assets.source":    "",
		"assets.timeout":   10 * time.Second,
		"preview.debounce": 500 * time.Millisecond,
		"preview.file":     "",
		"render.prune":     true,
		"render.exempt":    []string{"Project Structure"},
		"log.level":        "info",
		"log.json":         false,
	}
}

// Load reads the configuration. An explicit path must exist; without one the
// default locations are tried and skipped when missing.
func Load(configPath string) (*Config, error) {
	var k = koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", configPath, err)
		}
	} else {
		for _, path := range []string{"./" + FileName, "$HOME/.config/agentsgen/" + FileName} {
			path = os.ExpandEnv(path)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("config: load %s: %w", path, err)
			}
			break
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values that cannot be defaulted.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Output.Format) == "" {
		return fmt.Errorf("config: output format is required")
	}
	if c.Preview.Debounce < 0 {
		return fmt.Errorf("config: preview debounce must not be negative")
	}
	if c.Assets.Timeout < 0 {
		return fmt.Errorf("config: assets timeout must not be negative")
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		return fmt.Errorf("config: log level %q: %w", c.Log.Level, err)
	}
	return nil
}

// Sample is the commented settings file written by `agentsgen config init`.
const Sample = `# agentsgen configuration

[output]
dir = "."
format = "markdown"   # markdown | html
copy = false

[assets]
# Directory or base URL holding base-template.md, sections.yaml and agents.yaml.
source = ""
timeout = "10s"

[preview]
debounce = "500ms"
file = ""

[render]
prune = true
exempt = ["Project Structure"]

[log]
level = "info"
json = false
`

// Init writes Sample to configPath. Existing files are never overwritten.
func Init(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config: file already exists at %s", configPath)
	}
	return os.WriteFile(configPath, []byte(Sample), 0o644)
}
