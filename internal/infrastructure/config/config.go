package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/goccy/go-yaml"
	"github.com/kelseyhightower/envconfig"

	"github.com/GriffinCanCode/AlteronOS/internal/shared/paths"
	"github.com/GriffinCanCode/AlteronOS/internal/shared/types"
)

// Config holds all application configuration.
type Config struct {
	FS      FSConfig
	Compat  CompatConfig
	Workers WorkerConfig
	Logging LogConfig
}

// FSConfig holds virtual filesystem configuration. An empty Protected list
// is derived from Root.
type FSConfig struct {
	Root       string   `envconfig:"ALTERON_ROOT" default:"A:/Alteron"`
	Protected  []string `envconfig:"ALTERON_PROTECTED"`
	LayoutFile string   `envconfig:"ALTERON_LAYOUT_FILE"`
}

// CompatConfig names the external programs behind each collaborator.
type CompatConfig struct {
	Wine       string `envconfig:"WINE_BIN" default:"wine"`
	Darling    string `envconfig:"DARLING_BIN" default:"darling"`
	Dpkg       string `envconfig:"DPKG_BIN" default:"dpkg"`
	Bash       string `envconfig:"BASH_BIN" default:"bash"`
	Python     string `envconfig:"PYTHON_BIN" default:"python3"`
	Node       string `envconfig:"NODE_BIN" default:"node"`
	Java       string `envconfig:"JAVA_BIN" default:"java"`
	ExtractDir string `envconfig:"DPKG_EXTRACT_DIR" default:"/tmp/alteron_pkg"`
	UsePTY     bool   `envconfig:"COMPAT_USE_PTY" default:"false"`
}

// WorkerConfig holds native worker configuration.
type WorkerConfig struct {
	Dir string `envconfig:"ALTERON_WORKER_DIR" default:"."`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string   `envconfig:"LOG_LEVEL" default:"info"`
	Development bool     `envconfig:"LOG_DEV" default:"false"`
	Output      []string `envconfig:"LOG_OUTPUT" default:"stderr"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if len(cfg.FS.Protected) == 0 {
		cfg.FS.Protected = paths.DefaultProtected(cfg.FS.Root)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		FS: FSConfig{
			Root:      paths.Root,
			Protected: paths.DefaultProtected(paths.Root),
		},
		Compat: CompatConfig{
			Wine:       "wine",
			Darling:    "darling",
			Dpkg:       "dpkg",
			Bash:       "bash",
			Python:     "python3",
			Node:       "node",
			Java:       "java",
			ExtractDir: "/tmp/alteron_pkg",
		},
		Workers: WorkerConfig{
			Dir: ".",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
			Output:      []string{"stderr"},
		},
	}
}

// Layout returns the seed layout: the YAML file named by FS.LayoutFile when
// set, otherwise the built-in AlteronOS structure under FS.Root.
func (c *Config) Layout() (*types.Layout, error) {
	if c.FS.LayoutFile == "" {
		return DefaultLayout(c.FS.Root), nil
	}
	return LoadLayout(c.FS.LayoutFile)
}

// LoadLayout parses a YAML seed layout file.
func LoadLayout(path string) (*types.Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout %s: %w", path, err)
	}

	var layout types.Layout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("failed to parse layout %s: %w", path, err)
	}
	return &layout, nil
}

// DefaultLayout returns the standard directories and essential files under root.
func DefaultLayout(root string) *types.Layout {
	essential := paths.EssentialFiles(root)
	files := make([]string, 0, len(essential))
	for p := range essential {
		files = append(files, p)
	}
	sort.Strings(files)

	layout := &types.Layout{Directories: paths.StandardDirectories(root)}
	for _, p := range files {
		layout.Files = append(layout.Files, types.FileSeed{Path: p, Content: essential[p]})
	}
	return layout
}
