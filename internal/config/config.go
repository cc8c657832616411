// Package config loads simulator settings from a YAML file.
//
// The file is selected by the --config flag or the OHIOS_CONFIG environment
// variable. Without either, Default() is used as is. Command-line flags
// registered through BindFlags override file values.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/ohios/kernel/alloc"
)

// EnvVar names the environment variable consulted by Resolve.
const EnvVar = "OHIOS_CONFIG"

// Config is the master configuration.
type Config struct {
	// Memory configures the simulated address space.
	Memory MemoryConfig `yaml:"memory"`

	// Shell configures the interactive front ends.
	Shell ShellConfig `yaml:"shell"`

	// Log configures structured logging.
	Log LogConfig `yaml:"log"`
}

// MemoryConfig configures the allocator.
type MemoryConfig struct {
	// Capacity is the size of the address space in bytes.
	// Default: 1024
	Capacity int `yaml:"capacity"`

	// Policy is the allocation strategy: "bump" or "best-fit".
	// Default: bump
	Policy string `yaml:"policy"`
}

// ShellConfig configures prompts and banners.
type ShellConfig struct {
	// Prompt is a format string; %s is replaced by the working directory.
	// Default: "ohiOS:%s$ "
	Prompt string `yaml:"prompt"`

	// Banner prints the welcome box on interactive start.
	// Default: true
	Banner bool `yaml:"banner"`
}

// LogConfig configures the logger package.
type LogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
	Level   string `yaml:"level"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Memory: MemoryConfig{
			Capacity: alloc.DefaultCapacity,
			Policy:   string(alloc.PolicyBump),
		},
		Shell: ShellConfig{
			Prompt: "ohiOS:%s$ ",
			Banner: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Resolve loads path if given, else the file named by OHIOS_CONFIG, else
// returns Default().
func Resolve(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks field ranges and normalizes the policy name.
func (c *Config) Validate() error {
	var errs []error

	if c.Memory.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("memory.capacity must be positive, got %d", c.Memory.Capacity))
	}
	if p, err := alloc.ParsePolicy(c.Memory.Policy); err != nil {
		errs = append(errs, fmt.Errorf("memory.policy: %w", err))
	} else {
		c.Memory.Policy = string(p)
	}
	if c.Shell.Prompt != "" && strings.Count(c.Shell.Prompt, "%s") > 1 {
		errs = append(errs, errors.New("shell.prompt may contain at most one %s"))
	}

	return errors.Join(errs...)
}

// AllocPolicy returns the validated allocation policy.
func (c *Config) AllocPolicy() alloc.Policy {
	p, err := alloc.ParsePolicy(c.Memory.Policy)
	if err != nil {
		return alloc.PolicyBump
	}
	return p
}

// Prompt renders the shell prompt for the given working directory.
func (c *Config) Prompt(cwd string) string {
	if !strings.Contains(c.Shell.Prompt, "%s") {
		return c.Shell.Prompt
	}
	return fmt.Sprintf(c.Shell.Prompt, cwd)
}

// Flags holds command-line overrides. Zero values mean "not given".
type Flags struct {
	Path     string
	Capacity int
	Policy   string
	Debug    bool
	LogDir   string
}

// BindFlags registers the override flags on fs.
func BindFlags(fs *pflag.FlagSet, f *Flags) {
	fs.StringVar(&f.Path, "config", "", "Path to a YAML config file (default $"+EnvVar+")")
	fs.IntVar(&f.Capacity, "capacity", 0, "Address space size in bytes")
	fs.StringVar(&f.Policy, "policy", "", "Allocation policy: bump or best-fit")
	fs.BoolVarP(&f.Debug, "debug", "d", false, "Enable debug logging")
	fs.StringVar(&f.LogDir, "log-dir", "", "Directory for log files (default ~/.ohios/logs)")
}

// Apply overlays the set flags on c and re-validates.
func (f *Flags) Apply(c *Config) error {
	if f.Capacity != 0 {
		c.Memory.Capacity = f.Capacity
	}
	if f.Policy != "" {
		c.Memory.Policy = f.Policy
	}
	if f.Debug {
		c.Log.Enabled = true
		c.Log.Level = "debug"
	}
	if f.LogDir != "" {
		c.Log.Dir = f.LogDir
	}
	return c.Validate()
}
